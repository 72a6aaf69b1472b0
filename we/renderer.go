package we

import (
	"context"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

type Reducer[T any] interface {
	Reduce(state *T, data Data) error
}

// ReducerFunction adapts a function over a concrete event type E.
type ReducerFunction[T any, E any] func(state *T, evt *E) error

func (f ReducerFunction[T, E]) Reduce(state *T, data Data) error {
	var event E
	if err := UnmarshalFromData(data, &event); err != nil {
		return err
	}

	return f(state, &event)
}

type Reducers[T any] map[EventType]Reducer[T]

// Renderer folds an aggregate's events over the state produced by Initial, or
// over the zero value of T when Initial is nil. Events without a reducer are
// skipped.
type Renderer[T any] struct {
	Initial  func() T
	Reducers Reducers[T]
}

func (r *Renderer[T]) Render(ctx context.Context, aggregate Aggregate) (Entity[T], error) {
	var state T
	if r.Initial != nil {
		state = r.Initial()
	}

	entityType := EntityTypeOf(state)

	_, span := otel.Tracer(tracerName).Start(ctx, "render", trace.WithAttributes(
		attribute.String("entity.type", entityType.String()),
		attribute.Int("entity.events", len(aggregate.Events)),
	))
	defer span.End()

	for _, event := range aggregate.Events {
		reducer, ok := r.Reducers[event.EventType]
		if !ok {
			continue
		}

		if err := reducer.Reduce(&state, event.Data); err != nil {
			return Entity[T]{}, errors.Wrapf(err, "failed to process update with %s", event.EventType)
		}
	}

	return Entity[T]{
		Aggregate: aggregate.Id,
		Revision:  aggregate.Revision,
		Type:      entityType,
		State:     &state,
	}, nil
}
