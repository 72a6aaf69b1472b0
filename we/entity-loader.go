package we

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

type EntityLoader[T any] struct {
	Loader   EventLoader
	Renderer *Renderer[T]
}

func (s *EntityLoader[T]) Load(ctx context.Context, id AggregateId) (Entity[T], error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "load entity", trace.WithAttributes(
		attribute.String("aggregate.type", id.Type),
		attribute.String("aggregate.key", id.Key),
	))
	defer span.End()

	aggregate, err := s.Loader(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to load aggregate")
		return Entity[T]{}, err
	}

	span.SetAttributes(attribute.Int("aggregate.events", len(aggregate.Events)))

	return s.Renderer.Render(ctx, aggregate)
}
