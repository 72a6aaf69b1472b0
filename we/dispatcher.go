package we

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

type CommandHandlers[T any] map[CommandName]CommandHandler[T]

// Dispatcher runs a command against an entity and reports whether any events
// were published.
type Dispatcher[T any] interface {
	Dispatch(ctx context.Context, entity Entity[T], command Command) (bool, error)
}

type RoutedDispatcher[T any] struct {
	Publish  EventPublisher
	Handlers CommandHandlers[T]
}

func (d *RoutedDispatcher[T]) Dispatch(ctx context.Context, entity Entity[T], command Command) (bool, error) {
	name := CommandNameOf(command)

	ctx, span := otel.Tracer(tracerName).Start(ctx, "dispatch", trace.WithAttributes(attribute.String("command", string(name))))
	defer span.End()

	handler, ok := d.Handlers[name]
	if !ok {
		return false, CommandNotFound(name)
	}

	published := false
	publish := func(ctx context.Context, id AggregateId, options PublishOptions, events ...DomainEvent) error {
		if err := d.Publish(ctx, id, options, events...); err != nil {
			return err
		}

		published = published || len(events) > 0
		return nil
	}

	err := handler.Handle(ctx, command, entity, publish)
	return published, err
}
