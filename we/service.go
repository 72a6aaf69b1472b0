package we

import (
	"context"
	"errors"
	"time"

	"github.com/avast/retry-go"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
)

type EntityService[T any] interface {
	Load(ctx context.Context, id AggregateId) (Entity[T], error)
	Execute(ctx context.Context, id AggregateId, command Command) (Entity[T], error)
}

const (
	tracerName = "events-service"

	defaultConflictAttempts = 5
	defaultConflictDelay    = 5 * time.Millisecond
)

type EntityServiceOption[T any] func(service *entityService[T])

// ConflictAttempts bounds how many times Execute runs a command that keeps
// losing the race for the aggregate's revision. One disables retries.
func ConflictAttempts[T any](attempts uint) EntityServiceOption[T] {
	return func(service *entityService[T]) {
		if attempts == 0 {
			attempts = 1
		}

		service.attempts = attempts
	}
}

func NewEntityService[T any](loader *EntityLoader[T], dispatcher Dispatcher[T], options ...EntityServiceOption[T]) *entityService[T] {
	service := &entityService[T]{
		loader:     loader,
		dispatcher: dispatcher,
		attempts:   defaultConflictAttempts,
	}

	for _, option := range options {
		option(service)
	}

	return service
}

type entityService[T any] struct {
	loader     *EntityLoader[T]
	dispatcher Dispatcher[T]
	attempts   uint
}

func (s *entityService[T]) Load(ctx context.Context, id AggregateId) (Entity[T], error) {
	return s.loader.Load(ctx, id)
}

// Execute loads the entity, dispatches the command against it and returns the
// entity as it stands afterwards. When another writer publishes first the
// command is run again against the fresh entity.
func (s *entityService[T]) Execute(ctx context.Context, id AggregateId, command Command) (Entity[T], error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "execute command")
	defer span.End()

	var result Entity[T]
	err := retry.Do(
		func() error {
			entity, err := s.Load(ctx, id)
			if err != nil {
				return err
			}

			published, err := s.dispatcher.Dispatch(ctx, entity, command)
			if err != nil {
				return err
			}

			if !published {
				result = entity
				return nil
			}

			result, err = s.Load(ctx, id)
			return err
		},
		retry.Context(ctx),
		retry.Attempts(s.attempts),
		retry.Delay(defaultConflictDelay),
		retry.MaxJitter(defaultConflictDelay),
		retry.DelayType(retry.CombineDelay(retry.FixedDelay, retry.RandomDelay)),
		retry.RetryIf(func(err error) bool {
			return errors.Is(err, RevisionConflict)
		}),
		retry.OnRetry(func(n uint, err error) {
			log.Debug().Err(err).Uint("attempt", n+1).Str("aggregate", id.Encode().String()).Msg("retrying command after revision conflict")
		}),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return Entity[T]{}, err
	}

	return result, nil
}
