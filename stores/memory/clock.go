package memory

import "time"

type Clock interface {
	Now() time.Time
}

func WithClock(clock Clock) EventStoreOption {
	return func(store *EventStore) {
		store.clock = clock
	}
}

type defaultClock struct{}

func (defaultClock) Now() time.Time {
	return time.Now()
}
