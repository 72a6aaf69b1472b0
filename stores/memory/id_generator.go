package memory

import (
	"github.com/weegigs/wee-counter-go/we"
)

type IDGenerator interface {
	Create() we.EventID
}

func WithIdGenerator(generator IDGenerator) EventStoreOption {
	return func(store *EventStore) {
		store.id = generator
	}
}

func NewDefaultIdGenerator(clock Clock) IDGenerator {
	return &DefaultIdGenerator{
		clock:     clock,
		revisions: we.NewRevisionGenerator(),
	}
}

// DefaultIdGenerator issues monotonic ULID event ids stamped with the store
// clock.
type DefaultIdGenerator struct {
	clock     Clock
	revisions *we.RevisionGenerator
}

func (g *DefaultIdGenerator) Create() we.EventID {
	return we.EventID(g.revisions.NewRevision(g.clock.Now()))
}
