package memory

import (
	"github.com/google/wire"

	"github.com/weegigs/wee-counter-go/we"
)

var Live = wire.NewSet(
	ProvideEventStore,
	wire.Bind(new(we.EventStore), new(*EventStore)),
)

func ProvideEventStore() *EventStore {
	return NewEventStore()
}
