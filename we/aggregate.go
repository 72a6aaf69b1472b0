package we

// Aggregate is the recorded history of one entity as returned by a store.
type Aggregate struct {
	Id       AggregateId     `json:"id"`
	Events   []RecordedEvent `json:"events,omitempty"`
	Revision Revision        `json:"revision"`
}

// NewAggregate derives the aggregate revision from the last of events.
func NewAggregate(id AggregateId, events []RecordedEvent) Aggregate {
	revision := InitialRevision
	if len(events) > 0 {
		revision = events[len(events)-1].Revision
	}

	return Aggregate{Id: id, Events: events, Revision: revision}
}

func (a Aggregate) Empty() bool {
	return len(a.Events) == 0
}
