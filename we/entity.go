package we

type EntityType string

func (et EntityType) String() string {
	return string(et)
}

// Entity is the state rendered from an aggregate at a revision.
type Entity[T any] struct {
	Aggregate AggregateId
	Revision  Revision
	Type      EntityType
	State     *T
}

// Initialized reports whether any event has been recorded for the entity.
func (e Entity[T]) Initialized() bool {
	return e.Revision != InitialRevision
}

// EntityTypeOf prefers an EntityType method on state and falls back to its
// derived type name.
func EntityTypeOf(state any) EntityType {
	if typed, ok := state.(interface{ EntityType() EntityType }); ok {
		return typed.EntityType()
	}

	return EntityType(NameOf(state))
}
