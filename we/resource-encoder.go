package we

import (
	"net/http"

	"github.com/goccy/go-json"
)

type EntitySerializer[T any] func(entity *Entity[T]) (map[string]any, error)

// StateSerializer flattens the entity state into a resource via its JSON form.
func StateSerializer[T any](entity *Entity[T]) (map[string]any, error) {
	serialized, err := json.Marshal(entity.State)
	if err != nil {
		return nil, err
	}

	resource := make(map[string]any)
	if err = json.Unmarshal(serialized, &resource); err != nil {
		return nil, err
	}

	return resource, nil
}

func NewResourceEncoder[T any]() ResourceEncoder[T] {
	return ResourceEncoder[T]{Serializer: StateSerializer[T]}
}

type ResourceEncoder[T any] struct {
	Serializer EntitySerializer[T]
}

func (encoder ResourceEncoder[T]) Resource(e *Entity[T]) (map[string]any, error) {
	serialize := encoder.Serializer
	if serialize == nil {
		serialize = StateSerializer[T]
	}

	resource, err := serialize(e)
	if err != nil {
		return nil, err
	}

	resource["$id"] = e.Aggregate.Encode()
	resource["$type"] = e.Type
	resource["$revision"] = e.Revision

	return resource, nil
}

func (encoder ResourceEncoder[T]) Encode(w http.ResponseWriter, r *http.Request, e *Entity[T]) error {
	resource, err := encoder.Resource(e)
	if err != nil {
		http.Error(w, "failed to encode resource", http.StatusInternalServerError)
		return err
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	return json.NewEncoder(w).Encode(resource)
}
