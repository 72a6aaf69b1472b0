package we

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func recorded(t *testing.T, revision Revision, event DomainEvent) RecordedEvent {
	data, err := MarshalToData(event)
	if err != nil {
		t.Fatalf("failed to marshal event: %+v", err)
	}

	return RecordedEvent{
		Revision:  revision,
		EventID:   EventID(revision),
		EventType: EventTypeOf(event),
		Data:      data,
	}
}

func addReducer() Reducer[testState] {
	var reducer ReducerFunction[testState, testAdded] = func(state *testState, evt *testAdded) error {
		state.Total += evt.Amount
		return nil
	}

	return reducer
}

func testRenderer(initial func() testState) *Renderer[testState] {
	return &Renderer[testState]{
		Initial:  initial,
		Reducers: Reducers[testState]{EventTypeOf(testAdded{}): addReducer()},
	}
}

func TestRenderer(t *testing.T) {
	id := AggregateId{Type: "test", Key: "renderer"}

	t.Run("starts from the zero value", func(t *testing.T) {
		entity, err := testRenderer(nil).Render(context.TODO(), Aggregate{Id: id, Revision: InitialRevision})
		if !assert.Nil(t, err) {
			return
		}

		assert.False(t, entity.Initialized())
		assert.Equal(t, 0, entity.State.Total)
		assert.Equal(t, EntityType("we:test-state"), entity.Type)
	})

	t.Run("starts from the initial state", func(t *testing.T) {
		renderer := testRenderer(func() testState { return testState{Total: 10} })

		entity, err := renderer.Render(context.TODO(), Aggregate{Id: id, Revision: InitialRevision})
		if !assert.Nil(t, err) {
			return
		}

		assert.Equal(t, 10, entity.State.Total)
	})

	t.Run("folds events in order", func(t *testing.T) {
		aggregate := Aggregate{
			Id:       id,
			Revision: "01",
			Events: []RecordedEvent{
				recorded(t, "00", testAdded{Amount: 2}),
				recorded(t, "01", testAdded{Amount: 5}),
			},
		}

		entity, err := testRenderer(nil).Render(context.TODO(), aggregate)
		if !assert.Nil(t, err) {
			return
		}

		assert.True(t, entity.Initialized())
		assert.Equal(t, Revision("01"), entity.Revision)
		assert.Equal(t, id, entity.Aggregate)
		assert.Equal(t, 7, entity.State.Total)
	})

	t.Run("skips unknown events", func(t *testing.T) {
		aggregate := Aggregate{
			Id:       id,
			Revision: "01",
			Events: []RecordedEvent{
				recorded(t, "00", testTyped{}),
				recorded(t, "01", testAdded{Amount: 4}),
			},
		}

		entity, err := testRenderer(nil).Render(context.TODO(), aggregate)
		if !assert.Nil(t, err) {
			return
		}

		assert.Equal(t, 4, entity.State.Total)
	})

	t.Run("wraps reducer failures", func(t *testing.T) {
		failure := errors.New("reducer failed")
		var reducer ReducerFunction[testState, testAdded] = func(state *testState, evt *testAdded) error {
			return failure
		}

		renderer := &Renderer[testState]{Reducers: Reducers[testState]{EventTypeOf(testAdded{}): reducer}}
		_, err := renderer.Render(context.TODO(), Aggregate{
			Id:       id,
			Revision: "00",
			Events:   []RecordedEvent{recorded(t, "00", testAdded{Amount: 1})},
		})

		assert.ErrorIs(t, err, failure)
		assert.Contains(t, err.Error(), "we:test-added")
	})
}
