package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/weegigs/wee-counter-go/we"
)

var TestedEvent = we.EventType("test:test-event")

type Tested struct {
	TestStringValue string `json:"test_string_value"`
	TestIntValue    int    `json:"test_int_value"`
}

func (Tested) EventType() we.EventType {
	return TestedEvent
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewEventStore()

	t.Run("memory event store validation", func(t *testing.T) {
		suite := we.NewEventStoreValidationSuite(ctx, store)
		suite.Run(t)
	})

	t.Run("records event types and timestamps", func(t *testing.T) {
		now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
		store := NewEventStore(WithClock(fixedClock{now: now}))
		aggregateId := we.AggregateId{Type: "test", Key: "typed"}

		err := store.Publish(ctx, aggregateId, we.Options(), Tested{TestStringValue: "test string", TestIntValue: 42})
		if !assert.Nil(t, err) {
			return
		}

		aggregate, err := store.Load(ctx, aggregateId)
		if !assert.Nil(t, err) || !assert.Len(t, aggregate.Events, 1) {
			return
		}

		event := aggregate.Events[0]
		assert.Equal(t, TestedEvent, event.EventType)
		assert.Equal(t, aggregateId, event.AggregateId)
		assert.Equal(t, we.TimestampFromTime(now), event.Timestamp)
		assert.Equal(t, we.TimestampFromTime(now), event.Revision.Timestamp())

		recordedAt, err := event.Timestamp.Time()
		if assert.Nil(t, err) {
			assert.True(t, now.Equal(recordedAt))
		}
		assert.NotEmpty(t, event.EventID)
	})

	t.Run("issues ordered event ids within a millisecond", func(t *testing.T) {
		now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
		store := NewEventStore(WithClock(fixedClock{now: now}))
		aggregateId := we.AggregateId{Type: "test", Key: "ids"}

		err := store.Publish(ctx, aggregateId, we.Options(), Tested{}, Tested{}, Tested{})
		if !assert.Nil(t, err) {
			return
		}

		aggregate, err := store.Load(ctx, aggregateId)
		if !assert.Nil(t, err) || !assert.Len(t, aggregate.Events, 3) {
			return
		}

		for i := 1; i < len(aggregate.Events); i++ {
			assert.Less(t, aggregate.Events[i-1].EventID.String(), aggregate.Events[i].EventID.String())
		}
		assert.Equal(t, we.TimestampFromTime(now), we.Revision(aggregate.Events[0].EventID).Timestamp())
	})

	t.Run("rejects empty publications", func(t *testing.T) {
		err := store.Publish(ctx, we.AggregateId{Type: "test", Key: "empty"}, we.Options())
		assert.NotNil(t, err)
	})

	t.Run("rejects malformed expected revisions", func(t *testing.T) {
		err := store.Publish(ctx, we.AggregateId{Type: "test", Key: "malformed"}, we.Options(we.WithExpectedRevision("nope")), Tested{})
		assert.NotNil(t, err)
		assert.NotErrorIs(t, err, we.RevisionConflict)
	})

	t.Run("isolates loaded events from the store", func(t *testing.T) {
		aggregateId := we.AggregateId{Type: "test", Key: "isolated"}
		if !assert.Nil(t, store.Publish(ctx, aggregateId, we.Options(), Tested{TestIntValue: 1})) {
			return
		}

		first, _ := store.Load(ctx, aggregateId)
		first.Events[0].EventType = "tampered"

		second, _ := store.Load(ctx, aggregateId)
		assert.Equal(t, TestedEvent, second.Events[0].EventType)
	})

	t.Run("admits one writer per revision", func(t *testing.T) {
		const writers = 8
		aggregateId := we.AggregateId{Type: "test", Key: "contended"}

		var wg sync.WaitGroup
		results := make(chan error, writers)
		wg.Add(writers)
		for i := 0; i < writers; i++ {
			go func(i int) {
				defer wg.Done()
				results <- store.Publish(ctx, aggregateId, we.Options(we.WithExpectedRevision(we.InitialRevision)), Tested{TestIntValue: i})
			}(i)
		}
		wg.Wait()
		close(results)

		succeeded := 0
		for err := range results {
			if err == nil {
				succeeded++
				continue
			}
			assert.ErrorIs(t, err, we.RevisionConflict)
		}

		assert.Equal(t, 1, succeeded)
	})

	t.Run("removes details for entities", func(t *testing.T) {
		aggregateId := we.AggregateId{Type: "test", Key: "removed"}

		err := store.Publish(ctx, aggregateId, we.Options(), Tested{}, Tested{TestIntValue: 1})
		if !assert.Nil(t, err) {
			return
		}

		count, err := store.Remove(ctx, aggregateId)
		if !assert.Nil(t, err) {
			return
		}

		assert.Equal(t, 2, count)

		loaded, err := store.Load(ctx, aggregateId)
		assert.Nil(t, err)
		assert.Equal(t, we.InitialRevision, loaded.Revision)
		assert.Empty(t, loaded.Events)
	})
}
