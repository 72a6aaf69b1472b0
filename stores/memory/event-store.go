// Package memory keeps event streams in process memory. Nothing survives the
// store value itself.
package memory

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/weegigs/wee-counter-go/internal"
	"github.com/weegigs/wee-counter-go/we"
)

type EventStoreOption func(*EventStore)

func NewEventStore(options ...EventStoreOption) *EventStore {
	store := &EventStore{
		streams: make(map[we.EncodedAggregateId][]we.RecordedEvent),
	}

	for _, option := range options {
		option(store)
	}

	if store.clock == nil {
		store.clock = defaultClock{}
	}

	if store.id == nil {
		store.id = NewDefaultIdGenerator(store.clock)
	}

	return store
}

type EventStore struct {
	lk       sync.RWMutex
	streams  map[we.EncodedAggregateId][]we.RecordedEvent
	sequence uint64
	last     uint64
	clock    Clock
	id       IDGenerator
}

type pending struct {
	eventType we.EventType
	data      we.Data
}

func (es *EventStore) Publish(ctx context.Context, aggregateId we.AggregateId, options we.PublishOptions, events ...we.DomainEvent) error {
	if len(events) == 0 {
		return errors.New("attempted to publish empty list of events")
	}

	if len(events) > math.MaxUint16+1 {
		return errors.Errorf("change set of %d events exceeds the store limit", len(events))
	}

	encoded := make([]pending, len(events))
	for i, event := range events {
		data, err := we.MarshalToData(event)
		if err != nil {
			return errors.Wrap(err, "failed to marshal event")
		}

		encoded[i] = pending{eventType: we.EventTypeOf(event), data: data}
	}

	key := aggregateId.Encode()

	es.lk.Lock()
	defer es.lk.Unlock()

	stream := es.streams[key]
	if err := expectRevision(stream, options.ExpectedRevision); err != nil {
		if errors.Is(err, we.RevisionConflict) {
			log.Debug().Str("aggregate", key.String()).Str("expected", options.ExpectedRevision.String()).Msg("revision conflict")
		}

		return err
	}

	now := es.clock.Now()
	ts := es.timestamp(now)
	timestamp := we.TimestampFromTime(now)
	es.sequence++

	recorded := make([]we.RecordedEvent, len(encoded))
	for i, event := range encoded {
		revision, err := internal.Position{Timestamp: ts, Sequence: es.sequence, Index: uint16(i)}.Revision()
		if err != nil {
			return errors.Wrap(err, "failed to encode revision")
		}

		recorded[i] = we.RecordedEvent{
			AggregateId: aggregateId,
			Revision:    revision,
			EventID:     es.id.Create(),
			EventType:   event.eventType,
			Timestamp:   timestamp,
			Metadata:    options.RecordedEventMetadata,
			Data:        event.data,
		}
	}

	es.streams[key] = append(stream, recorded...)

	return nil
}

// timestamp never moves backwards so revisions keep sorting in publication
// order when the clock does.
func (es *EventStore) timestamp(now time.Time) uint64 {
	ts := ulid.Timestamp(now)
	if ts < es.last {
		ts = es.last
	}
	es.last = ts

	return ts
}

func expectRevision(stream []we.RecordedEvent, expected we.Revision) error {
	if expected == "" {
		return nil
	}

	if expected == we.InitialRevision {
		if len(stream) > 0 {
			return we.RevisionConflict
		}

		return nil
	}

	if _, err := internal.ParsePosition(expected); err != nil {
		return errors.Wrap(err, "invalid expected revision")
	}

	if len(stream) == 0 || stream[len(stream)-1].Revision != expected {
		return we.RevisionConflict
	}

	return nil
}

func (es *EventStore) Load(ctx context.Context, id we.AggregateId) (we.Aggregate, error) {
	es.lk.RLock()
	stream := es.streams[id.Encode()]
	events := make([]we.RecordedEvent, len(stream))
	copy(events, stream)
	es.lk.RUnlock()

	return we.NewAggregate(id, events), nil
}

// Remove discards the aggregate's stream and reports how many events it held.
func (es *EventStore) Remove(ctx context.Context, id we.AggregateId) (int, error) {
	key := id.Encode()

	es.lk.Lock()
	defer es.lk.Unlock()

	count := len(es.streams[key])
	delete(es.streams, key)

	return count, nil
}
