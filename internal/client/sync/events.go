package sync

import (
	gosync "sync"

	"github.com/platebook/platebook/internal/models"
)

// EventType identifies a sync lifecycle notification.
type EventType string

const (
	// EventSyncStarted is published once when a SyncAll run begins.
	EventSyncStarted EventType = "sync_started"
	// EventConflictDetected is published per record when a push hits a
	// version mismatch.
	EventConflictDetected EventType = "conflict_detected"
	// EventRecordError is published per record when a push fails with a
	// non-conflict error.
	EventRecordError EventType = "record_error"
	// EventSyncCompleted is published once when a SyncAll run finishes,
	// carrying the aggregate result.
	EventSyncCompleted EventType = "sync_completed"
)

// Event is one sync lifecycle notification. Collection and RecordID are set
// for per-record events; Conflict for EventConflictDetected; Result for
// EventSyncCompleted.
type Event struct {
	Type       EventType
	Collection models.Collection
	RecordID   string
	Error      string
	Conflict   *models.Conflict
	Result     *SyncResult
}

// Bus is a small typed publish-subscribe channel for sync events, decoupling
// the engine from whatever surfaces notifications to the user. Publishing
// never blocks: a subscriber that falls behind loses events rather than
// stalling the sync.
type Bus struct {
	mu     gosync.Mutex
	subs   map[int]chan Event
	nextID int
	closed bool
}

// NewBus creates an event bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[int]chan Event)}
}

// Subscribe registers a new subscriber with the given channel buffer and
// returns the receive channel plus an unsubscribe function.
func (b *Bus) Subscribe(buffer int) (<-chan Event, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	ch := make(chan Event, buffer)
	if b.closed {
		close(ch)
		return ch, func() {}
	}
	b.subs[id] = ch

	return ch, func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if sub, ok := b.subs[id]; ok {
			delete(b.subs, id)
			close(sub)
		}
	}
}

// Publish delivers an event to every subscriber without blocking.
func (b *Bus) Publish(ev Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	for _, ch := range b.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}

// Close closes all subscriber channels. Publish becomes a no-op.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for id, ch := range b.subs {
		delete(b.subs, id)
		close(ch)
	}
}
