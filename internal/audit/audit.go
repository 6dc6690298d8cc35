// Package audit records entity-change events. Publishing is best-effort: a
// failed emit is logged by the caller and never fails the business operation.
package audit

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Actions an event can carry.
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// Event describes one change to one entity.
type Event struct {
	ID         uuid.UUID `json:"id"`
	EntityType string    `json:"entityType"`
	EntityID   uuid.UUID `json:"entityId"`
	Action     string    `json:"action"`
	Timestamp  time.Time `json:"timestamp"`
}

// Publisher is the sink for entity-change events. Implementations must be
// safe for concurrent use.
type Publisher interface {
	Emit(ctx context.Context, event Event) error
}

// MemoryPublisher keeps events in memory. Used in tests and when no broker is
// configured.
type MemoryPublisher struct {
	mu     sync.Mutex
	events []Event
}

func NewMemoryPublisher() *MemoryPublisher {
	return &MemoryPublisher{}
}

func (p *MemoryPublisher) Emit(_ context.Context, event Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	p.events = append(p.events, event)
	return nil
}

// Events returns a copy of everything emitted so far.
func (p *MemoryPublisher) Events() []Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]Event{}, p.events...)
}
