package authstream

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventSignedIn       EventType = "SIGNED_IN"
	EventSignedOut      EventType = "SIGNED_OUT"
	EventTokenRefreshed EventType = "TOKEN_REFRESHED"
)

// Event is one auth notification from the identity provider.
type Event struct {
	Type       EventType
	UserId     uuid.UUID
	Email      string
	OccurredAt time.Time
}

type Handler func(Event)

// Queue serializes auth events through a single consumer. Events are
// enqueued immediately; one drain loop delivers them to subscribers strictly
// one at a time, and a second drain never starts while one is active. This
// is the one deliberate ordering guarantee in the system.
type Queue struct {
	mu       sync.Mutex
	pending  []Event
	draining bool
	handlers []Handler
}

func NewQueue() *Queue {
	return &Queue{}
}

// Subscribe registers a handler. Handlers run on the drain goroutine, in
// subscription order, one event at a time. Subscribe before the first
// Enqueue; registration is not synchronized against an active drain.
func (q *Queue) Subscribe(h Handler) {
	q.handlers = append(q.handlers, h)
}

// Enqueue appends the event and starts a drain if none is running.
func (q *Queue) Enqueue(e Event) {
	q.mu.Lock()
	q.pending = append(q.pending, e)
	if q.draining {
		q.mu.Unlock()
		return
	}
	q.draining = true
	q.mu.Unlock()

	go q.drain()
}

func (q *Queue) drain() {
	for {
		q.mu.Lock()
		if len(q.pending) == 0 {
			q.draining = false
			q.mu.Unlock()
			return
		}
		e := q.pending[0]
		q.pending = q.pending[1:]
		q.mu.Unlock()

		for _, h := range q.handlers {
			h(e)
		}
	}
}

// Idle reports whether no drain is active and nothing is pending. Intended
// for shutdown checks and tests.
func (q *Queue) Idle() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return !q.draining && len(q.pending) == 0
}
