package identity

import (
	"sync"
	"time"

	"talentmatch-be/pkg/authstream"

	"github.com/google/uuid"
)

// Identity is the authenticated subject as the core sees it. The core never
// authenticates anyone itself; it only reacts to identity state changes
// arriving on the auth-event queue.
type Identity struct {
	Id       uuid.UUID
	Email    string
	SignedIn time.Time
}

// Registry tracks currently signed-in identities. It is fed exclusively by
// the serialized auth-event queue, so updates arrive one at a time.
type Registry struct {
	mu     sync.RWMutex
	active map[uuid.UUID]Identity
}

func NewRegistry() *Registry {
	return &Registry{active: make(map[uuid.UUID]Identity)}
}

// HandleEvent is the Registry's auth-queue subscription.
func (r *Registry) HandleEvent(e authstream.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	switch e.Type {
	case authstream.EventSignedIn, authstream.EventTokenRefreshed:
		r.active[e.UserId] = Identity{Id: e.UserId, Email: e.Email, SignedIn: e.OccurredAt}
	case authstream.EventSignedOut:
		delete(r.active, e.UserId)
	}
}

// Current returns the identity for the given subject, or nil when not
// signed in.
func (r *Registry) Current(id uuid.UUID) *Identity {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if ident, ok := r.active[id]; ok {
		return &ident
	}
	return nil
}

func (r *Registry) ActiveCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.active)
}
