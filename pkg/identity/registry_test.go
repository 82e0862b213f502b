package identity

import (
	"testing"
	"time"

	"talentmatch-be/pkg/authstream"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryTracksSignIns(t *testing.T) {
	r := NewRegistry()
	userId := uuid.New()
	signedIn := time.Now()

	r.HandleEvent(authstream.Event{
		Type:       authstream.EventSignedIn,
		UserId:     userId,
		Email:      "ada@example.com",
		OccurredAt: signedIn,
	})

	ident := r.Current(userId)
	require.NotNil(t, ident)
	assert.Equal(t, userId, ident.Id)
	assert.Equal(t, "ada@example.com", ident.Email)
	assert.Equal(t, signedIn, ident.SignedIn)
	assert.Equal(t, 1, r.ActiveCount())
}

func TestRegistrySignOutRemovesIdentity(t *testing.T) {
	r := NewRegistry()
	userId := uuid.New()

	r.HandleEvent(authstream.Event{Type: authstream.EventSignedIn, UserId: userId})
	r.HandleEvent(authstream.Event{Type: authstream.EventSignedOut, UserId: userId})

	assert.Nil(t, r.Current(userId))
	assert.Equal(t, 0, r.ActiveCount())
}

func TestRegistryRefreshUpdatesTimestamp(t *testing.T) {
	r := NewRegistry()
	userId := uuid.New()
	first := time.Now().Add(-time.Hour)
	second := time.Now()

	r.HandleEvent(authstream.Event{Type: authstream.EventSignedIn, UserId: userId, OccurredAt: first})
	r.HandleEvent(authstream.Event{Type: authstream.EventTokenRefreshed, UserId: userId, OccurredAt: second})

	ident := r.Current(userId)
	require.NotNil(t, ident)
	assert.Equal(t, second, ident.SignedIn)
	assert.Equal(t, 1, r.ActiveCount())
}

func TestRegistryViaQueueSubscription(t *testing.T) {
	r := NewRegistry()
	q := authstream.NewQueue()
	q.Subscribe(r.HandleEvent)

	a, b := uuid.New(), uuid.New()
	q.Enqueue(authstream.Event{Type: authstream.EventSignedIn, UserId: a})
	q.Enqueue(authstream.Event{Type: authstream.EventSignedIn, UserId: b})
	q.Enqueue(authstream.Event{Type: authstream.EventSignedOut, UserId: a})

	require.Eventually(t, q.Idle, time.Second, 5*time.Millisecond)
	assert.Nil(t, r.Current(a))
	assert.NotNil(t, r.Current(b))
	assert.Equal(t, 1, r.ActiveCount())
}
