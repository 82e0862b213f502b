package authstream

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueDeliversInFIFOOrder(t *testing.T) {
	q := NewQueue()

	var mu sync.Mutex
	var got []uuid.UUID
	q.Subscribe(func(e Event) {
		mu.Lock()
		got = append(got, e.UserId)
		mu.Unlock()
	})

	want := make([]uuid.UUID, 20)
	for i := range want {
		want[i] = uuid.New()
		q.Enqueue(Event{Type: EventSignedIn, UserId: want[i], OccurredAt: time.Now()})
	}

	require.Eventually(t, q.Idle, time.Second, 5*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, want, got)
}

func TestQueueRunsHandlersOneAtATime(t *testing.T) {
	q := NewQueue()

	var active, maxActive int32
	q.Subscribe(func(e Event) {
		cur := atomic.AddInt32(&active, 1)
		for {
			prev := atomic.LoadInt32(&maxActive)
			if cur <= prev || atomic.CompareAndSwapInt32(&maxActive, prev, cur) {
				break
			}
		}
		time.Sleep(time.Millisecond)
		atomic.AddInt32(&active, -1)
	})

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			q.Enqueue(Event{Type: EventSignedIn, UserId: uuid.New()})
		}()
	}
	wg.Wait()

	require.Eventually(t, q.Idle, time.Second, 5*time.Millisecond)
	assert.Equal(t, int32(1), atomic.LoadInt32(&maxActive))
}

func TestQueueEnqueueDuringDrain(t *testing.T) {
	q := NewQueue()

	var count int32
	q.Subscribe(func(e Event) {
		// The first event enqueues a follow-up while the drain is active;
		// the running drain must pick it up rather than a second one starting.
		if atomic.AddInt32(&count, 1) == 1 {
			q.Enqueue(Event{Type: EventSignedOut, UserId: e.UserId})
		}
	})

	q.Enqueue(Event{Type: EventSignedIn, UserId: uuid.New()})

	require.Eventually(t, q.Idle, time.Second, 5*time.Millisecond)
	assert.Equal(t, int32(2), atomic.LoadInt32(&count))
}

func TestQueueFansOutToAllSubscribers(t *testing.T) {
	q := NewQueue()

	var first, second []EventType
	var mu sync.Mutex
	q.Subscribe(func(e Event) {
		mu.Lock()
		first = append(first, e.Type)
		mu.Unlock()
	})
	q.Subscribe(func(e Event) {
		mu.Lock()
		second = append(second, e.Type)
		mu.Unlock()
	})

	q.Enqueue(Event{Type: EventSignedIn, UserId: uuid.New()})
	q.Enqueue(Event{Type: EventTokenRefreshed, UserId: uuid.New()})

	require.Eventually(t, q.Idle, time.Second, 5*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []EventType{EventSignedIn, EventTokenRefreshed}, first)
	assert.Equal(t, []EventType{EventSignedIn, EventTokenRefreshed}, second)
}

func TestIdleOnFreshQueue(t *testing.T) {
	assert.True(t, NewQueue().Idle())
}
