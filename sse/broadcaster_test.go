package sse

import (
	"sync"
	"testing"
	"time"

	"github.com/RodriLang/food-ordering-API-sub001/pkg/logger"
	"github.com/RodriLang/food-ordering-API-sub001/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBroadcaster(timeout time.Duration) *Broadcaster {
	return NewBroadcaster(logger.New("test"), timeout)
}

func TestSubscribe_SendsConnectionSuccessful(t *testing.T) {
	b := newTestBroadcaster(0)
	sub, err := b.Subscribe("sess-1")
	require.NoError(t, err)
	defer sub.Deregister()

	select {
	case e := <-sub.Events():
		assert.Equal(t, services.EventConnected, e.Name)
	case <-time.After(time.Second):
		t.Fatal("no connection event")
	}
	assert.Equal(t, 1, b.SubscriberCount("sess-1"))
}

func TestPublish_DeliversExactlyOnce(t *testing.T) {
	b := newTestBroadcaster(0)
	sub, err := b.Subscribe("sess-1")
	require.NoError(t, err)
	defer sub.Deregister()
	<-sub.Events() // drain connection event

	b.Publish("sess-1", services.EventNewOrder, "x")

	select {
	case e := <-sub.Events():
		assert.Equal(t, services.EventNewOrder, e.Name)
		assert.Equal(t, "x", e.Payload)
	case <-time.After(time.Second):
		t.Fatal("event not delivered")
	}
	select {
	case e := <-sub.Events():
		t.Fatalf("unexpected second event %q", e.Name)
	default:
	}
}

func TestPublish_OnlyToMatchingSession(t *testing.T) {
	b := newTestBroadcaster(0)
	s1, err := b.Subscribe("sess-1")
	require.NoError(t, err)
	defer s1.Deregister()
	s2, err := b.Subscribe("sess-2")
	require.NoError(t, err)
	defer s2.Deregister()
	<-s1.Events()
	<-s2.Events()

	b.Publish("sess-1", services.EventNewOrder, nil)

	select {
	case e := <-s1.Events():
		assert.Equal(t, services.EventNewOrder, e.Name)
	case <-time.After(time.Second):
		t.Fatal("event not delivered")
	}
	select {
	case e := <-s2.Events():
		t.Fatalf("leaked event %q to other session", e.Name)
	default:
	}
}

func TestDeregister_Idempotent(t *testing.T) {
	b := newTestBroadcaster(0)
	sub, err := b.Subscribe("sess-1")
	require.NoError(t, err)
	<-sub.Events() // drain connection event

	// completion, timeout and error paths may all fire; any order, any count
	var wg sync.WaitGroup
	for i := 0; i < 3; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sub.Deregister()
		}()
	}
	wg.Wait()

	assert.Equal(t, 0, b.SubscriberCount("sess-1"))

	select {
	case <-sub.Done():
	default:
		t.Fatal("done channel still open")
	}

	// publishing afterwards neither errors nor delivers
	b.Publish("sess-1", services.EventNewOrder, nil)
	select {
	case e := <-sub.Events():
		t.Fatalf("delivered %q to removed handle", e.Name)
	default:
	}
}

func TestDeregister_RemovesEmptySessionKey(t *testing.T) {
	b := newTestBroadcaster(0)
	s1, err := b.Subscribe("sess-1")
	require.NoError(t, err)
	s2, err := b.Subscribe("sess-1")
	require.NoError(t, err)

	s1.Deregister()
	assert.Equal(t, 1, b.SubscriberCount("sess-1"))
	s2.Deregister()
	assert.Equal(t, 0, b.SubscriberCount("sess-1"))

	b.mu.Lock()
	_, ok := b.sessions["sess-1"]
	b.mu.Unlock()
	assert.False(t, ok, "empty session key should be dropped")
}

func TestTimeout_FiresDeregister(t *testing.T) {
	b := newTestBroadcaster(20 * time.Millisecond)
	sub, err := b.Subscribe("sess-1")
	require.NoError(t, err)

	select {
	case <-sub.Done():
	case <-time.After(time.Second):
		t.Fatal("timeout never fired")
	}
	assert.Equal(t, 0, b.SubscriberCount("sess-1"))
}

func TestPublish_FullBufferDropsWithoutRemoving(t *testing.T) {
	b := newTestBroadcaster(0)
	sub, err := b.Subscribe("sess-1")
	require.NoError(t, err)
	defer sub.Deregister()

	// fill the buffer well past capacity; nothing blocks, handle stays
	for i := 0; i < 64; i++ {
		b.Publish("sess-1", services.EventCountUpdated, i)
	}
	assert.Equal(t, 1, b.SubscriberCount("sess-1"))
}

func TestPublish_ConcurrentWithDeregister(t *testing.T) {
	b := newTestBroadcaster(0)
	subs := make([]*Subscriber, 0, 16)
	for i := 0; i < 16; i++ {
		sub, err := b.Subscribe("sess-1")
		require.NoError(t, err)
		subs = append(subs, sub)
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			b.Publish("sess-1", services.EventNewOrder, i)
		}
	}()
	go func() {
		defer wg.Done()
		for _, s := range subs {
			s.Deregister()
		}
	}()
	wg.Wait()

	assert.Equal(t, 0, b.SubscriberCount("sess-1"))
}
