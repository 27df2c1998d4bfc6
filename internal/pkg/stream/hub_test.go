package stream

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSubscribePublish(t *testing.T) {
	hub := NewHub()
	key := Key("h1", "shopping")

	ch, cancel := hub.Subscribe(key)
	defer cancel()

	hub.Publish(key, Snapshot{Collection: "shopping", Items: []string{"milk"}})

	select {
	case snap := <-ch:
		require.Equal(t, "shopping", snap.Collection)
	case <-time.After(time.Second):
		t.Fatal("no snapshot received")
	}
}

func TestPublishToOtherTopicNotDelivered(t *testing.T) {
	hub := NewHub()

	ch, cancel := hub.Subscribe(Key("h1", "shopping"))
	defer cancel()

	hub.Publish(Key("h2", "shopping"), Snapshot{Collection: "shopping"})
	hub.Publish(Key("h1", "tasks"), Snapshot{Collection: "tasks"})

	select {
	case <-ch:
		t.Fatal("unexpected snapshot")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestCancelClosesChannel(t *testing.T) {
	hub := NewHub()
	key := Key("h1", "tasks")

	ch, cancel := hub.Subscribe(key)
	require.Equal(t, 1, hub.SubscriberCount(key))

	cancel()
	require.Equal(t, 0, hub.SubscriberCount(key))

	_, open := <-ch
	require.False(t, open)

	// Double cancel is a no-op.
	cancel()
}

func TestSlowSubscriberDoesNotBlockPublish(t *testing.T) {
	hub := NewHub()
	key := Key("h1", "shopping")

	_, cancel := hub.Subscribe(key)
	defer cancel()

	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			hub.Publish(key, Snapshot{Collection: "shopping", Items: i})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on slow subscriber")
	}
}
