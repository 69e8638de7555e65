package notifier_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	portssvc "github.com/gathr-app/gathr_backend/internal/core/ports/services"
	"github.com/gathr-app/gathr_backend/internal/notifier"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receiveOne(t *testing.T, sub *notifier.Subscription) portssvc.Notification {
	t.Helper()
	select {
	case msg := <-sub.Messages():
		var n portssvc.Notification
		require.NoError(t, json.Unmarshal(msg, &n))
		return n
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for notification")
		return portssvc.Notification{}
	}
}

func TestHub_PublishReachesAllSubscribers(t *testing.T) {
	hub := notifier.NewHub()
	first := hub.Subscribe("evt-1")
	defer first.Close()
	second := hub.Subscribe("evt-1")
	defer second.Close()

	hub.Publish(context.Background(), "evt-1", portssvc.Notification{
		Type:    "post.created",
		Payload: map[string]string{"post_id": "post-1"},
	})

	for _, sub := range []*notifier.Subscription{first, second} {
		n := receiveOne(t, sub)
		assert.Equal(t, "post.created", n.Type)
	}
}

func TestHub_PublishScopedToEvent(t *testing.T) {
	hub := notifier.NewHub()
	target := hub.Subscribe("evt-1")
	defer target.Close()
	other := hub.Subscribe("evt-2")
	defer other.Close()

	hub.Publish(context.Background(), "evt-1", portssvc.Notification{Type: "comment.created"})

	n := receiveOne(t, target)
	assert.Equal(t, "comment.created", n.Type)

	select {
	case msg := <-other.Messages():
		t.Fatalf("subscriber of another event received %s", msg)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHub_PublishWithoutSubscribersIsNoop(t *testing.T) {
	hub := notifier.NewHub()

	// Must not block or panic.
	hub.Publish(context.Background(), "evt-1", portssvc.Notification{Type: "post.created"})

	assert.Equal(t, 0, hub.SubscriberCount("evt-1"))
}

func TestHub_SlowSubscriberDoesNotBlockPublish(t *testing.T) {
	hub := notifier.NewHub()
	sub := hub.Subscribe("evt-1")
	defer sub.Close()

	done := make(chan struct{})
	go func() {
		defer close(done)
		// Never drained: once the buffer is full, further publishes drop.
		for i := 0; i < 100; i++ {
			hub.Publish(context.Background(), "evt-1", portssvc.Notification{Type: "post.created"})
		}
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on a slow subscriber")
	}
}

func TestHub_CloseRemovesSubscription(t *testing.T) {
	hub := notifier.NewHub()
	sub := hub.Subscribe("evt-1")
	require.Equal(t, 1, hub.SubscriberCount("evt-1"))

	sub.Close()
	assert.Equal(t, 0, hub.SubscriberCount("evt-1"))

	_, open := <-sub.Messages()
	assert.False(t, open)

	// Closing twice is safe.
	sub.Close()
}
