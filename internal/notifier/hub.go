package notifier

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	portssvc "github.com/gathr-app/gathr_backend/internal/core/ports/services"
	"github.com/gathr-app/gathr_backend/internal/middleware"
)

// subscriberBuffer is the number of pending messages a subscriber may lag
// behind before further messages are dropped for it.
const subscriberBuffer = 16

// Subscription is one live listener on an event's notification stream.
type Subscription struct {
	hub     *Hub
	eventID string
	ch      chan []byte

	closeOnce sync.Once
}

// Messages returns the channel the subscriber reads serialized notifications
// from. The channel is closed when the subscription is closed.
func (s *Subscription) Messages() <-chan []byte {
	return s.ch
}

// Close deregisters the subscription from its hub. Safe to call more than once.
func (s *Subscription) Close() {
	s.closeOnce.Do(func() {
		s.hub.remove(s)
		close(s.ch)
	})
}

// Hub fans notifications out to the websocket subscribers of each event.
// It implements the NotificationSink port: delivery is best effort and a
// subscriber that cannot keep up loses messages instead of blocking writers.
type Hub struct {
	mu   sync.RWMutex
	subs map[string]map[*Subscription]struct{}
}

var _ portssvc.NotificationSink = (*Hub)(nil)

// NewHub creates a new Hub with no subscribers.
func NewHub() *Hub {
	return &Hub{
		subs: make(map[string]map[*Subscription]struct{}),
	}
}

// Subscribe registers a new listener for the given event and returns its
// subscription. The caller must Close it when done.
func (h *Hub) Subscribe(eventID string) *Subscription {
	sub := &Subscription{
		hub:     h,
		eventID: eventID,
		ch:      make(chan []byte, subscriberBuffer),
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.subs[eventID] == nil {
		h.subs[eventID] = make(map[*Subscription]struct{})
	}
	h.subs[eventID][sub] = struct{}{}
	return sub
}

// Publish serializes the notification once and hands it to every subscriber
// of the event. Subscribers with a full buffer are skipped.
func (h *Hub) Publish(ctx context.Context, eventID string, n portssvc.Notification) {
	msg, err := json.Marshal(n)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to serialize notification",
			slog.String("event_id", eventID),
			slog.String("type", n.Type),
			slog.String("error", err.Error()))
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for sub := range h.subs[eventID] {
		select {
		case sub.ch <- msg:
		default:
			// Subscriber is lagging, drop the message for it.
		}
	}
}

// SubscriberCount returns the number of live subscriptions for an event.
func (h *Hub) SubscriberCount(eventID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[eventID])
}

func (h *Hub) remove(sub *Subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set := h.subs[sub.eventID]
	delete(set, sub)
	if len(set) == 0 {
		delete(h.subs, sub.eventID)
	}
}
