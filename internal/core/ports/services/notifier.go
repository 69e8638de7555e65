package services

import "context"

// Notification is a typed payload pushed to the subscribers of an event.
type Notification struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

// NotificationSink fans a notification out to every subscriber of an event.
// Delivery is best effort: implementations must never block the caller on a
// slow subscriber and failures are not surfaced.
type NotificationSink interface {
	Publish(ctx context.Context, eventID string, n Notification)
}
