package booking

import (
	"context"
	"errors"
)

// Event is the calendar's view of a booking. Description is free text that is
// expected, but not guaranteed, to hold an encoded Payload.
type Event struct {
	Summary     string
	Description string
	Window      TimeWindow
}

type CreatedEvent struct {
	ID       string
	HTMLLink string
}

// Calendar is the external collaborator that owns all durable reservation
// state. ListEvents returns events intersecting the window (partial overlap
// counts), ordered by start time. InsertEvent is at-most-once: no idempotency
// key is attached, so callers must not retry a timed-out write.
type Calendar interface {
	ListEvents(ctx context.Context, w TimeWindow) ([]Event, error)
	InsertEvent(ctx context.Context, e Event) (CreatedEvent, error)
}

var (
	ErrCalendarUnavailable = errors.New("calendar unavailable")
	ErrCalendarWriteFailed = errors.New("calendar write failed")
)
