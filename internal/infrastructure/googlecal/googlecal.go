// Package googlecal adapts the Google Calendar API to the booking.Calendar
// capability interface. The shared shop calendar is the system's only
// datastore; this client is constructed once at startup and injected.
package googlecal

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/example/yoyaku-web/internal/domain/booking"
)

type Client struct {
	svc        *calendar.Service
	calendarID string
	loc        *time.Location
}

// New authenticates with a service-account credentials file and returns a
// ready client.
func New(ctx context.Context, calendarID, credentialsFile string, loc *time.Location) (*Client, error) {
	svc, err := calendar.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(calendar.CalendarScope),
	)
	if err != nil {
		return nil, errors.Wrap(err, "build calendar service")
	}
	return &Client{svc: svc, calendarID: calendarID, loc: loc}, nil
}

func (c *Client) ListEvents(ctx context.Context, w booking.TimeWindow) ([]booking.Event, error) {
	res, err := c.svc.Events.List(c.calendarID).
		TimeMin(w.Start.UTC().Format(time.RFC3339)).
		TimeMax(w.End.UTC().Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx).
		Do()
	if err != nil {
		return nil, errors.Wrap(err, "list events")
	}
	out := make([]booking.Event, 0, len(res.Items))
	for _, it := range res.Items {
		out = append(out, booking.Event{
			Summary:     it.Summary,
			Description: it.Description,
			Window: booking.TimeWindow{
				Start: c.eventTime(it.Start),
				End:   c.eventTime(it.End),
			},
		})
	}
	return out, nil
}

func (c *Client) InsertEvent(ctx context.Context, e booking.Event) (booking.CreatedEvent, error) {
	ev := &calendar.Event{
		Summary:     e.Summary,
		Description: e.Description,
		Start: &calendar.EventDateTime{
			DateTime: e.Window.Start.In(c.loc).Format(time.RFC3339),
			TimeZone: c.loc.String(),
		},
		End: &calendar.EventDateTime{
			DateTime: e.Window.End.In(c.loc).Format(time.RFC3339),
			TimeZone: c.loc.String(),
		},
	}
	created, err := c.svc.Events.Insert(c.calendarID, ev).Context(ctx).Do()
	if err != nil {
		return booking.CreatedEvent{}, errors.Wrap(err, "insert event")
	}
	return booking.CreatedEvent{ID: created.Id, HTMLLink: created.HtmlLink}, nil
}

// eventTime handles both timed and all-day events. Events without a readable
// time come back zero; the availability scan only cares about the payload, so
// a zero time is harmless there.
func (c *Client) eventTime(dt *calendar.EventDateTime) time.Time {
	if dt == nil {
		return time.Time{}
	}
	if dt.DateTime != "" {
		if t, err := time.Parse(time.RFC3339, dt.DateTime); err == nil {
			return t.In(c.loc)
		}
	}
	if dt.Date != "" {
		if t, err := time.ParseInLocation("2006-01-02", dt.Date, c.loc); err == nil {
			return t
		}
	}
	return time.Time{}
}
