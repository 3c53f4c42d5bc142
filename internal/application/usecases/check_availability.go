package usecases

import (
	"context"
	"log/slog"

	"github.com/cockroachdb/errors"

	"github.com/example/yoyaku-web/internal/domain/booking"
)

// CheckAvailability scans the calendar for one service window and returns the
// remaining capacity. On a calendar read failure it returns
// booking.Unavailable together with an error wrapping
// booking.ErrCalendarUnavailable; callers must branch on the error before
// doing any arithmetic with the counts.
type CheckAvailability struct {
	Calendar booking.Calendar
	Pool     booking.CapacityPool
	Log      *slog.Logger
}

func (u CheckAvailability) Execute(ctx context.Context, w booking.TimeWindow) (booking.Remaining, error) {
	events, err := u.Calendar.ListEvents(ctx, w)
	if err != nil {
		u.Log.Error("calendar query failed",
			"window_start", w.Start, "window_end", w.End, "err", err)
		return booking.Unavailable, errors.Mark(err, booking.ErrCalendarUnavailable)
	}
	snap, skipped := booking.AggregateUsage(events)
	for _, f := range skipped {
		u.Log.Warn("event description is not a reservation payload; counted as zero",
			"summary", f.Summary, "err", f.Err)
	}
	u.Log.Info("availability computed",
		"window_start", w.Start,
		"counter_used", snap.CounterSeatsUsed, "table_units_used", snap.TableUnitsUsed,
		"events", len(events), "skipped", len(skipped))
	return snap.RemainingIn(u.Pool), nil
}
