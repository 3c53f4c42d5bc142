package usecases

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/example/yoyaku-web/internal/domain/booking"
	"github.com/example/yoyaku-web/internal/domain/closure"
)

type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeError   Outcome = "error"
)

// Result is the single thing the form ever gets back: an outcome and a
// message safe to show the customer. Internal detail stays in the logs.
type Result struct {
	Outcome Outcome
	Message string
}

// SubmitReservation runs one request end to end: shape check, closed-day
// check, availability scan, allocation policy, calendar write. Each step
// short-circuits on failure. There is no retry and no compensation: a write
// failure after an accepted decision is reported to the customer as
// unconfirmed and left to staff to reconcile.
type SubmitReservation struct {
	Calendar       booking.Calendar
	Pool           booking.CapacityPool
	CounterReserve int
	Rules          closure.Rules
	Holidays       closure.HolidaySource
	Now            func() time.Time
	Log            *slog.Logger
}

func (u SubmitReservation) Execute(ctx context.Context, req booking.ReservationRequest) Result {
	if err := req.Validate(); err != nil {
		var ie *booking.InputError
		if errors.As(err, &ie) {
			return Result{Outcome: OutcomeError, Message: ie.Msg}
		}
		u.Log.Error("request validation failed", "err", err)
		return Result{Outcome: OutcomeError, Message: msgTransient}
	}

	if reason, closed := u.Rules.Check(req.Window.Start, u.Now(), u.Holidays); closed {
		return Result{Outcome: OutcomeError, Message: closureMessage(req.Window.Start, reason)}
	}

	avail := CheckAvailability{Calendar: u.Calendar, Pool: u.Pool, Log: u.Log}
	remaining, err := avail.Execute(ctx, req.Window)
	if err != nil {
		// No Decision is computed on an unavailable scan.
		return Result{Outcome: OutcomeError, Message: msgTransient}
	}

	decision := booking.Decide(req, remaining, u.CounterReserve)
	if !decision.Accepted {
		return Result{Outcome: OutcomeError, Message: rejectMessage(req, decision)}
	}

	event, err := buildEvent(req, decision)
	if err != nil {
		u.Log.Error("building booking record failed", "err", err)
		return Result{Outcome: OutcomeError, Message: msgWriteFailed}
	}

	created, err := u.Calendar.InsertEvent(ctx, event)
	if err != nil {
		// Allocation succeeded but nothing durable exists. The customer must
		// not assume the seat is held.
		u.Log.Error("calendar write failed after accepted decision",
			"name", req.Name, "party_size", req.PartySize, "seat_type", req.SeatType,
			"err", errors.Mark(err, booking.ErrCalendarWriteFailed))
		return Result{Outcome: OutcomeError, Message: msgWriteFailed}
	}

	u.Log.Info("reservation recorded",
		"event_id", created.ID, "link", created.HTMLLink,
		"name", req.Name, "party_size", req.PartySize, "seat_type", req.SeatType,
		"seats_used", decision.SeatsUsed, "table_units_used", decision.TableUnits)
	return Result{Outcome: OutcomeSuccess, Message: successMessage(req)}
}

func buildEvent(req booking.ReservationRequest, d booking.Decision) (booking.Event, error) {
	summary := fmt.Sprintf("Reservation: %s, party of %d (%s)", req.Name, req.PartySize, req.SeatType)
	if req.Phone != "" {
		summary += fmt.Sprintf(" %s", req.Phone)
	}
	payload := booking.Payload{
		Version:        booking.PayloadVersion,
		RequesterName:  req.Name,
		PartySize:      req.PartySize,
		SeatType:       req.SeatType,
		SeatsUsed:      d.SeatsUsed,
		TableUnitsUsed: d.TableUnits,
		Phone:          req.Phone,
	}
	desc, err := payload.Encode()
	if err != nil {
		return booking.Event{}, err
	}
	return booking.Event{Summary: summary, Description: desc, Window: req.Window}, nil
}
