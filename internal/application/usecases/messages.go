package usecases

import (
	"fmt"
	"time"

	"github.com/example/yoyaku-web/internal/domain/booking"
	"github.com/example/yoyaku-web/internal/domain/closure"
)

// Customer-facing wording. Transient infrastructure trouble and exhausted
// capacity deliberately read differently: one invites a retry, the other a
// different slot.
const (
	msgTransient = "We could not check seat availability just now. " +
		"Please try again in a few minutes, or call the shop."

	msgWriteFailed = "A system problem occurred while recording your reservation, " +
		"so your seats may not be held. Please wait for a confirmation call from " +
		"the shop, or contact us directly if you are in a hurry."
)

func closureMessage(date time.Time, r closure.Reason) string {
	day := date.Format("January 2, 2006")
	switch r.Kind {
	case closure.ReasonNotFuture:
		return "Reservations are accepted from tomorrow onward. Please choose a future date."
	case closure.ReasonWeekly:
		return fmt.Sprintf("We are closed every %s, so %s is unavailable. Please choose another date.", r.Detail, day)
	case closure.ReasonYearEnd:
		return fmt.Sprintf("We are closed for the year-end and New Year break on %s. Please choose another date.", day)
	case closure.ReasonHoliday, closure.ReasonHolidayMonday:
		return fmt.Sprintf("We are closed on %s (%s). Please choose another date.", day, r.Detail)
	default:
		return fmt.Sprintf("We are closed on %s. Please choose another date.", day)
	}
}

func rejectMessage(req booking.ReservationRequest, d booking.Decision) string {
	switch d.Reason {
	case booking.ReasonCounterPartySize:
		return fmt.Sprintf("%s, counter seating is for parties of 1 to 4 only.", req.Name)
	case booking.ReasonCounterInsufficient:
		return fmt.Sprintf("%s, we are sorry: not enough counter seats are free for your party at that time.", req.Name)
	case booking.ReasonCounterReserve:
		return fmt.Sprintf("%s, we are sorry: only a few counter seats remain at that time. Please call the shop to ask about them.", req.Name)
	case booking.ReasonTablePartyTooSmall:
		return fmt.Sprintf("%s, table seating starts at parties of 3. For 1 or 2 guests please choose the counter.", req.Name)
	case booking.ReasonTableFull:
		return fmt.Sprintf("%s, we are sorry: no table is free at that time.", req.Name)
	case booking.ReasonTablePartyTooLarge:
		return fmt.Sprintf("%s, we cannot take table reservations for more than 8 guests online. Please call the shop for larger parties.", req.Name)
	case booking.ReasonInvalidSeatType:
		return "Please choose a valid seat type."
	default:
		return fmt.Sprintf("%s, we are sorry: that reservation could not be made.", req.Name)
	}
}

func successMessage(req booking.ReservationRequest) string {
	seat := "counter seats"
	if req.SeatType == booking.SeatTable {
		seat = "a table"
	}
	return fmt.Sprintf(
		"Thank you, %s. Your reservation for %d guests at %s on %s is confirmed. We look forward to seeing you.",
		req.Name, req.PartySize, seat, req.Window.Start.Format("January 2, 2006 at 15:04"))
}
