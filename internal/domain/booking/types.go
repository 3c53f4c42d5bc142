package booking

import (
	"strings"
	"time"
)

type SeatType string

const (
	SeatCounter SeatType = "counter"
	SeatTable   SeatType = "table"
)

// TimeWindow is the half-open interval [Start, End) a party occupies its seats.
type TimeWindow struct {
	Start time.Time
	End   time.Time
}

func NewTimeWindow(start time.Time, serviceDuration time.Duration) TimeWindow {
	return TimeWindow{Start: start, End: start.Add(serviceDuration)}
}

func (w TimeWindow) Valid() bool {
	return !w.Start.IsZero() && w.Start.Before(w.End)
}

// CapacityPool is the shop's fixed seating configuration.
type CapacityPool struct {
	CounterSeats int
	TableUnits   int
}

// ReservationRequest is one customer's submission. Build it with NewRequest;
// it is not mutated after construction.
type ReservationRequest struct {
	Name      string
	Phone     string
	PartySize int
	SeatType  SeatType
	Window    TimeWindow
}

// InputError is a user-correctable problem with a request. Its message is
// shown to the customer verbatim.
type InputError struct {
	Msg string
}

func (e *InputError) Error() string { return e.Msg }

func inputErr(msg string) error { return &InputError{Msg: msg} }

// NewRequest validates the submitted fields and builds an immutable request.
// The seat type is deliberately not validated here: unknown values flow
// through to the allocation policy, which rejects them with its own reason.
func NewRequest(name, phone string, partySize int, seatType SeatType, start time.Time, serviceDuration time.Duration) (ReservationRequest, error) {
	req := ReservationRequest{
		Name:      strings.TrimSpace(name),
		Phone:     strings.TrimSpace(phone),
		PartySize: partySize,
		SeatType:  seatType,
		Window:    NewTimeWindow(start, serviceDuration),
	}
	if err := req.Validate(); err != nil {
		return ReservationRequest{}, err
	}
	return req, nil
}

func (r ReservationRequest) Validate() error {
	if r.PartySize < 1 || r.PartySize > 8 {
		return inputErr("Please choose a party size between 1 and 8.")
	}
	if !r.Window.Valid() {
		return inputErr("The requested date or time could not be read. Please check it and try again.")
	}
	if r.Name == "" {
		return inputErr("Please enter a name for the reservation.")
	}
	if r.PartySize >= 4 && r.Phone == "" {
		return inputErr("A phone number is required for parties of 4 or more.")
	}
	return nil
}
