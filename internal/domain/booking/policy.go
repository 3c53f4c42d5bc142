package booking

// RejectReason identifies why the allocation policy turned a request down.
// The orchestrator maps reasons to customer-facing wording.
type RejectReason int

const (
	ReasonNone RejectReason = iota
	ReasonCounterPartySize
	ReasonCounterInsufficient
	ReasonCounterReserve
	ReasonTablePartyTooSmall
	ReasonTableFull
	ReasonTablePartyTooLarge
	ReasonInvalidSeatType
)

// Decision is the allocation outcome. On acceptance exactly one of SeatsUsed
// or TableUnits is non-zero; that value is written into the booking payload
// as-is, not re-derived at write time.
type Decision struct {
	Accepted   bool
	SeatsUsed  int
	TableUnits int
	Reason     RejectReason
}

func reject(r RejectReason) Decision { return Decision{Reason: r} }

// Decide applies the shop's seating policy to a validated request and the
// remaining capacity. Pure: same inputs always yield the same Decision.
//
// counterReserve is the number of counter seats that must still be free
// after the booking. The standing reserve keeps walk-in capacity and is
// intentional policy, not a safety margin to tune away.
func Decide(req ReservationRequest, remaining Remaining, counterReserve int) Decision {
	switch req.SeatType {
	case SeatCounter:
		if req.PartySize < 1 || req.PartySize > 4 {
			return reject(ReasonCounterPartySize)
		}
		need := req.PartySize
		if remaining.CounterSeats < need {
			return reject(ReasonCounterInsufficient)
		}
		if remaining.CounterSeats-need < counterReserve {
			return reject(ReasonCounterReserve)
		}
		return Decision{Accepted: true, SeatsUsed: need}

	case SeatTable:
		switch {
		case req.PartySize <= 2:
			return reject(ReasonTablePartyTooSmall)
		case req.PartySize <= 4:
			if remaining.TableUnits < 1 {
				return reject(ReasonTableFull)
			}
			return Decision{Accepted: true, TableUnits: 1}
		case req.PartySize <= 8:
			if remaining.TableUnits < 2 {
				return reject(ReasonTableFull)
			}
			return Decision{Accepted: true, TableUnits: 2}
		default:
			return reject(ReasonTablePartyTooLarge)
		}

	default:
		return reject(ReasonInvalidSeatType)
	}
}
