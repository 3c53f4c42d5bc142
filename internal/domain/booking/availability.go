package booking

// Snapshot is the seat/table usage committed by existing bookings in a
// window. Derived fresh on every request, never stored.
type Snapshot struct {
	CounterSeatsUsed int
	TableUnitsUsed   int
}

// Remaining is what is left of the pool after subtracting a Snapshot. Values
// may be negative when an external actor over-booked the calendar; callers
// must treat negative as "no capacity" rather than clamping it away.
type Remaining struct {
	CounterSeats int
	TableUnits   int
}

// Unavailable marks an availability scan that could not run because the
// calendar could not be queried. It is distinct from legitimate zero or
// negative capacity and must never feed the allocation policy.
var Unavailable = Remaining{CounterSeats: -1, TableUnits: -1}

// ParseFailure records an event whose description could not be read as a
// payload. Such events contribute zero usage and never abort the scan.
type ParseFailure struct {
	Summary string
	Err     error
}

// AggregateUsage sums the committed resource costs of the given events.
// Event order does not affect the result.
func AggregateUsage(events []Event) (Snapshot, []ParseFailure) {
	var snap Snapshot
	var skipped []ParseFailure
	for _, ev := range events {
		p, err := ParsePayload(ev.Description)
		if err != nil {
			skipped = append(skipped, ParseFailure{Summary: ev.Summary, Err: err})
			continue
		}
		switch p.SeatType {
		case SeatCounter:
			snap.CounterSeatsUsed += p.SeatsUsed
		case SeatTable:
			snap.TableUnitsUsed += p.TableUnitsUsed
		}
	}
	return snap, skipped
}

func (s Snapshot) RemainingIn(pool CapacityPool) Remaining {
	return Remaining{
		CounterSeats: pool.CounterSeats - s.CounterSeatsUsed,
		TableUnits:   pool.TableUnits - s.TableUnitsUsed,
	}
}
