package booking

import (
	"encoding/json"

	"github.com/cockroachdb/errors"
)

// PayloadVersion is the current schema version written into new events.
const PayloadVersion = 1

// Payload is the machine-readable reservation record stored in an event
// description. SeatsUsed and TableUnitsUsed carry the resource cost the
// allocation policy committed; exactly one of them is non-zero for a
// well-formed record. A missing field reads as zero.
type Payload struct {
	Version        int      `json:"version,omitempty"`
	RequesterName  string   `json:"requester_name"`
	PartySize      int      `json:"party_size"`
	SeatType       SeatType `json:"seat_type"`
	SeatsUsed      int      `json:"seats_used,omitempty"`
	TableUnitsUsed int      `json:"table_units_used,omitempty"`
	Phone          string   `json:"phone,omitempty"`
}

func (p Payload) Encode() (string, error) {
	b, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "encode payload")
	}
	return string(b), nil
}

// ParsePayload decodes an event description. It insists on a JSON object;
// anything else (plain text, arrays, bare scalars) is an error so the
// aggregator can skip the event without guessing. Counts must be
// non-negative; used counts only ever grow a Snapshot.
func ParsePayload(description string) (Payload, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal([]byte(description), &raw); err != nil {
		return Payload{}, errors.Wrap(err, "description is not a JSON object")
	}
	if raw == nil {
		return Payload{}, errors.New("description is not a JSON object")
	}
	var p Payload
	if err := json.Unmarshal([]byte(description), &p); err != nil {
		return Payload{}, errors.Wrap(err, "decode payload fields")
	}
	if p.Version > PayloadVersion {
		return Payload{}, errors.Newf("unsupported payload version %d", p.Version)
	}
	if p.PartySize < 0 || p.SeatsUsed < 0 || p.TableUnitsUsed < 0 {
		return Payload{}, errors.Newf("negative count in payload (party_size=%d seats_used=%d table_units_used=%d)",
			p.PartySize, p.SeatsUsed, p.TableUnitsUsed)
	}
	return p, nil
}
