package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayloadRoundTrip(t *testing.T) {
	p := Payload{
		Version:       PayloadVersion,
		RequesterName: "Sato",
		PartySize:     4,
		SeatType:      SeatCounter,
		SeatsUsed:     4,
		Phone:         "090-0000-0000",
	}
	desc, err := p.Encode()
	require.NoError(t, err)

	got, err := ParsePayload(desc)
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestParsePayloadRejectsNonObjects(t *testing.T) {
	for _, desc := range []string{
		"",
		"see you at 7pm",
		`"just a string"`,
		`[1, 2, 3]`,
		`42`,
	} {
		_, err := ParsePayload(desc)
		assert.Error(t, err, "description %q", desc)
	}
}

func TestParsePayloadRejectsNegativeCounts(t *testing.T) {
	for _, desc := range []string{
		`{"seat_type": "counter", "seats_used": -5}`,
		`{"seat_type": "table", "table_units_used": -1}`,
		`{"seat_type": "counter", "party_size": -2, "seats_used": 2}`,
	} {
		_, err := ParsePayload(desc)
		assert.Error(t, err, "description %q", desc)
	}
}

func TestParsePayloadRejectsNullLiteral(t *testing.T) {
	_, err := ParsePayload(`null`)
	assert.Error(t, err)
}

func TestParsePayloadFutureVersion(t *testing.T) {
	_, err := ParsePayload(`{"version": 99, "seat_type": "counter", "seats_used": 2}`)
	assert.Error(t, err)
}

func TestParsePayloadLegacyWithoutVersion(t *testing.T) {
	// Events written before the payload was versioned carry no version field.
	p, err := ParsePayload(`{"requester_name": "Ito", "party_size": 2, "seat_type": "counter", "seats_used": 2}`)
	require.NoError(t, err)
	assert.Zero(t, p.Version)
	assert.Equal(t, 2, p.SeatsUsed)
}
