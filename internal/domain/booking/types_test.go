package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testStart = time.Date(2026, 9, 10, 18, 0, 0, 0, time.UTC)

func TestNewRequestWindow(t *testing.T) {
	r, err := NewRequest("Mori", "", 2, SeatCounter, testStart, 2*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, testStart, r.Window.Start)
	assert.Equal(t, testStart.Add(2*time.Hour), r.Window.End)
	assert.True(t, r.Window.Valid())
}

func TestNewRequestValidation(t *testing.T) {
	cases := []struct {
		name      string
		reqName   string
		phone     string
		partySize int
	}{
		{"party size zero", "Mori", "", 0},
		{"party size nine", "Mori", "090-0000-0000", 9},
		{"blank name", "   ", "", 2},
		{"phone missing for four", "Mori", "", 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewRequest(tc.reqName, tc.phone, tc.partySize, SeatCounter, testStart, 2*time.Hour)
			require.Error(t, err)
			var ie *InputError
			require.ErrorAs(t, err, &ie, "validation failures must be user-correctable input errors")
			assert.NotEmpty(t, ie.Msg)
		})
	}
}

func TestNewRequestPhoneOptionalForSmallParties(t *testing.T) {
	_, err := NewRequest("Mori", "", 3, SeatTable, testStart, 2*time.Hour)
	assert.NoError(t, err)
}

func TestNewRequestZeroStartInvalid(t *testing.T) {
	_, err := NewRequest("Mori", "", 2, SeatCounter, time.Time{}, 2*time.Hour)
	assert.Error(t, err)
}

func TestNewRequestTrimsFields(t *testing.T) {
	r, err := NewRequest("  Mori ", " 03-1111-2222 ", 2, SeatCounter, testStart, 2*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, "Mori", r.Name)
	assert.Equal(t, "03-1111-2222", r.Phone)
}
