package web

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/yoyaku-web/internal/application/usecases"
	"github.com/example/yoyaku-web/internal/domain/booking"
	"github.com/example/yoyaku-web/internal/domain/closure"
)

type stubCalendar struct {
	inserted []booking.Event
}

func (s *stubCalendar) ListEvents(ctx context.Context, w booking.TimeWindow) ([]booking.Event, error) {
	return nil, nil
}

func (s *stubCalendar) InsertEvent(ctx context.Context, e booking.Event) (booking.CreatedEvent, error) {
	s.inserted = append(s.inserted, e)
	return booking.CreatedEvent{ID: "evt-1"}, nil
}

type noHolidays struct{}

func (noHolidays) Holiday(time.Time) (string, bool) { return "", false }

func newTestServer(t *testing.T, cal *stubCalendar) *Server {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	rules := closure.Rules{Weekdays: map[time.Weekday]bool{time.Sunday: true}}
	submit := usecases.SubmitReservation{
		Calendar:       cal,
		Pool:           booking.CapacityPool{CounterSeats: 11, TableUnits: 2},
		CounterReserve: 5,
		Rules:          rules,
		Holidays:       noHolidays{},
		Now:            func() time.Time { return time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC) },
		Log:            log,
	}
	tmpl, err := ParseTemplates()
	require.NoError(t, err)
	hash, block := testKeys()
	srv := New(":0", NewFlashStore(hash, block), submit, rules,
		ShopInfo{Phone: "03-0000-0000"}, 2*time.Hour, time.UTC, tmpl, log)
	srv.now = submit.Now
	return srv
}

func postForm(t *testing.T, h http.Handler, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/reserve", strings.NewReader(form.Encode()))
	req.Header.Set("content-type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func followResult(t *testing.T, h http.Handler, rec *httptest.ResponseRecorder) string {
	t.Helper()
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/result", rec.Header().Get("Location"))

	req := httptest.NewRequest(http.MethodGet, "/result", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	rec2 := httptest.NewRecorder()
	h.ServeHTTP(rec2, req)
	require.Equal(t, http.StatusOK, rec2.Code)
	return rec2.Body.String()
}

func TestReserveHappyPath(t *testing.T) {
	cal := &stubCalendar{}
	h := newTestServer(t, cal).Handler()

	rec := postForm(t, h, url.Values{
		"reservation_date": {"2026-09-10"},
		"reservation_time": {"18:00"},
		"party_size":       {"2"},
		"seat_type":        {"counter"},
		"name":             {"Suzuki"},
	})
	body := followResult(t, h, rec)

	assert.Contains(t, body, "Suzuki")
	assert.Contains(t, body, "confirmed")
	assert.Len(t, cal.inserted, 1)
}

func TestReserveBadPartySize(t *testing.T) {
	cal := &stubCalendar{}
	h := newTestServer(t, cal).Handler()

	rec := postForm(t, h, url.Values{
		"reservation_date": {"2026-09-10"},
		"reservation_time": {"18:00"},
		"party_size":       {"lots"},
		"seat_type":        {"counter"},
		"name":             {"Suzuki"},
	})
	body := followResult(t, h, rec)

	assert.Contains(t, body, "party size")
	assert.Empty(t, cal.inserted)
}

func TestReserveBadDate(t *testing.T) {
	cal := &stubCalendar{}
	h := newTestServer(t, cal).Handler()

	rec := postForm(t, h, url.Values{
		"reservation_date": {"next friday"},
		"reservation_time": {"18:00"},
		"party_size":       {"2"},
		"seat_type":        {"counter"},
		"name":             {"Suzuki"},
	})
	body := followResult(t, h, rec)

	assert.Contains(t, body, "date or time")
	assert.Empty(t, cal.inserted)
}

func TestReserveRequiresPost(t *testing.T) {
	h := newTestServer(t, &stubCalendar{}).Handler()
	req := httptest.NewRequest(http.MethodGet, "/reserve", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestFormPageRendersPickerData(t *testing.T) {
	h := newTestServer(t, &stubCalendar{}).Handler()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"2026-09-01"`, "min date is tomorrow")
	assert.Contains(t, body, "[0]", "Sunday is a disabled weekday")
}

func TestClosedHolidayDatesKeepTomorrowsHoliday(t *testing.T) {
	// Late evening in a zone behind UTC: New Year's Day has already begun in
	// UTC but is still tomorrow on the local calendar, so it must stay in
	// the picker's disabled dates.
	srv := &Server{rules: closure.Rules{AllHolidays: true}}
	loc := time.FixedZone("UTC-10", -10*60*60)
	today := time.Date(2025, 12, 31, 20, 0, 0, 0, loc)

	dates := srv.closedHolidayDates(today)
	assert.Contains(t, dates, "2026-01-01")
	for _, d := range dates {
		assert.Greater(t, d, today.Format("2006-01-02"))
	}
}

func TestResultWithoutFlashRedirectsHome(t *testing.T) {
	h := newTestServer(t, &stubCalendar{}).Handler()
	req := httptest.NewRequest(http.MethodGet, "/result", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
}
