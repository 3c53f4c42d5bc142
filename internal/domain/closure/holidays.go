package closure

import (
	"sort"
	"time"

	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/jp"
)

// JapanHolidays resolves Japanese public holidays, including substitute
// holidays observed when the actual day lands on a Sunday.
type JapanHolidays struct{}

func (JapanHolidays) Holiday(d time.Time) (string, bool) {
	for _, h := range jp.Holidays {
		actual, observed := h.Calc(d.Year())
		if sameDate(actual, d) || sameDate(observed, d) {
			return h.Name, true
		}
	}
	return "", false
}

// HolidayDate is one dated holiday, used to feed the form's date picker.
type HolidayDate struct {
	Date time.Time
	Name string
}

// JapanHolidayDates lists every holiday falling in the given years, sorted by
// date. Observed (substitute) days are included alongside the actual days.
func JapanHolidayDates(years ...int) []HolidayDate {
	seen := make(map[string]bool)
	var out []HolidayDate
	add := func(d time.Time, h *cal.Holiday) {
		if d.IsZero() {
			return
		}
		k := d.Format("2006-01-02")
		if seen[k] {
			return
		}
		seen[k] = true
		out = append(out, HolidayDate{Date: d, Name: h.Name})
	}
	for _, y := range years {
		for _, h := range jp.Holidays {
			actual, observed := h.Calc(y)
			add(actual, h)
			add(observed, h)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

func sameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
