// Package closure decides whether a calendar date is bookable under the
// shop's closed-day configuration.
package closure

import (
	"strings"
	"time"
)

// HolidaySource answers whether a date is a named public holiday.
type HolidaySource interface {
	Holiday(d time.Time) (name string, ok bool)
}

// DateRange is a recurring month/day range, possibly wrapping across the new
// year (e.g. Dec 29 – Jan 3).
type DateRange struct {
	StartMonth time.Month
	StartDay   int
	EndMonth   time.Month
	EndDay     int
}

func (r DateRange) Contains(m time.Month, d int) bool {
	md := int(m)*100 + d
	start := int(r.StartMonth)*100 + r.StartDay
	end := int(r.EndMonth)*100 + r.EndDay
	if start <= end {
		return md >= start && md <= end
	}
	// wraps across the new year
	return md >= start || md <= end
}

// Rules is the shop's closed-day configuration, parsed once at load time.
type Rules struct {
	Weekdays map[time.Weekday]bool

	// YearEnd is nil when the year-end/New-year break is not configured.
	YearEnd *DateRange

	// AllHolidays closes every public holiday; HolidayMondays closes only
	// holidays that fall on a Monday. The two interact: AllHolidays is
	// ignored while HolidayMondays is set, and HolidayMondays is redundant
	// (and skipped) when every Monday is already a weekly closure.
	AllHolidays    bool
	HolidayMondays bool
}

type ReasonKind int

const (
	ReasonNotFuture ReasonKind = iota
	ReasonWeekly
	ReasonYearEnd
	ReasonHoliday
	ReasonHolidayMonday
)

// Reason explains why a date is unbookable. Detail holds the weekday or
// holiday name for messaging.
type Reason struct {
	Kind   ReasonKind
	Detail string
}

// Check reports whether date is unbookable given the rules and today's date.
// Dates on or before today are always unbookable. Rules are evaluated in a
// fixed precedence and the first match wins, so a date is never reported
// closed for two reasons at once.
func (r Rules) Check(date, today time.Time, holidays HolidaySource) (Reason, bool) {
	if !dateOnly(date).After(dateOnly(today)) {
		return Reason{Kind: ReasonNotFuture}, true
	}
	if r.Weekdays[date.Weekday()] {
		return Reason{Kind: ReasonWeekly, Detail: date.Weekday().String()}, true
	}
	if r.YearEnd != nil && r.YearEnd.Contains(date.Month(), date.Day()) {
		return Reason{Kind: ReasonYearEnd}, true
	}
	if holidays != nil {
		if r.AllHolidays && !r.HolidayMondays {
			if name, ok := holidays.Holiday(date); ok {
				return Reason{Kind: ReasonHoliday, Detail: name}, true
			}
		}
		if r.HolidayMondays && !r.Weekdays[time.Monday] && date.Weekday() == time.Monday {
			if name, ok := holidays.Holiday(date); ok {
				return Reason{Kind: ReasonHolidayMonday, Detail: name}, true
			}
		}
	}
	return Reason{}, false
}

var weekdayTokens = map[string]time.Weekday{
	"every sunday":    time.Sunday,
	"every monday":    time.Monday,
	"every tuesday":   time.Tuesday,
	"every wednesday": time.Wednesday,
	"every thursday":  time.Thursday,
	"every friday":    time.Friday,
	"every saturday":  time.Saturday,
}

// ParseRules reads the free-form closed-days text ("every Sunday, year-end,
// holiday Mondays") into an explicit rule set. yearEnd supplies the break
// boundaries used when the text mentions "year-end". Parsing happens once at
// configuration load; per-request code only sees the structured Rules.
func ParseRules(text string, yearEnd DateRange) Rules {
	lower := strings.ToLower(text)
	r := Rules{Weekdays: make(map[time.Weekday]bool)}
	for token, wd := range weekdayTokens {
		if strings.Contains(lower, token) {
			r.Weekdays[wd] = true
		}
	}
	if strings.Contains(lower, "year-end") || strings.Contains(lower, "year end") {
		ye := yearEnd
		r.YearEnd = &ye
	}
	if strings.Contains(lower, "holiday monday") {
		r.HolidayMondays = true
	}
	if strings.Contains(lower, "holidays") {
		r.AllHolidays = true
	}
	return r
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
