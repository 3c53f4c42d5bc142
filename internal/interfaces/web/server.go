package web

import (
	"context"
	"encoding/json"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/example/yoyaku-web/internal/application/usecases"
	"github.com/example/yoyaku-web/internal/domain/booking"
	"github.com/example/yoyaku-web/internal/domain/closure"
)

// ShopInfo is static presentation data shown on the form.
type ShopInfo struct {
	Phone      string
	Hours      string
	ClosedDays string
}

type Server struct {
	addr     string
	flashes  *FlashStore
	submit   usecases.SubmitReservation
	rules    closure.Rules
	shop     ShopInfo
	duration time.Duration
	loc      *time.Location
	now      func() time.Time
	tmpl     *template.Template
	log      *slog.Logger
}

func New(addr string, flashes *FlashStore, submit usecases.SubmitReservation, rules closure.Rules, shop ShopInfo, duration time.Duration, loc *time.Location, tmpl *template.Template, log *slog.Logger) *Server {
	return &Server{
		addr: addr, flashes: flashes, submit: submit, rules: rules,
		shop: shop, duration: duration, loc: loc,
		now: func() time.Time { return time.Now().In(loc) },
		tmpl: tmpl, log: log,
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleForm)
	mux.HandleFunc("/reserve", s.handleReserve)
	mux.HandleFunc("/result", s.handleResult)
	return s.logging(mux)
}

func (s *Server) ListenAndServe() error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	s.log.Info("listening", "addr", s.addr)
	return srv.ListenAndServe()
}

func (s *Server) logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Info("http", "method", r.Method, "path", r.URL.Path, "dur", time.Since(start))
	})
}

func writeErr(w http.ResponseWriter, err error, code int) {
	w.WriteHeader(code)
	_, _ = w.Write([]byte(err.Error()))
}

func (s *Server) render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("content-type", "text/html; charset=utf-8")
	if err := s.tmpl.ExecuteTemplate(w, name, data); err != nil {
		writeErr(w, err, http.StatusInternalServerError)
	}
}

type dateRange struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type formData struct {
	Shop    ShopInfo
	MinDate string

	// JSON blobs for the date picker: weekday numbers (Sunday=0), closed
	// date ranges, and individual closed holiday dates.
	DisabledWeekdaysJSON template.JS
	DateRangesJSON       template.JS
	HolidayDatesJSON     template.JS
}

func (s *Server) handleForm(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	today := s.now()
	data := formData{
		Shop:                 s.shop,
		MinDate:              today.AddDate(0, 0, 1).Format("2006-01-02"),
		DisabledWeekdaysJSON: mustJSON(s.disabledWeekdays()),
		DateRangesJSON:       mustJSON(s.closedRanges(today)),
		HolidayDatesJSON:     mustJSON(s.closedHolidayDates(today)),
	}
	s.render(w, "form.html", data)
}

func (s *Server) handleReserve(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	_ = r.ParseForm()
	dateStr := strings.TrimSpace(r.FormValue("reservation_date"))
	timeStr := strings.TrimSpace(r.FormValue("reservation_time"))
	name := r.FormValue("name")
	phone := r.FormValue("phone")
	seatType := booking.SeatType(strings.TrimSpace(r.FormValue("seat_type")))

	partySize, err := strconv.Atoi(strings.TrimSpace(r.FormValue("party_size")))
	if err != nil {
		s.finish(w, r, usecases.Result{
			Outcome: usecases.OutcomeError,
			Message: "Please choose a party size between 1 and 8.",
		})
		return
	}
	start, err := time.ParseInLocation("2006-01-02 15:04", dateStr+" "+timeStr, s.loc)
	if err != nil {
		s.finish(w, r, usecases.Result{
			Outcome: usecases.OutcomeError,
			Message: "The requested date or time could not be read. Please check it and try again.",
		})
		return
	}

	req, err := booking.NewRequest(name, phone, partySize, seatType, start, s.duration)
	if err != nil {
		// NewRequest only fails with customer-correctable input errors.
		s.finish(w, r, usecases.Result{Outcome: usecases.OutcomeError, Message: err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()
	s.finish(w, r, s.submit.Execute(ctx, req))
}

func (s *Server) finish(w http.ResponseWriter, r *http.Request, res usecases.Result) {
	if err := s.flashes.Set(w, Flash{Kind: string(res.Outcome), Message: res.Message}); err != nil {
		writeErr(w, err, http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/result", http.StatusFound)
}

type resultData struct {
	Kind    string
	Message string
	Shop    ShopInfo
}

func (s *Server) handleResult(w http.ResponseWriter, r *http.Request) {
	fl, ok := s.flashes.Pop(w, r)
	if !ok {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}
	s.render(w, "result.html", resultData{Kind: fl.Kind, Message: fl.Message, Shop: s.shop})
}

func (s *Server) disabledWeekdays() []int {
	var out []int
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if s.rules.Weekdays[wd] {
			out = append(out, int(wd))
		}
	}
	if out == nil {
		out = []int{}
	}
	return out
}

// closedRanges renders the year-end break for the current and next year. A
// wrapping range (Dec 29 – Jan 3) becomes one range to Dec 31 and one from
// Jan 1.
func (s *Server) closedRanges(today time.Time) []dateRange {
	out := []dateRange{}
	ye := s.rules.YearEnd
	if ye == nil {
		return out
	}
	for _, y := range []int{today.Year(), today.Year() + 1} {
		startMD := int(ye.StartMonth)*100 + ye.StartDay
		endMD := int(ye.EndMonth)*100 + ye.EndDay
		if startMD <= endMD {
			out = append(out, dateRange{
				From: mdString(y, ye.StartMonth, ye.StartDay),
				To:   mdString(y, ye.EndMonth, ye.EndDay),
			})
			continue
		}
		out = append(out,
			dateRange{From: mdString(y, ye.StartMonth, ye.StartDay), To: mdString(y, time.December, 31)},
			dateRange{From: mdString(y, time.January, 1), To: mdString(y, ye.EndMonth, ye.EndDay)},
		)
	}
	return out
}

func (s *Server) closedHolidayDates(today time.Time) []string {
	out := []string{}
	wantAll := s.rules.AllHolidays && !s.rules.HolidayMondays
	wantMondays := s.rules.HolidayMondays && !s.rules.Weekdays[time.Monday]
	if !wantAll && !wantMondays {
		return out
	}
	for _, h := range closure.JapanHolidayDates(today.Year(), today.Year()+1) {
		// Holiday instants are midnight UTC; compare calendar dates so a
		// zone offset cannot shift the boundary day.
		if !afterDate(h.Date, today) {
			continue
		}
		if wantAll || (wantMondays && h.Date.Weekday() == time.Monday) {
			out = append(out, h.Date.Format("2006-01-02"))
		}
	}
	return out
}

func afterDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	if ay != by {
		return ay > by
	}
	if am != bm {
		return am > bm
	}
	return ad > bd
}

func mdString(year int, m time.Month, d int) string {
	return time.Date(year, m, d, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
}

func mustJSON(v any) template.JS {
	b, err := json.Marshal(v)
	if err != nil {
		return template.JS("null")
	}
	return template.JS(b)
}
