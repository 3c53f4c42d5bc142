package config

import (
	"encoding/base64"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/example/yoyaku-web/internal/domain/booking"
	"github.com/example/yoyaku-web/internal/domain/closure"
)

type Config struct {
	HTTPAddr string `envconfig:"HTTP_ADDR" default:":8080"`
	DevMode  bool   `envconfig:"DEV_MODE" default:"false"`

	CalendarID         string `envconfig:"CALENDAR_ID" required:"true"`
	ServiceAccountFile string `envconfig:"SERVICE_ACCOUNT_FILE" required:"true"`

	Timezone        string        `envconfig:"TIMEZONE" default:"Asia/Tokyo"`
	ServiceDuration time.Duration `envconfig:"SERVICE_DURATION" default:"2h"`

	TotalCounterSeats   int `envconfig:"TOTAL_COUNTER_SEATS" default:"11"`
	TotalTableUnits     int `envconfig:"TOTAL_TABLE_UNITS" default:"2"`
	CounterReserveSeats int `envconfig:"COUNTER_RESERVE_SEATS" default:"5"`

	// ClosedDays is the free-form closed-day text, parsed once by Rules().
	ClosedDays   string `envconfig:"CLOSED_DAYS" default:"every Sunday, year-end"`
	YearEndStart string `envconfig:"YEAR_END_START" default:"12-29"`
	YearEndEnd   string `envconfig:"YEAR_END_END" default:"01-03"`

	ShopPhone string `envconfig:"SHOP_PHONE" default:""`
	ShopHours string `envconfig:"SHOP_HOURS" default:""`

	CookieHashKey  string `envconfig:"COOKIE_HASH_KEY" required:"true"`
	CookieBlockKey string `envconfig:"COOKIE_BLOCK_KEY" required:"true"`
}

// Load reads configuration from the environment, with an optional .env file
// for development.
func Load() (Config, error) {
	_ = godotenv.Load()
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, errors.Wrap(err, "process env config")
	}
	if cfg.ServiceDuration <= 0 {
		return Config{}, errors.New("SERVICE_DURATION must be positive")
	}
	if cfg.TotalCounterSeats < 0 || cfg.TotalTableUnits < 0 || cfg.CounterReserveSeats < 0 {
		return Config{}, errors.New("seat counts must not be negative")
	}
	return cfg, nil
}

func (c Config) Pool() booking.CapacityPool {
	return booking.CapacityPool{CounterSeats: c.TotalCounterSeats, TableUnits: c.TotalTableUnits}
}

func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, errors.Wrapf(err, "load timezone %q", c.Timezone)
	}
	return loc, nil
}

func (c Config) Rules() (closure.Rules, error) {
	start, err := parseMonthDay(c.YearEndStart)
	if err != nil {
		return closure.Rules{}, errors.Wrap(err, "YEAR_END_START")
	}
	end, err := parseMonthDay(c.YearEndEnd)
	if err != nil {
		return closure.Rules{}, errors.Wrap(err, "YEAR_END_END")
	}
	yearEnd := closure.DateRange{
		StartMonth: start.month, StartDay: start.day,
		EndMonth: end.month, EndDay: end.day,
	}
	return closure.ParseRules(c.ClosedDays, yearEnd), nil
}

func (c Config) CookieKeys() (hash, block []byte, err error) {
	hash, err = decodeB64(c.CookieHashKey)
	if err != nil {
		return nil, nil, errors.Wrap(err, "COOKIE_HASH_KEY")
	}
	block, err = decodeB64(c.CookieBlockKey)
	if err != nil {
		return nil, nil, errors.Wrap(err, "COOKIE_BLOCK_KEY")
	}
	return hash, block, nil
}

type monthDay struct {
	month time.Month
	day   int
}

func parseMonthDay(s string) (monthDay, error) {
	parts := strings.SplitN(strings.TrimSpace(s), "-", 2)
	if len(parts) != 2 {
		return monthDay{}, errors.Newf("want MM-DD, got %q", s)
	}
	m, err := strconv.Atoi(parts[0])
	if err != nil || m < 1 || m > 12 {
		return monthDay{}, errors.Newf("bad month in %q", s)
	}
	d, err := strconv.Atoi(parts[1])
	if err != nil || d < 1 || d > 31 {
		return monthDay{}, errors.Newf("bad day in %q", s)
	}
	return monthDay{month: time.Month(m), day: d}, nil
}

func decodeB64(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if b, err := base64.StdEncoding.DecodeString(s); err == nil {
		return b, nil
	}
	return base64.RawStdEncoding.DecodeString(s)
}
