package cli

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/yoyaku-web/internal/application/usecases"
	"github.com/example/yoyaku-web/internal/domain/closure"
	"github.com/example/yoyaku-web/internal/infrastructure/config"
	"github.com/example/yoyaku-web/internal/infrastructure/googlecal"
	"github.com/example/yoyaku-web/internal/interfaces/web"
)

func newServerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "server",
		Short: "Start the reservation form web server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			log := newLogger(cfg.DevMode)

			loc, err := cfg.Location()
			if err != nil {
				return err
			}
			rules, err := cfg.Rules()
			if err != nil {
				return err
			}
			hashKey, blockKey, err := cfg.CookieKeys()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
			defer cancel()
			cal, err := googlecal.New(ctx, cfg.CalendarID, cfg.ServiceAccountFile, loc)
			if err != nil {
				return err
			}

			submit := usecases.SubmitReservation{
				Calendar:       cal,
				Pool:           cfg.Pool(),
				CounterReserve: cfg.CounterReserveSeats,
				Rules:          rules,
				Holidays:       closure.JapanHolidays{},
				Now:            func() time.Time { return time.Now().In(loc) },
				Log:            log,
			}

			tmpl, err := web.ParseTemplates()
			if err != nil {
				return err
			}
			shop := web.ShopInfo{Phone: cfg.ShopPhone, Hours: cfg.ShopHours, ClosedDays: cfg.ClosedDays}
			flashes := web.NewFlashStore(hashKey, blockKey)

			srv := web.New(cfg.HTTPAddr, flashes, submit, rules, shop, cfg.ServiceDuration, loc, tmpl, log)
			return srv.ListenAndServe()
		},
	}
}

func newLogger(dev bool) *slog.Logger {
	if dev {
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, nil))
}
