package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/yoyaku-web/internal/application/usecases"
	"github.com/example/yoyaku-web/internal/domain/booking"
	"github.com/example/yoyaku-web/internal/infrastructure/config"
	"github.com/example/yoyaku-web/internal/infrastructure/googlecal"
)

// availability is the old seat-check script in command form: scan one service
// window and print what is left of each pool.
func newAvailabilityCmd() *cobra.Command {
	var dateStr, timeStr string
	cmd := &cobra.Command{
		Use:   "availability",
		Short: "Print remaining capacity for one service window",
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
			start, err := time.ParseInLocation("2006-01-02 15:04", dateStr+" "+timeStr, loc)
			if err != nil {
				return fmt.Errorf("bad --date/--time: %w", err)
			}

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			cal, err := googlecal.New(ctx, cfg.CalendarID, cfg.ServiceAccountFile, loc)
			if err != nil {
				return err
			}

			window := booking.NewTimeWindow(start, cfg.ServiceDuration)
			check := usecases.CheckAvailability{Calendar: cal, Pool: cfg.Pool(), Log: log}
			remaining, err := check.Execute(ctx, window)
			if err != nil {
				fmt.Printf("calendar unavailable (counter=%d table=%d): %v\n",
					remaining.CounterSeats, remaining.TableUnits, err)
				return err
			}
			fmt.Printf("%s - %s: counter seats free %d/%d, table units free %d/%d\n",
				window.Start.Format("2006-01-02 15:04"), window.End.Format("15:04"),
				remaining.CounterSeats, cfg.TotalCounterSeats,
				remaining.TableUnits, cfg.TotalTableUnits)
			return nil
		},
	}
	cmd.Flags().StringVar(&dateStr, "date", "", "date to check (YYYY-MM-DD)")
	cmd.Flags().StringVar(&timeStr, "time", "18:00", "start time to check (HH:MM)")
	_ = cmd.MarkFlagRequired("date")
	return cmd
}
