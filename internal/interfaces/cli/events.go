package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/yoyaku-web/internal/domain/booking"
	"github.com/example/yoyaku-web/internal/infrastructure/config"
	"github.com/example/yoyaku-web/internal/infrastructure/googlecal"
)

// events dumps a day's calendar entries and how the availability scan would
// read each one. Handy when a hand-edited event stops counting.
func newEventsCmd() *cobra.Command {
	var dateStr string
	cmd := &cobra.Command{
		Use:   "events",
		Short: "List a day's calendar events and their parsed payloads",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			loc, err := cfg.Location()
			if err != nil {
				return err
			}
			day, err := time.ParseInLocation("2006-01-02", dateStr, loc)
			if err != nil {
				return fmt.Errorf("bad --date: %w", err)
			}

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			cal, err := googlecal.New(ctx, cfg.CalendarID, cfg.ServiceAccountFile, loc)
			if err != nil {
				return err
			}

			window := booking.TimeWindow{Start: day, End: day.AddDate(0, 0, 1)}
			events, err := cal.ListEvents(ctx, window)
			if err != nil {
				return err
			}
			if len(events) == 0 {
				fmt.Printf("no events on %s\n", dateStr)
				return nil
			}
			for _, ev := range events {
				fmt.Printf("%s  %s\n", ev.Window.Start.Format("15:04"), ev.Summary)
				p, err := booking.ParsePayload(ev.Description)
				if err != nil {
					fmt.Printf("    (no reservation payload: %v)\n", err)
					continue
				}
				fmt.Printf("    %s, party of %d, %s, seats=%d tables=%d\n",
					p.RequesterName, p.PartySize, p.SeatType, p.SeatsUsed, p.TableUnitsUsed)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&dateStr, "date", "", "date to list (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("date")
	return cmd
}
