package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	Version   = "dev"
	CommitSHA = "none"
	BuildDate = "unknown"
)

func NewRoot() *cobra.Command {
	root := &cobra.Command{
		Use:   "yoyaku",
		Short: "Reservation web form backed by the shop's shared calendar",
	}
	root.AddCommand(newServerCmd())
	root.AddCommand(newAvailabilityCmd())
	root.AddCommand(newEventsCmd())
	root.AddCommand(newKeysCmd())
	root.AddCommand(newVersionCmd())
	return root
}

func Execute() {
	if err := NewRoot().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
