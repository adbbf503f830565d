// Package cli implements plannerctl, the operator command line for the
// planner store.
package cli

import (
	"fmt"
	"io"
	"time"

	"planner/internal/config"
	"planner/internal/model"
	"planner/internal/repository"
	"planner/internal/server"

	"github.com/spf13/cobra"
)

// StoreOpener opens the store the commands run against.
type StoreOpener func(cfg *config.Config) (repository.Store, func() error, error)

type app struct {
	open    StoreOpener
	driver  string
	svc     *server.Services
	closeFn func() error
}

// NewRootCmd builds the plannerctl command tree. open is usually
// server.OpenStore.
func NewRootCmd(open StoreOpener) *cobra.Command {
	a := &app{open: open}

	root := &cobra.Command{
		Use:   "plannerctl",
		Short: "Inspect and maintain the planner store",
		Long: `plannerctl works directly against the configured store.

It reads the same .env, environment and CONFIG_FILE as the server.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if a.driver != "" {
				cfg.StoreDriver = a.driver
			}
			store, closeFn, err := a.open(cfg)
			if err != nil {
				return err
			}
			a.svc = server.NewServices(store)
			a.closeFn = closeFn
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a.closeFn == nil {
				return nil
			}
			return a.closeFn()
		},
	}
	root.PersistentFlags().StringVar(&a.driver, "driver", "", "Store driver override (postgres, sqlite, memory)")

	root.AddCommand(
		newSectionsCmd(a),
		newAddCmd(a),
		newMoveCmd(a),
		newSnoozeCmd(a),
		newRenormalizeCmd(a),
		newActionsCmd(a),
	)
	return root
}

// Execute runs plannerctl against the configured store.
func Execute() error {
	return NewRootCmd(server.OpenStore).Execute()
}

// parseToday reads a --today flag; empty means the local calendar date.
func parseToday(raw string) (model.Date, error) {
	if raw == "" {
		return model.DateOf(time.Now()), nil
	}
	return model.ParseDate(raw)
}

func printTask(w io.Writer, t *model.Task) {
	due := "-"
	if t.DueDate != nil {
		due = t.DueDate.String()
	}
	mark := "○"
	if t.IsDone() {
		mark = "✓"
	}
	fmt.Fprintf(w, "  %s %-36s %-10s %12.1f  %s\n", mark, t.ID, due, t.OrderRank, t.Title)
}
