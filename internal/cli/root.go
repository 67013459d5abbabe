package cli

import (
	"time"

	"github.com/spf13/cobra"
)

// App holds what the commands need. Snapshots is only opened by commands that
// touch the stored board.
type App struct {
	JWTSecret   string
	TokenTTL    time.Duration
	SnapshotKey string
	Snapshots   SnapshotOpener
}

// NewRootCmd creates the top-level "kanbanctl" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "kanbanctl",
		Short:         "Operator tool for the kanban board service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newTokenCmd(app),
		newSnapshotCmd(app),
	)

	return root
}
