package cli

import (
	"context"
	"errors"
	"fmt"

	"kanban/internal/kanban"
	"kanban/internal/persistence"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"
)

// SnapshotOpener connects to the configured snapshot store. The returned func
// releases the connection.
type SnapshotOpener func(ctx context.Context) (persistence.SnapshotStore, func(), error)

func newSnapshotCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Inspect or reset the stored board",
	}

	cmd.AddCommand(
		newSnapshotShowCmd(app),
		newSnapshotResetCmd(app),
	)

	return cmd
}

func newSnapshotShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the stored board",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, closeFn, err := app.Snapshots(ctx)
			if err != nil {
				return err
			}
			defer closeFn()

			data, err := store.Load(ctx, app.SnapshotKey)
			if errors.Is(err, persistence.ErrNotFound) {
				fmt.Fprintf(cmd.OutOrStdout(), "no board stored under %q\n", app.SnapshotKey)
				return nil
			}
			if err != nil {
				return fmt.Errorf("loading snapshot: %w", err)
			}

			board, err := kanban.DecodeSnapshot(data)
			if err != nil {
				return err
			}
			out, err := sonic.ConfigStd.MarshalIndent(board, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
}

func newSnapshotResetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Overwrite the stored board with the default columns",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, closeFn, err := app.Snapshots(ctx)
			if err != nil {
				return err
			}
			defer closeFn()

			binding := persistence.NewBinding(store, app.SnapshotKey, 0)
			if err := binding.Persist(ctx, kanban.DefaultBoard()); err != nil {
				return fmt.Errorf("resetting snapshot: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "board under %q reset\n", app.SnapshotKey)
			return nil
		},
	}
}
