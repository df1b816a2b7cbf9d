package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/upkeep/internal/cli/formatter"
	"github.com/alexanderramin/upkeep/internal/schedule"
	"github.com/spf13/cobra"
)

func newStatsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show urgency counts across all tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, err := app.Tasks.List(context.Background(), app.UserID)
			if err != nil {
				return fmt.Errorf("loading tasks: %w", err)
			}

			stats := schedule.Aggregate(tasks, time.Now().UTC())
			cmd.Printf("%s\n", formatter.FormatStats(stats))
			return nil
		},
	}
	return cmd
}
