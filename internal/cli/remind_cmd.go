package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/upkeep/internal/cli/formatter"
	"github.com/alexanderramin/upkeep/internal/domain"
	"github.com/spf13/cobra"
)

func newRemindCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remind",
		Short: "Evaluate and deliver notifications",
	}

	cmd.AddCommand(
		newRemindDigestCmd(app),
		newRemindAlertsCmd(app),
	)

	return cmd
}

func newRemindDigestCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "digest",
		Short: "Run the email digest batch once",
		Long: "Evaluates every user's notification preferences against the current " +
			"UTC hour and sends due/overdue digest emails for eligible users. " +
			"Running this from an hourly cron is equivalent to serve mode's " +
			"built-in scheduler.",
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := app.Digest.Run(context.Background())
			if err != nil {
				return fmt.Errorf("running digest batch: %w", err)
			}
			cmd.Printf("%s\n", formatter.FormatDigestRun(summary))
			return nil
		},
	}
	return cmd
}

func newRemindAlertsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "alerts",
		Short: "Re-evaluate immediate due-today/due-tomorrow alerts",
		RunE: func(cmd *cobra.Command, args []string) error {
			alerts, err := app.Alerts.Refresh(context.Background(), app.UserID)
			if err != nil {
				return fmt.Errorf("refreshing alerts: %w", err)
			}
			if len(alerts) == 0 {
				cmd.Println("Nothing due today or tomorrow.")
				return nil
			}
			for _, a := range alerts {
				cmd.Printf("%s %s: %s\n",
					formatter.StatusIndicator(domain.StatusDueSoon), a.Title, a.Body)
			}
			return nil
		},
	}
	return cmd
}
