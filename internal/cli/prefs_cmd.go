package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/upkeep/internal/cli/formatter"
	"github.com/alexanderramin/upkeep/internal/domain"
	"github.com/spf13/cobra"
)

func newPrefsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Manage notification preferences",
	}

	cmd.AddCommand(
		newPrefsShowCmd(app),
		newPrefsSetCmd(app),
	)

	return cmd
}

func newPrefsShowCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show current notification preferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Profiles.Get(context.Background(), app.UserID)
			if err != nil {
				return fmt.Errorf("loading preferences: %w", err)
			}
			cmd.Printf("%s\n", formatter.FormatPreferences(p))
			return nil
		},
	}
	return cmd
}

func newPrefsSetCmd(app *App) *cobra.Command {
	var email, frequency string
	var hour int
	var enabled bool

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update notification preferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			var upd domain.ProfileUpdate
			if cmd.Flags().Changed("email") {
				upd.Email = &email
			}
			if cmd.Flags().Changed("enabled") {
				upd.EmailNotificationsEnabled = &enabled
			}
			if cmd.Flags().Changed("frequency") {
				f := domain.Frequency(frequency)
				upd.NotificationFrequency = &f
			}
			if cmd.Flags().Changed("hour") {
				upd.NotificationTime = &hour
			}

			p, err := app.Profiles.UpdatePreferences(context.Background(), app.UserID, upd)
			if err != nil {
				return fmt.Errorf("updating preferences: %w", err)
			}
			cmd.Println("Preferences updated.")
			cmd.Printf("%s\n", formatter.FormatPreferences(p))
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email address for digests")
	cmd.Flags().BoolVar(&enabled, "enabled", true, "Enable or disable email digests")
	cmd.Flags().StringVar(&frequency, "frequency", "", "Digest frequency: daily, weekly, disabled")
	cmd.Flags().IntVar(&hour, "hour", domain.DefaultNotificationHour, "Preferred UTC hour (0-23)")

	return cmd
}
