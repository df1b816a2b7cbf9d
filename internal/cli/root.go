package cli

import (
	"database/sql"

	"github.com/alexanderramin/upkeep/internal/notify"
	"github.com/alexanderramin/upkeep/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Tasks    service.TaskService
	Profiles service.ProfileService
	Summary  service.SummaryService

	Alerts *notify.AlertEngine
	Digest *notify.BatchRunner

	// DB backs the serve command's health endpoint.
	DB *sql.DB

	// UserID is the identity all commands act as.
	UserID string

	// IsInteractive reports whether stdin is a terminal, enabling the huh
	// forms for commands invoked without flags.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "upkeep" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "upkeep",
		Short: "Recurring home maintenance tracker and reminder",
	}

	root.AddCommand(
		newTaskCmd(app),
		newStatsCmd(app),
		newPrefsCmd(app),
		newRemindCmd(app),
		newServeCmd(app),
	)

	return root
}
