// Package ui implements the command line surface: leg management, the
// consolidated schedule view, and the interactive calendar launcher.
package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"wayfarer/internal/config"
	"wayfarer/internal/trip"
	"wayfarer/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	store  trip.Store
	config *config.Config
	root   *cobra.Command
}

// NewApp creates a new CLI application with the given store and config.
func NewApp(store trip.Store, cfg *config.Config) *App {
	a := &App{store: store, config: cfg}

	a.root = &cobra.Command{
		Use:   "wayfarer",
		Short: "A trip planner with a drag-and-drop week calendar",
		Long: `Wayfarer plans multi-destination trips.

Pick destinations from the catalog, give each leg a date range, and
arrange activities on an interactive week calendar. When the plan is
done, print or copy the consolidated day-by-day schedule.`,
		RunE: func(_ *cobra.Command, args []string) error {
			legName := ""
			if len(args) > 0 {
				legName = args[0]
			}
			return tui.Run(a.store, a.config, legName)
		},
		Args: cobra.MaximumNArgs(1),
	}

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.destinationsCmd())
	a.root.AddCommand(a.addCmd())
	a.root.AddCommand(a.removeCmd())
	a.root.AddCommand(a.legsCmd())
	a.root.AddCommand(a.noteCmd())
	a.root.AddCommand(a.scheduleCmd())
	a.root.AddCommand(a.suggestCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("wayfarer %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}
