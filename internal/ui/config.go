package ui

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"wayfarer/internal/config"
)

func (a *App) configCmd() *cobra.Command {
	var initFile bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the resolved configuration",
		Long: `Print the configuration after merging defaults, the config file,
and WAYFARER_* environment variables.

Example:
  wayfarer config
  wayfarer config --init`,
		RunE: func(_ *cobra.Command, _ []string) error {
			configPath := config.DefaultConfigPath()
			fmt.Printf("Config file: %s\n\n", configPath)

			if initFile {
				if _, err := os.Stat(configPath); err == nil {
					return fmt.Errorf("config file already exists: %s", configPath)
				}
				if err := config.Default().Save(); err != nil {
					return fmt.Errorf("saving config: %w", err)
				}
				fmt.Printf("Created %s with default values\n\n", configPath)
			}

			printConfig(a.config)
			return nil
		},
	}

	cmd.Flags().BoolVar(&initFile, "init", false, "Create the config file with default values")
	return cmd
}

func printConfig(cfg *config.Config) {
	fmt.Println("Current configuration:")
	fmt.Println("──────────────────────")
	fmt.Println("[schedule]")
	fmt.Printf("  day_start    = %s\n", cfg.Schedule.DayStart)
	fmt.Printf("  day_end      = %s\n", cfg.Schedule.DayEnd)
	fmt.Printf("  snap_minutes = %d\n", cfg.Schedule.SnapMinutes)
	fmt.Printf("  hour_height  = %d\n", cfg.Schedule.HourHeight)
	fmt.Println("\n[llm]")
	fmt.Printf("  provider     = %s\n", cfg.LLM.Provider)
	fmt.Printf("  model        = %s\n", cfg.LLM.Model)
	fmt.Printf("  base_url     = %s\n", cfg.LLM.BaseURL)
	fmt.Println("\n[storage]")
	fmt.Printf("  db_path      = %s\n", cfg.Storage.DBPath)
	fmt.Println("\n[ui]")
	fmt.Printf("  theme        = %s\n", cfg.UI.Theme)
}
