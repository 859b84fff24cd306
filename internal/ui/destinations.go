package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"wayfarer/internal/catalog"
)

func (a *App) destinationsCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "destinations",
		Short: "List catalog destinations",
		Long: `List every destination in the built-in catalog, with its
activities when --verbose is set.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			destinations, err := catalog.Load()
			if err != nil {
				return fmt.Errorf("loading catalog: %w", err)
			}

			maxWidth := termWidth() - 30
			for _, d := range destinations {
				fmt.Printf("%s  %s\n", formatLeg(d.Name), formatMuted(d.Country))
				if d.Description != "" {
					fmt.Printf("  %s\n", truncate(d.Description, maxWidth))
				}
				if verbose {
					for _, act := range d.Activities {
						window := ""
						if act.Start != "" && act.End != "" {
							window = formatTime(fmt.Sprintf("  %s-%s", act.Start, act.End))
						}
						fmt.Printf("    %s%s\n", act.Title, window)
					}
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show each destination's activities")
	return cmd
}
