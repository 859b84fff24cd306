package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) legsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "legs",
		Short: "List the trip's legs",
		RunE: func(_ *cobra.Command, _ []string) error {
			legs, err := a.store.LoadLegs(context.Background())
			if err != nil {
				return fmt.Errorf("loading legs: %w", err)
			}

			if len(legs) == 0 {
				fmt.Println("No legs yet. Add one with: wayfarer add [destination]")
				return nil
			}

			for _, leg := range legs {
				fmt.Printf("%s  %s\n", formatLeg(leg.Name), formatMuted(leg.Country))
				fmt.Printf("  %s\n", legSummary(leg))
				if leg.Notes != "" {
					fmt.Printf("  %s\n", formatNote(truncate(leg.Notes, termWidth()-4)))
				}
			}
			return nil
		},
	}
}
