package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"wayfarer/internal/catalog"
	"wayfarer/internal/trip"
)

func (a *App) addCmd() *cobra.Command {
	var (
		startDate string
		endDate   string
	)

	cmd := &cobra.Command{
		Use:   "add [destination]",
		Short: "Add a destination to the trip",
		Long: `Add a catalog destination as a new trip leg.

Example:
  wayfarer add "Door County" --start=2024-05-10 --end=2024-05-14`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			dest, ok := catalog.Find(args[0])
			if !ok {
				return fmt.Errorf("unknown destination %q (see: wayfarer destinations)", args[0])
			}

			leg, err := trip.NewLeg(dest)
			if err != nil {
				return err
			}
			if startDate != "" || endDate != "" {
				if _, err := leg.SetDateRange(startDate, endDate); err != nil {
					return err
				}
			}

			ctx := context.Background()
			legs, err := a.store.LoadLegs(ctx)
			if err != nil {
				return fmt.Errorf("loading legs: %w", err)
			}
			if trip.FindLeg(legs, leg.Name) != nil {
				return fmt.Errorf("leg %q already exists", leg.Name)
			}
			if err := a.store.SaveLegs(ctx, append(legs, leg)); err != nil {
				return fmt.Errorf("saving legs: %w", err)
			}

			fmt.Printf("Added leg %s", formatLeg(leg.Name))
			if leg.HasRange() {
				fmt.Printf("  %s", formatTime(fmt.Sprintf("%s to %s", leg.StartDate, leg.EndDate)))
			}
			fmt.Println()
			return nil
		},
	}

	cmd.Flags().StringVar(&startDate, "start", "", "Leg start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&endDate, "end", "", "Leg end date (YYYY-MM-DD)")

	return cmd
}
