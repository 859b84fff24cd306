package ui

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"wayfarer/internal/trip"
)

func (a *App) removeCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "remove [leg]",
		Short: "Remove a leg from the trip",
		Long: `Remove a leg and everything planned on it.

Example:
  wayfarer remove "Door County"`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ctx := context.Background()
			legs, err := a.store.LoadLegs(ctx)
			if err != nil {
				return fmt.Errorf("loading legs: %w", err)
			}

			leg := trip.FindLeg(legs, args[0])
			if leg == nil {
				return fmt.Errorf("leg %q not found (see: wayfarer legs)", args[0])
			}

			if !yes && len(leg.Planned) > 0 {
				prompt := fmt.Sprintf("Remove %q and its %d planned activities?", leg.Name, len(leg.Planned))
				if !promptYesNo(prompt) {
					fmt.Println("Aborted.")
					return nil
				}
			}

			remaining := make([]*trip.Leg, 0, len(legs)-1)
			for _, l := range legs {
				if l != leg {
					remaining = append(remaining, l)
				}
			}
			if err := a.store.SaveLegs(ctx, remaining); err != nil {
				return fmt.Errorf("saving legs: %w", err)
			}

			fmt.Printf("Removed leg %s\n", formatLeg(leg.Name))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

func promptYesNo(question string) bool {
	reader := bufio.NewReader(os.Stdin)
	fmt.Printf("%s [y/N]: ", question)
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(strings.ToLower(input))
	return input == "y" || input == "yes"
}
