package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"wayfarer/internal/trip"
)

func (a *App) noteCmd() *cobra.Command {
	var clear bool

	cmd := &cobra.Command{
		Use:   "note [leg] [text...]",
		Short: "Set or clear a leg's notes",
		Long: `Attach free-form notes to a leg. Without text, prints the
current notes.

Example:
  wayfarer note "Door County" "Book the ferry a week ahead"
  wayfarer note "Door County" --clear`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ctx := context.Background()
			name := args[0]
			text := strings.Join(args[1:], " ")

			if !clear && text == "" {
				legs, err := a.store.LoadLegs(ctx)
				if err != nil {
					return fmt.Errorf("loading legs: %w", err)
				}
				leg := trip.FindLeg(legs, name)
				if leg == nil {
					return fmt.Errorf("leg %q not found (see: wayfarer legs)", name)
				}
				if leg.Notes == "" {
					fmt.Printf("No notes for %s\n", formatLeg(leg.Name))
				} else {
					fmt.Printf("%s\n%s\n", formatLeg(leg.Name), formatNote(leg.Notes))
				}
				return nil
			}

			leg, err := trip.UpdateLeg(ctx, a.store, name, func(l *trip.Leg) error {
				if clear {
					l.Notes = ""
				} else {
					l.Notes = text
				}
				return nil
			})
			if err != nil {
				return err
			}

			if clear {
				fmt.Printf("Cleared notes for %s\n", formatLeg(leg.Name))
			} else {
				fmt.Printf("Updated notes for %s\n", formatLeg(leg.Name))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&clear, "clear", false, "Remove the leg's notes")
	return cmd
}
