package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"wayfarer/internal/llm"
	"wayfarer/internal/trip"
)

func (a *App) suggestCmd() *cobra.Command {
	var (
		modelFlag string
		apply     bool
	)

	cmd := &cobra.Command{
		Use:   "suggest [leg]",
		Short: "Ask the LLM for a day-by-day itinerary",
		Long: `Use AI to propose an itinerary for a leg, built from the
destination's activity catalog and the leg's date range.

Example:
  wayfarer suggest "Door County"
  wayfarer suggest "Door County" --apply`,
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

			model := modelFlag
			if model == "" {
				model = a.config.LLM.Model
			}

			client, err := llm.NewClient(a.config.LLM.Provider, model, a.config.LLM.BaseURL)
			if err != nil {
				return fmt.Errorf("creating LLM client: %w", err)
			}

			fmt.Printf("Planning %s...\n", formatLeg(leg.Name))
			itinerary, err := llm.NewSuggester(client).Suggest(ctx, llm.SuggestRequest{
				Leg:      leg,
				DayStart: a.config.Schedule.DayStart,
				DayEnd:   a.config.Schedule.DayEnd,
			})
			if err != nil {
				return err
			}

			if len(itinerary.Days) == 0 {
				fmt.Println("No usable suggestions came back. Try again or adjust the date range.")
				return nil
			}

			for _, day := range itinerary.Days {
				fmt.Printf("\n%s\n", formatHeader(formatDayHeading(day.Date)))
				for _, act := range day.Activities {
					end := trip.MinutesToTime(trip.TimeToMinutes(act.Start) + act.DurationMinutes)
					fmt.Printf("  %s  %s %s\n",
						formatTime(act.Start+"-"+end), act.Title,
						formatMuted(FormatDuration(act.DurationMinutes)))
				}
			}
			for _, note := range itinerary.Notes {
				fmt.Printf("\n%s\n", formatNote("Note: "+note))
			}

			if !apply {
				fmt.Println("\n(Preview only; re-run with --apply to save)")
				return nil
			}

			open := trip.TimeToMinutes(a.config.Schedule.DayStart)
			updated, err := trip.UpdateLeg(ctx, a.store, leg.Name, func(l *trip.Leg) error {
				_, err := llm.Apply(l, itinerary, open)
				return err
			})
			if err != nil {
				return fmt.Errorf("applying itinerary: %w", err)
			}

			fmt.Printf("\nSaved. %s now has %d planned activities.\n",
				formatLeg(updated.Name), len(updated.Planned))
			return nil
		},
	}

	cmd.Flags().StringVar(&modelFlag, "model", "", "LLM model to use (default from config)")
	cmd.Flags().BoolVar(&apply, "apply", false, "Save the suggested itinerary to the leg")
	return cmd
}
