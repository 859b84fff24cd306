package ui

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

func (a *App) scheduleCmd() *cobra.Command {
	var (
		copyToClipboard bool
		clearAll        bool
		noColor         bool
	)

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Show the consolidated trip schedule",
		Long: `Print every planned activity across all legs, sorted by date
and start time and grouped by day.

Example:
  wayfarer schedule
  wayfarer schedule --copy
  wayfarer schedule --clear`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if noColor {
				DisableColor()
			}

			ctx := context.Background()
			legs, err := a.store.LoadLegs(ctx)
			if err != nil {
				return fmt.Errorf("loading legs: %w", err)
			}

			if clearAll {
				total := 0
				for _, leg := range legs {
					total += len(leg.Planned)
				}
				if total == 0 {
					fmt.Println("Nothing planned; nothing to clear.")
					return nil
				}
				if !promptYesNo(fmt.Sprintf("Clear all %d planned activities?", total)) {
					fmt.Println("Aborted.")
					return nil
				}
				for _, leg := range legs {
					leg.Planned = nil
				}
				if err := a.store.SaveLegs(ctx, legs); err != nil {
					return fmt.Errorf("saving legs: %w", err)
				}
				fmt.Printf("Cleared %d planned activities.\n", total)
				return nil
			}

			entries := flattenSchedule(legs)
			if len(entries) == 0 {
				fmt.Println("Nothing planned yet. Run wayfarer to start scheduling.")
				return nil
			}

			currentDate := ""
			for _, e := range entries {
				if e.Date != currentDate {
					if currentDate != "" {
						fmt.Println()
					}
					fmt.Printf("%s\n", formatHeader(formatDayHeading(e.Date)))
					currentDate = e.Date
				}
				fmt.Printf("  %s  %s %s\n",
					formatTime(e.Start+"-"+e.End), e.Title, formatMuted("("+e.Leg+")"))
			}

			if copyToClipboard {
				if err := clipboard.WriteAll(buildScheduleText(legs)); err != nil {
					return fmt.Errorf("copying to clipboard: %w", err)
				}
				fmt.Println("\nSchedule copied to clipboard.")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&copyToClipboard, "copy", false, "Copy the schedule to the clipboard")
	cmd.Flags().BoolVar(&clearAll, "clear", false, "Remove every planned activity")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	return cmd
}
