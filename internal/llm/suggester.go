package llm

import (
	"context"
	"fmt"
	"strings"

	"wayfarer/internal/schedule"
	"wayfarer/internal/trip"
)

const suggestSystemPrompt = `You are a travel planning assistant building a day-by-day itinerary.

Destination: %s (%s)
%s
Trip dates: %s to %s (inclusive)
Daily schedule window: %s to %s

Available activities for this destination:
%s
%s
Rules:
1. Only use dates between %s and %s.
2. Use 24-hour time format (HH:MM) for every start time.
3. Durations are minutes, in increments of %d, between %d and %d.
4. Never overlap two activities on the same day.
5. Prefer the suggested time windows listed for each activity.
6. Spread activities across the trip rather than packing one day.

Respond ONLY with valid JSON (no markdown, no explanation):
{
  "days": [
    {
      "date": "YYYY-MM-DD",
      "activities": [
        {"title": "...", "start": "HH:MM", "duration_minutes": 90}
      ]
    }
  ],
  "notes": ["optional remarks for the traveller"]
}`

// Itinerary is a validated day-by-day suggestion for one leg.
type Itinerary struct {
	Days  []SuggestedDay `json:"days"`
	Notes []string       `json:"notes"`
}

// SuggestedDay groups suggested activities for a single date.
type SuggestedDay struct {
	Date       string              `json:"date"`
	Activities []SuggestedActivity `json:"activities"`
}

// SuggestedActivity is a single proposed placement.
type SuggestedActivity struct {
	Title           string `json:"title"`
	Start           string `json:"start"`
	DurationMinutes int    `json:"duration_minutes"`
}

// SuggestRequest carries everything the suggester needs for one leg.
type SuggestRequest struct {
	Leg      *trip.Leg
	DayStart string
	DayEnd   string
}

// Suggester turns a leg's catalog and date range into a proposed itinerary.
type Suggester struct {
	client Client
}

// NewSuggester creates a suggester backed by the given client.
func NewSuggester(client Client) *Suggester {
	return &Suggester{client: client}
}

// BuildMessages constructs the prompt for a suggestion request.
func (s *Suggester) BuildMessages(req SuggestRequest) []Message {
	leg := req.Leg

	var catalog strings.Builder
	for _, act := range leg.Activities {
		fmt.Fprintf(&catalog, "- %s", act.Title)
		if act.Start != "" && act.End != "" {
			fmt.Fprintf(&catalog, " (suggested %s-%s)", act.Start, act.End)
		}
		if act.Description != "" {
			fmt.Fprintf(&catalog, ": %s", act.Description)
		}
		catalog.WriteString("\n")
	}

	description := ""
	if leg.Description != "" {
		description = leg.Description + "\n"
	}

	planned := ""
	if len(leg.Planned) > 0 {
		var sb strings.Builder
		sb.WriteString("\nAlready planned (do not overlap with these):\n")
		for _, act := range leg.Planned {
			if !act.Scheduled() {
				continue
			}
			fmt.Fprintf(&sb, "- %s %s-%s: %s\n", act.Date, act.Start, act.End(), act.Title)
		}
		planned = sb.String()
	}

	content := fmt.Sprintf(suggestSystemPrompt,
		leg.Name, leg.Country,
		description,
		leg.StartDate, leg.EndDate,
		req.DayStart, req.DayEnd,
		catalog.String(),
		planned,
		leg.StartDate, leg.EndDate,
		trip.DurationStep, trip.MinDuration, trip.MaxAssignDuration,
	)

	return []Message{{Role: "system", Content: content}}
}

// Suggest asks the LLM for an itinerary and validates the result against the
// leg's date range and schedule window. Invalid days and activities are
// dropped rather than failing the whole suggestion.
func (s *Suggester) Suggest(ctx context.Context, req SuggestRequest) (*Itinerary, error) {
	if req.Leg == nil {
		return nil, fmt.Errorf("no leg selected")
	}
	if !req.Leg.HasRange() {
		return nil, fmt.Errorf("leg %q has no date range set", req.Leg.Name)
	}

	var raw Itinerary
	if err := s.client.ChatJSON(ctx, s.BuildMessages(req), &raw); err != nil {
		return nil, fmt.Errorf("requesting itinerary: %w", err)
	}

	return Normalize(req, &raw), nil
}

// Normalize filters an itinerary down to placements the leg can actually
// hold: in-range dates, valid times, clamped durations.
func Normalize(req SuggestRequest, raw *Itinerary) *Itinerary {
	leg := req.Leg
	open := trip.TimeToMinutes(req.DayStart)
	closing := trip.TimeToMinutes(req.DayEnd)

	out := &Itinerary{Notes: raw.Notes}
	for _, day := range raw.Days {
		if !leg.Contains(day.Date) {
			continue
		}

		clean := SuggestedDay{Date: day.Date}
		for _, act := range day.Activities {
			if strings.TrimSpace(act.Title) == "" {
				continue
			}

			duration := act.DurationMinutes
			if duration < trip.MinDuration {
				duration = trip.MinDuration
			}
			if duration > trip.MaxAssignDuration {
				duration = trip.MaxAssignDuration
			}

			start := trip.TimeToMinutes(act.Start)
			if !validTime(act.Start) || start < open || start+duration > closing {
				continue
			}

			clean.Activities = append(clean.Activities, SuggestedActivity{
				Title:           act.Title,
				Start:           trip.MinutesToTime(start),
				DurationMinutes: duration,
			})
		}
		if len(clean.Activities) > 0 {
			out.Days = append(out.Days, clean)
		}
	}
	return out
}

// Apply adds every suggested activity to the leg, resolving conflicts with the
// existing plan by shifting to the earliest free slot on that day. Returns the
// number of activities added.
func Apply(leg *trip.Leg, it *Itinerary, openMinutes int) (int, error) {
	added := 0
	for _, day := range it.Days {
		for _, sug := range day.Activities {
			start := sug.Start
			end := trip.MinutesToTime(trip.TimeToMinutes(start) + sug.DurationMinutes)
			for _, existing := range leg.PlannedOn(day.Date) {
				if trip.TimesOverlap(start, end, existing.Start, existing.End()) {
					start = schedule.ProposeStart(leg, day.Date, sug.DurationMinutes, openMinutes)
					break
				}
			}

			description := ""
			if match := findCatalog(leg, sug.Title); match != nil {
				description = match.Description
			}

			if _, err := leg.AddCustom(sug.Title, description, start, sug.DurationMinutes, day.Date); err != nil {
				return added, fmt.Errorf("adding %q on %s: %w", sug.Title, day.Date, err)
			}
			added++
		}
	}
	return added, nil
}

func findCatalog(leg *trip.Leg, title string) *trip.CatalogActivity {
	for i := range leg.Activities {
		if strings.EqualFold(leg.Activities[i].Title, title) {
			return &leg.Activities[i]
		}
	}
	return nil
}

func validTime(s string) bool {
	return len(s) == 5 && s[2] == ':' && trip.MinutesToTime(trip.TimeToMinutes(s)) == s
}
