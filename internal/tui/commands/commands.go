// Package commands provides TUI command constructors and message types.
package commands

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"wayfarer/internal/trip"
)

// LegsLoadedMsg is sent when the trip's legs are loaded from the store.
type LegsLoadedMsg struct {
	Legs []*trip.Leg
}

// LegSavedMsg is sent when a leg mutation has been persisted.
type LegSavedMsg struct {
	Leg    *trip.Leg
	Status string
}

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// StatusMsgCmd is sent for temporary status messages.
type StatusMsgCmd struct {
	Msg string
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// LoadLegs loads the full leg list.
func LoadLegs(store trip.Store) tea.Cmd {
	return func() tea.Msg {
		legs, err := store.LoadLegs(context.Background())
		if err != nil {
			return ErrMsg{Err: err}
		}
		return LegsLoadedMsg{Legs: legs}
	}
}

// MutateLeg applies fn to a freshly loaded copy of the named leg and
// persists the result. The status string is shown on success.
func MutateLeg(store trip.Store, name, status string, fn func(*trip.Leg) error) tea.Cmd {
	return func() tea.Msg {
		leg, err := trip.UpdateLeg(context.Background(), store, name, fn)
		if err != nil {
			return ErrMsg{Err: err}
		}
		return LegSavedMsg{Leg: leg, Status: status}
	}
}
