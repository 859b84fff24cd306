package db

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"wayfarer/internal/trip"
)

func newTestStore(t *testing.T) *SQLite {
	t.Helper()
	store, err := New(filepath.Join(t.TempDir(), "wayfarer.db"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func seedLeg(t *testing.T) *trip.Leg {
	t.Helper()
	leg, err := trip.NewLeg(trip.Destination{
		Name:        "Galena",
		Country:     "USA",
		Description: "Historic mining town.",
		Activities: []trip.CatalogActivity{
			{Title: "Main Street Walk", Start: "10:00", End: "11:30"},
			{Title: "Trolley Tour", Description: "Narrated ride", Start: "13:00", End: "14:00"},
		},
	})
	if err != nil {
		t.Fatalf("NewLeg: %v", err)
	}
	if _, err := leg.SetDateRange("2024-05-01", "2024-05-05"); err != nil {
		t.Fatalf("SetDateRange: %v", err)
	}
	if _, err := leg.Assign(leg.Activities[0], "2024-05-02", "10:00"); err != nil {
		t.Fatalf("Assign: %v", err)
	}
	return leg
}

func TestSaveAndLoadLegs(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	leg := seedLeg(t)
	if err := store.SaveLegs(ctx, []*trip.Leg{leg}); err != nil {
		t.Fatalf("SaveLegs: %v", err)
	}

	legs, err := store.LoadLegs(ctx)
	if err != nil {
		t.Fatalf("LoadLegs: %v", err)
	}
	if len(legs) != 1 {
		t.Fatalf("got %d legs, want 1", len(legs))
	}

	got := legs[0]
	if got.Name != "Galena" || got.Country != "USA" {
		t.Errorf("leg = %+v", got)
	}
	if got.StartDate != "2024-05-01" || got.EndDate != "2024-05-05" {
		t.Errorf("range = [%s, %s]", got.StartDate, got.EndDate)
	}
	if len(got.Activities) != 2 {
		t.Fatalf("catalog size = %d, want 2", len(got.Activities))
	}
	if got.Activities[0].Title != "Main Street Walk" {
		t.Errorf("catalog order not preserved: %s", got.Activities[0].Title)
	}
	if len(got.Planned) != 1 {
		t.Fatalf("planned size = %d, want 1", len(got.Planned))
	}
	planned := got.Planned[0]
	if planned.Title != "Main Street Walk" || planned.Date != "2024-05-02" || planned.Duration != 90 {
		t.Errorf("planned = %+v", planned)
	}
	if planned.ID == "" {
		t.Error("planned activity lost its ID")
	}
}

func TestSaveReplacesWholeList(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	first := seedLeg(t)
	if err := store.SaveLegs(ctx, []*trip.Leg{first}); err != nil {
		t.Fatalf("SaveLegs: %v", err)
	}

	second, err := trip.NewLeg(trip.Destination{Name: "Bayfield", Country: "USA"})
	if err != nil {
		t.Fatalf("NewLeg: %v", err)
	}
	if err := store.SaveLegs(ctx, []*trip.Leg{second}); err != nil {
		t.Fatalf("SaveLegs: %v", err)
	}

	legs, err := store.LoadLegs(ctx)
	if err != nil {
		t.Fatalf("LoadLegs: %v", err)
	}
	if len(legs) != 1 || legs[0].Name != "Bayfield" {
		t.Errorf("legs = %v, want only Bayfield", legs)
	}
}

func TestEmptyStore(t *testing.T) {
	store := newTestStore(t)
	legs, err := store.LoadLegs(context.Background())
	if err != nil {
		t.Fatalf("LoadLegs: %v", err)
	}
	if len(legs) != 0 {
		t.Errorf("got %d legs, want 0", len(legs))
	}
}

func TestUpdateLegReadsFreshState(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.SaveLegs(ctx, []*trip.Leg{seedLeg(t)}); err != nil {
		t.Fatalf("SaveLegs: %v", err)
	}

	updated, err := trip.UpdateLeg(ctx, store, "galena", func(l *trip.Leg) error {
		_, err := l.AddCustom("Sunset Lookout", "", "19:00", 60, "2024-05-03")
		return err
	})
	if err != nil {
		t.Fatalf("UpdateLeg: %v", err)
	}
	if len(updated.Planned) != 2 {
		t.Errorf("planned size = %d, want 2", len(updated.Planned))
	}

	legs, err := store.LoadLegs(ctx)
	if err != nil {
		t.Fatalf("LoadLegs: %v", err)
	}
	if len(legs[0].Planned) != 2 {
		t.Errorf("persisted planned size = %d, want 2", len(legs[0].Planned))
	}

	t.Run("unknown leg", func(t *testing.T) {
		_, err := trip.UpdateLeg(ctx, store, "atlantis", func(*trip.Leg) error { return nil })
		if !errors.Is(err, trip.ErrLegNotFound) {
			t.Errorf("got %v, want ErrLegNotFound", err)
		}
	})

	t.Run("callback error aborts write", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := trip.UpdateLeg(ctx, store, "galena", func(*trip.Leg) error { return boom })
		if !errors.Is(err, boom) {
			t.Errorf("got %v, want boom", err)
		}
		legs, _ := store.LoadLegs(ctx)
		if len(legs[0].Planned) != 2 {
			t.Errorf("aborted update still wrote: %d planned", len(legs[0].Planned))
		}
	})
}

func TestRangeShrinkPersistsPrune(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	leg := seedLeg(t)
	if _, err := leg.Assign(leg.Activities[1], "2024-05-05", "13:00"); err != nil {
		t.Fatalf("Assign: %v", err)
	}
	if err := store.SaveLegs(ctx, []*trip.Leg{leg}); err != nil {
		t.Fatalf("SaveLegs: %v", err)
	}

	var pruned int
	_, err := trip.UpdateLeg(ctx, store, "galena", func(l *trip.Leg) error {
		var err error
		pruned, err = l.SetDateRange("2024-05-01", "2024-05-03")
		return err
	})
	if err != nil {
		t.Fatalf("UpdateLeg: %v", err)
	}
	if pruned != 1 {
		t.Errorf("pruned = %d, want 1", pruned)
	}

	legs, err := store.LoadLegs(ctx)
	if err != nil {
		t.Fatalf("LoadLegs: %v", err)
	}
	if len(legs[0].Planned) != 1 {
		t.Errorf("persisted planned size = %d, want 1 (pruned entry gone)", len(legs[0].Planned))
	}
}
