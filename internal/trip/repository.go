package trip

import "context"

// Store defines the storage collaborator for trip legs. The contract is
// deliberately coarse: every mutation path reads the entire list, mutates
// one entry, and writes the entire list back. Nothing stronger than
// whole-list overwrite is assumed; concurrent edits from another open view
// resolve last-write-wins.
type Store interface {
	// LoadLegs returns all saved trip legs.
	LoadLegs(ctx context.Context) ([]*Leg, error)

	// SaveLegs replaces the entire stored list.
	SaveLegs(ctx context.Context, legs []*Leg) error

	// Close releases any resources held by the store.
	Close() error
}

// UpdateLeg runs the read-modify-write cycle for a single leg: the list is
// re-read immediately before writing so the commit lands on the latest
// persisted state. fn mutates the matched leg in place; returning an error
// aborts without writing. Returns ErrLegNotFound when no leg matches.
func UpdateLeg(ctx context.Context, s Store, name string, fn func(*Leg) error) (*Leg, error) {
	legs, err := s.LoadLegs(ctx)
	if err != nil {
		return nil, err
	}
	leg := FindLeg(legs, name)
	if leg == nil {
		return nil, ErrLegNotFound
	}
	if err := fn(leg); err != nil {
		return nil, err
	}
	if err := s.SaveLegs(ctx, legs); err != nil {
		return nil, err
	}
	return leg, nil
}
