// Package catalog serves the read-only destination catalog that seeds new
// trip legs.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"wayfarer/internal/trip"
)

//go:embed destinations.json
var destinationsJSON []byte

// Load returns the full destination catalog.
func Load() ([]trip.Destination, error) {
	var dests []trip.Destination
	if err := json.Unmarshal(destinationsJSON, &dests); err != nil {
		return nil, fmt.Errorf("parsing destination catalog: %w", err)
	}
	return dests, nil
}

// Find returns the destination matching name, tolerating slug form
// ("door-county") and case differences. The second return is false when
// no destination matches.
func Find(name string) (trip.Destination, bool) {
	dests, err := Load()
	if err != nil {
		return trip.Destination{}, false
	}
	slug := trip.Slugify(name)
	for _, d := range dests {
		if trip.Slugify(d.Name) == slug {
			return d, true
		}
	}
	return trip.Destination{}, false
}
