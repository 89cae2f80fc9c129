package osm

import (
	"carbon-logistics-service/internal/domain"
	"context"
	"fmt"
	"sync"
)

// StaticGeocoder resolves places from a fixed table and counts lookups.
// Unknown places yield domain.ErrNoGeocodeMatch.
type StaticGeocoder struct {
	mu     sync.Mutex
	places map[string]domain.Coordinates
	errs   map[string]error
	calls  map[string]int
}

func NewStaticGeocoder(places map[string]domain.Coordinates) *StaticGeocoder {
	return &StaticGeocoder{
		places: places,
		errs:   make(map[string]error),
		calls:  make(map[string]int),
	}
}

// FailWith makes lookups of place return err.
func (g *StaticGeocoder) FailWith(place string, err error) *StaticGeocoder {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.errs[place] = err
	return g
}

func (g *StaticGeocoder) Geocode(_ context.Context, place string) (domain.Coordinates, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.calls[place]++
	if err, ok := g.errs[place]; ok {
		return domain.Coordinates{}, err
	}
	c, ok := g.places[place]
	if !ok {
		return domain.Coordinates{}, fmt.Errorf("%q: %w", place, domain.ErrNoGeocodeMatch)
	}
	return c, nil
}

// Calls returns how many times place was looked up.
func (g *StaticGeocoder) Calls(place string) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.calls[place]
}

// TotalCalls returns the number of lookups across all places.
func (g *StaticGeocoder) TotalCalls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	n := 0
	for _, c := range g.calls {
		n += c
	}
	return n
}
