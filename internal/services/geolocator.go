package services

import (
	"carbon-logistics-service/internal/domain"
	"carbon-logistics-service/internal/ports"
	"context"
	"errors"
	"strings"
)

// Geolocator resolves place names for a single request. Each distinct
// place is sent to the geocoder at most once; nothing outlives the request.
type Geolocator struct {
	geocoder ports.Geocoder
	resolved map[string]domain.Coordinates
}

func NewGeolocator(geocoder ports.Geocoder) *Geolocator {
	return &Geolocator{
		geocoder: geocoder,
		resolved: make(map[string]domain.Coordinates, 4),
	}
}

// Resolve returns the coordinates of place or a *domain.GeocodeError.
func (g *Geolocator) Resolve(ctx context.Context, place string) (domain.Coordinates, error) {
	name := strings.TrimSpace(place)
	if name == "" {
		return domain.Coordinates{}, &domain.GeocodeError{Place: place, Err: domain.ErrEmptyPlaceName}
	}

	if c, ok := g.resolved[name]; ok {
		return c, nil
	}

	c, err := g.geocoder.Geocode(ctx, name)
	if err != nil {
		var ge *domain.GeocodeError
		if errors.As(err, &ge) {
			return domain.Coordinates{}, ge
		}
		return domain.Coordinates{}, &domain.GeocodeError{Place: name, Err: err}
	}
	if err := c.Validate(); err != nil {
		return domain.Coordinates{}, &domain.GeocodeError{Place: name, Err: err}
	}

	g.resolved[name] = c
	return c, nil
}
