package ports

import (
	"carbon-logistics-service/internal/domain"
	"context"
)

// Contract for resolving a free-text place name to coordinates.
type Geocoder interface {
	// Return the best match for place. Implementations return an error
	// wrapping domain.ErrNoGeocodeMatch when nothing matches.
	Geocode(ctx context.Context, place string) (domain.Coordinates, error)
}
