package ports

import (
	"carbon-logistics-service/internal/domain"
	"context"
)

// Road distance and travel duration of the first route between two points.
type RouteResult struct {
	DistanceMeters  float64
	DurationSeconds float64
}

// Contract for live road routing.
type RouteProvider interface {
	// Return the first route from origin to destination, or nil when the
	// service answered with zero routes.
	Route(ctx context.Context, origin, destination domain.Coordinates) (*RouteResult, error)
}
