package services

import (
	"carbon-logistics-service/internal/domain"
	"carbon-logistics-service/internal/platform/metrics"
	"carbon-logistics-service/internal/platform/obs"
	"carbon-logistics-service/internal/platform/tracing"
	"carbon-logistics-service/internal/ports"
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

const (
	// Average road speed used when a local leg falls back to great-circle distance.
	LocalFallbackSpeedKmh = 50.0
	// Average air-freight cruise speed for global legs.
	GlobalSpeedKmh = 830.0
)

// DistanceResolver turns two coordinates and a mode into a Leg.
//
// Local legs use the live router when it returns at least one route and the
// great-circle estimate otherwise. Global legs never call the router.
type DistanceResolver struct {
	router ports.RouteProvider
}

// router may be nil, in which case every local leg is estimated.
func NewDistanceResolver(router ports.RouteProvider) *DistanceResolver {
	return &DistanceResolver{router: router}
}

func (r *DistanceResolver) Resolve(
	ctx context.Context,
	origin domain.Coordinates,
	destination domain.Coordinates,
	mode domain.Mode,
) (domain.Leg, error) {
	leg := domain.Leg{
		Origin:      origin,
		Destination: destination,
		Mode:        mode,
	}

	switch mode {
	case domain.ModeLocal:
		route, reason := r.liveRoute(ctx, origin, destination)
		if route != nil {
			leg.DistanceKm = route.DistanceMeters / 1000
			leg.DurationHours = route.DurationSeconds / 3600
			leg.Source = domain.SourceLiveRoute
			break
		}
		metrics.RecordRoutingFallback(reason)
		tracing.AddEvent(ctx, "distance.fallback", attribute.String("reason", reason))
		leg.DistanceKm = HaversineKm(origin, destination)
		leg.DurationHours = leg.DistanceKm / LocalFallbackSpeedKmh
		leg.Source = domain.SourceGreatCircleEstimate
	case domain.ModeGlobal:
		leg.DistanceKm = HaversineKm(origin, destination)
		leg.DurationHours = leg.DistanceKm / GlobalSpeedKmh
		leg.Source = domain.SourceGreatCircleEstimate
	default:
		return domain.Leg{}, &domain.InvalidModeError{Mode: string(mode)}
	}

	metrics.RecordDistanceResolution(string(leg.Mode), string(leg.Source))
	return leg, nil
}

// liveRoute never fails: routing errors are logged and reported as a
// fallback reason.
func (r *DistanceResolver) liveRoute(
	ctx context.Context,
	origin domain.Coordinates,
	destination domain.Coordinates,
) (*ports.RouteResult, string) {
	if r.router == nil {
		return nil, "unavailable"
	}

	route, err := r.router.Route(ctx, origin, destination)
	if err != nil {
		rerr := &domain.RoutingServiceError{Err: err}
		obs.Logger(ctx).Warn("live routing failed, using great-circle estimate", zap.Error(rerr))
		return nil, "error"
	}
	if route == nil {
		obs.Logger(ctx).Info("no road route found, using great-circle estimate",
			zap.Float64s("origin", origin.CoordsToList()),
			zap.Float64s("destination", destination.CoordsToList()),
		)
		return nil, "no_route"
	}
	return route, ""
}
