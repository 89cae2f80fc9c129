package services

import "carbon-logistics-service/internal/domain"

const defaultMapZoom = 5

// BuildSummary lists waypoints in the order local pickup, local delivery,
// global pickup, global delivery. The polyline joins all of them in that
// order, so a global leg is drawn connected to the local delivery.
func BuildSummary(local domain.Leg, global *domain.Leg) domain.RouteSummary {
	waypoints := []domain.Waypoint{
		{Coordinates: local.Origin, Label: domain.LabelLocalPickup, Kind: domain.KindPickup},
		{Coordinates: local.Destination, Label: domain.LabelLocalDelivery, Kind: domain.KindDelivery},
	}

	var globalCopy *domain.Leg
	if global != nil {
		waypoints = append(waypoints,
			domain.Waypoint{Coordinates: global.Origin, Label: domain.LabelGlobalPickup, Kind: domain.KindPickup},
			domain.Waypoint{Coordinates: global.Destination, Label: domain.LabelGlobalDelivery, Kind: domain.KindDelivery},
		)
		g := *global
		globalCopy = &g
	}

	polyline := make([]domain.Coordinates, 0, len(waypoints))
	for _, w := range waypoints {
		polyline = append(polyline, w.Coordinates)
	}

	return domain.RouteSummary{
		Waypoints: waypoints,
		Polyline:  polyline,
		LocalLeg:  local,
		GlobalLeg: globalCopy,
		Center:    local.Origin,
		Zoom:      defaultMapZoom,
	}
}
