package dto

import (
	"carbon-logistics-service/internal/domain"
	"carbon-logistics-service/internal/services"
)

func LogisticsInfo(l domain.Leg) LogisticsInfoResponse {
	return LogisticsInfoResponse{
		Olat:     l.Origin.Lat,
		Olon:     l.Origin.Lon,
		Dlat:     l.Destination.Lat,
		Dlon:     l.Destination.Lon,
		Distance: l.DistanceKm,
		Duration: l.DurationHours,
		Mode:     string(l.Mode),
		Source:   string(l.Source),
	}
}

func Chart(c domain.ChartPayload) ChartResponse {
	return ChartResponse{Labels: c.Labels, Values: c.Values, Colors: c.Colors}
}

func RouteSummary(s domain.RouteSummary) RouteSummaryResponse {
	res := RouteSummaryResponse{
		Waypoints: make([]WaypointResponse, 0, len(s.Waypoints)),
		Polyline:  make([][]float64, 0, len(s.Polyline)),
		Center:    s.Center.LatLng(),
		Zoom:      s.Zoom,
		LocalLeg:  LogisticsInfo(s.LocalLeg),
	}
	for _, w := range s.Waypoints {
		res.Waypoints = append(res.Waypoints, WaypointResponse{
			Lat:   w.Coordinates.Lat,
			Lon:   w.Coordinates.Lon,
			Label: string(w.Label),
			Kind:  string(w.Kind),
		})
	}
	for _, c := range s.Polyline {
		res.Polyline = append(res.Polyline, c.LatLng())
	}
	if s.GlobalLeg != nil {
		g := LogisticsInfo(*s.GlobalLeg)
		res.GlobalLeg = &g
	}
	return res
}

func CalculateResult(res *services.CalculationResult) CalculateResponse {
	b := res.Breakdown

	out := CalculateResponse{
		Weight:            res.Part.WeightKg,
		Manufacturer:      res.Part.Manufacturer,
		PartName:          res.Part.PartName,
		SerialID:          res.Part.SerialID,
		EquipmentType:     string(res.EquipmentAge),
		FinalEmission:     b.FinalKg,
		OldTotalEmissions: b.OldTotalKg,
		NewTotalEmissions: b.NewTotalKg,
		CreatedEmission:   b.ManufacturingKg,
		LogisticsInfo:     LogisticsInfo(res.LocalLeg),
		ChartData:         Chart(res.TransportChart),
		ComponentChart:    Chart(res.MaterialChart),
		RouteSummary:      RouteSummary(res.Summary),
		Breakdown: BreakdownResponse{
			ManufacturingKg:   b.ManufacturingKg,
			UsageAdjustedKg:   b.UsageAdjustedKg,
			LocalTransportKg:  b.LocalTransportKg,
			GlobalTransportKg: b.GlobalTransportKg,
			OldTotalKg:        b.OldTotalKg,
			NewTotalKg:        b.NewTotalKg,
			FinalKg:           b.FinalKg,
		},
	}
	if res.GlobalLeg != nil {
		g := LogisticsInfo(*res.GlobalLeg)
		out.GLogisticsInfo = &g
	}
	return out
}

func (r CalculateRequest) ToService() services.CalculateRequest {
	return services.CalculateRequest{
		Manufacturer:   r.Manufacturer,
		PartName:       r.PartName,
		SerialID:       r.SerialID,
		EquipmentType:  r.EquipmentType,
		Pickup:         r.Pickup,
		Delivery:       r.Delivery,
		GlobalPickup:   r.GlobalPickup,
		GlobalDelivery: r.GlobalDelivery,
	}
}
