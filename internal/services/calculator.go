package services

import (
	"carbon-logistics-service/internal/domain"
	"carbon-logistics-service/internal/platform/metrics"
	"carbon-logistics-service/internal/platform/obs"
	"carbon-logistics-service/internal/platform/tracing"
	"carbon-logistics-service/internal/ports"
	"context"
	"errors"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// CalculateRequest identifies a part and the places of its legs.
// The global pair is optional; a global leg is computed only when both
// GlobalPickup and GlobalDelivery are set.
type CalculateRequest struct {
	Manufacturer   string
	PartName       string
	SerialID       string
	EquipmentType  string
	Pickup         string
	Delivery       string
	GlobalPickup   string
	GlobalDelivery string
}

// Validate reports every missing or invalid field in one error.
func (r CalculateRequest) Validate() error {
	fields := make(map[string]string)

	required := []struct {
		name  string
		value string
	}{
		{"manufacturer", r.Manufacturer},
		{"part_name", r.PartName},
		{"serial_id", r.SerialID},
		{"equipment_type", r.EquipmentType},
		{"pickup", r.Pickup},
		{"delivery", r.Delivery},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			fields[f.name] = "is required"
		}
	}

	if _, ok := fields["equipment_type"]; !ok {
		if _, ok := domain.ParseEquipmentAge(r.EquipmentType); !ok {
			fields["equipment_type"] = "must be Old or New"
		}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

func (r CalculateRequest) hasGlobalLeg() bool {
	return strings.TrimSpace(r.GlobalPickup) != "" && strings.TrimSpace(r.GlobalDelivery) != ""
}

func (r CalculateRequest) partKey() domain.PartKey {
	return domain.PartKey{
		Manufacturer: strings.TrimSpace(r.Manufacturer),
		PartName:     strings.TrimSpace(r.PartName),
		SerialID:     strings.TrimSpace(r.SerialID),
	}
}

type CalculationResult struct {
	Part           domain.PartRecord
	EquipmentAge   domain.EquipmentAge
	Breakdown      domain.EmissionBreakdown
	LocalLeg       domain.Leg
	GlobalLeg      *domain.Leg
	Summary        domain.RouteSummary
	TransportChart domain.ChartPayload
	MaterialChart  domain.ChartPayload
}

// Calculator runs the full estimation pipeline for one request at a time.
// It holds only shared, immutable dependencies.
type Calculator struct {
	parts    ports.PartRepository
	geocoder ports.Geocoder
	resolver *DistanceResolver
}

func NewCalculator(parts ports.PartRepository, geocoder ports.Geocoder, router ports.RouteProvider) *Calculator {
	return &Calculator{
		parts:    parts,
		geocoder: geocoder,
		resolver: NewDistanceResolver(router),
	}
}

func (c *Calculator) Calculate(ctx context.Context, req CalculateRequest) (_ *CalculationResult, err error) {
	ctx, span := tracing.StartSpan(ctx, "calculator.calculate",
		attribute.String("manufacturer", req.Manufacturer),
		attribute.String("serial_id", req.SerialID),
	)
	defer tracing.End(span, &err)
	defer obs.Time(ctx, "calculator.calculate")(&err)
	defer func() { metrics.RecordCalculation(outcome(err)) }()

	if err := req.Validate(); err != nil {
		return nil, err
	}
	age, _ := domain.ParseEquipmentAge(req.EquipmentType)

	part, err := c.parts.FindPart(ctx, req.partKey())
	if err != nil {
		return nil, fmt.Errorf("calculate: find part: %w", err)
	}

	geo := NewGeolocator(c.geocoder)

	local, err := c.leg(ctx, geo, req.Pickup, req.Delivery, domain.ModeLocal)
	if err != nil {
		return nil, fmt.Errorf("calculate: local leg: %w", err)
	}

	var global *domain.Leg
	switch {
	case req.hasGlobalLeg():
		g, err := c.leg(ctx, geo, req.GlobalPickup, req.GlobalDelivery, domain.ModeGlobal)
		if err != nil {
			return nil, fmt.Errorf("calculate: global leg: %w", err)
		}
		global = &g
	case strings.TrimSpace(req.GlobalPickup) != "" || strings.TrimSpace(req.GlobalDelivery) != "":
		obs.Logger(ctx).Warn("ignoring incomplete global leg",
			zap.Bool("has_pickup", strings.TrimSpace(req.GlobalPickup) != ""),
			zap.Bool("has_delivery", strings.TrimSpace(req.GlobalDelivery) != ""),
		)
	}

	breakdown := Aggregate(*part, local, global, age)

	return &CalculationResult{
		Part:           *part,
		EquipmentAge:   age,
		Breakdown:      breakdown,
		LocalLeg:       local,
		GlobalLeg:      global,
		Summary:        BuildSummary(local, global),
		TransportChart: TransportChart(breakdown.GlobalTransportKg, breakdown.LocalTransportKg),
		MaterialChart:  MaterialChart(part.MaterialEmissions),
	}, nil
}

func (c *Calculator) leg(
	ctx context.Context,
	geo *Geolocator,
	pickup string,
	delivery string,
	mode domain.Mode,
) (domain.Leg, error) {
	origin, err := geo.Resolve(ctx, pickup)
	if err != nil {
		return domain.Leg{}, err
	}
	destination, err := geo.Resolve(ctx, delivery)
	if err != nil {
		return domain.Leg{}, err
	}
	return c.resolver.Resolve(ctx, origin, destination, mode)
}

func outcome(err error) string {
	var (
		ve *domain.ValidationError
		ge *domain.GeocodeError
	)
	switch {
	case err == nil:
		return "ok"
	case errors.As(err, &ve):
		return "invalid"
	case errors.Is(err, domain.ErrPartNotFound):
		return "not_found"
	case errors.As(err, &ge):
		return "geocode_error"
	default:
		return "error"
	}
}
