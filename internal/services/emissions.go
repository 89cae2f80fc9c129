package services

import "carbon-logistics-service/internal/domain"

const (
	// kg CO2e per kg of cargo per km.
	DefaultFuelFactor = 3.27

	// Baseline production adjustment applied to every part.
	productionBaseline = 60000.0
	productionOffset   = 5000.0

	// Old-equipment policy.
	LifetimeEmissionsKg    = 16000.0
	UsageEmissionRatePerHr = 0.05
)

// Transport emissions of moving weightKg over distanceKm.
func TransportEmissions(weightKg, distanceKm, fuelFactor float64) float64 {
	return weightKg * fuelFactor * distanceKm
}

// Manufacturing emissions of a part, including the fixed production baseline.
func CreatedEmissions(part domain.PartRecord) float64 {
	return part.ManufacturingEmissionFactor*part.WeightKg +
		productionBaseline*DefaultFuelFactor -
		productionOffset*DefaultFuelFactor
}

// Baseline under the Old policy: created emissions less the lifetime budget
// not yet consumed. The result may be negative and is kept as is.
func UsageAdjustedEmissions(created, usedHours float64) float64 {
	alreadyUsed := usedHours * UsageEmissionRatePerHr
	return created - (LifetimeEmissionsKg - alreadyUsed)
}

// Aggregate folds manufacturing and transport emissions into both policy
// totals and selects the final figure by age. global may be nil.
func Aggregate(part domain.PartRecord, local domain.Leg, global *domain.Leg, age domain.EquipmentAge) domain.EmissionBreakdown {
	created := CreatedEmissions(part)
	oldBaseline := UsageAdjustedEmissions(created, part.UsedHours)
	newBaseline := created

	localKg := TransportEmissions(part.WeightKg, local.DistanceKm, DefaultFuelFactor)
	globalKg := 0.0
	if global != nil {
		globalKg = TransportEmissions(part.WeightKg, global.DistanceKm, DefaultFuelFactor)
	}

	b := domain.EmissionBreakdown{
		ManufacturingKg:   created,
		UsageAdjustedKg:   oldBaseline,
		LocalTransportKg:  localKg,
		GlobalTransportKg: globalKg,
		OldTotalKg:        oldBaseline + localKg + globalKg,
		NewTotalKg:        newBaseline + localKg + globalKg,
		EquipmentAge:      age,
	}

	if age == domain.EquipmentOld {
		b.FinalKg = b.OldTotalKg
	} else {
		b.FinalKg = b.NewTotalKg
	}

	return b
}
