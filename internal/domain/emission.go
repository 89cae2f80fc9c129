package domain

// EmissionBreakdown carries every intermediate and final figure of a
// calculation, in kg CO2e. It is built once and never mutated.
type EmissionBreakdown struct {
	ManufacturingKg   float64
	UsageAdjustedKg   float64
	LocalTransportKg  float64
	GlobalTransportKg float64
	OldTotalKg        float64
	NewTotalKg        float64
	FinalKg           float64
	EquipmentAge      EquipmentAge
}
