package domain

// Mass of each tracked material in a part, in tonnes as catalogued.
type Materials struct {
	Steel    float64
	Aluminum float64
	Rubber   float64
	Other    float64
}

// Embodied emissions per material, in kg CO2e.
type MaterialEmissions struct {
	Steel    float64
	Aluminum float64
	Rubber   float64
}

// Identity of a catalogued part.
type PartKey struct {
	Manufacturer string
	PartName     string
	SerialID     string
}

// PartRecord is a read-only row of the part catalogue.
type PartRecord struct {
	PartKey
	WeightKg                    float64
	DriveType                   string
	UsedHours                   float64
	FuelType                    string
	Materials                   Materials
	MaterialEmissions           MaterialEmissions
	ManufacturingEmissionFactor float64
}

// Summary entry used by part listings.
type PartSummary struct {
	PartName string
	SerialID string
}
