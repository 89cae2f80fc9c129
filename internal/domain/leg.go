package domain

// Represents one transport segment between two resolved places.
// A Leg is recomputed on every request and never cached or persisted.
type Leg struct {
	Origin        Coordinates
	Destination   Coordinates
	DistanceKm    float64
	DurationHours float64
	Mode          Mode
	Source        DistanceSource
}
