package domain

// Role of a waypoint in the route summary.
type WaypointLabel string

const (
	LabelLocalPickup    WaypointLabel = "Local Pickup"
	LabelLocalDelivery  WaypointLabel = "Local Delivery"
	LabelGlobalPickup   WaypointLabel = "Global Pickup"
	LabelGlobalDelivery WaypointLabel = "Global Delivery"
)

type WaypointKind string

const (
	KindPickup   WaypointKind = "pickup"
	KindDelivery WaypointKind = "delivery"
)

type Waypoint struct {
	Coordinates Coordinates
	Label       WaypointLabel
	Kind        WaypointKind
}

// RouteSummary is a rendering-ready description of the legs of a calculation.
// Waypoints are ordered local pickup, local delivery, then the global pair
// when present; Polyline follows the same order.
type RouteSummary struct {
	Waypoints []Waypoint
	Polyline  []Coordinates
	LocalLeg  Leg
	GlobalLeg *Leg
	Center    Coordinates
	Zoom      int
}

// Labels, values and colors for a chart, index-aligned.
type ChartPayload struct {
	Labels []string
	Values []float64
	Colors []string
}
