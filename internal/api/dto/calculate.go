package dto

// Field names match the web client, including the G_ prefix for the global leg.
type CalculateRequest struct {
	Manufacturer   string `json:"manufacturer"`
	PartName       string `json:"part_name"`
	SerialID       string `json:"serial_id"`
	EquipmentType  string `json:"equipment_type"`
	Pickup         string `json:"pickup"`
	Delivery       string `json:"delivery"`
	GlobalPickup   string `json:"G_pickup,omitempty"`
	GlobalDelivery string `json:"G_delivery,omitempty"`
}

type LogisticsInfoResponse struct {
	Olat     float64 `json:"Olat"`
	Olon     float64 `json:"Olon"`
	Dlat     float64 `json:"Dlat"`
	Dlon     float64 `json:"Dlon"`
	Distance float64 `json:"distance"`
	Duration float64 `json:"duration"`
	Mode     string  `json:"mode"`
	Source   string  `json:"source"`
}

type ChartResponse struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
	Colors []string  `json:"colors"`
}

type WaypointResponse struct {
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
	Label string  `json:"label"`
	Kind  string  `json:"kind"`
}

// Coordinates are [lat, lon] pairs, the order map libraries expect.
type RouteSummaryResponse struct {
	Waypoints []WaypointResponse     `json:"waypoints"`
	Polyline  [][]float64            `json:"polyline"`
	Center    []float64              `json:"center"`
	Zoom      int                    `json:"zoom"`
	LocalLeg  LogisticsInfoResponse  `json:"local_leg"`
	GlobalLeg *LogisticsInfoResponse `json:"global_leg"`
}

type BreakdownResponse struct {
	ManufacturingKg   float64 `json:"manufacturing_kg"`
	UsageAdjustedKg   float64 `json:"usage_adjusted_kg"`
	LocalTransportKg  float64 `json:"local_transport_kg"`
	GlobalTransportKg float64 `json:"global_transport_kg"`
	OldTotalKg        float64 `json:"old_total_kg"`
	NewTotalKg        float64 `json:"new_total_kg"`
	FinalKg           float64 `json:"final_kg"`
}

type CalculateResponse struct {
	Weight            float64                `json:"weight"`
	Manufacturer      string                 `json:"manufacturer"`
	PartName          string                 `json:"part_name"`
	SerialID          string                 `json:"serial_id"`
	EquipmentType     string                 `json:"equipment_type"`
	FinalEmission     float64                `json:"final_emission"`
	OldTotalEmissions float64                `json:"old_total_emissions"`
	NewTotalEmissions float64                `json:"new_total_emissions"`
	CreatedEmission   float64                `json:"created_emission"`
	LogisticsInfo     LogisticsInfoResponse  `json:"logistics_info"`
	GLogisticsInfo    *LogisticsInfoResponse `json:"G_logistics_info"`
	ChartData         ChartResponse          `json:"chart_data"`
	ComponentChart    ChartResponse          `json:"component_chart"`
	RouteSummary      RouteSummaryResponse   `json:"route_summary"`
	Breakdown         BreakdownResponse      `json:"breakdown"`
}

type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}
