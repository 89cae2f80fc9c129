package dto

type PartSummaryResponse struct {
	PartName string `json:"part_name"`
	SerialID string `json:"serial_id"`
}
