package services

import "carbon-logistics-service/internal/domain"

func TransportChart(globalKg, localKg float64) domain.ChartPayload {
	return domain.ChartPayload{
		Labels: []string{"Global Emission", "Local Emission"},
		Values: []float64{globalKg, localKg},
		Colors: []string{"#ff6384", "#36a2eb"},
	}
}

func MaterialChart(m domain.MaterialEmissions) domain.ChartPayload {
	return domain.ChartPayload{
		Labels: []string{"Steel", "Aluminum", "Rubber"},
		Values: []float64{m.Steel, m.Aluminum, m.Rubber},
		Colors: []string{"#4caf50", "#2196f3", "#ff9800"},
	}
}
