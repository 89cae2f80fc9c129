package report

import (
	"bytes"
	"carbon-logistics-service/internal/domain"
	"carbon-logistics-service/internal/services"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResult(withGlobal bool) *services.CalculationResult {
	res := &services.CalculationResult{
		Part: domain.PartRecord{
			PartKey:  domain.PartKey{Manufacturer: "Volvo", PartName: "Mining Haul Truck", SerialID: "A40G"},
			WeightKg: 40,
		},
		EquipmentAge: domain.EquipmentOld,
		LocalLeg: domain.Leg{
			Mode:          domain.ModeLocal,
			Source:        domain.SourceLiveRoute,
			DistanceKm:    12.345,
			DurationHours: 0.2049,
		},
		Breakdown: domain.EmissionBreakdown{
			ManufacturingKg:  183776.96,
			UsageAdjustedKg:  167976.96,
			LocalTransportKg: 1614.726,
			OldTotalKg:       169591.686,
			NewTotalKg:       185391.686,
			FinalKg:          169591.686,
		},
	}
	if withGlobal {
		res.GlobalLeg = &domain.Leg{Mode: domain.ModeGlobal, Source: domain.SourceGreatCircleEstimate, DistanceKm: 5570.2}
		res.Breakdown.GlobalTransportKg = 728582.16
	}
	return res
}

func TestFromResultRoundsHalfUp(t *testing.T) {
	r := FromResult(sampleResult(false))

	assert.Equal(t, "12.35", r.Local.DistanceKm.StringFixed(2))
	assert.Equal(t, "0.20", r.Local.DurationHours.StringFixed(2))
	assert.Equal(t, "1614.73", r.Local.EmissionsKg.StringFixed(2))
	assert.Equal(t, "169591.69", r.FinalKg.StringFixed(2))
	assert.Nil(t, r.Global)
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, FromResult(sampleResult(true))))

	out := buf.String()
	assert.Contains(t, out, "Volvo Mining Haul Truck (A40G)")
	assert.Contains(t, out, "12.35 km")
	assert.Contains(t, out, "Global leg")
	assert.Contains(t, out, "great_circle_estimate")
	assert.Contains(t, out, "169591.69 kg CO2e")
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, FromResult(sampleResult(true))))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "169591.69", decoded["final_kg"])
	assert.Contains(t, decoded, "global")
}
