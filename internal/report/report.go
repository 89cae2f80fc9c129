// Package report renders calculation results for people: figures are
// rounded half-up to two decimals.
package report

import (
	"carbon-logistics-service/internal/domain"
	"carbon-logistics-service/internal/services"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/shopspring/decimal"
)

const places = 2

type Leg struct {
	Mode          string          `json:"mode"`
	Source        string          `json:"source"`
	DistanceKm    decimal.Decimal `json:"distance_km"`
	DurationHours decimal.Decimal `json:"duration_hours"`
	EmissionsKg   decimal.Decimal `json:"emissions_kg"`
}

type Report struct {
	Manufacturer    string          `json:"manufacturer"`
	PartName        string          `json:"part_name"`
	SerialID        string          `json:"serial_id"`
	WeightKg        decimal.Decimal `json:"weight_kg"`
	EquipmentAge    string          `json:"equipment_age"`
	ManufacturingKg decimal.Decimal `json:"manufacturing_kg"`
	UsageAdjustedKg decimal.Decimal `json:"usage_adjusted_kg"`
	Local           Leg             `json:"local"`
	Global          *Leg            `json:"global,omitempty"`
	OldTotalKg      decimal.Decimal `json:"old_total_kg"`
	NewTotalKg      decimal.Decimal `json:"new_total_kg"`
	FinalKg         decimal.Decimal `json:"final_kg"`
}

func round(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(places)
}

func legReport(l domain.Leg, emissionsKg float64) Leg {
	return Leg{
		Mode:          string(l.Mode),
		Source:        string(l.Source),
		DistanceKm:    round(l.DistanceKm),
		DurationHours: round(l.DurationHours),
		EmissionsKg:   round(emissionsKg),
	}
}

// FromResult builds a rounded report. Totals are rounded from the exact
// values, not summed from rounded parts.
func FromResult(res *services.CalculationResult) Report {
	b := res.Breakdown

	r := Report{
		Manufacturer:    res.Part.Manufacturer,
		PartName:        res.Part.PartName,
		SerialID:        res.Part.SerialID,
		WeightKg:        round(res.Part.WeightKg),
		EquipmentAge:    string(res.EquipmentAge),
		ManufacturingKg: round(b.ManufacturingKg),
		UsageAdjustedKg: round(b.UsageAdjustedKg),
		Local:           legReport(res.LocalLeg, b.LocalTransportKg),
		OldTotalKg:      round(b.OldTotalKg),
		NewTotalKg:      round(b.NewTotalKg),
		FinalKg:         round(b.FinalKg),
	}
	if res.GlobalLeg != nil {
		g := legReport(*res.GlobalLeg, b.GlobalTransportKg)
		r.Global = &g
	}
	return r
}

func WriteJSON(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

func WriteText(w io.Writer, r Report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "Part\t%s %s (%s)\n", r.Manufacturer, r.PartName, r.SerialID)
	fmt.Fprintf(tw, "Weight\t%s kg\n", r.WeightKg.StringFixed(places))
	fmt.Fprintf(tw, "Equipment\t%s\n", r.EquipmentAge)
	fmt.Fprintln(tw)
	fmt.Fprintf(tw, "Manufacturing\t%s kg CO2e\n", r.ManufacturingKg.StringFixed(places))
	fmt.Fprintf(tw, "Usage adjusted\t%s kg CO2e\n", r.UsageAdjustedKg.StringFixed(places))
	writeLeg(tw, "Local leg", r.Local)
	if r.Global != nil {
		writeLeg(tw, "Global leg", *r.Global)
	}
	fmt.Fprintln(tw)
	fmt.Fprintf(tw, "Old total\t%s kg CO2e\n", r.OldTotalKg.StringFixed(places))
	fmt.Fprintf(tw, "New total\t%s kg CO2e\n", r.NewTotalKg.StringFixed(places))
	fmt.Fprintf(tw, "Final\t%s kg CO2e\n", r.FinalKg.StringFixed(places))

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

func writeLeg(w io.Writer, title string, l Leg) {
	fmt.Fprintf(w, "%s\t%s km, %s h (%s), %s kg CO2e\n",
		title,
		l.DistanceKm.StringFixed(places),
		l.DurationHours.StringFixed(places),
		l.Source,
		l.EmissionsKg.StringFixed(places),
	)
}
