package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Initialize the part catalogue schema. Safe to call repeatedly.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createPartsQuery := `
	CREATE TABLE IF NOT EXISTS inventory_parts (
		manufacturer TEXT NOT NULL,
		part_name TEXT NOT NULL,
		serial_id TEXT NOT NULL,
		weight DOUBLE PRECISION NOT NULL,
		drive_type TEXT NOT NULL DEFAULT '',
		used_hours DOUBLE PRECISION NOT NULL DEFAULT 0,
		fuel_type TEXT NOT NULL DEFAULT '',
		steel DOUBLE PRECISION NOT NULL DEFAULT 0,
		aluminum DOUBLE PRECISION NOT NULL DEFAULT 0,
		rubber DOUBLE PRECISION NOT NULL DEFAULT 0,
		other_material DOUBLE PRECISION NOT NULL DEFAULT 0,
		steel_emissions DOUBLE PRECISION NOT NULL DEFAULT 0,
		aluminum_emissions DOUBLE PRECISION NOT NULL DEFAULT 0,
		rubber_emissions DOUBLE PRECISION NOT NULL DEFAULT 0,
		manufacturing_emission DOUBLE PRECISION NOT NULL,
		PRIMARY KEY (manufacturer, part_name, serial_id)
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_inventory_parts_manufacturer
	ON inventory_parts(manufacturer);
	`

	statements := []string{
		createPartsQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// PartSeed is one row of the JSON seed file.
type PartSeed struct {
	Manufacturer          string  `json:"manufacturer"`
	PartName              string  `json:"part_name"`
	SerialID              string  `json:"serial_id"`
	Weight                float64 `json:"weight"`
	DriveType             string  `json:"drive_type"`
	UsedHours             float64 `json:"used_hours"`
	FuelType              string  `json:"fuel_type"`
	Steel                 float64 `json:"steel"`
	Aluminum              float64 `json:"aluminum"`
	Rubber                float64 `json:"rubber"`
	OtherMaterial         float64 `json:"other_material"`
	SteelEmissions        float64 `json:"steel_emissions"`
	AluminumEmissions     float64 `json:"aluminum_emissions"`
	RubberEmissions       float64 `json:"rubber_emissions"`
	ManufacturingEmission float64 `json:"manufacturing_emission"`
}

// Populate the catalogue from a JSON file, upserting on the part identity.
// Returns the number of rows written.
func SeedFromJSON(db *sql.DB, dialect Dialect, jsonPath string) (int, error) {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return 0, fmt.Errorf("seed parts: read %q: %w", jsonPath, err)
	}

	var data []PartSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return 0, fmt.Errorf("seed parts: parse json: %w", err)
	}

	rows := make([]PartSeed, 0, len(data))
	for i, item := range data {
		item.Manufacturer = strings.TrimSpace(item.Manufacturer)
		item.PartName = strings.TrimSpace(item.PartName)
		item.SerialID = strings.TrimSpace(item.SerialID)

		if item.Manufacturer == "" || item.PartName == "" || item.SerialID == "" {
			return 0, fmt.Errorf("seed parts: item at index %d: manufacturer, part_name and serial_id are required", i+1)
		}
		if item.Weight <= 0 {
			return 0, fmt.Errorf("seed parts: invalid weight at index %d: %v", i+1, item.Weight)
		}
		if item.UsedHours < 0 {
			return 0, fmt.Errorf("seed parts: invalid used_hours at index %d: %v", i+1, item.UsedHours)
		}
		rows = append(rows, item)
	}

	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("seed parts: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := dialect.rebind(`
	INSERT INTO inventory_parts (
		manufacturer, part_name, serial_id, weight, drive_type, used_hours, fuel_type,
		steel, aluminum, rubber, other_material,
		steel_emissions, aluminum_emissions, rubber_emissions, manufacturing_emission
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT (manufacturer, part_name, serial_id) DO UPDATE SET
		weight = excluded.weight,
		drive_type = excluded.drive_type,
		used_hours = excluded.used_hours,
		fuel_type = excluded.fuel_type,
		steel = excluded.steel,
		aluminum = excluded.aluminum,
		rubber = excluded.rubber,
		other_material = excluded.other_material,
		steel_emissions = excluded.steel_emissions,
		aluminum_emissions = excluded.aluminum_emissions,
		rubber_emissions = excluded.rubber_emissions,
		manufacturing_emission = excluded.manufacturing_emission;
	`)
	stmt, err := tx.Prepare(query)
	if err != nil {
		return 0, fmt.Errorf("seed parts: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range rows {
		_, err := stmt.Exec(
			p.Manufacturer, p.PartName, p.SerialID, p.Weight, p.DriveType, p.UsedHours, p.FuelType,
			p.Steel, p.Aluminum, p.Rubber, p.OtherMaterial,
			p.SteelEmissions, p.AluminumEmissions, p.RubberEmissions, p.ManufacturingEmission,
		)
		if err != nil {
			return 0, fmt.Errorf("seed parts: insert %s/%s/%s: %w", p.Manufacturer, p.PartName, p.SerialID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("seed parts: commit tx: %w", err)
	}

	return len(rows), nil
}
