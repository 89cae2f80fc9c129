package repositories

import (
	"carbon-logistics-service/internal/domain"
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// SQL-backed implementation of the PartRepository port (SQLite or Postgres).
type SQLPartRepository struct {
	DB      *sql.DB
	Dialect Dialect
}

func NewSQLPartRepository(db *sql.DB, dialect Dialect) *SQLPartRepository {
	return &SQLPartRepository{DB: db, Dialect: dialect}
}

func (s *SQLPartRepository) FindPart(ctx context.Context, key domain.PartKey) (*domain.PartRecord, error) {
	if s.DB == nil {
		return nil, errors.New("sql part repository: DB is nil")
	}

	query := s.Dialect.rebind(`
	SELECT
		manufacturer, part_name, serial_id, weight, drive_type, used_hours, fuel_type,
		steel, aluminum, rubber, other_material,
		steel_emissions, aluminum_emissions, rubber_emissions, manufacturing_emission
	FROM inventory_parts
	WHERE manufacturer = ? AND part_name = ? AND serial_id = ?;
	`)

	var p domain.PartRecord
	err := s.DB.QueryRowContext(ctx, query, key.Manufacturer, key.PartName, key.SerialID).Scan(
		&p.Manufacturer, &p.PartName, &p.SerialID, &p.WeightKg, &p.DriveType, &p.UsedHours, &p.FuelType,
		&p.Materials.Steel, &p.Materials.Aluminum, &p.Materials.Rubber, &p.Materials.Other,
		&p.MaterialEmissions.Steel, &p.MaterialEmissions.Aluminum, &p.MaterialEmissions.Rubber,
		&p.ManufacturingEmissionFactor,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrPartNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find part: query inventory_parts: %w", err)
	}

	return &p, nil
}

func (s *SQLPartRepository) ListManufacturers(ctx context.Context) ([]string, error) {
	if s.DB == nil {
		return nil, errors.New("sql part repository: DB is nil")
	}

	query := `
	SELECT DISTINCT manufacturer
	FROM inventory_parts
	ORDER BY manufacturer;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list manufacturers: query inventory_parts: %w", err)
	}
	defer rows.Close()

	out := make([]string, 0, 8)
	for rows.Next() {
		var m string
		if err := rows.Scan(&m); err != nil {
			return nil, fmt.Errorf("list manufacturers: scan row: %w", err)
		}
		out = append(out, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list manufacturers: row iteration: %w", err)
	}

	return out, nil
}

func (s *SQLPartRepository) ListParts(ctx context.Context, manufacturer string) ([]domain.PartSummary, error) {
	if s.DB == nil {
		return nil, errors.New("sql part repository: DB is nil")
	}

	query := s.Dialect.rebind(`
	SELECT DISTINCT part_name, serial_id
	FROM inventory_parts
	WHERE manufacturer = ?
	ORDER BY part_name, serial_id;
	`)
	rows, err := s.DB.QueryContext(ctx, query, manufacturer)
	if err != nil {
		return nil, fmt.Errorf("list parts: query inventory_parts: %w", err)
	}
	defer rows.Close()

	out := make([]domain.PartSummary, 0, 16)
	for rows.Next() {
		var p domain.PartSummary
		if err := rows.Scan(&p.PartName, &p.SerialID); err != nil {
			return nil, fmt.Errorf("list parts: scan row: %w", err)
		}
		out = append(out, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list parts: row iteration: %w", err)
	}

	return out, nil
}
