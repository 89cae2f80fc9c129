package repositories

import (
	"carbon-logistics-service/internal/domain"
	"context"
	"slices"
)

// In-memory PartRepository, used as a test double by the service and API tests.
type MemoryPartRepository struct {
	parts []domain.PartRecord
}

func NewMemoryPartRepository(parts ...domain.PartRecord) *MemoryPartRepository {
	return &MemoryPartRepository{parts: parts}
}

func (m *MemoryPartRepository) FindPart(_ context.Context, key domain.PartKey) (*domain.PartRecord, error) {
	for i := range m.parts {
		if m.parts[i].PartKey == key {
			p := m.parts[i]
			return &p, nil
		}
	}
	return nil, domain.ErrPartNotFound
}

func (m *MemoryPartRepository) ListManufacturers(context.Context) ([]string, error) {
	out := make([]string, 0, len(m.parts))
	for _, p := range m.parts {
		if !slices.Contains(out, p.Manufacturer) {
			out = append(out, p.Manufacturer)
		}
	}
	slices.Sort(out)
	return out, nil
}

func (m *MemoryPartRepository) ListParts(_ context.Context, manufacturer string) ([]domain.PartSummary, error) {
	out := make([]domain.PartSummary, 0)
	for _, p := range m.parts {
		if p.Manufacturer != manufacturer {
			continue
		}
		s := domain.PartSummary{PartName: p.PartName, SerialID: p.SerialID}
		if !slices.Contains(out, s) {
			out = append(out, s)
		}
	}
	return out, nil
}
