package ports

import (
	"carbon-logistics-service/internal/domain"
	"context"
)

// Port: a boundary for reading the part catalogue.
type PartRepository interface {
	// Return the part with the given identity, or domain.ErrPartNotFound.
	FindPart(ctx context.Context, key domain.PartKey) (*domain.PartRecord, error)
	// Return distinct manufacturers, sorted.
	ListManufacturers(ctx context.Context) ([]string, error)
	// Return distinct parts of one manufacturer.
	ListParts(ctx context.Context, manufacturer string) ([]domain.PartSummary, error)
}
