package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/cartscout/backend/internal/domain"
)

// PriceService manages the shared price catalog. The catalog is read in full
// by the planner; there is no per-user scoping.
type PriceService struct {
	repo domain.PriceRepository
}

// NewPriceService creates a new price catalog service
func NewPriceService(repo domain.PriceRepository) *PriceService {
	return &PriceService{repo: repo}
}

// ListAll returns every price record in the catalog
func (s *PriceService) ListAll(ctx context.Context) ([]domain.PriceRecord, error) {
	return s.repo.ListAll(ctx)
}

// Import validates and stores a batch of price records. Records keep their
// input order; the planner's index builder resolves duplicate
// (product, retailer) pairs last-write-wins, so order matters.
func (s *PriceService) Import(ctx context.Context, records []domain.PriceRecord) error {
	if len(records) == 0 {
		return fmt.Errorf("%w: no records to import", domain.ErrInvalidPriceRecord)
	}

	for i, record := range records {
		if strings.TrimSpace(record.ProductName) == "" {
			return fmt.Errorf("%w: record %d has no product name", domain.ErrInvalidPriceRecord, i)
		}
		if strings.TrimSpace(record.RetailerName) == "" {
			return fmt.Errorf("%w: record %d has no retailer name", domain.ErrInvalidPriceRecord, i)
		}
		if record.Price < 0 {
			return fmt.Errorf("%w: record %d has negative price", domain.ErrInvalidPriceRecord, i)
		}
	}

	return s.repo.BulkInsert(ctx, records)
}
