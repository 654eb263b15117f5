package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/cartscout/backend/internal/domain"
)

// PriceRepository is a thread-safe in-memory price catalog. Records keep
// their insertion order, which the planner's last-write-wins index depends
// on.
type PriceRepository struct {
	records []domain.PriceRecord
	mutex   sync.RWMutex
}

// NewPriceRepository creates an empty in-memory price repository
func NewPriceRepository() *PriceRepository {
	return &PriceRepository{}
}

// ListAll returns a copy of the catalog in insertion order
func (r *PriceRepository) ListAll(ctx context.Context) ([]domain.PriceRecord, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	records := make([]domain.PriceRecord, len(r.records))
	copy(records, r.records)
	return records, nil
}

// BulkInsert appends a batch of records, minting IDs where unset
func (r *PriceRepository) BulkInsert(ctx context.Context, records []domain.PriceRecord) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	for _, record := range records {
		if record.ID == "" {
			record.ID = uuid.New().String()
		}
		r.records = append(r.records, record)
	}
	return nil
}
