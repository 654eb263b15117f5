package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cartscout/backend/internal/domain"
)

// PriceRepository persists the price catalog in the product_prices table
type PriceRepository struct {
	db *pgxpool.Pool
}

// NewPriceRepository creates a postgres-backed price repository
func NewPriceRepository(db *pgxpool.Pool) *PriceRepository {
	return &PriceRepository{db: db}
}

// ListAll returns the full catalog in insertion order. Order matters: the
// planner's index resolves duplicate (product, retailer) pairs
// last-write-wins over this ordering.
func (r *PriceRepository) ListAll(ctx context.Context) ([]domain.PriceRecord, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, product_name, retailer_name, price, size
		FROM product_prices
		ORDER BY created_at, id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.PriceRecord
	for rows.Next() {
		var record domain.PriceRecord
		if err := rows.Scan(&record.ID, &record.ProductName, &record.RetailerName, &record.Price, &record.Size); err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// BulkInsert stores a batch of price records inside one transaction
func (r *PriceRepository) BulkInsert(ctx context.Context, records []domain.PriceRecord) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for i := range records {
		if records[i].ID == "" {
			records[i].ID = uuid.New().String()
		}
		_, err := tx.Exec(ctx, `
			INSERT INTO product_prices (id, product_name, retailer_name, price, size)
			VALUES ($1, $2, $3, $4, $5)
		`, records[i].ID, records[i].ProductName, records[i].RetailerName, records[i].Price, records[i].Size)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}
