package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cartscout/backend/internal/domain"
)

// ItemRepository persists grocery items in the grocery_items table
type ItemRepository struct {
	db *pgxpool.Pool
}

// NewItemRepository creates a postgres-backed item repository
func NewItemRepository(db *pgxpool.Pool) *ItemRepository {
	return &ItemRepository{db: db}
}

// ListByUser returns the user's items, newest first
func (r *ItemRepository) ListByUser(ctx context.Context, userID string) ([]domain.GroceryItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, size, category, qty
		FROM grocery_items
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.GroceryItem
	for rows.Next() {
		var item domain.GroceryItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Size, &item.Category, &item.Quantity); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// Add inserts a new item, minting an ID if the caller did not set one
func (r *ItemRepository) Add(ctx context.Context, userID string, item *domain.GroceryItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}

	_, err := r.db.Exec(ctx, `
		INSERT INTO grocery_items (id, user_id, name, size, category, qty)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, item.ID, userID, item.Name, item.Size, item.Category, item.Quantity)
	return err
}

// Remove deletes one of the user's items by ID
func (r *ItemRepository) Remove(ctx context.Context, userID, itemID string) error {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM grocery_items
		WHERE id = $1 AND user_id = $2
	`, itemID, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrItemNotFound, itemID)
	}
	return nil
}
