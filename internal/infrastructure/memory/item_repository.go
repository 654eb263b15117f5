package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/cartscout/backend/internal/domain"
)

// ItemRepository is a thread-safe in-memory grocery list store. It backs
// guest mode and the memory storage mode; contents are lost on restart.
type ItemRepository struct {
	items map[string][]domain.GroceryItem // keyed by user ID
	mutex sync.RWMutex
}

// NewItemRepository creates an empty in-memory item repository
func NewItemRepository() *ItemRepository {
	return &ItemRepository{
		items: make(map[string][]domain.GroceryItem),
	}
}

// ListByUser returns a copy of the user's items, newest first
func (r *ItemRepository) ListByUser(ctx context.Context, userID string) ([]domain.GroceryItem, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	stored := r.items[userID]
	items := make([]domain.GroceryItem, len(stored))
	copy(items, stored)
	return items, nil
}

// Add prepends a new item to the user's list, minting an ID if unset
func (r *ItemRepository) Add(ctx context.Context, userID string, item *domain.GroceryItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.items[userID] = append([]domain.GroceryItem{*item}, r.items[userID]...)
	return nil
}

// Remove deletes one of the user's items by ID
func (r *ItemRepository) Remove(ctx context.Context, userID, itemID string) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	stored := r.items[userID]
	for i, item := range stored {
		if item.ID == itemID {
			r.items[userID] = append(stored[:i:i], stored[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", domain.ErrItemNotFound, itemID)
}
