package domain

import "context"

// ItemRepository defines the interface for grocery list persistence.
// Guest-mode items live under GuestUserID in the ephemeral store.
type ItemRepository interface {
	ListByUser(ctx context.Context, userID string) ([]GroceryItem, error)
	Add(ctx context.Context, userID string, item *GroceryItem) error
	Remove(ctx context.Context, userID, itemID string) error
}

// PriceRepository defines the interface for the price catalog
type PriceRepository interface {
	ListAll(ctx context.Context) ([]PriceRecord, error)
	BulkInsert(ctx context.Context, records []PriceRecord) error
}

// UserRepository defines the interface for account persistence
type UserRepository interface {
	Save(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
