package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/cartscout/backend/internal/domain"
)

// AddItemInput carries the user-supplied fields for a new grocery item
type AddItemInput struct {
	Name     string          `json:"name"`
	Size     string          `json:"size"`
	Category domain.Category `json:"category"`
	Quantity int             `json:"quantity"`
}

// ItemService manages a user's grocery list. Validation happens here so the
// planner downstream can assume well-formed items.
type ItemService struct {
	repo domain.ItemRepository
}

// NewItemService creates a new item service
func NewItemService(repo domain.ItemRepository) *ItemService {
	return &ItemService{repo: repo}
}

// List returns the user's grocery items sorted by name ascending
func (s *ItemService) List(ctx context.Context, userID string) ([]domain.GroceryItem, error) {
	items, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].Name < items[j].Name
	})
	return items, nil
}

// Add validates and stores a new grocery item. Name is required and trimmed,
// quantity must be at least 1, and the category must be a known value.
func (s *ItemService) Add(ctx context.Context, userID string, input AddItemInput) (*domain.GroceryItem, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidItem)
	}
	if input.Quantity < 1 {
		return nil, fmt.Errorf("%w: quantity must be 1 or more", domain.ErrInvalidItem)
	}
	if !input.Category.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidCategory, input.Category)
	}

	item := &domain.GroceryItem{
		Name:     name,
		Size:     strings.TrimSpace(input.Size),
		Category: input.Category,
		Quantity: input.Quantity,
	}

	if err := s.repo.Add(ctx, userID, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Remove deletes a grocery item from the user's list
func (s *ItemService) Remove(ctx context.Context, userID, itemID string) error {
	if itemID == "" {
		return domain.ErrInvalidRequest
	}
	return s.repo.Remove(ctx, userID, itemID)
}
