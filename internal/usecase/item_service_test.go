package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/cartscout/backend/internal/domain"
)

// MockItemRepository is an in-memory implementation of domain.ItemRepository
type MockItemRepository struct {
	items    map[string][]domain.GroceryItem
	addError error
	nextID   int
}

func NewMockItemRepository() *MockItemRepository {
	return &MockItemRepository{items: make(map[string][]domain.GroceryItem)}
}

func (m *MockItemRepository) ListByUser(ctx context.Context, userID string) ([]domain.GroceryItem, error) {
	return append([]domain.GroceryItem(nil), m.items[userID]...), nil
}

func (m *MockItemRepository) Add(ctx context.Context, userID string, item *domain.GroceryItem) error {
	if m.addError != nil {
		return m.addError
	}
	m.nextID++
	item.ID = fmt.Sprintf("item-%d", m.nextID)
	m.items[userID] = append(m.items[userID], *item)
	return nil
}

func (m *MockItemRepository) Remove(ctx context.Context, userID, itemID string) error {
	for i, item := range m.items[userID] {
		if item.ID == itemID {
			m.items[userID] = append(m.items[userID][:i], m.items[userID][i+1:]...)
			return nil
		}
	}
	return domain.ErrItemNotFound
}

func TestItemServiceAdd(t *testing.T) {
	ctx := context.Background()

	t.Run("stores a valid item with trimmed fields", func(t *testing.T) {
		svc := NewItemService(NewMockItemRepository())

		item, err := svc.Add(ctx, "user-1", AddItemInput{
			Name:     "  Whole Milk ",
			Size:     " 1 gal ",
			Category: domain.CategoryProduce,
			Quantity: 2,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.Name != "Whole Milk" {
			t.Errorf("Name = %q, want trimmed %q", item.Name, "Whole Milk")
		}
		if item.Size != "1 gal" {
			t.Errorf("Size = %q, want trimmed %q", item.Size, "1 gal")
		}
		if item.ID == "" {
			t.Error("expected repository to assign an ID")
		}
	})

	t.Run("rejects blank name", func(t *testing.T) {
		svc := NewItemService(NewMockItemRepository())

		_, err := svc.Add(ctx, "user-1", AddItemInput{
			Name: "   ", Category: domain.CategoryPantry, Quantity: 1,
		})
		if !errors.Is(err, domain.ErrInvalidItem) {
			t.Errorf("error = %v, want ErrInvalidItem", err)
		}
	})

	t.Run("rejects quantity below one", func(t *testing.T) {
		svc := NewItemService(NewMockItemRepository())

		_, err := svc.Add(ctx, "user-1", AddItemInput{
			Name: "Milk", Category: domain.CategoryPantry, Quantity: 0,
		})
		if !errors.Is(err, domain.ErrInvalidItem) {
			t.Errorf("error = %v, want ErrInvalidItem", err)
		}
	})

	t.Run("rejects unknown category", func(t *testing.T) {
		svc := NewItemService(NewMockItemRepository())

		_, err := svc.Add(ctx, "user-1", AddItemInput{
			Name: "Milk", Category: "frozen", Quantity: 1,
		})
		if !errors.Is(err, domain.ErrInvalidCategory) {
			t.Errorf("error = %v, want ErrInvalidCategory", err)
		}
	})
}

func TestItemServiceList(t *testing.T) {
	ctx := context.Background()

	t.Run("returns items sorted by name ascending", func(t *testing.T) {
		repo := NewMockItemRepository()
		svc := NewItemService(repo)

		for _, name := range []string{"Zucchini", "Apples", "Milk"} {
			if _, err := svc.Add(ctx, "user-1", AddItemInput{
				Name: name, Category: domain.CategoryProduce, Quantity: 1,
			}); err != nil {
				t.Fatalf("Add(%q) error: %v", name, err)
			}
		}

		items, err := svc.List(ctx, "user-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got := []string{items[0].Name, items[1].Name, items[2].Name}
		want := []string{"Apples", "Milk", "Zucchini"}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("items[%d].Name = %q, want %q", i, got[i], want[i])
			}
		}
	})

	t.Run("lists are scoped per user", func(t *testing.T) {
		repo := NewMockItemRepository()
		svc := NewItemService(repo)

		if _, err := svc.Add(ctx, "user-1", AddItemInput{Name: "Milk", Category: domain.CategoryProduce, Quantity: 1}); err != nil {
			t.Fatalf("Add error: %v", err)
		}

		items, err := svc.List(ctx, domain.GuestUserID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(items) != 0 {
			t.Errorf("guest list = %v, want empty", items)
		}
	})
}

func TestItemServiceRemove(t *testing.T) {
	ctx := context.Background()

	t.Run("removes an existing item", func(t *testing.T) {
		repo := NewMockItemRepository()
		svc := NewItemService(repo)

		item, err := svc.Add(ctx, "user-1", AddItemInput{Name: "Milk", Category: domain.CategoryProduce, Quantity: 1})
		if err != nil {
			t.Fatalf("Add error: %v", err)
		}

		if err := svc.Remove(ctx, "user-1", item.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		items, _ := svc.List(ctx, "user-1")
		if len(items) != 0 {
			t.Errorf("list after remove = %v, want empty", items)
		}
	})

	t.Run("rejects empty item ID", func(t *testing.T) {
		svc := NewItemService(NewMockItemRepository())

		if err := svc.Remove(ctx, "user-1", ""); !errors.Is(err, domain.ErrInvalidRequest) {
			t.Errorf("error = %v, want ErrInvalidRequest", err)
		}
	})

	t.Run("propagates not-found from the repository", func(t *testing.T) {
		svc := NewItemService(NewMockItemRepository())

		if err := svc.Remove(ctx, "user-1", "missing"); !errors.Is(err, domain.ErrItemNotFound) {
			t.Errorf("error = %v, want ErrItemNotFound", err)
		}
	})
}
