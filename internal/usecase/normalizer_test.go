package usecase

import (
	"testing"

	"github.com/cartscout/backend/internal/domain"
)

func TestNormalizeItems(t *testing.T) {
	t.Run("lowercases and trims names", func(t *testing.T) {
		items := NormalizeItems([]domain.GroceryItem{
			{Name: "  Whole Milk  ", Quantity: 2},
			{Name: "BREAD", Quantity: 1},
		})

		if items[0].NormalizedName != "whole milk" {
			t.Errorf("NormalizedName = %q, want %q", items[0].NormalizedName, "whole milk")
		}
		if items[1].NormalizedName != "bread" {
			t.Errorf("NormalizedName = %q, want %q", items[1].NormalizedName, "bread")
		}
	})

	t.Run("passes other fields through unchanged", func(t *testing.T) {
		items := NormalizeItems([]domain.GroceryItem{
			{ID: "1", Name: " Milk ", Size: " 1 gal ", Category: domain.CategoryProduce, Quantity: 3},
		})

		got := items[0]
		if got.Name != " Milk " || got.Size != " 1 gal " || got.Quantity != 3 || got.ID != "1" {
			t.Errorf("item fields changed: %+v", got)
		}
	})

	t.Run("empty input yields empty output", func(t *testing.T) {
		if got := NormalizeItems(nil); len(got) != 0 {
			t.Errorf("NormalizeItems(nil) = %v, want empty", got)
		}
	})
}

func TestNormalizePrices(t *testing.T) {
	t.Run("lowercases product name, trims retailer preserving case", func(t *testing.T) {
		records := NormalizePrices([]domain.PriceRecord{
			{ProductName: " Whole MILK ", RetailerName: "  Trader Moe's  ", Price: 2.50},
		})

		if records[0].ProductKey != "whole milk" {
			t.Errorf("ProductKey = %q, want %q", records[0].ProductKey, "whole milk")
		}
		if records[0].Retailer != "Trader Moe's" {
			t.Errorf("Retailer = %q, want %q (case preserved)", records[0].Retailer, "Trader Moe's")
		}
	})

	t.Run("price and size pass through unchanged", func(t *testing.T) {
		records := NormalizePrices([]domain.PriceRecord{
			{ProductName: "milk", RetailerName: "Acme", Price: 2.50, Size: "1 gal"},
		})

		if records[0].Price != 2.50 || records[0].Size != "1 gal" {
			t.Errorf("record fields changed: %+v", records[0])
		}
	})

	t.Run("empty input yields empty output", func(t *testing.T) {
		if got := NormalizePrices(nil); len(got) != 0 {
			t.Errorf("NormalizePrices(nil) = %v, want empty", got)
		}
	})
}
