package usecase

import (
	"strings"

	"github.com/cartscout/backend/internal/domain"
)

// NormalizedItem is a grocery item carrying its canonical join key.
// NormalizedName is the trimmed, lowercased item name used to match
// against price records.
type NormalizedItem struct {
	domain.GroceryItem
	NormalizedName string
}

// NormalizedPriceRecord is a price record carrying its canonical join keys.
// ProductKey is trimmed and lowercased; Retailer is trimmed only, since the
// retailer name doubles as a display value and keeps its casing.
type NormalizedPriceRecord struct {
	domain.PriceRecord
	ProductKey string
	Retailer   string
}

// NormalizeItems canonicalizes item names for price matching.
// Pure and total: empty input yields empty output.
func NormalizeItems(items []domain.GroceryItem) []NormalizedItem {
	normalized := make([]NormalizedItem, len(items))
	for i, item := range items {
		normalized[i] = NormalizedItem{
			GroceryItem:    item,
			NormalizedName: strings.ToLower(strings.TrimSpace(item.Name)),
		}
	}
	return normalized
}

// NormalizePrices canonicalizes price-record join keys. Product names are
// lowercased and trimmed; retailer names are trimmed with case preserved.
func NormalizePrices(records []domain.PriceRecord) []NormalizedPriceRecord {
	normalized := make([]NormalizedPriceRecord, len(records))
	for i, record := range records {
		normalized[i] = NormalizedPriceRecord{
			PriceRecord: record,
			ProductKey:  strings.ToLower(strings.TrimSpace(record.ProductName)),
			Retailer:    strings.TrimSpace(record.RetailerName),
		}
	}
	return normalized
}
