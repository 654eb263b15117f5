package domain

// Category classifies a grocery item into one of the fixed list sections
type Category string

const (
	CategoryProduce   Category = "produce"
	CategoryProtein   Category = "protein"
	CategorySnacks    Category = "snacks"
	CategoryPantry    Category = "pantry"
	CategoryHousehold Category = "household"
)

// Categories lists every valid category, in display order
var Categories = []Category{
	CategoryProduce,
	CategoryProtein,
	CategorySnacks,
	CategoryPantry,
	CategoryHousehold,
}

// Valid reports whether the category is one of the known values
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// GroceryItem represents a single requested purchase on a user's list
type GroceryItem struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Size     string   `json:"size,omitempty"`
	Category Category `json:"category"`
	Quantity int      `json:"quantity"` // always >= 1, enforced at creation
}

// PriceRecord represents an observed price for a product at a retailer
type PriceRecord struct {
	ID           string  `json:"id"`
	ProductName  string  `json:"productName"`
	RetailerName string  `json:"retailerName"`
	Price        float64 `json:"price"`
	Size         string  `json:"size,omitempty"` // informational, not used in matching
}
