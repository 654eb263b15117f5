package domain

// PlanLineItem records which retailer a single grocery item should be bought
// from, at what unit price. Name is the normalized (lowercased, trimmed)
// item name.
type PlanLineItem struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Retailer string  `json:"retailer"`
	Quantity int     `json:"quantity"`
}

// ShoppingPlan is the result of a best-plan computation: the chosen retailer
// subset, the total spend, and the per-item breakdown. Plans are computed
// fresh per request and never persisted.
type ShoppingPlan struct {
	StoreSet  []string       `json:"storeSet"`
	TotalCost float64        `json:"totalCost"`
	LineItems []PlanLineItem `json:"lineItems"`
}
