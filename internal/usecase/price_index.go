package usecase

import "sort"

// PriceIndex maps a normalized product name to the price each retailer
// offers for it.
type PriceIndex map[string]map[string]float64

// BuildPriceIndex groups normalized price records by product, then by
// retailer. Duplicate (product, retailer) pairs resolve last-write-wins in
// input order; callers that need a different duplicate policy must dedupe
// before indexing.
func BuildPriceIndex(records []NormalizedPriceRecord) PriceIndex {
	index := make(PriceIndex)
	for _, record := range records {
		retailers, ok := index[record.ProductKey]
		if !ok {
			retailers = make(map[string]float64)
			index[record.ProductKey] = retailers
		}
		retailers[record.Retailer] = record.Price
	}
	return index
}

// DistinctRetailers returns the unique retailer names across all records,
// sorted ascending. The sort order fixes the subset enumeration order, which
// is what makes equal-cost plan ties deterministic.
func DistinctRetailers(records []NormalizedPriceRecord) []string {
	seen := make(map[string]bool)
	var retailers []string
	for _, record := range records {
		if !seen[record.Retailer] {
			seen[record.Retailer] = true
			retailers = append(retailers, record.Retailer)
		}
	}
	sort.Strings(retailers)
	return retailers
}
