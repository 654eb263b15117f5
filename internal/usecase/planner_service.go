package usecase

import (
	"context"
	"log"
	"math"

	"github.com/cartscout/backend/internal/domain"
)

// PlannerConfig holds configuration for the planner service
type PlannerConfig struct {
	MaxStoreLimit      int // hard cap on stores per plan, default 5
	EnableDebugLogging bool
}

// PlannerService computes the cheapest multi-store shopping plan for a
// grocery list against a price catalog. Each call is stateless and
// deterministic for fixed inputs.
type PlannerService struct {
	maxStoreLimit      int
	enableDebugLogging bool
}

// NewPlannerService creates a new planner service with the given configuration
func NewPlannerService(config PlannerConfig) *PlannerService {
	limit := config.MaxStoreLimit
	if limit <= 0 {
		limit = 5
	}

	return &PlannerService{
		maxStoreLimit:      limit,
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// ComputeBestPlan returns the cheapest feasible assignment of every grocery
// item to one retailer, drawn from a single subset of at most maxStores
// retailers. A nil plan means no subset can source every item; that is a
// normal result, not an error. The only error returned is context
// cancellation, checked between subset evaluations.
//
// maxStores is clamped to [1, MaxStoreLimit] and then to the number of
// distinct retailers. All C(n, k) subsets of exactly k retailers are
// evaluated; the exhaustive search is the point, plan totals are exact
// minimums, not heuristics.
func (s *PlannerService) ComputeBestPlan(
	ctx context.Context,
	items []domain.GroceryItem,
	prices []domain.PriceRecord,
	maxStores int,
) (*domain.ShoppingPlan, error) {
	normalizedItems := NormalizeItems(items)
	normalizedPrices := NormalizePrices(prices)

	index := BuildPriceIndex(normalizedPrices)
	retailers := DistinctRetailers(normalizedPrices)

	if len(normalizedItems) == 0 || len(retailers) == 0 {
		return nil, nil
	}

	storeCount := clamp(maxStores, 1, s.maxStoreLimit)
	k := storeCount
	if len(retailers) < k {
		k = len(retailers)
	}

	combos := combinations(retailers, k)

	if s.enableDebugLogging {
		log.Printf("[PLAN] %d items, %d retailers, k=%d, %d subsets to evaluate",
			len(normalizedItems), len(retailers), k, len(combos))
	}

	var best *domain.ShoppingPlan
	bestTotal := math.Inf(1)

	for _, stores := range combos {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		result := evaluateSubset(stores, index, normalizedItems)

		if s.enableDebugLogging {
			log.Printf("[PLAN] subset %v: total=%.2f missing=%d", stores, result.total, len(result.missing))
		}

		if len(result.missing) > 0 {
			continue
		}

		// Strictly lower total wins; ties keep the first subset in
		// enumeration order.
		if best == nil || result.total < bestTotal {
			bestTotal = result.total
			best = &domain.ShoppingPlan{
				StoreSet:  stores,
				TotalCost: result.total,
				LineItems: result.lineItems,
			}
		}
	}

	if s.enableDebugLogging {
		if best != nil {
			log.Printf("[PLAN] best plan: stores=%v total=%.2f", best.StoreSet, best.TotalCost)
		} else {
			log.Printf("[PLAN] no feasible plan")
		}
	}

	return best, nil
}

// subsetResult is the immutable outcome of evaluating one retailer subset
type subsetResult struct {
	total     float64
	lineItems []domain.PlanLineItem
	missing   []string
}

// evaluateSubset prices every item against the given stores. An item with no
// price at any store in the subset lands in missing; evaluation still runs
// over all items so the missing list is complete. Within a subset, the first
// store in iteration order keeps an item unless a strictly lower price
// displaces it.
func evaluateSubset(stores []string, index PriceIndex, items []NormalizedItem) subsetResult {
	var result subsetResult

	for _, item := range items {
		productPrices, ok := index[item.NormalizedName]
		if !ok {
			result.missing = append(result.missing, item.NormalizedName)
			continue
		}

		bestPrice := math.Inf(1)
		bestRetailer := ""
		for _, store := range stores {
			if price, ok := productPrices[store]; ok && price < bestPrice {
				bestPrice = price
				bestRetailer = store
			}
		}

		if math.IsInf(bestPrice, 1) {
			result.missing = append(result.missing, item.NormalizedName)
			continue
		}

		result.total += bestPrice * float64(item.Quantity)
		result.lineItems = append(result.lineItems, domain.PlanLineItem{
			Name:     item.NormalizedName,
			Price:    bestPrice,
			Retailer: bestRetailer,
			Quantity: item.Quantity,
		})
	}

	return result
}

// combinations enumerates every subset of exactly k retailers, in the
// lexicographic index order induced by the input slice (i1 < i2 < ... < ik,
// outer index advancing slowest).
func combinations(retailers []string, k int) [][]string {
	if k < 1 || k > len(retailers) {
		return nil
	}

	var combos [][]string
	current := make([]string, 0, k)

	var build func(start int)
	build = func(start int) {
		if len(current) == k {
			combo := make([]string, k)
			copy(combo, current)
			combos = append(combos, combo)
			return
		}
		for i := start; i < len(retailers); i++ {
			current = append(current, retailers[i])
			build(i + 1)
			current = current[:len(current)-1]
		}
	}
	build(0)

	return combos
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
