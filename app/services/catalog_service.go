package services

import (
	"sort"
	"strings"

	"github.com/fariowear/go-storefront/app/models"
	"github.com/shopspring/decimal"
)

type SortKey string

const (
	SortNameAsc   SortKey = "name"
	SortPriceAsc  SortKey = "price-low"
	SortPriceDesc SortKey = "price-high"
	SortRating    SortKey = "rating"
	SortNewest    SortKey = "newest"
)

// FilterCriteria is the complete set of user-selected search/filter/sort
// parameters for one catalog query. It is owned by the caller and rebuilt
// per interaction; Query never holds on to it.
type FilterCriteria struct {
	SearchTerm string
	Category   string
	MinPrice   decimal.Decimal
	// MaxPrice of zero or less means no upper bound. A positive MaxPrice
	// below MinPrice is evaluated as given and matches nothing; callers
	// clamp if they want different behavior.
	MaxPrice decimal.Decimal
	Brands   []string
	Colors   []string
	Sizes    []string
	// InStock is carried for the UI but never filters: the catalog has no
	// inventory system, every product is treated as in stock.
	InStock bool
	OnSale  bool
	Sort    SortKey
}

// Query returns the ordered subset of products matching criteria. It is
// pure: the input slice and its elements are never mutated, and identical
// inputs always produce an equal result.
func Query(products []models.Product, criteria FilterCriteria) []models.Product {
	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if matchesCriteria(p, criteria) {
			filtered = append(filtered, p)
		}
	}
	sortProducts(filtered, criteria.Sort)
	return filtered
}

func matchesCriteria(p models.Product, c FilterCriteria) bool {
	return matchesSearch(p, c.SearchTerm) &&
		matchesCategory(p, c.Category) &&
		matchesPrice(p, c.MinPrice, c.MaxPrice) &&
		matchesBrands(p, c.Brands) &&
		containsAny(p.Colors, c.Colors) &&
		containsAny(p.Sizes, c.Sizes) &&
		matchesSale(p, c.OnSale)
}

func matchesSearch(p models.Product, term string) bool {
	if term == "" {
		return true
	}
	needle := strings.ToLower(term)
	return strings.Contains(strings.ToLower(p.Name), needle) ||
		strings.Contains(strings.ToLower(p.Description), needle)
}

func matchesCategory(p models.Product, category string) bool {
	return category == "" || category == models.CategoryAll || p.Category == category
}

func matchesPrice(p models.Product, min, max decimal.Decimal) bool {
	if p.Price.Cmp(min) < 0 {
		return false
	}
	if max.IsPositive() && p.Price.Cmp(max) > 0 {
		return false
	}
	return true
}

// A product matches the brand filter when any selected brand name appears
// as a case-insensitive substring of the product name.
func matchesBrands(p models.Product, brands []string) bool {
	if len(brands) == 0 {
		return true
	}
	name := strings.ToLower(p.Name)
	for _, brand := range brands {
		if strings.Contains(name, strings.ToLower(brand)) {
			return true
		}
	}
	return false
}

func containsAny(have, want []string) bool {
	if len(want) == 0 {
		return true
	}
	for _, w := range want {
		for _, h := range have {
			if h == w {
				return true
			}
		}
	}
	return false
}

func matchesSale(p models.Product, onSale bool) bool {
	return !onSale || p.IsSale
}

// sortProducts orders the slice in place. The sort is stable so that
// newest-first, which only partitions new vs. not-new, keeps the input
// order within each partition.
func sortProducts(products []models.Product, key SortKey) {
	switch key {
	case SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price.Cmp(products[j].Price) < 0
		})
	case SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price.Cmp(products[j].Price) > 0
		})
	case SortRating:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating > products[j].Rating
		})
	case SortNewest:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].IsNew && !products[j].IsNew
		})
	default:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Name < products[j].Name
		})
	}
}
