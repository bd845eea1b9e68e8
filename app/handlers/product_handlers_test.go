package handlers

import (
	"net/url"
	"testing"

	"github.com/fariowear/go-storefront/app/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseFilterCriteria(t *testing.T) {
	q := url.Values{}
	q.Set("q", "school shoe")
	q.Set("category", "shoes")
	q.Set("min_price", "500")
	q.Set("max_price", "1500")
	q.Add("brand", "FARIO")
	q.Add("brand", "Premium")
	q.Add("color", "Black")
	q.Add("size", "UK2")
	q.Set("on_sale", "true")
	q.Set("in_stock", "true")
	q.Set("sort", "price-low")

	criteria := parseFilterCriteria(q)

	assert.Equal(t, "school shoe", criteria.SearchTerm)
	assert.Equal(t, "shoes", criteria.Category)
	assert.True(t, criteria.MinPrice.Equal(decimal.NewFromInt(500)))
	assert.True(t, criteria.MaxPrice.Equal(decimal.NewFromInt(1500)))
	assert.Equal(t, []string{"FARIO", "Premium"}, criteria.Brands)
	assert.Equal(t, []string{"Black"}, criteria.Colors)
	assert.Equal(t, []string{"UK2"}, criteria.Sizes)
	assert.True(t, criteria.OnSale)
	assert.True(t, criteria.InStock)
	assert.Equal(t, services.SortPriceAsc, criteria.Sort)
}

func TestParseFilterCriteriaDefaults(t *testing.T) {
	criteria := parseFilterCriteria(url.Values{})

	assert.Empty(t, criteria.SearchTerm)
	assert.Empty(t, criteria.Category)
	assert.True(t, criteria.MinPrice.IsZero())
	assert.True(t, criteria.MaxPrice.IsZero(), "unset max price means no upper bound")
	assert.Empty(t, criteria.Brands)
	assert.False(t, criteria.OnSale)
}

func TestParseFilterCriteriaBadNumbersIgnored(t *testing.T) {
	q := url.Values{}
	q.Set("min_price", "cheap")
	q.Set("max_price", "1e-not-a-number")

	criteria := parseFilterCriteria(q)

	assert.True(t, criteria.MinPrice.IsZero())
	assert.True(t, criteria.MaxPrice.IsZero())
}
