package repositories

import (
	"context"
	"testing"

	"github.com/fariowear/go-storefront/app/catalogdata"
	"github.com/fariowear/go-storefront/app/models"
	"github.com/fariowear/go-storefront/app/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogRepo(t *testing.T) ProductRepositoryImpl {
	t.Helper()
	products, err := catalogdata.Load()
	require.NoError(t, err)
	return NewMemoryProductRepository(products)
}

func TestCatalogLoads(t *testing.T) {
	products, err := catalogdata.Load()
	require.NoError(t, err)
	require.NotEmpty(t, products)

	seen := make(map[int]bool)
	for _, p := range products {
		assert.False(t, seen[p.ID], "duplicate id %d", p.ID)
		seen[p.ID] = true
		assert.NotEmpty(t, p.Slug)
		assert.False(t, p.Price.IsNegative())
		assert.NotEmpty(t, p.Colors)
	}
}

func TestGetBySlug(t *testing.T) {
	repo := newCatalogRepo(t)

	product, err := repo.GetBySlug(context.Background(), "fario-velcro-school-shoe-s")
	require.NoError(t, err)
	assert.Equal(t, 1, product.ID)
	assert.Equal(t, models.CategoryShoes, product.Category)

	_, err = repo.GetBySlug(context.Background(), "does-not-exist")
	assert.Error(t, err)
}

func TestGetByID(t *testing.T) {
	repo := newCatalogRepo(t)

	product, err := repo.GetByID(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, "Premium Cotton Socks", product.Name)

	_, err = repo.GetByID(context.Background(), 6)
	assert.Error(t, err)
}

func TestQueryPagination(t *testing.T) {
	repo := newCatalogRepo(t)
	ctx := context.Background()

	firstPage, total, err := repo.Query(ctx, services.FilterCriteria{}, 9, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(12), total)
	assert.Len(t, firstPage, 9)

	secondPage, total, err := repo.Query(ctx, services.FilterCriteria{}, 9, 9)
	require.NoError(t, err)
	assert.Equal(t, int64(12), total)
	assert.Len(t, secondPage, 3)

	past, total, err := repo.Query(ctx, services.FilterCriteria{}, 9, 100)
	require.NoError(t, err)
	assert.Equal(t, int64(12), total)
	assert.Empty(t, past)
}

func TestQueryByCriteria(t *testing.T) {
	repo := newCatalogRepo(t)
	ctx := context.Background()

	socks, total, err := repo.Query(ctx, services.FilterCriteria{Category: models.CategorySocks}, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(len(socks)), total)
	for _, p := range socks {
		assert.Equal(t, models.CategorySocks, p.Category)
	}

	sale, _, err := repo.Query(ctx, services.FilterCriteria{OnSale: true}, 0, 0)
	require.NoError(t, err)
	require.NotEmpty(t, sale)
	for _, p := range sale {
		assert.True(t, p.IsSale)
	}

	cheap, _, err := repo.Query(ctx, services.FilterCriteria{
		MinPrice: decimal.NewFromInt(500),
		MaxPrice: decimal.NewFromInt(1000),
	}, 0, 0)
	require.NoError(t, err)
	for _, p := range cheap {
		assert.True(t, p.Price.Cmp(decimal.NewFromInt(500)) >= 0)
		assert.True(t, p.Price.Cmp(decimal.NewFromInt(1000)) <= 0)
	}
}

func TestGetFeaturedProducts(t *testing.T) {
	repo := newCatalogRepo(t)

	featured, err := repo.GetFeaturedProducts(context.Background(), 8)
	require.NoError(t, err)
	require.Len(t, featured, 8)
	assert.True(t, featured[0].IsNew, "new products lead the featured list")
}

func TestGetProductsReturnsCopy(t *testing.T) {
	repo := newCatalogRepo(t)
	ctx := context.Background()

	first, err := repo.GetProducts(ctx)
	require.NoError(t, err)
	first[0].Name = "mutated"

	second, err := repo.GetProducts(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", second[0].Name)
}
