package repositories

import (
	"context"
	"fmt"

	"github.com/fariowear/go-storefront/app/models"
	"github.com/fariowear/go-storefront/app/services"
)

type ProductRepositoryImpl interface {
	GetProducts(ctx context.Context) ([]models.Product, error)
	GetBySlug(ctx context.Context, slug string) (*models.Product, error)
	GetByID(ctx context.Context, id int) (*models.Product, error)
	GetFeaturedProducts(ctx context.Context, limit int) ([]models.Product, error)
	Query(ctx context.Context, criteria services.FilterCriteria, limit, offset int) ([]models.Product, int64, error)
}

// memoryProductRepository serves the embedded catalog. The backing slice is
// shared read-only reference data; every method hands out copies.
type memoryProductRepository struct {
	products []models.Product
	bySlug   map[string]int
	byID     map[int]int
}

func NewMemoryProductRepository(products []models.Product) ProductRepositoryImpl {
	bySlug := make(map[string]int, len(products))
	byID := make(map[int]int, len(products))
	for i, p := range products {
		bySlug[p.Slug] = i
		byID[p.ID] = i
	}
	return &memoryProductRepository{products: products, bySlug: bySlug, byID: byID}
}

func (m *memoryProductRepository) GetProducts(ctx context.Context) ([]models.Product, error) {
	out := make([]models.Product, len(m.products))
	copy(out, m.products)
	return out, nil
}

func (m *memoryProductRepository) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	i, ok := m.bySlug[slug]
	if !ok {
		return nil, fmt.Errorf("product %q not found", slug)
	}
	product := m.products[i]
	return &product, nil
}

func (m *memoryProductRepository) GetByID(ctx context.Context, id int) (*models.Product, error) {
	i, ok := m.byID[id]
	if !ok {
		return nil, fmt.Errorf("product %d not found", id)
	}
	product := m.products[i]
	return &product, nil
}

func (m *memoryProductRepository) GetFeaturedProducts(ctx context.Context, limit int) ([]models.Product, error) {
	featured := services.Query(m.products, services.FilterCriteria{Sort: services.SortNewest})
	if limit > 0 && len(featured) > limit {
		featured = featured[:limit]
	}
	return featured, nil
}

func (m *memoryProductRepository) Query(ctx context.Context, criteria services.FilterCriteria, limit, offset int) ([]models.Product, int64, error) {
	result := services.Query(m.products, criteria)
	total := int64(len(result))

	if offset > len(result) {
		offset = len(result)
	}
	result = result[offset:]
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, total, nil
}
