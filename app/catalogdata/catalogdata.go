// Package catalogdata holds the static product catalog embedded at build
// time. The catalog is validated once at load; a bad fixture fails startup
// instead of surfacing mid-request.
package catalogdata

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/fariowear/go-storefront/app/models"
	"github.com/go-playground/validator/v10"
	"github.com/gosimple/slug"
)

//go:embed products.json
var productsJSON []byte

func Load() ([]models.Product, error) {
	var products []models.Product
	if err := json.Unmarshal(productsJSON, &products); err != nil {
		return nil, fmt.Errorf("failed to parse embedded catalog: %w", err)
	}

	validate := validator.New()
	seenIDs := make(map[int]bool, len(products))
	seenSlugs := make(map[string]bool, len(products))

	for i := range products {
		p := &products[i]

		if err := validate.Struct(p); err != nil {
			return nil, fmt.Errorf("catalog product %d failed validation: %w", p.ID, err)
		}
		if p.Price.IsNegative() {
			return nil, fmt.Errorf("catalog product %d has negative price %s", p.ID, p.Price)
		}
		if seenIDs[p.ID] {
			return nil, fmt.Errorf("catalog contains duplicate product id %d", p.ID)
		}
		seenIDs[p.ID] = true

		p.Slug = slug.Make(p.Name)
		if seenSlugs[p.Slug] {
			return nil, fmt.Errorf("catalog contains duplicate slug %q", p.Slug)
		}
		seenSlugs[p.Slug] = true
	}

	return products, nil
}
