package renderer

import (
	"html/template"

	"github.com/fariowear/go-storefront/app/utils/calc"
	"github.com/fariowear/go-storefront/app/utils/format"
	"github.com/shopspring/decimal"
	"github.com/unrolled/render"
)

func New() *render.Render {
	return render.New(render.Options{
		Layout:     "layout",
		Extensions: []string{".html"},
		Funcs: []template.FuncMap{
			{
				"price":    format.INR,
				"discount": calc.DiscountPercent,
				"hasDiscount": func(price, originalPrice decimal.Decimal) bool {
					return calc.DiscountPercent(price, originalPrice) > 0
				},
				"until": func(count int) []int {
					items := make([]int, count)
					for i := 0; i < count; i++ {
						items[i] = i
					}
					return items
				},
				"add": func(a, b int) int { return a + b },
				"sub": func(a, b int) int { return a - b },
				"min": func(a, b int) int {
					if a < b {
						return a
					}
					return b
				},
				"max": func(a, b int) int {
					if a > b {
						return a
					}
					return b
				},
			},
		},
	})
}
