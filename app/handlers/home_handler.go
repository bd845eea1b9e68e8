package handlers

import (
	"net/http"

	"github.com/fariowear/go-storefront/app/helpers"
	"github.com/fariowear/go-storefront/app/repositories"
	"github.com/gorilla/csrf"
	"github.com/unrolled/render"
)

type HomeHandler struct {
	render      *render.Render
	productRepo repositories.ProductRepositoryImpl
}

func NewHomeHandler(r *render.Render, p repositories.ProductRepositoryImpl) *HomeHandler {
	return &HomeHandler{
		render:      r,
		productRepo: p,
	}
}

type Testimonial struct {
	Name   string
	Role   string
	Quote  string
	Rating int
}

func testimonials() []Testimonial {
	return []Testimonial{
		{
			Name:   "Priya Sharma",
			Role:   "Parent",
			Quote:  "The velcro school shoes are a lifesaver on busy mornings. My son puts them on himself and they have survived a full term of playground abuse.",
			Rating: 5,
		},
		{
			Name:   "Anil Mehta",
			Role:   "Parent",
			Quote:  "Great grip, easy to clean, and the sizing guide was spot on. Ordering the next size up next year without hesitation.",
			Rating: 5,
		},
		{
			Name:   "Kavitha R",
			Role:   "School Administrator",
			Quote:  "We recommend FARIO to parents at our school. The shoes hold up and the kids find them genuinely comfortable.",
			Rating: 4,
		},
	}
}

func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	featured, err := h.productRepo.GetFeaturedProducts(r.Context(), 8)
	if err != nil {
		http.Error(w, "Failed to load featured products", http.StatusInternalServerError)
		return
	}

	data := helpers.GetBaseData(r, map[string]interface{}{
		"title":        "FARIO — Step Into Comfort",
		"featured":     featured,
		"testimonials": testimonials(),
		"csrfField":    csrf.TemplateField(r),
	})

	_ = h.render.HTML(w, http.StatusOK, "home", data)
}
