package handlers

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/fariowear/go-storefront/app/helpers"
	"github.com/fariowear/go-storefront/app/models"
	"github.com/fariowear/go-storefront/app/repositories"
	"github.com/fariowear/go-storefront/app/services"
	"github.com/fariowear/go-storefront/app/utils/breadcrumb"
	"github.com/fariowear/go-storefront/app/utils/calc"
	"github.com/fariowear/go-storefront/app/utils/sessions"
	"github.com/gorilla/csrf"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/unrolled/render"
)

type ProductHandler struct {
	repo             repositories.ProductRepositoryImpl
	favorites        sessions.FavoriteStore
	render           *render.Render
	carouselInterval time.Duration
}

func NewProductHandler(p repositories.ProductRepositoryImpl, f sessions.FavoriteStore, r *render.Render, carouselInterval time.Duration) *ProductHandler {
	if carouselInterval <= 0 {
		carouselInterval = services.DefaultCarouselInterval
	}
	return &ProductHandler{repo: p, favorites: f, render: r, carouselInterval: carouselInterval}
}

// parseFilterCriteria maps the collections-page query string onto the
// catalog engine's criteria. Unparseable numbers fall back to the
// unconstrained zero value rather than erroring the page.
func parseFilterCriteria(q url.Values) services.FilterCriteria {
	criteria := services.FilterCriteria{
		SearchTerm: q.Get("q"),
		Category:   q.Get("category"),
		Brands:     q["brand"],
		Colors:     q["color"],
		Sizes:      q["size"],
		InStock:    q.Get("in_stock") == "true",
		OnSale:     q.Get("on_sale") == "true",
		Sort:       services.SortKey(q.Get("sort")),
	}
	if min, err := decimal.NewFromString(q.Get("min_price")); err == nil {
		criteria.MinPrice = min
	}
	if max, err := decimal.NewFromString(q.Get("max_price")); err == nil {
		criteria.MaxPrice = max
	}
	return criteria
}

func (h *ProductHandler) Products(w http.ResponseWriter, r *http.Request) {
	criteria := parseFilterCriteria(r.URL.Query())

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	limit := 9
	offset := (page - 1) * limit

	products, total, err := h.repo.Query(r.Context(), criteria, limit, offset)
	if err != nil {
		http.Error(w, "Failed to load products", http.StatusInternalServerError)
		return
	}

	breadcrumbs := []breadcrumb.Breadcrumb{
		{Name: "Home", URL: "/"},
		{Name: "Collections", URL: "/products"},
	}

	favorites := make(map[int]bool)
	for _, id := range h.favorites.Favorites(r) {
		favorites[id] = true
	}

	data := helpers.GetBaseData(r, map[string]interface{}{
		"title":       "Our Collections",
		"products":    products,
		"categories":  models.CategoryOptions(),
		"criteria":    criteria,
		"favorites":   favorites,
		"total":       total,
		"current":     page,
		"totalPages":  int((total + int64(limit) - 1) / int64(limit)),
		"Breadcrumbs": breadcrumbs,
		"csrfField":   csrf.TemplateField(r),
	})

	_ = h.render.HTML(w, http.StatusOK, "products", data)
}

func (h *ProductHandler) ProductDetail(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	productSlug := vars["slug"]

	if productSlug == "" {
		http.NotFound(w, r)
		return
	}

	product, err := h.repo.GetBySlug(r.Context(), productSlug)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	media := services.BuildMediaList(product)

	breadcrumbs := []breadcrumb.Breadcrumb{
		{Name: "Home", URL: "/"},
		{Name: "Collections", URL: "/products"},
		{Name: product.Name, URL: "/products/" + product.Slug},
	}

	data := helpers.GetBaseData(r, map[string]interface{}{
		"title":           product.Name,
		"product":         *product,
		"media":           media,
		"discountPercent": calc.DiscountPercent(product.Price, product.OriginalPrice),
		"isFavorite":      h.favorites.IsFavorite(r, product.ID),
		"Breadcrumbs":     breadcrumbs,
		"csrfField":       csrf.TemplateField(r),
	})

	_ = h.render.HTML(w, http.StatusOK, "product", data)
}

// Carousel streams the product card carousel as server-sent events. An
// open connection is the activation signal: the active media index is
// emitted on every tick, and closing the connection stops the timer.
func (h *ProductHandler) Carousel(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	product, err := h.repo.GetBySlug(r.Context(), vars["slug"])
	if err != nil {
		http.NotFound(w, r)
		return
	}

	media := services.BuildMediaList(product)
	if len(media) == 0 {
		http.Error(w, "product has no media", http.StatusUnprocessableEntity)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ticks := make(chan int, 1)
	carousel := services.NewCarousel(media, h.carouselInterval)
	carousel.Activate(func(index int) {
		select {
		case ticks <- index:
		default:
		}
	})
	defer carousel.Deactivate()

	fmt.Fprintf(w, "data: %d\n\n", carousel.Index())
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case index := <-ticks:
			fmt.Fprintf(w, "data: %d\n\n", index)
			flusher.Flush()
		}
	}
}

func (h *ProductHandler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.NotFound(w, r)
		return
	}
	if _, err := h.repo.GetByID(r.Context(), id); err != nil {
		http.NotFound(w, r)
		return
	}

	if _, err := h.favorites.Toggle(w, r, id); err != nil {
		http.Error(w, "Failed to update favorites", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, refererPath(r, "/products"), http.StatusSeeOther)
}

// ClearFavorites empties the visitor's favorites set.
func (h *ProductHandler) ClearFavorites(w http.ResponseWriter, r *http.Request) {
	if err := h.favorites.Clear(w, r); err != nil {
		http.Error(w, "Failed to clear favorites", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, refererPath(r, "/products"), http.StatusSeeOther)
}

// refererPath returns the Referer reduced to a same-origin path, so the
// redirect can never leave the site. Off-site, malformed, or missing
// referers fall back.
func refererPath(r *http.Request, fallback string) string {
	ref, err := url.Parse(r.Referer())
	if err != nil || (ref.Host != "" && ref.Host != r.Host) {
		return fallback
	}
	if !strings.HasPrefix(ref.Path, "/") || strings.HasPrefix(ref.Path, "//") {
		return fallback
	}
	target := ref.Path
	if ref.RawQuery != "" {
		target += "?" + ref.RawQuery
	}
	return target
}
