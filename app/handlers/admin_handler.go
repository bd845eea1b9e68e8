package handlers

import (
	"net/http"

	"github.com/fariowear/go-storefront/app/helpers"
	"github.com/fariowear/go-storefront/app/repositories"
	"github.com/unrolled/render"
)

// AdminHandler exposes the locally persisted fallback leads, the ones
// that never reached the spreadsheet endpoint.
type AdminHandler struct {
	render   *render.Render
	leadRepo repositories.LeadRepositoryImpl
}

func NewAdminHandler(r *render.Render, leadRepo repositories.LeadRepositoryImpl) *AdminHandler {
	return &AdminHandler{render: r, leadRepo: leadRepo}
}

func (h *AdminHandler) Leads(w http.ResponseWriter, r *http.Request) {
	leads, err := h.leadRepo.GetAll(r.Context())
	if err != nil {
		http.Error(w, "Failed to load stored leads", http.StatusInternalServerError)
		return
	}

	data := helpers.GetBaseData(r, map[string]interface{}{
		"title": "Stored Leads",
		"leads": leads,
	})

	_ = h.render.HTML(w, http.StatusOK, "admin/leads", data)
}
