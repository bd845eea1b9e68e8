package handlers

import (
	"net/http"

	"github.com/fariowear/go-storefront/app/helpers"
	"github.com/fariowear/go-storefront/app/utils/breadcrumb"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
)

type LegalHandler struct {
	render *render.Render
}

func NewLegalHandler(r *render.Render) *LegalHandler {
	return &LegalHandler{render: r}
}

type legalPage struct {
	Title    string
	Template string
}

var legalPages = map[string]legalPage{
	"privacy":       {Title: "Privacy Policy", Template: "legal/privacy"},
	"terms":         {Title: "Terms of Service", Template: "legal/terms"},
	"cookies":       {Title: "Cookie Policy", Template: "legal/cookies"},
	"accessibility": {Title: "Accessibility", Template: "legal/accessibility"},
}

func (h *LegalHandler) Show(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	page, ok := legalPages[vars["page"]]
	if !ok {
		http.NotFound(w, r)
		return
	}

	breadcrumbs := []breadcrumb.Breadcrumb{
		{Name: "Home", URL: "/"},
		{Name: page.Title, URL: "/legal/" + vars["page"]},
	}

	data := helpers.GetBaseData(r, map[string]interface{}{
		"title":       page.Title,
		"Breadcrumbs": breadcrumbs,
	})

	_ = h.render.HTML(w, http.StatusOK, page.Template, data)
}
