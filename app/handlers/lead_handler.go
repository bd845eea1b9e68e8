package handlers

import (
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/fariowear/go-storefront/app/models"
	"github.com/fariowear/go-storefront/app/services"
	"github.com/go-playground/validator/v10"
)

type LeadHandler struct {
	submitter services.LeadSubmitter
	validator *validator.Validate
}

func NewLeadHandler(submitter services.LeadSubmitter, validate *validator.Validate) *LeadHandler {
	return &LeadHandler{
		submitter: submitter,
		validator: validate,
	}
}

// Contact handles the landing-page contact form.
func (h *LeadHandler) Contact(w http.ResponseWriter, r *http.Request) {
	h.handleSubmission(w, r, "contact", "/")
}

// Waitlist handles the collection-teaser waitlist form.
func (h *LeadHandler) Waitlist(w http.ResponseWriter, r *http.Request) {
	h.handleSubmission(w, r, "waitlist", "/products")
}

func (h *LeadHandler) handleSubmission(w http.ResponseWriter, r *http.Request, source, backTo string) {
	if err := r.ParseForm(); err != nil {
		log.Printf("lead handler: error parsing %s form: %v", source, err)
		redirectWithMessage(w, r, backTo, "error", "Something went wrong, please try again.")
		return
	}

	form := models.LeadForm{
		Name:   strings.TrimSpace(r.FormValue("name")),
		Email:  strings.TrimSpace(r.FormValue("email")),
		Phone:  strings.TrimSpace(r.FormValue("phone")),
		Source: source,
	}

	if err := h.validator.Struct(&form); err != nil {
		redirectWithMessage(w, r, backTo, "error", "Please fill in a valid name, email and phone number.")
		return
	}

	// Best-effort path: Submit always reports success, failures are kept
	// in the local fallback store.
	h.submitter.Submit(r.Context(), form)

	redirectWithMessage(w, r, backTo, "success", "Thank you! We will be in touch soon.")
}

func redirectWithMessage(w http.ResponseWriter, r *http.Request, backTo, status, message string) {
	target := fmt.Sprintf("%s?status=%s&message=%s", backTo, status, url.QueryEscape(message))
	http.Redirect(w, r, target, http.StatusSeeOther)
}
