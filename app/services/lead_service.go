package services

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fariowear/go-storefront/app/models"
	"github.com/google/uuid"
)

// LeadStore is the local fallback for submissions that never reached the
// remote endpoint.
type LeadStore interface {
	Create(ctx context.Context, lead *models.Lead) error
}

// LeadSubmitter sends a captured lead to the spreadsheet-backed endpoint.
// The path is best-effort: Submit always reports success to the caller,
// the UI never surfaces a hard failure for this flow.
type LeadSubmitter interface {
	Submit(ctx context.Context, form models.LeadForm) bool
}

type sheetsLeadSubmitter struct {
	endpoint string
	client   *http.Client
	store    LeadStore
}

func NewSheetsLeadSubmitter(endpoint string, store LeadStore) LeadSubmitter {
	return &sheetsLeadSubmitter{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 10 * time.Second},
		store:    store,
	}
}

func (s *sheetsLeadSubmitter) Submit(ctx context.Context, form models.LeadForm) bool {
	if err := s.send(ctx, form); err != nil {
		log.Printf("lead submission to sheets failed, keeping local copy: %v", err)
		s.persistFallback(ctx, form)
	}
	return true
}

// send issues the GET the Apps Script web app expects: lead fields plus a
// callback name, answered with a JSONP-wrapped JSON body.
func (s *sheetsLeadSubmitter) send(ctx context.Context, form models.LeadForm) error {
	if s.endpoint == "" {
		return fmt.Errorf("sheets web app URL not configured")
	}

	source := form.Source
	if source == "" {
		source = "unknown"
	}

	params := url.Values{}
	params.Set("name", form.Name)
	params.Set("email", form.Email)
	params.Set("phone", form.Phone)
	params.Set("source", source)
	params.Set("callback", "leadCallback")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to build sheets request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("sheets request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read sheets response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("sheets endpoint returned status %d: %s", resp.StatusCode, string(body))
	}
	if !strings.Contains(string(body), `"success":true`) {
		return fmt.Errorf("sheets endpoint rejected submission: %s", string(body))
	}
	return nil
}

func (s *sheetsLeadSubmitter) persistFallback(ctx context.Context, form models.LeadForm) {
	if s.store == nil {
		return
	}
	lead := models.Lead{
		ID:        uuid.New().String(),
		Name:      form.Name,
		Email:     form.Email,
		Phone:     form.Phone,
		Source:    form.Source,
		CreatedAt: time.Now(),
	}
	if err := s.store.Create(ctx, &lead); err != nil {
		log.Printf("failed to persist fallback lead %s: %v", lead.ID, err)
	}
}
