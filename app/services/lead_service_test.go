package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fariowear/go-storefront/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLeadStore struct {
	leads []models.Lead
}

func (s *stubLeadStore) Create(ctx context.Context, lead *models.Lead) error {
	s.leads = append(s.leads, *lead)
	return nil
}

func leadFixture() models.LeadForm {
	return models.LeadForm{
		Name:   "Priya Sharma",
		Email:  "priya@example.com",
		Phone:  "9876543210",
		Source: "contact",
	}
}

func TestSubmitSuccessSkipsFallback(t *testing.T) {
	var gotQuery map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"name":   r.URL.Query().Get("name"),
			"email":  r.URL.Query().Get("email"),
			"source": r.URL.Query().Get("source"),
		}
		w.Write([]byte(`leadCallback({"success":true})`))
	}))
	defer server.Close()

	store := &stubLeadStore{}
	submitter := NewSheetsLeadSubmitter(server.URL, store)

	ok := submitter.Submit(context.Background(), leadFixture())

	assert.True(t, ok)
	assert.Empty(t, store.leads)
	require.NotNil(t, gotQuery)
	assert.Equal(t, "Priya Sharma", gotQuery["name"])
	assert.Equal(t, "priya@example.com", gotQuery["email"])
	assert.Equal(t, "contact", gotQuery["source"])
}

func TestSubmitServerErrorStillSucceeds(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	store := &stubLeadStore{}
	submitter := NewSheetsLeadSubmitter(server.URL, store)

	ok := submitter.Submit(context.Background(), leadFixture())

	assert.True(t, ok)
	require.Len(t, store.leads, 1)
	assert.Equal(t, "priya@example.com", store.leads[0].Email)
	assert.Equal(t, "contact", store.leads[0].Source)
	assert.NotEmpty(t, store.leads[0].ID)
}

func TestSubmitRejectedBodyFallsBack(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`leadCallback({"success":false,"error":"sheet full"})`))
	}))
	defer server.Close()

	store := &stubLeadStore{}
	submitter := NewSheetsLeadSubmitter(server.URL, store)

	ok := submitter.Submit(context.Background(), leadFixture())

	assert.True(t, ok)
	assert.Len(t, store.leads, 1)
}

func TestSubmitUnreachableEndpointStillSucceeds(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	store := &stubLeadStore{}
	submitter := NewSheetsLeadSubmitter(server.URL, store)

	ok := submitter.Submit(context.Background(), leadFixture())

	assert.True(t, ok)
	assert.Len(t, store.leads, 1)
}

func TestSubmitWithoutConfiguredEndpoint(t *testing.T) {
	store := &stubLeadStore{}
	submitter := NewSheetsLeadSubmitter("", store)

	ok := submitter.Submit(context.Background(), leadFixture())

	assert.True(t, ok)
	assert.Len(t, store.leads, 1)
}

func TestSubmitDefaultsUnknownSource(t *testing.T) {
	var gotSource string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSource = r.URL.Query().Get("source")
		w.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()

	form := leadFixture()
	form.Source = ""

	submitter := NewSheetsLeadSubmitter(server.URL, &stubLeadStore{})
	assert.True(t, submitter.Submit(context.Background(), form))
	assert.Equal(t, "unknown", gotSource)
}
