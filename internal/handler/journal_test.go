package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/journalmind/journalmind-go/internal/model"
	"github.com/journalmind/journalmind-go/internal/persona"
	"github.com/journalmind/journalmind-go/internal/repository"
	"github.com/journalmind/journalmind-go/internal/service"
)

type stubGenerator struct{}

func (stubGenerator) GenerateSummary(context.Context, model.ReportAnswers, []string) (string, error) {
	return "summary", nil
}

func (stubGenerator) GenerateEvaluation(context.Context, []model.SummaryEntry, persona.Persona) (string, error) {
	return "evaluation", nil
}

func newTestJournalHandler() *JournalHandler {
	svc := service.NewJournalService(
		repository.NewReportRepository(nil),
		repository.NewGoalRepository(nil),
		stubGenerator{},
	)
	return NewJournalHandler(svc)
}

func TestHandleSubmitReport_InvalidBody(t *testing.T) {
	h := newTestJournalHandler()

	req := authedRequest(http.MethodPost, "/submit-report", `{`)
	rec := httptest.NewRecorder()

	h.HandleSubmitReport(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestHandleSubmitReport_MissingAnswers(t *testing.T) {
	h := newTestJournalHandler()

	req := authedRequest(http.MethodPost, "/submit-report", `{"answers":{"mood":7,"q1":"A"}}`)
	rec := httptest.NewRecorder()

	h.HandleSubmitReport(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d (body: %s)", rec.Code, http.StatusBadRequest, rec.Body.String())
	}

	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decoding error body: %v", err)
	}
	if body["error"] == "" {
		t.Error("expected an error message in response body")
	}
}

func TestHandleCreateAdvise_UnknownAdvisor(t *testing.T) {
	h := newTestJournalHandler()

	req := authedRequest(http.MethodPost, "/create-advise", `{"advisor":99}`)
	rec := httptest.NewRecorder()

	h.HandleCreateAdvise(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d (body: %s)", rec.Code, http.StatusBadRequest, rec.Body.String())
	}
}

func TestHandleListPersonas(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/personas", nil)
	rec := httptest.NewRecorder()

	HandleListPersonas(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var personas []map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&personas); err != nil {
		t.Fatalf("decoding personas: %v", err)
	}
	if len(personas) == 0 {
		t.Fatal("expected at least one persona")
	}
	for i, p := range personas {
		if p["name"] == "" || p["name"] == nil {
			t.Errorf("persona %d missing name", i)
		}
		if len(p) > 2 {
			t.Errorf("persona %d exposes extra fields: %v", i, p)
		}
	}
}
