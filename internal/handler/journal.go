package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/journalmind/journalmind-go/internal/llm"
	"github.com/journalmind/journalmind-go/internal/middleware"
	"github.com/journalmind/journalmind-go/internal/model"
	"github.com/journalmind/journalmind-go/internal/service"
)

// JournalHandler handles HTTP requests for reports and evaluations.
type JournalHandler struct {
	service *service.JournalService
}

// NewJournalHandler creates a new JournalHandler.
func NewJournalHandler(svc *service.JournalService) *JournalHandler {
	return &JournalHandler{service: svc}
}

// HandleSubmitReport handles POST /submit-report requests.
func (h *JournalHandler) HandleSubmitReport(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.SubmitReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	resp, err := h.service.SubmitReport(r.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAnswersRequired), errors.Is(err, service.ErrMoodOutOfRange):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		case errors.Is(err, llm.ErrUpstream):
			slog.Error("summary generation failed", "user_id", userID, "error", err)
			writeJSON(w, http.StatusBadGateway, errorResponse("summary generation failed"))
		default:
			slog.Error("submit report failed", "user_id", userID, "error", err)
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// HandleCreateAdvise handles POST /create-advise requests.
func (h *JournalHandler) HandleCreateAdvise(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.CreateAdviseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	resp, err := h.service.CreateEvaluation(r.Context(), userID, req.Advisor)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownAdvisor), errors.Is(err, service.ErrNoReports):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		case errors.Is(err, llm.ErrUpstream):
			slog.Error("evaluation generation failed", "user_id", userID, "error", err)
			writeJSON(w, http.StatusBadGateway, errorResponse("evaluation generation failed"))
		default:
			slog.Error("create evaluation failed", "user_id", userID, "error", err)
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// HandleTodayReport handles GET /get-today-report requests.
func (h *JournalHandler) HandleTodayReport(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	resp, err := h.service.TodayReport(r.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrNoReportToday) {
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
			return
		}
		slog.Error("get today report failed", "user_id", userID, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
