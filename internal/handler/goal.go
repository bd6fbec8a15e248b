package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/journalmind/journalmind-go/internal/middleware"
	"github.com/journalmind/journalmind-go/internal/model"
	"github.com/journalmind/journalmind-go/internal/service"
)

// GoalHandler handles HTTP requests for goal operations.
type GoalHandler struct {
	service *service.GoalService
}

// NewGoalHandler creates a new GoalHandler.
func NewGoalHandler(svc *service.GoalService) *GoalHandler {
	return &GoalHandler{service: svc}
}

// HandleAddGoal handles POST /add-goal requests.
func (h *GoalHandler) HandleAddGoal(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.AddGoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	goal, err := h.service.Add(r.Context(), userID, req)
	if err != nil {
		if errors.Is(err, service.ErrTitleRequired) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusCreated, model.GoalMessageResponse{
		Message: "Goal added successfully",
		Goal:    goal,
	})
}

// HandleGetGoals handles GET /get-goals requests. The status query
// parameter defaults to active.
func (h *GoalHandler) HandleGetGoals(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	goals, err := h.service.List(r.Context(), userID, r.URL.Query().Get("status"))
	if err != nil {
		if errors.Is(err, service.ErrInvalidStatus) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, goals)
}

// HandleUpdateGoal handles PUT /update-goal/{goal_id} requests.
func (h *GoalHandler) HandleUpdateGoal(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	goalID, err := strconv.ParseInt(chi.URLParam(r, "goal_id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid goal id"))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.UpdateGoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	goal, err := h.service.Update(r.Context(), userID, goalID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidStatus), errors.Is(err, service.ErrTitleRequired):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		case errors.Is(err, service.ErrGoalNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusOK, model.GoalMessageResponse{
		Message: "Goal updated successfully",
		Goal:    goal,
	})
}

// HandleDeleteGoal handles DELETE /delete-goal/{goal_id} requests.
func (h *GoalHandler) HandleDeleteGoal(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	goalID, err := strconv.ParseInt(chi.URLParam(r, "goal_id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid goal id"))
		return
	}

	if err := h.service.Delete(r.Context(), userID, goalID); err != nil {
		if errors.Is(err, service.ErrGoalNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Goal deleted successfully"})
}
