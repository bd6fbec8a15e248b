package service

import (
	"context"
	"errors"

	"github.com/journalmind/journalmind-go/internal/model"
	"github.com/journalmind/journalmind-go/internal/repository"
)

var (
	ErrTitleRequired = errors.New("goal title is required")
	ErrInvalidStatus = errors.New("status must be 'active' or 'completed'")
	ErrGoalNotFound  = errors.New("goal not found")
)

// GoalService handles goal business logic.
type GoalService struct {
	repo *repository.GoalRepository
}

// NewGoalService creates a new GoalService.
func NewGoalService(repo *repository.GoalRepository) *GoalService {
	return &GoalService{repo: repo}
}

func validStatus(status string) bool {
	return status == model.GoalStatusActive || status == model.GoalStatusCompleted
}

// Add creates a new goal in the active state.
func (s *GoalService) Add(ctx context.Context, userID int64, req model.AddGoalRequest) (model.GoalResponse, error) {
	if req.Objective.Title == "" {
		return model.GoalResponse{}, ErrTitleRequired
	}

	goal := &model.Goal{
		UserID: userID,
		Title:  req.Objective.Title,
		Status: model.GoalStatusActive,
	}

	if err := s.repo.Create(ctx, goal); err != nil {
		return model.GoalResponse{}, err
	}

	return model.GoalResponse{ID: goal.ID, Title: goal.Title, Status: goal.Status}, nil
}

// List returns the user's goals with the given status, defaulting to
// active when none is supplied.
func (s *GoalService) List(ctx context.Context, userID int64, status string) ([]model.GoalResponse, error) {
	if status == "" {
		status = model.GoalStatusActive
	}
	if !validStatus(status) {
		return nil, ErrInvalidStatus
	}

	goals, err := s.repo.ListByStatus(ctx, userID, status)
	if err != nil {
		return nil, err
	}

	result := make([]model.GoalResponse, len(goals))
	for i, g := range goals {
		result[i] = model.GoalResponse{ID: g.ID, Title: g.Title, Status: g.Status}
	}
	return result, nil
}

// Update applies a partial update to a goal owned by the user. Unknown
// status strings are rejected rather than stored.
func (s *GoalService) Update(ctx context.Context, userID, goalID int64, req model.UpdateGoalRequest) (model.GoalResponse, error) {
	if req.Status != nil && !validStatus(*req.Status) {
		return model.GoalResponse{}, ErrInvalidStatus
	}
	if req.Title != nil && *req.Title == "" {
		return model.GoalResponse{}, ErrTitleRequired
	}

	goal, err := s.repo.Get(ctx, userID, goalID)
	if err != nil {
		if errors.Is(err, repository.ErrGoalNotFound) {
			return model.GoalResponse{}, ErrGoalNotFound
		}
		return model.GoalResponse{}, err
	}

	if req.Title != nil {
		goal.Title = *req.Title
	}
	if req.Status != nil {
		goal.Status = *req.Status
	}

	if err := s.repo.Update(ctx, userID, goalID, goal.Title, goal.Status); err != nil {
		if errors.Is(err, repository.ErrGoalNotFound) {
			return model.GoalResponse{}, ErrGoalNotFound
		}
		return model.GoalResponse{}, err
	}

	return model.GoalResponse{ID: goal.ID, Title: goal.Title, Status: goal.Status}, nil
}

// Delete removes a goal owned by the user.
func (s *GoalService) Delete(ctx context.Context, userID, goalID int64) error {
	err := s.repo.Delete(ctx, userID, goalID)
	if errors.Is(err, repository.ErrGoalNotFound) {
		return ErrGoalNotFound
	}
	return err
}
