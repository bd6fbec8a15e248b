package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/journalmind/journalmind-go/internal/model"
)

var ErrGoalNotFound = errors.New("goal not found")

// GoalRepository handles goal persistence operations. Every query is
// scoped by the owning user id.
type GoalRepository struct {
	db *sql.DB
}

// NewGoalRepository creates a new GoalRepository.
func NewGoalRepository(db *sql.DB) *GoalRepository {
	return &GoalRepository{db: db}
}

// Create inserts a new goal and sets the generated ID on the goal struct.
func (r *GoalRepository) Create(ctx context.Context, goal *model.Goal) error {
	query := `INSERT INTO goals (user_id, title, status) VALUES (?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query, goal.UserID, goal.Title, goal.Status)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	goal.ID = id
	return nil
}

// ListByStatus retrieves all of a user's goals with the given status.
func (r *GoalRepository) ListByStatus(ctx context.Context, userID int64, status string) ([]model.Goal, error) {
	query := `SELECT id, user_id, title, status, created_at
		FROM goals WHERE user_id = ? AND status = ? ORDER BY created_at ASC`

	rows, err := r.db.QueryContext(ctx, query, userID, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var goals []model.Goal
	for rows.Next() {
		var g model.Goal
		if err := rows.Scan(&g.ID, &g.UserID, &g.Title, &g.Status, &g.CreatedAt); err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}

	return goals, rows.Err()
}

// ListTitlesByStatus retrieves just the titles of a user's goals with
// the given status, for prompt context.
func (r *GoalRepository) ListTitlesByStatus(ctx context.Context, userID int64, status string) ([]string, error) {
	query := `SELECT title FROM goals WHERE user_id = ? AND status = ? ORDER BY created_at ASC`

	rows, err := r.db.QueryContext(ctx, query, userID, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var titles []string
	for rows.Next() {
		var title string
		if err := rows.Scan(&title); err != nil {
			return nil, err
		}
		titles = append(titles, title)
	}

	return titles, rows.Err()
}

// Get retrieves a single goal by id, scoped to the owning user.
func (r *GoalRepository) Get(ctx context.Context, userID, goalID int64) (*model.Goal, error) {
	query := `SELECT id, user_id, title, status, created_at FROM goals WHERE id = ? AND user_id = ?`

	goal := &model.Goal{}
	err := r.db.QueryRowContext(ctx, query, goalID, userID).Scan(
		&goal.ID, &goal.UserID, &goal.Title, &goal.Status, &goal.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrGoalNotFound
		}
		return nil, err
	}

	return goal, nil
}

// Update sets a goal's title and status, scoped to the owning user.
func (r *GoalRepository) Update(ctx context.Context, userID, goalID int64, title, status string) error {
	query := `UPDATE goals SET title = ?, status = ? WHERE id = ? AND user_id = ?`

	result, err := r.db.ExecContext(ctx, query, title, status, goalID, userID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		// The row may also exist with identical values; re-check ownership
		// so a no-op update is not reported as missing.
		if _, err := r.Get(ctx, userID, goalID); err != nil {
			return err
		}
	}

	return nil
}

// Delete removes a goal, scoped to the owning user.
func (r *GoalRepository) Delete(ctx context.Context, userID, goalID int64) error {
	query := `DELETE FROM goals WHERE id = ? AND user_id = ?`

	result, err := r.db.ExecContext(ctx, query, goalID, userID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrGoalNotFound
	}

	return nil
}
