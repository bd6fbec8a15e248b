package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/journalmind/journalmind-go/internal/model"
)

var ErrReportNotFound = errors.New("report not found")

// ReportRepository handles report and evaluation persistence.
type ReportRepository struct {
	db *sql.DB
}

// NewReportRepository creates a new ReportRepository.
func NewReportRepository(db *sql.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// upsertReportQuery replaces the day's report if one already exists.
// The unique key on (user_id, report_date) makes concurrent submissions
// for the same day resolve atomically, last write wins.
const upsertReportQuery = `
	INSERT INTO reports (user_id, report_date, answers, summary)
	VALUES (?, ?, ?, ?)
	ON DUPLICATE KEY UPDATE
		answers = VALUES(answers),
		summary = VALUES(summary)`

// Upsert inserts the day's report, replacing a previous submission for
// the same (user, date).
func (r *ReportRepository) Upsert(ctx context.Context, report *model.Report) error {
	_, err := r.db.ExecContext(ctx, upsertReportQuery,
		report.UserID,
		report.Date,
		report.Answers,
		report.Summary,
	)
	return err
}

// GetTodayWithEvaluation retrieves the report for the given date along
// with the user's current evaluation content, if any.
func (r *ReportRepository) GetTodayWithEvaluation(ctx context.Context, userID int64, date string) (*model.Report, *string, error) {
	query := `SELECT r.id, r.user_id, DATE_FORMAT(r.report_date, '%Y-%m-%d'), r.answers, r.summary, r.created_at, e.content
		FROM reports r
		LEFT JOIN evaluations e ON e.user_id = r.user_id
		WHERE r.user_id = ? AND r.report_date = ?`

	report := &model.Report{}
	var evaluation sql.NullString
	err := r.db.QueryRowContext(ctx, query, userID, date).Scan(
		&report.ID, &report.UserID, &report.Date, &report.Answers, &report.Summary, &report.CreatedAt, &evaluation,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, ErrReportNotFound
		}
		return nil, nil, err
	}

	if evaluation.Valid {
		return report, &evaluation.String, nil
	}
	return report, nil, nil
}

// ListRecentSummaries retrieves the summaries of the user's most recent
// reports, newest first, each tagged with its date.
func (r *ReportRepository) ListRecentSummaries(ctx context.Context, userID int64, limit int) ([]model.SummaryEntry, error) {
	query := `SELECT DATE_FORMAT(report_date, '%Y-%m-%d'), summary
		FROM reports WHERE user_id = ? ORDER BY report_date DESC LIMIT ?`

	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []model.SummaryEntry
	for rows.Next() {
		var e model.SummaryEntry
		if err := rows.Scan(&e.Date, &e.Summary); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// upsertEvaluationQuery replaces the user's evaluation wholesale. The
// unique key on user_id keeps the at-most-one-row invariant without the
// racy delete-then-insert.
const upsertEvaluationQuery = `
	INSERT INTO evaluations (user_id, eval_date, advisor_id, content)
	VALUES (?, ?, ?, ?)
	ON DUPLICATE KEY UPDATE
		eval_date  = VALUES(eval_date),
		advisor_id = VALUES(advisor_id),
		content    = VALUES(content)`

// UpsertEvaluation inserts or replaces the user's single evaluation row.
func (r *ReportRepository) UpsertEvaluation(ctx context.Context, eval *model.Evaluation) error {
	_, err := r.db.ExecContext(ctx, upsertEvaluationQuery,
		eval.UserID,
		eval.Date,
		eval.AdvisorID,
		eval.Content,
	)
	return err
}
