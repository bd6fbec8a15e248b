package model

import "time"

// ReportAnswers is the structured payload a user submits for one day:
// a mood rating plus three free-text reflection answers. It is stored
// serialized and must round-trip exactly on fetch.
type ReportAnswers struct {
	Mood int    `json:"mood"`
	Q1   string `json:"q1"`
	Q2   string `json:"q2"`
	Q3   string `json:"q3"`
}

// Report is one day's submitted answers plus the generated summary.
// At most one row exists per (user, date).
type Report struct {
	ID        int64
	UserID    int64
	Date      string // calendar day, YYYY-MM-DD
	Answers   string // serialized ReportAnswers
	Summary   string
	CreatedAt time.Time
}

// Evaluation is a generated trend assessment over a user's recent reports.
// At most one row exists per user; it is replaced wholesale on regeneration.
type Evaluation struct {
	ID        int64
	UserID    int64
	Date      string
	AdvisorID int
	Content   string
	UpdatedAt time.Time
}

// SummaryEntry pairs one report's date with its summary, for the
// evaluation prompt.
type SummaryEntry struct {
	Date    string
	Summary string
}

// SubmitReportRequest represents a report submission.
type SubmitReportRequest struct {
	Answers ReportAnswers `json:"answers"`
}

// SubmitReportResponse is returned after a successful submission.
type SubmitReportResponse struct {
	Message string `json:"message"`
	Summary string `json:"summary"`
}

// CreateAdviseRequest selects the persona voicing the evaluation.
type CreateAdviseRequest struct {
	Advisor int `json:"advisor"`
}

// CreateAdviseResponse is returned after a successful evaluation.
type CreateAdviseResponse struct {
	Message    string `json:"message"`
	Evaluation string `json:"evaluation"`
}

// TodayReportResponse is the day's report with the user's current
// evaluation, if any.
type TodayReportResponse struct {
	Date       string        `json:"date"`
	Answers    ReportAnswers `json:"answers"`
	Summary    string        `json:"summary"`
	Evaluation *string       `json:"evaluation"`
}
