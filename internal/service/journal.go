package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/journalmind/journalmind-go/internal/model"
	"github.com/journalmind/journalmind-go/internal/persona"
	"github.com/journalmind/journalmind-go/internal/repository"
)

var (
	ErrAnswersRequired = errors.New("all three answers are required")
	ErrMoodOutOfRange  = errors.New("mood must be between 1 and 10")
	ErrUnknownAdvisor  = errors.New("unknown advisor id")
	ErrNoReports       = errors.New("no reports to evaluate yet")
	ErrNoReportToday   = errors.New("no report found for today")
)

// recentReportLimit is how many reports feed one evaluation.
const recentReportLimit = 10

// Generator is the external text-completion gateway the journal
// service depends on.
type Generator interface {
	GenerateSummary(ctx context.Context, answers model.ReportAnswers, goalTitles []string) (string, error)
	GenerateEvaluation(ctx context.Context, entries []model.SummaryEntry, p persona.Persona) (string, error)
}

// ReportStore is the report and evaluation persistence the journal
// service depends on.
type ReportStore interface {
	Upsert(ctx context.Context, report *model.Report) error
	GetTodayWithEvaluation(ctx context.Context, userID int64, date string) (*model.Report, *string, error)
	ListRecentSummaries(ctx context.Context, userID int64, limit int) ([]model.SummaryEntry, error)
	UpsertEvaluation(ctx context.Context, eval *model.Evaluation) error
}

// GoalTitleLister supplies active goal titles for summary context.
type GoalTitleLister interface {
	ListTitlesByStatus(ctx context.Context, userID int64, status string) ([]string, error)
}

// JournalService orchestrates the report and evaluation lifecycles.
type JournalService struct {
	reports   ReportStore
	goals     GoalTitleLister
	generator Generator
}

// NewJournalService creates a new JournalService.
func NewJournalService(reports ReportStore, goals GoalTitleLister, gen Generator) *JournalService {
	return &JournalService{
		reports:   reports,
		goals:     goals,
		generator: gen,
	}
}

// today returns the server-local calendar day.
func today() string {
	return time.Now().Format("2006-01-02")
}

// SubmitReport generates a summary of the day's answers and persists
// the report. Generation strictly precedes the write so a failed
// generation leaves no row behind. Resubmission on the same day
// replaces the previous report.
func (s *JournalService) SubmitReport(ctx context.Context, userID int64, req model.SubmitReportRequest) (model.SubmitReportResponse, error) {
	answers := req.Answers
	if answers.Q1 == "" || answers.Q2 == "" || answers.Q3 == "" {
		return model.SubmitReportResponse{}, ErrAnswersRequired
	}
	if answers.Mood < 1 || answers.Mood > 10 {
		return model.SubmitReportResponse{}, ErrMoodOutOfRange
	}

	goalTitles, err := s.goals.ListTitlesByStatus(ctx, userID, model.GoalStatusActive)
	if err != nil {
		return model.SubmitReportResponse{}, err
	}

	summary, err := s.generator.GenerateSummary(ctx, answers, goalTitles)
	if err != nil {
		return model.SubmitReportResponse{}, err
	}

	raw, err := json.Marshal(answers)
	if err != nil {
		return model.SubmitReportResponse{}, err
	}

	report := &model.Report{
		UserID:  userID,
		Date:    today(),
		Answers: string(raw),
		Summary: summary,
	}

	if err := s.reports.Upsert(ctx, report); err != nil {
		return model.SubmitReportResponse{}, err
	}

	return model.SubmitReportResponse{
		Message: "Report submitted successfully",
		Summary: summary,
	}, nil
}

// CreateEvaluation generates a trend assessment over the user's recent
// reports, voiced by the chosen advisor, and replaces any previous
// evaluation in a single atomic write.
func (s *JournalService) CreateEvaluation(ctx context.Context, userID int64, advisorID int) (model.CreateAdviseResponse, error) {
	p, err := persona.ByID(advisorID)
	if err != nil {
		return model.CreateAdviseResponse{}, ErrUnknownAdvisor
	}

	entries, err := s.reports.ListRecentSummaries(ctx, userID, recentReportLimit)
	if err != nil {
		return model.CreateAdviseResponse{}, err
	}
	if len(entries) == 0 {
		return model.CreateAdviseResponse{}, ErrNoReports
	}

	content, err := s.generator.GenerateEvaluation(ctx, entries, p)
	if err != nil {
		return model.CreateAdviseResponse{}, err
	}

	eval := &model.Evaluation{
		UserID:    userID,
		Date:      today(),
		AdvisorID: p.ID,
		Content:   content,
	}

	if err := s.reports.UpsertEvaluation(ctx, eval); err != nil {
		return model.CreateAdviseResponse{}, err
	}

	return model.CreateAdviseResponse{
		Message:    "Evaluation created successfully",
		Evaluation: content,
	}, nil
}

// TodayReport returns the day's report and the user's current
// evaluation, if any.
func (s *JournalService) TodayReport(ctx context.Context, userID int64) (model.TodayReportResponse, error) {
	report, evaluation, err := s.reports.GetTodayWithEvaluation(ctx, userID, today())
	if err != nil {
		if errors.Is(err, repository.ErrReportNotFound) {
			return model.TodayReportResponse{}, ErrNoReportToday
		}
		return model.TodayReportResponse{}, err
	}

	var answers model.ReportAnswers
	if err := json.Unmarshal([]byte(report.Answers), &answers); err != nil {
		return model.TodayReportResponse{}, err
	}

	return model.TodayReportResponse{
		Date:       report.Date,
		Answers:    answers,
		Summary:    report.Summary,
		Evaluation: evaluation,
	}, nil
}
