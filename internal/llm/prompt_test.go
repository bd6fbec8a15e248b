package llm

import (
	"strings"
	"testing"

	"github.com/journalmind/journalmind-go/internal/model"
)

func TestSummaryPromptEmbedsAllAnswers(t *testing.T) {
	answers := model.ReportAnswers{
		Mood: 7,
		Q1:   "finished the big presentation",
		Q2:   "relieved and a little proud",
		Q3:   "start preparing earlier",
	}

	prompt := summaryPrompt(answers, []string{"run three times a week", "read more"})

	for _, want := range []string{
		"Mood (1-10): 7",
		"finished the big presentation",
		"relieved and a little proud",
		"start preparing earlier",
		"run three times a week",
		"read more",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("summaryPrompt() missing %q in:\n%s", want, prompt)
		}
	}
}

func TestSummaryPromptNoGoals(t *testing.T) {
	prompt := summaryPrompt(model.ReportAnswers{Mood: 5, Q1: "a", Q2: "b", Q3: "c"}, nil)

	if strings.Contains(prompt, "working toward") {
		t.Errorf("summaryPrompt() mentioned goals with an empty goal list:\n%s", prompt)
	}
	if !strings.Contains(prompt, "Mood (1-10): 5") {
		t.Errorf("summaryPrompt() missing mood in:\n%s", prompt)
	}
}

func TestEvaluationPromptTagsDates(t *testing.T) {
	entries := []model.SummaryEntry{
		{Date: "2025-03-02", Summary: "a calmer day"},
		{Date: "2025-03-01", Summary: "a stressful day"},
	}

	prompt := evaluationPrompt(entries)

	for _, want := range []string{
		"[2025-03-02] a calmer day",
		"[2025-03-01] a stressful day",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("evaluationPrompt() missing %q in:\n%s", want, prompt)
		}
	}
}
