package llm

import (
	"fmt"
	"strings"

	"github.com/journalmind/journalmind-go/internal/model"
)

// summaryPrompt composes the user message for a daily summary: the mood
// rating, the three reflection answers, and the active goal titles.
func summaryPrompt(answers model.ReportAnswers, goalTitles []string) string {
	var b strings.Builder

	b.WriteString("Here are today's answers to three questions about the day:\n\n")
	fmt.Fprintf(&b, "Mood (1-10): %d\n", answers.Mood)
	fmt.Fprintf(&b, "1. What happened today? %s\n", answers.Q1)
	fmt.Fprintf(&b, "2. How did it make you feel? %s\n", answers.Q2)
	fmt.Fprintf(&b, "3. What would you do differently? %s\n", answers.Q3)

	if len(goalTitles) > 0 {
		b.WriteString("\nThe user is currently working toward these goals:\n")
		for _, title := range goalTitles {
			fmt.Fprintf(&b, "- %s\n", title)
		}
	}

	b.WriteString("\nGenerate a concise and empathetic summary of this day.")
	return b.String()
}

// evaluationPrompt composes the user message for a trend evaluation out
// of recent daily summaries, newest first, each tagged with its date.
func evaluationPrompt(entries []model.SummaryEntry) string {
	var b strings.Builder

	b.WriteString("Here are the summaries of the most recent days:\n\n")
	for _, e := range entries {
		fmt.Fprintf(&b, "[%s] %s\n", e.Date, e.Summary)
	}

	b.WriteString("\nAnalyze the evolution and provide a constructive evaluation of the observed trends.")
	return b.String()
}
