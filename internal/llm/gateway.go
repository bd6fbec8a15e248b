// Package llm wraps the Gemini text-completion API behind the two
// generation operations the service needs: daily summaries and trend
// evaluations.
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/journalmind/journalmind-go/internal/model"
	"github.com/journalmind/journalmind-go/internal/persona"
)

// ErrUpstream marks failures of the external completion API so callers
// can tell a retryable upstream problem from a local one.
var ErrUpstream = errors.New("text generation upstream failed")

const summarySystemInstruction = "You are an empathetic assistant that analyzes daily journals. " +
	"Write a concise, warm summary of the user's day based on their answers. " +
	"Do not invent details that are not in the answers."

// Gateway is a process-scoped, read-only client of the completion API.
// It is safe to share across concurrent requests.
type Gateway struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

func NewGateway(ctx context.Context, apiKey, modelName string, timeout time.Duration) (*Gateway, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("creating genai client: %w", err)
	}

	return &Gateway{
		client:  client,
		model:   modelName,
		timeout: timeout,
	}, nil
}

func (g *Gateway) Close() error {
	return g.client.Close()
}

// GenerateSummary produces a summary of one day's answers, with the
// user's active goal titles as context. An empty goal list is valid.
func (g *Gateway) GenerateSummary(ctx context.Context, answers model.ReportAnswers, goalTitles []string) (string, error) {
	return g.generate(ctx, summarySystemInstruction, summaryPrompt(answers, goalTitles))
}

// GenerateEvaluation produces a trend assessment over recent report
// summaries, voiced by the given persona.
func (g *Gateway) GenerateEvaluation(ctx context.Context, entries []model.SummaryEntry, p persona.Persona) (string, error) {
	return g.generate(ctx, p.SystemPrompt, evaluationPrompt(entries))
}

// generate runs a single two-message exchange with a bounded timeout so
// a slow upstream cannot hold a worker indefinitely.
func (g *Gateway) generate(ctx context.Context, systemInstruction, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	gm := g.client.GenerativeModel(g.model)
	gm.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemInstruction)},
	}

	resp, err := gm.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("%w: empty response", ErrUpstream)
	}

	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			text.WriteString(string(txt))
		}
	}

	if text.Len() == 0 {
		return "", fmt.Errorf("%w: no text parts in response", ErrUpstream)
	}

	return strings.TrimSpace(text.String()), nil
}
