// Package analysis generates short answer explanations for extracted
// questions via an OpenAI-compatible chat endpoint, with a local disk
// cache in front of the model.
package analysis

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/hyperifyio/quizextract/internal/question"
)

// Client is the minimal surface of the chat API the explainer needs.
// *openai.Client satisfies it directly.
type Client interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

const systemPrompt = "You are a study assistant. Given a multiple-choice question and its correct answer, explain in two or three sentences why that answer is correct. Do not restate the question."

// Explainer produces a one-paragraph rationale for a question's recorded
// answer. Cache is optional; when set, identical (model, question) pairs
// are answered from disk.
type Explainer struct {
	Client Client
	Model  string
	Cache  *ResponseCache
}

func buildPrompt(rec question.Record) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Question %d: %s\n", rec.Number, rec.Question)
	fmt.Fprintf(&b, "A. %s\n", rec.Options.A)
	fmt.Fprintf(&b, "B. %s\n", rec.Options.B)
	fmt.Fprintf(&b, "C. %s\n", rec.Options.C)
	fmt.Fprintf(&b, "D. %s\n", rec.Options.D)
	fmt.Fprintf(&b, "Correct answer: %s", rec.Answer)
	return b.String()
}

// Explain returns the explanation text for rec.
func (e *Explainer) Explain(ctx context.Context, rec question.Record) (string, error) {
	if e.Client == nil {
		return "", errors.New("analysis: no chat client configured")
	}
	if e.Model == "" {
		return "", errors.New("analysis: no model configured")
	}
	prompt := buildPrompt(rec)
	key := cacheKey(e.Model, prompt)
	if e.Cache != nil {
		if b, ok, err := e.Cache.Get(ctx, key); err == nil && ok {
			return string(b), nil
		}
	}
	resp, err := e.Client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       e.Model,
		Temperature: 0.2,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("analysis: chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("analysis: empty completion")
	}
	out := strings.TrimSpace(resp.Choices[0].Message.Content)
	if out == "" {
		return "", errors.New("analysis: blank completion content")
	}
	if e.Cache != nil {
		if err := e.Cache.Save(ctx, key, []byte(out)); err != nil {
			return "", fmt.Errorf("analysis: save cache: %w", err)
		}
	}
	return out, nil
}
