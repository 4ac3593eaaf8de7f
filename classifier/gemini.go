// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package classifier

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"google.golang.org/genai"

	"github.com/danielhkuo/topiary/models"
)

// Gemini classifies answers with the Gemini API, forcing a structured
// JSON response so the verdict decodes reliably.
type Gemini struct {
	client *genai.Client
	model  string
}

// NewGemini creates a Gemini-backed classifier.
func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Backend: genai.BackendGeminiAPI,
		APIKey:  apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("create Gemini client: %w", err)
	}
	return &Gemini{client: client, model: model}, nil
}

// verdictSchema constrains the model to the exact verdict shape.
var verdictSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"category_name": {
			Type:        genai.TypeString,
			Description: "The determined category name for the user's answer.",
		},
		"is_new": {
			Type:        genai.TypeBoolean,
			Description: "True if category_name is a new category, false if it is an existing one.",
		},
	},
	Required: []string{"category_name", "is_new"},
}

func systemPrompt(existing []string) string {
	current := "None"
	if len(existing) > 0 {
		current = strings.Join(existing, ", ")
	}
	return fmt.Sprintf(`You are a categorization engine for open-ended survey answers.
Your task is to classify a respondent's answer to a survey question into a topical category.

Current existing categories are: %s.

RULES:
1. If the answer strongly aligns with an EXISTING category, use that category name exactly.
2. If the answer is unique and represents a NEW, distinct topic, create a CONCISE (2-4 word) and descriptive new category name.
3. You MUST return your response in the specified JSON format.
4. Set 'is_new' to true only if you propose a new category name.`, current)
}

// Classify sends the answer and the known category names to Gemini and
// decodes the structured verdict. No retries: a transport failure or a
// malformed payload fails this single attempt.
func (g *Gemini) Classify(ctx context.Context, answer string, existing []string) (models.Verdict, error) {
	contents := genai.Text(fmt.Sprintf("Respondent's answer: %q. Classify this answer.", answer))
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{genai.NewPartFromText(systemPrompt(existing))},
		},
		ResponseMIMEType: "application/json",
		ResponseSchema:   verdictSchema,
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model, contents, config)
	if err != nil {
		return models.Verdict{}, fmt.Errorf("%w: %v", ErrTransport, err)
	}

	return decodeVerdict(result.Text())
}

// decodeVerdict validates the raw model output into a well-typed verdict.
// A partially-populated verdict never escapes: missing or blank fields
// are a format error.
func decodeVerdict(raw string) (models.Verdict, error) {
	if strings.TrimSpace(raw) == "" {
		return models.Verdict{}, fmt.Errorf("%w: empty response text", ErrFormat)
	}

	var verdict models.Verdict
	if err := json.Unmarshal([]byte(raw), &verdict); err != nil {
		slog.Debug("unparseable classifier payload", "raw", raw)
		return models.Verdict{}, fmt.Errorf("%w: %v", ErrFormat, err)
	}

	verdict.CategoryName = strings.TrimSpace(verdict.CategoryName)
	if verdict.CategoryName == "" {
		slog.Debug("classifier payload missing category_name", "raw", raw)
		return models.Verdict{}, fmt.Errorf("%w: missing category_name", ErrFormat)
	}
	return verdict, nil
}
