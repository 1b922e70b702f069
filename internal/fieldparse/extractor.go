package fieldparse

import (
	"context"
	"fmt"

	"github.com/jonathan/resume-builder/internal/ingestion"
	"github.com/jonathan/resume-builder/internal/llm"
	"github.com/jonathan/resume-builder/internal/prompts"
)

// DefaultTextLimit is the number of runes of résumé text sent per field.
const DefaultTextLimit = 4000

// Extractor answers a single field from raw résumé text. Array fields are
// answered with a JSON array, text fields with plain text.
type Extractor interface {
	Extract(ctx context.Context, field Field, text string) (string, error)
}

// ExtractorFunc adapts a function to Extractor
type ExtractorFunc func(ctx context.Context, field Field, text string) (string, error)

// Extract calls f
func (f ExtractorFunc) Extract(ctx context.Context, field Field, text string) (string, error) {
	return f(ctx, field, text)
}

// LLMExtractor extracts fields with the model using the prompts in fields.json
type LLMExtractor struct {
	Client llm.Client
	// Limit clips the text in runes; zero means DefaultTextLimit.
	Limit int
}

// Extract renders the field prompt and calls the lite tier.
func (e *LLMExtractor) Extract(ctx context.Context, field Field, text string) (string, error) {
	prompt, err := BuildFieldPrompt(field, ingestion.Clip(text, e.limit()))
	if err != nil {
		return "", err
	}
	answer, err := e.Client.GenerateContent(ctx, prompt, llm.TierLite)
	if err != nil {
		return "", fmt.Errorf("failed to extract %s: %w", field.Key, err)
	}
	return answer, nil
}

func (e *LLMExtractor) limit() int {
	if e.Limit <= 0 {
		return DefaultTextLimit
	}
	return e.Limit
}

// BuildFieldPrompt prefixes the field prompt with the extraction system prompt.
func BuildFieldPrompt(field Field, text string) (string, error) {
	system, err := prompts.Get(prompts.FieldsFile, "system")
	if err != nil {
		return "", err
	}
	body, err := prompts.Render(prompts.FieldsFile, field.Key, map[string]string{"Text": text})
	if err != nil {
		return "", err
	}
	return system + "\n\n" + body, nil
}
