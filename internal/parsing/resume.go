// Package parsing turns raw résumé text into a ResumeRecord through the model,
// recovering malformed output with the jsonrepair ladder.
package parsing

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/jonathan/resume-builder/internal/ingestion"
	"github.com/jonathan/resume-builder/internal/jsonrepair"
	"github.com/jonathan/resume-builder/internal/llm"
	"github.com/jonathan/resume-builder/internal/prompts"
)

// DefaultTextLimit is the number of runes of résumé text sent to the model.
const DefaultTextLimit = 6000

// Service parses whole résumés
type Service struct {
	Client llm.Client
	Logger *zap.Logger
	// Limit clips the input in runes; zero means DefaultTextLimit.
	Limit int
}

// NewService creates a Service. A nil logger is replaced with a no-op logger.
func NewService(client llm.Client, logger *zap.Logger, limit int) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if limit <= 0 {
		limit = DefaultTextLimit
	}
	return &Service{Client: client, Logger: logger, Limit: limit}
}

// ParseResume asks the model for the résumé as JSON and salvages the answer. Text
// shorter than ingestion.MinUploadRunes is rejected before any model call.
// A partial result (scalars only) is returned without error; Complete reports it.
func (s *Service) ParseResume(ctx context.Context, text string) (*jsonrepair.Result, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, &ValidationError{Field: "text", Message: "resume text is required"}
	}
	if utf8.RuneCountInString(text) < ingestion.MinUploadRunes {
		return nil, &ValidationError{Field: "text", Message: fmt.Sprintf("resume text must be at least %d characters", ingestion.MinUploadRunes)}
	}

	prompt, err := BuildResumePrompt(ingestion.Clip(text, s.limit()))
	if err != nil {
		return nil, err
	}

	// Standard tier: structured output over the whole document
	content, err := s.Client.GenerateContent(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, &APICallError{Message: "failed to generate resume JSON", Cause: err}
	}

	res, err := jsonrepair.ParseResume(content)
	if err != nil {
		s.logger().Warn("resume output unparseable",
			zap.Int("input_runes", utf8.RuneCountInString(text)),
			zap.Int("output_bytes", len(content)))
		return nil, &ParseError{Message: "model output could not be recovered", Cause: err}
	}

	res.Record.Skills = NormalizeSkills(res.Record.Skills)
	s.logger().Info("resume parsed",
		zap.Stringer("strategy", res.Strategy),
		zap.Bool("complete", res.Complete),
		zap.Int("experience", len(res.Record.Experience)),
		zap.Int("skills", len(res.Record.Skills)))
	return &res, nil
}

// BuildResumePrompt combines the parsing system prompt with the résumé schema.
func BuildResumePrompt(text string) (string, error) {
	system, err := prompts.Get(prompts.ParsingFile, "system")
	if err != nil {
		return "", err
	}
	return system + "\n\n" + llm.BuildExtractionPrompt(llm.ResumeSchema(), text), nil
}

func (s *Service) limit() int {
	if s.Limit <= 0 {
		return DefaultTextLimit
	}
	return s.Limit
}

func (s *Service) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}
