// Package llmtest provides a configurable llm.Client for tests.
package llmtest

import (
	"context"
	"sync"

	"github.com/jonathan/resume-builder/internal/llm"
	"github.com/jonathan/resume-builder/internal/types"
)

// MockClient implements llm.Client with overridable functions. Unset functions
// return empty results. Prompts are recorded in call order.
type MockClient struct {
	GenerateContentFunc func(ctx context.Context, prompt string, tier llm.ModelTier) (string, error)
	GenerateJSONFunc    func(ctx context.Context, prompt string, tier llm.ModelTier) (string, error)
	GenerateChatFunc    func(ctx context.Context, system string, history []types.ChatMessage, tier llm.ModelTier) (string, error)

	mu      sync.Mutex
	prompts []string
}

var _ llm.Client = (*MockClient)(nil)

// GenerateContent calls GenerateContentFunc when set
func (m *MockClient) GenerateContent(ctx context.Context, prompt string, tier llm.ModelTier) (string, error) {
	m.record(prompt)
	if m.GenerateContentFunc != nil {
		return m.GenerateContentFunc(ctx, prompt, tier)
	}
	return "", nil
}

// GenerateJSON calls GenerateJSONFunc when set
func (m *MockClient) GenerateJSON(ctx context.Context, prompt string, tier llm.ModelTier) (string, error) {
	m.record(prompt)
	if m.GenerateJSONFunc != nil {
		return m.GenerateJSONFunc(ctx, prompt, tier)
	}
	return "{}", nil
}

// GenerateChat calls GenerateChatFunc when set
func (m *MockClient) GenerateChat(ctx context.Context, system string, history []types.ChatMessage, tier llm.ModelTier) (string, error) {
	m.record(system)
	if m.GenerateChatFunc != nil {
		return m.GenerateChatFunc(ctx, system, history, tier)
	}
	return "", nil
}

// GetModel returns a fixed model name
func (m *MockClient) GetModel(_ llm.ModelTier) string {
	return "mock-model"
}

// Close is a no-op
func (m *MockClient) Close() error {
	return nil
}

// Prompts returns the prompts seen so far
func (m *MockClient) Prompts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.prompts...)
}

func (m *MockClient) record(prompt string) {
	m.mu.Lock()
	m.prompts = append(m.prompts, prompt)
	m.mu.Unlock()
}
