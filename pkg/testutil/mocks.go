package testutil

import (
	"context"
	"sync"

	"github.com/FrenchMajesty/polyglot-support/support"
)

// MockCompletionClient is a mock implementation of CompletionClient for testing
type MockCompletionClient struct {
	CompleteFunc func(ctx context.Context, messages []support.Message, maxTokens int) (string, error)

	mu            sync.Mutex
	CallCount     int
	LastMessages  []support.Message
	LastMaxTokens int
}

func (m *MockCompletionClient) Complete(ctx context.Context, messages []support.Message, maxTokens int) (string, error) {
	m.mu.Lock()
	m.CallCount++
	m.LastMessages = messages
	m.LastMaxTokens = maxTokens
	m.mu.Unlock()

	if m.CompleteFunc != nil {
		return m.CompleteFunc(ctx, messages, maxTokens)
	}
	// Default: a plausible short completion
	return "This is a mock completion response.", nil
}

// MockDetector is a mock implementation of LanguageDetector for testing
type MockDetector struct {
	Code string

	mu        sync.Mutex
	CallCount int
	LastText  string
}

func (m *MockDetector) Detect(text string) string {
	m.mu.Lock()
	m.CallCount++
	m.LastText = text
	m.mu.Unlock()

	if m.Code == "" {
		return "en"
	}
	return m.Code
}
