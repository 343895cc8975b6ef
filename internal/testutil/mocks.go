package testutil

import (
	"context"
	"fmt"
	"sync"
)

// MockProvider mocks a translation provider. It satisfies the
// translation.Provider interface.
type MockProvider struct {
	mu           sync.Mutex
	Translations map[string]string
	Errors       map[string]error
	Calls        []string

	// AvailableErr is returned from IsAvailable
	AvailableErr error
}

// NewMockProvider creates an empty mock provider
func NewMockProvider() *MockProvider {
	return &MockProvider{
		Translations: make(map[string]string),
		Errors:       make(map[string]error),
	}
}

// Translate returns a configured translation, error, or a default mock
// translation.
func (m *MockProvider) Translate(ctx context.Context, text string) (string, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, text)
	m.mu.Unlock()

	if err, ok := m.Errors[text]; ok {
		return "", err
	}

	if translation, ok := m.Translations[text]; ok {
		return translation, nil
	}

	// Default mock translation
	return fmt.Sprintf("mock translation of %s", text), nil
}

// Name returns the provider name
func (m *MockProvider) Name() string {
	return "mock"
}

// IsAvailable returns the configured availability error
func (m *MockProvider) IsAvailable() error {
	return m.AvailableErr
}

// CallCount returns how many translations were requested
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
