package language

import (
	"context"

	"github.com/agenthands/huric/internal/core/model"
)

type MockLLMClient struct {
	Response string
	Err      error
	Prompt   string
}

func (m *MockLLMClient) Generate(ctx context.Context, prompt string) (string, error) {
	m.Prompt = prompt
	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}

// MockParser returns canned sentences for every text.
type MockParser struct {
	Sentences []model.Sentence
	Err       error
	Texts     []string
}

func (m *MockParser) Parse(ctx context.Context, text string) ([]model.Sentence, error) {
	m.Texts = append(m.Texts, text)
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Sentences, nil
}
