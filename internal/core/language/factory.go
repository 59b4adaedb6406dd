package language

import (
	"context"
	"fmt"
	"strings"

	"github.com/agenthands/huric/internal/config"
	"github.com/agenthands/huric/internal/llm"
)

// FromConfig builds the parser and lemmatizer described by cfg. An LLM
// client is only created for the llm parser backend.
func FromConfig(ctx context.Context, cfg *config.Config) (*Utils, error) {
	var client llm.LLMClient
	if backend := strings.ToLower(cfg.Parser.Backend); backend == "" || backend == "llm" {
		c, err := llm.NewClient(ctx, cfg.LLM)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize LLM client: %w", err)
		}
		client = c
	}

	parser, err := NewParser(cfg.Parser, client)
	if err != nil {
		return nil, err
	}

	lemmatizer, err := NewLemmatizer(cfg.Lemmatizer)
	if err != nil {
		return nil, err
	}

	return NewUtils(parser, lemmatizer), nil
}
