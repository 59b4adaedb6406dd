package language

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/agenthands/huric/internal/config"
	"github.com/agenthands/huric/internal/core/common"
	"github.com/agenthands/huric/internal/core/model"
	"github.com/agenthands/huric/internal/llm"
)

// Parser splits text into dependency-parsed sentences.
type Parser interface {
	Parse(ctx context.Context, text string) ([]model.Sentence, error)
}

const defaultParsePrompt = `Split the text below into sentences and give the dependency parse of each one.
Use universal POS tags and the English dependency labels; the main verb of each sentence has dep "ROOT" and is its own head.
Token ids start at 0 in every sentence. Give lowercase lemmas, except for personal pronouns whose lemma is "-PRON-".

Return JSON shaped like:
{"sentences": [{"text": "I am here", "tokens": [
  {"id": 0, "text": "I", "lemma": "-PRON-", "pos": "PRON", "dep": "nsubj", "head": 1},
  {"id": 1, "text": "am", "lemma": "be", "pos": "AUX", "dep": "ROOT", "head": 1},
  {"id": 2, "text": "here", "lemma": "here", "pos": "ADV", "dep": "advmod", "head": 1}
]}]}

Text:
%s`

// LLMParser asks a language model for the dependency parse.
type LLMParser struct {
	LLM    llm.LLMClient
	Prompt string
}

func NewLLMParser(client llm.LLMClient, prompt string) *LLMParser {
	if prompt == "" {
		prompt = defaultParsePrompt
	}
	return &LLMParser{LLM: client, Prompt: prompt}
}

func (p *LLMParser) Parse(ctx context.Context, text string) ([]model.Sentence, error) {
	response, err := p.LLM.Generate(ctx, fmt.Sprintf(p.Prompt, text))
	if err != nil {
		return nil, fmt.Errorf("failed to generate parse: %w", err)
	}

	result, err := common.ParseJSON[model.ParseResult](response)
	if err != nil {
		return nil, fmt.Errorf("failed to parse dependency tree: %w", err)
	}
	return result.Sentences, nil
}

// HTTPParser calls a spaCy-style parsing service that answers
// POST {"text": ..., "model": ...} with a model.ParseResult document.
type HTTPParser struct {
	URL    string
	Model  string
	Client *http.Client
}

func NewHTTPParser(url, model string) *HTTPParser {
	return &HTTPParser{
		URL:    url,
		Model:  model,
		Client: &http.Client{Timeout: 30 * time.Second},
	}
}

type parseRequest struct {
	Text  string `json:"text"`
	Model string `json:"model,omitempty"`
}

func (p *HTTPParser) Parse(ctx context.Context, text string) ([]model.Sentence, error) {
	body, err := json.Marshal(parseRequest{Text: text, Model: p.Model})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.URL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create parse request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call parser: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read parser response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("parser returned %d: %s", resp.StatusCode, strings.TrimSpace(string(data)))
	}

	var result model.ParseResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal parse result: %w", err)
	}
	return result.Sentences, nil
}

// NewParser builds the backend selected in cfg. client is only used by the
// llm backend.
func NewParser(cfg config.ParserConfig, client llm.LLMClient) (Parser, error) {
	switch strings.ToLower(cfg.Backend) {
	case "", "llm":
		if client == nil {
			return nil, fmt.Errorf("llm parser backend needs an llm client")
		}
		return NewLLMParser(client, cfg.Prompt), nil
	case "http":
		if cfg.URL == "" {
			return nil, fmt.Errorf("http parser backend needs a url")
		}
		return NewHTTPParser(cfg.URL, cfg.Language), nil
	default:
		return nil, fmt.Errorf("unsupported parser backend: %s", cfg.Backend)
	}
}
