package language

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenthands/huric/internal/config"
	"github.com/agenthands/huric/internal/core/model"
)

const parseJSON = `{"sentences": [{"text": "Bring me the cup", "tokens": [
	{"id": 0, "text": "Bring", "lemma": "bring", "pos": "VERB", "dep": "ROOT", "head": 0},
	{"id": 1, "text": "me", "lemma": "-PRON-", "pos": "PRON", "dep": "dative", "head": 0},
	{"id": 2, "text": "the", "lemma": "the", "pos": "DET", "dep": "det", "head": 3},
	{"id": 3, "text": "cup", "lemma": "cup", "pos": "NOUN", "dep": "dobj", "head": 0}
]}]}`

func TestLLMParser(t *testing.T) {
	mockLLM := &MockLLMClient{Response: "```json\n" + parseJSON + "\n```"}
	parser := NewLLMParser(mockLLM, "")

	sentences, err := parser.Parse(context.Background(), "Bring me the cup")
	require.NoError(t, err)
	require.Len(t, sentences, 1)
	assert.Len(t, sentences[0].Tokens, 4)

	root, ok := sentences[0].Root()
	require.True(t, ok)
	assert.Equal(t, "Bring", root.Text)
	assert.Equal(t, model.POSVerb, root.Pos)
	assert.Contains(t, mockLLM.Prompt, "Bring me the cup")
}

func TestLLMParserCustomPrompt(t *testing.T) {
	mockLLM := &MockLLMClient{Response: parseJSON}
	parser := NewLLMParser(mockLLM, "parse: %s")

	_, err := parser.Parse(context.Background(), "Bring me the cup")
	require.NoError(t, err)
	assert.Equal(t, "parse: Bring me the cup", mockLLM.Prompt)
}

func TestLLMParserErrors(t *testing.T) {
	parser := NewLLMParser(&MockLLMClient{Err: errors.New("rate limited")}, "")
	_, err := parser.Parse(context.Background(), "x")
	assert.ErrorContains(t, err, "rate limited")

	parser = NewLLMParser(&MockLLMClient{Response: "I cannot parse that"}, "")
	_, err = parser.Parse(context.Background(), "x")
	assert.Error(t, err)
}

func TestHTTPParser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		var req parseRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Bring me the cup", req.Text)
		assert.Equal(t, "en_core_web_sm", req.Model)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(parseJSON))
	}))
	defer srv.Close()

	parser := NewHTTPParser(srv.URL, "en_core_web_sm")
	sentences, err := parser.Parse(context.Background(), "Bring me the cup")
	require.NoError(t, err)
	require.Len(t, sentences, 1)
	assert.Equal(t, "cup", sentences[0].Tokens[3].Lemma)
}

func TestHTTPParserStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not loaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := NewHTTPParser(srv.URL, "").Parse(context.Background(), "x")
	assert.ErrorContains(t, err, "503")
	assert.ErrorContains(t, err, "model not loaded")
}

func TestNewParser(t *testing.T) {
	p, err := NewParser(config.ParserConfig{Backend: "llm"}, &MockLLMClient{})
	require.NoError(t, err)
	assert.IsType(t, &LLMParser{}, p)

	p, err = NewParser(config.ParserConfig{Backend: "HTTP", URL: "http://localhost:8000/parse"}, nil)
	require.NoError(t, err)
	assert.IsType(t, &HTTPParser{}, p)

	_, err = NewParser(config.ParserConfig{Backend: "llm"}, nil)
	assert.Error(t, err)

	_, err = NewParser(config.ParserConfig{Backend: "http"}, nil)
	assert.Error(t, err)

	_, err = NewParser(config.ParserConfig{Backend: "stanza"}, nil)
	assert.EqualError(t, err, "unsupported parser backend: stanza")
}

func TestSentenceRootFallsBackToSelfHead(t *testing.T) {
	s := model.Sentence{Tokens: []model.Token{
		{Index: 0, Head: 1, Text: "dogs"},
		{Index: 1, Head: 1, Text: "bark"},
	}}
	root, ok := s.Root()
	require.True(t, ok)
	assert.Equal(t, "bark", root.Text)
}

func TestFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Parser.Backend = "http"
	cfg.Parser.URL = "http://localhost:8000/parse"

	u, err := FromConfig(context.Background(), cfg)
	require.NoError(t, err)
	assert.IsType(t, &HTTPParser{}, u.Parser)
	assert.IsType(t, &DictionaryLemmatizer{}, u.Lemmatizer)
	assert.Equal(t, "cup", u.Lemmatize("cups"))

	cfg.Lemmatizer.Backend = "rules"
	u, err = FromConfig(context.Background(), cfg)
	require.NoError(t, err)
	assert.IsType(t, &RuleLemmatizer{}, u.Lemmatizer)

	cfg = config.Default()
	u, err = FromConfig(context.Background(), cfg)
	require.NoError(t, err)
	assert.IsType(t, &LLMParser{}, u.Parser)

	cfg.LLM.Provider = "watson"
	_, err = FromConfig(context.Background(), cfg)
	assert.ErrorContains(t, err, "unsupported llm provider")
}
