package language

import (
	"fmt"
	"strings"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"

	"github.com/agenthands/huric/internal/config"
	"github.com/agenthands/huric/internal/core/model"
)

// dictionary is the part of *golem.Lemmatizer the DictionaryLemmatizer uses.
type dictionary interface {
	InDict(word string) bool
	Lemma(word string) string
}

// DictionaryLemmatizer looks words up in the golem English dictionary and
// hands words it does not know to Fallback. Dictionary entries carry no part
// of speech, so only nouns go to the dictionary; other parts of speech go
// straight to Fallback.
type DictionaryLemmatizer struct {
	dict     dictionary
	Fallback Lemmatizer
}

// NewDictionaryLemmatizer loads the golem English dictionary.
func NewDictionaryLemmatizer(fallback Lemmatizer) (*DictionaryLemmatizer, error) {
	dict, err := golem.New(en.New())
	if err != nil {
		return nil, fmt.Errorf("failed to load golem dictionary: %w", err)
	}
	return &DictionaryLemmatizer{dict: dict, Fallback: fallback}, nil
}

func (l *DictionaryLemmatizer) Lemmatize(word string, pos model.PartOfSpeech) string {
	w := strings.ToLower(strings.TrimSpace(word))
	if (pos == model.POSNoun || pos == model.POSProper) && w != "" && l.dict.InDict(w) {
		return l.dict.Lemma(w)
	}
	if l.Fallback != nil {
		return l.Fallback.Lemmatize(w, pos)
	}
	return w
}

// NewLemmatizer builds the lemmatizer selected by cfg.Backend: "golem"
// (dictionary, then rule tables) or "rules" (rule tables only).
func NewLemmatizer(cfg config.LemmatizerConfig) (Lemmatizer, error) {
	rules, err := NewRuleLemmatizer(cfg.Tables)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(cfg.Backend) {
	case "", "golem":
		return NewDictionaryLemmatizer(rules)
	case "rules":
		return rules, nil
	default:
		return nil, fmt.Errorf("unsupported lemmatizer backend: %s", cfg.Backend)
	}
}
