package language

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"unicode"

	"github.com/agenthands/huric/internal/core/model"
)

// Lemmatizer returns the dictionary form of a word for a part of speech.
type Lemmatizer interface {
	Lemmatize(word string, pos model.PartOfSpeech) string
}

//go:embed tables.json
var defaultTables []byte

// rule rewrites a suffix: word[:len-len(Old)] + New.
type rule struct {
	Old string
	New string
}

type posTable struct {
	index      map[string]struct{}
	exceptions map[string]string
	rules      []rule
}

type tablesFile map[model.PartOfSpeech]struct {
	Index      []string          `json:"index"`
	Exceptions map[string]string `json:"exceptions"`
	Rules      [][2]string       `json:"rules"`
}

// RuleLemmatizer is a table lemmatizer: exceptions first, then suffix rules
// whose result is a known base form, then the first rule that applies.
type RuleLemmatizer struct {
	tables map[model.PartOfSpeech]*posTable
}

// NewRuleLemmatizer loads the embedded English tables and, when extraPath is
// set, merges the tables found in that JSON file on top of them.
func NewRuleLemmatizer(extraPath string) (*RuleLemmatizer, error) {
	l := &RuleLemmatizer{tables: make(map[model.PartOfSpeech]*posTable)}
	if err := l.merge(defaultTables); err != nil {
		return nil, fmt.Errorf("failed to load default lemma tables: %w", err)
	}

	if extraPath != "" {
		data, err := os.ReadFile(extraPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read lemma tables '%s': %w", extraPath, err)
		}
		if err := l.merge(data); err != nil {
			return nil, fmt.Errorf("failed to load lemma tables '%s': %w", extraPath, err)
		}
	}

	for _, t := range l.tables {
		// longest suffix first so a fallback form strips as much as it can
		sort.SliceStable(t.rules, func(i, j int) bool {
			return len(t.rules[i].Old) > len(t.rules[j].Old)
		})
	}
	return l, nil
}

func (l *RuleLemmatizer) merge(data []byte) error {
	var file tablesFile
	if err := json.Unmarshal(data, &file); err != nil {
		return err
	}

	for pos, src := range file {
		t, ok := l.tables[pos]
		if !ok {
			t = &posTable{index: make(map[string]struct{}), exceptions: make(map[string]string)}
			l.tables[pos] = t
		}
		for _, w := range src.Index {
			t.index[strings.ToLower(w)] = struct{}{}
		}
		for form, lemma := range src.Exceptions {
			t.exceptions[strings.ToLower(form)] = lemma
		}
		for _, r := range src.Rules {
			t.rules = append(t.rules, rule{Old: r[0], New: r[1]})
		}
	}
	return nil
}

func (l *RuleLemmatizer) Lemmatize(word string, pos model.PartOfSpeech) string {
	w := strings.ToLower(strings.TrimSpace(word))
	if pos == model.POSProper {
		pos = model.POSNoun
	}
	if pos == model.POSAux {
		pos = model.POSVerb
	}

	t, ok := l.tables[pos]
	if !ok || w == "" {
		return w
	}
	if lemma, ok := t.exceptions[w]; ok {
		return lemma
	}
	if _, ok := t.index[w]; ok {
		return w
	}

	var fallback string
	for _, r := range t.rules {
		if !strings.HasSuffix(w, r.Old) {
			continue
		}
		form := w[:len(w)-len(r.Old)] + r.New
		if form == "" {
			continue
		}
		if _, known := t.index[form]; known || !isAlpha(form) {
			return form
		}
		if fallback == "" {
			fallback = form
		}
	}
	if fallback != "" {
		return fallback
	}
	return w
}

func isAlpha(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
