package language

import (
	"context"
	"errors"
	"fmt"

	"github.com/agenthands/huric/internal/core/model"
)

var (
	ErrNoSentence = errors.New("text yields no sentence")
	ErrNoRoot     = errors.New("sentence has no root token")
)

const (
	ConceptPerson = "person"
	ConceptThing  = "thing"
)

// pronounConcepts maps personal pronouns to the concept that replaces the
// parser's placeholder lemma.
var pronounConcepts = map[string]string{
	"I":    ConceptPerson,
	"me":   ConceptPerson,
	"you":  ConceptPerson,
	"he":   ConceptPerson,
	"she":  ConceptPerson,
	"we":   ConceptPerson,
	"us":   ConceptPerson,
	"they": ConceptPerson,
	"them": ConceptPerson,
	"it":   ConceptThing,
}

// Utils extracts semantic heads and lemmas. Parser and Lemmatizer are loaded
// once and shared by every call.
type Utils struct {
	Parser     Parser
	Lemmatizer Lemmatizer
}

func NewUtils(parser Parser, lemmatizer Lemmatizer) *Utils {
	return &Utils{
		Parser:     parser,
		Lemmatizer: lemmatizer,
	}
}

// SemanticHead returns the surface form of the first sentence's root.
func (u *Utils) SemanticHead(ctx context.Context, text string) (string, error) {
	head, err := u.head(ctx, text)
	if err != nil {
		return "", err
	}
	return head.Text, nil
}

// Lemmatize returns the noun lemma of word.
func (u *Utils) Lemmatize(word string) string {
	return u.Lemmatizer.Lemmatize(word, model.POSNoun)
}

// SemanticHeadLemmatize returns the lemma of the first sentence's root. A
// pronoun placeholder lemma is replaced by "person" or "thing" depending on
// the pronoun; other placeholders are returned as is.
func (u *Utils) SemanticHeadLemmatize(ctx context.Context, text string) (string, error) {
	head, err := u.head(ctx, text)
	if err != nil {
		return "", err
	}

	lemma := head.Lemma
	if lemma == model.PronounLemma {
		if concept, ok := pronounConcepts[head.Text]; ok {
			lemma = concept
		}
	}
	return lemma, nil
}

func (u *Utils) head(ctx context.Context, text string) (model.Token, error) {
	sentences, err := u.Parser.Parse(ctx, text)
	if err != nil {
		return model.Token{}, fmt.Errorf("failed to parse text: %w", err)
	}
	if len(sentences) == 0 {
		return model.Token{}, ErrNoSentence
	}

	root, ok := sentences[0].Root()
	if !ok {
		return model.Token{}, ErrNoRoot
	}
	return root, nil
}
