package model

import "strings"

// PartOfSpeech is a universal POS tag as reported by the parser.
type PartOfSpeech string

const (
	POSNoun    PartOfSpeech = "NOUN"
	POSProper  PartOfSpeech = "PROPN"
	POSVerb    PartOfSpeech = "VERB"
	POSAux     PartOfSpeech = "AUX"
	POSAdj     PartOfSpeech = "ADJ"
	POSPronoun PartOfSpeech = "PRON"
)

// PronounLemma is the placeholder lemma the parser emits for personal pronouns.
const PronounLemma = "-PRON-"

// Token is a word of a parsed sentence.
type Token struct {
	// Index of the token in the sentence, starting at 0.
	Index int `json:"id"`
	// Index of the syntactic head. The root points to itself.
	Head  int          `json:"head"`
	Text  string       `json:"text"`
	Lemma string       `json:"lemma"`
	Pos   PartOfSpeech `json:"pos"`
	Dep   string       `json:"dep"`
}

// Sentence is a dependency-parsed sentence.
type Sentence struct {
	Text   string  `json:"text,omitempty"`
	Tokens []Token `json:"tokens"`
}

// Root returns the token governing the sentence, if any.
func (s Sentence) Root() (Token, bool) {
	for _, tok := range s.Tokens {
		if strings.EqualFold(tok.Dep, "ROOT") {
			return tok, true
		}
	}
	for _, tok := range s.Tokens {
		if tok.Head == tok.Index {
			return tok, true
		}
	}
	return Token{}, false
}

// ParseResult is the JSON document parser backends produce.
type ParseResult struct {
	Sentences []Sentence `json:"sentences"`
}
