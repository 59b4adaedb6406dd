package vocabulary

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/tidwall/gjson"
)

var (
	ErrUnknownCategory = errors.New("unknown category")
	ErrInvalidModel    = errors.New("invalid interaction model")
)

const typesPath = "interactionModel.languageModel.types"

// Vocabulary holds the frame-element values declared in an interaction
// model: category name -> ordered value names. It is read-only after
// construction.
type Vocabulary struct {
	values map[string][]string
}

// Load reads the interaction model at path.
func Load(path string) (*Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read vocabulary file '%s': %w", path, err)
	}
	v, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load vocabulary '%s': %w", path, err)
	}
	return v, nil
}

// Parse builds a Vocabulary from an interaction model document.
func Parse(data []byte) (*Vocabulary, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: malformed JSON", ErrInvalidModel)
	}

	types := gjson.GetBytes(data, typesPath)
	if !types.IsArray() {
		return nil, fmt.Errorf("%w: missing %s", ErrInvalidModel, typesPath)
	}

	v := &Vocabulary{values: make(map[string][]string)}
	for i, t := range types.Array() {
		name := t.Get("name")
		if name.Type != gjson.String {
			return nil, fmt.Errorf("%w: type %d has no name", ErrInvalidModel, i)
		}
		entries := t.Get("values")
		if !entries.IsArray() {
			return nil, fmt.Errorf("%w: type '%s' has no values", ErrInvalidModel, name.Str)
		}

		values := make([]string, 0, len(entries.Array()))
		for j, el := range entries.Array() {
			value := el.Get("name.value")
			if value.Type != gjson.String {
				return nil, fmt.Errorf("%w: value %d of type '%s' has no name.value", ErrInvalidModel, j, name.Str)
			}
			values = append(values, value.Str)
		}
		v.values[name.Str] = values
	}
	return v, nil
}

// Values returns the declared values of category, in declaration order.
func (v *Vocabulary) Values(category string) ([]string, error) {
	values, ok := v.values[category]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCategory, category)
	}
	return append([]string(nil), values...), nil
}

// Categories returns the declared category names, sorted.
func (v *Vocabulary) Categories() []string {
	names := make([]string, 0, len(v.values))
	for name := range v.values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
