package vocabulary

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const interactionModel = `{
  "interactionModel": {
    "languageModel": {
      "invocationName": "robot",
      "types": [
        {
          "name": "Theme",
          "values": [
            {"name": {"value": "cup"}},
            {"name": {"value": "book", "synonyms": ["novel"]}},
            {"name": {"value": "bottle"}}
          ]
        },
        {
          "name": "Goal",
          "values": [
            {"name": {"value": "kitchen"}},
            {"name": {"value": "table"}}
          ]
        },
        {"name": "Empty", "values": []}
      ]
    }
  }
}`

func writeModel(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "huric_alexa.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadValues(t *testing.T) {
	v, err := Load(writeModel(t, interactionModel))
	require.NoError(t, err)

	values, err := v.Values("Theme")
	require.NoError(t, err)
	assert.Equal(t, []string{"cup", "book", "bottle"}, values)

	values, err = v.Values("Goal")
	require.NoError(t, err)
	assert.Equal(t, []string{"kitchen", "table"}, values)

	values, err = v.Values("Empty")
	require.NoError(t, err)
	assert.Empty(t, values)
}

func TestValuesUnknownCategory(t *testing.T) {
	v, err := Parse([]byte(interactionModel))
	require.NoError(t, err)

	values, err := v.Values("UnknownCategory")
	assert.ErrorIs(t, err, ErrUnknownCategory)
	assert.Nil(t, values)
}

func TestValuesReturnsCopy(t *testing.T) {
	v, err := Parse([]byte(interactionModel))
	require.NoError(t, err)

	values, _ := v.Values("Theme")
	values[0] = "mug"

	again, _ := v.Values("Theme")
	assert.Equal(t, "cup", again[0])
}

func TestCategories(t *testing.T) {
	v, err := Parse([]byte(interactionModel))
	require.NoError(t, err)
	assert.Equal(t, []string{"Empty", "Goal", "Theme"}, v.Categories())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseInvalid(t *testing.T) {
	_, err := Parse([]byte(`{"interactionModel": `))
	assert.ErrorIs(t, err, ErrInvalidModel)

	_, err = Parse([]byte(`{"interactionModel": {"languageModel": {}}}`))
	assert.ErrorIs(t, err, ErrInvalidModel)
}

func TestParseMalformedEntries(t *testing.T) {
	wrap := func(types string) []byte {
		return []byte(`{"interactionModel": {"languageModel": {"types": ` + types + `}}}`)
	}

	tests := map[string]string{
		"type without name":   `[{"values": [{"name": {"value": "cup"}}]}]`,
		"type without values": `[{"name": "NoValues"}]`,
		"values not a list":   `[{"name": "Theme", "values": {"name": {"value": "cup"}}}]`,
		"value without name":  `[{"name": "Theme", "values": [{"synonyms": ["x"]}]}]`,
		"value without value": `[{"name": "Theme", "values": [{"name": {}}]}]`,
		"one bad among good":  `[{"name": "Goal", "values": [{"name": {"value": "kitchen"}}]}, {"name": "Theme", "values": [{"name": {"value": "cup"}}, {"name": {}}]}]`,
	}
	for name, types := range tests {
		t.Run(name, func(t *testing.T) {
			v, err := Parse(wrap(types))
			assert.ErrorIs(t, err, ErrInvalidModel)
			assert.Nil(t, v)
		})
	}
}
