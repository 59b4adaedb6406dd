package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

type LLMConfig struct {
	Provider string `toml:"provider" yaml:"provider"`
	Model    string `toml:"model" yaml:"model"`
	APIKey   string `toml:"api_key" yaml:"api_key"`
	BaseURL  string `toml:"base_url" yaml:"base_url"`
}

type MemgraphConfig struct {
	URI      string `toml:"uri" yaml:"uri"`
	User     string `toml:"user" yaml:"user"`
	Password string `toml:"password" yaml:"password"`
}

// ParserConfig selects the dependency parser backend.
// Backend is "llm" (default) or "http"; Prompt must contain one %s for the text.
type ParserConfig struct {
	Backend  string `toml:"backend" yaml:"backend"`
	URL      string `toml:"url" yaml:"url"`
	Language string `toml:"language" yaml:"language"`
	Prompt   string `toml:"prompt" yaml:"prompt"`
}

// LemmatizerConfig selects the lemmatizer. Backend is "golem" (default, the
// English dictionary backed by the rule tables) or "rules".
type LemmatizerConfig struct {
	Backend string `toml:"backend" yaml:"backend"`
	Tables  string `toml:"tables" yaml:"tables"`
}

type VocabularyConfig struct {
	Path string `toml:"path" yaml:"path"`
}

type GraphConfig struct {
	LocalNames bool `toml:"local_names" yaml:"local_names"`
}

type Config struct {
	LLM        LLMConfig        `toml:"llm" yaml:"llm"`
	Memgraph   MemgraphConfig   `toml:"memgraph" yaml:"memgraph"`
	Parser     ParserConfig     `toml:"parser" yaml:"parser"`
	Lemmatizer LemmatizerConfig `toml:"lemmatizer" yaml:"lemmatizer"`
	Vocabulary VocabularyConfig `toml:"vocabulary" yaml:"vocabulary"`
	Graph      GraphConfig      `toml:"graph" yaml:"graph"`
}

// Load reads a TOML config, or YAML when the file ends in .yaml/.yml.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	default:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse TOML: %w", err)
		}
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// Default returns the configuration used when no config file is present.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Parser.Backend == "" {
		c.Parser.Backend = "llm"
	}
	if c.Parser.Language == "" {
		c.Parser.Language = "en"
	}
	if c.Lemmatizer.Backend == "" {
		c.Lemmatizer.Backend = "golem"
	}
	if c.Vocabulary.Path == "" {
		c.Vocabulary.Path = "data/huric_alexa.json"
	}
	if c.Memgraph.URI == "" {
		c.Memgraph.URI = "bolt://localhost:7687"
	}
	// Default to Ollama if provider is empty
	if c.LLM.Provider == "" {
		c.LLM.Provider = "ollama"
		c.LLM.Model = "gpt-oss:latest"
		c.LLM.BaseURL = "http://localhost:11434"
	}
}

// ApplyEnv overrides config values with environment variables when set.
func (c *Config) ApplyEnv() {
	overrides := []struct {
		env    string
		target *string
	}{
		{"LLM_PROVIDER", &c.LLM.Provider},
		{"LLM_MODEL", &c.LLM.Model},
		{"LLM_API_KEY", &c.LLM.APIKey},
		{"LLM_BASE_URL", &c.LLM.BaseURL},
		{"MEMGRAPH_URI", &c.Memgraph.URI},
		{"MEMGRAPH_USER", &c.Memgraph.User},
		{"MEMGRAPH_PASSWORD", &c.Memgraph.Password},
		{"PARSER_BACKEND", &c.Parser.Backend},
		{"PARSER_URL", &c.Parser.URL},
		{"LEMMATIZER_BACKEND", &c.Lemmatizer.Backend},
		{"VOCABULARY_PATH", &c.Vocabulary.Path},
	}
	for _, o := range overrides {
		if v := os.Getenv(o.env); v != "" {
			*o.target = v
		}
	}
}
