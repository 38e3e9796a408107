package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"storesearch/internal/recent"
	"storesearch/internal/suggest"
)

// YAMLConfig represents the structure of the search.yaml file.
// Lists are easier to manage in YAML than in env vars. The keyword and
// related-category tables are compiled in and cannot be set here.
type YAMLConfig struct {
	PopularSearches []string          `yaml:"popular_searches"`
	Suggestions     SuggestionsConfig `yaml:"suggestions"`
	Recent          RecentConfig      `yaml:"recent"`
	Stats           StatsConfig       `yaml:"stats"`
}

// SuggestionsConfig controls the search-box suggestions.
type SuggestionsConfig struct {
	Limit int `yaml:"limit"`
}

// RecentConfig controls the recent searches list.
type RecentConfig struct {
	Max int `yaml:"max"`
}

// StatsConfig controls asynchronous statistics recording.
type StatsConfig struct {
	Workers int `yaml:"workers"`
}

// LoadYAMLConfig loads the YAML configuration file at path.
// A missing file yields the defaults.
func LoadYAMLConfig(path string) (*YAMLConfig, error) {
	cfg := &YAMLConfig{}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *YAMLConfig) applyDefaults() {
	if len(c.PopularSearches) == 0 {
		c.PopularSearches = append([]string(nil), suggest.DefaultPopular...)
	}
	if c.Suggestions.Limit <= 0 {
		c.Suggestions.Limit = suggest.DefaultLimit
	}
	if c.Recent.Max <= 0 {
		c.Recent.Max = recent.DefaultMax
	}
	if c.Stats.Workers <= 0 {
		c.Stats.Workers = 4
	}
}
