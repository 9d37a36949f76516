package search

import (
	"os"

	"gopkg.in/yaml.v3"
)

// SourcesConfig is the YAML config structure for the two URL sources.
type SourcesConfig struct {
	GoogleRSS GoogleRSSConfig `yaml:"google_rss"`
	NewsAPI   NewsAPIConfig   `yaml:"newsapi"`
}

type GoogleRSSConfig struct {
	BaseURL  string `yaml:"base_url"`
	Language string `yaml:"language"`
	Country  string `yaml:"country"`
}

type NewsAPIConfig struct {
	BaseURL  string `yaml:"base_url"`
	Language string `yaml:"language"`
	SortBy   string `yaml:"sort_by"`
}

// DefaultSources returns the built-in source endpoints, used when no
// sources file is present.
func DefaultSources() SourcesConfig {
	return SourcesConfig{
		GoogleRSS: GoogleRSSConfig{
			BaseURL:  "https://news.google.com/rss/search",
			Language: "en-US",
			Country:  "US",
		},
		NewsAPI: NewsAPIConfig{
			BaseURL:  "https://newsapi.org/v2/everything",
			Language: "en",
			SortBy:   "relevancy",
		},
	}
}

// LoadSources reads source endpoint settings from a YAML file. Unset fields
// fall back to the defaults.
func LoadSources(path string) (SourcesConfig, error) {
	cfg := DefaultSources()

	f, err := os.Open(path)
	if err != nil {
		return cfg, err
	}
	defer f.Close()

	var fileCfg SourcesConfig
	dec := yaml.NewDecoder(f)
	if err := dec.Decode(&fileCfg); err != nil {
		return cfg, err
	}

	if fileCfg.GoogleRSS.BaseURL != "" {
		cfg.GoogleRSS.BaseURL = fileCfg.GoogleRSS.BaseURL
	}
	if fileCfg.GoogleRSS.Language != "" {
		cfg.GoogleRSS.Language = fileCfg.GoogleRSS.Language
	}
	if fileCfg.GoogleRSS.Country != "" {
		cfg.GoogleRSS.Country = fileCfg.GoogleRSS.Country
	}
	if fileCfg.NewsAPI.BaseURL != "" {
		cfg.NewsAPI.BaseURL = fileCfg.NewsAPI.BaseURL
	}
	if fileCfg.NewsAPI.Language != "" {
		cfg.NewsAPI.Language = fileCfg.NewsAPI.Language
	}
	if fileCfg.NewsAPI.SortBy != "" {
		cfg.NewsAPI.SortBy = fileCfg.NewsAPI.SortBy
	}
	return cfg, nil
}
