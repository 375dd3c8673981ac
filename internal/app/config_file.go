package app

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	yaml "gopkg.in/yaml.v3"

	"github.com/hyperifyio/quizextract/internal/question"
)

// FileConfig represents the single-file configuration schema.
// Nested sections improve readability and map naturally to flags/env.
type FileConfig struct {
	InputDir string   `yaml:"inputDir" json:"inputDir"`
	Inputs   []string `yaml:"inputs" json:"inputs"`

	Output struct {
		JSON  string `yaml:"json" json:"json"`
		PDF   string `yaml:"pdf" json:"pdf"`
		Title string `yaml:"title" json:"title"`
	} `yaml:"output" json:"output"`

	Quiz struct {
		Size  int    `yaml:"size" json:"size"`
		Score string `yaml:"score" json:"score"`
		Seed  int64  `yaml:"seed" json:"seed"`
	} `yaml:"quiz" json:"quiz"`

	Extract struct {
		Dedup       string `yaml:"dedup" json:"dedup"`
		Concurrency int    `yaml:"concurrency" json:"concurrency"`
		MinTotal    int    `yaml:"minTotal" json:"minTotal"`
	} `yaml:"extract" json:"extract"`

	LLM struct {
		Enable  bool   `yaml:"enable" json:"enable"`
		BaseURL string `yaml:"base" json:"base"`
		Model   string `yaml:"model" json:"model"`
		APIKey  string `yaml:"key" json:"key"`
	} `yaml:"llm" json:"llm"`

	Cache struct {
		Dir string `yaml:"dir" json:"dir"`
	} `yaml:"cache" json:"cache"`

	UserAgent string `yaml:"userAgent" json:"userAgent"`
	DryRun    bool   `yaml:"dryRun" json:"dryRun"`
	Verbose   bool   `yaml:"verbose" json:"verbose"`
}

// LoadConfigFile reads YAML or JSON into FileConfig.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse json: %w", err)
		}
	default:
		// Try YAML then JSON
		if err := yaml.Unmarshal(b, &fc); err != nil {
			if jerr := json.Unmarshal(b, &fc); jerr != nil {
				return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
			}
		}
	}
	return fc, nil
}

// ApplyFileConfig overlays values from FileConfig into cfg for any fields that
// are currently unset/zero in cfg. Flags should already have been parsed; this
// function lets file config supply defaults while preserving explicit flags.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
	if cfg == nil {
		return
	}
	if cfg.InputDir == "" && fc.InputDir != "" {
		cfg.InputDir = fc.InputDir
	}
	if len(cfg.Inputs) == 0 && len(fc.Inputs) > 0 {
		cfg.Inputs = append([]string{}, fc.Inputs...)
	}
	// Defaults from flag parsing that file config may override when flags
	// were left at their defaults.
	const (
		outputJSONDefault = "questions.json"
		quizTitleDefault  = "Practice Quiz"
	)
	if (cfg.OutputJSON == "" || cfg.OutputJSON == outputJSONDefault) && fc.Output.JSON != "" {
		cfg.OutputJSON = fc.Output.JSON
	}
	if cfg.OutputPDF == "" && fc.Output.PDF != "" {
		cfg.OutputPDF = fc.Output.PDF
	}
	if (cfg.QuizTitle == "" || cfg.QuizTitle == quizTitleDefault) && fc.Output.Title != "" {
		cfg.QuizTitle = fc.Output.Title
	}
	if cfg.QuizSize == 0 && fc.Quiz.Size > 0 {
		cfg.QuizSize = fc.Quiz.Size
	}
	if cfg.ScorePath == "" && fc.Quiz.Score != "" {
		cfg.ScorePath = fc.Quiz.Score
	}
	if cfg.Seed == 0 && fc.Quiz.Seed != 0 {
		cfg.Seed = fc.Quiz.Seed
	}
	if cfg.DedupPolicy == "" && fc.Extract.Dedup != "" {
		cfg.DedupPolicy = fc.Extract.Dedup
	}
	if cfg.Concurrency == 0 && fc.Extract.Concurrency > 0 {
		cfg.Concurrency = fc.Extract.Concurrency
	}
	if cfg.MinTotal == 0 && fc.Extract.MinTotal > 0 {
		cfg.MinTotal = fc.Extract.MinTotal
	}
	if !cfg.Explain && fc.LLM.Enable {
		cfg.Explain = true
	}
	if cfg.LLMBaseURL == "" && fc.LLM.BaseURL != "" {
		cfg.LLMBaseURL = fc.LLM.BaseURL
	}
	if cfg.LLMModel == "" && fc.LLM.Model != "" {
		cfg.LLMModel = fc.LLM.Model
	}
	if cfg.LLMAPIKey == "" && fc.LLM.APIKey != "" {
		cfg.LLMAPIKey = fc.LLM.APIKey
	}
	if cfg.CacheDir == "" && fc.Cache.Dir != "" {
		cfg.CacheDir = fc.Cache.Dir
	}
	if cfg.UserAgent == "" && fc.UserAgent != "" {
		cfg.UserAgent = fc.UserAgent
	}
	if !cfg.DryRun && fc.DryRun {
		cfg.DryRun = true
	}
	if !cfg.Verbose && fc.Verbose {
		cfg.Verbose = true
	}
}

func parsePolicy(s string) (question.DedupPolicy, error) {
	p, err := question.ParseDedupPolicy(s)
	if err != nil {
		return p, fmt.Errorf("config: %w", err)
	}
	return p, nil
}
