package config

import (
	"fmt"
	"os"
)

type Config struct {
	Summary     SummaryConfig     `yaml:"summary"`
	Gemini      GeminiConfig      `yaml:"gemini"`
	Paths       PathsConfig       `yaml:"paths"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
	Output      OutputConfig      `yaml:"output"`
}

type SummaryConfig struct {
	Method              string  `yaml:"method"`
	MaxLength           int     `yaml:"max_length"`
	MinLength           int     `yaml:"min_length"`
	Ratio               float64 `yaml:"ratio"`
	SentenceCount       int     `yaml:"sentence_count"`
	HybridSentenceCount int     `yaml:"hybrid_sentence_count"`
	MaxChunkChars       int     `yaml:"max_chunk_chars"`
}

type GeminiConfig struct {
	Model  string `yaml:"model"`
	APIKey string `yaml:"api_key"`
}

type PathsConfig struct {
	Input      string `yaml:"input"`
	Processing string `yaml:"processing"`
	Output     string `yaml:"output"`
	Archived   string `yaml:"archived"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

// OutputConfig controls summary document rendering.
type OutputConfig struct {
	FontName    string  `yaml:"font_name"`
	FontSize    uint64  `yaml:"font_size"`
	Margin      int     `yaml:"margin"`
	LineSpacing float64 `yaml:"line_spacing"`
}

func (c *Config) Validate() error {
	if c.Paths.Input == "" {
		return fmt.Errorf("paths.input is required")
	}
	if c.Paths.Output == "" {
		return fmt.Errorf("paths.output is required")
	}

	if c.Gemini.APIKey == "" {
		c.Gemini.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if c.Gemini.APIKey == "" {
		return fmt.Errorf("gemini.api_key or GEMINI_API_KEY is required")
	}

	if c.Paths.Processing == "" {
		c.Paths.Processing = "data/processing"
	}
	if c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.Summary.Method == "" {
		c.Summary.Method = "hybrid"
	}
	if c.Summary.MaxLength == 0 {
		c.Summary.MaxLength = 500
	}
	if c.Summary.MinLength == 0 {
		c.Summary.MinLength = 100
	}
	if c.Summary.Ratio == 0 {
		c.Summary.Ratio = 0.3
	}
	if c.Summary.SentenceCount == 0 {
		c.Summary.SentenceCount = 5
	}
	if c.Summary.HybridSentenceCount == 0 {
		c.Summary.HybridSentenceCount = 10
	}
	if c.Summary.MaxChunkChars == 0 {
		c.Summary.MaxChunkChars = 3000
	}
	if c.Output.FontName == "" {
		c.Output.FontName = "Times New Roman"
	}
	// Sizes below 6 are unusable and would underflow derived run sizes.
	if c.Output.FontSize < 6 {
		c.Output.FontSize = 13
	}
	if c.Output.Margin == 0 {
		c.Output.Margin = 72
	}
	if c.Output.LineSpacing == 0 {
		c.Output.LineSpacing = 1.2
	}

	return nil
}
