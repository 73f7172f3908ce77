package config

import (
	"fmt"
	"time"
)

// Config holds the complete application configuration
type Config struct {
	Version string        `yaml:"version" json:"version"`
	Display DisplayConfig `yaml:"display" json:"display"`
	Output  OutputConfig  `yaml:"output" json:"output"`
	Input   InputConfig   `yaml:"input" json:"input"`
	Watch   WatchConfig   `yaml:"watch" json:"watch"`
}

// DisplayConfig configures the derived statistics and the live view
type DisplayConfig struct {
	ExcludeSpaces  bool   `yaml:"exclude_spaces" json:"exclude_spaces"`     // total characters without whitespace
	VisibleLetters int    `yaml:"visible_letters" json:"visible_letters"`   // density rows before "see more"
	WordsPerMinute int    `yaml:"words_per_minute" json:"words_per_minute"` // reading speed
	Theme          string `yaml:"theme" json:"theme"`                       // auto|light|dark
	CharLimit      int    `yaml:"char_limit" json:"char_limit"`             // live editor limit, 0 disables
}

// OutputConfig configures output formatting
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format" json:"default_format"` // text|json|markdown|csv|prompt
	ColorMode     string `yaml:"color_mode" json:"color_mode"`         // auto|always|never
	Verbose       bool   `yaml:"verbose" json:"verbose"`
}

// InputConfig configures how text is read
type InputConfig struct {
	Mode      string `yaml:"mode" json:"mode"`             // plain|log
	LogFormat string `yaml:"log_format" json:"log_format"` // auto|json|logfmt|text
	MaxBytes  int64  `yaml:"max_bytes" json:"max_bytes"`   // read limit in bytes
}

// WatchConfig configures file watching
type WatchConfig struct {
	Debounce time.Duration `yaml:"debounce" json:"debounce"`
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Version: "1.0",
		Display: DisplayConfig{
			ExcludeSpaces:  false,
			VisibleLetters: 5,
			WordsPerMinute: 200,
			Theme:          "auto",
			CharLimit:      0,
		},
		Output: OutputConfig{
			DefaultFormat: "text",
			ColorMode:     "auto",
			Verbose:       false,
		},
		Input: InputConfig{
			Mode:      "plain",
			LogFormat: "auto",
			MaxBytes:  10 * 1024 * 1024, // 10MB
		},
		Watch: WatchConfig{
			Debounce: 250 * time.Millisecond,
		},
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.validateDisplayConfig(); err != nil {
		return err
	}
	if err := c.validateOutputConfig(); err != nil {
		return err
	}
	if err := c.validateInputConfig(); err != nil {
		return err
	}
	if c.Watch.Debounce < 0 {
		return fmt.Errorf("debounce must be non-negative")
	}
	return nil
}

func (c *Config) validateDisplayConfig() error {
	if c.Display.VisibleLetters < 1 || c.Display.VisibleLetters > 26 {
		return fmt.Errorf("visible_letters must be between 1 and 26")
	}
	if c.Display.WordsPerMinute < 1 {
		return fmt.Errorf("words_per_minute must be greater than 0")
	}
	if c.Display.CharLimit < 0 {
		return fmt.Errorf("char_limit must be non-negative")
	}
	if c.Display.Theme != "" {
		validThemes := map[string]bool{
			"auto":  true,
			"light": true,
			"dark":  true,
		}
		if !validThemes[c.Display.Theme] {
			return fmt.Errorf("invalid theme: %s (must be one of: auto, light, dark)", c.Display.Theme)
		}
	}
	return nil
}

func (c *Config) validateOutputConfig() error {
	if c.Output.DefaultFormat != "" {
		validFormats := map[string]bool{
			"json":     true,
			"text":     true,
			"markdown": true,
			"csv":      true,
			"prompt":   true,
		}
		if !validFormats[c.Output.DefaultFormat] {
			return fmt.Errorf("invalid output format: %s (must be one of: json, text, markdown, csv, prompt)", c.Output.DefaultFormat)
		}
	}
	if c.Output.ColorMode != "" {
		validColorModes := map[string]bool{
			"auto":   true,
			"always": true,
			"never":  true,
		}
		if !validColorModes[c.Output.ColorMode] {
			return fmt.Errorf("invalid color mode: %s (must be one of: auto, always, never)", c.Output.ColorMode)
		}
	}
	return nil
}

func (c *Config) validateInputConfig() error {
	if c.Input.Mode != "" && c.Input.Mode != "plain" && c.Input.Mode != "log" {
		return fmt.Errorf("invalid input mode: %s (must be one of: plain, log)", c.Input.Mode)
	}
	if c.Input.LogFormat != "" {
		validLogFormats := map[string]bool{
			"auto":   true,
			"json":   true,
			"logfmt": true,
			"text":   true,
		}
		if !validLogFormats[c.Input.LogFormat] {
			return fmt.Errorf("invalid log format: %s (must be one of: auto, json, logfmt, text)", c.Input.LogFormat)
		}
	}
	if c.Input.MaxBytes < 0 {
		return fmt.Errorf("max_bytes must be non-negative")
	}
	return nil
}
