package config

import (
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Version != "1.0" {
		t.Errorf("Expected version 1.0, got %s", cfg.Version)
	}
	if cfg.Display.VisibleLetters != 5 {
		t.Errorf("Expected 5 visible letters, got %d", cfg.Display.VisibleLetters)
	}
	if cfg.Display.WordsPerMinute != 200 {
		t.Errorf("Expected 200 words per minute, got %d", cfg.Display.WordsPerMinute)
	}
	if cfg.Display.ExcludeSpaces {
		t.Error("Expected exclude_spaces to default to false")
	}
	if cfg.Output.DefaultFormat != "text" {
		t.Errorf("Expected output format text, got %s", cfg.Output.DefaultFormat)
	}
	if cfg.Watch.Debounce != 250*time.Millisecond {
		t.Errorf("Expected 250ms debounce, got %v", cfg.Watch.Debounce)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config should be valid: %v", err)
	}
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *Config)
		errMsg string
	}{
		{
			name:   "valid config",
			modify: func(c *Config) {},
		},
		{
			name:   "zero visible letters",
			modify: func(c *Config) { c.Display.VisibleLetters = 0 },
			errMsg: "visible_letters must be between 1 and 26",
		},
		{
			name:   "too many visible letters",
			modify: func(c *Config) { c.Display.VisibleLetters = 27 },
			errMsg: "visible_letters must be between 1 and 26",
		},
		{
			name:   "zero reading speed",
			modify: func(c *Config) { c.Display.WordsPerMinute = 0 },
			errMsg: "words_per_minute must be greater than 0",
		},
		{
			name:   "negative char limit",
			modify: func(c *Config) { c.Display.CharLimit = -1 },
			errMsg: "char_limit must be non-negative",
		},
		{
			name:   "invalid theme",
			modify: func(c *Config) { c.Display.Theme = "neon" },
			errMsg: "invalid theme: neon (must be one of: auto, light, dark)",
		},
		{
			name:   "invalid output format",
			modify: func(c *Config) { c.Output.DefaultFormat = "invalid" },
			errMsg: "invalid output format: invalid (must be one of: json, text, markdown, csv, prompt)",
		},
		{
			name:   "invalid color mode",
			modify: func(c *Config) { c.Output.ColorMode = "invalid" },
			errMsg: "invalid color mode: invalid (must be one of: auto, always, never)",
		},
		{
			name:   "invalid input mode",
			modify: func(c *Config) { c.Input.Mode = "binary" },
			errMsg: "invalid input mode: binary (must be one of: plain, log)",
		},
		{
			name:   "invalid log format",
			modify: func(c *Config) { c.Input.LogFormat = "xml" },
			errMsg: "invalid log format: xml (must be one of: auto, json, logfmt, text)",
		},
		{
			name:   "negative max bytes",
			modify: func(c *Config) { c.Input.MaxBytes = -1 },
			errMsg: "max_bytes must be non-negative",
		},
		{
			name:   "negative debounce",
			modify: func(c *Config) { c.Watch.Debounce = -time.Second },
			errMsg: "debounce must be non-negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)

			err := cfg.Validate()
			if tt.errMsg == "" {
				if err != nil {
					t.Errorf("Expected no error, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Expected error %q, got nil", tt.errMsg)
			}
			if err.Error() != tt.errMsg {
				t.Errorf("Expected error %q, got %q", tt.errMsg, err.Error())
			}
		})
	}
}

func TestSampleConfigsAreValid(t *testing.T) {
	for name, content := range map[string]string{
		"full":    SampleConfig(),
		"minimal": MinimalSampleConfig(),
	} {
		t.Run(name, func(t *testing.T) {
			path := writeConfig(t, content)

			cfg, err := NewLoader().LoadConfig(path)
			if err != nil {
				t.Fatalf("Sample config failed to load: %v", err)
			}
			if cfg.Display.VisibleLetters != 5 {
				t.Errorf("Expected 5 visible letters, got %d", cfg.Display.VisibleLetters)
			}
		})
	}
}
