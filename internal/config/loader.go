package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of environment variables that override file settings
const EnvPrefix = "TEXTSUM_"

// ConfigPaths defines the config file search paths in priority order
var ConfigPaths = []string{
	"./.textsum.yaml",               // Project-specific config (highest priority)
	"~/.config/textsum/config.yaml", // User config
	"/etc/textsum/config.yaml",      // System config (lowest priority)
}

// Warner receives non-fatal problems found while loading configuration
type Warner interface {
	Warn(msg string, args ...interface{})
}

// Loader handles configuration loading with priority merging
type Loader struct {
	configPaths []string
	warner      Warner
}

// NewLoader creates a new config loader
func NewLoader() *Loader {
	return &Loader{
		configPaths: ConfigPaths,
	}
}

// WithWarner sets where warnings about unreadable config files go
func (l *Loader) WithWarner(w Warner) *Loader {
	l.warner = w
	return l
}

// LoadConfig loads configuration from multiple sources with priority order:
// 1. Command line flags (handled by caller)
// 2. Environment variables
// 3. ./.textsum.yaml
// 4. ~/.config/textsum/config.yaml
// 5. /etc/textsum/config.yaml
// 6. Built-in defaults
func (l *Loader) LoadConfig(customPath string) (*Config, error) {
	config := DefaultConfig()

	if customPath != "" {
		if err := validateConfigPath(customPath); err != nil {
			return nil, fmt.Errorf("invalid config path: %w", err)
		}
		if err := l.loadFromFile(config, customPath); err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", customPath, err)
		}
	} else {
		// lowest priority first so later files win
		for i := len(l.configPaths) - 1; i >= 0; i-- {
			expandedPath := expandPath(l.configPaths[i])
			if !fileExists(expandedPath) {
				continue
			}
			if err := l.loadFromFile(config, expandedPath); err != nil {
				l.warn("Failed to load config from %s: %v", expandedPath, err)
			}
		}
	}

	if err := applyEnvOverrides(config); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

func (l *Loader) warn(msg string, args ...interface{}) {
	if l.warner != nil {
		l.warner.Warn(msg, args...)
		return
	}
	fmt.Fprintf(os.Stderr, "Warning: "+msg+"\n", args...)
}

// loadFromFile loads configuration from a YAML file and merges it with existing config
func (l *Loader) loadFromFile(config *Config, path string) error {
	// #nosec G304 - path comes from the fixed search list or validateConfigPath
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	var fileConfig Config
	if err := yaml.Unmarshal(data, &fileConfig); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}

	mergeConfigs(config, &fileConfig)

	return nil
}

// applyEnvOverrides applies TEXTSUM_* environment variables to the config
func applyEnvOverrides(config *Config) error {
	envMappings := map[string]func(string) error{
		"DISPLAY_EXCLUDE_SPACES":   func(v string) error { return parseBool(v, &config.Display.ExcludeSpaces) },
		"DISPLAY_VISIBLE_LETTERS":  func(v string) error { return parseInt(v, &config.Display.VisibleLetters) },
		"DISPLAY_WORDS_PER_MINUTE": func(v string) error { return parseInt(v, &config.Display.WordsPerMinute) },
		"DISPLAY_THEME":            func(v string) error { config.Display.Theme = v; return nil },
		"DISPLAY_CHAR_LIMIT":       func(v string) error { return parseInt(v, &config.Display.CharLimit) },

		"OUTPUT_DEFAULT_FORMAT": func(v string) error { config.Output.DefaultFormat = v; return nil },
		"OUTPUT_COLOR_MODE":     func(v string) error { config.Output.ColorMode = v; return nil },
		"OUTPUT_VERBOSE":        func(v string) error { return parseBool(v, &config.Output.Verbose) },

		"INPUT_MODE":       func(v string) error { config.Input.Mode = v; return nil },
		"INPUT_LOG_FORMAT": func(v string) error { config.Input.LogFormat = v; return nil },
		"INPUT_MAX_BYTES":  func(v string) error { return parseInt64(v, &config.Input.MaxBytes) },

		"WATCH_DEBOUNCE": func(v string) error { return parseDuration(v, &config.Watch.Debounce) },
	}

	for suffix, setter := range envMappings {
		envVar := EnvPrefix + suffix
		if value := os.Getenv(envVar); value != "" {
			if err := setter(value); err != nil {
				return fmt.Errorf("invalid value for %s: %w", envVar, err)
			}
		}
	}

	return nil
}

// GetConfigPaths returns the list of configuration file paths that will be searched
func GetConfigPaths() []string {
	paths := make([]string, 0, len(ConfigPaths))
	for _, path := range ConfigPaths {
		paths = append(paths, expandPath(path))
	}
	return paths
}

// FindConfigFile finds the first existing config file in the search paths
func FindConfigFile() (string, bool) {
	for _, path := range GetConfigPaths() {
		if fileExists(path) {
			return path, true
		}
	}
	return "", false
}

// validateConfigPath validates that a config path is safe to read
func validateConfigPath(path string) error {
	cleanPath := filepath.Clean(path)

	if strings.Contains(cleanPath, "..") {
		return fmt.Errorf("path traversal not allowed")
	}

	ext := strings.ToLower(filepath.Ext(cleanPath))
	if ext != ".yaml" && ext != ".yml" {
		return fmt.Errorf("config file must have .yaml or .yml extension")
	}

	absPath, err := filepath.Abs(cleanPath)
	if err != nil {
		return fmt.Errorf("failed to resolve absolute path: %w", err)
	}

	if strings.HasPrefix(absPath, "/proc/") || strings.HasPrefix(absPath, "/sys/") {
		return fmt.Errorf("access to system files not allowed")
	}

	return nil
}

// expandPath expands ~ to home directory
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// mergeConfigs merges source config into destination config.
// Only non-zero values from source overwrite destination.
func mergeConfigs(dst, src *Config) {
	if src.Version != "" {
		dst.Version = src.Version
	}

	mergeDisplayConfig(&dst.Display, &src.Display)
	mergeOutputConfig(&dst.Output, &src.Output)
	mergeInputConfig(&dst.Input, &src.Input)

	if src.Watch.Debounce != 0 {
		dst.Watch.Debounce = src.Watch.Debounce
	}
}

func mergeDisplayConfig(dst, src *DisplayConfig) {
	if src.VisibleLetters != 0 {
		dst.VisibleLetters = src.VisibleLetters
	}
	if src.WordsPerMinute != 0 {
		dst.WordsPerMinute = src.WordsPerMinute
	}
	if src.Theme != "" {
		dst.Theme = src.Theme
	}
	if src.CharLimit != 0 {
		dst.CharLimit = src.CharLimit
	}
	mergeIfSet(&dst.ExcludeSpaces, src.ExcludeSpaces)
}

func mergeOutputConfig(dst, src *OutputConfig) {
	if src.DefaultFormat != "" {
		dst.DefaultFormat = src.DefaultFormat
	}
	if src.ColorMode != "" {
		dst.ColorMode = src.ColorMode
	}
	mergeIfSet(&dst.Verbose, src.Verbose)
}

func mergeInputConfig(dst, src *InputConfig) {
	if src.Mode != "" {
		dst.Mode = src.Mode
	}
	if src.LogFormat != "" {
		dst.LogFormat = src.LogFormat
	}
	if src.MaxBytes != 0 {
		dst.MaxBytes = src.MaxBytes
	}
}

// mergeIfSet merges a boolean from a config file. Every boolean defaults to
// false, so a file that omits one cannot switch it off unexpectedly.
func mergeIfSet(dst *bool, src bool) {
	if src {
		*dst = src
	}
}

func parseInt(s string, dst *int) error {
	val, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	*dst = val
	return nil
}

func parseInt64(s string, dst *int64) error {
	val, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return err
	}
	*dst = val
	return nil
}

func parseBool(s string, dst *bool) error {
	val, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	*dst = val
	return nil
}

func parseDuration(s string, dst *time.Duration) error {
	val, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*dst = val
	return nil
}
