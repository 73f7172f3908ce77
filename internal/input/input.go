// Package input reads the text to analyze from files, stdin or log streams.
package input

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ErrInputTooLarge is returned when the input exceeds the configured byte limit
var ErrInputTooLarge = errors.New("input exceeds size limit")

// Source describes where the text comes from
type Source struct {
	Path   string
	Reader io.Reader
	close  func() error
}

// Name returns a display name for the source
func (s *Source) Name() string {
	if s.Path == "" {
		return "stdin"
	}
	return s.Path
}

// Close releases the underlying file, if any
func (s *Source) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

// Open opens path for reading. An empty path or "-" reads stdin.
func Open(path string) (*Source, error) {
	if path == "" || path == "-" {
		return &Source{Reader: os.Stdin}, nil
	}

	if err := ValidateFilePath(path); err != nil {
		return nil, fmt.Errorf("invalid file path: %w", err)
	}

	cleanPath := filepath.Clean(path)

	// #nosec G304 - path is validated above
	file, err := os.Open(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", path, err)
	}

	return &Source{Path: cleanPath, Reader: file, close: file.Close}, nil
}

// ReadAll reads everything from r. A maxBytes of zero or less means no limit.
func ReadAll(r io.Reader, maxBytes int64) (string, error) {
	if maxBytes <= 0 {
		data, err := io.ReadAll(r)
		if err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return string(data), nil
	}

	data, err := io.ReadAll(io.LimitReader(r, maxBytes+1))
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	if int64(len(data)) > maxBytes {
		return "", fmt.Errorf("%w: more than %d bytes", ErrInputTooLarge, maxBytes)
	}
	return string(data), nil
}

// ReadFile opens, reads and closes path in one step
func ReadFile(path string, maxBytes int64) (string, error) {
	src, err := Open(path)
	if err != nil {
		return "", err
	}
	defer func() { _ = src.Close() }()

	return ReadAll(src.Reader, maxBytes)
}

// ValidateFilePath checks that path names an existing regular file
func ValidateFilePath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("empty file path")
	}

	cleanPath := filepath.Clean(path)

	info, err := os.Stat(cleanPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("file does not exist: %s", cleanPath)
		}
		return fmt.Errorf("cannot access file: %w", err)
	}

	if info.IsDir() {
		return fmt.Errorf("path is a directory, not a file: %s", cleanPath)
	}

	return nil
}
