// Package output handles file naming and writing for rendered reports.
// Filenames are either given explicitly or derived from the source URL
// (e.g. example_com_docs_intro.pdf).
package output

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// Writer writes rendered output to disk.
type Writer struct {
	OutputDir string
}

// New creates a Writer targeting the given output directory.
// If outputDir is empty, it defaults to the current working directory.
func New(outputDir string) (*Writer, error) {
	if outputDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		outputDir = wd
	}
	abs, err := filepath.Abs(outputDir)
	if err != nil {
		return nil, fmt.Errorf("resolving output directory: %w", err)
	}
	return &Writer{OutputDir: abs}, nil
}

// Write stores data as name+ext in the output directory and returns the
// absolute path. An empty name is derived from rawURL; ext is not doubled
// when name already carries it.
func (w *Writer) Write(name, rawURL string, data []byte, ext string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = filenameFromURL(rawURL)
	}
	name = strings.TrimSuffix(filepath.Base(name), ext)
	if name == "" || name == "." || name == string(filepath.Separator) {
		name = "report"
	}

	if err := os.MkdirAll(w.OutputDir, 0755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	path := filepath.Join(w.OutputDir, name+ext)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing file %s: %w", path, err)
	}
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("file not found after write %s: %w", path, err)
	}
	return path, nil
}

// filenameFromURL converts a URL into a flat filename.
// Example: https://example.com/docs/intro → example_com_docs_intro
func filenameFromURL(rawURL string) string {
	if strings.TrimSpace(rawURL) == "" {
		return ""
	}
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return sanitize(rawURL)
	}

	parts := []string{sanitize(parsed.Host)}
	path := strings.Trim(parsed.Path, "/")
	if path != "" {
		for _, seg := range strings.Split(path, "/") {
			parts = append(parts, sanitize(seg))
		}
	}
	return strings.Join(parts, "_")
}

// sanitize replaces non-alphanumeric characters with underscores.
func sanitize(s string) string {
	var b strings.Builder
	for _, ch := range s {
		if (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9') || ch == '-' {
			b.WriteRune(ch)
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}
