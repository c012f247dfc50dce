// Package wordlist loads word lists from files.
package wordlist

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

// DefaultPath is used when the caller does not name a word list.
const DefaultPath = "./wordserver.txt"

var errInvalidUTF8 = errors.New("stream did not contain valid UTF-8")

// ResolvePath returns the path to read, falling back to DefaultPath.
func ResolvePath(path *string) string {
	if path == nil || *path == "" {
		return DefaultPath
	}
	return *path
}

// LoadFromPath reads the word list at path (or DefaultPath) and returns its entries.
func LoadFromPath(path *string) ([]string, error) {
	resolved := ResolvePath(path)
	data, err := os.ReadFile(resolved)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", resolved, err)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("failed to read %s: %w", resolved, errInvalidUTF8)
	}
	return Parse(string(data)), nil
}

// Parse splits text into trimmed, non-empty lines in their original order.
func Parse(text string) []string {
	words := []string{}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		words = append(words, line)
	}
	return words
}
