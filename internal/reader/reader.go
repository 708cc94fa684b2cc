// Package reader loads selected files as text
package reader

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"
)

// ErrBinary is returned for files whose bytes are not valid UTF-8
var ErrBinary = errors.New("content is not valid UTF-8")

// Read returns the whole file as a string. Invalid UTF-8 yields an error
// wrapping ErrBinary instead of lossy text. No size limit is applied.
func Read(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(content) {
		return "", fmt.Errorf("reader: %s: %w", path, ErrBinary)
	}
	return string(content), nil
}

// IsBinary reports whether err came from undecodable content
func IsBinary(err error) bool {
	return errors.Is(err, ErrBinary)
}
