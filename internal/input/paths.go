// Package input reads root paths supplied on standard input
package input

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// IsPiped reports whether f is something other than an interactive terminal
func IsPiped(f *os.File) bool {
	if f == nil {
		return false
	}
	fd := f.Fd()
	return !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd)
}

// ReadPaths reads all of r and splits it into path records, on NUL bytes when
// nul is set and on newlines otherwise. Empty records are dropped; in newline
// mode a trailing carriage return is removed from each record.
func ReadPaths(r io.Reader, nul bool) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("input: reading paths: %w", err)
	}

	sep := "\n"
	if nul {
		sep = "\x00"
	}

	var paths []string
	for _, record := range strings.Split(string(data), sep) {
		if !nul {
			record = strings.TrimSuffix(record, "\r")
		}
		if record == "" {
			continue
		}
		paths = append(paths, record)
	}
	return paths, nil
}
