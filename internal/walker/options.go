// Package walker handles directory traversal and file selection
package walker

import (
	"strings"

	"github.com/bethropolis/files-to-prompt/internal/ignore"
	"github.com/bethropolis/files-to-prompt/internal/logger"
)

// WalkOptions configures the behavior of the Walk function
type WalkOptions struct {
	Logger          logger.Interface
	ExtensionMap    map[string]struct{}
	IncludeHidden   bool
	IgnorePatterns  []string
	IgnoreFilesOnly bool
	Resolver        *ignore.Resolver
}

// defaultOptions returns the default walk options
func defaultOptions() WalkOptions {
	return WalkOptions{
		Logger:          logger.Nop{},
		ExtensionMap:    nil, // No extension filtering by default
		IncludeHidden:   false,
		IgnorePatterns:  nil,
		IgnoreFilesOnly: false,
		Resolver:        ignore.NewResolver(),
	}
}

// Option is a functional option for configuring WalkOptions
type Option func(*WalkOptions)

// WithLogger sets a custom logger for the walker
func WithLogger(log logger.Interface) Option {
	return func(opts *WalkOptions) {
		if log != nil {
			opts.Logger = log
		}
	}
}

// WithExtensions sets the file extensions to include (a leading dot is dropped).
// Matching is case-sensitive.
func WithExtensions(extensions []string) Option {
	return func(opts *WalkOptions) {
		extMap := make(map[string]struct{}, len(extensions))
		for _, ext := range extensions {
			ext = strings.TrimPrefix(strings.TrimSpace(ext), ".")
			if ext != "" {
				extMap[ext] = struct{}{}
			}
		}
		opts.ExtensionMap = extMap
	}
}

// WithIncludeHidden includes names starting with '.'
func WithIncludeHidden(enabled bool) Option {
	return func(opts *WalkOptions) {
		opts.IncludeHidden = enabled
	}
}

// WithIgnorePatterns adds command-line ignore patterns, evaluated relative to
// each directory root after the gitignore rules
func WithIgnorePatterns(patterns []string) Option {
	return func(opts *WalkOptions) {
		opts.IgnorePatterns = append([]string(nil), patterns...)
	}
}

// WithIgnoreFilesOnly keeps directories matched by ignore patterns in the walk
func WithIgnoreFilesOnly(enabled bool) Option {
	return func(opts *WalkOptions) {
		opts.IgnoreFilesOnly = enabled
	}
}

// WithResolver sets the gitignore resolver; nil disables gitignore handling
func WithResolver(r *ignore.Resolver) Option {
	return func(opts *WalkOptions) {
		if r == nil {
			r = ignore.CreateDisabledResolver()
		}
		opts.Resolver = r
	}
}
