// Package setup provides initialization and configuration functions
package setup

import (
	"strings"

	"github.com/bethropolis/files-to-prompt/internal/ignore"
	"github.com/bethropolis/files-to-prompt/internal/logger"
	"github.com/bethropolis/files-to-prompt/internal/walker"
)

// InfoLogger wraps the Info method for status updates
type InfoLogger func(format string, args ...interface{})

// WalkerConfig holds all parameters needed to configure a directory walker
type WalkerConfig struct {
	Extensions      []string
	IncludeHidden   bool
	IgnorePatterns  []string
	IgnoreFilesOnly bool
	IgnoreGitignore bool
	Logger          logger.Interface
}

// ConfigureWalker builds the gitignore resolver and the walker options for cfg
func ConfigureWalker(cfg WalkerConfig, infoLog InfoLogger) []walker.Option {
	if infoLog == nil {
		infoLog = func(string, ...interface{}) {}
	}
	log := cfg.Logger
	if log == nil {
		log = logger.Nop{}
	}

	// --- Ignore patterns ---
	if len(cfg.IgnorePatterns) > 0 {
		infoLog("Using ignore patterns: %v", cfg.IgnorePatterns)
		if cfg.IgnoreFilesOnly {
			infoLog("Ignore patterns apply to files only.")
		}
	}

	// --- File extensions ---
	if len(cfg.Extensions) > 0 {
		var shown []string
		for _, ext := range cfg.Extensions {
			shown = append(shown, "."+strings.TrimPrefix(ext, "."))
		}
		infoLog("Filtering enabled. Only including extensions: %s", strings.Join(shown, ", "))
	} else {
		infoLog("No extension filtering (including all file types).")
	}

	if cfg.IncludeHidden {
		infoLog("Including hidden files/directories.")
	} else {
		infoLog("Ignoring hidden files/directories (starting with '.').")
	}

	// --- Gitignore resolver ---
	if cfg.IgnoreGitignore {
		infoLog("Not reading .gitignore files.")
	}
	resolver := ignore.NewFromConfig(ignore.Config{
		Disabled: cfg.IgnoreGitignore,
		Logger:   log,
	})

	return []walker.Option{
		walker.WithLogger(log),
		walker.WithResolver(resolver),
		walker.WithExtensions(cfg.Extensions),
		walker.WithIncludeHidden(cfg.IncludeHidden),
		walker.WithIgnorePatterns(cfg.IgnorePatterns),
		walker.WithIgnoreFilesOnly(cfg.IgnoreFilesOnly),
	}
}
