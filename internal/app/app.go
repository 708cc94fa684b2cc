package app

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bethropolis/files-to-prompt/internal/config"
	"github.com/bethropolis/files-to-prompt/internal/logger"
	"github.com/bethropolis/files-to-prompt/internal/printer"
	"github.com/bethropolis/files-to-prompt/internal/reader"
	"github.com/bethropolis/files-to-prompt/internal/setup"
	"github.com/bethropolis/files-to-prompt/internal/summary"
	"github.com/bethropolis/files-to-prompt/internal/walker"
)

// App encapsulates the main application functionality
type App struct {
	cfg    *config.Config
	log    *logger.Logger
	stdout io.Writer
	stderr io.Writer
}

// New creates a new App writing documents to stdout and diagnostics to stderr
func New(cfg *config.Config, stdout, stderr io.Writer) (*App, error) {
	log := logger.New(stderr, false, cfg.UseColors)
	if err := log.SetLevel(cfg.EffectiveLogLevel()); err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}
	log.Debug("Log level: %s", log.Level())

	return &App{
		cfg:    cfg,
		log:    log,
		stdout: stdout,
		stderr: stderr,
	}, nil
}

// Logger exposes the diagnostic logger
func (a *App) Logger() *logger.Logger {
	return a.log
}

// Run walks roots in order and writes every selected file to the sink.
// Unreadable or non-UTF-8 files are reported and skipped; only sink failures
// and an unopenable output file are returned as errors.
func (a *App) Run(roots []string) (err error) {
	startTime := time.Now()

	if len(roots) == 0 {
		a.log.Warn("No paths given on the command line or stdin")
	}

	a.log.Debug("Roots: %v", roots)
	a.log.Debug("Color diagnostics: %v, colored headers: %v", a.cfg.UseColors, a.cfg.ColorOutput)

	// --- Output destination ---
	out := a.stdout
	if a.cfg.OutputFile != "" {
		file, createErr := os.Create(a.cfg.OutputFile)
		if createErr != nil {
			return fmt.Errorf("cannot open output file: %w", createErr)
		}
		defer func() {
			if closeErr := file.Close(); closeErr != nil && err == nil {
				err = fmt.Errorf("closing output file: %w", closeErr)
			}
		}()
		out = file
		a.log.Info("Writing output to %s", a.cfg.OutputFile)
	}

	p := printer.New(a.cfg.Format,
		printer.WithOutput(out),
		printer.WithLineNumbers(a.cfg.LineNumbers),
		printer.WithColors(a.cfg.ColorOutput),
	)
	a.log.Debug("Format: %s, line numbers: %v", p.Format(), a.cfg.LineNumbers)

	walkOptions := setup.ConfigureWalker(setup.WalkerConfig{
		Extensions:      a.cfg.Extensions,
		IncludeHidden:   a.cfg.IncludeHidden,
		IgnorePatterns:  a.cfg.IgnorePatterns,
		IgnoreFilesOnly: a.cfg.IgnoreFilesOnly,
		IgnoreGitignore: a.cfg.IgnoreGitignore,
		Logger:          a.log,
	}, a.log.Info)

	printFunc := func(entry walker.FileEntry) error {
		shown := entry.DisplayPath()
		content, readErr := reader.Read(entry.Path)
		if readErr != nil {
			if reader.IsBinary(readErr) {
				a.log.Report("Warning: Skipping file %s due to UnicodeDecodeError", shown)
			} else {
				a.log.Report("Warning: Skipping file %s due to error: %v", shown, readErr)
			}
			return nil
		}

		a.log.Debug("Printing %s (%d bytes)", shown, len(content))
		return p.PrintFile(shown, content)
	}

	skippedItems, walkErr := walker.Walk(roots, printFunc, walkOptions...)
	if walkErr != nil {
		return walkErr
	}

	if err := p.Finalize(); err != nil {
		return err
	}

	summary.DisplayResults(a.log, p.Count(), time.Since(startTime))

	if a.cfg.ShowSkipped {
		summary.DisplaySkippedItems(a.log, skippedItems, a.stderr)
	}

	return nil
}
