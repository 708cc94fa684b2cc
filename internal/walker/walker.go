// Package walker handles directory traversal and file selection
package walker

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bethropolis/files-to-prompt/internal/ignore"
)

// Walk visits roots in order and calls walkFn for every selected file.
// Directories are walked depth-first with entries in byte order of their
// names. Per-path problems are logged and tracked, never returned; the only
// error Walk returns is one produced by walkFn.
func Walk(roots []string, walkFn WalkFunc, opts ...Option) ([]SkippedItem, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	w := &walker{
		opts:    options,
		walkFn:  walkFn,
		tracker: NewSkippedTracker(32),
	}

	options.Logger.Debug("walker.Walk started. Roots: %d, hidden: %v, gitignore: %v, patterns: %d, files-only: %v",
		len(roots), options.IncludeHidden, !options.Resolver.Disabled(), len(options.IgnorePatterns), options.IgnoreFilesOnly)

	for _, root := range roots {
		if err := w.walkRoot(root); err != nil {
			return w.tracker.Items(), err
		}
	}

	return w.tracker.Items(), nil
}

type walker struct {
	opts    WalkOptions
	walkFn  WalkFunc
	tracker *SkippedTracker
}

// rootScope is what every directory below one root shares
type rootScope struct {
	arg      string
	abs      string
	patterns ignore.RuleSet
}

func (w *walker) walkRoot(root string) error {
	log := w.opts.Logger

	absRoot, err := filepath.Abs(root)
	if err != nil {
		log.Report("Warning: Skipping %s: %v", root, err)
		w.tracker.Track(root, ReasonSkippedPathError, false)
		return nil
	}

	info, err := os.Stat(absRoot)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Report("Path does not exist: %s", root)
			w.tracker.Track(root, ReasonSkippedNotFound, false)
		} else {
			log.Report("Warning: Skipping %s due to error: %v", root, err)
			w.tracker.Track(root, reasonFor(err), false)
		}
		return nil
	}

	switch {
	case info.Mode().IsRegular():
		entry := FileEntry{Path: absRoot, Root: root}
		if !w.extensionAllowed(entry) {
			log.Debug("Walker: Root file %q filtered by extension", root)
			w.tracker.Track(root, ReasonFilteredExtension, false)
			return nil
		}
		return w.emit(entry)
	case info.IsDir():
		scope := rootScope{
			arg:      root,
			abs:      absRoot,
			patterns: ignore.CompilePatterns(w.opts.IgnorePatterns, absRoot),
		}
		return w.walkDir(scope, absRoot, w.parentRules(absRoot))
	default:
		log.Debug("Walker: Root %q is neither file nor directory", root)
		w.tracker.Track(root, ReasonSkippedNotRegular, false)
		return nil
	}
}

// walkDir handles one directory. inherited is the effective gitignore set of
// the parent; the set for this directory is derived from it and handed to
// children by value.
func (w *walker) walkDir(scope rootScope, dir string, inherited ignore.RuleSet) error {
	log := w.opts.Logger
	rules := w.opts.Resolver.Resolve(dir, inherited)

	entries, err := os.ReadDir(dir)
	if err != nil {
		rel := w.display(scope, dir)
		log.Report("Warning: Skipping directory %s due to error: %v", rel, err)
		w.tracker.Track(rel, reasonFor(err), true)
		return nil
	}

	for _, d := range entries {
		path := filepath.Join(dir, d.Name())
		rel, relErr := filepath.Rel(scope.abs, path)
		if relErr != nil {
			log.Error("Walker Error: Path calculation failed for %q: %v", path, relErr)
			w.tracker.Track(path, ReasonSkippedPathError, d.IsDir())
			continue
		}
		shown := joinDisplay(scope.arg, rel)

		if !w.opts.IncludeHidden && strings.HasPrefix(d.Name(), ".") {
			log.Debug("Walker: Ignored %q (hidden)", shown)
			w.tracker.Track(shown, ReasonIgnoredHidden, d.IsDir())
			continue
		}

		isDir, reason, ok := w.classify(path, d)
		if !ok {
			log.Debug("Walker: Skipping %q: %s", shown, reason)
			w.tracker.Track(shown, reason, false)
			continue
		}

		if excluded, rule := rules.Evaluate(path, isDir); excluded {
			log.Debug("Walker: Ignored %q by %s", shown, rule)
			w.tracker.Track(shown, ReasonIgnoredGitignore, isDir)
			continue
		}

		if excluded, rule := scope.patterns.Evaluate(path, isDir); excluded {
			if !isDir || !w.opts.IgnoreFilesOnly {
				log.Debug("Walker: Ignored %q by %s", shown, rule)
				w.tracker.Track(shown, ReasonIgnoredPattern, isDir)
				continue
			}
			log.Debug("Walker: Directory %q matches %s, descending (files only)", shown, rule)
		}

		if isDir {
			log.Debug("Walker: Descending into directory %q", shown)
			if err := w.walkDir(scope, path, rules); err != nil {
				return err
			}
			continue
		}

		entry := FileEntry{Path: path, Root: scope.arg, Rel: rel}
		if !w.extensionAllowed(entry) {
			w.tracker.Track(shown, ReasonFilteredExtension, false)
			continue
		}

		if err := w.emit(entry); err != nil {
			return err
		}
	}

	return nil
}

// classify resolves what a directory entry is. Symlinks are followed when
// they point at regular files; links to directories are not walked.
func (w *walker) classify(path string, d fs.DirEntry) (isDir bool, reason SkippedReason, ok bool) {
	mode := d.Type()
	switch {
	case mode.IsDir():
		return true, "", true
	case mode.IsRegular():
		return false, "", true
	case mode&fs.ModeSymlink != 0:
		info, err := os.Stat(path)
		if err != nil {
			return false, ReasonSkippedBrokenLink, false
		}
		if info.IsDir() {
			return false, ReasonSkippedSymlinkDir, false
		}
		if info.Mode().IsRegular() {
			return false, "", true
		}
	}
	return false, ReasonSkippedNotRegular, false
}

func (w *walker) extensionAllowed(entry FileEntry) bool {
	if len(w.opts.ExtensionMap) == 0 {
		return true
	}
	_, allowed := w.opts.ExtensionMap[entry.Ext()]
	return allowed
}

func (w *walker) emit(entry FileEntry) error {
	w.opts.Logger.Debug("Walker: File %q PASSED all checks", entry.DisplayPath())
	if err := w.walkFn(entry); err != nil {
		return fmt.Errorf("walker: %s: %w", entry.DisplayPath(), err)
	}
	return nil
}

func (w *walker) display(scope rootScope, path string) string {
	rel, err := filepath.Rel(scope.abs, path)
	if err != nil {
		return path
	}
	if rel == "." {
		return scope.arg
	}
	return joinDisplay(scope.arg, rel)
}

// parentRules returns the rules of the ignore file in the directory that
// holds a directory root
func (w *walker) parentRules(absRoot string) ignore.RuleSet {
	if w.opts.Resolver.Disabled() {
		return ignore.RuleSet{}
	}
	parent := filepath.Dir(absRoot)
	if parent == absRoot {
		return ignore.RuleSet{}
	}
	return ignore.NewRuleSet(w.opts.Resolver.Load(parent)...)
}

func reasonFor(err error) SkippedReason {
	if errors.Is(err, fs.ErrPermission) {
		return ReasonSkippedPermError
	}
	return ReasonSkippedWalkError
}
