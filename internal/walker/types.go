// Package walker handles directory traversal and file selection
package walker

import (
	"os"
	"path/filepath"
)

// FileEntry is one selected file
type FileEntry struct {
	// Path is the absolute path used for reading
	Path string
	// Root is the root argument the file was discovered under, as given
	Root string
	// Rel is the path relative to Root, empty when the file itself was the root
	Rel string
}

// DisplayPath is the path shown in output: the root exactly as given followed
// by the relative path, so "./src" yields "./src/main.go" and an explicit file
// argument is shown as typed.
func (e FileEntry) DisplayPath() string {
	return joinDisplay(e.Root, e.Rel)
}

// Ext returns the extension without its dot, case preserved
func (e FileEntry) Ext() string {
	name := e.Rel
	if name == "" {
		name = e.Root
	}
	ext := filepath.Ext(name)
	if len(ext) > 0 {
		return ext[1:]
	}
	return ""
}

// joinDisplay appends rel to root without cleaning root
func joinDisplay(root, rel string) string {
	switch {
	case rel == "":
		return root
	case root == "":
		return rel
	case os.IsPathSeparator(root[len(root)-1]):
		return root + rel
	default:
		return root + string(filepath.Separator) + rel
	}
}

// WalkFunc receives each selected file in traversal order. Returning an
// error stops the walk and Walk returns it.
type WalkFunc func(entry FileEntry) error

// SkippedReason clarifies why a file/directory was not selected.
type SkippedReason string

const (
	ReasonIgnoredHidden     SkippedReason = "Ignored (Hidden Rule)"
	ReasonIgnoredGitignore  SkippedReason = "Ignored (Gitignore Rule)"
	ReasonIgnoredPattern    SkippedReason = "Ignored (--ignore Pattern)"
	ReasonFilteredExtension SkippedReason = "Filtered (Extension Mismatch)"
	ReasonSkippedNotRegular SkippedReason = "Skipped (Not a Regular File)"
	ReasonSkippedSymlinkDir SkippedReason = "Skipped (Symlink to Directory)"
	ReasonSkippedBrokenLink SkippedReason = "Skipped (Broken Symlink)"
	ReasonSkippedPermError  SkippedReason = "Skipped (Permission Error)"
	ReasonSkippedWalkError  SkippedReason = "Skipped (Walk Error)"
	ReasonSkippedNotFound   SkippedReason = "Skipped (Path Not Found)"
	ReasonSkippedPathError  SkippedReason = "Skipped (Path Calculation Error)"
)

// SkippedItem holds information about a skipped path.
type SkippedItem struct {
	Path   string
	Reason SkippedReason
	IsDir  bool
}

// SkippedTracker collects skipped items in the order they were seen
type SkippedTracker struct {
	items []SkippedItem
}

// NewSkippedTracker creates a new SkippedTracker
func NewSkippedTracker(capacity int) *SkippedTracker {
	return &SkippedTracker{
		items: make([]SkippedItem, 0, capacity),
	}
}

// Track adds a skipped item to the tracker
func (st *SkippedTracker) Track(path string, reason SkippedReason, isDir bool) {
	st.items = append(st.items, SkippedItem{Path: path, Reason: reason, IsDir: isDir})
}

// Items returns the tracked skipped items
func (st *SkippedTracker) Items() []SkippedItem {
	return st.items
}
