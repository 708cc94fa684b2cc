package ignore

import (
	"bufio"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bethropolis/files-to-prompt/internal/logger"
)

// NewResolver creates a Resolver reading ".gitignore" files unless disabled
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		fileName: defaultFileName,
		logger:   logger.Nop{},
	}

	for _, opt := range opts {
		opt(r)
	}

	r.logger.Debug("ignore.NewResolver: file=%s disabled=%v", r.fileName, r.disabled)
	return r
}

// Disabled reports whether the resolver ignores ignore files entirely
func (r *Resolver) Disabled() bool {
	return r == nil || r.disabled
}

// Resolve returns the effective rule set for dir: the parent's rules followed
// by the rules from dir's own ignore file. A disabled resolver always returns
// the empty set.
func (r *Resolver) Resolve(dir string, parent RuleSet) RuleSet {
	if r.Disabled() {
		return RuleSet{}
	}
	own := r.Load(dir)
	if len(own) == 0 {
		return parent
	}
	r.logger.Debug("ignore.Resolve: %s adds %d rule(s) to %d inherited", dir, len(own), parent.Len())
	return parent.Extend(own...)
}

// Load reads the ignore file directly inside dir. A missing file yields no
// rules; an unreadable one is logged and also yields no rules.
func (r *Resolver) Load(dir string) []*Rule {
	path := filepath.Join(dir, r.fileName)

	f, err := os.Open(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			r.logger.Warn("ignore.Load: cannot read %s: %v", path, err)
		}
		return nil
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || info.IsDir() {
		return nil
	}

	var rules []*Rule
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		pattern, negate, ok := ParseLine(scanner.Text())
		if !ok {
			continue
		}
		rule := Compile(pattern, negate, dir, path, lineNo)
		if rule.Err != nil {
			r.logger.Debug("ignore.Load: %s:%d never matches: %v", path, lineNo, rule.Err)
		}
		rules = append(rules, rule)
	}
	if err := scanner.Err(); err != nil {
		r.logger.Warn("ignore.Load: stopped reading %s at line %d: %v", path, lineNo, err)
	}

	return rules
}
