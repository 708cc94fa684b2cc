package ignore

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	gitignore "github.com/denormal/go-gitignore"
)

// errEmptyPattern marks a line that is only "!" after trimming
var errEmptyPattern = errors.New("empty pattern")

// ParseLine splits an ignore-file line into its pattern and negation flag.
// ok is false for blank lines and comments.
func ParseLine(line string) (pattern string, negate bool, ok bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", false, false
	}
	if strings.HasPrefix(line, "!") {
		return strings.TrimPrefix(line, "!"), true, true
	}
	return line, false, true
}

// Compile builds a rule for pattern relative to base. A malformed pattern
// still yields a rule; it carries Err and never matches.
func Compile(pattern string, negate bool, base, source string, line int) *Rule {
	rule := &Rule{
		Pattern: pattern,
		Negate:  negate,
		Base:    base,
		Source:  source,
		Line:    line,
	}

	if pattern == "" {
		rule.Err = errEmptyPattern
		return rule
	}

	var parseErr error
	compiled := gitignore.New(strings.NewReader(pattern), base, func(e gitignore.Error) bool {
		if parseErr == nil {
			parseErr = e
		}
		return true
	})
	if parseErr != nil {
		rule.Err = fmt.Errorf("ignore: invalid pattern %q: %w", pattern, parseErr)
		return rule
	}
	rule.compiled = compiled
	return rule
}

// Match reports whether path, given absolute or relative to the same
// directory as Base, is matched by the rule's pattern. Negation is not
// applied here; see RuleSet.Evaluate.
func (r *Rule) Match(path string, isDir bool) bool {
	if r == nil || r.compiled == nil {
		return false
	}

	rel := path
	if r.Base != "" && filepath.IsAbs(path) {
		var err error
		rel, err = filepath.Rel(r.Base, path)
		if err != nil {
			return false
		}
	}
	rel = filepath.ToSlash(rel)
	if rel == "." || rel == "" || rel == ".." || strings.HasPrefix(rel, "../") {
		return false
	}

	return r.matchRelative(rel, isDir)
}

// matchRelative delegates to the gitignore engine. A panic inside the engine
// is treated as no match so one bad pattern cannot abort a walk.
func (r *Rule) matchRelative(rel string, isDir bool) (matched bool) {
	defer func() {
		if rec := recover(); rec != nil {
			r.Err = fmt.Errorf("ignore: pattern %q panicked on %q: %v", r.Pattern, rel, rec)
			r.compiled = nil
			matched = false
		}
	}()
	return r.compiled.Relative(rel, isDir) != nil
}

// Match compiles pattern and tests candidate, a slash-separated path relative
// to the directory the pattern belongs to. A leading '!' is stripped; the
// result says whether the pattern body matches.
func Match(pattern, candidate string, isDir bool) bool {
	body, negate, ok := ParseLine(pattern)
	if !ok {
		return false
	}
	return Compile(body, negate, "", "pattern", 0).Match(candidate, isDir)
}
