// Package ignore provides file/directory pattern matching for exclusion
package ignore

import (
	"fmt"

	"github.com/bethropolis/files-to-prompt/internal/logger"
	gitignore "github.com/denormal/go-gitignore"
)

// Rule is one compiled ignore pattern scoped to a base directory
type Rule struct {
	// Pattern as written, without the leading '!'
	Pattern string
	// Negate re-includes paths the pattern matches
	Negate bool
	// Base is the directory the pattern is relative to
	Base string
	// Source names where the rule came from ("<dir>/.gitignore" or "--ignore")
	Source string
	// Line is the 1-based line in Source, 0 for command-line patterns
	Line int
	// Err is set when the pattern failed to compile; such a rule never matches
	Err error

	compiled gitignore.GitIgnore
}

// String renders the rule the way it was written, with its origin
func (r *Rule) String() string {
	neg := ""
	if r.Negate {
		neg = "!"
	}
	if r.Line > 0 {
		return fmt.Sprintf("%s%s (%s:%d)", neg, r.Pattern, r.Source, r.Line)
	}
	return fmt.Sprintf("%s%s (%s)", neg, r.Pattern, r.Source)
}

// RuleSet is an ordered list of rules; the last rule matching a path decides
// whether it is excluded. Values are never mutated in place, so a parent set
// can be shared safely by every child directory derived from it.
type RuleSet struct {
	rules []*Rule
}

// Resolver loads per-directory ignore files and merges them with the rules
// inherited from ancestor directories
type Resolver struct {
	fileName string
	disabled bool
	logger   logger.Interface
}

// Config holds configuration options for the resolver
type Config struct {
	Disabled bool
	Logger   logger.Interface
}
