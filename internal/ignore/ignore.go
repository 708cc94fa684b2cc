// Package ignore provides file/directory pattern matching for exclusion
//
// Patterns use gitignore syntax and are compiled once into Rule values.
// Rules are grouped into RuleSet values where the last matching rule wins,
// so a later "!pattern" re-includes what an earlier rule excluded. A Resolver
// builds the effective RuleSet for a directory from the set inherited from
// its parent plus the directory's own .gitignore.
package ignore

const defaultFileName = ".gitignore"

// CommandLineSource labels rules that came from --ignore flags
const CommandLineSource = "--ignore"

// NewFromConfig creates a Resolver from a Config struct
func NewFromConfig(cfg Config) *Resolver {
	options := []Option{
		WithDisabled(cfg.Disabled),
	}

	if cfg.Logger != nil {
		options = append(options, WithLogger(cfg.Logger))
	}

	return NewResolver(options...)
}

// CreateDisabledResolver returns a resolver that never adds rules
func CreateDisabledResolver() *Resolver {
	return NewResolver(WithDisabled(true))
}

// CompilePatterns turns command-line patterns into a RuleSet anchored at base.
// Blank entries are dropped; a leading '!' negates as in an ignore file.
func CompilePatterns(patterns []string, base string) RuleSet {
	rules := make([]*Rule, 0, len(patterns))
	for _, p := range patterns {
		body, negate, ok := ParseLine(p)
		if !ok {
			continue
		}
		rules = append(rules, Compile(body, negate, base, CommandLineSource, 0))
	}
	return NewRuleSet(rules...)
}
