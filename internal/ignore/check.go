package ignore

// NewRuleSet returns a set holding rules in order
func NewRuleSet(rules ...*Rule) RuleSet {
	return RuleSet{}.Extend(rules...)
}

// Len returns the number of rules in the set
func (s RuleSet) Len() int {
	return len(s.rules)
}

// Extend returns a new set with rules appended after the receiver's rules.
// The receiver is left untouched.
func (s RuleSet) Extend(rules ...*Rule) RuleSet {
	if len(rules) == 0 {
		return s
	}
	merged := make([]*Rule, 0, len(s.rules)+len(rules))
	merged = append(merged, s.rules...)
	for _, r := range rules {
		if r != nil {
			merged = append(merged, r)
		}
	}
	return RuleSet{rules: merged}
}

// Evaluate walks the rules from last to first and returns the verdict of the
// first one that matches: excluded for a plain rule, included for a negation.
// The deciding rule is returned, or nil when nothing matched.
func (s RuleSet) Evaluate(path string, isDir bool) (excluded bool, decidedBy *Rule) {
	for i := len(s.rules) - 1; i >= 0; i-- {
		rule := s.rules[i]
		if rule.Match(path, isDir) {
			return !rule.Negate, rule
		}
	}
	return false, nil
}
