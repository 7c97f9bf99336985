package strex

// NewRuleset allocates an empty Ruleset
func NewRuleset() *Ruleset {
	return &Ruleset{byName: map[string]*Rule{}}
}

// Ruleset is an ordered collection of named rules. Declaration order
// is match priority: when several rules match at a position, the one
// added first wins regardless of match length. A Ruleset is read-only
// to the Lexer and may back any number of Lexer instances.
type Ruleset struct {
	rules  []*Rule
	byName map[string]*Rule
	skips  []*Rule
	// built is the rule count at the last index build, letting the
	// Lexer detect bulk mutation of the ordered sequence
	built int
}

// Add appends a rule matching v under the given token type name.
// Names must be unique within the Ruleset and may not be the reserved
// eof type.
func (rs *Ruleset) Add(name string, v Variant) error {
	if name == EOF {
		return &DuplicateRuleError{Name: name}
	}
	if _, ok := rs.byName[name]; ok {
		return &DuplicateRuleError{Name: name}
	}
	r := &Rule{Name: name, Variant: v}
	rs.rules = append(rs.rules, r)
	rs.byName[name] = r
	rs.built = len(rs.rules)
	return nil
}

// Skip marks existing rules for skip-suppression: their matches are
// consumed but never emitted as tokens
func (rs *Ruleset) Skip(names ...string) error {
	for _, name := range names {
		r, ok := rs.byName[name]
		if !ok {
			return &UnknownRuleError{Name: name}
		}
		if !r.Skip {
			r.Skip = true
			rs.skips = append(rs.skips, r)
		}
	}
	return nil
}

// Lookup returns the rule registered under name
func (rs *Ruleset) Lookup(name string) (*Rule, error) {
	r, ok := rs.byName[name]
	if !ok {
		return nil, &UnknownRuleError{Name: name}
	}
	return r, nil
}

// Rules returns the rules in declaration order. The slice is the
// Ruleset's own; callers that rearrange or extend it must call
// UpdateMap before the Ruleset is used again.
func (rs *Ruleset) Rules() []*Rule {
	return rs.rules
}

// SetRules replaces the ordered sequence wholesale. The name index is
// not rebuilt until UpdateMap runs; the Lexer does that automatically
// when it notices the rule count changed, callers touching the
// Ruleset directly should call UpdateMap themselves.
func (rs *Ruleset) SetRules(rules []*Rule) {
	rs.rules = rules
}

// Len returns the number of rules
func (rs *Ruleset) Len() int {
	return len(rs.rules)
}

// UpdateMap recomputes the name index and skip list from the ordered
// sequence. The Lexer calls this on first use and whenever the rule
// count changed since the last build; callers mutating the sequence
// through Rules must call it themselves.
func (rs *Ruleset) UpdateMap() error {
	byName := make(map[string]*Rule, len(rs.rules))
	var skips []*Rule
	for _, r := range rs.rules {
		if r.Name == EOF {
			return &DuplicateRuleError{Name: r.Name}
		}
		if _, ok := byName[r.Name]; ok {
			return &DuplicateRuleError{Name: r.Name}
		}
		byName[r.Name] = r
		if r.Skip {
			skips = append(skips, r)
		}
	}
	rs.byName = byName
	rs.skips = skips
	rs.built = len(rs.rules)
	return nil
}

// stale reports whether the index is out of date with the sequence
func (rs *Ruleset) stale() bool {
	return rs.byName == nil || rs.built != len(rs.rules)
}
