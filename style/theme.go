package style

import (
	"cmp"
	"fmt"
	"slices"
)

// Declaration is a single (key, value) pair returned by a theme.
type Declaration struct {
	Key       string
	Value     Value
	Important bool
}

func (d Declaration) String() string {
	return fmt.Sprintf("%s: %s", d.Key, d.Value)
}

// Theme is the collaborator which provides style properties for widgets.
// Properties returns the declarations applying to a selector, with
// precedence already resolved: every key occurs at most once.
type Theme interface {
	Properties(sel *Selector) []Declaration
}

// ThemeFunc adapts a function to interface Theme.
type ThemeFunc func(sel *Selector) []Declaration

// Properties calls f.
func (f ThemeFunc) Properties(sel *Selector) []Declaration {
	return f(sel)
}

// EmptyTheme styles nothing.
var EmptyTheme Theme = ThemeFunc(func(*Selector) []Declaration { return nil })

// --- Rule sets -------------------------------------------------------------

// Rule binds declarations to a selector pattern.
type Rule struct {
	Pattern      Pattern
	Declarations []Declaration
	order        int
}

// RuleSet is a Theme made of pattern rules. Matching rules are applied in
// ascending specificity, ties broken by insertion order; important
// declarations win over normal ones.
type RuleSet struct {
	rules []Rule
}

var _ Theme = &RuleSet{}

// Add appends a rule for every pattern in the comma separated list patterns.
func (rs *RuleSet) Add(patterns string, decls ...Declaration) error {
	pats, err := ParsePatterns(patterns)
	if err != nil {
		return err
	}
	for _, pat := range pats {
		rs.rules = append(rs.rules, Rule{Pattern: pat, Declarations: decls, order: len(rs.rules)})
	}
	return nil
}

// AddRaw is a convenience for textual declarations. Compound keys are
// expanded and keys normalized.
func (rs *RuleSet) AddRaw(patterns string, kvs ...KeyValue) error {
	var decls []Declaration
	for _, kv := range kvs {
		for _, x := range Expand(kv.Key, kv.Value) {
			decls = append(decls, Declaration{Key: x.Key, Value: Raw(x.Value)})
		}
	}
	return rs.Add(patterns, decls...)
}

// Append adds all rules of another rule set, after the rules of rs.
func (rs *RuleSet) Append(other *RuleSet) {
	for _, r := range other.rules {
		r.order = len(rs.rules)
		rs.rules = append(rs.rules, r)
	}
}

// Len returns the number of rules.
func (rs *RuleSet) Len() int {
	return len(rs.rules)
}

// Properties implements interface Theme. Declarations are returned in
// lexical order of their keys.
func (rs *RuleSet) Properties(sel *Selector) []Declaration {
	var matching []Rule
	for _, r := range rs.rules {
		if r.Pattern.Matches(sel) {
			matching = append(matching, r)
		}
	}
	if len(matching) == 0 {
		return nil
	}
	slices.SortStableFunc(matching, func(a, b Rule) int {
		if c := cmp.Compare(a.Pattern.Specificity(), b.Pattern.Specificity()); c != 0 {
			return c
		}
		return cmp.Compare(a.order, b.order)
	})
	decls := make(map[string]Declaration)
	for _, r := range matching {
		for _, d := range r.Declarations {
			if prev, ok := decls[d.Key]; ok && prev.Important && !d.Important {
				continue
			}
			decls[d.Key] = d
		}
	}
	r := make([]Declaration, 0, len(decls))
	for _, d := range decls {
		r = append(r, d)
	}
	slices.SortFunc(r, func(a, b Declaration) int { return cmp.Compare(a.Key, b.Key) })
	tracer().Debugf("theme: %d declarations for %s", len(r), sel)
	return r
}
