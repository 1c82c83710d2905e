package cssom

import (
	"github.com/npillmayer/widgetry/style"
)

// StyleSheet is an interface to abstract away a stylesheet-implementation.
// Clients will have to provide a concrete implementation of this interface
// (e.g., see package douceuradapter).
//
// See interface Rule.
type StyleSheet interface {
	AppendRules(StyleSheet) // append rules from another stylesheet
	Empty() bool            // does this stylesheet contain any rules?
	Rules() []Rule          // all the rules of a stylesheet
}

// Rule is the type stylesheets consists of.
//
// See interface StyleSheet.
type Rule interface {
	Selector() string            // the prelude / selectors of the rule
	Properties() []string        // property keys, e.g. "margin-top"
	Value(string) style.Property // property value for key, e.g. "15px"
	IsImportant(string) bool     // is property key marked as important?
}

// Theme is a widget theme made from one or more stylesheets. Later
// stylesheets take precedence over earlier ones for rules of equal
// specificity.
type Theme struct {
	rules style.RuleSet
}

var _ style.Theme = &Theme{}

// NewTheme creates a theme from stylesheets. Rules with selectors which
// can not be mapped to widget selectors are skipped and reported to the
// tracer.
func NewTheme(sheets ...StyleSheet) *Theme {
	th := &Theme{}
	for _, sheet := range sheets {
		th.Add(sheet)
	}
	return th
}

// Add appends the rules of a stylesheet to the theme.
func (th *Theme) Add(sheet StyleSheet) {
	if sheet == nil || sheet.Empty() {
		return
	}
	for _, rule := range sheet.Rules() {
		var decls []style.Declaration
		for _, key := range rule.Properties() {
			important := rule.IsImportant(key)
			for _, kv := range style.Expand(key, rule.Value(key)) {
				decls = append(decls, style.Declaration{
					Key:       kv.Key,
					Value:     style.Raw(kv.Value),
					Important: important,
				})
			}
		}
		if err := th.rules.Add(rule.Selector(), decls...); err != nil {
			tracer().Infof("skipping CSS rule %q: %v", rule.Selector(), err)
		}
	}
}

// Len returns the number of selector rules in the theme.
func (th *Theme) Len() int {
	return th.rules.Len()
}

// Properties implements interface style.Theme.
func (th *Theme) Properties(sel *style.Selector) []style.Declaration {
	return th.rules.Properties(sel)
}
