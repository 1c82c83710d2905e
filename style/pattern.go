package style

import (
	"fmt"
	"strings"
)

// Pattern is a compound selector pattern of the form
//
//	element#id.class1.class2:state1:state2
//
// Every part is optional; "*" or an empty element matches any element.
// Combinators (descendant, child, …) are not supported.
type Pattern struct {
	Element string
	ID      string
	Classes []string
	States  []string
}

// ParsePattern parses a single compound selector.
func ParsePattern(s string) (Pattern, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Pattern{}, fmt.Errorf("empty selector pattern")
	}
	if strings.ContainsAny(s, " >+~[") {
		return Pattern{}, fmt.Errorf("selector combinators not supported: %q", s)
	}
	var pat Pattern
	i := strings.IndexAny(s, "#.:")
	if i < 0 {
		i = len(s)
	}
	pat.Element = s[:i]
	if pat.Element == "*" {
		pat.Element = ""
	}
	rest := s[i:]
	for len(rest) > 0 {
		marker := rest[0]
		rest = rest[1:]
		j := strings.IndexAny(rest, "#.:")
		if j < 0 {
			j = len(rest)
		}
		name := rest[:j]
		rest = rest[j:]
		if name == "" {
			return Pattern{}, fmt.Errorf("malformed selector pattern %q", s)
		}
		switch marker {
		case '#':
			pat.ID = name
		case '.':
			pat.Classes = append(pat.Classes, name)
		case ':':
			pat.States = append(pat.States, name)
		}
	}
	return pat, nil
}

// ParsePatterns parses a comma separated list of compound selectors.
func ParsePatterns(s string) ([]Pattern, error) {
	var pats []Pattern
	for _, part := range strings.Split(s, ",") {
		pat, err := ParsePattern(part)
		if err != nil {
			return nil, err
		}
		pats = append(pats, pat)
	}
	return pats, nil
}

// Matches checks if a widget selector satisfies the pattern.
func (pat Pattern) Matches(sel *Selector) bool {
	if sel == nil {
		return false
	}
	if pat.Element != "" && pat.Element != sel.Element {
		return false
	}
	if pat.ID != "" && pat.ID != sel.ID {
		return false
	}
	for _, c := range pat.Classes {
		if !sel.HasClass(c) {
			return false
		}
	}
	for _, s := range pat.States {
		if !sel.HasState(s) {
			return false
		}
	}
	return true
}

// Specificity orders patterns the way CSS does: ids weigh more than
// classes and states, which weigh more than element names.
func (pat Pattern) Specificity() int {
	n := 10 * (len(pat.Classes) + len(pat.States))
	if pat.ID != "" {
		n += 100
	}
	if pat.Element != "" {
		n++
	}
	return n
}

func (pat Pattern) String() string {
	el := pat.Element
	if el == "" {
		el = "*"
	}
	sel := Selector{Element: el, ID: pat.ID, classes: pat.Classes, states: pat.States}
	return sel.String()
}
