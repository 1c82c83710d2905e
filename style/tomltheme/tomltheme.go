/*
Package tomltheme reads widget themes from TOML documents.

A theme document consists of a table "styles", keyed by selector patterns:

	[styles."button"]
	background = "#808080"
	padding = "2 4"          # shortcut, split into padding_top … padding_left
	min_width = 40

	[styles."button:focused, button.primary"]
	background = "#336699"

String values are kept raw and interpreted when applied to a widget
property, numbers become float64 values, and arrays of 1, 2 or 4 numbers
become thicknesses (left, top, right, bottom order, see props.ParseThickness).

Rules of equal specificity are applied in lexical order of their patterns,
as TOML tables carry no order.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package tomltheme

import (
	"fmt"
	"os"
	"slices"
	"strconv"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/widgetry/props"
	"github.com/npillmayer/widgetry/style"
	"github.com/pelletier/go-toml/v2"
)

// tracer traces with key 'widgetry.style'.
func tracer() tracing.Trace {
	return tracing.Select("widgetry.style")
}

type document struct {
	Name   string                    `toml:"name"`
	Styles map[string]map[string]any `toml:"styles"`
}

// Theme is a widget theme read from TOML.
type Theme struct {
	Name  string
	rules style.RuleSet
}

var _ style.Theme = &Theme{}

// Parse reads a theme from a TOML document.
func Parse(data []byte) (*Theme, error) {
	var doc document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("reading TOML theme: %w", err)
	}
	th := &Theme{Name: doc.Name}
	patterns := make([]string, 0, len(doc.Styles))
	for p := range doc.Styles {
		patterns = append(patterns, p)
	}
	slices.Sort(patterns)
	for _, p := range patterns {
		decls, err := declarations(doc.Styles[p])
		if err != nil {
			return nil, fmt.Errorf("theme rule %q: %w", p, err)
		}
		if err := th.rules.Add(p, decls...); err != nil {
			return nil, fmt.Errorf("theme rule %q: %w", p, err)
		}
	}
	tracer().Debugf("TOML theme %q with %d rules", th.Name, th.rules.Len())
	return th, nil
}

// Load reads a theme from a TOML file.
func Load(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Properties implements interface style.Theme.
func (th *Theme) Properties(sel *style.Selector) []style.Declaration {
	return th.rules.Properties(sel)
}

// Len returns the number of selector rules.
func (th *Theme) Len() int {
	return th.rules.Len()
}

func declarations(table map[string]any) ([]style.Declaration, error) {
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	var decls []style.Declaration
	for _, k := range keys {
		switch v := table[k].(type) {
		case string:
			for _, kv := range style.Expand(k, style.Property(v)) {
				decls = append(decls, style.Declaration{Key: kv.Key, Value: style.Raw(kv.Value)})
			}
		case int64:
			decls = append(decls, style.Declaration{Key: style.NormalizeKey(k), Value: style.Float64Value(float64(v))})
		case float64:
			decls = append(decls, style.Declaration{Key: style.NormalizeKey(k), Value: style.Float64Value(v)})
		case []any:
			t, err := thickness(v)
			if err != nil {
				return nil, fmt.Errorf("property %s: %w", k, err)
			}
			decls = append(decls, style.Declaration{Key: style.NormalizeKey(k), Value: style.ThicknessValue(t)})
		default:
			return nil, fmt.Errorf("property %s: unsupported value type %T", k, v)
		}
	}
	return decls, nil
}

func thickness(arr []any) (props.Thickness, error) {
	s := ""
	for i, x := range arr {
		switch n := x.(type) {
		case int64:
			s += " " + strconv.FormatInt(n, 10)
		case float64:
			s += " " + strconv.FormatFloat(n, 'g', -1, 64)
		default:
			return props.Thickness{}, fmt.Errorf("element %d of thickness is %T", i, x)
		}
	}
	return props.ParseThickness(s)
}
