package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"

	"github.com/npillmayer/widgetry/props"
)

// Property is a raw value for a theme property. For example, with
//
//	background: #336699
//
// a property value of "#336699" is set. The main purpose of wrapping
// the raw string value into type Property is to provide a set of
// convenient type conversion functions and other helpers.
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

func (p Property) String() string {
	return string(p)
}

// IsEmpty checks wether a property is empty, i.e. the null-string.
func (p Property) IsEmpty() bool {
	return p == ""
}

// Brush interprets p as a color.
func (p Property) Brush() (props.Brush, error) {
	return props.ParseBrush(string(p))
}

// Length interprets p as a number of pixels, with an optional "px" unit.
func (p Property) Length() (float64, error) {
	return props.ParseLength(string(p))
}

// KeyValue is a container for a style property.
type KeyValue struct {
	Key   string
	Value Property
}

// NormalizeKey converts a theme key to a widget property key:
// lower case, with dashes replaced by underscores.
//
//	NormalizeKey("Padding-Left") => "padding_left"
func NormalizeKey(key string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(key)), "-", "_")
}

// --- Property routing ------------------------------------------------------

// Route tells how a theme property is applied to a widget.
type Route uint8

// Routes of theme properties.
const (
	RouteGeneric    Route = iota // set the property of the same key, if types match
	RoutePadding                 // one side of the "padding" thickness
	RouteMargin                  // one side of the "margin" thickness
	RouteConstraint              // one field of the "constraint" component
)

// RouteKey classifies a (normalized) property key. For side routes the
// side name is returned as well.
//
//	RouteKey("padding_left") => RoutePadding, "left"
//	RouteKey("min_width")    => RouteConstraint, ""
func RouteKey(key string) (Route, string) {
	switch {
	case strings.HasPrefix(key, "padding_"):
		return RoutePadding, strings.TrimPrefix(key, "padding_")
	case strings.HasPrefix(key, "margin_"):
		return RouteMargin, strings.TrimPrefix(key, "margin_")
	case props.IsConstraintKey(key):
		return RouteConstraint, ""
	}
	return RouteGeneric, ""
}

// --- Compound properties ---------------------------------------------------

// IsCompound checks if key is a shortcut for four individual properties.
func IsCompound(key string) bool {
	switch key {
	case "margin", "padding", "border-color", "border-width", "border-radius":
		return true
	}
	return false
}

// SplitCompoundProperty splits up a shortcut property into its individual
// components. Returns a slice of key-value pairs representing the
// individual (fine grained) style properties.
// Example:
//
//	SplitCompoundProperty("padding", "3px")
//
// will return
//
//	"padding-top"    => "3px"
//	"padding-right"  => "3px"
//	"padding-bottom" => "3px"
//	"padding-left"   => "3px"
//
// Values are distributed the way CSS does it: one value for all sides,
// two values for vertical and horizontal sides, three values for top,
// horizontal and bottom, and four values clockwise starting at the top.
func SplitCompoundProperty(key string, value Property) ([]KeyValue, error) {
	fields := strings.Fields(value.String())
	switch key {
	case "margin":
		return feazeCompound4("margin", "", fourDirs, fields)
	case "padding":
		return feazeCompound4("padding", "", fourDirs, fields)
	case "border-color":
		return feazeCompound4("border", "color", fourDirs, fields)
	case "border-width":
		return feazeCompound4("border", "width", fourDirs, fields)
	case "border-radius":
		return feazeCompound4("border", "radius", fourCorners, fields)
	}
	return nil, fmt.Errorf("not recognized as compound property: %s", key)
}

func feazeCompound4(pre string, suf string, dirs [4]string, fields []string) ([]KeyValue, error) {
	l := len(fields)
	if l == 0 || l > 4 {
		return nil, fmt.Errorf("expecting 1-4 values for %s", p(pre, suf, "*"))
	}
	r := make([]KeyValue, 4)
	r[0] = KeyValue{p(pre, suf, dirs[0]), Property(fields[0])}
	if l >= 2 {
		r[1] = KeyValue{p(pre, suf, dirs[1]), Property(fields[1])}
		if l >= 3 {
			r[2] = KeyValue{p(pre, suf, dirs[2]), Property(fields[2])}
			if l == 4 {
				r[3] = KeyValue{p(pre, suf, dirs[3]), Property(fields[3])}
			} else {
				r[3] = KeyValue{p(pre, suf, dirs[3]), Property(fields[1])}
			}
		} else {
			r[2] = KeyValue{p(pre, suf, dirs[2]), Property(fields[0])}
			r[3] = KeyValue{p(pre, suf, dirs[3]), Property(fields[1])}
		}
	} else {
		r[1] = KeyValue{p(pre, suf, dirs[1]), Property(fields[0])}
		r[2] = KeyValue{p(pre, suf, dirs[2]), Property(fields[0])}
		r[3] = KeyValue{p(pre, suf, dirs[3]), Property(fields[0])}
	}
	return r, nil
}

var fourDirs = [4]string{"top", "right", "bottom", "left"}
var fourCorners = [4]string{"top-right", "bottom-right", "bottom-left", "top-left"}

func p(prefix string, suffix string, tag string) string {
	if suffix == "" {
		return prefix + "-" + tag
	}
	if prefix == "" {
		return tag + "-" + suffix
	}
	return prefix + "-" + tag + "-" + suffix
}

// Expand normalizes a raw declaration: compound properties are split into
// their longhands, and all keys are normalized. Non-compound values are
// returned as a single pair.
func Expand(key string, value Property) []KeyValue {
	key = strings.ToLower(strings.TrimSpace(key))
	if IsCompound(key) {
		kvs, err := SplitCompoundProperty(key, value)
		if err == nil {
			for i := range kvs {
				kvs[i].Key = NormalizeKey(kvs[i].Key)
			}
			return kvs
		}
		tracer().Errorf("theme property %s: %v", key, err)
	}
	return []KeyValue{{NormalizeKey(key), value}}
}
