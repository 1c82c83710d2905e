package style

import (
	"fmt"
	"strconv"

	"github.com/npillmayer/widgetry/props"
)

// Kind is the variant tag of a Value.
type Kind uint8

// Value kinds. KindRaw holds text from a theme which has not yet been
// interpreted.
const (
	KindRaw Kind = iota
	KindBrush
	KindFloat32
	KindFloat64
	KindThickness
	KindString
	KindAlignment
)

var kindNames = []string{"raw", "brush", "float32", "float64", "thickness", "string", "alignment"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Value is a theme property value.
//
//	type Value
//	    = Raw Property
//	    | Brush props.Brush
//	    | Float32 float32
//	    | Float64 float64
//	    | Thickness props.Thickness
//	    | String string
//	    | Alignment props.Alignment
//
// The As… accessors convert raw values on the fly; typed values convert
// only to their own kind (plus the lossless float conversions).
type Value struct {
	kind  Kind
	raw   Property
	brush props.Brush
	num   float64
	thick props.Thickness
	str   string
	align props.Alignment
}

// Raw wraps a textual theme value.
func Raw(p Property) Value { return Value{kind: KindRaw, raw: p} }

// BrushValue wraps a brush.
func BrushValue(b props.Brush) Value { return Value{kind: KindBrush, brush: b} }

// Float32Value wraps a float32.
func Float32Value(x float32) Value { return Value{kind: KindFloat32, num: float64(x)} }

// Float64Value wraps a float64.
func Float64Value(x float64) Value { return Value{kind: KindFloat64, num: x} }

// ThicknessValue wraps a thickness.
func ThicknessValue(t props.Thickness) Value { return Value{kind: KindThickness, thick: t} }

// StringValue wraps a string.
func StringValue(s string) Value { return Value{kind: KindString, str: s} }

// AlignmentValue wraps an alignment.
func AlignmentValue(a props.Alignment) Value { return Value{kind: KindAlignment, align: a} }

// Kind returns the variant tag.
func (v Value) Kind() Kind { return v.kind }

// AsBrush converts v to a brush.
func (v Value) AsBrush() (props.Brush, bool) {
	switch v.kind {
	case KindBrush:
		return v.brush, true
	case KindRaw, KindString:
		b, err := props.ParseBrush(v.text())
		return b, err == nil
	}
	return props.Brush{}, false
}

// AsFloat64 converts v to a float64.
func (v Value) AsFloat64() (float64, bool) {
	switch v.kind {
	case KindFloat32, KindFloat64:
		return v.num, true
	case KindRaw:
		x, err := v.raw.Length()
		return x, err == nil
	}
	return 0, false
}

// AsFloat32 converts v to a float32.
func (v Value) AsFloat32() (float32, bool) {
	x, ok := v.AsFloat64()
	return float32(x), ok
}

// AsThickness converts v to a thickness. Single numbers are applied to
// all four sides.
func (v Value) AsThickness() (props.Thickness, bool) {
	switch v.kind {
	case KindThickness:
		return v.thick, true
	case KindFloat32, KindFloat64:
		return props.Uniform(v.num), true
	case KindRaw:
		t, err := props.ParseThickness(string(v.raw))
		return t, err == nil
	}
	return props.Thickness{}, false
}

// AsString converts v to a string. Raw values convert unchanged.
func (v Value) AsString() (string, bool) {
	switch v.kind {
	case KindString, KindRaw:
		return v.text(), true
	}
	return "", false
}

// AsAlignment converts v to an alignment.
func (v Value) AsAlignment() (props.Alignment, bool) {
	switch v.kind {
	case KindAlignment:
		return v.align, true
	case KindRaw, KindString:
		a, err := props.ParseAlignment(v.text())
		return a, err == nil
	}
	return props.Stretch, false
}

func (v Value) text() string {
	if v.kind == KindRaw {
		return string(v.raw)
	}
	return v.str
}

func (v Value) String() string {
	switch v.kind {
	case KindRaw, KindString:
		return strconv.Quote(v.text())
	case KindBrush:
		return v.brush.String()
	case KindFloat32, KindFloat64:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	case KindThickness:
		return v.thick.String()
	case KindAlignment:
		return v.align.String()
	}
	return "?"
}
