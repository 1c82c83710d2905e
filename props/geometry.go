package props

import (
	"fmt"
	"strconv"
	"strings"
)

// Point is a position in 2D space.
type Point struct {
	X, Y float64
}

// Size is a width and a height.
type Size struct {
	Width, Height float64
}

// IsEmpty is true if one of the dimensions is not positive.
func (s Size) IsEmpty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Max returns the component-wise maximum of two sizes.
func (s Size) Max(other Size) Size {
	return Size{max(s.Width, other.Width), max(s.Height, other.Height)}
}

func (s Size) String() string {
	return fmt.Sprintf("(%g×%g)", s.Width, s.Height)
}

// Rectangle is the bounds of a widget. X and Y are relative to the
// parent widget.
type Rectangle struct {
	X, Y, Width, Height float64
}

// Position returns the upper left corner.
func (r Rectangle) Position() Point {
	return Point{r.X, r.Y}
}

// Size returns the dimensions of r.
func (r Rectangle) Size() Size {
	return Size{r.Width, r.Height}
}

// SetSize sets width and height.
func (r *Rectangle) SetSize(w, h float64) {
	r.Width, r.Height = w, h
}

// SetPosition sets x and y.
func (r *Rectangle) SetPosition(x, y float64) {
	r.X, r.Y = x, y
}

// Contains checks if p is inside r, right and bottom edges excluded.
func (r Rectangle) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}

func (r Rectangle) String() string {
	return fmt.Sprintf("[%g,%g %g×%g]", r.X, r.Y, r.Width, r.Height)
}

// --- Thickness -------------------------------------------------------------

// Thickness describes the four sides of a margin, padding or border.
type Thickness struct {
	Left, Top, Right, Bottom float64
}

// Uniform creates a thickness with all sides set to x.
func Uniform(x float64) Thickness {
	return Thickness{x, x, x, x}
}

// Symmetric creates a thickness with horizontal sides h and vertical sides v.
func Symmetric(h, v float64) Thickness {
	return Thickness{Left: h, Top: v, Right: h, Bottom: v}
}

// Horizontal returns left + right.
func (t Thickness) Horizontal() float64 {
	return t.Left + t.Right
}

// Vertical returns top + bottom.
func (t Thickness) Vertical() float64 {
	return t.Top + t.Bottom
}

// Inset shrinks a rectangle by t, never below zero size.
func (t Thickness) Inset(r Rectangle) Rectangle {
	return Rectangle{
		X:      r.X + t.Left,
		Y:      r.Y + t.Top,
		Width:  max(0, r.Width-t.Horizontal()),
		Height: max(0, r.Height-t.Vertical()),
	}
}

// SetSide sets one side, named "left", "top", "right" or "bottom".
// It returns false for other names.
func (t *Thickness) SetSide(side string, x float64) bool {
	switch side {
	case "left":
		t.Left = x
	case "top":
		t.Top = x
	case "right":
		t.Right = x
	case "bottom":
		t.Bottom = x
	default:
		return false
	}
	return true
}

func (t Thickness) String() string {
	return fmt.Sprintf("{%g %g %g %g}", t.Left, t.Top, t.Right, t.Bottom)
}

// ParseThickness reads 1, 2 or 4 numbers. The order of four values is
// left, top, right, bottom; two values are horizontal and vertical.
// Values may carry a "px" unit.
func ParseThickness(s string) (Thickness, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' })
	n := make([]float64, len(fields))
	for i, f := range fields {
		x, err := ParseLength(f)
		if err != nil {
			return Thickness{}, fmt.Errorf("thickness %q: %w", s, err)
		}
		n[i] = x
	}
	switch len(n) {
	case 1:
		return Uniform(n[0]), nil
	case 2:
		return Symmetric(n[0], n[1]), nil
	case 4:
		return Thickness{n[0], n[1], n[2], n[3]}, nil
	}
	return Thickness{}, fmt.Errorf("thickness %q: expecting 1, 2 or 4 values", s)
}

// ParseLength parses a number with an optional "px" suffix.
func ParseLength(s string) (float64, error) {
	s = strings.TrimSuffix(strings.TrimSpace(s), "px")
	return strconv.ParseFloat(s, 64)
}
