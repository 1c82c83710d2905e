package props

import "fmt"

// Constraint bounds the size of a widget. A value of 0 means "not set".
// An explicit Width or Height overrides both the measured size and the
// min/max bounds.
type Constraint struct {
	Width, Height       float64
	MinWidth, MinHeight float64
	MaxWidth, MaxHeight float64
}

// Unconstrained is the default constraint.
var Unconstrained = Constraint{}

// Perform clamps a size through the constraint.
func (c Constraint) Perform(s Size) Size {
	return Size{
		Width:  constrain(s.Width, c.MinWidth, c.MaxWidth, c.Width),
		Height: constrain(s.Height, c.MinHeight, c.MaxHeight, c.Height),
	}
}

func constrain(val, min, max, size float64) float64 {
	if size > 0 {
		return size
	}
	if min > 0 && val < min {
		return min
	}
	if max > 0 && val > max {
		return max
	}
	return val
}

// SetByKey sets one field by its property key: "width", "height",
// "min_width", "min_height", "max_width" or "max_height".
// It returns false for other keys.
func (c *Constraint) SetByKey(key string, x float64) bool {
	switch key {
	case "width":
		c.Width = x
	case "height":
		c.Height = x
	case "min_width":
		c.MinWidth = x
	case "min_height":
		c.MinHeight = x
	case "max_width":
		c.MaxWidth = x
	case "max_height":
		c.MaxHeight = x
	default:
		return false
	}
	return true
}

// IsConstraintKey checks if key names a field of Constraint.
func IsConstraintKey(key string) bool {
	var c Constraint
	return c.SetByKey(key, 0)
}

func (c Constraint) String() string {
	return fmt.Sprintf("constraint{w=%g h=%g min=%g×%g max=%g×%g}",
		c.Width, c.Height, c.MinWidth, c.MinHeight, c.MaxWidth, c.MaxHeight)
}
