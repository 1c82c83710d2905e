package props

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Brush paints the background, border or foreground of a widget.
// Currently only solid colors are supported.
type Brush struct {
	Color color.RGBA
}

// SolidColor creates a brush from a color.
func SolidColor(c color.Color) Brush {
	r, g, b, a := c.RGBA()
	return Brush{color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}}
}

// IsTransparent is true for fully transparent brushes.
func (b Brush) IsTransparent() bool {
	return b.Color.A == 0
}

func (b Brush) String() string {
	c := b.Color
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

var namedColors = map[string]color.RGBA{
	"transparent": {0, 0, 0, 0},
	"black":       {0, 0, 0, 0xff},
	"white":       {0xff, 0xff, 0xff, 0xff},
	"red":         {0xff, 0, 0, 0xff},
	"green":       {0, 0xff, 0, 0xff},
	"blue":        {0, 0, 0xff, 0xff},
	"gray":        {0x80, 0x80, 0x80, 0xff},
	"grey":        {0x80, 0x80, 0x80, 0xff},
	"lightgray":   {0xd3, 0xd3, 0xd3, 0xff},
	"darkgray":    {0xa9, 0xa9, 0xa9, 0xff},
	"powderblue":  {0xb0, 0xe0, 0xe6, 0xff},
}

// ParseBrush reads a color name or a hex color of the form #rgb, #rrggbb
// or #rrggbbaa.
func ParseBrush(s string) (Brush, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[s]; ok {
		return Brush{c}, nil
	}
	if !strings.HasPrefix(s, "#") {
		return Brush{}, fmt.Errorf("not a color: %q", s)
	}
	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return Brush{}, fmt.Errorf("not a color: %q", s)
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Brush{}, fmt.Errorf("not a color: %q: %w", s, err)
	}
	return Brush{color.RGBA{uint8(n >> 24), uint8(n >> 16), uint8(n >> 8), uint8(n)}}, nil
}
