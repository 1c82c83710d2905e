package props

import (
	"fmt"
	"strings"
)

// Visibility of a widget. Hidden widgets take part in layout but are not
// rendered; collapsed widgets have zero size and reserve no space.
type Visibility uint8

// Visibilities.
const (
	Visible Visibility = iota
	Hidden
	Collapsed
)

func (v Visibility) String() string {
	switch v {
	case Visible:
		return "visible"
	case Hidden:
		return "hidden"
	case Collapsed:
		return "collapsed"
	}
	return fmt.Sprintf("Visibility(%d)", uint8(v))
}

// ParseVisibility reads "visible", "hidden" or "collapsed".
func ParseVisibility(s string) (Visibility, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "visible", "":
		return Visible, nil
	case "hidden":
		return Hidden, nil
	case "collapsed", "collapse":
		return Collapsed, nil
	}
	return Visible, fmt.Errorf("unknown visibility %q", s)
}
