package props

import (
	"fmt"
	"strings"
)

// Alignment positions a widget within the space its parent offers,
// horizontally or vertically.
type Alignment uint8

// Alignments. Stretch is the zero value.
const (
	Stretch Alignment = iota
	Start
	Center
	End
)

var alignmentNames = []string{"stretch", "start", "center", "end"}

func (a Alignment) String() string {
	if int(a) < len(alignmentNames) {
		return alignmentNames[a]
	}
	return fmt.Sprintf("Alignment(%d)", uint8(a))
}

// ParseAlignment accepts "start", "center", "end" and "stretch", as well
// as the synonyms "left"/"top" and "right"/"bottom".
func ParseAlignment(s string) (Alignment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "stretch":
		return Stretch, nil
	case "start", "left", "top":
		return Start, nil
	case "center", "centre":
		return Center, nil
	case "end", "right", "bottom":
		return End, nil
	}
	return Stretch, fmt.Errorf("unknown alignment %q", s)
}

// AlignMeasure fits a measured extent into the available extent.
// Stretch claims everything except the margins, all other alignments keep
// the measured extent.
func (a Alignment) AlignMeasure(available, measure, marginStart, marginEnd float64) float64 {
	if a == Stretch {
		return available - marginStart - marginEnd
	}
	return measure
}

// AlignPosition returns the offset of an extent of size measure within the
// available extent.
func (a Alignment) AlignPosition(available, measure, marginStart, marginEnd float64) float64 {
	switch a {
	case End:
		return available - measure - marginEnd
	case Center:
		return (available - measure) / 2
	}
	return marginStart
}
