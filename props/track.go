package props

import (
	"fmt"
	"strings"
)

const (
	trackAuto uint8 = iota
	trackFixed
	trackStretch
)

// TrackSize is an option type for the sizing mode of a grid column or row.
//
//	type TrackSize
//	    = Auto           // as large as the largest child
//	    | Fixed px       // fixed pixel extent
//	    | Stretch        // equal share of the remaining space
type TrackSize struct {
	px   float64
	kind uint8
}

// Auto creates an auto-sized track.
func Auto() TrackSize {
	return TrackSize{kind: trackAuto}
}

// Fixed creates a track with a fixed extent of px.
func Fixed(px float64) TrackSize {
	return TrackSize{px: px, kind: trackFixed}
}

// StretchTrack creates a track sharing the remaining space.
func StretchTrack() TrackSize {
	return TrackSize{kind: trackStretch}
}

func (ts TrackSize) String() string {
	switch ts.kind {
	case trackFixed:
		return fmt.Sprintf("%g", ts.px)
	case trackStretch:
		return "*"
	}
	return "auto"
}

// ParseTrackSize reads "auto", "*" (or "stretch") or a pixel value.
func ParseTrackSize(s string) (TrackSize, error) {
	switch s = strings.ToLower(strings.TrimSpace(s)); s {
	case "auto", "":
		return Auto(), nil
	case "*", "stretch":
		return StretchTrack(), nil
	}
	px, err := ParseLength(s)
	if err != nil || px < 0 {
		return Auto(), fmt.Errorf("invalid track size %q", s)
	}
	return Fixed(px), nil
}

// --- Matching --------------------------------------------------------------

// Match starts a switch over the kind of a track size:
//
//	var px float64
//	switch m := ts.Match(); m {
//	case m.Fixed(&px):
//	case m.IsStretch():
//	default: // auto
//	}
func (ts TrackSize) Match() *TrackMatcher {
	return &TrackMatcher{ts: ts}
}

// TrackMatcher is returned by TrackSize.Match.
type TrackMatcher struct {
	ts TrackSize
}

// IsAuto matches auto-sized tracks.
func (m *TrackMatcher) IsAuto() *TrackMatcher {
	if m.ts.kind == trackAuto {
		return m
	}
	return nil
}

// IsStretch matches stretch tracks.
func (m *TrackMatcher) IsStretch() *TrackMatcher {
	if m.ts.kind == trackStretch {
		return m
	}
	return nil
}

// Fixed matches fixed tracks and extracts their extent into px (if non-nil).
func (m *TrackMatcher) Fixed(px *float64) *TrackMatcher {
	if m.ts.kind == trackFixed {
		if px != nil {
			*px = m.ts.px
		}
		return m
	}
	return nil
}

// TrackPatterns is a set of alternatives to select from, see TrackPattern.
type TrackPatterns[T any] struct {
	Auto    T
	Fixed   T
	Stretch T
}

// TrackPattern prepares an expression selecting one of TrackPatterns by the
// kind of ts.
func TrackPattern[T any](ts TrackSize) *TrackExpr[T] {
	return &TrackExpr[T]{ts: ts}
}

// TrackExpr is returned by TrackPattern.
type TrackExpr[T any] struct {
	ts TrackSize
}

// OneOf selects the alternative matching the track kind.
func (e *TrackExpr[T]) OneOf(patterns TrackPatterns[T]) T {
	switch e.ts.kind {
	case trackFixed:
		return patterns.Fixed
	case trackStretch:
		return patterns.Stretch
	}
	return patterns.Auto
}

// With extracts the fixed extent of the track into px.
func (e *TrackExpr[T]) With(px *float64) *TrackExpr[T] {
	*px = e.ts.px
	return e
}

// Const returns x. It is used to chain With into a pattern alternative.
func (e *TrackExpr[T]) Const(x T) T {
	return x
}

// --- Columns and rows ------------------------------------------------------

// Column is a grid column. Current is the width computed by the latest
// arrange pass.
type Column struct {
	Width   TrackSize
	Current float64
}

// Row is a grid row. Current is the height computed by the latest arrange
// pass.
type Row struct {
	Height  TrackSize
	Current float64
}

// Columns is the column definition of a grid.
type Columns []Column

// Rows is the row definition of a grid.
type Rows []Row

// ParseColumns reads a comma separated list of track sizes,
// e.g. "auto, *, 50".
func ParseColumns(s string) (Columns, error) {
	sizes, err := parseTracks(s)
	if err != nil {
		return nil, err
	}
	cols := make(Columns, len(sizes))
	for i, ts := range sizes {
		cols[i] = Column{Width: ts}
	}
	return cols, nil
}

// ParseRows reads a comma separated list of track sizes.
func ParseRows(s string) (Rows, error) {
	sizes, err := parseTracks(s)
	if err != nil {
		return nil, err
	}
	rows := make(Rows, len(sizes))
	for i, ts := range sizes {
		rows[i] = Row{Height: ts}
	}
	return rows, nil
}

func parseTracks(s string) ([]TrackSize, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	sizes := make([]TrackSize, len(parts))
	for i, p := range parts {
		ts, err := ParseTrackSize(p)
		if err != nil {
			return nil, err
		}
		sizes[i] = ts
	}
	return sizes, nil
}

// Tracks returns the sizing modes of the columns.
func (cols Columns) Tracks() []TrackSize {
	r := make([]TrackSize, len(cols))
	for i, c := range cols {
		r[i] = c.Width
	}
	return r
}

// Tracks returns the sizing modes of the rows.
func (rows Rows) Tracks() []TrackSize {
	r := make([]TrackSize, len(rows))
	for i, row := range rows {
		r[i] = row.Height
	}
	return r
}
