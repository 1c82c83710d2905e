package props

// Component keys of the standard widget properties.
const (
	KeyID           = "id"                   // string
	KeyBounds       = "bounds"               // Rectangle, relative to the parent
	KeyConstraint   = "constraint"           // Constraint
	KeyMargin       = "margin"               // Thickness
	KeyPadding      = "padding"              // Thickness
	KeyHAlign       = "horizontal_alignment" // Alignment
	KeyVAlign       = "vertical_alignment"   // Alignment
	KeyVisibility   = "visibility"           // Visibility
	KeyEnabled      = "enabled"              // bool
	KeySelector     = "selector"             // style.Selector
	KeyFilter       = "on_changed_filter"    // widget.Filter
	KeyDirty        = "dirty"                // bool
	KeyColumns      = "columns"              // Columns
	KeyRows         = "rows"                 // Rows
	KeyColumn       = "column"               // int
	KeyRow          = "row"                  // int
	KeyColumnSpan   = "column_span"          // int
	KeyRowSpan      = "row_span"             // int
	KeyPosition     = "position"             // Point
	KeySize         = "size"                 // Size
	KeySpacing      = "spacing"              // float64
	KeyText         = "text"                 // string
	KeyFont         = "font"                 // string
	KeyFontSize     = "font_size"            // float64
	KeyBackground   = "background"           // Brush
	KeyForeground   = "foreground"           // Brush
	KeyBorderBrush  = "border_brush"         // Brush
	KeyBorderWidth  = "border_width"         // Thickness
	KeyBorderRadius = "border_radius"        // float64
	KeyOpacity      = "opacity"              // float32
	KeyElement      = "element"              // string
)
