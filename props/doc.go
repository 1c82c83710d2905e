/*
Package props defines the typed properties widgets carry as components:
geometry, alignment, margins and paddings, size constraints, visibility,
brushes, and the track definitions of grid layouts.

All arithmetic is done in float64 device-independent pixels.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package props

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'widgetry.props'.
func tracer() tracing.Trace {
	return tracing.Select("widgetry.props")
}
