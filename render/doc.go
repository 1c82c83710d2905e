/*
Package render connects the widget core to a rendering backend.

The backend itself is a collaborator: it provides a Canvas to draw on and
a TextMeasurer to size text. Widgets register render objects, and System
walks the widget tree once per frame, translating the relative bounds
computed by layout into absolute coordinates.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package render

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'widgetry.render'.
func tracer() tracing.Trace {
	return tracing.Select("widgetry.render")
}
