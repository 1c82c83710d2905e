/*
Package frame holds the per-application state of a frame: the list of dirty
widgets and the queue of widgets waiting for removal.

Marking a widget dirty sets its "dirty" component and appends it to the
dirty list, unless it already is the last entry. The list therefore
suppresses adjacent duplicates only; it is not a set. Marking a shared
property dirty marks every entity sharing its storage.

The layout driver consumes the dirty list once per frame and clears it
afterwards.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package frame

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'widgetry.frame'.
func tracer() tracing.Trace {
	return tracing.Select("widgetry.frame")
}
