/*
Package cssom provides CSS stylesheets as widget themes.

CSS handling is de-coupled from any concrete parser by interfaces
StyleSheet and Rule. Concrete implementations may be found in
sub-packages, e.g. douceuradapter.

Only a subset of CSS selectors is honoured: compound selectors made of an
element name, an id, classes and pseudo-classes, which are mapped to widget
pseudo-states:

	button:focused, .primary { background: #336699; padding: 4px 8px; }

Property names are normalized to widget property keys ("padding-left"
becomes "padding_left"), and shortcut properties are split into their
longhands.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'widgetry.style'.
func tracer() tracing.Trace {
	return tracing.Select("widgetry.style")
}
