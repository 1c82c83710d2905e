/*
Package style connects widgets to themes.

A widget's styling identity is its Selector: an element name, an optional
id, style classes and a set of pseudo-states ("disabled", "focused", …).
Themes are collaborators implementing interface Theme. Given a selector,
a theme returns the declarations which apply to it, already resolved for
precedence. How a theme matches selectors is its own concern; package
style offers Pattern and RuleSet as a simple default, used by the CSS and
TOML themes in sub-packages.

Declaration values are of type Value, a closed union over the property
types a theme can set: brushes, numbers, thicknesses, strings and
alignments. Textual theme values stay raw until they are applied to a
widget property of a known type.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package style

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'widgetry.style'.
func tracer() tracing.Trace {
	return tracing.Select("widgetry.style")
}
