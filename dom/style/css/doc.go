/*
Package css resolves the CSS cascade for a single element.

Input to the cascade are the style rules of a document which match an
element (see package cssom), and the element's own style attribute.
Output is a declaration list holding one winning declaration per
property, ready to be written back into the style attribute.

Values are never interpreted. Two declarations for "margin-top" compete
with each other, regardless of their values; "margin" has been expanded
into its longhands before the cascade sees it.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package css

// see
// https://developer.mozilla.org/en-US/docs/Web/CSS/Cascade

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cssinline.style'.
func tracer() tracing.Trace {
	return tracing.Select("cssinline.style")
}
