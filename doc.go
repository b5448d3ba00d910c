/*
Package cssinline moves the rules of an HTML document's <style> elements
into the style attributes of the elements they apply to.

HTML e-mail is the prime use case: many mail clients ignore stylesheets,
but honour style attributes. Given

	<style>h1 { color: red; margin: 0 }</style>
	<h1 style="margin-top: 4px">Hi</h1>

inlining results in

	<h1 style="color: red; margin-top: 4px; margin-right: 0; margin-bottom: 0; margin-left: 0">Hi</h1>

and the <style> element is gone. The cascade is resolved the way a browser
would: by specificity, then by source order, with the style attribute
applied last and !important declarations winning over unflagged ones.
The shorthands "margin" and "padding" are expanded into their longhands,
all other values are copied verbatim.

A <style> element carrying an attribute inline="false" is left in place
(minus that attribute), as is one with a media attribute not applying to
screens, e.g. media="print". At-rules are not inlined.

Inlining is best-effort. Rules, selectors and declarations which cannot be
understood are dropped; everything else is inlined. Clients interested in
what has been dropped may register a callback with WithDiagnostics.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cssinline

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cssinline'.
func tracer() tracing.Trace {
	return tracing.Select("cssinline")
}
