/*
Package cssom provides functionality for collecting CSS style rules from
HTML documents.

Status

The collector understands style rules only. At-rules (@media, @import,
@font-face, …) are skipped, with their nested rules.

Overview

CSSOM is the "CSS Object Model", similar to the DOM for HTML. For the
purpose of inlining styles we need only a small part of it: the style
rules of all <style> elements of a document, each with a compiled
selector, its specificity and its position in document order.

CSS parsing is de-coupled by introducing appropriate interfaces
StyleSheet and Rule. Concrete implementations may be found in
sub-packages douceuradapter and tdewolffadapter. Selector matching relies
on https://godoc.org/github.com/andybalholm/cascadia, behind interface
SelectorCompiler.

A Collector turns the <style> elements of a document into a Collection:

    collector := cssom.Collector{
        Parsers: []cssom.SheetParser{douceuradapter.Parse, tdewolffadapter.Parse},
    }
    coll, err := collector.Collect(doc)  // err holds diagnostics only

Selector lists ("h1, h2 { … }") are split into individual rules, which
share their declarations. Every selector compiles exactly once per
collection, thanks to a SelectorCache owned by the collection.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'cssinline.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("cssinline.cssom")
}
