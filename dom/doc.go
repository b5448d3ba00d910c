/*
Package dom provides a W3C-style DOM on top of the HTML parse trees of
golang.org/x/net/html.

Status

The API is small and driven by the needs of the style inliner. It may
grow over time.

Overview

HTML documents are parsed with golang.org/x/net/html. Package dom wraps
nodes of the resulting parse tree into type W3CNode, which implements
interface w3cdom.Node. Clients working with styles should program against
w3cdom.Node and use the helpers of this package to parse, walk and render
documents:

    doc, err := dom.Parse(strings.NewReader(text))
    …
    dom.Walk(doc, dom.NodeIsElement, func(n w3cdom.Node) error {
        …
    })
    err = dom.Render(os.Stdout, doc)

Wrapping is cheap: a W3CNode is just a pointer to a parse tree node. Two
wrappers of the same HTML node are interchangeable, and all mutations are
applied to the underlying parse tree in place.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'cssinline.dom'
func tracer() tracing.Trace {
	return tracing.Select("cssinline.dom")
}
