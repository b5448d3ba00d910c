package dom

import (
	"io"

	"github.com/npillmayer/cssinline/dom/w3cdom"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Predicate is a filter on DOM nodes.
// It is intended to be used with Walk.
type Predicate func(w3cdom.Node) bool

// NodeIsText is a predicate to match text-nodes of a DOM.
var NodeIsText = func(n w3cdom.Node) bool {
	return n.NodeType() == html.TextNode
}

// NodeIsElement is a predicate to match element-nodes of a DOM.
var NodeIsElement = func(n w3cdom.Node) bool {
	return n.NodeType() == html.ElementNode
}

// NodeIsStyleElement is a predicate to match <style> elements.
var NodeIsStyleElement = func(n w3cdom.Node) bool {
	h := n.HTMLNode()
	return h != nil && h.Type == html.ElementNode && h.DataAtom == atom.Style
}

// Walk visits the nodes of the subtree rooted at n in document order
// (pre-order), calling visit for every node matching pred. A nil pred
// matches every node. Walking stops at the first error returned by visit.
//
// visit may change attributes of nodes, but must not change the structure
// of the tree.
func Walk(n w3cdom.Node, pred Predicate, visit func(w3cdom.Node) error) error {
	if n == nil || n.HTMLNode() == nil {
		return nil
	}
	root := n.HTMLNode()
	h := root
	for h != nil {
		node := &W3CNode{h: h}
		if pred == nil || pred(node) {
			if err := visit(node); err != nil {
				return err
			}
		}
		if h.FirstChild != nil {
			h = h.FirstChild
			continue
		}
		for h != root && h.NextSibling == nil {
			h = h.Parent
		}
		if h == root {
			break
		}
		h = h.NextSibling
	}
	return nil
}

// Parse reads an HTML document and returns its root node.
func Parse(r io.Reader) (*W3CNode, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	return FromHTMLNode(doc), nil
}

// Render writes the HTML serialization of the subtree rooted at n to w.
func Render(w io.Writer, n w3cdom.Node) error {
	return html.Render(w, n.HTMLNode())
}
