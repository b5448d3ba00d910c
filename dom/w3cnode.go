package dom

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/cssinline/dom/w3cdom"
	"golang.org/x/net/html"
)

// W3CNode is an adapter for interface w3cdom.Node, wrapping a node of an
// HTML parse tree.
type W3CNode struct {
	h *html.Node
}

var _ w3cdom.Node = &W3CNode{}

// FromHTMLNode wraps an HTML parse tree node. It returns nil for a nil
// argument.
func FromHTMLNode(h *html.Node) *W3CNode {
	if h == nil {
		return nil
	}
	return &W3CNode{h: h}
}

// wrap returns a w3cdom.Node for h, taking care to return an untyped nil
// interface for a nil node.
func wrap(h *html.Node) w3cdom.Node {
	if h == nil {
		return nil
	}
	return &W3CNode{h: h}
}

// HTMLNode gets the HTML parse tree node corresponding to this W3C node.
func (w *W3CNode) HTMLNode() *html.Node {
	if w == nil {
		return nil
	}
	return w.h
}

// NodeType returns the type of the underlying HTML node.
func (w *W3CNode) NodeType() html.NodeType {
	return w.h.Type
}

// NodeName returns the tag name of an element (lower case), or one of
// "#text", "#comment", "#document" and "#doctype".
func (w *W3CNode) NodeName() string {
	switch w.h.Type {
	case html.ElementNode:
		return w.h.Data
	case html.TextNode:
		return "#text"
	case html.CommentNode:
		return "#comment"
	case html.DocumentNode:
		return "#document"
	case html.DoctypeNode:
		return "#doctype"
	}
	return "<error>"
}

// NodeValue returns the text of text and comment nodes, and the empty
// string for every other type of node.
func (w *W3CNode) NodeValue() string {
	switch w.h.Type {
	case html.TextNode, html.CommentNode:
		return w.h.Data
	}
	return ""
}

// HasAttributes is a predicate wether a node carries attributes.
func (w *W3CNode) HasAttributes() bool {
	return len(w.h.Attr) > 0
}

// ParentNode returns the parent of a node, or nil for the root.
func (w *W3CNode) ParentNode() w3cdom.Node {
	return wrap(w.h.Parent)
}

// HasChildNodes is a predicate wether a node has children.
func (w *W3CNode) HasChildNodes() bool {
	return w.h.FirstChild != nil
}

// ChildNodes returns all children of a node.
func (w *W3CNode) ChildNodes() w3cdom.NodeList {
	var children []*W3CNode
	for ch := w.h.FirstChild; ch != nil; ch = ch.NextSibling {
		children = append(children, &W3CNode{h: ch})
	}
	return &nodeList{nodes: children}
}

// Children returns the element children of a node.
func (w *W3CNode) Children() w3cdom.NodeList {
	var children []*W3CNode
	for ch := w.h.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Type == html.ElementNode {
			children = append(children, &W3CNode{h: ch})
		}
	}
	return &nodeList{nodes: children}
}

// FirstChild returns the first child of a node, if any.
func (w *W3CNode) FirstChild() w3cdom.Node {
	return wrap(w.h.FirstChild)
}

// NextSibling returns the next sibling of a node, if any.
func (w *W3CNode) NextSibling() w3cdom.Node {
	return wrap(w.h.NextSibling)
}

// Attributes returns the attributes of a node.
func (w *W3CNode) Attributes() w3cdom.NamedNodeMap {
	return &attrMap{h: w.h}
}

// GetAttribute returns the value of attribute key (in the default
// namespace), together with an indicator wether it is present.
func (w *W3CNode) GetAttribute(key string) (string, bool) {
	for _, a := range w.h.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// SetAttribute sets attribute key to value. An existing attribute keeps
// its position in the attribute list.
func (w *W3CNode) SetAttribute(key string, value string) {
	for i, a := range w.h.Attr {
		if a.Namespace == "" && a.Key == key {
			w.h.Attr[i].Val = value
			return
		}
	}
	w.h.Attr = append(w.h.Attr, html.Attribute{Key: key, Val: value})
}

// RemoveAttribute removes every occurence of attribute key. It is a no-op
// if the node does not carry the attribute.
func (w *W3CNode) RemoveAttribute(key string) {
	attrs := w.h.Attr[:0]
	for _, a := range w.h.Attr {
		if a.Namespace == "" && a.Key == key {
			continue
		}
		attrs = append(attrs, a)
	}
	w.h.Attr = attrs
}

// Remove detaches a node (with its subtree) from its parent.
func (w *W3CNode) Remove() {
	if w.h.Parent != nil {
		tracer().Debugf("removing <%s> from DOM", w.NodeName())
		w.h.Parent.RemoveChild(w.h)
	}
}

// ErrNotText is flagged for nodes without any text content.
var ErrNotText = errors.New("node has no text content")

// TextContent returns the concatenated text of a node and its descendents.
// Comments and doctype nodes have no text content.
func (w *W3CNode) TextContent() (string, error) {
	switch w.h.Type {
	case html.CommentNode, html.DoctypeNode:
		return "", ErrNotText
	case html.TextNode:
		return w.h.Data, nil
	}
	var b strings.Builder
	collectText(w.h, &b)
	return b.String(), nil
}

func collectText(h *html.Node, b *strings.Builder) {
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Type == html.TextNode {
			b.WriteString(ch.Data)
		} else if ch.Type == html.ElementNode {
			collectText(ch, b)
		}
	}
}

func (w *W3CNode) String() string {
	if w == nil || w.h == nil {
		return "<nil>"
	}
	if w.h.Type == html.ElementNode {
		return fmt.Sprintf("<%s>", w.h.Data)
	}
	return w.NodeName()
}

// --- Node lists and attributes ----------------------------------------

type nodeList struct {
	nodes []*W3CNode
}

func (nl *nodeList) Length() int {
	return len(nl.nodes)
}

func (nl *nodeList) Item(i int) w3cdom.Node {
	if i < 0 || i >= len(nl.nodes) {
		return nil
	}
	return nl.nodes[i]
}

func (nl *nodeList) String() string {
	names := make([]string, len(nl.nodes))
	for i, n := range nl.nodes {
		names[i] = n.NodeName()
	}
	return "[" + strings.Join(names, " ") + "]"
}

type attrMap struct {
	h *html.Node
}

func (am *attrMap) Length() int {
	return len(am.h.Attr)
}

func (am *attrMap) Item(i int) w3cdom.Attr {
	if i < 0 || i >= len(am.h.Attr) {
		return nil
	}
	return attr{am.h.Attr[i]}
}

func (am *attrMap) GetNamedItem(key string) w3cdom.Attr {
	for _, a := range am.h.Attr {
		if a.Key == key {
			return attr{a}
		}
	}
	return nil
}

type attr struct {
	a html.Attribute
}

func (a attr) Namespace() string { return a.a.Namespace }
func (a attr) Key() string       { return a.a.Key }
func (a attr) Value() string     { return a.a.Val }
