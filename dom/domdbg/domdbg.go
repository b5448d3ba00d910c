/*
Package domdbg implements helpers to debug a DOM tree.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>


*/
package domdbg

import (
	"fmt"
	"strings"
	"testing"

	"github.com/npillmayer/cssinline/dom/w3cdom"
	tp "github.com/xlab/treeprint"
	"golang.org/x/net/html"
)

// Tree creates a printable tree for the DOM below n. Elements are listed
// by tag name, with their style attribute (if any) as meta information.
// Non-blank text is included in shortened form; comments are skipped.
func Tree(n w3cdom.Node) tp.Tree {
	if n == nil {
		return tp.New()
	}
	tree := tp.NewWithRoot(label(n))
	children(n, tree)
	return tree
}

// Sprint returns the printed tree for the DOM below n.
func Sprint(n w3cdom.Node) string {
	return Tree(n).String()
}

// Dump is a helper for testing. It logs the DOM tree under doc to t.
func Dump(doc w3cdom.Node, t *testing.T) {
	t.Logf("DOM =\n%s", Sprint(doc))
}

func children(n w3cdom.Node, tree tp.Tree) {
	for ch := n.FirstChild(); ch != nil; ch = ch.NextSibling() {
		switch ch.NodeType() {
		case html.ElementNode:
			var branch tp.Tree
			if style, ok := ch.GetAttribute("style"); ok {
				branch = tree.AddMetaBranch(style, label(ch))
			} else {
				branch = tree.AddBranch(label(ch))
			}
			children(ch, branch)
		case html.TextNode:
			if txt := strings.TrimSpace(ch.NodeValue()); txt != "" {
				tree.AddNode(shortText(txt))
			}
		}
	}
}

func label(n w3cdom.Node) string {
	if n.NodeType() != html.ElementNode {
		return n.NodeName()
	}
	s := "<" + n.NodeName()
	if id, ok := n.GetAttribute("id"); ok {
		s += "#" + id
	}
	if class, ok := n.GetAttribute("class"); ok {
		for _, c := range strings.Fields(class) {
			s += "." + c
		}
	}
	return s + ">"
}

func shortText(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if r := []rune(s); len(r) > 20 {
		return fmt.Sprintf("%q…", string(r[:20]))
	}
	return fmt.Sprintf("%q", s)
}
