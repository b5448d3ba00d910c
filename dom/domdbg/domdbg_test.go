package domdbg_test

import (
	"strings"
	"testing"

	"github.com/npillmayer/cssinline/dom"
	"github.com/npillmayer/cssinline/dom/domdbg"
)

func TestSprint(t *testing.T) {
	doc, err := dom.Parse(strings.NewReader(
		`<body><div id="main" class="a b"><p style="color: red">Hello World</p></div></body>`))
	if err != nil {
		t.Fatal(err)
	}
	domdbg.Dump(doc, t)
	s := domdbg.Sprint(doc)
	if !strings.Contains(s, "<div#main.a.b>") {
		t.Errorf("expected div to be labeled with id and classes, tree is\n%s", s)
	}
	if !strings.Contains(s, "[color: red]") {
		t.Errorf("expected style of <p> as meta value, tree is\n%s", s)
	}
	if !strings.Contains(s, `"Hello World"`) {
		t.Errorf("expected text of <p> in tree, tree is\n%s", s)
	}
}
