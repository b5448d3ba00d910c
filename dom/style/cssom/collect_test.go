package cssom_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/cssinline/dom"
	"github.com/npillmayer/cssinline/dom/style/cssom"
	"github.com/npillmayer/cssinline/dom/style/cssom/douceuradapter"
	"github.com/npillmayer/cssinline/dom/style/cssom/tdewolffadapter"
	"github.com/npillmayer/cssinline/dom/w3cdom"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"go.uber.org/multierr"
)

var collector = cssom.Collector{
	Parsers: []cssom.SheetParser{douceuradapter.Parse, tdewolffadapter.Parse},
}

func collect(t *testing.T, html string) (*cssom.Collection, *dom.W3CNode, error) {
	doc, err := dom.Parse(strings.NewReader(html))
	if err != nil {
		t.Fatalf("cannot parse document: %v", err)
	}
	coll, err := collector.Collect(doc)
	for _, r := range coll.Rules {
		t.Logf("rule %v", r)
	}
	return coll, doc, err
}

func TestCollectSourceOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssinline.cssom")
	defer teardown()
	//
	coll, _, err := collect(t, `<html><head>
<style>h1, .a { color: red } p { margin: 0 }</style>
</head><body><style>#x { color: blue }</style></body></html>`)
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if len(coll.Rules) != 4 {
		t.Fatalf("expected 4 rules, have %d", len(coll.Rules))
	}
	expected := []string{"h1", ".a", "p", "#x"}
	for i, r := range coll.Rules {
		if r.Selector != expected[i] {
			t.Errorf("expected rule #%d to have selector %s, has %s", i, expected[i], r.Selector)
		}
		if r.SourceIndex != i+1 {
			t.Errorf("expected rule #%d to have source index %d, has %d", i, i+1, r.SourceIndex)
		}
	}
	if coll.Rules[0].Specificity != (cssom.Specificity{0, 0, 1}) {
		t.Errorf("expected specificity of h1 to be (0,0,1), is %v", coll.Rules[0].Specificity)
	}
	if coll.Rules[3].Specificity != (cssom.Specificity{1, 0, 0}) {
		t.Errorf("expected specificity of #x to be (1,0,0), is %v", coll.Rules[3].Specificity)
	}
	if len(coll.Rules[2].Declarations) != 4 {
		t.Errorf("expected margin to be expanded into 4 declarations, is %v", coll.Rules[2].Declarations)
	}
	if len(coll.StyleElements) != 2 {
		t.Errorf("expected 2 style elements, have %d", len(coll.StyleElements))
	}
}

func TestCollectBadSelector(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssinline.cssom")
	defer teardown()
	//
	coll, _, err := collect(t, `<style>h1, p::first-line, :bogus, h2 { color: red }</style>`)
	if len(coll.Rules) != 2 {
		t.Fatalf("expected 2 rules to survive, have %d", len(coll.Rules))
	}
	if coll.Rules[0].Selector != "h1" || coll.Rules[1].Selector != "h2" {
		t.Errorf("expected h1 and h2 to survive, have %v", coll.Rules)
	}
	errs := multierr.Errors(err)
	if len(errs) != 2 {
		t.Fatalf("expected 2 errors, have %v", err)
	}
	for _, e := range errs {
		var serr *cssom.SelectorError
		if !errors.As(e, &serr) {
			t.Errorf("expected selector error, have %v", e)
		}
	}
}

func TestCollectMalformedSheet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssinline.cssom")
	defer teardown()
	//
	coll, _, err := collect(t, `<style>
h1 { color: red; }
p { color }
h2 { color: green; font-weight bold; margin: 1px }
</style>`)
	if err == nil {
		t.Errorf("expected diagnostics for malformed stylesheet")
	}
	t.Logf("errors = %v", err)
	var sheetErr *cssom.SheetError
	if !errors.As(err, &sheetErr) {
		t.Errorf("expected douceur to reject the stylesheet")
	}
	if len(coll.Rules) != 2 {
		t.Fatalf("expected rules for h1 and h2, have %d", len(coll.Rules))
	}
	h2 := coll.Rules[1]
	if h2.Selector != "h2" {
		t.Errorf("expected second rule to be h2, is %s", h2.Selector)
	}
	if d, ok := h2.Declarations.Get("color"); !ok || d.Value != "green" {
		t.Errorf("expected h2 to keep color green, have %v", h2.Declarations)
	}
	if _, ok := h2.Declarations.Get("margin-left"); !ok {
		t.Errorf("expected h2 to keep margin after malformed declaration, have %v", h2.Declarations)
	}
}

func TestCollectSkipsStyleElements(t *testing.T) {
	coll, _, _ := collect(t, `<head>
<style inline="false">h1 { color: red }</style>
<style media="print">h1 { color: black }</style>
<style media="screen, print">h1 { color: blue }</style>
<style media="">h1 { color: green }</style>
</head>`)
	if len(coll.Skipped) != 2 {
		t.Errorf("expected 2 skipped style elements, have %d", len(coll.Skipped))
	}
	if len(coll.StyleElements) != 2 {
		t.Errorf("expected 2 inlined style elements, have %d", len(coll.StyleElements))
	}
	if len(coll.Rules) != 2 {
		t.Fatalf("expected 2 rules, have %d", len(coll.Rules))
	}
	if d, _ := coll.Rules[0].Declarations.Get("color"); d.Value != "blue" {
		t.Errorf("expected first rule to come from media=screen, is %v", coll.Rules[0])
	}
}

func TestCollectAtRules(t *testing.T) {
	coll, _, _ := collect(t, `<style>
@import url(x.css);
@media print { h1 { color: black } }
h1 { color: red }
</style>`)
	if len(coll.Rules) != 1 {
		t.Fatalf("expected at-rules to be skipped, have %d rules", len(coll.Rules))
	}
	if d, _ := coll.Rules[0].Declarations.Get("color"); d.Value != "red" {
		t.Errorf("expected color red, is %v", coll.Rules[0])
	}
}

func TestCollectEmpty(t *testing.T) {
	coll, _, err := collect(t, `<style>  </style><style>h1 {}</style><p>x</p>`)
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if len(coll.Rules) != 0 {
		t.Errorf("expected no rules, have %d", len(coll.Rules))
	}
	if len(coll.StyleElements) != 2 {
		t.Errorf("expected empty style elements to be collected for removal, have %d", len(coll.StyleElements))
	}
}

func TestMatchingRules(t *testing.T) {
	coll, doc, _ := collect(t, `<style>p { color: red } .a { color: blue } div p { margin: 0 }</style>
<div><p class="a">x</p></div><p>y</p>`)
	var ps []w3cdom.Node
	dom.Walk(doc, dom.NodeIsElement, func(n w3cdom.Node) error {
		if n.NodeName() == "p" {
			ps = append(ps, n)
		}
		return nil
	})
	if len(ps) != 2 {
		t.Fatalf("expected 2 paragraphs, have %d", len(ps))
	}
	if m := coll.MatchingRules(ps[0]); len(m) != 3 {
		t.Errorf("expected 3 rules to match first paragraph, have %v", m)
	}
	if m := coll.MatchingRules(ps[1]); len(m) != 1 || m[0].Selector != "p" {
		t.Errorf("expected only rule p to match second paragraph, have %v", m)
	}
}

func TestSelectorCache(t *testing.T) {
	compiler := &countingCompiler{}
	c := cssom.Collector{
		Parsers:  []cssom.SheetParser{douceuradapter.Parse},
		Compiler: compiler,
	}
	doc, _ := dom.Parse(strings.NewReader(
		`<style>p { color: red } p { margin: 0 } p, :bogus { padding: 0 } :bogus { x: y }</style>`))
	coll, err := c.Collect(doc)
	if compiler.calls != 2 {
		t.Errorf("expected 2 compilations (p, :bogus), have %d", compiler.calls)
	}
	if coll.Selectors().Len() != 2 {
		t.Errorf("expected 2 cache entries, have %d", coll.Selectors().Len())
	}
	if len(multierr.Errors(err)) != 2 {
		t.Errorf("expected both uses of the bad selector to be reported, have %v", err)
	}
	if len(coll.Rules) != 3 {
		t.Errorf("expected 3 rules for p, have %d", len(coll.Rules))
	}
}

type countingCompiler struct {
	calls int
}

func (cc *countingCompiler) Compile(text string) (cssom.Selector, error) {
	cc.calls++
	return cssom.CascadiaCompiler{}.Compile(text)
}

func TestNoParser(t *testing.T) {
	doc, _ := dom.Parse(strings.NewReader(`<style>p { color: red }</style>`))
	coll, err := cssom.Collector{}.Collect(doc)
	if !errors.Is(err, cssom.ErrNoSheetParser) {
		t.Errorf("expected ErrNoSheetParser, have %v", err)
	}
	if len(coll.Rules) != 0 {
		t.Errorf("expected no rules")
	}
}

func TestSpecificityCompare(t *testing.T) {
	a := cssom.Specificity{0, 1, 0}
	b := cssom.Specificity{0, 0, 5}
	if !b.Less(a) || a.Less(b) || a.Compare(a) != 0 {
		t.Errorf("expected (0,0,5) < (0,1,0)")
	}
	if a.String() != "(0,1,0)" {
		t.Errorf("unexpected string %s", a)
	}
}

func TestIsScreenMedia(t *testing.T) {
	for media, expected := range map[string]bool{
		"":                          true,
		"all":                       true,
		"Screen":                    true,
		"only  screen":              true,
		"print, screen":             true,
		"print":                     false,
		"screen and (max-width: 1)": false,
	} {
		if cssom.IsScreenMedia(media) != expected {
			t.Errorf("expected IsScreenMedia(%q) to be %v", media, expected)
		}
	}
}
