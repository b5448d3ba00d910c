package cssinline

import (
	"bytes"
	"io"
	"strings"

	"github.com/npillmayer/cssinline/dom"
	"github.com/npillmayer/cssinline/dom/domdbg"
	"github.com/npillmayer/cssinline/dom/style/css"
	"github.com/npillmayer/cssinline/dom/style/cssom"
	"github.com/npillmayer/cssinline/dom/style/cssom/douceuradapter"
	"github.com/npillmayer/cssinline/dom/style/cssom/tdewolffadapter"
	"github.com/npillmayer/cssinline/dom/w3cdom"
	"github.com/npillmayer/schuko/tracing"
	"go.uber.org/multierr"
	"golang.org/x/net/html"
)

// Option configures an inlining pass.
type Option func(*inliner)

// WithSelectorCompiler replaces the default (cascadia based) selector engine.
func WithSelectorCompiler(compiler cssom.SelectorCompiler) Option {
	return func(in *inliner) {
		in.collector.Compiler = compiler
	}
}

// WithDiagnostics registers a callback which receives every error recovered
// from during inlining, e.g. a malformed declaration or a selector which
// cannot be compiled. Errors are of type *cssom.SheetError,
// *cssom.SelectorError, *style.DeclarationError or *style.ShorthandError.
func WithDiagnostics(report func(error)) Option {
	return func(in *inliner) {
		in.report = report
	}
}

type inliner struct {
	collector cssom.Collector
	report    func(error)
}

func newInliner(opts []Option) *inliner {
	in := &inliner{
		collector: cssom.Collector{
			Parsers: []cssom.SheetParser{douceuradapter.Parse, tdewolffadapter.Parse},
		},
	}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// Inline moves the style rules of all <style> elements of doc into the
// style attributes of the elements they match. doc is modified in place.
//
// Every element (apart from <style> elements) is visited in document order.
// Its style attribute is replaced by the resolved style, which combines the
// matching rules with the declarations already present in the attribute.
// An element with an empty resolved style ends up without a style attribute.
// Finally, all <style> elements which have been inlined are removed.
//
// The only error returned is a *DocumentError for a nil doc. Local errors
// are recovered from and reported to a callback installed with
// WithDiagnostics.
func Inline(doc *html.Node, opts ...Option) error {
	if doc == nil {
		return &DocumentError{Err: ErrNilDocument}
	}
	in := newInliner(opts)
	in.inline(dom.FromHTMLNode(doc))
	return nil
}

// InlineString parses text as an HTML document, inlines its styles and
// returns the rendered result.
func InlineString(text string, opts ...Option) (string, error) {
	var b bytes.Buffer
	if err := InlineReader(strings.NewReader(text), &b, opts...); err != nil {
		return "", err
	}
	return b.String(), nil
}

// InlineReader parses an HTML document from r, inlines its styles and
// renders the result to w.
func InlineReader(r io.Reader, w io.Writer, opts ...Option) error {
	doc, err := dom.Parse(r)
	if err != nil {
		return &DocumentError{Err: err}
	}
	in := newInliner(opts)
	in.inline(doc)
	return dom.Render(w, doc)
}

func (in *inliner) inline(doc w3cdom.Node) {
	coll, err := in.collector.Collect(doc)
	in.diagnose(err)
	for _, n := range coll.Skipped {
		n.RemoveAttribute("inline")
	}
	count := 0
	dom.Walk(doc, dom.NodeIsElement, func(n w3cdom.Node) error {
		if dom.NodeIsStyleElement(n) {
			return nil
		}
		decls, err := css.ResolveElement(n, coll)
		in.diagnose(err)
		if len(decls) == 0 {
			n.RemoveAttribute("style")
			return nil
		}
		n.SetAttribute("style", decls.String())
		count++
		return nil
	})
	for _, n := range coll.StyleElements {
		n.Remove()
	}
	tracer().Infof("inlined %d rules into %d elements", len(coll.Rules), count)
	if tracer().GetTraceLevel() >= tracing.LevelDebug {
		tracer().Debugf("styled document:\n%s", domdbg.Sprint(doc))
	}
}

func (in *inliner) diagnose(err error) {
	for _, e := range multierr.Errors(err) {
		tracer().Debugf("recovered: %v", e)
		if in.report != nil {
			in.report(e)
		}
	}
}
