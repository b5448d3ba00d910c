package cssom

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/cssinline/dom"
	"github.com/npillmayer/cssinline/dom/style"
	"github.com/npillmayer/cssinline/dom/w3cdom"
	"go.uber.org/multierr"
)

// StyleRule is a style rule for a single selector, ready to be matched
// against elements. A stylesheet rule with a selector list results in one
// StyleRule per selector.
type StyleRule struct {
	Selector     string
	Specificity  Specificity
	SourceIndex  int // position in document order, across all <style> elements
	Declarations style.DeclarationList
	matcher      Selector
}

// Matches is a predicate wether the rule's selector matches element n.
func (r *StyleRule) Matches(n w3cdom.Node) bool {
	return r.matcher != nil && r.matcher.Match(n)
}

func (r *StyleRule) String() string {
	return fmt.Sprintf("#%d %s %v { %s }", r.SourceIndex, r.Selector, r.Specificity, r.Declarations)
}

// SheetError is flagged if a stylesheet parser rejects the content of a
// <style> element as a whole.
type SheetError struct {
	Err error
}

func (e *SheetError) Error() string {
	return fmt.Sprintf("stylesheet rejected: %v", e.Err)
}

func (e *SheetError) Unwrap() error {
	return e.Err
}

// ErrNoSheetParser is flagged by a collector without any stylesheet parser.
var ErrNoSheetParser = errors.New("no stylesheet parser configured")

// Collection is the result of collecting the style rules of a document.
type Collection struct {
	Rules         []*StyleRule  // in ascending order of SourceIndex
	StyleElements []w3cdom.Node // <style> elements the rules have been collected from
	Skipped       []w3cdom.Node // <style> elements left alone
	selectors     *SelectorCache
}

// MatchingRules returns the rules matching element n, in source order.
func (c *Collection) MatchingRules(n w3cdom.Node) []*StyleRule {
	var matching []*StyleRule
	for _, r := range c.Rules {
		if r.Matches(n) {
			matching = append(matching, r)
		}
	}
	return matching
}

// Selectors returns the cache of selectors compiled during collection.
func (c *Collection) Selectors() *SelectorCache {
	return c.selectors
}

// Collector gathers the style rules of the <style> elements of a document.
type Collector struct {
	Parsers  []SheetParser    // tried in order until one returns a stylesheet
	Compiler SelectorCompiler // nil selects CascadiaCompiler
}

// Collect finds all <style> elements below doc in document order and
// turns their rules into StyleRules.
//
// A <style> element is left alone (i.e., it is appended to Skipped instead
// of StyleElements) if it carries an attribute inline="false", or if it
// carries a media attribute not applying to screens, e.g. media="print".
//
// Collecting never fails as a whole: stylesheets, selectors and
// declarations which cannot be understood are dropped, and the rest of
// the document is processed. The error return value, if non-nil, combines
// errors for everything dropped (*SheetError, *SelectorError,
// *style.DeclarationError, *style.ShorthandError); use multierr.Errors to
// unpack it.
func (c Collector) Collect(doc w3cdom.Node) (*Collection, error) {
	coll := &Collection{selectors: NewSelectorCache(c.Compiler)}
	var errs error
	index := 0
	dom.Walk(doc, dom.NodeIsStyleElement, func(n w3cdom.Node) error {
		if skipStyleElement(n) {
			coll.Skipped = append(coll.Skipped, n)
			return nil
		}
		coll.StyleElements = append(coll.StyleElements, n)
		text, _ := n.TextContent()
		if strings.TrimSpace(text) == "" {
			return nil
		}
		sheet, err := c.parse(text)
		errs = multierr.Append(errs, err)
		if sheet == nil || sheet.Empty() {
			return nil
		}
		for _, rule := range sheet.Rules() {
			decls, err := style.ParseDeclarations(rule.Block())
			errs = multierr.Append(errs, err)
			for _, text := range SplitSelectorGroup(rule.Selector()) {
				sel, err := coll.selectors.Compile(text)
				if err != nil {
					tracer().Infof("skipping selector: %v", err)
					errs = multierr.Append(errs, err)
					continue
				}
				index++
				if len(decls) == 0 {
					continue
				}
				coll.Rules = append(coll.Rules, &StyleRule{
					Selector:     text,
					Specificity:  sel.Specificity(),
					SourceIndex:  index,
					Declarations: decls,
					matcher:      sel,
				})
			}
		}
		return nil
	})
	tracer().Debugf("collected %d rules from %d <style> elements (%d skipped)",
		len(coll.Rules), len(coll.StyleElements), len(coll.Skipped))
	return coll, errs
}

func (c Collector) parse(text string) (StyleSheet, error) {
	if len(c.Parsers) == 0 {
		return nil, ErrNoSheetParser
	}
	var errs error
	for _, parse := range c.Parsers {
		sheet, err := parse(text)
		if sheet == nil {
			tracer().Debugf("stylesheet parser failed: %v", err)
			errs = multierr.Append(errs, &SheetError{Err: err})
			continue
		}
		return sheet, multierr.Append(errs, err)
	}
	return nil, errs
}

// skipStyleElement is a predicate wether a <style> element should not be
// inlined.
func skipStyleElement(n w3cdom.Node) bool {
	if v, ok := n.GetAttribute("inline"); ok && strings.EqualFold(strings.TrimSpace(v), "false") {
		tracer().Debugf("<style inline=\"false\"> will not be inlined")
		return true
	}
	if media, ok := n.GetAttribute("media"); ok && !IsScreenMedia(media) {
		tracer().Debugf("<style media=%q> will not be inlined", media)
		return true
	}
	return false
}

// IsScreenMedia is a predicate wether the value of a media attribute
// applies to screens. Only plain media types are understood: a media
// query list applies if one of its queries is "all" or "screen"
// (optionally prefixed by "only"). An empty list applies.
func IsScreenMedia(media string) bool {
	if strings.TrimSpace(media) == "" {
		return true
	}
	for _, query := range strings.Split(media, ",") {
		switch strings.ToLower(strings.Join(strings.Fields(query), " ")) {
		case "all", "screen", "only all", "only screen":
			return true
		}
	}
	return false
}
