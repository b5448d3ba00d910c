/*
Package tdewolffadapter is a concrete implementation of interface
cssom.StyleSheet, based on the CSS grammar parser of
github.com/tdewolff/parse.

The parser recovers from errors: malformed rules and declarations are
dropped, the rest of the stylesheet survives. This makes it a good
fallback for parsers which reject a stylesheet as a whole.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package tdewolffadapter

import (
	"errors"
	"io"
	"strings"

	"github.com/npillmayer/cssinline/dom/style/cssom"
	"github.com/npillmayer/schuko/tracing"
	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/multierr"
)

// tracer traces with key 'cssinline.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("cssinline.cssom")
}

// StyleSheet is an adapter for interface cssom.StyleSheet.
type StyleSheet struct {
	rules []*Rule
}

// Rule is an adapter for interface cssom.Rule.
type Rule struct {
	selector     string
	declarations []string
}

// Parse parses the text of a stylesheet. It is of type cssom.SheetParser.
//
// Parse always returns a stylesheet. If parts of the text have been
// dropped, the error return value combines the parse errors for them.
func Parse(text string) (cssom.StyleSheet, error) {
	p := css.NewParser(parse.NewInputString(text), false)
	sheet := &StyleSheet{}
	var errs error
	var current *Rule
	atRules := 0 // nesting level of at-rule blocks
	lastErr := -1
	for {
		gt, _, data := p.Next()
		switch gt {
		case css.ErrorGrammar:
			if !p.HasParseError() {
				if err := p.Err(); err != nil && !errors.Is(err, io.EOF) {
					errs = multierr.Append(errs, err)
				}
				if current != nil && atRules == 0 {
					sheet.rules = append(sheet.rules, current)
				}
				return sheet, errs
			}
			tracer().Debugf("CSS parse error: %v", p.Err())
			errs = multierr.Append(errs, p.Err())
			if p.Offset() == lastErr { // no progress
				return sheet, errs
			}
			lastErr = p.Offset()
		case css.BeginAtRuleGrammar:
			tracer().Debugf("skipping at-rule %s", data)
			atRules++
		case css.EndAtRuleGrammar:
			if atRules > 0 {
				atRules--
			}
		case css.BeginRulesetGrammar:
			current = &Rule{selector: tokenText(p.Values())}
		case css.DeclarationGrammar, css.CustomPropertyGrammar:
			if current != nil {
				decl := string(data) + ": " + tokenText(p.Values())
				current.declarations = append(current.declarations, decl)
			}
		case css.EndRulesetGrammar:
			if current != nil && atRules == 0 {
				sheet.rules = append(sheet.rules, current)
			}
			current = nil
		}
	}
}

var _ cssom.SheetParser = Parse

func tokenText(tokens []css.Token) string {
	var b strings.Builder
	for _, t := range tokens {
		b.Write(t.Data)
	}
	return strings.TrimSpace(b.String())
}

// Empty checks if this stylesheet contains any rules.
//
// Interface cssom.StyleSheet
func (sheet *StyleSheet) Empty() bool {
	return len(sheet.rules) == 0
}

// Rules returns all the style rules of a stylesheet.
//
// Interface cssom.StyleSheet
func (sheet *StyleSheet) Rules() []cssom.Rule {
	rules := make([]cssom.Rule, len(sheet.rules))
	for i := range sheet.rules {
		rules[i] = sheet.rules[i]
	}
	return rules
}

var _ cssom.StyleSheet = &StyleSheet{}

// Selector returns the prelude / selectors of the rule.
func (r *Rule) Selector() string {
	return r.selector
}

// Block returns the declarations of a rule, e.g. "color: red; margin: 0 !important"
func (r *Rule) Block() string {
	return strings.Join(r.declarations, "; ")
}

var _ cssom.Rule = &Rule{}
