/*
Package douceuradapter is a concrete implementation of interface cssom.StyleSheet.

Douceur parses stylesheets quickly, but gives up on the first malformed
rule or declaration. Clients should be prepared to fall back to a more
forgiving parser (see package tdewolffadapter).

Some stylesheets douceur accepts, but misreads: it starts a new property
name at every colon of a declaration, so

    filter: progid:DXImageTransform.Microsoft.Alpha(Opacity=80)

ends up as property "progid", and a declaration block left open at the end
of the input yields a property without a value. Parse rejects these
stylesheets with ErrUnsupported.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package douceuradapter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/gorilla/css/scanner"
	"github.com/npillmayer/cssinline/dom/style/cssom"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cssinline.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("cssinline.cssom")
}

// CSSStyles is an adapter for interface cssom.StyleSheet.
// For an explanation of the motivation behind this design, please refer
// to documentation for interface cssom.StyleSheet.
type CSSStyles struct {
	css css.Stylesheet
}

// ErrUnsupported is flagged for stylesheets douceur would misread.
var ErrUnsupported = errors.New("stylesheet not supported by douceur")

// Parse parses the text of a stylesheet. It is of type cssom.SheetParser.
func Parse(text string) (cssom.StyleSheet, error) {
	if err := check(text); err != nil {
		tracer().Debugf("douceur: %v", err)
		return nil, err
	}
	sheet, err := parser.Parse(text)
	if err != nil {
		return nil, err
	}
	return Wrap(sheet), nil
}

var _ cssom.SheetParser = Parse

// check scans text with douceur's tokenizer and looks for declarations
// with more than one colon and for text left over at the end of the input.
// Tokenizer errors are left to douceur.
func check(text string) error {
	colons := 0
	pending := false // tokens since the last '{', '}' or ';'
	s := scanner.New(text)
	for {
		token := s.Next()
		switch token.Type {
		case scanner.TokenEOF:
			if pending {
				return fmt.Errorf("%w: unterminated block at end of input", ErrUnsupported)
			}
			return nil
		case scanner.TokenError:
			return nil
		case scanner.TokenS, scanner.TokenComment, scanner.TokenBOM,
			scanner.TokenCDO, scanner.TokenCDC:
			continue
		case scanner.TokenChar:
			switch token.Value {
			case "{":
				colons, pending = 0, false
				continue
			case ";", "}":
				if colons > 1 {
					return fmt.Errorf("%w: colon in property value", ErrUnsupported)
				}
				colons, pending = 0, false
				continue
			case ":":
				colons++
			}
		}
		pending = true
	}
}

// Wrap a douceur.css.Stylesheet into CssStyles.
// The stylesheet is now managed by the wrapper.
func Wrap(css *css.Stylesheet) *CSSStyles {
	sheet := &CSSStyles{*css}
	return sheet
}

// Empty checks if this stylesheet contains any style rules.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Empty() bool {
	for _, r := range sheet.css.Rules {
		if r.Kind == css.QualifiedRule {
			return false
		}
	}
	return true
}

// Rules returns all the style rules of a stylesheet. At-rules are skipped.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Rules() []cssom.Rule {
	rules := make([]cssom.Rule, 0, len(sheet.css.Rules))
	for _, r := range sheet.css.Rules {
		if r.Kind != css.QualifiedRule {
			tracer().Debugf("skipping at-rule %s %s", r.Name, r.Prelude)
			continue
		}
		rules = append(rules, Rule(*r))
	}
	return rules
}

var _ cssom.StyleSheet = &CSSStyles{}

// Rule is an adapter for interface cssom.Rule.
type Rule css.Rule

// Selector returns the prelude / selectors of the rule.
func (r Rule) Selector() string {
	return r.Prelude
}

// Block returns the declarations of a rule, re-assembled as a declaration
// block, e.g. "color: red; margin: 0 !important;"
func (r Rule) Block() string {
	decls := make([]string, len(r.Declarations))
	for i, d := range r.Declarations {
		decls[i] = d.String()
	}
	return strings.Join(decls, " ")
}

var _ cssom.Rule = &Rule{}
