package cssom

// StyleSheet is an interface to abstract away a stylesheet-implementation.
// In order to de-couple implementations of CSS-stylesheets from the
// collection of style rules, we introduce an interface
// for CSS stylesheets. Clients of the collector will have to
// provide a concrete implementation of this interface (e.g., see
// packages douceuradapter and tdewolffadapter).
//
// Stylesheets contain style rules only; at-rules (@media, @import, …)
// are not represented.
//
// See interface Rule.
type StyleSheet interface {
	Empty() bool   // does this stylesheet contain any rules?
	Rules() []Rule // all the style rules of a stylesheet, in source order
}

// Rule is the type stylesheets consists of.
//
// See interface StyleSheet.
type Rule interface {
	Selector() string // the prelude / selectors of the rule
	Block() string    // the declaration block, without braces
}

// SheetParser creates a stylesheet from the text of a <style> element.
// It returns an error if it cannot make sense of the text at all.
// A parser which recovers from malformed parts of the text returns the
// partial stylesheet, together with an error describing what it dropped.
type SheetParser func(text string) (StyleSheet, error)
