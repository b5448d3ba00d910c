package cssom

import (
	"errors"
	"fmt"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/cssinline/dom/style"
	"github.com/npillmayer/cssinline/dom/w3cdom"
	"golang.org/x/net/html"
)

// Specificity is the CSS specificity of a selector: counts of
// (ids, classes/attributes/pseudo-classes, types/pseudo-elements).
type Specificity [3]int

// Compare compares specificities lexicographically. It returns -1, 0 or +1.
func (s Specificity) Compare(other Specificity) int {
	for i := range s {
		if s[i] < other[i] {
			return -1
		} else if s[i] > other[i] {
			return 1
		}
	}
	return 0
}

// Less is a predicate wether s is less specific than other.
func (s Specificity) Less(other Specificity) bool {
	return s.Compare(other) < 0
}

func (s Specificity) String() string {
	return fmt.Sprintf("(%d,%d,%d)", s[0], s[1], s[2])
}

// Selector is a compiled selector.
type Selector interface {
	Match(w3cdom.Node) bool   // does the selector match an element?
	Specificity() Specificity // specificity of the selector
	String() string
}

// SelectorCompiler compiles the text of a single selector (no selector
// lists) into a Selector.
type SelectorCompiler interface {
	Compile(string) (Selector, error)
}

// CascadiaCompiler is the default selector compiler, backed by package
// cascadia. Pseudo-elements are not supported.
type CascadiaCompiler struct{}

// Compile is part of interface SelectorCompiler.
func (CascadiaCompiler) Compile(text string) (Selector, error) {
	sel, err := cascadia.Parse(text)
	if err != nil {
		return nil, err
	}
	return cascadiaSelector{sel: sel}, nil
}

type cascadiaSelector struct {
	sel cascadia.Sel
}

func (cs cascadiaSelector) Match(n w3cdom.Node) bool {
	h := n.HTMLNode()
	return h != nil && h.Type == html.ElementNode && cs.sel.Match(h)
}

func (cs cascadiaSelector) Specificity() Specificity {
	return Specificity(cs.sel.Specificity())
}

func (cs cascadiaSelector) String() string {
	return cs.sel.String()
}

// SelectorError is flagged for a selector which cannot be compiled.
type SelectorError struct {
	Selector string
	Err      error
}

func (e *SelectorError) Error() string {
	return fmt.Sprintf("cannot compile selector %q: %v", e.Selector, e.Err)
}

func (e *SelectorError) Unwrap() error {
	return e.Err
}

var errEmptySelector = errors.New("empty selector")

// --- Selector cache ---------------------------------------------------

// SelectorCache memoizes compiled selectors, including failures. A cache
// is meant to live for one collection of style rules and is not safe for
// concurrent use.
type SelectorCache struct {
	compiler SelectorCompiler
	entries  map[string]cacheEntry
}

type cacheEntry struct {
	sel Selector
	err error
}

// NewSelectorCache creates an empty cache for a selector compiler.
// If compiler is nil, CascadiaCompiler is used.
func NewSelectorCache(compiler SelectorCompiler) *SelectorCache {
	if compiler == nil {
		compiler = CascadiaCompiler{}
	}
	return &SelectorCache{
		compiler: compiler,
		entries:  make(map[string]cacheEntry),
	}
}

// Compile returns the compiled selector for text. Errors are of type
// *SelectorError.
func (c *SelectorCache) Compile(text string) (Selector, error) {
	text = strings.TrimSpace(text)
	if e, ok := c.entries[text]; ok {
		return e.sel, e.err
	}
	var e cacheEntry
	if text == "" {
		e.err = &SelectorError{Selector: text, Err: errEmptySelector}
	} else if sel, err := c.compiler.Compile(text); err != nil {
		e.err = &SelectorError{Selector: text, Err: err}
	} else {
		e.sel = sel
	}
	c.entries[text] = e
	return e.sel, e.err
}

// Len returns the number of cached selector texts.
func (c *SelectorCache) Len() int {
	return len(c.entries)
}

// SplitSelectorGroup splits a selector list at top-level commas.
// Commas nested in functional pseudo-classes or attribute selectors do
// not split. Parts are trimmed.
func SplitSelectorGroup(prelude string) []string {
	parts := style.SplitTopLevel(prelude, ',')
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
