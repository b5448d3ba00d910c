package css

import (
	"sort"

	"github.com/npillmayer/cssinline/dom/style"
	"github.com/npillmayer/cssinline/dom/style/cssom"
	"github.com/npillmayer/cssinline/dom/w3cdom"
)

// Resolve computes the resolved style for an element, given the style rules
// matching the element and the text of the element's style attribute
// (empty if absent).
//
// Rules are applied in ascending order of specificity, ties broken by source
// order. Declarations of the style attribute are applied last. A later
// declaration replaces an earlier one for the same property, unless the
// earlier one is flagged !important and the later one is not. Thus
//
//     p { color: red !important }   <p style="color: blue">
//
// resolves to "color: red !important".
//
// The resulting list holds at most one declaration per property, in the
// order properties have been seen first. matching is not modified.
// The error return value holds diagnostics for declarations of the
// style attribute which have been dropped.
func Resolve(matching []*cssom.StyleRule, inline string) (style.DeclarationList, error) {
	sorted := make([]*cssom.StyleRule, len(matching))
	copy(sorted, matching)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if c := a.Specificity.Compare(b.Specificity); c != 0 {
			return c < 0
		}
		return a.SourceIndex < b.SourceIndex
	})
	var m cascade
	for _, rule := range sorted {
		tracer().Debugf("applying rule %v", rule)
		m.apply(rule.Declarations)
	}
	decls, err := style.ParseDeclarations(inline)
	m.apply(decls)
	return m.result(), err
}

// ResolveElement resolves the style of element n against all rules of a
// collection (see Resolve).
func ResolveElement(n w3cdom.Node, coll *cssom.Collection) (style.DeclarationList, error) {
	inline, _ := n.GetAttribute("style")
	return Resolve(coll.MatchingRules(n), inline)
}

// cascade merges declarations into a winner per property, remembering the
// order in which properties showed up.
type cascade struct {
	order   []string
	winners map[string]style.Declaration
}

func (m *cascade) apply(decls style.DeclarationList) {
	if m.winners == nil {
		m.winners = make(map[string]style.Declaration)
	}
	for _, d := range decls {
		current, ok := m.winners[d.Property]
		if !ok {
			m.order = append(m.order, d.Property)
		} else if current.Important && !d.Important {
			continue
		}
		m.winners[d.Property] = d
	}
}

func (m *cascade) result() style.DeclarationList {
	if len(m.order) == 0 {
		return nil
	}
	decls := make(style.DeclarationList, len(m.order))
	for i, key := range m.order {
		decls[i] = m.winners[key]
	}
	return decls
}
