package style

import "fmt"

// ShorthandError is flagged for a shorthand property with an unsupported
// number of values, e.g. "margin: 1px 2px 3px 4px 5px".
type ShorthandError struct {
	Property string
	Value    Property
	Count    int // number of value components found
}

func (e *ShorthandError) Error() string {
	return fmt.Sprintf("shorthand %s expects 1 to 4 values, got %d: %q",
		e.Property, e.Count, e.Value)
}

// expander splits a shorthand value into longhand key-value pairs.
type expander func(key string, value Property) ([]KeyValue, error)

// shorthands maps shorthand property names to their expansion strategy.
// Properties not contained are not expanded.
var shorthands = map[string]expander{
	"margin":  expandFourSides,
	"padding": expandFourSides,
}

// IsShorthand is a predicate wether key names a shorthand property which
// Expand will split up.
func IsShorthand(key string) bool {
	_, ok := shorthands[key]
	return ok
}

// Expand splits up a shorthand property into its individual components.
// Returns a slice of key-value pairs representing the individual (fine
// grained) style properties.
// Example:
//    Expand("padding", "3px 5px")
// will return
//    "padding-top"    => "3px"
//    "padding-right"  => "5px"
//    "padding-bottom" => "3px"
//    "padding-left"   => "5px"
// For the logic behind this, refer to e.g.
// https://www.w3schools.com/css/css_padding.asp .
//
// Properties which are not shorthands are returned unchanged, as a single
// pair. Expand is a pure function.
func Expand(key string, value Property) ([]KeyValue, error) {
	if expand, ok := shorthands[key]; ok {
		return expand(key, value)
	}
	return []KeyValue{{Key: key, Value: value}}, nil
}

var fourDirs = [4]string{"top", "right", "bottom", "left"}

// fourSides tells for every count of given values which value goes to
// top, right, bottom and left, respectively.
var fourSides = [5][4]int{
	{},
	{0, 0, 0, 0}, // all sides
	{0, 1, 0, 1}, // vertical | horizontal
	{0, 1, 2, 1}, // top | horizontal | bottom
	{0, 1, 2, 3}, // top | right | bottom | left
}

func expandFourSides(key string, value Property) ([]KeyValue, error) {
	values := fields(value.String())
	l := len(values)
	if l == 0 || l > 4 {
		return nil, &ShorthandError{Property: key, Value: value, Count: l}
	}
	r := make([]KeyValue, 4)
	for i, dir := range fourDirs {
		r[i] = KeyValue{Key: key + "-" + dir, Value: Property(values[fourSides[l][i]])}
	}
	return r, nil
}
