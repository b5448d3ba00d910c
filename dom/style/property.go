package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'cssinline.style'
func tracer() tracing.Trace {
	return tracing.Select("cssinline.style")
}

// Property is a raw value for a CSS property. For example, with
//
//     color: black
//
// a property value of "black" is set. Values are kept verbatim (apart from
// whitespace); the inliner never interprets them.
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

func (p Property) String() string {
	return string(p)
}

// KeyValue is a container for a style property.
type KeyValue struct {
	Key   string
	Value Property
}

// --- Declarations -----------------------------------------------------

// Declaration is a single property assignment of a declaration block,
// e.g. "color: red !important". Property names are lower case.
type Declaration struct {
	Property  string
	Value     Property
	Important bool
}

// String serializes a declaration as it is written into a style attribute.
func (d Declaration) String() string {
	if d.Important {
		return d.Property + ": " + d.Value.String() + " !important"
	}
	return d.Property + ": " + d.Value.String()
}

// DeclarationList is an ordered list of declarations.
// nil is a legal (empty) declaration list.
type DeclarationList []Declaration

// String serializes a declaration list in the format of style attributes,
// e.g.
//
//     color: red; margin-top: 0 !important
//
// Parsing the result with ParseDeclarations yields the same list.
func (dl DeclarationList) String() string {
	parts := make([]string, len(dl))
	for i, d := range dl {
		parts[i] = d.String()
	}
	return strings.Join(parts, "; ")
}

// Get returns the last declaration for property key, together with an
// indicator wether it has been found.
func (dl DeclarationList) Get(key string) (Declaration, bool) {
	for i := len(dl) - 1; i >= 0; i-- {
		if dl[i].Property == key {
			return dl[i], true
		}
	}
	return Declaration{}, false
}
