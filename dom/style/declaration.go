package style

import (
	"fmt"
	"strings"

	"go.uber.org/multierr"
)

// DeclarationError is flagged for a declaration of a declaration block
// which cannot be understood, e.g. "color red" (missing colon).
type DeclarationError struct {
	Text   string // the offending declaration, trimmed
	Reason string
}

func (e *DeclarationError) Error() string {
	return fmt.Sprintf("malformed declaration %q: %s", e.Text, e.Reason)
}

// ParseDeclarations parses the text of a declaration block, i.e. the
// content between the braces of a style rule or the value of a style
// attribute:
//
//     color: red; margin: 0 auto !important
//
// Declarations are separated by top-level semicolons; property and value
// are separated by the first top-level colon. Semicolons and colons within
// strings, url(…) or other functions do not count. Property names are
// converted to lower case. Values are trimmed, and runs of whitespace
// outside of strings are collapsed to a single space.
// A trailing "!important" is stripped and sets flag Important.
//
// Shorthand properties are expanded (see Expand). Every resulting longhand
// inherits the important-flag of its declaration.
//
// Malformed declarations are dropped, the rest of the block is parsed
// nevertheless. The returned list always holds every well-formed
// declaration in textual order. The error return value, if non-nil,
// combines a *DeclarationError or a *ShorthandError for every dropped
// declaration (use multierr.Errors to unpack it); clients usually treat
// it as a diagnostic only.
func ParseDeclarations(text string) (DeclarationList, error) {
	var decls DeclarationList
	var errs error
	for _, segment := range SplitTopLevel(text, ';') {
		if strings.TrimSpace(segment) == "" {
			continue
		}
		prop, value, important, err := parseDeclaration(segment)
		if err != nil {
			tracer().Debugf("dropping declaration: %v", err)
			errs = multierr.Append(errs, err)
			continue
		}
		longhands, err := Expand(prop, value)
		if err != nil {
			tracer().Debugf("dropping declaration: %v", err)
			errs = multierr.Append(errs, err)
			continue
		}
		for _, kv := range longhands {
			decls = append(decls, Declaration{
				Property:  kv.Key,
				Value:     kv.Value,
				Important: important,
			})
		}
	}
	return decls, errs
}

func parseDeclaration(segment string) (string, Property, bool, error) {
	text := strings.TrimSpace(segment)
	parts := SplitTopLevel(segment, ':')
	if len(parts) < 2 {
		return "", NullStyle, false, &DeclarationError{Text: text, Reason: "missing colon"}
	}
	prop := strings.ToLower(strings.TrimSpace(parts[0]))
	if prop == "" {
		return "", NullStyle, false, &DeclarationError{Text: text, Reason: "missing property name"}
	}
	if strings.ContainsAny(prop, " \t\n\f\r{}[]()\"'") {
		return "", NullStyle, false, &DeclarationError{Text: text, Reason: "invalid property name"}
	}
	value, important := stripImportant(collapseSpace(strings.TrimSpace(strings.Join(parts[1:], ":"))))
	if value == "" {
		return "", NullStyle, false, &DeclarationError{Text: text, Reason: "missing value"}
	}
	return prop, Property(value), important, nil
}

// stripImportant removes a trailing "!important" (case-insensitive, with
// optional whitespace after the "!") from a trimmed value.
func stripImportant(value string) (string, bool) {
	bang := strings.LastIndexByte(value, '!')
	if bang < 0 {
		return value, false
	}
	if !strings.EqualFold(strings.TrimSpace(value[bang+1:]), "important") {
		return value, false
	}
	return strings.TrimSpace(value[:bang]), true
}
