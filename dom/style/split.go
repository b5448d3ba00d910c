package style

import (
	"strings"

	"github.com/gorilla/css/scanner"
)

// SplitTopLevel splits CSS text at every occurence of the single-character
// delimiter sep which is not nested inside parentheses, brackets, braces,
// strings or url(…) tokens. Comments are replaced by a single space.
// Segments are returned untrimmed; empty segments are retained.
//
//     SplitTopLevel(`a, b:not(.c, .d), [title="x,y"]`, ',')
//
// yields "a", " b:not(.c, .d)" and ` [title="x,y"]`.
//
// Text which cannot be tokenized (unclosed strings) is kept verbatim
// up to the end of the input; an unclosed comment swallows the rest of
// the input, as in CSS.
func SplitTopLevel(text string, sep byte) []string {
	text = strings.ToValidUTF8(strings.ReplaceAll(text, "\r\n", "\n"), "\uFFFD")
	delim := string(sep)
	var segments []string
	var b strings.Builder
	depth, consumed := 0, 0
	s := scanner.New(text)
	for {
		token := s.Next()
		switch token.Type {
		case scanner.TokenEOF:
			return append(segments, b.String())
		case scanner.TokenError:
			rest := text[consumed:]
			if !strings.HasPrefix(rest, "/*") {
				b.WriteString(rest)
			}
			return append(segments, b.String())
		case scanner.TokenBOM:
			consumed += len(token.Value)
			continue
		case scanner.TokenComment:
			consumed += len(token.Value)
			b.WriteByte(' ')
			continue
		case scanner.TokenFunction:
			depth++
		case scanner.TokenChar:
			switch token.Value {
			case "(", "[", "{":
				depth++
			case ")", "]", "}":
				if depth > 0 {
					depth--
				}
			case delim:
				if depth == 0 {
					consumed += len(token.Value)
					segments = append(segments, b.String())
					b.Reset()
					continue
				}
			}
		}
		consumed += len(token.Value)
		b.WriteString(token.Value)
	}
}

// fields splits a property value at whitespace which is not nested inside
// parentheses, brackets or strings, e.g.
//
//     fields("calc(1px + 2px) 0 auto")  →  ["calc(1px + 2px)", "0", "auto"]
//
func fields(value string) []string {
	var fields []string
	var b strings.Builder
	depth := 0
	flush := func() {
		if b.Len() > 0 {
			fields = append(fields, b.String())
			b.Reset()
		}
	}
	s := scanner.New(value)
	for {
		token := s.Next()
		switch token.Type {
		case scanner.TokenEOF:
			flush()
			return fields
		case scanner.TokenError:
			// unclosed string or comment
			return strings.Fields(value)
		case scanner.TokenS, scanner.TokenComment:
			if depth == 0 {
				flush()
				continue
			}
		case scanner.TokenFunction:
			depth++
		case scanner.TokenChar:
			switch token.Value {
			case "(", "[", "{":
				depth++
			case ")", "]", "}":
				if depth > 0 {
					depth--
				}
			}
		}
		b.WriteString(token.Value)
	}
}

// collapseSpace replaces every run of whitespace outside of strings by a
// single space:
//
//     collapseSpace("Arial,\n    sans-serif")  →  "Arial, sans-serif"
//
// Values which cannot be tokenized are returned unchanged.
func collapseSpace(value string) string {
	var b strings.Builder
	s := scanner.New(value)
	for {
		token := s.Next()
		switch token.Type {
		case scanner.TokenEOF:
			return b.String()
		case scanner.TokenError:
			return value
		case scanner.TokenS:
			b.WriteByte(' ')
		default:
			b.WriteString(token.Value)
		}
	}
}
