package render

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Config carries the value-rendering options for a target dialect. It is
// passed explicitly to the rendering entry points rather than held in
// package-level state.
type Config struct {
	// CustomDelimiters enables pound-delimited raw string literals
	// (#"..."#) for values that would otherwise need escape sequences.
	CustomDelimiters bool
}

// Swift returns the renderer configuration used for Swift output.
func Swift() Config {
	return Config{CustomDelimiters: true}
}

// StringLiteral renders value as a Swift string literal.
//
// When CustomDelimiters is set and the value contains quotes or backslashes
// but no control characters, the literal uses raw pound delimiters with
// enough pounds that no substring of the value can terminate it early. Every
// other value is rendered as a conventional quoted literal with Swift escape
// sequences.
func (c Config) StringLiteral(value string) string {
	if c.CustomDelimiters && wantsRawDelimiters(value) {
		pounds := strings.Repeat("#", delimiterWidth(value))
		return pounds + `"` + value + `"` + pounds
	}
	var b strings.Builder
	b.Grow(len(value) + 2)
	b.WriteByte('"')
	for _, r := range value {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		case 0:
			b.WriteString(`\0`)
		default:
			if unicode.IsControl(r) {
				fmt.Fprintf(&b, `\u{%X}`, r)
				continue
			}
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// Value renders a scalar as Swift source text. Strings go through
// StringLiteral; booleans and numbers use their Swift spelling, which matches
// Go's. Anything else falls back to fmt formatting.
func (c Config) Value(v any) string {
	switch t := v.(type) {
	case string:
		return c.StringLiteral(t)
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	case nil:
		return "nil"
	default:
		return fmt.Sprintf("%v", t)
	}
}

// wantsRawDelimiters reports whether value benefits from a raw literal:
// it holds characters that would need escaping but none that a raw literal
// cannot carry.
func wantsRawDelimiters(value string) bool {
	if !strings.ContainsAny(value, `"\`) {
		return false
	}
	for _, r := range value {
		if unicode.IsControl(r) {
			return false
		}
	}
	return true
}

// delimiterWidth returns the smallest pound count that keeps every quote and
// backslash in value inert inside a raw literal.
func delimiterWidth(value string) int {
	n := 1
	for strings.Contains(value, `"`+strings.Repeat("#", n)) ||
		strings.Contains(value, `\`+strings.Repeat("#", n)) {
		n++
	}
	return n
}
