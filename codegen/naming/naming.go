package naming

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/declgen/swiftbind/expr"
)

// RootClassName is the fixed name of the generated type standing for the
// module itself. A fixed name keeps the module container type predictable and
// collision-free regardless of the source module's own name.
const RootClassName = "Module"

// delimiters matches runs of characters that cannot appear in a Swift
// identifier: anything that is neither a Unicode letter, a decimal digit nor
// an underscore.
var delimiters = regexp.MustCompile(`[^\p{L}\p{Nd}_]+`)

// Identifier converts a raw schema name into a legal Swift identifier.
//
// A name matching a reserved word exactly is kept verbatim and wrapped in
// backticks. Any other name is split on runs of delimiter characters and
// reassembled in camel case: the first segment unchanged, every following
// segment with its first rune upper-cased. Names with a leading digit come
// back unchanged; no placeholder prefix is injected, so a schema name like
// "2fast" must be renamed at the source to compile as Swift.
func Identifier(raw string) string {
	if IsReserved(raw) {
		return "`" + raw + "`"
	}
	segments := delimiters.Split(raw, -1)
	var b strings.Builder
	b.Grow(len(raw))
	for i, seg := range segments {
		if i == 0 {
			b.WriteString(seg)
			continue
		}
		b.WriteString(capitalize(seg))
	}
	return b.String()
}

// DeclName resolves the generated Swift name for a declaration.
//
// The synthetic module-root class always maps to RootClassName. A rename
// annotation wins next; its value is trusted verbatim with no normalization
// or escaping. Everything else goes through Identifier.
func DeclName(d expr.Decl) string {
	if c, ok := d.(*expr.ClassExpr); ok && c.IsModuleRoot() {
		return RootClassName
	}
	if a, ok := expr.FindAnnotation(d.DeclAnnotations(), expr.AnnotationRename); ok {
		return a.Value
	}
	return Identifier(d.RawName())
}

// ModuleName converts a dotted source module name into the lower-case
// identifier used for the generated Swift namespace. Dots are dropped before
// normalization, so "com.example.Foo" becomes "comexamplefoo".
func ModuleName(raw string) string {
	return strings.ToLower(Identifier(strings.ReplaceAll(raw, ".", "")))
}

// EnumCaseName converts a raw enum case label into a Swift case name. Empty
// labels map to the placeholder "empty" since cases cannot be anonymous.
// All-caps labels fold to lower case ("RED" becomes "red"); any other label
// keeps the camel case produced by Identifier with only its first rune
// lowered ("dark-red" becomes "darkRed").
func EnumCaseName(raw string) string {
	if raw == "" {
		return "empty"
	}
	name := Identifier(raw)
	if strings.ToUpper(name) == name {
		return strings.ToLower(name)
	}
	return lowerFirst(name)
}

// capitalize upper-cases the first rune of s, leaving the rest untouched.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

// lowerFirst lower-cases the first rune of s, leaving the rest untouched.
func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToLower(r)) + s[size:]
}
