package naming_test

import (
	"strings"
	"testing"
	"unicode"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/declgen/swiftbind/codegen/naming"
)

// isDelimiter reports whether r cannot appear in a Swift identifier.
func isDelimiter(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_'
}

func containsDelimiter(s string) bool {
	return strings.ContainsFunc(s, isDelimiter)
}

// TestIdentifierRemovesDelimiters verifies that for any raw name containing
// at least one delimiter character, the normalized identifier contains none.
func TestIdentifierRemovesDelimiters(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("output is delimiter free", prop.ForAll(
		func(raw string) bool {
			if raw == "" || !containsDelimiter(raw) {
				return true // vacuous: nothing to strip
			}
			return !containsDelimiter(naming.Identifier(raw))
		},
		gen.AnyString(),
	))

	properties.TestingRun(t)
}

// TestIdentifierIdempotent verifies that once a name contains only letters,
// digits and underscores, normalization is a fixed point.
func TestIdentifierIdempotent(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("normalization is a fixed point", prop.ForAll(
		func(raw string) bool {
			if naming.IsReserved(raw) {
				return true // escaping introduces backticks, a separate path
			}
			once := naming.Identifier(raw)
			return naming.Identifier(once) == once
		},
		gen.Identifier(),
	))

	properties.TestingRun(t)
}

// TestEnumCaseNameNeverUpper verifies that enum case names never begin with
// an upper-case letter, whatever the source label casing.
func TestEnumCaseNameNeverUpper(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("first rune is never upper case", prop.ForAll(
		func(raw string) bool {
			name := naming.EnumCaseName(raw)
			if name == "" {
				return true // only reachable for delimiter-only labels
			}
			first := []rune(name)[0]
			return !unicode.IsUpper(first)
		},
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}

// TestModuleNameLowerAndDotFree verifies module identifiers are fully
// lower-case and never contain the dotted path separators of the source name.
func TestModuleNameLowerAndDotFree(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("lower case, no dots", prop.ForAll(
		func(raw string) bool {
			name := naming.ModuleName(raw)
			return !strings.ContainsRune(name, '.') && strings.ToLower(name) == name
		},
		gen.AnyString(),
	))

	properties.TestingRun(t)
}
