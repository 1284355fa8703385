// Package naming contains the identifier helpers used by the swiftbind code
// generators.
//
// The functions centralize Swift identifier sanitization and related naming
// conventions so generated code remains consistent across generators. All of
// them are pure and total: every input string maps to some output, and
// malformed declaration metadata falls back to plain normalization instead of
// failing.
package naming
