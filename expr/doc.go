// Package expr defines the declaration metadata consumed by the swiftbind
// code generators.
//
// The expressions mirror the source schema's declaration tree: a module owns
// classes, type aliases and enums, a class owns properties. Every expression
// carries the raw source name plus the annotations attached to it; the naming
// helpers read this metadata and never mutate it.
package expr
