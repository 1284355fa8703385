// Package render contains the plain-text rendering helpers used by the
// swiftbind code generators: doc comment blocks, the generated-code banner,
// import lists and Swift literal values.
//
// Everything here is pure string assembly. The value renderer is an explicit
// Config passed by the caller so different target dialects can coexist in one
// process.
package render
