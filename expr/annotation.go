package expr

// AnnotationKind identifies the kind of an annotation attached to a
// declaration. Matching on a stable tag keeps lookups independent of how the
// source schema spells its annotation type names.
type AnnotationKind int

const (
	// AnnotationUnknown marks annotations the generator does not understand.
	AnnotationUnknown AnnotationKind = iota
	// AnnotationRename overrides automatic name normalization with a literal
	// target-language identifier, used verbatim.
	AnnotationRename
	// AnnotationDoc carries free-form documentation text.
	AnnotationDoc
	// AnnotationDeprecated marks the declaration as deprecated.
	AnnotationDeprecated
)

// Annotation is a tagged value attached to a declaration by the source
// schema.
type Annotation struct {
	// Kind is the annotation type tag.
	Kind AnnotationKind
	// Value is the annotation payload.
	Value string
}

// FindAnnotation returns the first annotation of the given kind. Nil entries
// are skipped; absence yields ok == false rather than an error so malformed
// metadata degrades to "not found".
func FindAnnotation(anns []*Annotation, kind AnnotationKind) (*Annotation, bool) {
	for _, a := range anns {
		if a != nil && a.Kind == kind {
			return a, true
		}
	}
	return nil, false
}
