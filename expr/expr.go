package expr

// Decl is implemented by every named schema declaration subject to renaming.
type Decl interface {
	// RawName returns the declaration name as spelled in the source schema.
	RawName() string
	// DeclAnnotations returns the annotations attached to the declaration.
	DeclAnnotations() []*Annotation
}

// ModuleExpr describes a source schema module.
type ModuleExpr struct {
	// Name is the dotted source module name (e.g. "com.example.birds").
	Name string
	// Annotations attached to the module declaration.
	Annotations []*Annotation
	// RootClass is the synthetic class standing for the module itself.
	RootClass *ClassExpr
	// Classes declared in the module, root class excluded.
	Classes []*ClassExpr
	// Aliases declared in the module.
	Aliases []*TypeAliasExpr
	// Enums declared in the module.
	Enums []*EnumExpr
	// Imports lists the target-language import paths the module's generated
	// source requires, in discovery order. May contain duplicates.
	Imports []string
}

// NewRootClass creates the synthetic root class for m and records it so the
// module-root identity check holds.
func (m *ModuleExpr) NewRootClass() *ClassExpr {
	c := &ClassExpr{Name: m.Name, Module: m}
	m.RootClass = c
	return c
}

// RawName returns the dotted source module name.
func (m *ModuleExpr) RawName() string { return m.Name }

// DeclAnnotations returns the annotations attached to the module.
func (m *ModuleExpr) DeclAnnotations() []*Annotation { return m.Annotations }

// ClassExpr describes a class declaration.
type ClassExpr struct {
	// Name is the raw source class name.
	Name string
	// Annotations attached to the class.
	Annotations []*Annotation
	// Module is the enclosing module.
	Module *ModuleExpr
	// Properties declared by the class.
	Properties []*PropertyExpr
	// Doc is the free-form documentation text, empty when absent.
	Doc string
}

// IsModuleRoot reports whether c is the synthetic class standing for the
// enclosing module itself.
func (c *ClassExpr) IsModuleRoot() bool {
	return c.Module != nil && c.Module.RootClass == c
}

// RawName returns the raw source class name.
func (c *ClassExpr) RawName() string { return c.Name }

// DeclAnnotations returns the annotations attached to the class.
func (c *ClassExpr) DeclAnnotations() []*Annotation { return c.Annotations }

// PropertyExpr describes a property declaration within a class.
type PropertyExpr struct {
	// Name is the raw source property name.
	Name string
	// Annotations attached to the property.
	Annotations []*Annotation
	// Class is the enclosing class.
	Class *ClassExpr
	// Doc is the free-form documentation text, empty when absent.
	Doc string
}

// RawName returns the raw source property name.
func (p *PropertyExpr) RawName() string { return p.Name }

// DeclAnnotations returns the annotations attached to the property.
func (p *PropertyExpr) DeclAnnotations() []*Annotation { return p.Annotations }

// TypeAliasExpr describes a type alias declaration.
type TypeAliasExpr struct {
	// Name is the raw source alias name.
	Name string
	// Annotations attached to the alias.
	Annotations []*Annotation
	// Module is the enclosing module.
	Module *ModuleExpr
	// Doc is the free-form documentation text, empty when absent.
	Doc string
}

// RawName returns the raw source alias name.
func (t *TypeAliasExpr) RawName() string { return t.Name }

// DeclAnnotations returns the annotations attached to the alias.
func (t *TypeAliasExpr) DeclAnnotations() []*Annotation { return t.Annotations }

// EnumExpr describes an enumeration declaration.
type EnumExpr struct {
	// Name is the raw source enum name.
	Name string
	// Annotations attached to the enum.
	Annotations []*Annotation
	// Module is the enclosing module.
	Module *ModuleExpr
	// Members are the enum cases in declaration order.
	Members []*EnumMemberExpr
}

// RawName returns the raw source enum name.
func (e *EnumExpr) RawName() string { return e.Name }

// DeclAnnotations returns the annotations attached to the enum.
func (e *EnumExpr) DeclAnnotations() []*Annotation { return e.Annotations }

// EnumMemberExpr describes a single enum case.
type EnumMemberExpr struct {
	// Label is the raw source case label. May be empty.
	Label string
	// Annotations attached to the case.
	Annotations []*Annotation
	// Enum is the enclosing enumeration.
	Enum *EnumExpr
}

// RawName returns the raw source case label.
func (m *EnumMemberExpr) RawName() string { return m.Label }

// DeclAnnotations returns the annotations attached to the case.
func (m *EnumMemberExpr) DeclAnnotations() []*Annotation { return m.Annotations }
