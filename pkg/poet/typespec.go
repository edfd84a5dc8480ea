package poet

// typeKind distinguishes the five declarable type forms.
type typeKind int

const (
	classKind typeKind = iota
	interfaceKind
	enumKind
	annotationKind
	recordKind
)

func (k typeKind) keyword() string {
	switch k {
	case interfaceKind:
		return "interface"
	case enumKind:
		return "enum"
	case annotationKind:
		return "@interface"
	case recordKind:
		return "record"
	default:
		return "class"
	}
}

// recordComponent is one entry of a record header.
type recordComponent struct {
	typeName TypeName
	name     string
}

// enumConstant is one enum constant: its name, optional constructor
// arguments, and an optional anonymous class body.
type enumConstant struct {
	name            string
	constructorArgs *CodeBlock
	body            *TypeSpec
}

// TypeSpec describes a type declaration of any kind: class, interface,
// enum, annotation interface, or record. Members emit in a fixed order
// regardless of builder call order: javadoc, annotations, modifiers,
// header, then enum constants, fields, methods, and nested types, with
// blank lines separating the member groups.
type TypeSpec struct {
	name             string
	kind             typeKind
	anonymous        bool
	modifiers        modifierSet
	typeVariables    []*TypeVariableName
	superclass       TypeName
	superinterfaces  []TypeName
	permits          []TypeName
	javadoc          *CodeBlock
	annotations      []*AnnotationSpec
	fields           []*FieldSpec
	methods          []*MethodSpec
	types            []*TypeSpec
	enumConstants    []enumConstant
	recordComponents []recordComponent

	// constructorArgs is set only on anonymous class bodies; enum
	// constants render it as their constructor argument list.
	constructorArgs *CodeBlock
}

// NewClassBuilder starts a class declaration.
func NewClassBuilder(name string) *TypeSpecBuilder { return newTypeSpecBuilder(name, classKind) }

// NewInterfaceBuilder starts an interface declaration.
func NewInterfaceBuilder(name string) *TypeSpecBuilder { return newTypeSpecBuilder(name, interfaceKind) }

// NewEnumBuilder starts an enum declaration.
func NewEnumBuilder(name string) *TypeSpecBuilder { return newTypeSpecBuilder(name, enumKind) }

// NewAnnotationTypeBuilder starts an @interface declaration.
func NewAnnotationTypeBuilder(name string) *TypeSpecBuilder {
	return newTypeSpecBuilder(name, annotationKind)
}

// NewRecordBuilder starts a record declaration.
func NewRecordBuilder(name string) *TypeSpecBuilder { return newTypeSpecBuilder(name, recordKind) }

// NewAnonymousClassBuilder starts an anonymous class body for an enum
// constant, optionally with constructor arguments.
func NewAnonymousClassBuilder(format string, args ...interface{}) *TypeSpecBuilder {
	b := &TypeSpecBuilder{kind: classKind, anonymous: true, modifiers: make(modifierSet)}
	if format != "" {
		cargs, err := CodeBlockOf(format, args...)
		if err != nil {
			b.err = err
			return b
		}
		b.constructorArgs = cargs
	}
	return b
}

func newTypeSpecBuilder(name string, kind typeKind) *TypeSpecBuilder {
	b := &TypeSpecBuilder{name: name, kind: kind, modifiers: make(modifierSet)}
	if err := checkIdentifier(name); err != nil {
		b.err = err
	}
	return b
}

// Name implements Nameable so types can bind to $N placeholders.
func (t *TypeSpec) Name() string { return t.name }

// Fields returns the declared fields in order.
func (t *TypeSpec) Fields() []*FieldSpec {
	out := make([]*FieldSpec, len(t.fields))
	copy(out, t.fields)
	return out
}

// Methods returns the declared methods in order.
func (t *TypeSpec) Methods() []*MethodSpec {
	out := make([]*MethodSpec, len(t.methods))
	copy(out, t.methods)
	return out
}

// NestedTypes returns the nested type declarations in order.
func (t *TypeSpec) NestedTypes() []*TypeSpec {
	out := make([]*TypeSpec, len(t.types))
	copy(out, t.types)
	return out
}

// HasModifier reports whether the type carries the given modifier.
func (t *TypeSpec) HasModifier(m Modifier) bool { return t.modifiers[m] }

// String returns the canonical rendering of the declaration.
func (t *TypeSpec) String() string {
	w := newCodeWriter(defaultIndent, nil)
	t.emit(w)
	return w.String()
}

// Equals compares type declarations by rendered form.
func (t *TypeSpec) Equals(other *TypeSpec) bool {
	if t == nil || other == nil {
		return t == other
	}
	return t.String() == other.String()
}

// ToBuilder returns a builder seeded with a copy of this declaration.
func (t *TypeSpec) ToBuilder() *TypeSpecBuilder {
	b := &TypeSpecBuilder{
		name:            t.name,
		kind:            t.kind,
		anonymous:       t.anonymous,
		modifiers:       make(modifierSet, len(t.modifiers)),
		superclass:      t.superclass,
		javadoc:         t.javadoc,
		constructorArgs: t.constructorArgs,
	}
	for m := range t.modifiers {
		b.modifiers[m] = true
	}
	b.typeVariables = append(b.typeVariables, t.typeVariables...)
	b.superinterfaces = append(b.superinterfaces, t.superinterfaces...)
	b.permits = append(b.permits, t.permits...)
	b.annotations = append(b.annotations, t.annotations...)
	b.fields = append(b.fields, t.fields...)
	b.methods = append(b.methods, t.methods...)
	b.types = append(b.types, t.types...)
	b.enumConstants = append(b.enumConstants, t.enumConstants...)
	b.recordComponents = append(b.recordComponents, t.recordComponents...)
	return b
}

func (t *TypeSpec) emit(w *codeWriter) {
	if t.javadoc != nil {
		w.emitJavadoc(t.javadoc)
	}
	for _, a := range t.annotations {
		a.emit(w)
		w.emit("\n")
	}
	emitModifiers(w, t.modifiers.sorted())

	w.emit(t.kind.keyword())
	w.emit(" ")
	w.emit(t.name)

	if len(t.typeVariables) > 0 {
		w.emit("<")
		for i, tv := range t.typeVariables {
			if i > 0 {
				w.emit(", ")
			}
			tv.emit(w)
		}
		w.emit(">")
	}

	if t.kind == recordKind {
		w.emit("(")
		for i, rc := range t.recordComponents {
			if i > 0 {
				w.emit(", ")
			}
			rc.typeName.emit(w)
			w.emit(" ")
			w.emit(rc.name)
		}
		w.emit(")")
	}

	if t.superclass != nil {
		w.emit(" extends ")
		t.superclass.emit(w)
	}

	if len(t.superinterfaces) > 0 {
		if t.kind == interfaceKind {
			w.emit(" extends ")
		} else {
			w.emit(" implements ")
		}
		for i, si := range t.superinterfaces {
			if i > 0 {
				w.emit(", ")
			}
			si.emit(w)
		}
	}

	if len(t.permits) > 0 {
		w.emit(" permits ")
		for i, p := range t.permits {
			if i > 0 {
				w.emit(", ")
			}
			p.emit(w)
		}
	}

	w.emit(" {\n")
	w.indentMore()

	if t.kind == enumKind && len(t.enumConstants) > 0 {
		for i, c := range t.enumConstants {
			if i > 0 {
				w.emit(",\n")
			}
			c.emitTo(w)
		}
		if len(t.fields) > 0 || len(t.methods) > 0 || len(t.types) > 0 {
			w.emit(";\n\n")
		} else {
			w.emit("\n")
		}
	}

	for _, f := range t.fields {
		f.emit(w)
	}
	if len(t.fields) > 0 && (len(t.methods) > 0 || len(t.types) > 0) {
		w.emit("\n")
	}

	for i, m := range t.methods {
		if i > 0 {
			w.emit("\n")
		}
		m.emit(w)
	}
	if len(t.methods) > 0 && len(t.types) > 0 {
		w.emit("\n")
	}

	for i, nested := range t.types {
		if i > 0 {
			w.emit("\n")
		}
		nested.emit(w)
	}

	w.indentLess()
	w.emit("}\n")
}

func (c enumConstant) emitTo(w *codeWriter) {
	body := c.body
	if body != nil {
		for _, a := range body.annotations {
			a.emit(w)
			w.emit("\n")
		}
	}
	w.emit(c.name)
	if c.constructorArgs != nil && !c.constructorArgs.IsEmpty() {
		w.emit("(")
		c.constructorArgs.emit(w)
		w.emit(")")
	}
	if body != nil && (len(body.fields) > 0 || len(body.methods) > 0) {
		w.emit(" {\n")
		w.indentMore()
		for _, f := range body.fields {
			f.emit(w)
		}
		if len(body.fields) > 0 && len(body.methods) > 0 {
			w.emit("\n")
		}
		for i, m := range body.methods {
			if i > 0 {
				w.emit("\n")
			}
			m.emit(w)
		}
		w.indentLess()
		w.emit("}")
	}
}

// TypeSpecBuilder assembles a TypeSpec of any kind.
type TypeSpecBuilder struct {
	name             string
	kind             typeKind
	anonymous        bool
	modifiers        modifierSet
	typeVariables    []*TypeVariableName
	superclass       TypeName
	superinterfaces  []TypeName
	permits          []TypeName
	javadoc          *CodeBlock
	annotations      []*AnnotationSpec
	fields           []*FieldSpec
	methods          []*MethodSpec
	types            []*TypeSpec
	enumConstants    []enumConstant
	recordComponents []recordComponent
	constructorArgs  *CodeBlock
	err              error
}

// AddModifiers adds modifiers; combinations such as abstract with final
// or sealed with final latch an error immediately.
func (b *TypeSpecBuilder) AddModifiers(modifiers ...Modifier) *TypeSpecBuilder {
	if b.err != nil {
		return b
	}
	b.modifiers.add(modifiers...)
	if err := checkTypeModifiers(b.modifiers); err != nil {
		b.err = err
	}
	return b
}

// AddTypeVariable adds a generic type parameter.
func (b *TypeSpecBuilder) AddTypeVariable(tv *TypeVariableName) *TypeSpecBuilder {
	if b.err != nil {
		return b
	}
	b.typeVariables = append(b.typeVariables, tv)
	return b
}

// Superclass sets the extends clause. Only class kinds can extend a
// class: interfaces and annotations extend interfaces, enums extend
// their implicit Enum base, and records extend Record.
func (b *TypeSpecBuilder) Superclass(superclass interface{}) *TypeSpecBuilder {
	if b.err != nil {
		return b
	}
	if b.kind != classKind {
		b.err = structuralErrorf("only classes can have a superclass, not a %s", b.kind.keyword())
		return b
	}
	t, err := TypeOf(superclass)
	if err != nil {
		b.err = err
		return b
	}
	b.superclass = t
	return b
}

// AddSuperinterface adds an implements (or, for interfaces, extends)
// clause entry.
func (b *TypeSpecBuilder) AddSuperinterface(superinterface interface{}) *TypeSpecBuilder {
	if b.err != nil {
		return b
	}
	t, err := TypeOf(superinterface)
	if err != nil {
		b.err = err
		return b
	}
	b.superinterfaces = append(b.superinterfaces, t)
	return b
}

// AddPermittedSubclass adds a permits clause entry for sealed types.
func (b *TypeSpecBuilder) AddPermittedSubclass(subclass interface{}) *TypeSpecBuilder {
	if b.err != nil {
		return b
	}
	t, err := TypeOf(subclass)
	if err != nil {
		b.err = err
		return b
	}
	b.permits = append(b.permits, t)
	return b
}

// AddJavadoc sets the type's doc comment.
func (b *TypeSpecBuilder) AddJavadoc(format string, args ...interface{}) *TypeSpecBuilder {
	if b.err != nil {
		return b
	}
	doc, err := CodeBlockOf(format, args...)
	if err != nil {
		b.err = err
		return b
	}
	b.javadoc = doc
	return b
}

// AddAnnotation attaches an annotation, emitted on its own line.
func (b *TypeSpecBuilder) AddAnnotation(annotation *AnnotationSpec) *TypeSpecBuilder {
	if b.err != nil {
		return b
	}
	b.annotations = append(b.annotations, annotation)
	return b
}

// AddField adds a field declaration.
func (b *TypeSpecBuilder) AddField(field *FieldSpec) *TypeSpecBuilder {
	if b.err != nil {
		return b
	}
	b.fields = append(b.fields, field)
	return b
}

// AddMethod adds a method. Constructors with no name adopt this type's
// name.
func (b *TypeSpecBuilder) AddMethod(method *MethodSpec) *TypeSpecBuilder {
	if b.err != nil {
		return b
	}
	if method.IsConstructor() && method.name == "" {
		method = method.named(b.name)
	}
	b.methods = append(b.methods, method)
	return b
}

// AddType adds a nested type declaration.
func (b *TypeSpecBuilder) AddType(nested *TypeSpec) *TypeSpecBuilder {
	if b.err != nil {
		return b
	}
	b.types = append(b.types, nested)
	return b
}

// AddEnumConstant adds a plain enum constant.
func (b *TypeSpecBuilder) AddEnumConstant(name string) *TypeSpecBuilder {
	return b.addEnumConstant(name, nil)
}

// AddEnumConstantWithBody adds an enum constant with constructor
// arguments and/or an anonymous class body, built with
// NewAnonymousClassBuilder.
func (b *TypeSpecBuilder) AddEnumConstantWithBody(name string, body *TypeSpec) *TypeSpecBuilder {
	return b.addEnumConstant(name, body)
}

func (b *TypeSpecBuilder) addEnumConstant(name string, body *TypeSpec) *TypeSpecBuilder {
	if b.err != nil {
		return b
	}
	if b.kind != enumKind {
		b.err = structuralErrorf("enum constants can only be added to enums")
		return b
	}
	if err := checkIdentifier(name); err != nil {
		b.err = err
		return b
	}
	c := enumConstant{name: name, body: body}
	if body != nil {
		c.constructorArgs = body.constructorArgs
	}
	b.enumConstants = append(b.enumConstants, c)
	return b
}

// AddRecordComponent adds a record header component.
func (b *TypeSpecBuilder) AddRecordComponent(componentType interface{}, name string) *TypeSpecBuilder {
	if b.err != nil {
		return b
	}
	if b.kind != recordKind {
		b.err = structuralErrorf("record components can only be added to records")
		return b
	}
	t, err := TypeOf(componentType)
	if err != nil {
		b.err = err
		return b
	}
	if err := checkIdentifier(name); err != nil {
		b.err = err
		return b
	}
	b.recordComponents = append(b.recordComponents, recordComponent{typeName: t, name: name})
	return b
}

// Build returns the immutable TypeSpec. Records must declare at least
// one component.
func (b *TypeSpecBuilder) Build() (*TypeSpec, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.kind == recordKind && len(b.recordComponents) == 0 {
		return nil, structuralErrorf("record %s must declare at least one component", b.name)
	}

	t := &TypeSpec{
		name:       b.name,
		kind:       b.kind,
		anonymous:  b.anonymous,
		modifiers:  make(modifierSet, len(b.modifiers)),
		superclass: b.superclass,
		javadoc:    b.javadoc,
	}
	for m := range b.modifiers {
		t.modifiers[m] = true
	}
	t.typeVariables = append(t.typeVariables, b.typeVariables...)
	t.superinterfaces = append(t.superinterfaces, b.superinterfaces...)
	t.permits = append(t.permits, b.permits...)
	t.annotations = append(t.annotations, b.annotations...)
	t.fields = append(t.fields, b.fields...)
	t.methods = append(t.methods, b.methods...)
	t.types = append(t.types, b.types...)
	t.enumConstants = append(t.enumConstants, b.enumConstants...)
	t.recordComponents = append(t.recordComponents, b.recordComponents...)
	if b.anonymous {
		t.constructorArgs = b.constructorArgs
	}
	return t, nil
}
