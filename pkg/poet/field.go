package poet

// FieldSpec describes one field declaration: type, name, modifiers,
// annotations, optional javadoc, and an optional initializer expression.
type FieldSpec struct {
	typeName    TypeName
	name        string
	modifiers   modifierSet
	annotations []*AnnotationSpec
	javadoc     *CodeBlock
	initializer *CodeBlock
}

// NewFieldSpecBuilder starts a field of the given type, which may be a
// TypeName, a string type literal, or a Go value TypeOf accepts.
func NewFieldSpecBuilder(fieldType interface{}, name string) *FieldSpecBuilder {
	b := &FieldSpecBuilder{name: name, modifiers: make(modifierSet)}
	t, err := TypeOf(fieldType)
	if err != nil {
		b.err = err
		return b
	}
	if err := checkIdentifier(name); err != nil {
		b.err = err
		return b
	}
	b.typeName = t
	return b
}

// Name implements Nameable so fields can bind to $N placeholders.
func (f *FieldSpec) Name() string { return f.name }

// Type returns the field's declared type.
func (f *FieldSpec) Type() TypeName { return f.typeName }

// Modifiers returns the field's modifiers in canonical order.
func (f *FieldSpec) Modifiers() []Modifier { return f.modifiers.sorted() }

// HasModifier reports whether the field carries the given modifier.
func (f *FieldSpec) HasModifier(m Modifier) bool { return f.modifiers[m] }

// String returns the canonical rendering of the declaration.
func (f *FieldSpec) String() string {
	w := newCodeWriter(defaultIndent, nil)
	f.emit(w)
	return w.String()
}

// Equals compares fields by rendered form.
func (f *FieldSpec) Equals(other *FieldSpec) bool {
	if f == nil || other == nil {
		return f == other
	}
	return f.String() == other.String()
}

// ToBuilder returns a builder seeded with a copy of this field.
func (f *FieldSpec) ToBuilder() *FieldSpecBuilder {
	b := &FieldSpecBuilder{
		typeName:    f.typeName,
		name:        f.name,
		modifiers:   make(modifierSet, len(f.modifiers)),
		javadoc:     f.javadoc,
		initializer: f.initializer,
	}
	for m := range f.modifiers {
		b.modifiers[m] = true
	}
	b.annotations = append(b.annotations, f.annotations...)
	return b
}

func (f *FieldSpec) emit(w *codeWriter) {
	if f.javadoc != nil {
		w.emitJavadoc(f.javadoc)
	}
	for _, a := range f.annotations {
		a.emit(w)
		w.emit("\n")
	}
	emitModifiers(w, f.modifiers.sorted())
	f.typeName.emit(w)
	w.emit(" ")
	w.emit(f.name)
	if f.initializer != nil {
		w.emit(" = ")
		f.initializer.emit(w)
	}
	w.emit(";\n")
}

// FieldSpecBuilder assembles a FieldSpec.
type FieldSpecBuilder struct {
	typeName    TypeName
	name        string
	modifiers   modifierSet
	annotations []*AnnotationSpec
	javadoc     *CodeBlock
	initializer *CodeBlock
	err         error
}

// AddModifiers adds modifiers; illegal combinations such as final with
// volatile latch an error immediately.
func (b *FieldSpecBuilder) AddModifiers(modifiers ...Modifier) *FieldSpecBuilder {
	if b.err != nil {
		return b
	}
	b.modifiers.add(modifiers...)
	if err := checkFieldModifiers(b.modifiers); err != nil {
		b.err = err
	}
	return b
}

// AddAnnotation attaches an annotation, emitted on its own line.
func (b *FieldSpecBuilder) AddAnnotation(annotation *AnnotationSpec) *FieldSpecBuilder {
	if b.err != nil {
		return b
	}
	b.annotations = append(b.annotations, annotation)
	return b
}

// AddJavadoc sets the field's doc comment.
func (b *FieldSpecBuilder) AddJavadoc(format string, args ...interface{}) *FieldSpecBuilder {
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

// Initializer sets the field's initializer expression.
func (b *FieldSpecBuilder) Initializer(format string, args ...interface{}) *FieldSpecBuilder {
	if b.err != nil {
		return b
	}
	init, err := CodeBlockOf(format, args...)
	if err != nil {
		b.err = err
		return b
	}
	b.initializer = init
	return b
}

// InitializerBlock sets a pre-built initializer expression.
func (b *FieldSpecBuilder) InitializerBlock(block *CodeBlock) *FieldSpecBuilder {
	if b.err != nil {
		return b
	}
	b.initializer = block
	return b
}

// Build returns the immutable FieldSpec.
func (b *FieldSpecBuilder) Build() (*FieldSpec, error) {
	if b.err != nil {
		return nil, b.err
	}
	f := &FieldSpec{
		typeName:    b.typeName,
		name:        b.name,
		modifiers:   make(modifierSet, len(b.modifiers)),
		javadoc:     b.javadoc,
		initializer: b.initializer,
	}
	for m := range b.modifiers {
		f.modifiers[m] = true
	}
	f.annotations = append(f.annotations, b.annotations...)
	return f, nil
}
