package poet

// ParameterSpec describes one method or constructor parameter.
// Annotations and modifiers render inline before the type; a varargs
// parameter renders its component type followed by "...".
type ParameterSpec struct {
	typeName    TypeName
	name        string
	modifiers   modifierSet
	annotations []*AnnotationSpec
	varargs     bool
}

// NewParameterSpecBuilder starts a parameter of the given type.
func NewParameterSpecBuilder(paramType interface{}, name string) *ParameterSpecBuilder {
	b := &ParameterSpecBuilder{name: name, modifiers: make(modifierSet)}
	t, err := TypeOf(paramType)
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

// Name implements Nameable so parameters can bind to $N placeholders.
func (p *ParameterSpec) Name() string { return p.name }

// Type returns the parameter's declared type.
func (p *ParameterSpec) Type() TypeName { return p.typeName }

// IsVarargs reports whether this parameter renders as a varargs.
func (p *ParameterSpec) IsVarargs() bool { return p.varargs }

// String returns the canonical inline rendering.
func (p *ParameterSpec) String() string {
	w := newCodeWriter(defaultIndent, nil)
	p.emit(w)
	return w.String()
}

// Equals compares parameters by rendered form.
func (p *ParameterSpec) Equals(other *ParameterSpec) bool {
	if p == nil || other == nil {
		return p == other
	}
	return p.String() == other.String()
}

// ToBuilder returns a builder seeded with a copy of this parameter.
func (p *ParameterSpec) ToBuilder() *ParameterSpecBuilder {
	b := &ParameterSpecBuilder{
		typeName:  p.typeName,
		name:      p.name,
		modifiers: make(modifierSet, len(p.modifiers)),
		varargs:   p.varargs,
	}
	for m := range p.modifiers {
		b.modifiers[m] = true
	}
	b.annotations = append(b.annotations, p.annotations...)
	return b
}

func (p *ParameterSpec) emit(w *codeWriter) {
	for _, a := range p.annotations {
		a.emit(w)
		w.emit(" ")
	}
	emitModifiers(w, p.modifiers.sorted())
	if p.varargs {
		if arr, ok := p.typeName.(*ArrayTypeName); ok {
			arr.componentType.emit(w)
		} else {
			p.typeName.emit(w)
		}
		w.emit("...")
	} else {
		p.typeName.emit(w)
	}
	w.emit(" ")
	w.emit(p.name)
}

// ParameterSpecBuilder assembles a ParameterSpec.
type ParameterSpecBuilder struct {
	typeName    TypeName
	name        string
	modifiers   modifierSet
	annotations []*AnnotationSpec
	varargs     bool
	err         error
}

// AddModifiers adds modifiers. Only final is legal on a Java parameter;
// that legality is the compiler's concern, not enforced here.
func (b *ParameterSpecBuilder) AddModifiers(modifiers ...Modifier) *ParameterSpecBuilder {
	if b.err != nil {
		return b
	}
	b.modifiers.add(modifiers...)
	return b
}

// AddAnnotation attaches an annotation, emitted inline before the type.
func (b *ParameterSpecBuilder) AddAnnotation(annotation *AnnotationSpec) *ParameterSpecBuilder {
	if b.err != nil {
		return b
	}
	b.annotations = append(b.annotations, annotation)
	return b
}

// Varargs marks the parameter as a varargs parameter.
func (b *ParameterSpecBuilder) Varargs(varargs bool) *ParameterSpecBuilder {
	if b.err != nil {
		return b
	}
	b.varargs = varargs
	return b
}

// Build returns the immutable ParameterSpec.
func (b *ParameterSpecBuilder) Build() (*ParameterSpec, error) {
	if b.err != nil {
		return nil, b.err
	}
	p := &ParameterSpec{
		typeName:  b.typeName,
		name:      b.name,
		modifiers: make(modifierSet, len(b.modifiers)),
		varargs:   b.varargs,
	}
	for m := range b.modifiers {
		p.modifiers[m] = true
	}
	p.annotations = append(p.annotations, b.annotations...)
	return p, nil
}
