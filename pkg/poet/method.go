package poet

// methodKind distinguishes the three declarable executable forms.
type methodKind int

const (
	kindMethod methodKind = iota
	kindConstructor
	kindCompactConstructor
)

// MethodSpec describes a method, constructor, or record compact
// constructor. Constructors adopt the enclosing type's name when added
// to a TypeSpec; compact constructors additionally render no parameter
// list, their signature being implied by the record components.
type MethodSpec struct {
	name          string
	kind          methodKind
	modifiers     modifierSet
	parameters    []*ParameterSpec
	returnType    TypeName
	exceptions    []TypeName
	typeVariables []*TypeVariableName
	javadoc       *CodeBlock
	annotations   []*AnnotationSpec
	code          *CodeBlock
	defaultValue  *CodeBlock
}

// NewMethodSpecBuilder starts an ordinary method.
func NewMethodSpecBuilder(name string) *MethodSpecBuilder {
	b := &MethodSpecBuilder{
		name:      name,
		kind:      kindMethod,
		modifiers: make(modifierSet),
		code:      NewCodeBlockBuilder(),
	}
	if err := checkIdentifier(name); err != nil {
		b.err = err
	}
	return b
}

// NewConstructorBuilder starts a constructor. The name is supplied by
// the enclosing TypeSpec when the method is added to it.
func NewConstructorBuilder() *MethodSpecBuilder {
	return &MethodSpecBuilder{
		kind:      kindConstructor,
		modifiers: make(modifierSet),
		code:      NewCodeBlockBuilder(),
	}
}

// NewCompactConstructorBuilder starts a record compact constructor.
func NewCompactConstructorBuilder() *MethodSpecBuilder {
	return &MethodSpecBuilder{
		kind:      kindCompactConstructor,
		modifiers: make(modifierSet),
		code:      NewCodeBlockBuilder(),
	}
}

// Name implements Nameable so methods can bind to $N placeholders.
func (m *MethodSpec) Name() string { return m.name }

// IsConstructor reports whether this is a constructor of either form.
func (m *MethodSpec) IsConstructor() bool { return m.kind != kindMethod }

// Parameters returns the declared parameters in order.
func (m *MethodSpec) Parameters() []*ParameterSpec {
	out := make([]*ParameterSpec, len(m.parameters))
	copy(out, m.parameters)
	return out
}

// Modifiers returns the method's modifiers in canonical order.
func (m *MethodSpec) Modifiers() []Modifier { return m.modifiers.sorted() }

// HasModifier reports whether the method carries the given modifier.
func (m *MethodSpec) HasModifier(mod Modifier) bool { return m.modifiers[mod] }

// String returns the canonical rendering of the declaration.
func (m *MethodSpec) String() string {
	w := newCodeWriter(defaultIndent, nil)
	m.emit(w)
	return w.String()
}

// Equals compares methods by rendered form.
func (m *MethodSpec) Equals(other *MethodSpec) bool {
	if m == nil || other == nil {
		return m == other
	}
	return m.String() == other.String()
}

// ToBuilder returns a builder seeded with a copy of this method.
func (m *MethodSpec) ToBuilder() *MethodSpecBuilder {
	b := &MethodSpecBuilder{
		name:         m.name,
		kind:         m.kind,
		modifiers:    make(modifierSet, len(m.modifiers)),
		returnType:   m.returnType,
		javadoc:      m.javadoc,
		defaultValue: m.defaultValue,
		code:         NewCodeBlockBuilder(),
	}
	for mod := range m.modifiers {
		b.modifiers[mod] = true
	}
	b.parameters = append(b.parameters, m.parameters...)
	b.exceptions = append(b.exceptions, m.exceptions...)
	b.typeVariables = append(b.typeVariables, m.typeVariables...)
	b.annotations = append(b.annotations, m.annotations...)
	if m.code != nil {
		b.code = m.code.ToBuilder()
	}
	return b
}

// named returns a copy carrying the given name. TypeSpec uses it to
// stamp the enclosing type's name onto anonymous constructors.
func (m *MethodSpec) named(name string) *MethodSpec {
	cp := *m
	cp.name = name
	return &cp
}

func (m *MethodSpec) emit(w *codeWriter) {
	if m.javadoc != nil {
		w.emitJavadoc(m.javadoc)
	}
	for _, a := range m.annotations {
		a.emit(w)
		w.emit("\n")
	}
	emitModifiers(w, m.modifiers.sorted())

	if len(m.typeVariables) > 0 {
		w.emit("<")
		for i, tv := range m.typeVariables {
			if i > 0 {
				w.emit(", ")
			}
			tv.emit(w)
		}
		w.emit("> ")
	}

	if m.kind == kindMethod {
		if m.returnType == nil {
			w.emit("void")
		} else {
			m.returnType.emit(w)
		}
		w.emit(" ")
	}

	w.emit(m.name)

	// Compact constructors take their signature from the record header.
	if m.kind != kindCompactConstructor {
		w.emit("(")
		for i, p := range m.parameters {
			if i > 0 {
				w.emit(", ")
			}
			p.emit(w)
		}
		w.emit(")")
	}

	if len(m.exceptions) > 0 {
		w.emit(" throws ")
		for i, ex := range m.exceptions {
			if i > 0 {
				w.emit(", ")
			}
			ex.emit(w)
		}
	}

	switch {
	case m.modifiers[Abstract], m.modifiers[Native] && m.defaultValue == nil:
		w.emit(";\n")
	case m.defaultValue != nil:
		w.emit(" default ")
		m.defaultValue.emit(w)
		w.emit(";\n")
	default:
		w.emit(" {\n")
		w.indentMore()
		if m.code != nil {
			m.code.emit(w)
		}
		w.indentLess()
		w.emit("}\n")
	}
}

// MethodSpecBuilder assembles a MethodSpec.
type MethodSpecBuilder struct {
	name          string
	kind          methodKind
	modifiers     modifierSet
	parameters    []*ParameterSpec
	returnType    TypeName
	exceptions    []TypeName
	typeVariables []*TypeVariableName
	javadoc       *CodeBlock
	annotations   []*AnnotationSpec
	code          *CodeBlockBuilder
	defaultValue  *CodeBlock
	err           error
}

// AddModifiers adds modifiers; combinations such as abstract with final,
// private, or static latch an error immediately.
func (b *MethodSpecBuilder) AddModifiers(modifiers ...Modifier) *MethodSpecBuilder {
	if b.err != nil {
		return b
	}
	b.modifiers.add(modifiers...)
	if err := checkMethodModifiers(b.modifiers); err != nil {
		b.err = err
	}
	return b
}

// AddParameter declares a parameter by type and name.
func (b *MethodSpecBuilder) AddParameter(paramType interface{}, name string, modifiers ...Modifier) *MethodSpecBuilder {
	if b.err != nil {
		return b
	}
	pb := NewParameterSpecBuilder(paramType, name)
	if len(modifiers) > 0 {
		pb.AddModifiers(modifiers...)
	}
	p, err := pb.Build()
	if err != nil {
		b.err = err
		return b
	}
	b.parameters = append(b.parameters, p)
	return b
}

// AddParameterSpec adds a pre-built parameter.
func (b *MethodSpecBuilder) AddParameterSpec(p *ParameterSpec) *MethodSpecBuilder {
	if b.err != nil {
		return b
	}
	b.parameters = append(b.parameters, p)
	return b
}

// Returns sets the return type. Constructors cannot declare one.
func (b *MethodSpecBuilder) Returns(returnType interface{}) *MethodSpecBuilder {
	if b.err != nil {
		return b
	}
	if b.kind != kindMethod {
		b.err = structuralErrorf("only methods can have a return type")
		return b
	}
	t, err := TypeOf(returnType)
	if err != nil {
		b.err = err
		return b
	}
	b.returnType = t
	return b
}

// AddException adds a throws-clause entry.
func (b *MethodSpecBuilder) AddException(exception interface{}) *MethodSpecBuilder {
	if b.err != nil {
		return b
	}
	t, err := TypeOf(exception)
	if err != nil {
		b.err = err
		return b
	}
	b.exceptions = append(b.exceptions, t)
	return b
}

// AddTypeVariable adds a generic type parameter.
func (b *MethodSpecBuilder) AddTypeVariable(tv *TypeVariableName) *MethodSpecBuilder {
	if b.err != nil {
		return b
	}
	b.typeVariables = append(b.typeVariables, tv)
	return b
}

// AddJavadoc sets the method's doc comment.
func (b *MethodSpecBuilder) AddJavadoc(format string, args ...interface{}) *MethodSpecBuilder {
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
func (b *MethodSpecBuilder) AddAnnotation(annotation *AnnotationSpec) *MethodSpecBuilder {
	if b.err != nil {
		return b
	}
	b.annotations = append(b.annotations, annotation)
	return b
}

func (b *MethodSpecBuilder) bodyAllowed() bool {
	if b.kind == kindCompactConstructor {
		b.err = structuralErrorf("compact constructors cannot have a body")
		return false
	}
	return true
}

// AddCode appends formatted code to the body.
func (b *MethodSpecBuilder) AddCode(format string, args ...interface{}) *MethodSpecBuilder {
	if b.err != nil || !b.bodyAllowed() {
		return b
	}
	b.code.Add(format, args...)
	return b
}

// AddNamedCode appends formatted code bound to named arguments.
func (b *MethodSpecBuilder) AddNamedCode(format string, args map[string]interface{}) *MethodSpecBuilder {
	if b.err != nil || !b.bodyAllowed() {
		return b
	}
	b.code.AddNamed(format, args)
	return b
}

// AddCodeBlock appends a pre-built block to the body.
func (b *MethodSpecBuilder) AddCodeBlock(block *CodeBlock) *MethodSpecBuilder {
	if b.err != nil || !b.bodyAllowed() {
		return b
	}
	b.code.Add("$L", block)
	return b
}

// AddStatement appends a statement terminated with ";\n".
func (b *MethodSpecBuilder) AddStatement(format string, args ...interface{}) *MethodSpecBuilder {
	if b.err != nil || !b.bodyAllowed() {
		return b
	}
	b.code.AddStatement(format, args...)
	return b
}

// BeginControlFlow opens a brace-delimited block in the body.
func (b *MethodSpecBuilder) BeginControlFlow(controlFlow string, args ...interface{}) *MethodSpecBuilder {
	if b.err != nil || !b.bodyAllowed() {
		return b
	}
	b.code.BeginControlFlow(controlFlow, args...)
	return b
}

// NextControlFlow chains a block such as "else if ($L)".
func (b *MethodSpecBuilder) NextControlFlow(controlFlow string, args ...interface{}) *MethodSpecBuilder {
	if b.err != nil || !b.bodyAllowed() {
		return b
	}
	b.code.NextControlFlow(controlFlow, args...)
	return b
}

// EndControlFlow closes the current block in the body.
func (b *MethodSpecBuilder) EndControlFlow() *MethodSpecBuilder {
	if b.err != nil || !b.bodyAllowed() {
		return b
	}
	b.code.EndControlFlow()
	return b
}

// DefaultValue sets the default clause of an annotation interface method.
func (b *MethodSpecBuilder) DefaultValue(format string, args ...interface{}) *MethodSpecBuilder {
	if b.err != nil {
		return b
	}
	v, err := CodeBlockOf(format, args...)
	if err != nil {
		b.err = err
		return b
	}
	b.defaultValue = v
	return b
}

// Build returns the immutable MethodSpec. Abstract methods with a
// non-empty body are rejected here.
func (b *MethodSpecBuilder) Build() (*MethodSpec, error) {
	if b.err != nil {
		return nil, b.err
	}
	code, err := b.code.Build()
	if err != nil {
		return nil, err
	}
	if b.modifiers[Abstract] && !code.IsEmpty() {
		return nil, structuralErrorf("abstract methods cannot have a body")
	}

	m := &MethodSpec{
		name:         b.name,
		kind:         b.kind,
		modifiers:    make(modifierSet, len(b.modifiers)),
		returnType:   b.returnType,
		javadoc:      b.javadoc,
		defaultValue: b.defaultValue,
	}
	if !code.IsEmpty() {
		m.code = code
	}
	for mod := range b.modifiers {
		m.modifiers[mod] = true
	}
	m.parameters = append(m.parameters, b.parameters...)
	m.exceptions = append(m.exceptions, b.exceptions...)
	m.typeVariables = append(m.typeVariables, b.typeVariables...)
	m.annotations = append(m.annotations, b.annotations...)
	return m, nil
}
