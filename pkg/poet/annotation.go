package poet

// AnnotationSpec describes one annotation use: the annotation type plus
// an ordered set of named members. Member insertion order is emission
// order; assigning the same member twice grows a {a, b} array value.
//
// Rendering is single-line:
//
//	@Marker                          no members
//	@SuppressWarnings("unchecked")   exactly one member named "value"
//	@Column(name = "id", length = 32)
type AnnotationSpec struct {
	typeName    *ClassName
	memberOrder []string
	members     map[string][]*CodeBlock
}

// NewAnnotationSpecBuilder starts an annotation on the given type, which
// may be a *ClassName or anything TypeOf resolves to one.
func NewAnnotationSpecBuilder(annotationType interface{}) *AnnotationSpecBuilder {
	b := &AnnotationSpecBuilder{members: make(map[string][]*CodeBlock)}
	t, err := TypeOf(annotationType)
	if err != nil {
		b.err = err
		return b
	}
	cn, ok := t.(*ClassName)
	if !ok {
		b.err = structuralErrorf("annotation type must be a class, got %s", t.String())
		return b
	}
	b.typeName = cn
	return b
}

// MarkerAnnotation builds an annotation with no members.
func MarkerAnnotation(annotationType interface{}) (*AnnotationSpec, error) {
	return NewAnnotationSpecBuilder(annotationType).Build()
}

// Type returns the annotation's class.
func (a *AnnotationSpec) Type() *ClassName { return a.typeName }

// Members returns the member values keyed by name.
func (a *AnnotationSpec) Members() map[string][]*CodeBlock {
	out := make(map[string][]*CodeBlock, len(a.members))
	for name, values := range a.members {
		cp := make([]*CodeBlock, len(values))
		copy(cp, values)
		out[name] = cp
	}
	return out
}

// String returns the canonical single-line rendering.
func (a *AnnotationSpec) String() string {
	w := newCodeWriter(defaultIndent, nil)
	a.emit(w)
	return w.String()
}

// Equals compares annotations by rendered form.
func (a *AnnotationSpec) Equals(other *AnnotationSpec) bool {
	if a == nil || other == nil {
		return a == other
	}
	return a.String() == other.String()
}

// ToBuilder returns a builder seeded with a copy of this annotation.
func (a *AnnotationSpec) ToBuilder() *AnnotationSpecBuilder {
	b := &AnnotationSpecBuilder{
		typeName: a.typeName,
		members:  make(map[string][]*CodeBlock, len(a.members)),
	}
	b.memberOrder = append(b.memberOrder, a.memberOrder...)
	for name, values := range a.members {
		b.members[name] = append([]*CodeBlock(nil), values...)
	}
	return b
}

func (a *AnnotationSpec) emit(w *codeWriter) {
	w.emit("@")
	a.typeName.emit(w)
	if len(a.memberOrder) == 0 {
		return
	}
	w.emit("(")
	if len(a.memberOrder) == 1 && a.memberOrder[0] == "value" {
		emitAnnotationValue(w, a.members["value"])
	} else {
		for i, name := range a.memberOrder {
			if i > 0 {
				w.emit(", ")
			}
			w.emit(name + " = ")
			emitAnnotationValue(w, a.members[name])
		}
	}
	w.emit(")")
}

func emitAnnotationValue(w *codeWriter, values []*CodeBlock) {
	if len(values) == 1 {
		values[0].emit(w)
		return
	}
	w.emit("{")
	for i, v := range values {
		if i > 0 {
			w.emit(", ")
		}
		v.emit(w)
	}
	w.emit("}")
}

// AnnotationSpecBuilder assembles an AnnotationSpec. Like the other
// builders, the first error latches and Build reports it.
type AnnotationSpecBuilder struct {
	typeName    *ClassName
	memberOrder []string
	members     map[string][]*CodeBlock
	err         error
}

// AddMember adds a member with a formatted value. Adding to an existing
// member appends another array element.
func (b *AnnotationSpecBuilder) AddMember(name, format string, args ...interface{}) *AnnotationSpecBuilder {
	if b.err != nil {
		return b
	}
	block, err := CodeBlockOf(format, args...)
	if err != nil {
		b.err = err
		return b
	}
	return b.AddMemberBlock(name, block)
}

// AddMemberBlock adds a member with a pre-built value.
func (b *AnnotationSpecBuilder) AddMemberBlock(name string, value *CodeBlock) *AnnotationSpecBuilder {
	if b.err != nil {
		return b
	}
	if err := checkIdentifier(name); err != nil {
		b.err = err
		return b
	}
	if _, exists := b.members[name]; !exists {
		b.memberOrder = append(b.memberOrder, name)
	}
	b.members[name] = append(b.members[name], value)
	return b
}

// Build returns the immutable AnnotationSpec.
func (b *AnnotationSpecBuilder) Build() (*AnnotationSpec, error) {
	if b.err != nil {
		return nil, b.err
	}
	a := &AnnotationSpec{
		typeName: b.typeName,
		members:  make(map[string][]*CodeBlock, len(b.members)),
	}
	a.memberOrder = append(a.memberOrder, b.memberOrder...)
	for name, values := range b.members {
		a.members[name] = append([]*CodeBlock(nil), values...)
	}
	return a, nil
}
