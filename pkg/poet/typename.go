package poet

import (
	"fmt"
	"strings"

	"github.com/toyz/poet/internal/typeparse"
)

// TypeName is a reference to a Java type at a usage site. The variant set
// is closed: *ClassName, *ArrayTypeName, *ParameterizedTypeName,
// *TypeVariableName, and *WildcardTypeName are the only implementations.
//
// TypeNames are immutable. Two TypeNames are equal iff their canonical
// rendered strings are equal; the canonical form always uses fully
// qualified names.
type TypeName interface {
	// Annotations returns the type-use annotations attached to this
	// reference.
	Annotations() []*AnnotationSpec

	// Annotated returns a copy of this reference with the given
	// annotations appended.
	Annotated(annotations ...*AnnotationSpec) TypeName

	// String returns the canonical rendering of this reference.
	String() string

	emit(w *codeWriter)
	isTypeName()
}

// typeNameString renders any TypeName through a fresh writer with no
// import context, producing the canonical fully qualified form.
func typeNameString(t TypeName) string {
	w := newCodeWriter(defaultIndent, nil)
	t.emit(w)
	return w.String()
}

func emitTypeAnnotations(w *codeWriter, annotations []*AnnotationSpec) {
	for _, a := range annotations {
		a.emit(w)
		w.emit(" ")
	}
}

func copyAnnotations(annotations []*AnnotationSpec) []*AnnotationSpec {
	if len(annotations) == 0 {
		return nil
	}
	out := make([]*AnnotationSpec, len(annotations))
	copy(out, annotations)
	return out
}

// ClassName references a class or interface type by package name and a
// chain of simple names (one entry per nesting level).
type ClassName struct {
	packageName string
	names       []string
	primitive   bool
	skipImport  bool
	annotations []*AnnotationSpec
}

// NewClassName creates a ClassName from a package name and one or more
// simple names. Simple names containing dots are split into nesting
// levels, so NewClassName("java.util", "Map.Entry") and
// NewClassName("java.util", "Map", "Entry") are equivalent.
func NewClassName(packageName string, simpleNames ...string) *ClassName {
	var names []string
	for _, n := range simpleNames {
		names = append(names, strings.Split(n, ".")...)
	}
	if len(names) == 0 {
		names = []string{""}
	}
	return &ClassName{packageName: packageName, names: names}
}

// PackageName returns the package portion of this class name.
func (c *ClassName) PackageName() string { return c.packageName }

// SimpleName returns the innermost simple name.
func (c *ClassName) SimpleName() string { return c.names[len(c.names)-1] }

// SimpleNames returns the nesting chain of simple names.
func (c *ClassName) SimpleNames() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// QualifiedName returns the canonical dotted form.
func (c *ClassName) QualifiedName() string {
	joined := strings.Join(c.names, ".")
	if c.packageName == "" {
		return joined
	}
	return c.packageName + "." + joined
}

// TopLevel returns the enclosing top-level class of this name (itself if
// not nested). Imports always target the top-level class.
func (c *ClassName) TopLevel() *ClassName {
	if len(c.names) == 1 {
		return c
	}
	return &ClassName{packageName: c.packageName, names: c.names[:1], skipImport: c.skipImport}
}

// NestedClass returns the ClassName for a class nested inside this one.
func (c *ClassName) NestedClass(name string) *ClassName {
	names := make([]string, len(c.names), len(c.names)+1)
	copy(names, c.names)
	return &ClassName{packageName: c.packageName, names: append(names, name)}
}

// IsPrimitive reports whether this is one of the primitive singletons.
func (c *ClassName) IsPrimitive() bool { return c.primitive }

// Annotations implements TypeName.
func (c *ClassName) Annotations() []*AnnotationSpec { return copyAnnotations(c.annotations) }

// Annotated implements TypeName.
func (c *ClassName) Annotated(annotations ...*AnnotationSpec) TypeName {
	cp := *c
	cp.annotations = append(copyAnnotations(c.annotations), annotations...)
	return &cp
}

// String implements TypeName.
func (c *ClassName) String() string { return typeNameString(c) }

func (c *ClassName) emit(w *codeWriter) {
	emitTypeAnnotations(w, c.annotations)
	w.emitClassName(c)
}

func (c *ClassName) isTypeName() {}

// ArrayTypeName references an array type with a single component type.
type ArrayTypeName struct {
	componentType TypeName
	annotations   []*AnnotationSpec
}

// ArrayOf creates an array type reference. The component may be a
// TypeName, a type-literal string, or a Go value accepted by TypeOf;
// invalid components panic, matching MustType.
func ArrayOf(component interface{}) *ArrayTypeName {
	return &ArrayTypeName{componentType: MustType(component)}
}

// ComponentType returns the array's component type.
func (a *ArrayTypeName) ComponentType() TypeName { return a.componentType }

// Annotations implements TypeName.
func (a *ArrayTypeName) Annotations() []*AnnotationSpec { return copyAnnotations(a.annotations) }

// Annotated implements TypeName.
func (a *ArrayTypeName) Annotated(annotations ...*AnnotationSpec) TypeName {
	cp := *a
	cp.annotations = append(copyAnnotations(a.annotations), annotations...)
	return &cp
}

// String implements TypeName.
func (a *ArrayTypeName) String() string { return typeNameString(a) }

func (a *ArrayTypeName) emit(w *codeWriter) {
	a.componentType.emit(w)
	for _, ann := range a.annotations {
		w.emit(" ")
		ann.emit(w)
	}
	w.emit("[]")
}

func (a *ArrayTypeName) isTypeName() {}

// ParameterizedTypeName references a generic type such as List<String>.
// For statically nested generic types it carries an owner, rendered as
// Owner<Args>.Nested<Args>.
type ParameterizedTypeName struct {
	rawType       *ClassName
	typeArguments []TypeName
	ownerType     *ParameterizedTypeName
	annotations   []*AnnotationSpec
}

// Parameterized creates a parameterized type from a raw type and type
// arguments. The raw type may be a *ClassName or a type-literal string.
// Primitive arguments are converted to their boxed forms, since generic
// arguments cannot be primitives.
func Parameterized(rawType interface{}, typeArguments ...interface{}) *ParameterizedTypeName {
	raw := mustClassName(rawType)
	args := make([]TypeName, len(typeArguments))
	for i, a := range typeArguments {
		args[i] = boxed(MustType(a))
	}
	return &ParameterizedTypeName{rawType: raw, typeArguments: args}
}

func mustClassName(v interface{}) *ClassName {
	switch t := v.(type) {
	case *ClassName:
		return t
	case string:
		return BestGuess(t)
	default:
		panic(fmt.Sprintf("poet: expected class name but was %T", v))
	}
}

// RawType returns the raw (unparameterized) class.
func (p *ParameterizedTypeName) RawType() *ClassName { return p.rawType }

// TypeArguments returns the ordered type arguments.
func (p *ParameterizedTypeName) TypeArguments() []TypeName {
	out := make([]TypeName, len(p.typeArguments))
	copy(out, p.typeArguments)
	return out
}

// NestedClass returns a parameterized reference to a generic class nested
// inside this one, e.g. Outer<K>.Inner<V>.
func (p *ParameterizedTypeName) NestedClass(name string, typeArguments ...interface{}) *ParameterizedTypeName {
	args := make([]TypeName, len(typeArguments))
	for i, a := range typeArguments {
		args[i] = boxed(MustType(a))
	}
	return &ParameterizedTypeName{
		rawType:       p.rawType.NestedClass(name),
		typeArguments: args,
		ownerType:     p,
	}
}

// Annotations implements TypeName.
func (p *ParameterizedTypeName) Annotations() []*AnnotationSpec { return copyAnnotations(p.annotations) }

// Annotated implements TypeName.
func (p *ParameterizedTypeName) Annotated(annotations ...*AnnotationSpec) TypeName {
	cp := *p
	cp.annotations = append(copyAnnotations(p.annotations), annotations...)
	return &cp
}

// String implements TypeName.
func (p *ParameterizedTypeName) String() string { return typeNameString(p) }

func (p *ParameterizedTypeName) emit(w *codeWriter) {
	emitTypeAnnotations(w, p.annotations)
	if p.ownerType != nil {
		p.ownerType.emit(w)
		w.emit(".")
		w.emit(p.rawType.SimpleName())
	} else {
		p.rawType.emit(w)
	}
	if len(p.typeArguments) > 0 {
		w.emit("<")
		for i, arg := range p.typeArguments {
			if i > 0 {
				w.emit(", ")
			}
			arg.emit(w)
		}
		w.emit(">")
	}
}

func (p *ParameterizedTypeName) isTypeName() {}

// TypeVariableName references a type variable such as T, with optional
// upper bounds joined by '&'.
type TypeVariableName struct {
	name        string
	bounds      []TypeName
	annotations []*AnnotationSpec
}

// TypeVariable creates a type variable with the given name and bounds.
func TypeVariable(name string, bounds ...interface{}) *TypeVariableName {
	bs := make([]TypeName, len(bounds))
	for i, b := range bounds {
		bs[i] = MustType(b)
	}
	return &TypeVariableName{name: name, bounds: bs}
}

// Name returns the type variable's name.
func (t *TypeVariableName) Name() string { return t.name }

// Bounds returns the ordered upper bounds.
func (t *TypeVariableName) Bounds() []TypeName {
	out := make([]TypeName, len(t.bounds))
	copy(out, t.bounds)
	return out
}

// Annotations implements TypeName.
func (t *TypeVariableName) Annotations() []*AnnotationSpec { return copyAnnotations(t.annotations) }

// Annotated implements TypeName.
func (t *TypeVariableName) Annotated(annotations ...*AnnotationSpec) TypeName {
	cp := *t
	cp.annotations = append(copyAnnotations(t.annotations), annotations...)
	return &cp
}

// String implements TypeName.
func (t *TypeVariableName) String() string { return typeNameString(t) }

func (t *TypeVariableName) emit(w *codeWriter) {
	emitTypeAnnotations(w, t.annotations)
	w.emit(t.name)
	if len(t.bounds) > 0 {
		w.emit(" extends ")
		for i, b := range t.bounds {
			if i > 0 {
				w.emit(" & ")
			}
			b.emit(w)
		}
	}
}

func (t *TypeVariableName) isTypeName() {}

// WildcardTypeName references a wildcard such as ? extends Number or
// ? super String. The default upper bound is Object, which renders as a
// bare "?".
type WildcardTypeName struct {
	upperBounds []TypeName
	lowerBounds []TypeName
	annotations []*AnnotationSpec
}

// SubtypeOf creates a wildcard bounded above: ? extends Bound & Bound2.
func SubtypeOf(upperBounds ...interface{}) *WildcardTypeName {
	bs := make([]TypeName, len(upperBounds))
	for i, b := range upperBounds {
		bs[i] = MustType(b)
	}
	return &WildcardTypeName{upperBounds: bs}
}

// SupertypeOf creates a wildcard bounded below: ? super Bound.
func SupertypeOf(lowerBounds ...interface{}) *WildcardTypeName {
	bs := make([]TypeName, len(lowerBounds))
	for i, b := range lowerBounds {
		bs[i] = MustType(b)
	}
	return &WildcardTypeName{upperBounds: []TypeName{Object}, lowerBounds: bs}
}

// UpperBounds returns the ordered upper bounds; empty means unbounded.
func (wc *WildcardTypeName) UpperBounds() []TypeName {
	out := make([]TypeName, len(wc.upperBounds))
	copy(out, wc.upperBounds)
	return out
}

// LowerBounds returns the ordered lower bounds.
func (wc *WildcardTypeName) LowerBounds() []TypeName {
	out := make([]TypeName, len(wc.lowerBounds))
	copy(out, wc.lowerBounds)
	return out
}

// Annotations implements TypeName.
func (wc *WildcardTypeName) Annotations() []*AnnotationSpec { return copyAnnotations(wc.annotations) }

// Annotated implements TypeName.
func (wc *WildcardTypeName) Annotated(annotations ...*AnnotationSpec) TypeName {
	cp := *wc
	cp.annotations = append(copyAnnotations(wc.annotations), annotations...)
	return &cp
}

// String implements TypeName.
func (wc *WildcardTypeName) String() string { return typeNameString(wc) }

func (wc *WildcardTypeName) emit(w *codeWriter) {
	emitTypeAnnotations(w, wc.annotations)
	w.emit("?")

	unbounded := len(wc.upperBounds) == 0 ||
		(len(wc.upperBounds) == 1 && typesEqual(wc.upperBounds[0], Object))
	if !unbounded {
		w.emit(" extends ")
		for i, b := range wc.upperBounds {
			if i > 0 {
				w.emit(" & ")
			}
			b.emit(w)
		}
	}
	if len(wc.lowerBounds) > 0 {
		w.emit(" super ")
		for i, b := range wc.lowerBounds {
			if i > 0 {
				w.emit(" & ")
			}
			b.emit(w)
		}
	}
}

func (wc *WildcardTypeName) isTypeName() {}

// typesEqual compares two type references by canonical string form.
func typesEqual(a, b TypeName) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.String() == b.String()
}

// Primitive and well-known java.lang singletons. These are created once
// and never mutated; the skipImport flag keeps them out of import
// collection so String and the boxed primitives render short without an
// import line, the way javac treats them.
var (
	Void        = primitiveType("void")
	BooleanType = primitiveType("boolean")
	ByteType    = primitiveType("byte")
	ShortType   = primitiveType("short")
	IntType     = primitiveType("int")
	LongType    = primitiveType("long")
	CharType    = primitiveType("char")
	FloatType   = primitiveType("float")
	DoubleType  = primitiveType("double")

	Object     = wellKnown("Object")
	StringType = wellKnown("String")

	BoxedVoid    = wellKnown("Void")
	BoxedBoolean = wellKnown("Boolean")
	BoxedByte    = wellKnown("Byte")
	BoxedShort   = wellKnown("Short")
	BoxedInt     = wellKnown("Integer")
	BoxedLong    = wellKnown("Long")
	BoxedChar    = wellKnown("Character")
	BoxedFloat   = wellKnown("Float")
	BoxedDouble  = wellKnown("Double")
)

func primitiveType(name string) *ClassName {
	return &ClassName{names: []string{name}, primitive: true, skipImport: true}
}

func wellKnown(name string) *ClassName {
	return &ClassName{packageName: "java.lang", names: []string{name}, skipImport: true}
}

var primitivesByName = map[string]*ClassName{
	"void": Void, "boolean": BooleanType, "byte": ByteType,
	"short": ShortType, "int": IntType, "long": LongType,
	"char": CharType, "float": FloatType, "double": DoubleType,
}

var boxedByPrimitive = map[string]*ClassName{
	"void": BoxedVoid, "boolean": BoxedBoolean, "byte": BoxedByte,
	"short": BoxedShort, "int": BoxedInt, "long": BoxedLong,
	"char": BoxedChar, "float": BoxedFloat, "double": BoxedDouble,
}

// boxed converts a primitive reference to its boxed equivalent and leaves
// every other reference untouched.
func boxed(t TypeName) TypeName {
	if c, ok := t.(*ClassName); ok && c.primitive {
		return boxedByPrimitive[c.SimpleName()]
	}
	return t
}

// wellKnownByName lets type-literal parsing resolve the short names of
// the pre-registered java.lang singletons without qualification.
var wellKnownByName = map[string]*ClassName{
	"Object": Object, "String": StringType,
	"Void": BoxedVoid, "Boolean": BoxedBoolean, "Byte": BoxedByte,
	"Short": BoxedShort, "Integer": BoxedInt, "Long": BoxedLong,
	"Character": BoxedChar, "Float": BoxedFloat, "Double": BoxedDouble,
}

// TypeOf normalizes v into a TypeName. It accepts:
//   - an existing TypeName (returned unchanged),
//   - a string: a primitive name, a well-known java.lang short name, or
//     any Java type literal including generics, wildcards, nesting, and
//     array dimensions (parsed with a real grammar, so
//     "java.util.Map<String, ? extends Number>[]" works),
//   - a Go value whose predeclared kind maps onto a Java type (bool,
//     string, the signed integer types, float32/float64, rune/byte).
func TypeOf(v interface{}) (TypeName, error) {
	switch t := v.(type) {
	case nil:
		return nil, structuralErrorf("cannot derive a type from nil")
	case TypeName:
		return t, nil
	case string:
		return parseTypeLiteral(t)
	case bool:
		return BooleanType, nil
	case int:
		return IntType, nil
	case int64:
		return LongType, nil
	case int16:
		return ShortType, nil
	case int8, uint8:
		return ByteType, nil
	case int32:
		return CharType, nil
	case float32:
		return FloatType, nil
	case float64:
		return DoubleType, nil
	default:
		return nil, structuralErrorf("cannot derive a type from %T", v)
	}
}

// MustType is TypeOf that panics on error, for use in variable
// initializers and tests.
func MustType(v interface{}) TypeName {
	t, err := TypeOf(v)
	if err != nil {
		panic("poet: " + err.Error())
	}
	return t
}

func parseTypeLiteral(s string) (TypeName, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, structuralErrorf("cannot derive a type from an empty string")
	}
	if p, ok := primitivesByName[s]; ok {
		return p, nil
	}
	// Fast path: plain dotted or simple names skip the grammar.
	if !strings.ContainsAny(s, "<>[]?& ") {
		if w, ok := wellKnownByName[s]; ok {
			return w, nil
		}
		return BestGuess(s), nil
	}

	node, err := typeparse.Parse(s)
	if err != nil {
		return nil, &Error{
			Code:     StructuralErrorCode,
			Message:  "cannot parse type literal",
			Fragment: s,
			Cause:    err,
		}
	}
	return typeFromNode(node)
}

func typeFromNode(node *typeparse.Type) (TypeName, error) {
	if node.Wildcard != nil {
		return wildcardFromNode(node.Wildcard)
	}
	return refFromNode(node.Ref)
}

func wildcardFromNode(node *typeparse.Wildcard) (TypeName, error) {
	var bounds []interface{}
	for _, b := range node.Bounds {
		t, err := typeFromNode(b)
		if err != nil {
			return nil, err
		}
		bounds = append(bounds, t)
	}
	switch node.Kind {
	case "super":
		return SupertypeOf(bounds...), nil
	case "extends":
		return SubtypeOf(bounds...), nil
	default:
		return SubtypeOf(Object), nil
	}
}

func refFromNode(node *typeparse.Ref) (TypeName, error) {
	base := strings.Join(node.Segments, ".")

	var t TypeName
	if p, ok := primitivesByName[base]; ok {
		t = p
	} else if w, ok := wellKnownByName[base]; ok {
		t = w
	} else {
		t = BestGuess(base)
	}

	if len(node.Args) > 0 {
		raw, ok := t.(*ClassName)
		if !ok {
			return nil, structuralErrorf("type %q cannot take type arguments", base)
		}
		args := make([]interface{}, len(node.Args))
		for i, a := range node.Args {
			arg, err := typeFromNode(a)
			if err != nil {
				return nil, err
			}
			args[i] = arg
		}
		t = Parameterized(raw, args...)
	}

	for range node.Dims {
		t = &ArrayTypeName{componentType: t}
	}
	return t, nil
}
