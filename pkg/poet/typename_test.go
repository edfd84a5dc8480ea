package poet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassNameBasics(t *testing.T) {
	name := NewClassName("java.util", "Map", "Entry")
	assert.Equal(t, "java.util", name.PackageName())
	assert.Equal(t, "Entry", name.SimpleName())
	assert.Equal(t, []string{"Map", "Entry"}, name.SimpleNames())
	assert.Equal(t, "java.util.Map.Entry", name.QualifiedName())
	assert.Equal(t, "Map", name.TopLevel().SimpleName())

	// Dotted simple names split into nesting levels.
	dotted := NewClassName("java.util", "Map.Entry")
	assert.Equal(t, name.QualifiedName(), dotted.QualifiedName())
}

func TestClassNameNestedClass(t *testing.T) {
	outer := NewClassName("com.example", "Outer")
	inner := outer.NestedClass("Inner")
	assert.Equal(t, "com.example.Outer.Inner", inner.QualifiedName())
	assert.Equal(t, "Outer", inner.TopLevel().SimpleName())
}

func TestTypeOfPrimitives(t *testing.T) {
	for _, name := range []string{
		"void", "boolean", "byte", "short", "int", "long", "char", "float", "double",
	} {
		got, err := TypeOf(name)
		require.NoError(t, err)
		assert.Equal(t, name, got.String())
		assert.True(t, got.(*ClassName).IsPrimitive())
	}
}

func TestTypeOfGoValues(t *testing.T) {
	tests := []struct {
		value interface{}
		want  string
	}{
		{true, "boolean"},
		{42, "int"},
		{int64(42), "long"},
		{int16(1), "short"},
		{int8(1), "byte"},
		{byte(1), "byte"},
		{3.14, "double"},
		{float32(3.14), "float"},
	}
	for _, tt := range tests {
		got, err := TypeOf(tt.value)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got.String())
	}
}

func TestTypeOfIdempotentOnTypeName(t *testing.T) {
	original := NewClassName("com.example", "Widget")
	got, err := TypeOf(original)
	require.NoError(t, err)
	assert.Same(t, TypeName(original), got)
}

func TestTypeOfRejectsUnsupported(t *testing.T) {
	_, err := TypeOf(nil)
	require.Error(t, err)

	_, err = TypeOf(struct{}{})
	require.Error(t, err)

	_, err = TypeOf("")
	require.Error(t, err)
}

func TestParseTypeLiterals(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"well-known short name", "String", "java.lang.String"},
		{"boxed short name", "Integer", "java.lang.Integer"},
		{"qualified", "java.util.List", "java.util.List"},
		{"array", "int[]", "int[]"},
		{"array of arrays", "String[][]", "java.lang.String[][]"},
		{"generic", "java.util.List<String>", "java.util.List<java.lang.String>"},
		{"generic with two args", "java.util.Map<String, Integer>", "java.util.Map<java.lang.String, java.lang.Integer>"},
		{"nested generic arg", "java.util.List<java.util.List<String>>", "java.util.List<java.util.List<java.lang.String>>"},
		{"unbounded wildcard", "java.util.List<?>", "java.util.List<?>"},
		{"upper bounded wildcard", "java.util.List<? extends java.lang.Number>", "java.util.List<? extends java.lang.Number>"},
		{"lower bounded wildcard", "java.util.List<? super String>", "java.util.List<? super java.lang.String>"},
		{"generic array", "java.util.List<String>[]", "java.util.List<java.lang.String>[]"},
		{"nested class generic", "java.util.Map.Entry<String, Integer>", "java.util.Map.Entry<java.lang.String, java.lang.Integer>"},
		{"primitive boxed as type arg", "java.util.List<int>", "java.util.List<java.lang.Integer>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TypeOf(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestParseTypeLiteralErrors(t *testing.T) {
	for _, input := range []string{"List<", "Map<String,", "int[", "?extends"} {
		t.Run(input, func(t *testing.T) {
			_, err := TypeOf(input)
			require.Error(t, err)
		})
	}
}

func TestArrayOf(t *testing.T) {
	arr := ArrayOf(StringType)
	assert.Equal(t, "java.lang.String[]", arr.String())
	assert.Equal(t, "java.lang.String", arr.ComponentType().String())

	nested := ArrayOf(arr)
	assert.Equal(t, "java.lang.String[][]", nested.String())
}

func TestParameterizedBoxesPrimitiveArguments(t *testing.T) {
	list := NewClassName("java.util", "List")
	p := Parameterized(list, IntType)
	assert.Equal(t, "java.util.List<java.lang.Integer>", p.String())

	q := Parameterized(list, "boolean")
	assert.Equal(t, "java.util.List<java.lang.Boolean>", q.String())
}

func TestParameterizedNestedClass(t *testing.T) {
	outer := Parameterized(NewClassName("com.example", "Outer"), TypeVariable("K"))
	inner := outer.NestedClass("Inner", TypeVariable("V"))
	assert.Equal(t, "com.example.Outer<K>.Inner<V>", inner.String())
}

func TestTypeVariable(t *testing.T) {
	assert.Equal(t, "T", TypeVariable("T").String())
	assert.Equal(t, "T extends java.lang.Number",
		TypeVariable("T", "java.lang.Number").String())
	assert.Equal(t, "T extends java.lang.Number & java.lang.Comparable",
		TypeVariable("T", "java.lang.Number", "java.lang.Comparable").String())
}

func TestWildcards(t *testing.T) {
	// The Object upper bound means unbounded and renders bare.
	assert.Equal(t, "?", SubtypeOf(Object).String())
	assert.Equal(t, "? extends java.lang.Number", SubtypeOf("java.lang.Number").String())
	assert.Equal(t, "? super java.lang.String", SupertypeOf(StringType).String())
}

func TestTypeEqualityByCanonicalForm(t *testing.T) {
	a := MustType("java.util.List<String>")
	b := Parameterized(NewClassName("java.util", "List"), StringType)
	assert.Equal(t, a.String(), b.String())
	assert.True(t, typesEqual(a, b))
}

func TestAnnotatedTypeRendering(t *testing.T) {
	nullable, err := MarkerAnnotation(NewClassName("org.jetbrains.annotations", "Nullable"))
	require.NoError(t, err)

	annotated := StringType.Annotated(nullable)
	assert.Equal(t, "@org.jetbrains.annotations.Nullable java.lang.String", annotated.String())

	// The original reference is untouched.
	assert.Equal(t, "java.lang.String", StringType.String())
	assert.Len(t, annotated.Annotations(), 1)
	assert.Empty(t, StringType.Annotations())
}
