package poet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldBasic(t *testing.T) {
	f, err := NewFieldSpecBuilder("int", "count").Build()
	require.NoError(t, err)
	assert.Equal(t, "int count;\n", f.String())
	assert.Equal(t, "count", f.Name())
	assert.Equal(t, "int", f.Type().String())
}

func TestFieldModifiersAndInitializer(t *testing.T) {
	f, err := NewFieldSpecBuilder(StringType, "NAME").
		AddModifiers(Static, Public, Final).
		Initializer("$S", "poet").
		Build()
	require.NoError(t, err)
	assert.Equal(t, "public static final java.lang.String NAME = \"poet\";\n", f.String())
	assert.True(t, f.HasModifier(Final))
	assert.Equal(t, []Modifier{Public, Static, Final}, f.Modifiers())
}

func TestFieldInitializerBlock(t *testing.T) {
	init, err := CodeBlockOf("new $T<>()", NewClassName("java.util", "ArrayList"))
	require.NoError(t, err)

	f, err := NewFieldSpecBuilder("java.util.List<String>", "items").
		AddModifiers(Private, Final).
		InitializerBlock(init).
		Build()
	require.NoError(t, err)
	assert.Equal(t,
		"private final java.util.List<java.lang.String> items = new java.util.ArrayList<>();\n",
		f.String())
}

func TestFieldAnnotationsOwnLine(t *testing.T) {
	deprecated, err := MarkerAnnotation(NewClassName("java.lang", "Deprecated"))
	require.NoError(t, err)

	f, err := NewFieldSpecBuilder("int", "legacy").
		AddAnnotation(deprecated).
		Build()
	require.NoError(t, err)
	assert.Equal(t, "@java.lang.Deprecated\nint legacy;\n", f.String())
}

func TestFieldJavadoc(t *testing.T) {
	f, err := NewFieldSpecBuilder("int", "count").
		AddJavadoc("The running total.\n").
		Build()
	require.NoError(t, err)
	assert.Equal(t, "/**\n * The running total.\n */\nint count;\n", f.String())
}

func TestFieldRejectsBadName(t *testing.T) {
	_, err := NewFieldSpecBuilder("int", "2count").Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a valid Java identifier")
}

func TestFieldRejectsIllegalModifierCombination(t *testing.T) {
	_, err := NewFieldSpecBuilder("int", "x").
		AddModifiers(Final, Volatile).
		Build()
	require.Error(t, err)
}

func TestFieldToBuilder(t *testing.T) {
	f, err := NewFieldSpecBuilder("int", "x").AddModifiers(Private).Build()
	require.NoError(t, err)

	g, err := f.ToBuilder().AddModifiers(Final).Build()
	require.NoError(t, err)
	assert.Equal(t, "private int x;\n", f.String())
	assert.Equal(t, "private final int x;\n", g.String())
	assert.False(t, f.Equals(g))
}

func TestParameterBasic(t *testing.T) {
	p, err := NewParameterSpecBuilder(StringType, "name").Build()
	require.NoError(t, err)
	assert.Equal(t, "java.lang.String name", p.String())
}

func TestParameterFinalModifier(t *testing.T) {
	p, err := NewParameterSpecBuilder("int", "count").
		AddModifiers(Final).
		Build()
	require.NoError(t, err)
	assert.Equal(t, "final int count", p.String())
}

func TestParameterVarargs(t *testing.T) {
	p, err := NewParameterSpecBuilder(ArrayOf(StringType), "args").
		Varargs(true).
		Build()
	require.NoError(t, err)
	assert.Equal(t, "java.lang.String... args", p.String())
	assert.True(t, p.IsVarargs())
}

func TestParameterAnnotationInline(t *testing.T) {
	nullable, err := MarkerAnnotation(NewClassName("org.jetbrains.annotations", "Nullable"))
	require.NoError(t, err)

	p, err := NewParameterSpecBuilder(StringType, "name").
		AddAnnotation(nullable).
		Build()
	require.NoError(t, err)
	assert.Equal(t, "@org.jetbrains.annotations.Nullable java.lang.String name", p.String())
}

func TestParameterRejectsBadName(t *testing.T) {
	_, err := NewParameterSpecBuilder("int", "class").Build()
	require.Error(t, err)
}
