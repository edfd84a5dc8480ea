package poet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModifierString(t *testing.T) {
	assert.Equal(t, "public", Public.String())
	assert.Equal(t, "non-sealed", NonSealed.String())
	assert.Equal(t, "strictfp", Strictfp.String())
	assert.Equal(t, "unknown", Modifier(99).String())
}

// Rendered modifier order must match the canonical order no matter what
// order modifiers were added in.
func TestModifierOrderingInvariant(t *testing.T) {
	insertionOrders := [][]Modifier{
		{Static, Public, Final},
		{Final, Static, Public},
		{Public, Final, Static},
	}

	for _, order := range insertionOrders {
		field, err := NewFieldSpecBuilder("int", "value").
			AddModifiers(order...).
			Build()
		require.NoError(t, err)
		assert.Equal(t, "public static final int value;\n", field.String())
	}
}

func TestModifierOrderingFullSet(t *testing.T) {
	set := make(modifierSet)
	set.add(Default, NonSealed, Sealed, Strictfp, Native, Synchronized,
		Volatile, Transient, Final, Static, Abstract, Private, Protected, Public)

	sorted := set.sorted()
	want := []Modifier{Public, Protected, Private, Abstract, Static, Final,
		Transient, Volatile, Synchronized, Native, Strictfp, Sealed, NonSealed, Default}
	assert.Equal(t, want, sorted)
}

func TestIllegalMethodModifierCombinations(t *testing.T) {
	tests := []struct {
		name string
		mods []Modifier
		want string
	}{
		{"abstract final", []Modifier{Abstract, Final}, "abstract and final"},
		{"abstract private", []Modifier{Abstract, Private}, "abstract and private"},
		{"abstract static", []Modifier{Abstract, Static}, "abstract and static"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewMethodSpecBuilder("broken").AddModifiers(tt.mods...).Build()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestIllegalFieldModifierCombination(t *testing.T) {
	_, err := NewFieldSpecBuilder("int", "x").AddModifiers(Final, Volatile).Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "final and volatile")
}

func TestIllegalTypeModifierCombinations(t *testing.T) {
	_, err := NewClassBuilder("Broken").AddModifiers(Abstract, Final).Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "abstract and final")

	_, err = NewClassBuilder("Broken").AddModifiers(Sealed, Final).Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sealed and final")
}
