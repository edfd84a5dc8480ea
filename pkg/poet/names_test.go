package poet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidIdentifier(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"simple", "foo", true},
		{"camel case", "fooBar", true},
		{"underscore start", "_foo", true},
		{"dollar start", "$foo", true},
		{"digits after first", "foo123", true},
		{"unicode letter", "fooÉ", true},
		{"empty", "", false},
		{"digit start", "1foo", false},
		{"contains dash", "foo-bar", false},
		{"contains space", "foo bar", false},
		{"keyword class", "class", false},
		{"keyword int", "int", false},
		{"reserved literal true", "true", false},
		{"reserved literal null", "null", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidIdentifier(tt.input))
		})
	}
}

func TestIsJavaKeyword(t *testing.T) {
	assert.True(t, IsJavaKeyword("synchronized"))
	assert.True(t, IsJavaKeyword("false"))
	assert.False(t, IsJavaKeyword("sealed")) // contextual keyword, legal identifier
	assert.False(t, IsJavaKeyword("String"))
}

func TestBestGuess(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantPackage string
		wantNames   []string
	}{
		{"plain simple name", "Foo", "", []string{"Foo"}},
		{"standard class", "java.util.Map", "java.util", []string{"Map"}},
		{"nested class", "java.util.Map.Entry", "java.util", []string{"Map", "Entry"}},
		{"deeply nested", "com.example.Outer.Middle.Inner", "com.example", []string{"Outer", "Middle", "Inner"}},
		{"all lowercase falls back to last segment", "com.example.service", "com.example", []string{"service"}},
		{"lowercase simple name", "foo", "", []string{"foo"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BestGuess(tt.input)
			assert.Equal(t, tt.wantPackage, got.PackageName())
			assert.Equal(t, tt.wantNames, got.SimpleNames())
		})
	}
}
