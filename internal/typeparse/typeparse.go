// Package typeparse parses Java type literals such as
// "java.util.Map<String, ? extends Number>[]" into a small AST that the
// poet package converts into type references. The grammar covers dotted
// names, generic argument lists, nested wildcards, and array dimensions;
// it performs no semantic analysis.
package typeparse

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Type is the root of a parsed type literal: either a wildcard or a
// (possibly generic, possibly array) type reference.
type Type struct {
	Wildcard *Wildcard `parser:"  @@"`
	Ref      *Ref      `parser:"| @@"`
}

// Wildcard represents "?" with optional extends/super bounds joined by '&'.
type Wildcard struct {
	Mark   string  `parser:"@Question"`
	Kind   string  `parser:"( @('extends' | 'super')"`
	Bounds []*Type `parser:"  @@ ( '&' @@ )* )?"`
}

// Ref represents a dotted name with optional type arguments and array
// dimensions, e.g. "java.util.List<String>[][]".
type Ref struct {
	Segments []string `parser:"@Ident ( '.' @Ident )*"`
	Args     []*Type  `parser:"( '<' @@ ( ',' @@ )* '>' )?"`
	Dims     []string `parser:"@Brackets*"`
}

var typeLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Ident", Pattern: `[a-zA-Z_$][a-zA-Z0-9_$]*`},
	{Name: "Brackets", Pattern: `\[\s*\]`},
	{Name: "Question", Pattern: `\?`},
	{Name: "Punct", Pattern: `[<>,.&]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var parser = participle.MustBuild[Type](
	participle.Lexer(typeLexer),
	participle.Elide("Whitespace"),
	participle.UseLookahead(2),
)

// Parse parses a Java type literal. Parse errors identify the offending
// token and position.
func Parse(input string) (*Type, error) {
	return parser.ParseString("", input)
}
