package poet

import (
	"fmt"
	"strconv"
	"strings"
)

// Nameable is the capability interface consulted by the $N placeholder.
// FieldSpec, ParameterSpec, MethodSpec, TypeSpec, and TypeVariableName
// implement it; other arguments fall back to their default textual form.
type Nameable interface {
	Name() string
}

// CodeBlock is a parsed fragment of Java code: literal text interleaved
// with typed placeholders, bound to argument values.
//
// Placeholders:
//
//	$L  literal          (CodeBlocks nest, types qualify, rest stringify)
//	$S  string literal   (escaped and double-quoted)
//	$T  type             (routes through import collection)
//	$N  name             (Nameable arguments contribute their name)
//	$$  a literal '$'
//	$>  indent by one level
//	$<  unindent by one level
//	$[  begin statement, $] end statement (markers, no textual output)
//
// A placeholder may carry a 1-based index ($1T) to reuse an argument at
// several sites, or — with AddNamed — a lowercase symbolic name
// ($name:T) bound through a map. Every malformed format string is
// rejected when it is added, never at render time.
//
// CodeBlocks are immutable; use NewCodeBlockBuilder or CodeBlockOf.
type CodeBlock struct {
	formatParts []string
	args        []interface{}
}

// CodeBlockOf parses a format string with positional or indexed
// arguments into a CodeBlock.
func CodeBlockOf(format string, args ...interface{}) (*CodeBlock, error) {
	return NewCodeBlockBuilder().Add(format, args...).Build()
}

// IsEmpty reports whether the block produces no output at all.
func (c *CodeBlock) IsEmpty() bool {
	if c == nil {
		return true
	}
	for _, part := range c.formatParts {
		if part != "" {
			return false
		}
	}
	return true
}

// String returns the canonical rendering of the block: types print fully
// qualified, since no file import context exists.
func (c *CodeBlock) String() string {
	w := newCodeWriter(defaultIndent, nil)
	c.emit(w)
	return w.String()
}

// Equals compares two blocks by rendered form.
func (c *CodeBlock) Equals(other *CodeBlock) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.String() == other.String()
}

// ToBuilder returns a builder seeded with a copy of this block's state.
func (c *CodeBlock) ToBuilder() *CodeBlockBuilder {
	b := NewCodeBlockBuilder()
	b.formatParts = append(b.formatParts, c.formatParts...)
	b.args = append(b.args, c.args...)
	return b
}

func (c *CodeBlock) emit(w *codeWriter) {
	if c == nil {
		return
	}
	argIndex := 0
	for _, part := range c.formatParts {
		if len(part) == 2 && part[0] == '$' {
			switch part[1] {
			case 'L':
				emitLiteral(w, c.args[argIndex])
				argIndex++
				continue
			case 'S':
				emitStringLiteral(w, c.args[argIndex])
				argIndex++
				continue
			case 'T':
				c.args[argIndex].(TypeName).emit(w)
				argIndex++
				continue
			case 'N':
				w.emit(nameOf(c.args[argIndex]))
				argIndex++
				continue
			case '$':
				w.emit("$")
				continue
			case '>':
				w.indentMore()
				continue
			case '<':
				w.indentLess()
				continue
			case '[', ']':
				// Statement boundary markers carry no text.
				continue
			}
		}
		w.emit(part)
	}
}

func emitLiteral(w *codeWriter, arg interface{}) {
	switch v := arg.(type) {
	case *CodeBlock:
		v.emit(w)
	case *AnnotationSpec:
		v.emit(w)
	case *TypeSpec:
		v.emit(w)
	case TypeName:
		v.emit(w)
	default:
		w.emit(literalString(arg))
	}
}

func emitStringLiteral(w *codeWriter, arg interface{}) {
	if arg == nil {
		w.emit("null")
		return
	}
	// Backslashes first, then quotes, so escapes are not double-escaped.
	escaped := strings.ReplaceAll(literalString(arg), `\`, `\\`)
	escaped = strings.ReplaceAll(escaped, `"`, `\"`)
	w.emit(`"` + escaped + `"`)
}

func literalString(arg interface{}) string {
	switch v := arg.(type) {
	case nil:
		return "null"
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

func nameOf(arg interface{}) string {
	switch v := arg.(type) {
	case Nameable:
		return v.Name()
	case string:
		return v
	default:
		return literalString(arg)
	}
}

// Join concatenates blocks with a separator between consecutive blocks.
func Join(blocks []*CodeBlock, separator string) *CodeBlock {
	return JoinPrefixed(blocks, separator, "", "")
}

// JoinPrefixed concatenates blocks with a separator, wrapped in a prefix
// and suffix. Boundaries never grow extra separators. Separator, prefix,
// and suffix are plain text: dollars in them are escaped, never treated
// as placeholders.
func JoinPrefixed(blocks []*CodeBlock, separator, prefix, suffix string) *CodeBlock {
	out := &CodeBlock{}
	out.formatParts = appendTextParts(out.formatParts, prefix)
	for i, block := range blocks {
		if i > 0 {
			out.formatParts = appendTextParts(out.formatParts, separator)
		}
		out.formatParts = append(out.formatParts, "$L")
		out.args = append(out.args, block)
	}
	out.formatParts = appendTextParts(out.formatParts, suffix)
	return out
}

// appendTextParts appends text as literal format parts, turning each
// dollar into an escaped $$ part so emit never reads it as a placeholder.
func appendTextParts(parts []string, text string) []string {
	for {
		i := strings.IndexByte(text, '$')
		if i < 0 {
			break
		}
		if i > 0 {
			parts = append(parts, text[:i])
		}
		parts = append(parts, "$$")
		text = text[i+1:]
	}
	if text != "" {
		parts = append(parts, text)
	}
	return parts
}

// CodeBlockBuilder assembles a CodeBlock. The first malformed call
// latches an error that Build returns; later calls become no-ops, so a
// fluent chain stays safe.
type CodeBlockBuilder struct {
	formatParts []string
	args        []interface{}
	err         error
}

// NewCodeBlockBuilder creates an empty builder.
func NewCodeBlockBuilder() *CodeBlockBuilder {
	return &CodeBlockBuilder{}
}

// IsEmpty reports whether nothing has been added yet.
func (b *CodeBlockBuilder) IsEmpty() bool {
	for _, part := range b.formatParts {
		if part != "" {
			return false
		}
	}
	return true
}

// Clear discards everything added so far, keeping the builder reusable.
func (b *CodeBlockBuilder) Clear() *CodeBlockBuilder {
	b.formatParts = nil
	b.args = nil
	return b
}

// Add parses a format string with positional or indexed arguments.
// Placeholders without an index consume arguments left to right; an
// explicit index such as $1T reuses argument one without advancing the
// cursor. Indexed and positional placeholders cannot be mixed.
func (b *CodeBlockBuilder) Add(format string, args ...interface{}) *CodeBlockBuilder {
	if b.err != nil {
		return b
	}

	var hasRelative, hasIndexed bool
	relativeCount := 0
	indexedCount := make([]int, len(args))

	for p := 0; p < len(format); {
		if format[p] != '$' {
			next := strings.IndexByte(format[p:], '$')
			if next < 0 {
				next = len(format)
			} else {
				next += p
			}
			b.formatParts = append(b.formatParts, format[p:next])
			p = next
			continue
		}

		p++ // consume '$'
		indexStart := p
		for p < len(format) && format[p] >= '0' && format[p] <= '9' {
			p++
		}
		if p >= len(format) {
			b.err = formatErrorf("dangling format characters in '%s'", format)
			return b
		}
		indexEnd := p
		c := format[p]
		p++

		if isNoArgPlaceholder(c) {
			if indexStart < indexEnd {
				b.err = formatErrorf("$$, $>, $<, $[, $] may not have an index")
				return b
			}
			b.formatParts = append(b.formatParts, "$"+string(c))
			continue
		}

		var index int
		if indexStart < indexEnd {
			n, _ := strconv.Atoi(format[indexStart:indexEnd])
			index = n - 1
			hasIndexed = true
			if len(args) > 0 {
				indexedCount[((index%len(args))+len(args))%len(args)]++
			}
		} else {
			index = relativeCount
			hasRelative = true
			relativeCount++
		}

		if index < 0 || index >= len(args) {
			b.err = formatErrorf("index %d for '$%c' not in range (received %d arguments)",
				index+1, c, len(args))
			return b
		}
		if hasIndexed && hasRelative {
			b.err = formatErrorf("cannot mix indexed and positional parameters")
			return b
		}

		if err := b.addArgument(format, c, args[index]); err != nil {
			b.err = err
			return b
		}
		b.formatParts = append(b.formatParts, "$"+string(c))
	}

	if !hasIndexed && relativeCount < len(args) {
		b.err = formatErrorf("unused arguments: expected %d, received %d",
			relativeCount, len(args))
		return b
	}
	if hasIndexed {
		var unused []string
		for i := range args {
			if indexedCount[i] == 0 {
				unused = append(unused, "$"+strconv.Itoa(i+1))
			}
		}
		if len(unused) > 0 {
			noun := "argument"
			if len(unused) > 1 {
				noun = "arguments"
			}
			b.err = formatErrorf("unused %s: %s", noun, strings.Join(unused, ", "))
			return b
		}
	}
	return b
}

// AddNamed parses a format string whose placeholders reference entries of
// a name→value map, e.g. "$pipe:T.out.println($text:S)". Names must
// start with a lowercase character. A name may be referenced any number
// of times; referencing an absent name is an immediate error.
func (b *CodeBlockBuilder) AddNamed(format string, args map[string]interface{}) *CodeBlockBuilder {
	if b.err != nil {
		return b
	}

	for p := 0; p < len(format); {
		if format[p] != '$' {
			next := strings.IndexByte(format[p:], '$')
			if next < 0 {
				next = len(format)
			} else {
				next += p
			}
			b.formatParts = append(b.formatParts, format[p:next])
			p = next
			continue
		}

		p++ // consume '$'
		if p >= len(format) {
			b.err = formatErrorf("dangling $ at end of format string '%s'", format)
			return b
		}
		if isNoArgPlaceholder(format[p]) {
			b.formatParts = append(b.formatParts, "$"+string(format[p]))
			p++
			continue
		}

		nameStart := p
		for p < len(format) && isNameChar(format[p]) {
			p++
		}
		name := format[nameStart:p]
		if name == "" || p >= len(format) || format[p] != ':' || p+1 >= len(format) {
			b.err = formatErrorf("invalid format string: '%s'", format)
			return b
		}
		typeChar := format[p+1]
		p += 2

		if name[0] < 'a' || name[0] > 'z' {
			b.err = formatErrorf("argument '%s' must start with a lowercase character", name)
			return b
		}
		value, ok := args[name]
		if !ok {
			b.err = formatErrorf("Missing named argument for $%s", name)
			return b
		}
		if err := b.addArgument(format, typeChar, value); err != nil {
			b.err = err
			return b
		}
		b.formatParts = append(b.formatParts, "$"+string(typeChar))
	}
	return b
}

// addArgument validates the placeholder letter and stages the argument,
// converting $T arguments to TypeNames so bad types fail at build time.
func (b *CodeBlockBuilder) addArgument(format string, c byte, arg interface{}) error {
	switch c {
	case 'L', 'S', 'N':
		b.args = append(b.args, arg)
		return nil
	case 'T':
		t, err := TypeOf(arg)
		if err != nil {
			return formatErrorf("expected type for '$T' but was %T (%v)", arg, err)
		}
		b.args = append(b.args, t)
		return nil
	default:
		return formatErrorf("invalid format string: '%s'", format)
	}
}

// Indent raises the indent level for subsequent lines.
func (b *CodeBlockBuilder) Indent() *CodeBlockBuilder {
	b.Add("$>")
	return b
}

// Unindent lowers the indent level for subsequent lines.
func (b *CodeBlockBuilder) Unindent() *CodeBlockBuilder {
	b.Add("$<")
	return b
}

// AddStatement adds a formatted statement terminated by ";\n".
func (b *CodeBlockBuilder) AddStatement(format string, args ...interface{}) *CodeBlockBuilder {
	b.Add(format, args...)
	b.Add(";\n")
	return b
}

// BeginControlFlow opens a brace-delimited block, e.g. "if ($L)".
func (b *CodeBlockBuilder) BeginControlFlow(controlFlow string, args ...interface{}) *CodeBlockBuilder {
	b.Add(controlFlow, args...)
	b.Add(" {\n$>")
	return b
}

// NextControlFlow chains a block, e.g. "else if ($L)".
func (b *CodeBlockBuilder) NextControlFlow(controlFlow string, args ...interface{}) *CodeBlockBuilder {
	b.Add("$<} ")
	b.Add(controlFlow, args...)
	b.Add(" {\n$>")
	return b
}

// EndControlFlow closes the current block.
func (b *CodeBlockBuilder) EndControlFlow() *CodeBlockBuilder {
	b.Add("$<}\n")
	return b
}

// Build returns the immutable CodeBlock, or the first error any earlier
// call latched.
func (b *CodeBlockBuilder) Build() (*CodeBlock, error) {
	if b.err != nil {
		return nil, b.err
	}
	depth := 0
	for _, part := range b.formatParts {
		switch part {
		case "$[":
			depth++
		case "$]":
			depth--
			if depth < 0 {
				return nil, formatErrorf("statement exit $] has no matching statement enter $[")
			}
		}
	}
	if depth > 0 {
		return nil, formatErrorf("statement enter $[ has no matching statement exit $]")
	}
	block := &CodeBlock{
		formatParts: make([]string, len(b.formatParts)),
		args:        make([]interface{}, len(b.args)),
	}
	copy(block.formatParts, b.formatParts)
	copy(block.args, b.args)
	return block, nil
}

func isNoArgPlaceholder(c byte) bool {
	return c == '$' || c == '>' || c == '<' || c == '[' || c == ']'
}

func isNameChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9' || c == '_'
}
