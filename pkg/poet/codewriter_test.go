package poet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeWriterIndentsLineStarts(t *testing.T) {
	w := newCodeWriter("  ", nil)
	w.emit("first\n")
	w.indentMore()
	w.emit("second\nthird\n")
	w.indentLess()
	w.emit("fourth\n")

	assert.Equal(t, "first\n  second\n  third\nfourth\n", w.String())
}

func TestCodeWriterBlankLinesCarryNoIndent(t *testing.T) {
	w := newCodeWriter("    ", nil)
	w.indentMore()
	w.emit("a\n\nb\n")

	assert.Equal(t, "    a\n\n    b\n", w.String())
}

func TestCodeWriterPartialLines(t *testing.T) {
	w := newCodeWriter("  ", nil)
	w.indentMore()
	w.emit("int x = ")
	w.emit("1;")
	w.emit("\n")

	// The indent is written once, at the first text on the line.
	assert.Equal(t, "  int x = 1;\n", w.String())
}

func TestCodeWriterIndentFloorsAtZero(t *testing.T) {
	w := newCodeWriter("  ", nil)
	w.indentLess()
	w.indentLess()
	w.emit("x\n")
	assert.Equal(t, "x\n", w.String())
}

func TestCodeWriterControlFlow(t *testing.T) {
	w := newCodeWriter("  ", nil)
	w.beginControlFlow("if (ok)")
	w.emit("run();\n")
	w.nextControlFlow("else")
	w.emit("stop();\n")
	w.endControlFlow()

	expected := "if (ok) {\n" +
		"  run();\n" +
		"} else {\n" +
		"  stop();\n" +
		"}\n"
	assert.Equal(t, expected, w.String())
}

func TestCodeWriterEmitClassNameUnresolved(t *testing.T) {
	w := newCodeWriter("  ", nil)
	w.emitClassName(NewClassName("java.util", "List"))
	assert.Equal(t, "java.util.List", w.String())
}

func TestCodeWriterEmitClassNameResolved(t *testing.T) {
	resolved := map[string]string{"List": "java.util.List"}
	w := newCodeWriter("  ", resolved)
	w.emitClassName(NewClassName("java.util", "List"))
	assert.Equal(t, "List", w.String())
}

func TestCodeWriterEmitClassNameResolutionConflict(t *testing.T) {
	// "List" is owned by java.util.List, so java.awt.List must stay
	// fully qualified.
	resolved := map[string]string{"List": "java.util.List"}
	w := newCodeWriter("  ", resolved)
	w.emitClassName(NewClassName("java.awt", "List"))
	assert.Equal(t, "java.awt.List", w.String())
}

func TestCodeWriterNestedClassRendersChain(t *testing.T) {
	entry := NewClassName("java.util", "Map", "Entry")

	w := newCodeWriter("  ", map[string]string{"Map": "java.util.Map"})
	w.emitClassName(entry)
	assert.Equal(t, "Map.Entry", w.String())

	w = newCodeWriter("  ", nil)
	w.emitClassName(entry)
	assert.Equal(t, "java.util.Map.Entry", w.String())
}

func TestCodeWriterImportCollection(t *testing.T) {
	w := newCodeWriter("  ", nil)
	w.emitClassName(NewClassName("java.util", "List"))
	w.emitClassName(NewClassName("java.io", "File"))
	w.emitClassName(NewClassName("java.util", "List"))
	w.emitClassName(NewClassName("java.util", "Map", "Entry"))

	imports := w.topLevelImports()
	var got []string
	for _, c := range imports {
		got = append(got, c.QualifiedName())
	}
	// First-seen order, deduplicated, nested names recorded at top level.
	assert.Equal(t, []string{"java.util.List", "java.io.File", "java.util.Map"}, got)
}

func TestCodeWriterSkipsJavaLangSingletons(t *testing.T) {
	w := newCodeWriter("  ", nil)
	w.emitClassName(StringType)
	w.emitClassName(Object)
	w.emitClassName(IntType)
	assert.Empty(t, w.topLevelImports())

	// An explicitly constructed java.lang name is collected; only the
	// pre-registered singletons are exempt.
	w.emitClassName(NewClassName("java.lang", "System"))
	assert.Len(t, w.topLevelImports(), 1)
}

func TestCodeWriterJavaLangSingletonsRenderShortInFiles(t *testing.T) {
	// A non-nil resolution context means we are rendering a file, where
	// java.lang is implicitly in scope.
	w := newCodeWriter("  ", map[string]string{})
	w.emitClassName(StringType)
	assert.Equal(t, "String", w.String())

	// A competing owner of the simple name forces qualification.
	w = newCodeWriter("  ", map[string]string{"String": "com.example.String"})
	w.emitClassName(StringType)
	assert.Equal(t, "java.lang.String", w.String())

	// Canonical rendering stays fully qualified.
	w = newCodeWriter("  ", nil)
	w.emitClassName(StringType)
	assert.Equal(t, "java.lang.String", w.String())
}

func TestCodeWriterImportsByPackage(t *testing.T) {
	w := newCodeWriter("  ", nil)
	w.emitClassName(NewClassName("java.util", "List"))
	w.emitClassName(NewClassName("java.util", "Map"))
	w.emitClassName(NewClassName("java.io", "File"))

	byPkg := w.importsByPackage()
	assert.Equal(t, map[string]map[string]bool{
		"java.util": {"List": true, "Map": true},
		"java.io":   {"File": true},
	}, byPkg)
}

func TestCodeWriterEmitJavadoc(t *testing.T) {
	doc, err := CodeBlockOf("Returns the widget count.\n\nNever negative.\n")
	assert.NoError(t, err)

	w := newCodeWriter("  ", nil)
	w.indentMore()
	w.emitJavadoc(doc)

	expected := "  /**\n" +
		"   * Returns the widget count.\n" +
		"   *\n" +
		"   * Never negative.\n" +
		"   */\n"
	assert.Equal(t, expected, w.String())
}

func TestCodeWriterEmitJavadocCollectsImports(t *testing.T) {
	doc, err := CodeBlockOf("See $T.\n", NewClassName("java.util", "List"))
	assert.NoError(t, err)

	w := newCodeWriter("  ", nil)
	w.emitJavadoc(doc)
	assert.Len(t, w.topLevelImports(), 1)
	assert.Equal(t, "java.util.List", w.topLevelImports()[0].QualifiedName())
}
