package poet

import (
	"strings"
)

// defaultIndent is the indentation unit used when none is configured.
const defaultIndent = "  "

// codeWriter is the stateful emission sink. It accumulates text, tracks
// the indent level and a line-start flag, and records every imported
// class reference it prints. A fresh writer is created per render pass;
// writers are never shared or reused, so rendering immutable descriptor
// trees is safe from any number of goroutines.
type codeWriter struct {
	out         strings.Builder
	indent      string
	indentLevel int
	lineStart   bool

	// resolved maps a top-level simple name to the qualified name that
	// owns it in the file being rendered. References matching their
	// entry print short; everything else prints fully qualified. A nil
	// map produces canonical (fully qualified) output.
	resolved map[string]string

	// Import collection: first-seen order with canonical-name dedup.
	// The import set is the only cross-descriptor mutable state in a
	// render; it is written by emitClassName and read by file assembly
	// after a full tree walk.
	importOrder []*ClassName
	importSeen  map[string]bool
}

func newCodeWriter(indent string, resolved map[string]string) *codeWriter {
	if indent == "" {
		indent = defaultIndent
	}
	return &codeWriter{
		indent:     indent,
		lineStart:  true,
		resolved:   resolved,
		importSeen: make(map[string]bool),
	}
}

// emit appends text, inserting the indent prefix at the start of every
// non-empty line. Blank lines are never indented, so output carries no
// trailing whitespace.
func (w *codeWriter) emit(s string) *codeWriter {
	for s != "" {
		nl := strings.IndexByte(s, '\n')
		if nl == 0 {
			w.out.WriteByte('\n')
			w.lineStart = true
			s = s[1:]
			continue
		}

		var line string
		if nl < 0 {
			line, s = s, ""
		} else {
			line, s = s[:nl], s[nl:]
		}
		if w.lineStart {
			for i := 0; i < w.indentLevel; i++ {
				w.out.WriteString(w.indent)
			}
			w.lineStart = false
		}
		w.out.WriteString(line)
	}
	return w
}

func (w *codeWriter) indentMore() { w.indentLevel++ }

// indentLess floors at zero; the level never goes negative.
func (w *codeWriter) indentLess() {
	if w.indentLevel > 0 {
		w.indentLevel--
	}
}

func (w *codeWriter) beginControlFlow(controlFlow string) *codeWriter {
	w.emit(controlFlow)
	w.emit(" {\n")
	w.indentMore()
	return w
}

func (w *codeWriter) nextControlFlow(controlFlow string) *codeWriter {
	w.indentLess()
	w.emit("} ")
	w.emit(controlFlow)
	w.emit(" {\n")
	w.indentMore()
	return w
}

func (w *codeWriter) endControlFlow() *codeWriter {
	w.indentLess()
	w.emit("}\n")
	return w
}

// emitClassName is the single chokepoint for printing class references.
// It records the reference for import resolution and prints either the
// short nesting chain (when the file's resolved imports claim this
// type's top-level simple name) or the fully qualified form.
func (w *codeWriter) emitClassName(c *ClassName) {
	w.recordImport(c)

	short := strings.Join(c.names, ".")
	if c.packageName == "" {
		w.emit(short)
		return
	}
	top := c.TopLevel()
	if owner, ok := w.resolved[top.SimpleName()]; ok {
		if owner == top.QualifiedName() {
			w.emit(short)
			return
		}
	} else if c.skipImport && w.resolved != nil {
		// The java.lang singletons are implicitly in scope: they render
		// short unless a declared or imported type claims their simple
		// name. With no resolution context (canonical form) they stay
		// fully qualified.
		w.emit(short)
		return
	}
	w.emit(c.packageName + "." + short)
}

func (w *codeWriter) recordImport(c *ClassName) {
	if c.skipImport || c.packageName == "" {
		return
	}
	top := c.TopLevel()
	key := top.QualifiedName()
	if w.importSeen[key] {
		return
	}
	w.importSeen[key] = true
	w.importOrder = append(w.importOrder, top)
}

// topLevelImports returns the recorded class references in first-seen
// order. File assembly groups them by package and applies the conflict
// policy.
func (w *codeWriter) topLevelImports() []*ClassName {
	out := make([]*ClassName, len(w.importOrder))
	copy(out, w.importOrder)
	return out
}

// importsByPackage groups the recorded references into a package name to
// simple-name set mapping.
func (w *codeWriter) importsByPackage() map[string]map[string]bool {
	result := make(map[string]map[string]bool)
	for _, c := range w.importOrder {
		names := result[c.packageName]
		if names == nil {
			names = make(map[string]bool)
			result[c.packageName] = names
		}
		names[c.SimpleName()] = true
	}
	return result
}

// emitJavadoc renders a doc block as a /** ... */ comment. The block is
// rendered through a sub-writer sharing this writer's resolution context
// so type references inside doc text still qualify correctly; imports it
// records are replayed into this writer.
func (w *codeWriter) emitJavadoc(doc *CodeBlock) {
	if doc.IsEmpty() {
		return
	}
	sub := newCodeWriter(w.indent, w.resolved)
	doc.emit(sub)
	for _, c := range sub.importOrder {
		w.recordImport(c)
	}

	text := strings.TrimSuffix(sub.String(), "\n")
	w.emit("/**\n")
	for _, line := range strings.Split(text, "\n") {
		if line == "" {
			w.emit(" *\n")
		} else {
			w.emit(" * " + line + "\n")
		}
	}
	w.emit(" */\n")
}

func (w *codeWriter) String() string { return w.out.String() }
