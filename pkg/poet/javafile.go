package poet

import (
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// JavaFile pairs a package declaration with one top-level type and the
// file-scoped extras: an optional file comment, indent configuration,
// static imports, and caller-requested additional imports.
//
// Rendering is a two-pass protocol. The first pass emits the type tree
// into a throwaway writer purely to collect every class reference; the
// second pass emits for real against the resolved import table. A
// simple name is claimed first by the file's own declared types, then
// by referenced types in first-seen order; references that lose their
// simple name render fully qualified. No import aliasing is attempted.
type JavaFile struct {
	packageName   string
	typeSpec      *TypeSpec
	fileComment   *CodeBlock
	indent        string
	staticImports map[string][]string // qualified class name -> members
	extraImports  []string            // "pkg.Name" or "pkg.*"
}

// NewJavaFileBuilder starts a source file for the given package and
// top-level type. An empty package name produces a file in the default
// package with no package declaration.
func NewJavaFileBuilder(packageName string, typeSpec *TypeSpec) *JavaFileBuilder {
	return &JavaFileBuilder{
		packageName:   packageName,
		typeSpec:      typeSpec,
		indent:        defaultIndent,
		staticImports: make(map[string][]string),
	}
}

// PackageName returns the file's package.
func (f *JavaFile) PackageName() string { return f.packageName }

// Type returns the file's top-level type declaration.
func (f *JavaFile) Type() *TypeSpec { return f.typeSpec }

// ClassName returns the qualified name the file declares.
func (f *JavaFile) ClassName() *ClassName {
	return NewClassName(f.packageName, f.typeSpec.name)
}

// RelativePath returns the conventional source path for this file:
// package segments as directories plus "TypeName.java".
func (f *JavaFile) RelativePath() string {
	segments := []string{}
	if f.packageName != "" {
		segments = strings.Split(f.packageName, ".")
	}
	segments = append(segments, f.typeSpec.name+".java")
	return filepath.Join(segments...)
}

// Render produces the complete source text. It is deterministic:
// rendering the same file twice yields byte-identical output.
func (f *JavaFile) Render() string {
	collector := newCodeWriter(f.indent, nil)
	f.typeSpec.emit(collector)
	collected := collector.topLevelImports()

	resolved, importLines := f.resolveImports(collected)

	w := newCodeWriter(f.indent, resolved)
	f.emitFileComment(w)
	if f.packageName != "" {
		w.emit("package " + f.packageName + ";\n\n")
	}
	f.emitStaticImports(w)
	for _, line := range importLines {
		w.emit(line + "\n")
	}
	if len(importLines) > 0 {
		w.emit("\n")
	}
	f.typeSpec.emit(w)
	return w.String()
}

// String implements fmt.Stringer as an alias of Render.
func (f *JavaFile) String() string { return f.Render() }

// resolveImports claims simple names and computes the sorted import
// lines. Declared type names win over every reference; afterwards the
// first reference to claim a simple name keeps it.
func (f *JavaFile) resolveImports(collected []*ClassName) (map[string]string, []string) {
	resolved := make(map[string]string)

	var claimDeclared func(t *TypeSpec)
	claimDeclared = func(t *TypeSpec) {
		resolved[t.name] = NewClassName(f.packageName, t.name).QualifiedName()
		for _, nested := range t.types {
			claimDeclared(nested)
		}
	}
	claimDeclared(f.typeSpec)

	wildcards := make(map[string]bool)
	var specifics []*ClassName
	for _, imp := range f.extraImports {
		if strings.HasSuffix(imp, ".*") {
			wildcards[strings.TrimSuffix(imp, ".*")] = true
			continue
		}
		dot := strings.LastIndexByte(imp, '.')
		if dot < 0 {
			continue
		}
		specifics = append(specifics, NewClassName(imp[:dot], imp[dot+1:]))
	}

	var lines []string
	for pkg := range wildcards {
		lines = append(lines, "import "+pkg+".*;")
	}

	claim := func(c *ClassName) bool {
		simple := c.SimpleName()
		if owner, taken := resolved[simple]; taken {
			return owner == c.QualifiedName()
		}
		resolved[simple] = c.QualifiedName()
		return true
	}

	for _, c := range specifics {
		if claim(c) && !wildcards[c.PackageName()] {
			lines = append(lines, "import "+c.QualifiedName()+";")
		}
	}
	for _, c := range collected {
		won := claim(c)
		if !won || wildcards[c.PackageName()] || c.PackageName() == f.packageName {
			continue
		}
		line := "import " + c.QualifiedName() + ";"
		// An explicit specific import may already cover this reference.
		duplicate := false
		for _, existing := range lines {
			if existing == line {
				duplicate = true
				break
			}
		}
		if !duplicate {
			lines = append(lines, line)
		}
	}

	sort.Strings(lines)
	return resolved, lines
}

func (f *JavaFile) emitFileComment(w *codeWriter) {
	if f.fileComment.IsEmpty() {
		return
	}
	text := strings.TrimSuffix(f.fileComment.String(), "\n")
	for _, line := range strings.Split(text, "\n") {
		if line == "" {
			w.emit("//\n")
		} else {
			w.emit("// " + line + "\n")
		}
	}
	w.emit("\n")
}

func (f *JavaFile) emitStaticImports(w *codeWriter) {
	if len(f.staticImports) == 0 {
		return
	}
	var lines []string
	for qualified, members := range f.staticImports {
		for _, member := range members {
			lines = append(lines, "import static "+qualified+"."+member+";")
		}
	}
	sort.Strings(lines)
	for _, line := range lines {
		w.emit(line + "\n")
	}
	w.emit("\n")
}

// WriteTo renders the file and writes the full payload to out.
func (f *JavaFile) WriteTo(out io.Writer) error {
	_, err := io.WriteString(out, f.Render())
	return err
}

// WriteFile renders the file to the given path, creating parent
// directories as needed.
func (f *JavaFile) WriteFile(path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := f.WriteTo(out); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// WriteToDir writes the file under a source root such as src/main/java,
// deriving the relative path from the package and type name. It returns
// the path written.
func (f *JavaFile) WriteToDir(dir string) (string, error) {
	path := filepath.Join(dir, f.RelativePath())
	if err := f.WriteFile(path); err != nil {
		return "", err
	}
	return path, nil
}

// ToBuilder returns a builder seeded with a copy of this file.
func (f *JavaFile) ToBuilder() *JavaFileBuilder {
	b := &JavaFileBuilder{
		packageName:   f.packageName,
		typeSpec:      f.typeSpec,
		fileComment:   f.fileComment,
		indent:        f.indent,
		staticImports: make(map[string][]string, len(f.staticImports)),
	}
	for qualified, members := range f.staticImports {
		b.staticImports[qualified] = append([]string(nil), members...)
	}
	b.extraImports = append(b.extraImports, f.extraImports...)
	return b
}

// JavaFileBuilder assembles a JavaFile.
type JavaFileBuilder struct {
	packageName   string
	typeSpec      *TypeSpec
	fileComment   *CodeBlock
	indent        string
	staticImports map[string][]string
	extraImports  []string
	err           error
}

// AddFileComment sets a comment emitted as "// " lines above the
// package declaration.
func (b *JavaFileBuilder) AddFileComment(format string, args ...interface{}) *JavaFileBuilder {
	if b.err != nil {
		return b
	}
	comment, err := CodeBlockOf(format, args...)
	if err != nil {
		b.err = err
		return b
	}
	b.fileComment = comment
	return b
}

// Indent overrides the two-space default indentation unit.
func (b *JavaFileBuilder) Indent(indent string) *JavaFileBuilder {
	if b.err != nil {
		return b
	}
	b.indent = indent
	return b
}

// AddStaticImport requests "import static Class.member;" lines. The
// class may be a *ClassName or a qualified name string; "*" imports all
// members.
func (b *JavaFileBuilder) AddStaticImport(class interface{}, members ...string) *JavaFileBuilder {
	if b.err != nil {
		return b
	}
	var qualified string
	switch v := class.(type) {
	case *ClassName:
		qualified = v.QualifiedName()
	case string:
		qualified = BestGuess(v).QualifiedName()
	default:
		b.err = structuralErrorf("static import requires a class name, got %T", class)
		return b
	}
	b.staticImports[qualified] = append(b.staticImports[qualified], members...)
	return b
}

// AddImport requests an extra import line: either a specific type such
// as "java.util.List" or a wildcard such as "java.util.*". Wildcards
// suppress specific import lines for their package.
func (b *JavaFileBuilder) AddImport(importName string) *JavaFileBuilder {
	if b.err != nil {
		return b
	}
	b.extraImports = append(b.extraImports, importName)
	return b
}

// Build returns the immutable JavaFile.
func (b *JavaFileBuilder) Build() (*JavaFile, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.typeSpec == nil {
		return nil, structuralErrorf("a source file requires a top-level type")
	}
	f := &JavaFile{
		packageName:   b.packageName,
		typeSpec:      b.typeSpec,
		fileComment:   b.fileComment,
		indent:        b.indent,
		staticImports: make(map[string][]string, len(b.staticImports)),
	}
	for qualified, members := range b.staticImports {
		sorted := append([]string(nil), members...)
		sort.Strings(sorted)
		f.staticImports[qualified] = sorted
	}
	f.extraImports = append(f.extraImports, b.extraImports...)
	return f, nil
}
