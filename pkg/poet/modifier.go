package poet

import "sort"

// Modifier represents a Java declaration modifier.
type Modifier int

const (
	Public Modifier = iota
	Protected
	Private
	Abstract
	Static
	Final
	Transient
	Volatile
	Synchronized
	Native
	Strictfp
	Sealed
	NonSealed
	Default
)

// modifierNames is indexed by Modifier and doubles as the canonical
// rendering order: visibility first, then abstract, static, final,
// transient, volatile, synchronized, native, strictfp, sealed,
// non-sealed, default. Rendered order never depends on the order
// modifiers were added in.
var modifierNames = []string{
	"public", "protected", "private",
	"abstract", "static", "final",
	"transient", "volatile",
	"synchronized", "native", "strictfp",
	"sealed", "non-sealed", "default",
}

// String returns the Java source form of the modifier.
func (m Modifier) String() string {
	if m < 0 || int(m) >= len(modifierNames) {
		return "unknown"
	}
	return modifierNames[m]
}

// modifierSet is the builder-side staging container for modifiers.
type modifierSet map[Modifier]bool

func (s modifierSet) add(mods ...Modifier) {
	for _, m := range mods {
		s[m] = true
	}
}

// sorted returns the modifiers in canonical order.
func (s modifierSet) sorted() []Modifier {
	out := make([]Modifier, 0, len(s))
	for m := range s {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func checkMethodModifiers(s modifierSet) error {
	if s[Abstract] && s[Final] {
		return modifierErrorf("method cannot be both abstract and final")
	}
	if s[Abstract] && s[Private] {
		return modifierErrorf("method cannot be both abstract and private")
	}
	if s[Abstract] && s[Static] {
		return modifierErrorf("method cannot be both abstract and static")
	}
	return nil
}

func checkFieldModifiers(s modifierSet) error {
	if s[Final] && s[Volatile] {
		return modifierErrorf("field cannot be both final and volatile")
	}
	return nil
}

func checkTypeModifiers(s modifierSet) error {
	if s[Abstract] && s[Final] {
		return modifierErrorf("class cannot be both abstract and final")
	}
	if s[Sealed] && s[Final] {
		return modifierErrorf("class cannot be both sealed and final")
	}
	return nil
}

// emitModifiers writes the modifiers in canonical order, each followed by
// a single space.
func emitModifiers(w *codeWriter, mods []Modifier) {
	for _, m := range mods {
		w.emit(m.String())
		w.emit(" ")
	}
}
