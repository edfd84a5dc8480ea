package poet

import (
	"strings"
	"unicode"
)

// javaKeywords holds every Java keyword and reserved literal that cannot
// be used as an identifier for types, fields, parameters, or methods.
var javaKeywords = map[string]bool{
	"abstract": true, "assert": true, "boolean": true, "break": true,
	"byte": true, "case": true, "catch": true, "char": true,
	"class": true, "const": true, "continue": true, "default": true,
	"do": true, "double": true, "else": true, "enum": true,
	"extends": true, "final": true, "finally": true, "float": true,
	"for": true, "goto": true, "if": true, "implements": true,
	"import": true, "instanceof": true, "int": true, "interface": true,
	"long": true, "native": true, "new": true, "package": true,
	"private": true, "protected": true, "public": true, "return": true,
	"short": true, "static": true, "strictfp": true, "super": true,
	"switch": true, "synchronized": true, "this": true, "throw": true,
	"throws": true, "transient": true, "try": true, "void": true,
	"volatile": true, "while": true,
	// Reserved literals
	"true": true, "false": true, "null": true,
}

// IsJavaKeyword reports whether s is a Java keyword or reserved literal.
func IsJavaKeyword(s string) bool {
	return javaKeywords[s]
}

// IsValidIdentifier reports whether s is a legal Java identifier: it must
// match Java identifier syntax and must not be a keyword or reserved
// literal.
func IsValidIdentifier(s string) bool {
	if s == "" || javaKeywords[s] {
		return false
	}
	for i, r := range s {
		if i == 0 {
			if !unicode.IsLetter(r) && r != '_' && r != '$' {
				return false
			}
			continue
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' && r != '$' {
			return false
		}
	}
	return true
}

func checkIdentifier(s string) error {
	if !IsValidIdentifier(s) {
		return identifierError(s)
	}
	return nil
}

// BestGuess splits a fully qualified dotted name into a package prefix and
// a class-name suffix by scanning left to right: the first segment that
// begins with an uppercase ASCII letter starts the class path, and every
// segment before it belongs to the package.
//
// The heuristic is best-effort. Packages with uppercase-led segments are
// misclassified as class names; callers that know the real split should
// use NewClassName instead.
func BestGuess(fqcn string) *ClassName {
	if !strings.Contains(fqcn, ".") {
		return NewClassName("", fqcn)
	}

	parts := strings.Split(fqcn, ".")
	var packageParts, classParts []string
	for _, part := range parts {
		if len(classParts) > 0 || (part != "" && part[0] >= 'A' && part[0] <= 'Z') {
			classParts = append(classParts, part)
		} else {
			packageParts = append(packageParts, part)
		}
	}

	if len(classParts) == 0 {
		// Every segment looked like a package; treat the last one as the class.
		classParts = packageParts[len(packageParts)-1:]
		packageParts = packageParts[:len(packageParts)-1]
	}

	return NewClassName(strings.Join(packageParts, "."), classParts...)
}
