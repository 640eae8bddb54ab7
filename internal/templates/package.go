package templates

import (
	"fmt"
	"strings"
	"unicode"

	oerrors "github.com/gradle-util/gur/internal/errors"
)

// Java reserved words.
var javaKeywords = keywordSet(
	"abstract", "continue", "for", "new", "switch", "assert", "default", "goto", "package",
	"synchronized", "boolean", "do", "if", "private", "this", "break", "double", "implements",
	"protected", "throw", "byte", "else", "import", "public", "throws", "case", "enum",
	"instanceof", "return", "transient", "catch", "extends", "int", "short", "try", "char",
	"final", "interface", "static", "void", "class", "finally", "long", "strictfp", "volatile",
	"const", "float", "native", "super", "while",
)

// Kotlin hard keywords.
var kotlinKeywords = keywordSet(
	"as", "break", "class", "continue", "do", "else", "false", "for", "fun", "if", "in",
	"interface", "is", "null", "object", "package", "return", "super", "this", "throw", "true",
	"try", "typealias", "typeof", "val", "var", "when", "while",
)

func keywordSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// IsReservedWord reports whether word is a Java keyword or a Kotlin hard keyword.
func IsReservedWord(word string) bool {
	_, java := javaKeywords[word]
	_, kotlin := kotlinKeywords[word]
	return java || kotlin
}

// DefaultPackage derives a root package from group and artifact:
// group segments followed by the artifact, each turned into a legal
// package segment by FixPackageSegment.
func DefaultPackage(group, artifact string) (string, error) {
	segments := append(strings.Split(group, "."), artifact)
	fixed := make([]string, 0, len(segments))
	for _, s := range segments {
		f, err := FixPackageSegment(s)
		if err != nil {
			return "", err
		}
		fixed = append(fixed, f)
	}
	return strings.Join(fixed, "."), nil
}

// FixPackageSegment makes one package segment legal. Letters are
// lowercased, '-' becomes '_' and a leading digit gets an underscore prefix;
// a result that is a reserved word then gets a trailing underscore. Any other
// character cannot be fixed.
func FixPackageSegment(segment string) (string, error) {
	if segment == "" {
		return "", packageError("empty item found")
	}

	var b strings.Builder
	b.Grow(len(segment) + 1)
	for i, r := range segment {
		switch {
		case unicode.IsDigit(r):
			if i == 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r)
		case unicode.IsLetter(r):
			b.WriteRune(unicode.ToLower(r))
		case r == '-':
			b.WriteByte('_')
		default:
			return "", packageError(fmt.Sprintf("invalid char `%c` found", r))
		}
	}

	fixed := b.String()
	// Kotlin allows keywords in backticks, but generated code would then
	// need quoting everywhere the package is referenced.
	if IsReservedWord(fixed) {
		fixed += "_"
	}
	return fixed, nil
}

func packageError(detail string) error {
	return oerrors.NewValidationError(
		"default package name invalid and cannot be fixed, "+detail,
		"",
		"please manually define the package",
	)
}
