package templates

import (
	"strings"

	oerrors "github.com/gradle-util/gur/internal/errors"
)

// Args maps argument names to resolved values.
type Args map[string]string

const placeholderOpen = "$("

// ApplyArgs substitutes every $(name) in s with args[name]. Unknown names and
// unterminated placeholders are template defects.
func ApplyArgs(s string, args Args) (string, error) {
	var b strings.Builder
	b.Grow(len(s))

	rest := s
	for {
		i := strings.Index(rest, placeholderOpen)
		if i < 0 {
			break
		}
		b.WriteString(rest[:i])
		rest = rest[i+len(placeholderOpen):]

		key, after, ok := strings.Cut(rest, ")")
		if !ok {
			return "", oerrors.NewTemplateError("illegal argument in template: unterminated $(", "")
		}
		value, known := args[key]
		if !known {
			return "", oerrors.NewTemplateError("unknown argument in template: "+key, "")
		}
		b.WriteString(value)
		rest = after
	}
	b.WriteString(rest)
	return b.String(), nil
}

// EscapeDollar makes s safe to use as placeholder content: every literal
// "$(" becomes "$(dollar)(".
func EscapeDollar(s string) string {
	return strings.ReplaceAll(s, placeholderOpen, "$(dollar)(")
}
