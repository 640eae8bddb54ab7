package templates

import "fmt"

// ContentKind selects how a Content value is rendered.
type ContentKind int

const (
	// KindStatic is emitted as is.
	KindStatic ContentKind = iota

	// KindPlaceholder has its $(name) placeholders substituted.
	KindPlaceholder

	// KindFunc is produced by a function of the resolved arguments.
	KindFunc
)

// RenderFunc renders content programmatically.
type RenderFunc func(args Args) (string, error)

// Content is a file path or body. Exactly one of its variants is set,
// chosen when the template is registered.
type Content struct {
	kind   ContentKind
	text   string
	render RenderFunc
}

// Static returns content emitted verbatim.
func Static(text string) Content {
	return Content{kind: KindStatic, text: text}
}

// Placeholders returns content whose $(name) placeholders are substituted.
func Placeholders(text string) Content {
	return Content{kind: KindPlaceholder, text: text}
}

// Func returns content produced by fn.
func Func(fn RenderFunc) Content {
	return Content{kind: KindFunc, render: fn}
}

// Kind reports the variant.
func (c Content) Kind() ContentKind {
	return c.kind
}

// Text returns the raw text of static and placeholder content.
func (c Content) Text() string {
	return c.text
}

// Render produces the final text for args.
func (c Content) Render(args Args) (string, error) {
	switch c.kind {
	case KindStatic:
		return c.text, nil
	case KindPlaceholder:
		return ApplyArgs(c.text, args)
	case KindFunc:
		if c.render == nil {
			return "", fmt.Errorf("content has no renderer")
		}
		return c.render(args)
	default:
		return "", fmt.Errorf("unknown content kind %d", c.kind)
	}
}
