// Package typst implements a typed builder for [Typst] markup: callers
// assemble an immutable tree of [Content] nodes with constructors and
// serialize it once with [Render] or [Write].
//
// The package knows nothing about particular Typst elements; element names,
// attribute keys and pre-formatted attribute values are supplied by the
// constructors in the companion [github.com/growler/go-typst/dot] package.
//
// [Typst]: https://typst.app/docs/reference/
package typst

// A node of a markup tree. The interface is sealed: the only
// implementations are Text, Group and *Elem.
type Content interface {
	writable
	content()
}

// A convenience function to check if a node is of a particular variant.
//
// Example:
//
//	if typst.Is[typst.Group](node) {
//	    ...
//
//	if typst.Is[*typst.Elem](node) {
//	    ...
func Is[P Content](c Content) bool {
	_, ok := c.(P)
	return ok
}

// Text is an opaque leaf. It is copied verbatim into the output in block
// context and wrapped in double quotes in inline context; no escaping is
// applied either way.
type Text string

func (Text) content() {}

// Group is an ordered concatenation of nodes with no markup of its own.
// It renders as its children's renderings joined with no separator.
type Group []Content

func (Group) content() {}

// Elem is a single markup invocation, #name(params)[body]. Params hold the
// already-rendered attributes in insertion order; Body carries the children
// together with their layout.
type Elem struct {
	Name   string
	Params []string
	Body   ChildLayout
}

func (*Elem) content() {}

// ChildLayout determines how an element's children become markup. Sealed;
// the implementations are BlockJoined, BlockPerChild and InlineArgs.
type ChildLayout interface {
	layout()
}

// BlockJoined renders all children, block context, inside a single bracket
// pair. With no children it renders nothing at all, not "[]".
type BlockJoined []Content

func (BlockJoined) layout() {}

// BlockPerChild renders each child, block context, in its own bracket
// pair, with no separator between pairs.
type BlockPerChild []Content

func (BlockPerChild) layout() {}

// InlineArgs renders children in inline context and folds them into the
// element's parenthesized parameter list; no bracketed body is produced.
type InlineArgs []Content

func (InlineArgs) layout() {}

// Attr is an attribute of an element, parameterized by the marker type K
// naming the element kind it may be passed to. K exists at compile time
// only; at run time an attribute is its rendered value and, for keyed
// attributes, its key.
type Attr[K any] struct {
	key   string // empty for positional attributes
	value string
}

// Keyed returns an attribute rendered as "key: value". The value must
// already be valid Typst syntax; no quoting or escaping is applied here.
func Keyed[K any](key, value string) Attr[K] {
	return Attr[K]{key: key, value: value}
}

// Positional returns an attribute rendered as its bare value.
func Positional[K any](value string) Attr[K] {
	return Attr[K]{value: value}
}

// renderAttrs maps attributes to their textual parameter forms, preserving
// order. Duplicate keys are passed through as given.
func renderAttrs[K any](attrs []Attr[K]) []string {
	if len(attrs) == 0 {
		return nil
	}
	params := make([]string, len(attrs))
	for i, a := range attrs {
		if a.key == "" {
			params[i] = a.value
		} else {
			params[i] = a.key + ": " + a.value
		}
	}
	return params
}

// NewElem returns an element whose children form one bracketed body.
func NewElem[K any](name string, attrs []Attr[K], children ...Content) Content {
	return &Elem{Name: name, Params: renderAttrs(attrs), Body: BlockJoined(children)}
}

// NewMultiElem returns an element rendering each child in its own bracket
// pair (list items and the like).
func NewMultiElem[K any](name string, attrs []Attr[K], children ...Content) Content {
	return &Elem{Name: name, Params: renderAttrs(attrs), Body: BlockPerChild(children)}
}

// NewInlineElem returns an element whose children join the parameter list
// as inline expressions (grid and table cells and the like).
func NewInlineElem[K any](name string, attrs []Attr[K], children ...Content) Content {
	return &Elem{Name: name, Params: renderAttrs(attrs), Body: InlineArgs(children)}
}
