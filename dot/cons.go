// Package dot provides short constructors for Typst elements and their
// attributes, intended to be dot-imported:
//
//	import . "github.com/growler/go-typst/dot"
//
// Every constructor is a thin wrapper supplying an element name, a list of
// pre-formatted attributes and a child layout to the core node builders.
// Attribute constructors are typed per element kind, so e.g. a heading
// attribute passed to List does not compile.
package dot

import (
	"strconv"
	"strings"

	typst "github.com/growler/go-typst"
)

// Element kind markers. Compile-time only; see typst.Attr.
type (
	noneKind    struct{}
	headingKind struct{}
	textKind    struct{}
	parKind     struct{}
	alignKind   struct{}
	linkKind    struct{}
	spacingKind struct{}
	listKind    struct{}
	enumKind    struct{}
	gridKind    struct{}
	cellKind    struct{}
	tableKind   struct{}
	stackKind   struct{}
)

// Attribute types, one per element kind.
type (
	HeadingAttr = typst.Attr[headingKind]
	TextAttr    = typst.Attr[textKind]
	ParAttr     = typst.Attr[parKind]
	AlignAttr   = typst.Attr[alignKind]
	SpacingAttr = typst.Attr[spacingKind]
	ListAttr    = typst.Attr[listKind]
	EnumAttr    = typst.Attr[enumKind]
	GridAttr    = typst.Attr[gridKind]
	CellAttr    = typst.Attr[cellKind]
	TableAttr   = typst.Attr[tableKind]
	StackAttr   = typst.Attr[stackKind]
)

func Contents(c ...typst.Content) []typst.Content {
	return c
}

func Opts[K any](a ...typst.Attr[K]) []typst.Attr[K] {
	return a
}

// Text (string)
func Str(s string) typst.Content {
	return typst.Text(s)
}

// Raw markup, passed through verbatim in block context. Useful for
// whitespace between top-level elements.
func Raw(s string) typst.Content {
	return typst.Text(s)
}

func Doc(c ...typst.Content) typst.Content {
	return typst.Group(c)
}

func elem(name string, body []typst.Content) typst.Content {
	return typst.NewElem[noneKind](name, nil, body...)
}

// Section heading. #heading(level: 1, numbering: "1.")[...]
func Heading(attrs []HeadingAttr, body ...typst.Content) typst.Content {
	return typst.NewElem("heading", attrs, body...)
}

func Level(n int) HeadingAttr {
	return typst.Keyed[headingKind]("level", strconv.Itoa(n))
}

// Numbering pattern for headings, e.g. "1.a.".
func Numbering(pattern string) HeadingAttr {
	return typst.Keyed[headingKind]("numbering", quote(pattern))
}

func Outlined(v bool) HeadingAttr {
	return typst.Keyed[headingKind]("outlined", strconv.FormatBool(v))
}

// Strongly emphasized content. #strong[...]
func Strong(body ...typst.Content) typst.Content {
	return elem("strong", body)
}

// Emphasized content. #emph[...]
func Emph(body ...typst.Content) typst.Content {
	return elem("emph", body)
}

// Underlined content.
func Underline(body ...typst.Content) typst.Content {
	return elem("underline", body)
}

// Struck-through content.
func Strike(body ...typst.Content) typst.Content {
	return elem("strike", body)
}

// Styled text. #text(size: 12.0pt, weight: "bold")[...]
func Text(attrs []TextAttr, body ...typst.Content) typst.Content {
	return typst.NewElem("text", attrs, body...)
}

func Size(length string) TextAttr {
	return typst.Keyed[textKind]("size", length)
}

func Weight(weight string) TextAttr {
	return typst.Keyed[textKind]("weight", quote(weight))
}

// Paragraph with layout properties. #par(leading: 1.0em, justify: true)[...]
func Par(attrs []ParAttr, body ...typst.Content) typst.Content {
	return typst.NewElem("par", attrs, body...)
}

func Leading(length string) ParAttr {
	return typst.Keyed[parKind]("leading", length)
}

func Justify(v bool) ParAttr {
	return typst.Keyed[parKind]("justify", strconv.FormatBool(v))
}

// Aligned content. #align(center)[...]
func Align(to AlignAttr, body ...typst.Content) typst.Content {
	return typst.NewElem("align", []AlignAttr{to}, body...)
}

// Alignments accepted by Align.
var (
	AlignStart   = typst.Positional[alignKind]("start")
	AlignEnd     = typst.Positional[alignKind]("end")
	AlignLeft    = typst.Positional[alignKind]("left")
	AlignCenter  = typst.Positional[alignKind]("center")
	AlignRight   = typst.Positional[alignKind]("right")
	AlignTop     = typst.Positional[alignKind]("top")
	AlignHorizon = typst.Positional[alignKind]("horizon")
	AlignBottom  = typst.Positional[alignKind]("bottom")
)

// Hyperlink. #link("https://typst.app")[...]
func Link(url string, body ...typst.Content) typst.Content {
	return typst.NewElem("link", []typst.Attr[linkKind]{typst.Positional[linkKind](quote(url))}, body...)
}

// Vertical space. #v(1.5em)
func V(amount string, attrs ...SpacingAttr) typst.Content {
	return typst.NewElem("v", append([]SpacingAttr{typst.Positional[spacingKind](amount)}, attrs...))
}

// Horizontal space. #h(1.5em)
func H(amount string, attrs ...SpacingAttr) typst.Content {
	return typst.NewElem("h", append([]SpacingAttr{typst.Positional[spacingKind](amount)}, attrs...))
}

func Weak(v bool) SpacingAttr {
	return typst.Keyed[spacingKind]("weak", strconv.FormatBool(v))
}

// Bullet list; each child is one item. #list(marker: [--])[a][b]
func List(attrs []ListAttr, items ...typst.Content) typst.Content {
	return typst.NewMultiElem("list", attrs, items...)
}

func Tight(v bool) ListAttr {
	return typst.Keyed[listKind]("tight", strconv.FormatBool(v))
}

// List item marker, supplied as markup content, e.g. Marker("--").
func Marker(marker string) ListAttr {
	return typst.Keyed[listKind]("marker", bracket(marker))
}

func ListSpacing(length string) ListAttr {
	return typst.Keyed[listKind]("spacing", length)
}

// Numbered list; each child is one item. #enum(start: 3)[a][b]
func Enum(attrs []EnumAttr, items ...typst.Content) typst.Content {
	return typst.NewMultiElem("enum", attrs, items...)
}

func Start(n int) EnumAttr {
	return typst.Keyed[enumKind]("start", strconv.Itoa(n))
}

func EnumTight(v bool) EnumAttr {
	return typst.Keyed[enumKind]("tight", strconv.FormatBool(v))
}

// Numbering pattern for enums, e.g. "1.a.".
func EnumNumbering(pattern string) EnumAttr {
	return typst.Keyed[enumKind]("numbering", quote(pattern))
}

// Grid layout; children are the cell contents, passed as arguments.
// #grid(columns: (1.0fr, 2.0fr), "Hello", "World")
func Grid(attrs []GridAttr, cells ...typst.Content) typst.Content {
	return typst.NewInlineElem("grid", attrs, cells...)
}

func Columns(tracks ...string) GridAttr {
	return typst.Keyed[gridKind]("columns", tuple(tracks))
}

func Rows(tracks ...string) GridAttr {
	return typst.Keyed[gridKind]("rows", tuple(tracks))
}

func Gutter(length string) GridAttr {
	return typst.Keyed[gridKind]("gutter", length)
}

func ColumnGutter(length string) GridAttr {
	return typst.Keyed[gridKind]("column-gutter", length)
}

func RowGutter(length string) GridAttr {
	return typst.Keyed[gridKind]("row-gutter", length)
}

// Grid cell spanning grid tracks. #grid.cell(colspan: 2)[...]
func GridCell(attrs []CellAttr, body ...typst.Content) typst.Content {
	return typst.NewElem("grid.cell", attrs, body...)
}

func Colspan(n int) CellAttr {
	return typst.Keyed[cellKind]("colspan", strconv.Itoa(n))
}

func Rowspan(n int) CellAttr {
	return typst.Keyed[cellKind]("rowspan", strconv.Itoa(n))
}

// Table; children are the cell contents, passed as arguments.
func Table(attrs []TableAttr, cells ...typst.Content) typst.Content {
	return typst.NewInlineElem("table", attrs, cells...)
}

func TableColumns(tracks ...string) TableAttr {
	return typst.Keyed[tableKind]("columns", tuple(tracks))
}

func TableGutter(length string) TableAttr {
	return typst.Keyed[tableKind]("gutter", length)
}

// Stacked content; children are passed as arguments.
// #stack(dir: ttb, spacing: 4.0pt, ...)
func Stack(attrs []StackAttr, children ...typst.Content) typst.Content {
	return typst.NewInlineElem("stack", attrs, children...)
}

// Stacking direction, one of ttb, btt, ltr, rtl. The value is a Typst
// identifier and stays unquoted.
func Dir(dir string) StackAttr {
	return typst.Keyed[stackKind]("dir", dir)
}

func StackSpacing(length string) StackAttr {
	return typst.Keyed[stackKind]("spacing", length)
}

// Length, fraction and ratio helpers. Values are formatted to decimal text
// with the unit suffix before they ever reach an attribute; the core never
// formats numbers.

func Pt(v float64) string { return dec(v) + "pt" }
func Mm(v float64) string { return dec(v) + "mm" }
func Cm(v float64) string { return dec(v) + "cm" }
func In(v float64) string { return dec(v) + "in" }
func Em(v float64) string { return dec(v) + "em" }
func Fr(v float64) string { return dec(v) + "fr" }

func Percent(v float64) string { return dec(v) + "%" }

// dec formats v with at least one fractional digit: 1 renders as "1.0".
func dec(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func quote(s string) string {
	return `"` + s + `"`
}

func bracket(s string) string {
	return "[" + s + "]"
}

func tuple(items []string) string {
	return "(" + strings.Join(items, ", ") + ")"
}
