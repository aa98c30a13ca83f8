package typst

import (
	"io"
	"strings"
)

type writable interface {
	writeBlock(io.Writer) error
	writeInline(io.Writer) error
}

// interface check

var _ = []Content{
	Text(""),
	Group{},
	(*Elem)(nil),
}

var _ = []ChildLayout{
	BlockJoined{},
	BlockPerChild{},
	InlineArgs{},
}

func (t Text) writeBlock(w io.Writer) error {
	_, err := io.WriteString(w, string(t))
	return err
}

func (t Text) writeInline(w io.Writer) error {
	if err := writeDelim(w, '"'); err != nil {
		return err
	}
	if _, err := io.WriteString(w, string(t)); err != nil {
		return err
	}
	return writeDelim(w, '"')
}

func (g Group) writeBlock(w io.Writer) error {
	for _, c := range g {
		if err := c.writeBlock(w); err != nil {
			return err
		}
	}
	return nil
}

func (g Group) writeInline(w io.Writer) error {
	for _, c := range g {
		if err := c.writeInline(w); err != nil {
			return err
		}
	}
	return nil
}

func (e *Elem) writeBlock(w io.Writer) error {
	if err := writeDelim(w, '#'); err != nil {
		return err
	}
	return e.writeElem(w)
}

// In inline context an element is itself an argument expression, so it
// carries no leading marker.
func (e *Elem) writeInline(w io.Writer) error {
	return e.writeElem(w)
}

func (e *Elem) writeElem(w io.Writer) error {
	if _, err := io.WriteString(w, e.Name); err != nil {
		return err
	}
	if err := e.writeParams(w); err != nil {
		return err
	}
	return e.writeBody(w)
}

func (e *Elem) writeParams(w io.Writer) error {
	args, inline := e.Body.(InlineArgs)
	if len(e.Params) == 0 && !inline {
		return nil
	}
	if err := writeDelim(w, '('); err != nil {
		return err
	}
	for i, p := range e.Params {
		if i > 0 {
			if _, err := io.WriteString(w, ", "); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, p); err != nil {
			return err
		}
	}
	if inline {
		// An InlineArgs parameter list keeps the separator after the
		// attributes even with zero children, exactly as the reference
		// grammar does.
		if len(e.Params) > 0 {
			if _, err := io.WriteString(w, ", "); err != nil {
				return err
			}
		}
		for i, c := range args {
			if i > 0 {
				if _, err := io.WriteString(w, ", "); err != nil {
					return err
				}
			}
			if err := c.writeInline(w); err != nil {
				return err
			}
		}
	}
	return writeDelim(w, ')')
}

func (e *Elem) writeBody(w io.Writer) error {
	switch b := e.Body.(type) {
	case BlockJoined:
		if len(b) == 0 {
			return nil
		}
		if err := writeDelim(w, '['); err != nil {
			return err
		}
		for _, c := range b {
			if err := c.writeBlock(w); err != nil {
				return err
			}
		}
		return writeDelim(w, ']')
	case BlockPerChild:
		for _, c := range b {
			if err := writeDelim(w, '['); err != nil {
				return err
			}
			if err := c.writeBlock(w); err != nil {
				return err
			}
			if err := writeDelim(w, ']'); err != nil {
				return err
			}
		}
		return nil
	default: // InlineArgs: folded into the parameter list
		return nil
	}
}

func writeDelim(w io.Writer, b byte) error {
	if _, err := w.Write([]byte{b}); err != nil {
		return err
	}
	return nil
}

// Write writes the markup rendering of c to w, block context. An error is
// returned only when w fails; rendering itself cannot.
//
// Example:
//
//	var doc typst.Content
//	...
//	if err := typst.Write(os.Stdout, doc); err != nil {
//		log.Fatal(err)
//	}
func Write(w io.Writer, c Content) error {
	return c.writeBlock(w)
}

// Render returns the markup rendering of c, block context. Rendering is
// pure: the same tree always yields the same text.
func Render(c Content) string {
	var sb strings.Builder
	_ = Write(&sb, c) // strings.Builder does not fail
	return sb.String()
}
