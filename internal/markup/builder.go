// Package markup is a minimal streaming emitter for the element/attribute
// subset of XML used by VTK file headers.
//
// Elements with no content self-close (<Name a="1"/>). Raw text can be
// spliced into the output at any point, which is how the appended binary
// payload follows the header without being escaped.
package markup

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/arloliu/vtkio/errs"
)

// DefaultIndent is the number of spaces per nesting level.
const DefaultIndent = 2

type state uint8

const (
	stateInitial state = iota
	stateInStartTag
	stateContent
)

// Builder writes elements to an underlying writer as they are opened and
// closed. The first error (I/O or misuse) is sticky: later calls are no-ops
// and Err reports it.
type Builder struct {
	w      io.Writer
	stack  []string
	indent int
	depth  int
	state  state
	err    error
}

// New returns a Builder writing to w with indent spaces per level.
// A negative indent is treated as zero.
func New(w io.Writer, indent int) *Builder {
	return &Builder{w: w, indent: max(indent, 0)}
}

// Err returns the first error recorded by the builder.
func (b *Builder) Err() error {
	return b.err
}

// Depth returns the number of open elements.
func (b *Builder) Depth() int {
	return b.depth
}

// Open starts a new element. A pending start tag of the parent is terminated first.
func (b *Builder) Open(name string) {
	if b.err != nil {
		return
	}
	if b.state == stateInStartTag {
		b.write(">\n")
	}
	if b.state != stateInitial {
		b.writeIndent()
	}
	b.write("<")
	b.write(name)

	b.stack = append(b.stack, name)
	b.state = stateInStartTag
	b.depth++
}

// Attr adds name="value" to the element whose start tag is still open.
//
// Integers are written in decimal and floats in their shortest
// round-trippable form. Strings are escaped.
func (b *Builder) Attr(name string, value any) {
	if b.err != nil {
		return
	}
	if b.state != stateInStartTag {
		b.err = fmt.Errorf("%w: attribute %q outside of a start tag", errs.ErrMarkupState, name)
		return
	}

	b.write(" ")
	b.write(name)
	b.write(`="`)
	b.write(formatValue(value))
	b.write(`"`)
}

// Close ends the innermost open element, self-closing it when it has no content.
func (b *Builder) Close() {
	if b.err != nil {
		return
	}
	if len(b.stack) == 0 {
		b.err = fmt.Errorf("%w: close without open element", errs.ErrMarkupState)
		return
	}

	name := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
	b.depth--

	if b.state == stateInStartTag {
		b.write("/>\n")
	} else {
		b.writeIndent()
		b.write("</")
		b.write(name)
		b.write(">\n")
	}
	b.state = stateContent
}

// Raw writes text verbatim without changing the builder state.
func (b *Builder) Raw(text string) {
	if b.err != nil {
		return
	}
	b.write(text)
}

// Element opens name and returns a handle for chaining attributes and closing it.
func (b *Builder) Element(name string) *Element {
	b.Open(name)
	return &Element{b: b}
}

// Within opens name, runs fn, and closes the element on every exit path.
// The error of fn takes precedence over a recorded builder error.
func (b *Builder) Within(name string, fn func(el *Element) error) error {
	el := b.Element(name)
	err := fn(el)
	el.Close()

	if err != nil {
		return err
	}

	return b.err
}

func (b *Builder) write(s string) {
	if b.err != nil {
		return
	}
	if _, err := io.WriteString(b.w, s); err != nil {
		b.err = err
	}
}

func (b *Builder) writeIndent() {
	if n := b.depth * b.indent; n > 0 {
		b.write(strings.Repeat(" ", n))
	}
}

// Element is an open element. Close is idempotent, so it is safe to both
// defer it and call it explicitly.
type Element struct {
	b      *Builder
	closed bool
}

// Attr adds an attribute and returns el for chaining.
func (el *Element) Attr(name string, value any) *Element {
	el.b.Attr(name, value)
	return el
}

// Close closes the element once.
func (el *Element) Close() {
	if el.closed {
		return
	}
	el.closed = true
	el.b.Close()
}

var attrEscaper = strings.NewReplacer(
	`&`, "&amp;",
	`<`, "&lt;",
	`>`, "&gt;",
	`"`, "&quot;",
)

func formatValue(value any) string {
	switch v := value.(type) {
	case string:
		return attrEscaper.Replace(v)
	case int:
		return strconv.Itoa(v)
	case int8:
		return strconv.FormatInt(int64(v), 10)
	case int16:
		return strconv.FormatInt(int64(v), 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint:
		return strconv.FormatUint(uint64(v), 10)
	case uint8:
		return strconv.FormatUint(uint64(v), 10)
	case uint16:
		return strconv.FormatUint(uint64(v), 10)
	case uint32:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float32:
		return formatFloat(float64(v), 32)
	case float64:
		return formatFloat(v, 64)
	case bool:
		return strconv.FormatBool(v)
	case fmt.Stringer:
		return attrEscaper.Replace(v.String())
	default:
		return attrEscaper.Replace(fmt.Sprint(v))
	}
}

func formatFloat(v float64, bitSize int) string {
	switch {
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	case math.IsNaN(v):
		return "nan"
	}

	return strconv.FormatFloat(v, 'g', -1, bitSize)
}
