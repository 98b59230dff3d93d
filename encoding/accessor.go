package encoding

import (
	"io"

	"github.com/arloliu/vtkio/format"
	"github.com/arloliu/vtkio/view"
)

// Accessor is a type-erased handle over one registered array.
//
// It never copies the underlying data on construction. WriteTo streams the
// encoded bytes; AppendTo materializes them and is only needed when the bytes
// have to be processed as a whole, e.g. by a compressor.
type Accessor interface {
	// Type returns the element type.
	Type() format.ScalarType
	// Len returns the number of scalar elements (not tuples).
	Len() int
	// ByteLen returns Len() × element width. Component grouping does not
	// change the byte length.
	ByteLen() uint64
	// WriteTo writes exactly ByteLen() bytes to w.
	WriteTo(w io.Writer) (int64, error)
	// AppendTo appends exactly ByteLen() bytes to dst.
	AppendTo(dst []byte) ([]byte, error)
}

type viewAccessor[T format.Scalar] struct {
	v   view.View[T]
	typ format.ScalarType
}

var _ Accessor = (*viewAccessor[float32])(nil)

// NewAccessor wraps v.
func NewAccessor[T format.Scalar](v view.View[T]) Accessor {
	return &viewAccessor[T]{v: v, typ: format.TypeOf[T]()}
}

// Of wraps a slice; it is shorthand for NewAccessor(view.Slice(s)).
func Of[T format.Scalar](s []T) Accessor {
	return NewAccessor[T](view.Slice(s))
}

func (a *viewAccessor[T]) Type() format.ScalarType {
	return a.typ
}

func (a *viewAccessor[T]) Len() int {
	return a.v.Len()
}

func (a *viewAccessor[T]) ByteLen() uint64 {
	return uint64(a.v.Len()) * uint64(a.typ.Size())
}

func (a *viewAccessor[T]) WriteTo(w io.Writer) (int64, error) {
	return WriteSequence(w, a.v)
}

func (a *viewAccessor[T]) AppendTo(dst []byte) ([]byte, error) {
	return AppendSequence(dst, a.v)
}
