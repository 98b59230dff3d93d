// Package view defines the capability a caller-owned array must expose to be
// registered with a writer, together with adapters for common source shapes.
//
// A View never owns or copies its data. Whatever memory it refers to must stay
// valid and unmodified until the writer that registered it returns from Write.
package view

import (
	"iter"

	"github.com/arloliu/vtkio/format"
)

// View is a sized sequence of scalars of a single type.
//
// All must yield exactly Len elements, in order, each time it is called.
type View[T format.Scalar] interface {
	Len() int
	All() iter.Seq[T]
}

// Contiguous is implemented by views whose elements are laid out back to back
// in one Go slice. Writers use it to stream the memory in one bulk copy.
type Contiguous[T format.Scalar] interface {
	View[T]
	Slice() []T
}

// SliceView is a contiguous view over a slice.
type SliceView[T format.Scalar] struct {
	data []T
}

var _ Contiguous[float64] = SliceView[float64]{}

// Slice returns a contiguous view over s. The slice header is captured, so
// later appends to s that reallocate are not observed.
func Slice[T format.Scalar](s []T) SliceView[T] {
	return SliceView[T]{data: s}
}

// Len returns the number of elements.
func (v SliceView[T]) Len() int { return len(v.data) }

// Slice returns the viewed slice.
func (v SliceView[T]) Slice() []T { return v.data }

// All yields the elements in order.
func (v SliceView[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range v.data {
			if !yield(x) {
				return
			}
		}
	}
}

// StridedView yields every stride-th element of a slice starting at offset.
type StridedView[T format.Scalar] struct {
	data   []T
	offset int
	stride int
	n      int
}

// Strided returns a view of data[offset], data[offset+stride], ...
//
// It is the usual way to pull one component out of an interleaved buffer,
// e.g. Strided(xyz, 2, 3) yields every z coordinate. A stride below 1 is
// treated as 1; an offset past the end yields an empty view.
func Strided[T format.Scalar](data []T, offset, stride int) StridedView[T] {
	if stride < 1 {
		stride = 1
	}
	if offset < 0 {
		offset = 0
	}

	n := 0
	if offset < len(data) {
		n = (len(data) - offset + stride - 1) / stride
	}

	return StridedView[T]{data: data, offset: offset, stride: stride, n: n}
}

// Len returns the number of elements.
func (v StridedView[T]) Len() int { return v.n }

// All yields the elements in order.
func (v StridedView[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.n; i++ {
			if !yield(v.data[v.offset+i*v.stride]) {
				return
			}
		}
	}
}

// ProjectedView yields one scalar field of each element of a struct slice.
type ProjectedView[S any, T format.Scalar] struct {
	items []S
	field func(*S) T
}

// Adapt projects one scalar member out of an array of structures:
//
//	masses := view.Adapt(particles, func(p *Particle) float64 { return p.Mass })
//
// field receives a pointer into items and must not retain it.
func Adapt[S any, T format.Scalar](items []S, field func(*S) T) ProjectedView[S, T] {
	return ProjectedView[S, T]{items: items, field: field}
}

// Len returns the number of elements.
func (v ProjectedView[S, T]) Len() int { return len(v.items) }

// All yields the projected member of each item in order.
func (v ProjectedView[S, T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range v.items {
			if !yield(v.field(&v.items[i])) {
				return
			}
		}
	}
}

// SeqView wraps a forward-only iterator of known length.
type SeqView[T format.Scalar] struct {
	n   int
	seq iter.Seq[T]
}

// Seq returns a view of n elements produced by seq.
//
// Writers stop pulling after n elements. A seq that ends early makes the
// write fail with errs.ErrShortSequence.
func Seq[T format.Scalar](n int, seq iter.Seq[T]) SeqView[T] {
	if n < 0 {
		n = 0
	}

	return SeqView[T]{n: n, seq: seq}
}

// Len returns the declared number of elements.
func (v SeqView[T]) Len() int { return v.n }

// All returns the wrapped iterator.
func (v SeqView[T]) All() iter.Seq[T] {
	if v.seq == nil {
		return func(func(T) bool) {}
	}

	return v.seq
}
