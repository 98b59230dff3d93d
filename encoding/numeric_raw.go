package encoding

import (
	"fmt"
	"io"
	"math"
	"unsafe"

	"github.com/arloliu/vtkio/endian"
	"github.com/arloliu/vtkio/errs"
	"github.com/arloliu/vtkio/format"
	"github.com/arloliu/vtkio/internal/pool"
	"github.com/arloliu/vtkio/view"
)

// appendFunc appends the on-disk bytes of one value.
type appendFunc[T format.Scalar] func(dst []byte, v T) []byte

// appender resolves the per-element encoder for T once, so the slow path does
// not repeat the type dispatch for every element.
func appender[T format.Scalar]() appendFunc[T] {
	engine := endian.Disk()

	switch format.TypeOf[T]() {
	case format.TypeInt8, format.TypeUint8:
		return func(dst []byte, v T) []byte { return append(dst, byte(v)) }
	case format.TypeInt16, format.TypeUint16:
		return func(dst []byte, v T) []byte { return engine.AppendUint16(dst, uint16(v)) }
	case format.TypeInt32, format.TypeUint32:
		return func(dst []byte, v T) []byte { return engine.AppendUint32(dst, uint32(v)) }
	case format.TypeFloat32:
		return func(dst []byte, v T) []byte { return engine.AppendUint32(dst, math.Float32bits(float32(v))) }
	case format.TypeFloat64:
		return func(dst []byte, v T) []byte { return engine.AppendUint64(dst, math.Float64bits(float64(v))) }
	default:
		return func(dst []byte, v T) []byte { return engine.AppendUint64(dst, uint64(v)) }
	}
}

// AppendScalar appends the little-endian encoding of v to dst.
func AppendScalar[T format.Scalar](dst []byte, v T) []byte {
	return appender[T]()(dst, v)
}

// PutScalar encodes v into the beginning of dst.
//
// Panics if dst is shorter than the width of T.
func PutScalar[T format.Scalar](dst []byte, v T) {
	size := format.TypeOf[T]().Size()
	_ = dst[size-1]
	appender[T]()(dst[:0], v)
}

// rawBytes reinterprets a slice of scalars as its memory bytes.
func rawBytes[T format.Scalar](s []T) []byte {
	if len(s) == 0 {
		return nil
	}
	size := int(unsafe.Sizeof(s[0]))

	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(s))), len(s)*size)
}

// bulkBytes returns the on-disk bytes of v without copying when v is
// contiguous and the host is little-endian.
func bulkBytes[T format.Scalar](v view.View[T]) ([]byte, bool) {
	if !endian.MatchesDisk() {
		return nil, false
	}
	c, ok := v.(view.Contiguous[T])
	if !ok {
		return nil, false
	}
	s := c.Slice()
	if len(s) > v.Len() {
		s = s[:v.Len()]
	}

	return rawBytes(s), true
}

// WriteSequence writes the little-endian encoding of every element of v to w
// and returns the number of bytes written.
//
// Exactly v.Len() elements are written. Contiguous views on little-endian hosts
// are written with a single Write call; everything else is staged through a
// pooled 4 KiB buffer.
func WriteSequence[T format.Scalar](w io.Writer, v view.View[T]) (int64, error) {
	if raw, ok := bulkBytes(v); ok {
		n, err := w.Write(raw)
		return int64(n), err
	}

	put := appender[T]()
	size := format.TypeOf[T]().Size()
	want := v.Len()

	chunk := pool.GetChunkBuffer()
	defer pool.PutChunkBuffer(chunk)

	var written int64
	flush := func() error {
		n, err := chunk.WriteTo(w)
		written += n
		chunk.Reset()

		return err
	}

	count := 0
	for x := range v.All() {
		if count == want {
			break
		}
		if chunk.Available() < size {
			if err := flush(); err != nil {
				return written, err
			}
		}
		chunk.B = put(chunk.B, x)
		count++
	}

	if chunk.Len() > 0 {
		if err := flush(); err != nil {
			return written, err
		}
	}

	if count < want {
		return written, fmt.Errorf("%w: got %d of %d", errs.ErrShortSequence, count, want)
	}

	return written, nil
}

// AppendSequence appends the little-endian encoding of every element of v to dst.
func AppendSequence[T format.Scalar](dst []byte, v view.View[T]) ([]byte, error) {
	if raw, ok := bulkBytes(v); ok {
		return append(dst, raw...), nil
	}

	put := appender[T]()
	want := v.Len()
	if need := want * format.TypeOf[T]().Size(); cap(dst)-len(dst) < need {
		grown := make([]byte, len(dst), len(dst)+need)
		copy(grown, dst)
		dst = grown
	}

	count := 0
	for x := range v.All() {
		if count == want {
			break
		}
		dst = put(dst, x)
		count++
	}

	if count < want {
		return dst, fmt.Errorf("%w: got %d of %d", errs.ErrShortSequence, count, want)
	}

	return dst, nil
}
