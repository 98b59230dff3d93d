package encoding

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"testing"

	"github.com/arloliu/vtkio/endian"
	"github.com/arloliu/vtkio/errs"
	"github.com/arloliu/vtkio/format"
	"github.com/arloliu/vtkio/internal/pool"
	"github.com/arloliu/vtkio/view"
	"github.com/stretchr/testify/require"
)

// countingWriter records the size of every Write call.
type countingWriter struct {
	bytes.Buffer
	calls []int
}

func (c *countingWriter) Write(p []byte) (int, error) {
	c.calls = append(c.calls, len(p))
	return c.Buffer.Write(p)
}

type failingWriter struct {
	after int
	n     int
}

func (f *failingWriter) Write(p []byte) (int, error) {
	if f.n+len(p) > f.after {
		return 0, errors.New("sink closed")
	}
	f.n += len(p)

	return len(p), nil
}

func TestAppendScalar(t *testing.T) {
	require.Equal(t, []byte{0xFF}, AppendScalar(nil, int8(-1)))
	require.Equal(t, []byte{0x34, 0x12}, AppendScalar(nil, int16(0x1234)))
	require.Equal(t, []byte{0x78, 0x56, 0x34, 0x12}, AppendScalar(nil, uint32(0x12345678)))
	require.Equal(t, []byte{0xFE, 0xFF, 0xFF, 0xFF}, AppendScalar(nil, int32(-2)))
	require.Equal(t, []byte{0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01}, AppendScalar(nil, uint64(0x0102030405060708)))

	f32 := AppendScalar(nil, float32(1.1))
	require.Equal(t, math.Float32bits(1.1), binary.LittleEndian.Uint32(f32))

	f64 := AppendScalar(nil, -2.2)
	require.Equal(t, math.Float64bits(-2.2), binary.LittleEndian.Uint64(f64))

	// Named types follow their underlying type.
	require.Equal(t, []byte{5}, AppendScalar(nil, format.CellTriangle))
}

func TestPutScalar(t *testing.T) {
	b := make([]byte, 10)
	PutScalar(b, uint64(300))
	require.Equal(t, []byte{0x2C, 0x01, 0, 0, 0, 0, 0, 0, 0, 0}, b)

	require.Panics(t, func() { PutScalar(make([]byte, 3), uint32(1)) })
}

func TestWriteSequence_Contiguous(t *testing.T) {
	data := []int16{0x1234, 0x5678}
	var w countingWriter

	n, err := WriteSequence(&w, view.Slice(data))
	require.NoError(t, err)
	require.Equal(t, int64(4), n)
	require.Equal(t, []byte{0x34, 0x12, 0x78, 0x56}, w.Bytes())
	require.Len(t, w.calls, 1, "contiguous data is written with one call")
}

func TestWriteSequence_ChunkedSlowPath(t *testing.T) {
	// 2000 float64 values through a strided view: 16000 bytes in 4 KiB chunks.
	interleaved := make([]float64, 4000)
	for i := range interleaved {
		interleaved[i] = float64(i) * 0.5
	}
	v := view.Strided(interleaved, 1, 2)
	require.Equal(t, 2000, v.Len())

	var w countingWriter
	n, err := WriteSequence(&w, v)
	require.NoError(t, err)
	require.Equal(t, int64(16000), n)
	require.Equal(t, []int{pool.ChunkSize, pool.ChunkSize, pool.ChunkSize, 16000 - 3*pool.ChunkSize}, w.calls)

	out := w.Bytes()
	for i := 0; i < 2000; i++ {
		got := math.Float64frombits(binary.LittleEndian.Uint64(out[i*8:]))
		require.Equal(t, interleaved[2*i+1], got)
	}
}

func TestWriteSequence_OddWidthChunking(t *testing.T) {
	// Partial chunks still hold whole elements.
	values := make([]uint32, 1500)
	for i := range values {
		values[i] = uint32(i)
	}
	v := view.Adapt(values, func(x *uint32) uint32 { return *x })

	var w countingWriter
	n, err := WriteSequence(&w, v)
	require.NoError(t, err)
	require.Equal(t, int64(6000), n)
	for _, c := range w.calls {
		require.Zero(t, c%4)
	}
	require.Equal(t, uint32(1499), binary.LittleEndian.Uint32(w.Bytes()[5996:]))
}

func TestWriteSequence_ShortSequence(t *testing.T) {
	short := view.Seq(5, func(yield func(int32) bool) {
		for i := int32(0); i < 3; i++ {
			if !yield(i) {
				return
			}
		}
	})

	var w bytes.Buffer
	n, err := WriteSequence(&w, short)
	require.ErrorIs(t, err, errs.ErrShortSequence)
	require.Equal(t, int64(12), n)
}

func TestWriteSequence_StopsAtDeclaredLength(t *testing.T) {
	endless := view.Seq(3, func(yield func(uint8) bool) {
		for i := uint8(0); ; i++ {
			if !yield(i) {
				return
			}
		}
	})

	var w bytes.Buffer
	_, err := WriteSequence(&w, endless)
	require.NoError(t, err)
	require.Equal(t, []byte{0, 1, 2}, w.Bytes())
}

func TestWriteSequence_WriterError(t *testing.T) {
	data := make([]float64, 1024)
	v := view.Strided(data, 0, 1)

	_, err := WriteSequence(&failingWriter{after: pool.ChunkSize}, v)
	require.Error(t, err)
	require.Contains(t, err.Error(), "sink closed")
}

func TestAppendSequence(t *testing.T) {
	data := []float32{1.5, -2.25, 3}

	contiguous, err := AppendSequence([]byte{0xAA}, view.Slice(data))
	require.NoError(t, err)

	strided, err := AppendSequence([]byte{0xAA}, view.Strided(data, 0, 1))
	require.NoError(t, err)

	require.Equal(t, contiguous, strided, "fast and slow paths must agree")
	require.Len(t, contiguous, 13)
	require.Equal(t, byte(0xAA), contiguous[0])
	require.Equal(t, math.Float32bits(-2.25), binary.LittleEndian.Uint32(contiguous[5:]))
}

func TestFastPathMatchesHost(t *testing.T) {
	_, ok := bulkBytes[int32](view.Slice([]int32{1}))
	require.Equal(t, endian.MatchesDisk(), ok)

	_, ok = bulkBytes[int32](view.Strided([]int32{1}, 0, 1))
	require.False(t, ok)
}
