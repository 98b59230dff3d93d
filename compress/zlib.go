//go:build !vtkio_nozlib

package compress

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/arloliu/vtkio/format"
	"github.com/klauspost/compress/zlib"
)

func init() {
	register(NewZLibCompressor())
}

// zlibWriterPool pools zlib writers; Reset rebinds them to a new output buffer.
var zlibWriterPool = sync.Pool{
	New: func() any {
		w, err := zlib.NewWriterLevel(nil, zlib.DefaultCompression)
		if err != nil {
			panic(fmt.Sprintf("failed to create zlib writer for pool: %v", err))
		}

		return w
	},
}

// ZLibCompressor writes zlib streams (RFC 1950), the format read by
// vtkZLibDataCompressor.
type ZLibCompressor struct{}

var _ Codec = (*ZLibCompressor)(nil)

// NewZLibCompressor creates a new zlib compressor at the default level.
func NewZLibCompressor() ZLibCompressor {
	return ZLibCompressor{}
}

// Type returns format.CompressionZLib.
func (c ZLibCompressor) Type() format.CompressionType {
	return format.CompressionZLib
}

// ClassName returns "vtkZLibDataCompressor".
func (c ZLibCompressor) ClassName() string {
	return "vtkZLibDataCompressor"
}

// Compress compresses data into one complete zlib stream.
//
// Empty input still yields a valid (non-empty) stream.
func (c ZLibCompressor) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(len(data)/2 + 64)

	w, _ := zlibWriterPool.Get().(*zlib.Writer)
	defer zlibWriterPool.Put(w)
	w.Reset(&buf)

	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("zlib compression failed: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("zlib compression failed: %w", err)
	}

	return buf.Bytes(), nil
}

// Decompress inflates one zlib stream.
func (c ZLibCompressor) Decompress(data []byte) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("zlib decompression failed: %w", err)
	}
	defer r.Close()

	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("zlib decompression failed: %w", err)
	}

	return out, nil
}
