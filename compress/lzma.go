//go:build !vtkio_nolzma

package compress

import (
	"bytes"
	"fmt"
	"io"

	"github.com/arloliu/vtkio/format"
	"github.com/ulikunitz/xz"
)

func init() {
	register(NewLZMACompressor())
}

// LZMACompressor writes .xz streams with a CRC32 check, the format produced
// and read by vtkLZMADataCompressor.
type LZMACompressor struct{}

var _ Codec = (*LZMACompressor)(nil)

// NewLZMACompressor creates a new LZMA compressor.
func NewLZMACompressor() LZMACompressor {
	return LZMACompressor{}
}

// Type returns format.CompressionLZMA.
func (c LZMACompressor) Type() format.CompressionType {
	return format.CompressionLZMA
}

// ClassName returns "vtkLZMADataCompressor".
func (c LZMACompressor) ClassName() string {
	return "vtkLZMADataCompressor"
}

// Compress compresses data into a single .xz stream.
func (c LZMACompressor) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer

	cfg := xz.WriterConfig{CheckSum: xz.CRC32}
	w, err := cfg.NewWriter(&buf)
	if err != nil {
		return nil, fmt.Errorf("lzma compression failed: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("lzma compression failed: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("lzma compression failed: %w", err)
	}

	return buf.Bytes(), nil
}

// Decompress decodes a single .xz stream.
func (c LZMACompressor) Decompress(data []byte) ([]byte, error) {
	r, err := xz.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("lzma decompression failed: %w", err)
	}

	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("lzma decompression failed: %w", err)
	}

	return out, nil
}
