package section

import (
	"fmt"

	"github.com/arloliu/vtkio/encoding"
	"github.com/arloliu/vtkio/endian"
	"github.com/arloliu/vtkio/errs"
)

// SizeHeader prefixes an uncompressed block with its byte length.
type SizeHeader struct {
	Size uint64
}

// Append appends the encoded header to dst.
func (h SizeHeader) Append(dst []byte) []byte {
	return encoding.AppendScalar(dst, h.Size)
}

// Bytes returns the encoded header.
func (h SizeHeader) Bytes() []byte {
	return h.Append(make([]byte, 0, SizeHeaderSize))
}

// ParseSizeHeader decodes a SizeHeader from the start of data.
func ParseSizeHeader(data []byte) (SizeHeader, error) {
	if len(data) < SizeHeaderSize {
		return SizeHeader{}, fmt.Errorf("%w: need %d bytes, got %d", errs.ErrInvalidBlockHeader, SizeHeaderSize, len(data))
	}

	return SizeHeader{Size: endian.Disk().Uint64(data)}, nil
}

// CompressedHeader prefixes a compressed block.
type CompressedHeader struct {
	// Blocks is the number of compression blocks; always 1 when written by this module.
	Blocks uint64
	// BlockSize is the uncompressed size of a full block.
	BlockSize uint64
	// LastBlockSize is the uncompressed size of the last block.
	LastBlockSize uint64
	// CompressedSize is the length of the compressed bytes that follow.
	CompressedSize uint64
}

// NewCompressedHeader returns the header of a single-block array whose
// original length is originalSize and compressed length is compressedSize.
func NewCompressedHeader(originalSize, compressedSize uint64) CompressedHeader {
	return CompressedHeader{
		Blocks:         1,
		BlockSize:      originalSize,
		LastBlockSize:  originalSize,
		CompressedSize: compressedSize,
	}
}

// Append appends the four encoded fields to dst.
func (h CompressedHeader) Append(dst []byte) []byte {
	dst = encoding.AppendScalar(dst, h.Blocks)
	dst = encoding.AppendScalar(dst, h.BlockSize)
	dst = encoding.AppendScalar(dst, h.LastBlockSize)

	return encoding.AppendScalar(dst, h.CompressedSize)
}

// Bytes returns the encoded header.
func (h CompressedHeader) Bytes() []byte {
	return h.Append(make([]byte, 0, CompressedHeaderSize))
}

// OriginalSize returns the total uncompressed length described by the header.
func (h CompressedHeader) OriginalSize() uint64 {
	if h.Blocks == 0 {
		return 0
	}

	return (h.Blocks-1)*h.BlockSize + h.LastBlockSize
}

// ParseCompressedHeader decodes a single-block CompressedHeader from the start of data.
//
// Multi-block headers carry one compressed size per block and are rejected,
// since this module never writes them.
func ParseCompressedHeader(data []byte) (CompressedHeader, error) {
	if len(data) < CompressedHeaderSize {
		return CompressedHeader{}, fmt.Errorf("%w: need %d bytes, got %d", errs.ErrInvalidBlockHeader, CompressedHeaderSize, len(data))
	}

	engine := endian.Disk()
	h := CompressedHeader{
		Blocks:         engine.Uint64(data[0:8]),
		BlockSize:      engine.Uint64(data[8:16]),
		LastBlockSize:  engine.Uint64(data[16:24]),
		CompressedSize: engine.Uint64(data[24:32]),
	}
	if h.Blocks != 1 {
		return CompressedHeader{}, fmt.Errorf("%w: %d compression blocks", errs.ErrInvalidBlockHeader, h.Blocks)
	}

	return h, nil
}
