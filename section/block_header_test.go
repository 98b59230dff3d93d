package section

import (
	"testing"

	"github.com/arloliu/vtkio/errs"
	"github.com/stretchr/testify/require"
)

func TestSizeHeader(t *testing.T) {
	h := SizeHeader{Size: 72}
	b := h.Bytes()

	require.Len(t, b, SizeHeaderSize)
	require.Equal(t, []byte{72, 0, 0, 0, 0, 0, 0, 0}, b)

	parsed, err := ParseSizeHeader(append(b, 0xFF))
	require.NoError(t, err)
	require.Equal(t, h, parsed)

	_, err = ParseSizeHeader(b[:7])
	require.ErrorIs(t, err, errs.ErrInvalidBlockHeader)
}

func TestSizeHeader_Append(t *testing.T) {
	dst := []byte{0xAB}
	dst = SizeHeader{Size: 0x0102}.Append(dst)
	require.Equal(t, []byte{0xAB, 0x02, 0x01, 0, 0, 0, 0, 0, 0}, dst)
}

func TestCompressedHeader(t *testing.T) {
	h := NewCompressedHeader(800, 123)
	require.Equal(t, uint64(1), h.Blocks)
	require.Equal(t, uint64(800), h.BlockSize)
	require.Equal(t, uint64(800), h.LastBlockSize)
	require.Equal(t, uint64(123), h.CompressedSize)
	require.Equal(t, uint64(800), h.OriginalSize())

	b := h.Bytes()
	require.Len(t, b, CompressedHeaderSize)
	require.Equal(t, []byte{
		1, 0, 0, 0, 0, 0, 0, 0,
		0x20, 0x03, 0, 0, 0, 0, 0, 0,
		0x20, 0x03, 0, 0, 0, 0, 0, 0,
		123, 0, 0, 0, 0, 0, 0, 0,
	}, b)

	parsed, err := ParseCompressedHeader(b)
	require.NoError(t, err)
	require.Equal(t, h, parsed)
}

func TestParseCompressedHeader_Invalid(t *testing.T) {
	_, err := ParseCompressedHeader(make([]byte, 31))
	require.ErrorIs(t, err, errs.ErrInvalidBlockHeader)

	multi := CompressedHeader{Blocks: 2, BlockSize: 10, LastBlockSize: 5, CompressedSize: 9}
	_, err = ParseCompressedHeader(multi.Bytes())
	require.ErrorIs(t, err, errs.ErrInvalidBlockHeader)
	require.Equal(t, uint64(15), multi.OriginalSize())

	require.Zero(t, CompressedHeader{}.OriginalSize())
}
