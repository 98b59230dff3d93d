package vtu

import (
	"testing"

	"github.com/arloliu/vtkio/encoding"
	"github.com/arloliu/vtkio/format"
	"github.com/stretchr/testify/require"
)

func TestLayoutOffsets(t *testing.T) {
	require.Empty(t, layoutOffsets(nil))
	require.Equal(t, []uint64{0}, layoutOffsets([]uint64{8}))
	require.Equal(t, []uint64{0, 80, 100, 112, 121}, layoutOffsets([]uint64{80, 20, 12, 9, 20}))
}

func TestNewPlan_Uncompressed(t *testing.T) {
	blocks := []*block{
		newBlock("a", encoding.Of([]float64{1, 2, 3}), 3),
		newBlock("b", encoding.Of([]uint8{}), 1),
		newBlock("c", encoding.Of([]int16{1, 2}), 2),
	}

	p, err := newPlan(blocks, format.CompressionNone)
	require.NoError(t, err)
	require.False(t, p.compressed())
	require.Empty(t, p.fallback)
	require.Equal(t, []uint64{32, 8, 12}, p.stored)
	require.Equal(t, []uint64{0, 32, 40}, p.offsets)
	require.Equal(t, uint64(52), p.payloadSize())
	require.Equal(t, uint64(40), p.offsetOf(blocks[2]))
}

func TestNewPlan_CompressedOffsetsFollowCompressedSizes(t *testing.T) {
	w, _ := newTestWriter(t)
	spiral(t, w, 300)

	for _, ct := range []format.CompressionType{format.CompressionZLib, format.CompressionLZ4, format.CompressionLZMA} {
		p, err := newPlan(w.orderedBlocks(), ct)
		require.NoError(t, err)
		if !p.compressed() {
			require.NotEmpty(t, p.fallback, ct.String())
			continue
		}

		var running uint64
		for i, e := range p.entries {
			require.Equal(t, running, p.offsets[i])
			require.Equal(t, p.blocks[i].byteLen(), e.originalSize)
			running += 32 + uint64(len(e.compressed))
		}
		require.Equal(t, running, p.payloadSize())
	}
}
