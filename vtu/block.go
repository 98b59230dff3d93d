package vtu

import (
	"github.com/arloliu/vtkio/encoding"
	"github.com/arloliu/vtkio/format"
	"github.com/arloliu/vtkio/section"
)

// Fixed names of the geometry and topology arrays.
const (
	pointsName       = "Points"
	connectivityName = "connectivity"
	offsetsName      = "offsets"
	typesName        = "types"
)

// block is one registered array and the metadata written to its DataArray element.
type block struct {
	acc        encoding.Accessor
	name       string
	typ        format.ScalarType
	components int
	// offset is the uncompressed position, recomputed on every registration.
	offset uint64
}

func newBlock(name string, acc encoding.Accessor, components int) *block {
	return &block{
		acc:        acc,
		name:       name,
		typ:        acc.Type(),
		components: components,
	}
}

func (b *block) byteLen() uint64 {
	return b.acc.ByteLen()
}

// rawStoredSize is the block's footprint in an uncompressed payload.
func (b *block) rawStoredSize() uint64 {
	return section.SizeHeaderSize + b.byteLen()
}

// orderedBlocks returns the registered blocks in payload order.
func (w *Writer) orderedBlocks() []*block {
	blocks := make([]*block, 0, 4+len(w.pointData)+len(w.cellData))
	for _, b := range []*block{w.points, w.connectivity, w.offsets, w.types} {
		if b != nil {
			blocks = append(blocks, b)
		}
	}
	blocks = append(blocks, w.pointData...)
	blocks = append(blocks, w.cellData...)

	return blocks
}

// relayout recomputes the provisional offsets of every registered block.
func (w *Writer) relayout() {
	blocks := w.orderedBlocks()
	sizes := make([]uint64, len(blocks))
	for i, b := range blocks {
		sizes[i] = b.rawStoredSize()
	}

	offsets := layoutOffsets(sizes)
	for i, b := range blocks {
		b.offset = offsets[i]
	}

	w.nextOffset = 0
	if n := len(blocks); n > 0 {
		w.nextOffset = offsets[n-1] + sizes[n-1]
	}
}
