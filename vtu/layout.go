package vtu

import (
	"fmt"

	"github.com/arloliu/vtkio/compress"
	"github.com/arloliu/vtkio/errs"
	"github.com/arloliu/vtkio/format"
	"github.com/arloliu/vtkio/internal/pool"
	"github.com/arloliu/vtkio/section"
	"github.com/pkg/errors"
)

// codecLookup resolves compression codecs; tests replace it to inject failures.
var codecLookup = compress.GetCodec

// planEntry is the compressed form of one block.
type planEntry struct {
	originalSize uint64
	compressed   []byte
}

// plan is the final layout of one Write call.
//
// blocks, offsets and (when compressing) entries are index-aligned and in
// payload order.
type plan struct {
	blocks    []*block
	offsets   []uint64
	stored    []uint64
	entries   []planEntry
	codec     compress.Codec
	requested format.CompressionType
	// fallback is non-empty when compression was requested but not applied.
	fallback string
}

func (p *plan) compressed() bool {
	return p.codec != nil
}

func (p *plan) payloadSize() uint64 {
	var total uint64
	for _, s := range p.stored {
		total += s
	}

	return total
}

// offsetOf returns the final offset of b.
func (p *plan) offsetOf(b *block) uint64 {
	for i, pb := range p.blocks {
		if pb == b {
			return p.offsets[i]
		}
	}

	return 0
}

// layoutOffsets returns the running offsets of consecutive blocks whose
// stored sizes (header included) are given.
func layoutOffsets(stored []uint64) []uint64 {
	offsets := make([]uint64, len(stored))

	var running uint64
	for i, size := range stored {
		offsets[i] = running
		running += size
	}

	return offsets
}

// newPlan computes the layout for blocks under the requested compression.
//
// An unavailable codec, or a codec that cannot compress some block, leaves
// the whole document uncompressed; the reason is recorded in plan.fallback.
// Only materialization failures are returned as errors.
func newPlan(blocks []*block, requested format.CompressionType) (*plan, error) {
	p := &plan{blocks: blocks, requested: requested}

	if requested != format.CompressionNone {
		codec, err := codecLookup(requested)
		if err == nil {
			var entries []planEntry
			entries, err = compressBlocks(blocks, codec)
			if err == nil {
				p.codec = codec
				p.entries = entries
			} else if !errors.Is(err, errs.ErrCompressionFailed) {
				return nil, err
			}
		}
		if err != nil {
			p.fallback = err.Error()
		}
	}

	p.stored = make([]uint64, len(blocks))
	for i, b := range blocks {
		if p.compressed() {
			p.stored[i] = section.CompressedHeaderSize + uint64(len(p.entries[i].compressed))
		} else {
			p.stored[i] = b.rawStoredSize()
		}
	}
	p.offsets = layoutOffsets(p.stored)

	return p, nil
}

// compressBlocks materializes and compresses every block in order.
func compressBlocks(blocks []*block, codec compress.Compressor) ([]planEntry, error) {
	buf := pool.GetBlockBuffer()
	defer pool.PutBlockBuffer(buf)

	entries := make([]planEntry, len(blocks))
	for i, b := range blocks {
		buf.Reset()
		data, err := b.acc.AppendTo(buf.B)
		if err != nil {
			return nil, errors.Wrapf(err, "materialize array %q", b.name)
		}
		buf.B = data

		out, err := codec.Compress(data)
		if err != nil {
			return nil, fmt.Errorf("%w: array %q: %v", errs.ErrCompressionFailed, b.name, err)
		}
		if len(out) == 0 && len(data) > 0 {
			return nil, fmt.Errorf("%w: array %q: codec produced no output", errs.ErrCompressionFailed, b.name)
		}

		entries[i] = planEntry{originalSize: uint64(len(data)), compressed: out}
	}

	return entries, nil
}
