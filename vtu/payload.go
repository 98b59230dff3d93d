package vtu

import (
	"io"

	"github.com/arloliu/vtkio/section"
	"github.com/pkg/errors"
)

const trailer = "</AppendedData>\n</VTKFile>\n"

// writePayload writes every block of p in order. Compressed blocks are
// written from the bytes produced by newPlan; uncompressed blocks stream
// straight from their accessors.
func writePayload(w io.Writer, p *plan) error {
	var hdr [section.CompressedHeaderSize]byte

	for i, b := range p.blocks {
		if p.compressed() {
			e := p.entries[i]
			h := section.NewCompressedHeader(e.originalSize, uint64(len(e.compressed)))
			if _, err := w.Write(h.Append(hdr[:0])); err != nil {
				return errors.Wrapf(err, "write header of array %q", b.name)
			}
			if _, err := w.Write(e.compressed); err != nil {
				return errors.Wrapf(err, "write array %q", b.name)
			}

			continue
		}

		size := b.byteLen()
		h := section.SizeHeader{Size: size}
		if _, err := w.Write(h.Append(hdr[:0])); err != nil {
			return errors.Wrapf(err, "write header of array %q", b.name)
		}
		n, err := b.acc.WriteTo(w)
		if err != nil {
			return errors.Wrapf(err, "write array %q", b.name)
		}
		if uint64(n) != size {
			return errors.Errorf("write array %q: wrote %d of %d bytes", b.name, n, size)
		}
	}

	return nil
}

func writeTrailer(w io.Writer) error {
	_, err := io.WriteString(w, trailer)
	return errors.Wrap(err, "write trailer")
}
