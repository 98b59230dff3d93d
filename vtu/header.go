package vtu

import (
	"github.com/arloliu/vtkio/endian"
	"github.com/arloliu/vtkio/internal/markup"
	"github.com/arloliu/vtkio/section"
)

const appendedDataMarker = "_"

// writeHeader emits everything up to and including the payload marker.
// The VTKFile and AppendedData elements are left open; writeTrailer closes them.
func (w *Writer) writeHeader(b *markup.Builder, p *plan) error {
	root := b.Element("VTKFile").
		Attr("type", "UnstructuredGrid").
		Attr("version", "1.0").
		Attr("byte_order", endian.ByteOrderName).
		Attr("header_type", section.HeaderTypeName)
	if p.compressed() {
		root.Attr("compressor", p.codec.ClassName())
	}

	err := b.Within("UnstructuredGrid", func(*markup.Element) error {
		return b.Within("Piece", func(piece *markup.Element) error {
			piece.Attr("NumberOfPoints", w.numberOfPoints).
				Attr("NumberOfCells", w.numberOfCells)

			w.writeGroup(b, p, "Points", w.points)
			w.writeGroup(b, p, "Cells", w.connectivity, w.offsets, w.types)
			if len(w.pointData) > 0 {
				w.writeGroup(b, p, "PointData", w.pointData...)
			}
			if len(w.cellData) > 0 {
				w.writeGroup(b, p, "CellData", w.cellData...)
			}

			return nil
		})
	})
	if err != nil {
		return err
	}

	b.Open("AppendedData")
	b.Attr("encoding", "raw")
	b.Raw(">" + appendedDataMarker)

	return b.Err()
}

func (w *Writer) writeGroup(b *markup.Builder, p *plan, name string, blocks ...*block) {
	group := b.Element(name)
	defer group.Close()

	for _, blk := range blocks {
		if blk == nil {
			continue
		}
		b.Element("DataArray").
			Attr("type", blk.typ.Name()).
			Attr("Name", blk.name).
			Attr("NumberOfComponents", blk.components).
			Attr("format", "appended").
			Attr("offset", p.offsetOf(blk)).
			Close()
	}
}
