package vtu

import (
	"bytes"
	"encoding/binary"
	"encoding/xml"
	"testing"

	"github.com/arloliu/vtkio/compress"
	"github.com/arloliu/vtkio/encoding"
	"github.com/arloliu/vtkio/format"
	"github.com/arloliu/vtkio/section"
	"github.com/stretchr/testify/require"
)

type dataArrayXML struct {
	Type       string `xml:"type,attr"`
	Name       string `xml:"Name,attr"`
	Components int    `xml:"NumberOfComponents,attr"`
	Format     string `xml:"format,attr"`
	Offset     uint64 `xml:"offset,attr"`
}

type groupXML struct {
	Arrays []dataArrayXML `xml:"DataArray"`
}

type documentXML struct {
	XMLName    xml.Name `xml:"VTKFile"`
	Type       string   `xml:"type,attr"`
	Version    string   `xml:"version,attr"`
	ByteOrder  string   `xml:"byte_order,attr"`
	HeaderType string   `xml:"header_type,attr"`
	Compressor *string  `xml:"compressor,attr"`
	Piece      struct {
		NumberOfPoints int       `xml:"NumberOfPoints,attr"`
		NumberOfCells  int       `xml:"NumberOfCells,attr"`
		Points         groupXML  `xml:"Points"`
		Cells          groupXML  `xml:"Cells"`
		PointData      *groupXML `xml:"PointData"`
		CellData       *groupXML `xml:"CellData"`
	} `xml:"UnstructuredGrid>Piece"`
}

// arrays returns every DataArray in payload order.
func (d documentXML) arrays() []dataArrayXML {
	out := append([]dataArrayXML{}, d.Piece.Points.Arrays...)
	out = append(out, d.Piece.Cells.Arrays...)
	if d.Piece.PointData != nil {
		out = append(out, d.Piece.PointData.Arrays...)
	}
	if d.Piece.CellData != nil {
		out = append(out, d.Piece.CellData.Arrays...)
	}

	return out
}

func (d documentXML) array(t *testing.T, name string) dataArrayXML {
	t.Helper()
	for _, a := range d.arrays() {
		if a.Name == name {
			return a
		}
	}
	require.Failf(t, "array not found", "no DataArray named %q", name)

	return dataArrayXML{}
}

const payloadStart = `<AppendedData encoding="raw">_`

// splitDocument parses the header of a written file and returns it with the
// raw payload between the marker and the trailer.
func splitDocument(t *testing.T, data []byte) (documentXML, []byte) {
	t.Helper()

	idx := bytes.Index(data, []byte(payloadStart))
	require.GreaterOrEqual(t, idx, 0, "missing appended data marker")
	require.True(t, bytes.HasSuffix(data, []byte(trailer)), "missing trailer")

	header := append(bytes.TrimRight(data[:idx:idx], " "), "</VTKFile>"...)
	var doc documentXML
	require.NoError(t, xml.Unmarshal(header, &doc))

	return doc, data[idx+len(payloadStart) : len(data)-len(trailer)]
}

// readBlock seeks to offset in payload and returns the decoded array bytes.
// A nil codec reads an uncompressed block.
func readBlock(t *testing.T, payload []byte, offset uint64, codec compress.Codec) []byte {
	t.Helper()
	require.Less(t, offset, uint64(len(payload))+1)
	rest := payload[offset:]

	if codec == nil {
		h, err := section.ParseSizeHeader(rest)
		require.NoError(t, err)
		require.LessOrEqual(t, section.SizeHeaderSize+h.Size, uint64(len(rest)))

		return rest[section.SizeHeaderSize : section.SizeHeaderSize+h.Size]
	}

	h, err := section.ParseCompressedHeader(rest)
	require.NoError(t, err)
	end := section.CompressedHeaderSize + h.CompressedSize
	require.LessOrEqual(t, end, uint64(len(rest)))
	if h.OriginalSize() == 0 {
		return []byte{}
	}

	out, err := codec.Decompress(rest[section.CompressedHeaderSize:end])
	require.NoError(t, err)
	require.Len(t, out, int(h.OriginalSize()))

	return out
}

func decodeValues[T format.Scalar](t *testing.T, raw []byte) []T {
	t.Helper()
	size := format.TypeOf[T]().Size()
	require.Zero(t, len(raw)%size)

	out := make([]T, len(raw)/size)
	require.NoError(t, binary.Read(bytes.NewReader(raw), binary.LittleEndian, out))

	return out
}

func materialize(t *testing.T, acc encoding.Accessor) []byte {
	t.Helper()
	out, err := acc.AppendTo(nil)
	require.NoError(t, err)

	return out
}

// triangle registers the single-triangle mesh used across tests.
func triangle(t *testing.T, w *Writer) {
	t.Helper()
	require.NoError(t, w.SetPoints(encoding.Of([]float64{0, 0, 0, 1, 0, 0, 0, 1, 0})))
	require.NoError(t, w.SetCells(
		encoding.Of([]int32{0, 1, 2}),
		encoding.Of([]int32{3}),
		encoding.Of([]format.CellType{format.CellTriangle}),
	))
	require.NoError(t, w.AddPointData("ScalarField", encoding.Of([]float32{1.1, 2.2, 3.3}), 1))
}

// spiral registers a polyline large enough for every codec to shrink it.
func spiral(t *testing.T, w *Writer, n int) {
	t.Helper()

	points := make([]float64, 0, 3*n)
	conn := make([]int32, 0, n)
	sine := make([]float64, 0, n)
	ids := make([]int64, 0, n)
	for i := range n {
		x := float64(i) * 0.1
		points = append(points, x, 2*x, x)
		conn = append(conn, int32(i))
		sine = append(sine, float64(i%17))
		ids = append(ids, int64(i))
	}

	require.NoError(t, w.SetPoints(encoding.Of(points)))
	require.NoError(t, w.SetCells(
		encoding.Of(conn),
		encoding.Of([]int32{int32(n)}),
		encoding.Of([]format.CellType{format.CellPolyLine}),
	))
	require.NoError(t, w.AddPointData("SineWave", encoding.Of(sine), 1))
	require.NoError(t, w.AddPointData("ID", encoding.Of(ids), 1))
	require.NoError(t, w.AddCellData("Length", encoding.Of([]float32{float32(n)}), 1))
}
