package vtu

import "github.com/arloliu/vtkio/format"

// BlockReport describes one array as it was written.
type BlockReport struct {
	Name       string            `json:"name"`
	Type       format.ScalarType `json:"type"`
	Components int               `json:"components"`
	// Offset is the value of the DataArray offset attribute.
	Offset uint64 `json:"offset"`
	// RawSize is the uncompressed length of the array data.
	RawSize uint64 `json:"raw_size"`
	// StoredSize is the length of the block in the payload, header included.
	StoredSize uint64 `json:"stored_size"`
}

// Report summarizes a completed write.
type Report struct {
	// Path is empty for WriteTo.
	Path           string `json:"path,omitempty"`
	NumberOfPoints int    `json:"number_of_points"`
	NumberOfCells  int    `json:"number_of_cells"`

	Requested   format.CompressionType `json:"requested"`
	Compression format.CompressionType `json:"compression"`
	// Compressor is the compressor attribute of the document root, empty when uncompressed.
	Compressor string `json:"compressor,omitempty"`
	// Fallback reports that compression was requested but the file was written uncompressed.
	Fallback       bool   `json:"fallback"`
	FallbackReason string `json:"fallback_reason,omitempty"`

	Blocks []BlockReport `json:"blocks"`
	// PayloadBytes is the length of the data between the '_' marker and </AppendedData>.
	PayloadBytes uint64 `json:"payload_bytes"`
	// TotalBytes is the length of the whole file.
	TotalBytes int64 `json:"total_bytes"`
	// Checksum is the xxHash64 of the whole file.
	Checksum uint64 `json:"checksum"`
}

// RawBytes returns the sum of the uncompressed array lengths.
func (r Report) RawBytes() uint64 {
	var total uint64
	for _, b := range r.Blocks {
		total += b.RawSize
	}

	return total
}

func (w *Writer) newReport(p *plan) Report {
	r := Report{
		NumberOfPoints: w.numberOfPoints,
		NumberOfCells:  w.numberOfCells,
		Requested:      p.requested,
		Compression:    format.CompressionNone,
		Fallback:       p.fallback != "",
		FallbackReason: p.fallback,
		Blocks:         make([]BlockReport, len(p.blocks)),
		PayloadBytes:   p.payloadSize(),
	}
	if p.compressed() {
		r.Compression = p.codec.Type()
		r.Compressor = p.codec.ClassName()
	}

	for i, b := range p.blocks {
		r.Blocks[i] = BlockReport{
			Name:       b.name,
			Type:       b.typ,
			Components: b.components,
			Offset:     p.offsets[i],
			RawSize:    b.byteLen(),
			StoredSize: p.stored[i],
		}
	}

	return r
}
