// Package vtkio writes unstructured meshes in the VTK XML appended binary
// format (.vtu) and indexes time series of them in ParaView collections (.pvd).
//
// Arrays are registered by reference: the writer never copies caller data
// except to compress it, and streams little-endian bytes straight from the
// caller's slices when the host byte order allows it.
//
// # Core Features
//
//   - Zero-copy registration of slices, strided views, struct field projections
//     and iterator-backed sequences
//   - All ten VTK scalar types (Int8 through Float64), checked at compile time
//   - Optional payload compression (ZLib, LZ4, LZMA) with deterministic
//     fallback to an uncompressed payload
//   - Atomic file replacement and an xxHash64 checksum of every written file
//   - Time-series collections with auto-save
//
// # Basic Usage
//
//	w, _ := vtkio.NewWriter()
//	_ = vtkio.SetPoints(w, []float64{0, 0, 0, 1, 0, 0, 0, 1, 0})
//	_ = vtkio.SetCells(w, []int32{0, 1, 2}, []int32{3}, []format.CellType{format.CellTriangle})
//	_ = vtkio.AddPointData(w, "Temperature", []float32{280, 290, 300}, 1)
//	report, err := w.Write("triangle.vtu")
//
// Time series:
//
//	series, _ := vtkio.NewSeries("run.pvd", pvd.WithAutoSave(true))
//	for step := range steps {
//	    name := fmt.Sprintf("run_%d.vtu", step)
//	    // ... register arrays and w.Write(name) ...
//	    _ = series.AddStep(float64(step)*dt, name)
//	}
//
// # Package Structure
//
// This package provides typed convenience wrappers. The vtu and pvd packages
// hold the writers; view and encoding provide the array adapters for data
// that does not live in a plain slice.
package vtkio

import (
	"github.com/arloliu/vtkio/encoding"
	"github.com/arloliu/vtkio/format"
	"github.com/arloliu/vtkio/pvd"
	"github.com/arloliu/vtkio/vtu"
)

// NewWriter creates a .vtu writer. Without options the payload is
// uncompressed and files are replaced atomically.
func NewWriter(opts ...vtu.WriterOption) (*vtu.Writer, error) {
	return vtu.NewWriter(opts...)
}

// NewCompressedWriter creates a .vtu writer whose payload is compressed with ct.
//
// Example:
//
//	w, err := vtkio.NewCompressedWriter(format.CompressionZLib)
func NewCompressedWriter(ct format.CompressionType, opts ...vtu.WriterOption) (*vtu.Writer, error) {
	return vtu.NewWriter(append([]vtu.WriterOption{vtu.WithCompression(ct)}, opts...)...)
}

// NewSeries creates a .pvd collection writer for path.
func NewSeries(path string, opts ...pvd.Option) (*pvd.Writer, error) {
	return pvd.NewWriter(path, opts...)
}

// SetPoints registers x,y,z point coordinates stored in points.
func SetPoints[T format.Scalar](w *vtu.Writer, points []T) error {
	return w.SetPoints(encoding.Of(points))
}

// SetCells registers the cell topology. connectivity and offsets may use
// different integer widths.
func SetCells[C, O format.Scalar](w *vtu.Writer, connectivity []C, offsets []O, types []format.CellType) error {
	return w.SetCells(encoding.Of(connectivity), encoding.Of(offsets), encoding.Of(types))
}

// AddPointData registers a per-point attribute.
func AddPointData[T format.Scalar](w *vtu.Writer, name string, data []T, components int) error {
	return w.AddPointData(name, encoding.Of(data), components)
}

// AddCellData registers a per-cell attribute.
func AddCellData[T format.Scalar](w *vtu.Writer, name string, data []T, components int) error {
	return w.AddCellData(name, encoding.Of(data), components)
}
