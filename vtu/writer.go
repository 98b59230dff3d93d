package vtu

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/arloliu/vtkio/encoding"
	"github.com/arloliu/vtkio/errs"
	"github.com/arloliu/vtkio/format"
	"github.com/arloliu/vtkio/internal/atomicfile"
	"github.com/arloliu/vtkio/internal/hash"
	"github.com/arloliu/vtkio/internal/markup"
	"github.com/arloliu/vtkio/internal/options"
	"github.com/arloliu/vtkio/internal/pool"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Writer assembles one unstructured grid and writes it as a .vtu file.
type Writer struct {
	cfg writerConfig

	points       *block
	connectivity *block
	offsets      *block
	types        *block
	pointData    []*block
	cellData     []*block

	numberOfPoints int
	numberOfCells  int
	// nextOffset is the uncompressed payload size of the registered blocks.
	nextOffset uint64
}

// NewWriter creates a Writer with no arrays registered.
func NewWriter(opts ...WriterOption) (*Writer, error) {
	w := &Writer{cfg: defaultConfig()}
	if err := options.Apply(w, opts...); err != nil {
		return nil, err
	}

	return w, nil
}

// SetPoints registers the point coordinates as x,y,z triples, replacing any
// previous points. Its length must be a multiple of 3.
func (w *Writer) SetPoints(points encoding.Accessor) error {
	if points == nil {
		return fmt.Errorf("points: %w", errs.ErrNilArray)
	}
	if points.Len()%3 != 0 {
		return fmt.Errorf("%w: %d values", errs.ErrInvalidPointCount, points.Len())
	}

	w.points = newBlock(pointsName, points, 3)
	w.numberOfPoints = points.Len() / 3
	w.relayout()

	return nil
}

// SetCells registers the cell topology, replacing any previous topology.
//
// connectivity lists the point indices of all cells back to back; offsets
// holds the end position of each cell in connectivity and types its VTK cell
// type. offsets and types must have the same length. Indices are not checked
// against the number of points.
func (w *Writer) SetCells(connectivity, offsets, types encoding.Accessor) error {
	switch {
	case connectivity == nil:
		return fmt.Errorf("%s: %w", connectivityName, errs.ErrNilArray)
	case offsets == nil:
		return fmt.Errorf("%s: %w", offsetsName, errs.ErrNilArray)
	case types == nil:
		return fmt.Errorf("%s: %w", typesName, errs.ErrNilArray)
	}
	if offsets.Len() != types.Len() {
		return fmt.Errorf("%w: %d offsets, %d types", errs.ErrSizeMismatch, offsets.Len(), types.Len())
	}

	w.connectivity = newBlock(connectivityName, connectivity, 1)
	w.offsets = newBlock(offsetsName, offsets, 1)
	w.types = newBlock(typesName, types, 1)
	w.numberOfCells = types.Len()
	w.relayout()

	return nil
}

// AddPointData registers a named per-point attribute with the given number
// of components per tuple.
func (w *Writer) AddPointData(name string, data encoding.Accessor, components int) error {
	b, err := newAttributeBlock(name, data, components)
	if err != nil {
		return err
	}

	w.pointData = append(w.pointData, b)
	w.relayout()

	return nil
}

// AddCellData registers a named per-cell attribute with the given number of
// components per tuple.
func (w *Writer) AddCellData(name string, data encoding.Accessor, components int) error {
	b, err := newAttributeBlock(name, data, components)
	if err != nil {
		return err
	}

	w.cellData = append(w.cellData, b)
	w.relayout()

	return nil
}

func newAttributeBlock(name string, data encoding.Accessor, components int) (*block, error) {
	if name == "" {
		return nil, errs.ErrEmptyArrayName
	}
	if data == nil {
		return nil, fmt.Errorf("%s: %w", name, errs.ErrNilArray)
	}
	if components < 1 {
		return nil, fmt.Errorf("%w: %s has %d", errs.ErrInvalidComponentCount, name, components)
	}
	if data.Len()%components != 0 {
		return nil, fmt.Errorf("%w: %s has %d values for %d components", errs.ErrInvalidComponentCount, name, data.Len(), components)
	}

	return newBlock(name, data, components), nil
}

// SetCompression selects the codec for subsequent writes.
func (w *Writer) SetCompression(ct format.CompressionType) {
	w.cfg.compression = ct
}

// Compression returns the requested codec.
func (w *Writer) Compression() format.CompressionType {
	return w.cfg.compression
}

// NumberOfPoints returns the number of registered points.
func (w *Writer) NumberOfPoints() int {
	return w.numberOfPoints
}

// NumberOfCells returns the number of registered cells.
func (w *Writer) NumberOfCells() int {
	return w.numberOfCells
}

// Reset drops every registered array and keeps the configuration, so the
// writer can be reused for the next step of a series.
func (w *Writer) Reset() {
	cfg := w.cfg
	*w = Writer{cfg: cfg}
}

// Write writes the grid to path.
//
// With atomic writes enabled (the default) the file is written next to path
// under a temporary name and renamed over path only after every byte was
// written, so a failed Write leaves any existing file untouched.
func (w *Writer) Write(path string) (Report, error) {
	if !w.cfg.atomic {
		return w.writeDirect(path)
	}

	var report Report
	err := atomicfile.WriteFile(path, 0o644, func(f io.Writer) error {
		var err error
		report, err = w.writeTo(f, path)

		return err
	})
	if err != nil {
		return Report{}, err
	}

	return report, nil
}

func (w *Writer) writeDirect(path string) (Report, error) {
	f, err := os.Create(path)
	if err != nil {
		return Report{}, errors.Wrapf(err, "create %s", path)
	}

	report, err := w.writeTo(f, path)
	if cerr := f.Close(); err == nil && cerr != nil {
		err = errors.Wrapf(cerr, "close %s", path)
	}
	if err != nil {
		return Report{}, err
	}

	return report, nil
}

// WriteTo writes the grid to dst. The Report's Path is empty.
func (w *Writer) WriteTo(dst io.Writer) (Report, error) {
	return w.writeTo(dst, "")
}

func (w *Writer) writeTo(dst io.Writer, path string) (Report, error) {
	p, err := newPlan(w.orderedBlocks(), w.cfg.compression)
	if err != nil {
		return Report{}, err
	}
	if p.fallback != "" {
		w.cfg.logger.WithFields(logrus.Fields{
			"requested": p.requested.String(),
			"reason":    p.fallback,
		}).Warn("compression disabled, writing uncompressed payload")
	}

	sum := hash.NewSumWriter(dst)
	bw := bufio.NewWriterSize(sum, pool.BlockBufferDefaultSize)

	if err := w.writeHeader(markup.New(bw, w.cfg.indent), p); err != nil {
		return Report{}, errors.Wrap(err, "write header")
	}
	if err := writePayload(bw, p); err != nil {
		return Report{}, err
	}
	if err := writeTrailer(bw); err != nil {
		return Report{}, err
	}
	if err := bw.Flush(); err != nil {
		return Report{}, errors.Wrap(err, "flush")
	}

	report := w.newReport(p)
	report.Path = path
	report.TotalBytes = sum.Count()
	report.Checksum = sum.Sum64()

	w.cfg.logger.WithFields(logrus.Fields{
		"path":        path,
		"blocks":      len(report.Blocks),
		"compression": report.Compression.String(),
		"bytes":       report.TotalBytes,
		"checksum":    fmt.Sprintf("%016x", report.Checksum),
	}).Debug("vtu written")

	return report, nil
}
