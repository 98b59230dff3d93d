// Package pvd writes ParaView collection files (.pvd) that index the .vtu
// files of a time series.
package pvd

import (
	"bufio"
	"fmt"
	"io"

	"github.com/arloliu/vtkio/endian"
	"github.com/arloliu/vtkio/internal/atomicfile"
	"github.com/arloliu/vtkio/internal/hash"
	"github.com/arloliu/vtkio/internal/markup"
	"github.com/arloliu/vtkio/internal/options"
	"github.com/arloliu/vtkio/section"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Step is one DataSet entry of the collection.
type Step struct {
	Time float64
	// File is written as given, normally relative to the .pvd file.
	File  string
	Group string
	Part  int
}

// Writer accumulates steps and writes them as one collection file.
type Writer struct {
	logger   logrus.FieldLogger
	path     string
	steps    []Step
	indent   int
	autoSave bool
}

// Option configures a Writer.
type Option = options.Option[*Writer]

// WithAutoSave rewrites the file after every AddStep, so the index on disk
// always lists every completed step.
func WithAutoSave(enabled bool) Option {
	return options.NoError(func(w *Writer) {
		w.autoSave = enabled
	})
}

// WithIndent sets the number of spaces per nesting level.
func WithIndent(spaces int) Option {
	return options.New(func(w *Writer) error {
		if spaces < 0 {
			return fmt.Errorf("invalid indent: %d", spaces)
		}
		w.indent = spaces

		return nil
	})
}

// WithLogger sets the logger. A nil logger restores the logrus standard logger.
func WithLogger(logger logrus.FieldLogger) Option {
	return options.NoError(func(w *Writer) {
		if logger == nil {
			logger = logrus.StandardLogger()
		}
		w.logger = logger
	})
}

// NewWriter creates a Writer for the collection file at path. Nothing is
// written until Save, or the first AddStep with auto-save enabled.
func NewWriter(path string, opts ...Option) (*Writer, error) {
	w := &Writer{
		logger: logrus.StandardLogger(),
		path:   path,
		indent: markup.DefaultIndent,
	}
	if err := options.Apply(w, opts...); err != nil {
		return nil, err
	}

	return w, nil
}

// Path returns the collection file path.
func (w *Writer) Path() string {
	return w.path
}

// AddStep appends a step for file at the given time, in part 0 of the
// default group. Steps are written in insertion order.
func (w *Writer) AddStep(time float64, file string) error {
	return w.Add(Step{Time: time, File: file})
}

// Add appends step.
func (w *Writer) Add(step Step) error {
	w.steps = append(w.steps, step)
	if w.autoSave {
		return w.Save()
	}

	return nil
}

// Steps returns a copy of the registered steps.
func (w *Writer) Steps() []Step {
	return append([]Step(nil), w.steps...)
}

// Save atomically replaces the collection file.
func (w *Writer) Save() error {
	var n int64
	err := atomicfile.WriteFile(w.path, 0o644, func(f io.Writer) error {
		var err error
		n, err = w.WriteTo(f)

		return err
	})
	if err != nil {
		return err
	}

	w.logger.WithFields(logrus.Fields{
		"path":  w.path,
		"steps": len(w.steps),
		"bytes": n,
	}).Debug("pvd saved")

	return nil
}

// WriteTo writes the collection document to dst.
func (w *Writer) WriteTo(dst io.Writer) (int64, error) {
	sum := hash.NewSumWriter(dst)
	bw := bufio.NewWriter(sum)
	b := markup.New(bw, w.indent)

	err := b.Within("VTKFile", func(root *markup.Element) error {
		root.Attr("type", "Collection").
			Attr("version", "1.0").
			Attr("byte_order", endian.ByteOrderName).
			Attr("header_type", section.HeaderTypeName)

		return b.Within("Collection", func(*markup.Element) error {
			for _, s := range w.steps {
				b.Element("DataSet").
					Attr("timestep", s.Time).
					Attr("group", s.Group).
					Attr("part", s.Part).
					Attr("file", s.File).
					Close()
			}

			return nil
		})
	})
	if err != nil {
		return sum.Count(), errors.Wrap(err, "write collection")
	}
	if err := bw.Flush(); err != nil {
		return sum.Count(), errors.Wrap(err, "flush collection")
	}

	return sum.Count(), nil
}
