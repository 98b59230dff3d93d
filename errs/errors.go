// Package errs holds the sentinel errors returned by the vtkio packages.
//
// Callers should compare with errors.Is; most are returned wrapped with the
// offending name or count.
package errs

import "errors"

// Registration errors.
var (
	// ErrSizeMismatch is returned when cell offsets and cell types differ in length.
	ErrSizeMismatch = errors.New("cell offsets and cell types size mismatch")
	// ErrInvalidPointCount is returned when the point coordinate count is not a multiple of 3.
	ErrInvalidPointCount = errors.New("point coordinate count is not a multiple of 3")
	// ErrInvalidComponentCount is returned for a component count below 1 or not dividing the array length.
	ErrInvalidComponentCount = errors.New("invalid number of components")
	// ErrEmptyArrayName is returned when an attribute is registered without a name.
	ErrEmptyArrayName = errors.New("array name must not be empty")
	// ErrNilArray is returned when a nil accessor is registered.
	ErrNilArray = errors.New("array must not be nil")
)

// Compression errors.
var (
	// ErrCodecUnavailable reports that a codec is not compiled into this build.
	ErrCodecUnavailable = errors.New("compression codec unavailable")
	// ErrCompressionFailed reports that a codec could not produce output for a block.
	ErrCompressionFailed = errors.New("compression failed")
)

// Encoding errors.
var (
	// ErrMarkupState is returned when an element operation is illegal in the emitter's state.
	ErrMarkupState = errors.New("invalid markup emitter state")
	// ErrInvalidBlockHeader is returned when a payload block header cannot be parsed.
	ErrInvalidBlockHeader = errors.New("invalid block header")
)

// View errors.
var (
	// ErrShortSequence is returned when an iteration-only view yields fewer elements than it declared.
	ErrShortSequence = errors.New("sequence yielded fewer elements than its declared length")
)
