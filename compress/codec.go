package compress

import (
	"fmt"
	"slices"

	"github.com/arloliu/vtkio/errs"
	"github.com/arloliu/vtkio/format"
)

// Compressor compresses one appended-data block.
type Compressor interface {
	// Compress returns the compressed form of data.
	//
	// The returned slice is newly allocated and owned by the caller; data is
	// not modified. An error, or an empty result for non-empty input, means
	// the block cannot be represented with this codec.
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor.
//
// The writer never decompresses; decompressors exist so that tests and tools
// can verify that written blocks reproduce their source bytes.
type Decompressor interface {
	// Decompress returns the original bytes of a compressed block.
	Decompress(data []byte) ([]byte, error)
}

// Codec is a registered compression strategy.
type Codec interface {
	Compressor
	Decompressor

	// Type returns the codec's identifier.
	Type() format.CompressionType
	// ClassName returns the VTK compressor class written to the
	// compressor attribute of the document root.
	ClassName() string
}

var builtinCodecs = map[format.CompressionType]Codec{}

// register makes c resolvable through GetCodec. It is called from the init
// function of each codec file.
func register(c Codec) {
	builtinCodecs[c.Type()] = c
}

// GetCodec retrieves the built-in codec for compressionType.
//
// Returns an error wrapping errs.ErrCodecUnavailable when the codec is not part
// of this build or compressionType is not a compressing codec (including
// format.CompressionNone).
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrCodecUnavailable, compressionType)
}

// Available lists the compressing codecs in this build in ascending id order.
func Available() []format.CompressionType {
	types := make([]format.CompressionType, 0, len(builtinCodecs))
	for t := range builtinCodecs {
		types = append(types, t)
	}
	slices.Sort(types)

	return types
}
