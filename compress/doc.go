// Package compress provides the block compressors understood by VTK readers.
//
// Each codec corresponds to one VTK compressor class and produces exactly the
// byte stream that class expects inside a compressed appended block:
//
//   - ZLib (format.CompressionZLib): RFC 1950 zlib stream, vtkZLibDataCompressor.
//   - LZ4 (format.CompressionLZ4): raw LZ4 block without frame, vtkLZ4DataCompressor.
//   - LZMA (format.CompressionLZMA): .xz container with CRC32 check, vtkLZMADataCompressor.
//
// # Availability
//
// Codecs register themselves at init time. Each one can be left out of a build
// with a tag (vtkio_nozlib, vtkio_nolz4, vtkio_nolzma); GetCodec then reports
// errs.ErrCodecUnavailable, which the writer treats as a configuration
// condition and answers by writing the file uncompressed.
//
// # Determinism
//
// Compress is a pure function of its input for every registered codec, so
// writing the same arrays twice produces byte-identical files.
//
// # Thread Safety
//
// All codecs are stateless values; internal encoder state is pooled and safe
// for concurrent use by independent writers.
package compress
