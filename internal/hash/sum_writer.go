// Package hash provides the content digest attached to every written file.
package hash

import (
	"io"

	"github.com/cespare/xxhash/v2"
)

// SumWriter forwards writes to an underlying writer while counting the bytes
// and folding them into an xxHash64 digest.
type SumWriter struct {
	w      io.Writer
	digest *xxhash.Digest
	n      int64
}

var _ io.Writer = (*SumWriter)(nil)

// NewSumWriter wraps w.
func NewSumWriter(w io.Writer) *SumWriter {
	return &SumWriter{w: w, digest: xxhash.New()}
}

// Write writes p to the underlying writer. Only the bytes that reached the
// underlying writer are counted and hashed.
func (s *SumWriter) Write(p []byte) (int, error) {
	n, err := s.w.Write(p)
	if n > 0 {
		_, _ = s.digest.Write(p[:n])
		s.n += int64(n)
	}

	return n, err
}

// WriteString avoids a conversion for the markup emitter's string output.
func (s *SumWriter) WriteString(str string) (int, error) {
	n, err := io.WriteString(s.w, str)
	if n > 0 {
		_, _ = s.digest.WriteString(str[:n])
		s.n += int64(n)
	}

	return n, err
}

// Count returns the number of bytes written so far.
func (s *SumWriter) Count() int64 {
	return s.n
}

// Sum64 returns the digest of the bytes written so far.
func (s *SumWriter) Sum64() uint64 {
	return s.digest.Sum64()
}

// Sum64 returns the xxHash64 of data.
func Sum64(data []byte) uint64 {
	return xxhash.Sum64(data)
}
