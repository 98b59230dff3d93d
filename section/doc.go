// Package section defines the fixed-size headers that frame each block of the
// appended payload.
//
// Every header field is a little-endian UInt64, matching the
// header_type="UInt64" attribute of the document root.
//
// Uncompressed block:
//
//	+----------------+----------------------+
//	| size (8 bytes) | data (size bytes)    |
//	+----------------+----------------------+
//
// Compressed block (a single compression block per array):
//
//	+------------+-------------+-----------------+-----------------+------------------+
//	| nblocks=1  | block size  | last block size | compressed size | compressed bytes |
//	| (8 bytes)  | (8 bytes)   | (8 bytes)       | (8 bytes)       |                  |
//	+------------+-------------+-----------------+-----------------+------------------+
//
// With one block, "block size" and "last block size" are both the original
// uncompressed length.
package section
