package section

const (
	// FieldSize is the width of one header field (header_type="UInt64").
	FieldSize = 8
	// SizeHeaderSize is the prefix of an uncompressed block.
	SizeHeaderSize = FieldSize
	// CompressedHeaderFields is the number of fields before a single compressed block.
	CompressedHeaderFields = 4
	// CompressedHeaderSize is the prefix of a compressed block.
	CompressedHeaderSize = CompressedHeaderFields * FieldSize

	// HeaderTypeName is the header_type attribute value matching FieldSize.
	HeaderTypeName = "UInt64"
)
