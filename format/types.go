// Package format defines the identifiers shared by every layer of the writer:
// scalar types and their VTK names, compression codec ids, and cell types.
package format

import "unsafe"

type (
	ScalarType      uint8
	CompressionType uint8
	CellType        uint8
)

const (
	TypeInvalid ScalarType = 0x0
	TypeInt8    ScalarType = 0x1
	TypeUint8   ScalarType = 0x2
	TypeInt16   ScalarType = 0x3
	TypeUint16  ScalarType = 0x4
	TypeInt32   ScalarType = 0x5
	TypeUint32  ScalarType = 0x6
	TypeInt64   ScalarType = 0x7
	TypeUint64  ScalarType = 0x8
	TypeFloat32 ScalarType = 0x9
	TypeFloat64 ScalarType = 0xA

	CompressionNone CompressionType = 0x1 // CompressionNone writes the payload uncompressed.
	CompressionZLib CompressionType = 0x2 // CompressionZLib represents vtkZLibDataCompressor.
	CompressionLZ4  CompressionType = 0x3 // CompressionLZ4 represents vtkLZ4DataCompressor.
	CompressionLZMA CompressionType = 0x4 // CompressionLZMA represents vtkLZMADataCompressor.
)

// VTK cell type ids, see vtkCellType.h.
const (
	CellVertex        CellType = 1
	CellPolyVertex    CellType = 2
	CellLine          CellType = 3
	CellPolyLine      CellType = 4
	CellTriangle      CellType = 5
	CellTriangleStrip CellType = 6
	CellPolygon       CellType = 7
	CellPixel         CellType = 8
	CellQuad          CellType = 9
	CellTetra         CellType = 10
	CellVoxel         CellType = 11
	CellHexahedron    CellType = 12
	CellWedge         CellType = 13
	CellPyramid       CellType = 14
)

// Scalar is the set of element types that can be stored in a DataArray.
//
// Platform-width integers (int, uint, uintptr) are deliberately absent: the
// on-disk width must not depend on the build target.
type Scalar interface {
	~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32 | ~int64 | ~uint64 | ~float32 | ~float64
}

// TypeOf returns the ScalarType of T.
//
// The switch is resolved per instantiation, so the call is effectively a constant.
func TypeOf[T Scalar]() ScalarType {
	var zero T
	switch any(zero).(type) {
	case int8:
		return TypeInt8
	case uint8:
		return TypeUint8
	case int16:
		return TypeInt16
	case uint16:
		return TypeUint16
	case int32:
		return TypeInt32
	case uint32:
		return TypeUint32
	case int64:
		return TypeInt64
	case uint64:
		return TypeUint64
	case float32:
		return TypeFloat32
	case float64:
		return TypeFloat64
	}

	// Named types (e.g. CellType) fall through to the underlying kind.
	return typeOfUnderlying(zero)
}

func typeOfUnderlying[T Scalar](zero T) ScalarType {
	size := unsafe.Sizeof(zero)
	one, two := zero+1, zero+2
	isFloat := one/two != 0
	isSigned := zero-one < 0

	switch {
	case isFloat && size == 4:
		return TypeFloat32
	case isFloat:
		return TypeFloat64
	case size == 1 && isSigned:
		return TypeInt8
	case size == 1:
		return TypeUint8
	case size == 2 && isSigned:
		return TypeInt16
	case size == 2:
		return TypeUint16
	case size == 4 && isSigned:
		return TypeInt32
	case size == 4:
		return TypeUint32
	case isSigned:
		return TypeInt64
	default:
		return TypeUint64
	}
}

// TypeName returns the VTK type name of T.
func TypeName[T Scalar]() string {
	return TypeOf[T]().Name()
}

// Name returns the type name used in the DataArray "type" attribute.
func (s ScalarType) Name() string {
	switch s {
	case TypeInt8:
		return "Int8"
	case TypeUint8:
		return "UInt8"
	case TypeInt16:
		return "Int16"
	case TypeUint16:
		return "UInt16"
	case TypeInt32:
		return "Int32"
	case TypeUint32:
		return "UInt32"
	case TypeInt64:
		return "Int64"
	case TypeUint64:
		return "UInt64"
	case TypeFloat32:
		return "Float32"
	case TypeFloat64:
		return "Float64"
	default:
		return "Unknown"
	}
}

// Size returns the width of one element in bytes, or 0 for an invalid type.
func (s ScalarType) Size() int {
	switch s {
	case TypeInt8, TypeUint8:
		return 1
	case TypeInt16, TypeUint16:
		return 2
	case TypeInt32, TypeUint32, TypeFloat32:
		return 4
	case TypeInt64, TypeUint64, TypeFloat64:
		return 8
	default:
		return 0
	}
}

func (s ScalarType) String() string {
	return s.Name()
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZLib:
		return "ZLib"
	case CompressionLZ4:
		return "LZ4"
	case CompressionLZMA:
		return "LZMA"
	default:
		return "Unknown"
	}
}

// ParseCompression maps a case-sensitive codec name as printed by String
// (plus the lower-case forms) back to its CompressionType.
func ParseCompression(name string) (CompressionType, bool) {
	switch name {
	case "None", "none", "":
		return CompressionNone, true
	case "ZLib", "zlib":
		return CompressionZLib, true
	case "LZ4", "lz4":
		return CompressionLZ4, true
	case "LZMA", "lzma":
		return CompressionLZMA, true
	default:
		return 0, false
	}
}

func (c CellType) String() string {
	switch c {
	case CellVertex:
		return "Vertex"
	case CellPolyVertex:
		return "PolyVertex"
	case CellLine:
		return "Line"
	case CellPolyLine:
		return "PolyLine"
	case CellTriangle:
		return "Triangle"
	case CellTriangleStrip:
		return "TriangleStrip"
	case CellPolygon:
		return "Polygon"
	case CellPixel:
		return "Pixel"
	case CellQuad:
		return "Quad"
	case CellTetra:
		return "Tetra"
	case CellVoxel:
		return "Voxel"
	case CellHexahedron:
		return "Hexahedron"
	case CellWedge:
		return "Wedge"
	case CellPyramid:
		return "Pyramid"
	default:
		return "Unknown"
	}
}

// MarshalText renders the type by name in reports.
func (s ScalarType) MarshalText() ([]byte, error) {
	return []byte(s.Name()), nil
}

// MarshalText renders the codec by name in reports.
func (c CompressionType) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}
