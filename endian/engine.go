// Package endian provides byte order helpers for the appended payload.
//
// VTK files written by this module always declare byte_order="LittleEndian",
// so the on-disk engine is fixed. What varies is the host: on a little-endian
// host a contiguous array already has its on-disk representation in memory
// and can be written with a single bulk copy. Native reports which case applies.
//
// All functions in this package are safe for concurrent use.
package endian

import (
	"encoding/binary"
	"unsafe"
)

// EndianEngine combines binary.ByteOrder and binary.AppendByteOrder.
//
// It is satisfied by binary.LittleEndian and binary.BigEndian.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// ByteOrderName is the byte_order attribute value matching Disk.
const ByteOrderName = "LittleEndian"

var nativeIsLittle = detectLittleEndian()

func detectLittleEndian() bool {
	// 0x0100: the first byte in memory is 0x00 on little-endian hosts.
	var i uint16 = 0x0100
	b := (*[2]byte)(unsafe.Pointer(&i))

	return b[0] == 0x00
}

// Disk returns the engine of the on-disk representation.
func Disk() EndianEngine {
	return binary.LittleEndian
}

// Native returns the engine matching the host's memory layout.
func Native() EndianEngine {
	if nativeIsLittle {
		return binary.LittleEndian
	}

	return binary.BigEndian
}

// IsNativeLittleEndian reports whether the host stores scalars little-endian.
func IsNativeLittleEndian() bool {
	return nativeIsLittle
}

// MatchesDisk reports whether memory bytes of the host can be copied to disk as-is.
func MatchesDisk() bool {
	return nativeIsLittle
}
