package endian

import (
	"encoding/binary"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestNative(t *testing.T) {
	var probe uint16 = 0x0102
	first := (*[2]byte)(unsafe.Pointer(&probe))[0]

	switch first {
	case 0x01:
		require.Equal(t, binary.BigEndian, Native())
		require.False(t, IsNativeLittleEndian())
	case 0x02:
		require.Equal(t, binary.LittleEndian, Native())
		require.True(t, IsNativeLittleEndian())
	default:
		require.Failf(t, "unexpected probe byte", "got: %v", first)
	}

	require.Equal(t, IsNativeLittleEndian(), MatchesDisk())
}

func TestDisk(t *testing.T) {
	engine := Disk()
	require.Equal(t, binary.LittleEndian, engine)
	require.Equal(t, "LittleEndian", ByteOrderName)

	b := make([]byte, 8)
	engine.PutUint64(b, 0x0102030405060708)
	require.Equal(t, []byte{0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01}, b)

	b = engine.AppendUint32(nil, 0x12345678)
	require.Equal(t, []byte{0x78, 0x56, 0x34, 0x12}, b)
}
