package endian

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLittle(t *testing.T) {
	engine := Little()
	require.Equal(t, Engine(binary.LittleEndian), engine)

	b := make([]byte, 4)
	engine.PutUint32(b, 0x01020304)
	require.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, b)
}

func TestBig(t *testing.T) {
	engine := Big()
	require.Equal(t, Engine(binary.BigEndian), engine)

	b := make([]byte, 4)
	engine.PutUint32(b, 0x01020304)
	require.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, b)
}

func TestNative(t *testing.T) {
	engine := Native()
	require.NotNil(t, engine)

	// The native engine must round-trip values identically to itself
	// regardless of which order the host uses.
	b := make([]byte, 8)
	engine.PutUint64(b, 0xDEADBEEFCAFEF00D)
	require.Equal(t, uint64(0xDEADBEEFCAFEF00D), engine.Uint64(b))

	if IsNativeLittle() {
		require.Equal(t, Engine(binary.LittleEndian), engine)
	} else {
		require.Equal(t, Engine(binary.BigEndian), engine)
	}
}

func TestAppend(t *testing.T) {
	engine := Little()

	buf := make([]byte, 0, 16)
	buf = engine.AppendUint16(buf, 0x0102)
	buf = engine.AppendUint32(buf, 0x03040506)
	require.Equal(t, []byte{0x02, 0x01, 0x06, 0x05, 0x04, 0x03}, buf)
}
