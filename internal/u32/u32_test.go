package u32_test

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wasmkit/wasmkit/internal/u32"
)

func TestLeBytes(t *testing.T) {
	values := []uint32{0, 1, 0xdeadbeef, 0xffffffff}
	for _, v := range values {
		expected := make([]byte, 4)
		binary.LittleEndian.PutUint32(expected, v)
		require.Equal(t, expected, u32.LeBytes(v))
	}
}

func TestLeBytesF32(t *testing.T) {
	got := u32.LeBytesF32(1.5)
	require.Equal(t, []byte{0x00, 0x00, 0xc0, 0x3f}, got)
}
