package u64_test

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wasmkit/wasmkit/internal/u64"
)

func TestLeBytes(t *testing.T) {
	values := []uint64{0, 1, 0xdeadbeefcafebabe, 0xffffffffffffffff}
	for _, v := range values {
		expected := make([]byte, 8)
		binary.LittleEndian.PutUint64(expected, v)
		require.Equal(t, expected, u64.LeBytes(v))
	}
}

func TestLeBytesF64(t *testing.T) {
	got := u64.LeBytesF64(1.5)
	require.Equal(t, []byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xf8, 0x3f}, got)
}
