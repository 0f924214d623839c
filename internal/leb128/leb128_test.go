package leb128_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wasmkit/wasmkit/internal/leb128"
)

func TestEncodeUint32(t *testing.T) {
	tests := []struct {
		name     string
		input    uint32
		expected []byte
	}{
		{name: "zero", input: 0, expected: []byte{0x00}},
		{name: "small", input: 0x7f, expected: []byte{0x7f}},
		{name: "two bytes", input: 0x80, expected: []byte{0x80, 0x01}},
		{name: "624485", input: 624485, expected: []byte{0xe5, 0x8e, 0x26}},
		{name: "max uint32", input: 0xffffffff, expected: []byte{0xff, 0xff, 0xff, 0xff, 0x0f}},
	}
	for _, tt := range tests {
		tc := tt
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, leb128.EncodeUint32(tc.input))
		})
	}
}

func TestEncodeInt64(t *testing.T) {
	tests := []struct {
		name     string
		input    int64
		expected []byte
	}{
		{name: "zero", input: 0, expected: []byte{0x00}},
		{name: "negative one", input: -1, expected: []byte{0x7f}},
		{name: "-123456", input: -123456, expected: []byte{0xc0, 0xbb, 0x78}},
		{name: "positive needs pad", input: 64, expected: []byte{0xc0, 0x00}},
	}
	for _, tt := range tests {
		tc := tt
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, leb128.EncodeInt64(tc.input))
		})
	}
}

func TestRoundTripUint64(t *testing.T) {
	values := []uint64{0, 1, 127, 128, 300, 1 << 40, ^uint64(0)}
	for _, v := range values {
		encoded := leb128.EncodeUint64(v)
		decoded, n, ok := leb128.DecodeUint64(encoded)
		require.True(t, ok)
		require.Equal(t, len(encoded), n)
		require.Equal(t, v, decoded)
	}
}

func TestRoundTripInt64(t *testing.T) {
	values := []int64{0, -1, 1, 64, -64, 123456, -123456, -(1 << 40)}
	for _, v := range values {
		encoded := leb128.EncodeInt64(v)
		decoded, n, ok := leb128.DecodeInt64(encoded)
		require.True(t, ok)
		require.Equal(t, len(encoded), n)
		require.Equal(t, v, decoded)
	}
}

func TestDecodeTruncated(t *testing.T) {
	_, _, ok := leb128.DecodeUint64([]byte{0x80})
	require.False(t, ok)
}
