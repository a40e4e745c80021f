package aes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSBoxValues(t *testing.T) {
	tab := DefaultTables()

	tests := []struct {
		in, out byte
	}{
		{0x00, 0x63},
		{0x01, 0x7c},
		{0x53, 0xed},
		{0xf1, 0xa1},
		{0xff, 0x16},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.out, tab.SBox[tt.in], "sbox[%#02x]", tt.in)
		assert.Equal(t, tt.in, tab.InvSBox[tt.out], "inv_sbox[%#02x]", tt.out)
	}
}

func TestSBoxIsPermutation(t *testing.T) {
	tab := DefaultTables()
	seen := make(map[byte]bool, 256)
	for i := 0; i < 256; i++ {
		v := tab.SBox[i]
		assert.False(t, seen[v], "duplicate sbox output %#02x", v)
		seen[v] = true
		assert.Equal(t, byte(i), tab.InvSBox[v])
	}
}

func TestRcon(t *testing.T) {
	want := []byte{0x01, 0x02, 0x04, 0x08, 0x10, 0x20, 0x40, 0x80, 0x1b, 0x36}
	tab := DefaultTables()
	for i, w := range want {
		assert.Equal(t, [WordSize]byte{w, 0, 0, 0}, tab.Rcon[i])
		assert.Equal(t, []byte{w, 0, 0, 0}, tab.rcon(i+1))
	}
}

func TestMultiplicationTables(t *testing.T) {
	tab := DefaultTables()
	assert.Equal(t, byte(0xae), tab.Mul02[0x57])
	assert.Equal(t, byte(0x00), tab.Mul0E[0x00])
	for i := 0; i < 256; i++ {
		x := byte(i)
		assert.Equal(t, tab.Mul02[i]^x, tab.Mul03[i])
		// 0x09 = 8 + 1, 0x0b = 8 + 2 + 1, 0x0d = 8 + 4 + 1, 0x0e = 8 + 4 + 2
		x2 := tab.Mul02[i]
		x4 := tab.Mul02[x2]
		x8 := tab.Mul02[x4]
		assert.Equal(t, x8^x, tab.Mul09[i])
		assert.Equal(t, x8^x2^x, tab.Mul0B[i])
		assert.Equal(t, x8^x4^x, tab.Mul0D[i])
		assert.Equal(t, x8^x4^x2, tab.Mul0E[i])
	}
}

func TestTablesIdempotent(t *testing.T) {
	assert.Equal(t, *DefaultTables(), *NewTables())
	assert.Same(t, DefaultTables(), DefaultTables())
}

func TestShiftRows(t *testing.T) {
	var b Block
	for i := range b {
		b[i] = byte(i)
	}
	ShiftRows(&b)
	assert.Equal(t, Block{0, 5, 10, 15, 4, 9, 14, 3, 8, 13, 2, 7, 12, 1, 6, 11}, b)

	InvShiftRows(&b)
	for i := range b {
		assert.Equal(t, byte(i), b[i])
	}
}

func TestMixColumns(t *testing.T) {
	tab := DefaultTables()

	// Column test vectors from the Rijndael MixColumns reference.
	b := Block{
		0xdb, 0x13, 0x53, 0x45,
		0xf2, 0x0a, 0x22, 0x5c,
		0x01, 0x01, 0x01, 0x01,
		0xd4, 0xd4, 0xd4, 0xd5,
	}
	want := Block{
		0x8e, 0x4d, 0xa1, 0xbc,
		0x9f, 0xdc, 0x58, 0x9d,
		0x01, 0x01, 0x01, 0x01,
		0xd5, 0xd5, 0xd7, 0xd6,
	}

	orig := b
	tab.MixColumns(&b)
	assert.Equal(t, want, b)

	tab.InvMixColumns(&b)
	assert.Equal(t, orig, b)
}

func TestSubBytesRoundTrip(t *testing.T) {
	tab := DefaultTables()
	var b Block
	for i := range b {
		b[i] = byte(i * 17)
	}
	orig := b
	tab.SubBytes(&b)
	assert.NotEqual(t, orig, b)
	tab.InvSubBytes(&b)
	assert.Equal(t, orig, b)
}
