// Package aes implements the AES-128, AES-192 and AES-256 block cipher
// (FIPS-197) on top of the GF(2^8) arithmetic in package gf256.
//
// Only single 16 byte blocks are processed. There are no modes of
// operation, no padding and no constant-time guarantees.
package aes

import (
	"fmt"
)

const (
	WordSize      = 4
	WordsInBlock  = 4
	BlockSize     = WordSize * WordsInBlock
	KeySize128    = 4 * WordSize
	KeySize192    = 6 * WordSize
	KeySize256    = 8 * WordSize
	Rounds128     = 10
	Rounds192     = 12
	Rounds256     = 14
	maxExpandSize = BlockSize * (Rounds256 + 1)
)

// Block is the 4x4 AES state in column-major order: byte 4*c+r is row r of
// column c.
type Block [BlockSize]byte

// KeySizeError reports a key length other than 16, 24 or 32 bytes.
type KeySizeError int

func (k KeySizeError) Error() string {
	return fmt.Sprintf("aes: invalid key size %d", int(k))
}

// Rounds returns the number of rounds for a key of keySize bytes, or 0 if
// the size is not supported. Callers must check for 0; RoundsFor returns an
// error instead.
func Rounds(keySize int) int {
	switch keySize {
	case KeySize128:
		return Rounds128
	case KeySize192:
		return Rounds192
	case KeySize256:
		return Rounds256
	}
	return 0
}

// RoundsFor is Rounds with an error for unsupported key sizes.
func RoundsFor(keySize int) (int, error) {
	n := Rounds(keySize)
	if n == 0 {
		return 0, KeySizeError(keySize)
	}
	return n, nil
}

// ExpandedKeySize returns the length of the key schedule for a key of
// keySize bytes: 176, 208 or 240. Unsupported sizes yield 16.
func ExpandedKeySize(keySize int) int {
	return BlockSize * (Rounds(keySize) + 1)
}
