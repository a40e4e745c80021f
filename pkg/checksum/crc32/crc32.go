// Package crc32 computes the IEEE CRC-32 checksum as polynomial division
// over GF(2), in the reflected bit order used by the standard.
//
// Besides whole-buffer checksums it can compute the contribution of a
// sub-range of a larger buffer on its own. Such partial values for
// disjoint, ordered chunks XOR together into the remainder of the whole
// buffer, which lets chunks be hashed independently and in parallel.
package crc32

import (
	"sync"

	"github.com/galoiskit/galois/pkg/crypto/gf32"
)

// Poly is the IEEE polynomial 0x04C11DB7 in reversed bit order.
const Poly = uint32(gf32.Modulus)

var (
	table     [256]uint32
	tableOnce sync.Once
)

// Table returns the byte-wise reduction table. It equals the standard
// reflected IEEE table and must not be modified.
func Table() *[256]uint32 {
	tableOnce.Do(func() {
		for i := range table {
			table[i] = tableEntry(byte(i))
		}
	})
	return &table
}

// tableEntry reduces b*x^32 modulo Poly. Bit 0 of b is the highest degree,
// x^7, so bits are consumed from 0 upwards. Each set bit folds the shifted
// polynomial into the result and cancels itself, plus the polynomial's own
// low byte, out of the bits still to come.
func tableEntry(b byte) uint32 {
	low := byte(Poly & 0xFF)
	var result uint32
	for i := 0; i < 8; i++ {
		if (b>>i)&1 == 1 {
			result ^= Poly >> (7 - i)
			b ^= low << (i + 1)
		}
	}
	return result
}

// Step feeds one byte into the running remainder crc and returns the new
// remainder. The low byte of crc is the highest degree part and is reduced
// through the table as the register moves one byte along.
func Step(next byte, crc uint32) uint32 {
	t := Table()
	return (crc>>8 | uint32(next)<<24) ^ t[byte(crc)]
}

// Remainder returns the plain polynomial remainder of data, with no
// initial value and no final XOR.
func Remainder(data []byte) uint32 {
	var crc uint32
	for _, b := range data {
		crc = Step(b, crc)
	}
	return crc
}

// Checksum returns the IEEE CRC-32 of data.
//
// The standard initial value 0xFFFFFFFF is applied by flipping the first
// four input bytes, and four flush bytes finish the division. When data is
// shorter than four bytes the missing leading positions are 0xFF flush
// bytes instead of zeros.
func Checksum(data []byte) uint32 {
	var crc uint32
	for i := 0; i < 4 && i < len(data); i++ {
		crc = Step(data[i]^0xFF, crc)
	}
	for i := 4; i < len(data); i++ {
		crc = Step(data[i], crc)
	}
	crc = flush(crc, uint64(len(data)))
	return crc ^ 0xFFFFFFFF
}

// flush feeds the four trailing bytes for a buffer of the given length.
func flush(crc uint32, length uint64) uint32 {
	for i := uint64(0); i < 4; i++ {
		var b byte
		if length <= 3-i {
			b = 0xFF
		}
		crc = Step(b, crc)
	}
	return crc
}
