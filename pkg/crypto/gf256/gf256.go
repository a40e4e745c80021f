// Package gf256 implements polynomial arithmetic in GF(2^8) modulo the
// Rijndael polynomial x^8 + x^4 + x^3 + x + 1 (0x11B), as used by AES.
package gf256

// Poly is an element of GF(2^8). Bit i holds the coefficient of x^i.
type Poly uint8

const (
	bitLen = 8

	// Modulus is the low byte of the Rijndael polynomial; x^8 is implicit.
	Modulus Poly = 0x1B

	// ModulusReversed is Modulus with its bits in reverse order, used when
	// bit 0 denotes the highest degree.
	ModulusReversed Poly = 0xD8
)

var reversed [256]Poly

func init() {
	for i := range reversed {
		reversed[i] = reverseBits(Poly(i))
	}
}

func reverseBits(a Poly) Poly {
	var r Poly
	for i := 0; i < bitLen; i++ {
		if (a>>i)&1 == 1 {
			r |= 1 << (bitLen - 1 - i)
		}
	}
	return r
}

// Reverse returns a with its bit order reversed.
func Reverse(a Poly) Poly {
	return reversed[a]
}

// Add returns a + b, which in characteristic 2 is XOR.
func Add(a, b Poly) Poly {
	return a ^ b
}

// Multiply returns a*b mod 0x11B.
//
// The bits of b are walked from the highest degree down. Each step the
// window is multiplied by x and reduced, so when a is added for bit i it
// has already been shifted by exactly i positions by the time the loop ends.
func Multiply(a, b Poly) Poly {
	var window Poly
	for i := bitLen - 1; i >= 0; i-- {
		if (b>>i)&1 == 1 {
			window ^= a
		}
		if i != 0 {
			carry := window >> (bitLen - 1)
			window <<= 1
			if carry == 1 {
				window ^= Modulus
			}
		}
	}
	return window
}

// MultiplyReversed is Multiply for operands stored in reversed bit order,
// where bit 0 is x^7 and bit 7 is x^0.
func MultiplyReversed(a, b Poly) Poly {
	var window Poly
	for i := 0; i < bitLen; i++ {
		if (b>>i)&1 == 1 {
			window ^= a
		}
		if i != bitLen-1 {
			carry := window & 1
			window >>= 1
			if carry == 1 {
				window ^= ModulusReversed
			}
		}
	}
	return window
}
