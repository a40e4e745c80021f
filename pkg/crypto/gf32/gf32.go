// Package gf32 implements polynomial arithmetic modulo the CRC-32
// polynomial 0x04C11DB7, using the reflected representation shared with
// the CRC-32 register: bit 31 holds the coefficient of x^0 and bit 0 the
// coefficient of x^31.
package gf32

// Poly is a polynomial of degree below 32 in reflected bit order.
type Poly uint32

const (
	// Modulus is 0x04C11DB7 with all 32 bits reversed.
	Modulus Poly = 0xEDB88320

	// One is the polynomial 1.
	One Poly = 1 << 31

	// XPow8 is x^8, the multiplier for one appended zero byte.
	XPow8 Poly = One >> 8
)

// Multiply returns a*b mod Modulus.
//
// Bit 0 of b is x^31 and is visited first. After adding a for that bit the
// window is multiplied by x 31 more times, shifting right and reducing
// whenever x^31 overflows into x^32.
func Multiply(a, b Poly) Poly {
	var window Poly
	for i := 0; i < 32; i++ {
		if (b>>i)&1 == 1 {
			window ^= a
		}
		if i != 31 {
			carry := window & 1
			window >>= 1
			if carry == 1 {
				window ^= Modulus
			}
		}
	}
	return window
}

// PowerOfN returns x^(8*n) mod Modulus, the multiplier that appends n zero
// bytes to a CRC remainder.
func PowerOfN(n uint64) Poly {
	switch n {
	case 0:
		return One
	case 1:
		return XPow8
	case 2:
		return One >> 16
	case 3:
		return One >> 24
	}

	half := PowerOfN(n / 2)
	even := Multiply(half, half)
	if n%2 == 0 {
		return even
	}
	return Multiply(even, XPow8)
}
