package gf256

import (
	"errors"
	"fmt"
	"log/slog"
)

var (
	// ErrDivisionByZero is returned when the divisor has no set bits.
	ErrDivisionByZero = errors.New("gf256: division by zero polynomial")

	// ErrZeroRemainder means the Euclidean chain hit a zero remainder before
	// reaching a constant. With an irreducible modulus this cannot happen.
	ErrZeroRemainder = errors.New("gf256: unexpected zero remainder")

	// ErrDegree means the dividend had a lower degree than the divisor.
	ErrDegree = errors.New("gf256: dividend degree lower than divisor degree")

	// ErrQuotientOverflow means the quotient needs x^8 and does not fit.
	ErrQuotientOverflow = errors.New("gf256: quotient does not fit in 8 bits")
)

// Code maps an error from this package to its numeric error code:
// 1 for division failures, 2 for an unexpected zero remainder and 3 for a
// degree violation. Nil maps to 0 and unknown errors to -1.
func Code(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrDivisionByZero), errors.Is(err, ErrQuotientOverflow):
		return 1
	case errors.Is(err, ErrZeroRemainder):
		return 2
	case errors.Is(err, ErrDegree):
		return 3
	default:
		return -1
	}
}

// Divide performs polynomial long division of a by b, returning quotient and
// remainder. When aHasTopBit is set, a carries an implicit x^8 term, which is
// how the degree 8 modulus is passed in.
func Divide(a, b Poly, aHasTopBit bool) (q, r Poly, err error) {
	if b == 0 {
		return 0, 0, ErrDivisionByZero
	}

	for i := bitLen; i >= 0; i-- {
		if (i == bitLen && aHasTopBit) || (i < bitLen && (a>>i)&1 == 1) {
			start := i
			if i == bitLen {
				start = i - 1
			}
			for j := start; j >= 0; j-- {
				if (b>>j)&1 == 0 {
					continue
				}
				shift := i - j
				if shift >= bitLen {
					return 0, 0, ErrQuotientOverflow
				}
				// For i == 8 the shifted top bit of b falls off the byte,
				// cancelling the implicit x^8 of a.
				localR := a ^ (b << shift)
				nextQ, nextR, err := Divide(localR, b, false)
				if err != nil {
					return 0, 0, err
				}
				return Poly(1<<shift) ^ nextQ, nextR, nil
			}
			return 0, 0, ErrDivisionByZero
		}

		if i < bitLen && (b>>i)&1 == 1 {
			// deg(b) > deg(a)
			return 0, a, nil
		}
	}
	return 0, 0, nil
}

// bezout returns x, y with a*x + b*y = 1, assuming deg(a) > deg(b).
func bezout(a, b Poly, aHasTopBit bool) (x, y Poly, err error) {
	if b == 1 {
		return 0, 1, nil
	}

	q, r, err := Divide(a, b, aHasTopBit)
	if err != nil {
		return 0, 0, err
	}

	switch {
	case r == 0:
		slog.Error("gf256: zero remainder in inverse computation",
			"dividend", fmt.Sprintf("%#02x", uint8(a)),
			"divisor", fmt.Sprintf("%#02x", uint8(b)),
			"top_bit", aHasTopBit)
		return 0, 0, ErrZeroRemainder
	case r == 1:
		return 1, q, nil
	case q == 0:
		return 0, 0, ErrDegree
	}

	xx, yy, err := bezout(b, r, false)
	if err != nil {
		return 0, 0, err
	}

	return yy, xx ^ Multiply(q, yy), nil
}

// Inverse returns the multiplicative inverse of b using the extended
// Euclidean algorithm against the field modulus.
func Inverse(b Poly) (Poly, error) {
	_, y, err := bezout(Modulus, b, true)
	if err != nil {
		return 0, err
	}
	return y, nil
}

// MustInverse is like Inverse but maps 0 to 0 and panics on any other
// failure.
func MustInverse(b Poly) Poly {
	if b == 0 {
		return 0
	}
	inv, err := Inverse(b)
	if err != nil {
		panic(fmt.Sprintf("gf256: inverse of %#02x: %v", uint8(b), err))
	}
	return inv
}
