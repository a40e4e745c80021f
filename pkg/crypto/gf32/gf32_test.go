package gf32

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMultiplyIdentity(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		a := Poly(rng.Uint32())
		assert.Equal(t, a, Multiply(a, One))
		assert.Equal(t, a, Multiply(One, a))
		assert.Equal(t, Poly(0), Multiply(a, 0))
	}
}

func TestMultiplyCommutativeAssociative(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 1000; i++ {
		a, b, c := Poly(rng.Uint32()), Poly(rng.Uint32()), Poly(rng.Uint32())
		assert.Equal(t, Multiply(a, b), Multiply(b, a))
		assert.Equal(t, Multiply(Multiply(a, b), c), Multiply(a, Multiply(b, c)))
		// distributes over addition
		assert.Equal(t, Multiply(a, b^c), Multiply(a, b)^Multiply(a, c))
	}
}

func TestPowerOfN(t *testing.T) {
	tests := []struct {
		name string
		n    uint64
		want Poly
	}{
		{"x^0", 0, One},
		{"x^8", 1, 0x00800000},
		{"x^16", 2, 0x00008000},
		{"x^24", 3, 0x00000080},
		// x^32 mod P is P without its leading term
		{"x^32", 4, Modulus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PowerOfN(tt.n))
		})
	}
}

func TestPowerOfNMatchesRepeatedMultiply(t *testing.T) {
	acc := One
	for n := uint64(0); n < 300; n++ {
		assert.Equal(t, acc, PowerOfN(n), "n=%d", n)
		acc = Multiply(acc, XPow8)
	}
}

func TestPowerOfNAddsExponents(t *testing.T) {
	for _, pair := range [][2]uint64{{5, 7}, {100, 28}, {1 << 20, 3}, {12345, 67890}} {
		assert.Equal(t, PowerOfN(pair[0]+pair[1]), Multiply(PowerOfN(pair[0]), PowerOfN(pair[1])))
	}
}

func BenchmarkPowerOfN(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = PowerOfN(uint64(i) + 1<<20)
	}
}
