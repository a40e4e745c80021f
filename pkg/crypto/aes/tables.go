package aes

import (
	"sync"

	"github.com/galoiskit/galois/pkg/crypto/gf256"
)

const maxRcon = 10

// Tables holds every lookup table the cipher needs. All of them are pure
// functions of GF(2^8) arithmetic.
type Tables struct {
	SBox    [256]byte
	InvSBox [256]byte

	Mul02 [256]byte
	Mul03 [256]byte
	Mul09 [256]byte
	Mul0B [256]byte
	Mul0D [256]byte
	Mul0E [256]byte

	// Rcon[i] is the round constant word for i+1.
	Rcon [maxRcon][WordSize]byte
}

var (
	defaultTables     *Tables
	defaultTablesOnce sync.Once
)

// DefaultTables returns the process-wide tables, building them on first use.
// The returned value must not be modified.
func DefaultTables() *Tables {
	defaultTablesOnce.Do(func() {
		defaultTables = NewTables()
	})
	return defaultTables
}

// NewTables derives a fresh set of tables.
func NewTables() *Tables {
	t := &Tables{}
	t.initSBox()
	t.initMultiplication()
	t.initRcon()
	return t
}

func rotl8(x byte, i uint) byte {
	return x<<i | x>>(8-i)
}

func sboxValue(x byte) byte {
	b := byte(gf256.MustInverse(gf256.Poly(x)))
	return b ^ rotl8(b, 1) ^ rotl8(b, 2) ^ rotl8(b, 3) ^ rotl8(b, 4) ^ 0x63
}

func (t *Tables) initSBox() {
	for i := 0; i < 256; i++ {
		v := sboxValue(byte(i))
		t.SBox[i] = v
		t.InvSBox[v] = byte(i)
	}
}

func (t *Tables) initMultiplication() {
	for i := 0; i < 256; i++ {
		x := gf256.Poly(i)
		t.Mul02[i] = byte(gf256.Multiply(x, 0x02))
		t.Mul03[i] = byte(gf256.Multiply(x, 0x03))
		t.Mul09[i] = byte(gf256.Multiply(x, 0x09))
		t.Mul0B[i] = byte(gf256.Multiply(x, 0x0B))
		t.Mul0D[i] = byte(gf256.Multiply(x, 0x0D))
		t.Mul0E[i] = byte(gf256.Multiply(x, 0x0E))
	}
}

func (t *Tables) initRcon() {
	xi := gf256.Poly(1)
	for i := 0; i < maxRcon; i++ {
		t.Rcon[i] = [WordSize]byte{byte(xi), 0, 0, 0}
		xi = gf256.Multiply(xi, 0x02)
	}
}

// rcon returns the round constant word for i, which starts at 1.
func (t *Tables) rcon(i int) []byte {
	return t.Rcon[i-1][:]
}
