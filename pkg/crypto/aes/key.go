package aes

import (
	"github.com/galoiskit/galois/pkg/secure"
)

// ExpandedKey is an AES key schedule: one 16 byte round key per round plus
// the initial whitening key. It is read-only once built and may be shared
// between goroutines.
type ExpandedKey struct {
	keySize int
	rounds  int
	buf     [maxExpandSize]byte
}

// ExpandKey runs the AES key schedule over key, which must be 16, 24 or 32
// bytes long.
func ExpandKey(key []byte) (*ExpandedKey, error) {
	rounds, err := RoundsFor(len(key))
	if err != nil {
		return nil, err
	}

	k := &ExpandedKey{keySize: len(key), rounds: rounds}
	k.fill(key, DefaultTables())
	return k, nil
}

func (k *ExpandedKey) fill(key []byte, t *Tables) {
	nk := k.keySize / WordSize
	total := WordsInBlock * (k.rounds + 1)

	copy(k.buf[:k.keySize], key)

	for i := nk; i < total; i++ {
		w := k.word(i)
		copy(w, k.word(i-1))

		if i%nk == 0 {
			rotWord(w)
			t.subWord(w)
			xorWord(w, t.rcon(i/nk))
		}
		if nk == 8 && i%nk == 4 {
			t.subWord(w)
		}
		xorWord(w, k.word(i-nk))
	}
}

func (k *ExpandedKey) word(i int) []byte {
	return k.buf[i*WordSize : (i+1)*WordSize]
}

// KeySize returns the length in bytes of the key the schedule came from.
func (k *ExpandedKey) KeySize() int {
	return k.keySize
}

// Rounds returns the number of cipher rounds.
func (k *ExpandedKey) Rounds() int {
	return k.rounds
}

// RoundKey returns round key r, 0 <= r <= Rounds(). The slice aliases the
// schedule and must not be modified.
func (k *ExpandedKey) RoundKey(r int) []byte {
	return k.buf[r*BlockSize : (r+1)*BlockSize]
}

// Bytes returns a copy of the whole schedule.
func (k *ExpandedKey) Bytes() []byte {
	out := make([]byte, ExpandedKeySize(k.keySize))
	copy(out, k.buf[:])
	return out
}

// Zero wipes the schedule. The key must not be used afterwards.
func (k *ExpandedKey) Zero() {
	secure.Zero(k.buf[:])
}

func (t *Tables) subWord(w []byte) {
	for i := 0; i < WordSize; i++ {
		w[i] = t.SBox[w[i]]
	}
}

func rotWord(w []byte) {
	w[0], w[1], w[2], w[3] = w[1], w[2], w[3], w[0]
}

func xorWord(a, b []byte) {
	a[0] ^= b[0]
	a[1] ^= b[1]
	a[2] ^= b[2]
	a[3] ^= b[3]
}
