package aes

import (
	"crypto/cipher"
	"unsafe"
)

// Cipher adapts an ExpandedKey to crypto/cipher.Block.
type Cipher struct {
	key *ExpandedKey
}

var _ cipher.Block = (*Cipher)(nil)

// NewCipher expands key and returns a single-block cipher for it.
func NewCipher(key []byte) (*Cipher, error) {
	k, err := ExpandKey(key)
	if err != nil {
		return nil, err
	}
	return &Cipher{key: k}, nil
}

func (c *Cipher) BlockSize() int { return BlockSize }

func (c *Cipher) Encrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("galois/aes: input not full block")
	}
	if len(dst) < BlockSize {
		panic("galois/aes: output not full block")
	}
	if inexactOverlap(dst[:BlockSize], src[:BlockSize]) {
		panic("galois/aes: invalid buffer overlap")
	}
	var b Block
	copy(b[:], src)
	EncryptBlock(&b, c.key)
	copy(dst, b[:])
}

func (c *Cipher) Decrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("galois/aes: input not full block")
	}
	if len(dst) < BlockSize {
		panic("galois/aes: output not full block")
	}
	if inexactOverlap(dst[:BlockSize], src[:BlockSize]) {
		panic("galois/aes: invalid buffer overlap")
	}
	var b Block
	copy(b[:], src)
	DecryptBlock(&b, c.key)
	copy(dst, b[:])
}

// ExpandedKey returns the schedule backing c.
func (c *Cipher) ExpandedKey() *ExpandedKey {
	return c.key
}

// inexactOverlap reports whether x and y share memory at different offsets.
func inexactOverlap(x, y []byte) bool {
	if &x[0] == &y[0] {
		return false
	}
	return uintptr(unsafe.Pointer(&x[0])) <= uintptr(unsafe.Pointer(&y[len(y)-1])) &&
		uintptr(unsafe.Pointer(&y[0])) <= uintptr(unsafe.Pointer(&x[len(x)-1]))
}
