package aes

import (
	"github.com/templexxx/xorsimd"
)

// EncryptBlock encrypts b in place with the key schedule k.
func EncryptBlock(b *Block, k *ExpandedKey) {
	DefaultTables().Encrypt(b, k)
}

// DecryptBlock decrypts b in place with the key schedule k.
func DecryptBlock(b *Block, k *ExpandedKey) {
	DefaultTables().Decrypt(b, k)
}

// Encrypt runs the forward cipher over b using the tables in t.
func (t *Tables) Encrypt(b *Block, k *ExpandedKey) {
	AddRoundKey(b, k, 0)
	for round := 1; round < k.rounds; round++ {
		t.SubBytes(b)
		ShiftRows(b)
		t.MixColumns(b)
		AddRoundKey(b, k, round)
	}
	t.SubBytes(b)
	ShiftRows(b)
	AddRoundKey(b, k, k.rounds)
}

// Decrypt runs the inverse cipher over b using the tables in t.
func (t *Tables) Decrypt(b *Block, k *ExpandedKey) {
	AddRoundKey(b, k, k.rounds)
	InvShiftRows(b)
	t.InvSubBytes(b)
	for round := k.rounds - 1; round > 0; round-- {
		AddRoundKey(b, k, round)
		t.InvMixColumns(b)
		InvShiftRows(b)
		t.InvSubBytes(b)
	}
	AddRoundKey(b, k, 0)
}

// AddRoundKey XORs round key r into b.
func AddRoundKey(b *Block, k *ExpandedKey, r int) {
	xorsimd.Bytes16(b[:], b[:], k.RoundKey(r))
}

// SubBytes replaces every byte of b through the S-box.
func (t *Tables) SubBytes(b *Block) {
	for i := range b {
		b[i] = t.SBox[b[i]]
	}
}

// InvSubBytes replaces every byte of b through the inverse S-box.
func (t *Tables) InvSubBytes(b *Block) {
	for i := range b {
		b[i] = t.InvSBox[b[i]]
	}
}

// ShiftRows rotates row r of the state left by r positions.
func ShiftRows(b *Block) {
	b[1], b[5], b[9], b[13] = b[5], b[9], b[13], b[1]
	b[2], b[6], b[10], b[14] = b[10], b[14], b[2], b[6]
	b[3], b[7], b[11], b[15] = b[15], b[3], b[7], b[11]
}

// InvShiftRows rotates row r of the state right by r positions.
func InvShiftRows(b *Block) {
	b[1], b[5], b[9], b[13] = b[13], b[1], b[5], b[9]
	b[2], b[6], b[10], b[14] = b[10], b[14], b[2], b[6]
	b[3], b[7], b[11], b[15] = b[7], b[11], b[15], b[3]
}

// MixColumns multiplies each column by the MDS matrix
//
//	02 03 01 01
//	01 02 03 01
//	01 01 02 03
//	03 01 01 02
func (t *Tables) MixColumns(b *Block) {
	for c := 0; c < WordsInBlock; c++ {
		col := b[c*WordSize : (c+1)*WordSize]
		a0, a1, a2, a3 := col[0], col[1], col[2], col[3]
		col[0] = t.Mul02[a0] ^ t.Mul03[a1] ^ a2 ^ a3
		col[1] = a0 ^ t.Mul02[a1] ^ t.Mul03[a2] ^ a3
		col[2] = a0 ^ a1 ^ t.Mul02[a2] ^ t.Mul03[a3]
		col[3] = t.Mul03[a0] ^ a1 ^ a2 ^ t.Mul02[a3]
	}
}

// InvMixColumns multiplies each column by the inverse MDS matrix
//
//	0e 0b 0d 09
//	09 0e 0b 0d
//	0d 09 0e 0b
//	0b 0d 09 0e
func (t *Tables) InvMixColumns(b *Block) {
	for c := 0; c < WordsInBlock; c++ {
		col := b[c*WordSize : (c+1)*WordSize]
		a0, a1, a2, a3 := col[0], col[1], col[2], col[3]
		col[0] = t.Mul0E[a0] ^ t.Mul0B[a1] ^ t.Mul0D[a2] ^ t.Mul09[a3]
		col[1] = t.Mul09[a0] ^ t.Mul0E[a1] ^ t.Mul0B[a2] ^ t.Mul0D[a3]
		col[2] = t.Mul0D[a0] ^ t.Mul09[a1] ^ t.Mul0E[a2] ^ t.Mul0B[a3]
		col[3] = t.Mul0B[a0] ^ t.Mul0D[a1] ^ t.Mul09[a2] ^ t.Mul0E[a3]
	}
}
