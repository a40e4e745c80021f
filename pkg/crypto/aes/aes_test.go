package aes

import (
	stdaes "crypto/aes"
	"encoding/hex"
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustHex(t testing.TB, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func TestKnownAnswers(t *testing.T) {
	tests := []struct {
		name string
		key  string
		pt   string
		ct   string
	}{
		{
			name: "FIPS-197 C.1 AES-128",
			key:  "000102030405060708090a0b0c0d0e0f",
			pt:   "00112233445566778899aabbccddeeff",
			ct:   "69c4e0d86a7b0430d8cdb78070b4c55a",
		},
		{
			name: "FIPS-197 C.2 AES-192",
			key:  "000102030405060708090a0b0c0d0e0f1011121314151617",
			pt:   "00112233445566778899aabbccddeeff",
			ct:   "dda97ca4864cdfe06eaf70a0ec0d7191",
		},
		{
			name: "FIPS-197 C.3 AES-256",
			key:  "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f",
			pt:   "00112233445566778899aabbccddeeff",
			ct:   "8ea2b7ca516745bfeafc49904b496089",
		},
		{
			name: "FIPS-197 Appendix B",
			key:  "2b7e151628aed2a6abf7158809cf4f3c",
			pt:   "3243f6a8885a308d313198a2e0370734",
			ct:   "3925841d02dc09fbdc118597196a0b32",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k, err := ExpandKey(mustHex(t, tt.key))
			require.NoError(t, err)

			var b Block
			copy(b[:], mustHex(t, tt.pt))

			EncryptBlock(&b, k)
			assert.Equal(t, tt.ct, hex.EncodeToString(b[:]))

			DecryptBlock(&b, k)
			assert.Equal(t, tt.pt, hex.EncodeToString(b[:]))
		})
	}
}

func TestExpandKeyVectors(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		words map[int]string
	}{
		{
			name:  "FIPS-197 A.1",
			key:   "2b7e151628aed2a6abf7158809cf4f3c",
			words: map[int]string{0: "2b7e1516", 4: "a0fafe17", 43: "b6630ca6"},
		},
		{
			name:  "FIPS-197 A.2",
			key:   "8e73b0f7da0e6452c810f32b809079e562f8ead2522c6b7b",
			words: map[int]string{0: "8e73b0f7", 6: "fe0c91f7", 51: "01002202"},
		},
		{
			name:  "FIPS-197 A.3",
			key:   "603deb1015ca71be2b73aef0857d77811f352c073b6108d72d9810a30914dff4",
			words: map[int]string{0: "603deb10", 2: "2b73aef0", 8: "9ba35411", 59: "706c631e"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := mustHex(t, tt.key)
			k, err := ExpandKey(key)
			require.NoError(t, err)

			buf := k.Bytes()
			assert.Len(t, buf, ExpandedKeySize(len(key)))
			assert.Equal(t, key, buf[:len(key)])
			for i, want := range tt.words {
				assert.Equal(t, want, hex.EncodeToString(buf[i*WordSize:(i+1)*WordSize]), "word %d", i)
			}
		})
	}
}

func TestExpandKeyAES256Byte80(t *testing.T) {
	k, err := ExpandKey(mustHex(t, "603deb1015ca71be2b73aef0857d77811f352c073b6108d72d9810a30914dff4"))
	require.NoError(t, err)
	assert.Equal(t, byte(0x60), k.Bytes()[0])
	assert.Equal(t, byte(0x2b), k.Bytes()[8])
	assert.Equal(t, byte(0xb5), k.Bytes()[80])
}

func TestExpandKeyDeterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, size := range []int{KeySize128, KeySize192, KeySize256} {
		key := make([]byte, size)
		rng.Read(key)

		k1, err := ExpandKey(key)
		require.NoError(t, err)
		k2, err := ExpandKey(append([]byte(nil), key...))
		require.NoError(t, err)

		assert.Equal(t, k1.Bytes(), k2.Bytes())
		assert.Equal(t, Rounds(size), k1.Rounds())
		assert.Equal(t, size, k1.KeySize())
	}
}

func TestInvalidKeySizes(t *testing.T) {
	for _, size := range []int{0, 1, 15, 17, 20, 31, 33, 64} {
		assert.Equal(t, 0, Rounds(size), "size %d", size)

		_, err := RoundsFor(size)
		var kse KeySizeError
		require.ErrorAs(t, err, &kse)
		assert.Equal(t, KeySizeError(size), kse)

		_, err = ExpandKey(make([]byte, size))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid key size")

		_, err = NewCipher(make([]byte, size))
		assert.Error(t, err)
	}
}

func TestRounds(t *testing.T) {
	assert.Equal(t, 10, Rounds(16))
	assert.Equal(t, 12, Rounds(24))
	assert.Equal(t, 14, Rounds(32))
	assert.Equal(t, 176, ExpandedKeySize(16))
	assert.Equal(t, 208, ExpandedKeySize(24))
	assert.Equal(t, 240, ExpandedKeySize(32))
}

func TestMatchesStandardLibrary(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for _, size := range []int{KeySize128, KeySize192, KeySize256} {
		for i := 0; i < 200; i++ {
			key := make([]byte, size)
			rng.Read(key)
			var b Block
			rng.Read(b[:])

			ref, err := stdaes.NewCipher(key)
			require.NoError(t, err)
			want := make([]byte, BlockSize)
			ref.Encrypt(want, b[:])

			k, err := ExpandKey(key)
			require.NoError(t, err)

			plain := b
			EncryptBlock(&b, k)
			require.Equal(t, want, b[:], "key %x", key)

			DecryptBlock(&b, k)
			require.Equal(t, plain, b, "round trip key %x", key)
		}
	}
}

func TestCipherBlockInterface(t *testing.T) {
	key := mustHex(t, "000102030405060708090a0b0c0d0e0f")
	c, err := NewCipher(key)
	require.NoError(t, err)
	assert.Equal(t, 16, c.BlockSize())

	src := mustHex(t, "00112233445566778899aabbccddeeff")
	dst := make([]byte, 16)
	c.Encrypt(dst, src)
	assert.Equal(t, "69c4e0d86a7b0430d8cdb78070b4c55a", hex.EncodeToString(dst))

	// in place
	c.Decrypt(dst, dst)
	assert.Equal(t, src, dst)

	assert.Panics(t, func() { c.Encrypt(dst, src[:15]) })
	assert.Panics(t, func() { c.Decrypt(dst[:8], src) })
}

func TestCipherRejectsPartialOverlap(t *testing.T) {
	c, err := NewCipher(mustHex(t, "000102030405060708090a0b0c0d0e0f"))
	require.NoError(t, err)

	buf := make([]byte, 2*BlockSize)
	assert.PanicsWithValue(t, "galois/aes: invalid buffer overlap", func() {
		c.Encrypt(buf[1:], buf[:BlockSize])
	})
	assert.PanicsWithValue(t, "galois/aes: invalid buffer overlap", func() {
		c.Decrypt(buf[:BlockSize], buf[4:])
	})

	// disjoint halves of one buffer are fine
	assert.NotPanics(t, func() { c.Encrypt(buf[BlockSize:], buf[:BlockSize]) })
}

func TestConcurrentUseOfSharedKey(t *testing.T) {
	key := mustHex(t, "000102030405060708090a0b0c0d0e0f1011121314151617")
	k, err := ExpandKey(key)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed))
			for i := 0; i < 100; i++ {
				var b Block
				rng.Read(b[:])
				orig := b
				EncryptBlock(&b, k)
				DecryptBlock(&b, k)
				assert.Equal(t, orig, b)
			}
		}(int64(g))
	}
	wg.Wait()
}

func TestExpandedKeyZero(t *testing.T) {
	k, err := ExpandKey(mustHex(t, "000102030405060708090a0b0c0d0e0f"))
	require.NoError(t, err)
	k.Zero()
	assert.Equal(t, make([]byte, 176), k.Bytes())
}

func BenchmarkEncryptBlock(b *testing.B) {
	k, err := ExpandKey(make([]byte, KeySize128))
	if err != nil {
		b.Fatal(err)
	}
	var blk Block
	b.SetBytes(BlockSize)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		EncryptBlock(&blk, k)
	}
}

func BenchmarkDecryptBlock(b *testing.B) {
	k, err := ExpandKey(make([]byte, KeySize256))
	if err != nil {
		b.Fatal(err)
	}
	var blk Block
	b.SetBytes(BlockSize)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		DecryptBlock(&blk, k)
	}
}

func BenchmarkExpandKey(b *testing.B) {
	key := make([]byte, KeySize256)
	for i := 0; i < b.N; i++ {
		if _, err := ExpandKey(key); err != nil {
			b.Fatal(err)
		}
	}
}
