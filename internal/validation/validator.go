package validation

import (
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"

	"github.com/galoiskit/galois/pkg/crypto/aes"
)

var hexPattern = regexp.MustCompile(`^[0-9a-fA-F]+$`)

// normalizeHex strips whitespace, colons and an optional 0x prefix so keys
// can be pasted in the formats most tools print them in.
func normalizeHex(input string) string {
	input = strings.TrimSpace(input)
	input = strings.TrimPrefix(strings.TrimPrefix(input, "0x"), "0X")
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r', ':':
			return -1
		}
		return r
	}, input)
}

func ValidateHex(input string) error {
	input = normalizeHex(input)
	if len(input) == 0 {
		return fmt.Errorf("hex string cannot be empty")
	}

	if len(input)%2 != 0 {
		return fmt.Errorf("hex string must have even length")
	}

	if !hexPattern.MatchString(input) {
		return fmt.Errorf("invalid hex characters")
	}

	return nil
}

// ParseKey decodes a hex AES key and checks its length.
func ParseKey(input string) ([]byte, error) {
	if err := ValidateHex(input); err != nil {
		return nil, fmt.Errorf("invalid key format: %w", err)
	}

	key, err := hex.DecodeString(normalizeHex(input))
	if err != nil {
		return nil, fmt.Errorf("failed to decode key: %w", err)
	}

	if err := ValidateKeySize(len(key)); err != nil {
		return nil, err
	}

	return key, nil
}

// ParseBlock decodes a hex string of exactly one cipher block.
func ParseBlock(input string) (aes.Block, error) {
	var b aes.Block

	if err := ValidateHex(input); err != nil {
		return b, fmt.Errorf("invalid block format: %w", err)
	}

	data, err := hex.DecodeString(normalizeHex(input))
	if err != nil {
		return b, fmt.Errorf("failed to decode block: %w", err)
	}

	if len(data) != aes.BlockSize {
		return b, fmt.Errorf("block must be %d bytes (got %d)", aes.BlockSize, len(data))
	}

	copy(b[:], data)
	return b, nil
}

func ValidateKeySize(size int) error {
	if _, err := aes.RoundsFor(size); err != nil {
		return fmt.Errorf("key must be 16, 24 or 32 bytes (got %d): %w", size, err)
	}
	return nil
}

func ValidateKeyBits(bits int) error {
	switch bits {
	case 128, 192, 256:
		return nil
	}
	return fmt.Errorf("key size must be 128, 192 or 256 bits (got %d)", bits)
}

func ValidateChunkSize(size int) error {
	if size <= 0 {
		return fmt.Errorf("chunk size must be positive (got %d)", size)
	}
	return nil
}

func ValidateWorkers(workers int) error {
	if workers < 0 || workers > 1024 {
		return fmt.Errorf("workers must be between 0 and 1024 (got %d)", workers)
	}
	return nil
}

func ValidateOutputFormat(format string) error {
	switch format {
	case "hex", "base64":
		return nil
	}
	return fmt.Errorf("output format must be hex or base64 (got %q)", format)
}
