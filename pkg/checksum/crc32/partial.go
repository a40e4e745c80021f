package crc32

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/galoiskit/galois/pkg/crypto/gf32"
	"golang.org/x/sync/errgroup"
)

// PartialBlock returns the contribution of data to the remainder of a
// larger buffer in which data is preceded by bytesBefore bytes and followed
// by bytesAfter bytes.
//
// Only bytes within the first four of the whole buffer are flipped. The
// block remainder is then multiplied by x^(8*(bytesAfter+4)), moving it
// past the bytes that follow and the four flush bytes.
func PartialBlock(data []byte, bytesBefore, bytesAfter uint64) uint32 {
	var crc uint32
	for i := 0; i < 4 && i < len(data); i++ {
		b := data[i]
		if bytesBefore+uint64(i) < 4 {
			b ^= 0xFF
		}
		crc = Step(b, crc)
	}
	for i := 4; i < len(data); i++ {
		crc = Step(data[i], crc)
	}

	shift := gf32.PowerOfN(bytesAfter + 4)
	return uint32(gf32.Multiply(gf32.Poly(crc), shift))
}

// Combine merges two partial values produced by PartialBlock. Offsets
// passed to PartialBlock must describe each chunk's real position; Combine
// itself does no bookkeeping.
func Combine(crc1, crc2 uint32) uint32 {
	return crc1 ^ crc2
}

// Finalize turns the combined partial values of a buffer of totalLength
// bytes into its CRC-32.
func Finalize(crc uint32, totalLength uint64) uint32 {
	if totalLength < 4 {
		// Checksum feeds 0xFF flush bytes in the positions a short buffer
		// leaves empty. No block accounts for them.
		crc ^= flush(0, totalLength)
	}
	return crc ^ 0xFFFFFFFF
}

// Parallel computes the CRC-32 of data by hashing chunkSize byte chunks on
// up to workers goroutines and combining the results. workers <= 0 means
// GOMAXPROCS.
func Parallel(ctx context.Context, data []byte, chunkSize, workers int) (uint32, error) {
	if chunkSize <= 0 {
		return 0, fmt.Errorf("chunk size must be positive, got %d", chunkSize)
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	total := len(data)
	chunks := (total + chunkSize - 1) / chunkSize
	partials := make([]uint32, chunks)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := 0; i < chunks; i++ {
		i := i
		start := i * chunkSize
		end := min(start+chunkSize, total)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			partials[i] = PartialBlock(data[start:end], uint64(start), uint64(total-end))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, fmt.Errorf("parallel crc32: %w", err)
	}

	var crc uint32
	for _, p := range partials {
		crc = Combine(crc, p)
	}

	slog.Debug("parallel crc32 done",
		"bytes", total,
		"chunks", chunks,
		"workers", workers)

	return Finalize(crc, uint64(total)), nil
}
