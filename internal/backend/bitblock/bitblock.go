// Package bitblock provides the bit-level helpers shared by the DES, MD5 and
// SHA-1 engines.
//
// Positions in permutation tables are 1-based and count from the most
// significant bit of the input block, as in the published standards: entry k
// selects the bit at position k-1 of the input.
package bitblock

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math/bits"
	"strings"
)

// Common errors.
var (
	ErrTableIndex     = errors.New("table index out of range")
	ErrLengthMismatch = errors.New("input blocks must be same length")
)

const (
	// ChunkSize is the Merkle–Damgård chunk size in bytes (512 bits).
	ChunkSize = 64
	// lengthOffset is where the 64-bit message length starts inside the last chunk.
	lengthOffset = ChunkSize - 8

	mask28 = 1<<28 - 1
)

// Table is a fixed permutation, expansion or selection table.
type Table []uint8

// Apply selects, for each table entry, the referenced bit of the width-bit
// value in, and packs the selected bits MSB-first. The output holds len(t)
// bits.
func (t Table) Apply(in uint64, width int) (uint64, error) {
	if width < 1 || width > 64 || len(t) > 64 {
		return 0, fmt.Errorf("%w: %d-entry table over %d-bit block", ErrTableIndex, len(t), width)
	}

	var out uint64
	for i, pos := range t {
		if pos == 0 || int(pos) > width {
			return 0, fmt.Errorf(
				"%w: entry %d selects bit %d of %d-bit block",
				ErrTableIndex, i, pos, width,
			)
		}
		out = out<<1 | (in>>(width-int(pos)))&1
	}

	return out, nil
}

// Permute is Apply for the fixed tables of the engines. A bad index there is
// a programming defect, so it panics instead of returning an error.
func (t Table) Permute(in uint64, width int) uint64 {
	out, err := t.Apply(in, width)
	if err != nil {
		panic(err)
	}

	return out
}

// FromBytes packs up to eight bytes MSB-first into a 64-bit block. Shorter
// input is zero-filled on the right, longer input is truncated.
func FromBytes(b []byte) uint64 {
	var buf [8]byte
	copy(buf[:], b)

	return binary.BigEndian.Uint64(buf[:])
}

// Blocks splits data into 64-bit blocks, zero-padding the last one on the
// right. Empty input yields no blocks.
func Blocks(data []byte) []uint64 {
	blocks := make([]uint64, 0, (len(data)+7)/8)
	for i := 0; i < len(data); i += 8 {
		end := i + 8
		if end > len(data) {
			end = len(data)
		}
		blocks = append(blocks, FromBytes(data[i:end]))
	}

	return blocks
}

// Join serializes blocks back into big-endian bytes, eight per block.
func Join(blocks []uint64) []byte {
	out := make([]byte, 0, len(blocks)*8)
	for _, b := range blocks {
		out = binary.BigEndian.AppendUint64(out, b)
	}

	return out
}

// Format renders the low width bits of v as a string of '0' and '1'.
func Format(v uint64, width int) string {
	var sb strings.Builder
	sb.Grow(width)
	for i := width - 1; i >= 0; i-- {
		sb.WriteByte('0' + byte(v>>i&1))
	}

	return sb.String()
}

// XOR returns the bitwise exclusive or of two equal-length byte slices.
func XOR(a, b []byte) ([]byte, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("%w: %d and %d bytes", ErrLengthMismatch, len(a), len(b))
	}

	out := make([]byte, len(a))
	for i := range a {
		out[i] = a[i] ^ b[i]
	}

	return out, nil
}

// RotateLeft28 rotates the low 28 bits of v left by n positions.
func RotateLeft28(v uint32, n int) uint32 {
	n %= 28
	v &= mask28

	return (v<<n | v>>(28-n)) & mask28
}

// RotateLeft32 rotates v left by n positions.
func RotateLeft32(v uint32, n int) uint32 {
	return bits.RotateLeft32(v, n)
}

// Pad applies Merkle–Damgård padding: a single 1 bit, zero bits up to 448
// mod 512, then the message bit length modulo 2^64 in the given byte order.
// The result is a whole number of chunks.
func Pad(msg []byte, order binary.ByteOrder) []byte {
	n := len(msg) + 1
	if r := n % ChunkSize; r <= lengthOffset {
		n += lengthOffset - r
	} else {
		n += ChunkSize - r + lengthOffset
	}

	out := make([]byte, n+8)
	copy(out, msg)
	out[len(msg)] = 0x80
	order.PutUint64(out[n:], uint64(len(msg))<<3)

	return out
}

// Words unpacks a 64-byte chunk into sixteen 32-bit words in the given byte
// order.
func Words(chunk []byte, order binary.ByteOrder) [16]uint32 {
	var w [16]uint32
	for i := range w {
		w[i] = order.Uint32(chunk[i*4:])
	}

	return w
}
