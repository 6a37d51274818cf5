// Package des implements the DES block cipher (FIPS 46-3) from its published
// tables, together with the text framing and ciphertext literal encoding used
// by the calculator.
package des

import (
	"errors"

	"github.com/andrei-cloud/cryptolab/internal/backend/bitblock"
)

const (
	// BlockSize is the DES block size in bytes.
	BlockSize = 8
	// KeySize is the number of key bytes that take part in the key schedule.
	KeySize = 8

	rounds = 16
)

// Common errors.
var (
	ErrKeyLength = errors.New("key must not be empty")
	ErrEncoding  = errors.New("text is not valid UTF-8")
	ErrFormat    = errors.New("malformed ciphertext")
)

// KeySchedule holds the sixteen 48-bit round subkeys, in encryption order.
type KeySchedule [rounds]uint64

// Cipher is a DES instance bound to one key schedule. It holds no mutable
// state, so a Cipher may be shared between goroutines.
type Cipher struct {
	subkeys KeySchedule
}

// NewCipher derives the key schedule from key. Only the first KeySize bytes
// are used; a shorter key is zero-padded on the right.
func NewCipher(key []byte) (*Cipher, error) {
	if len(key) == 0 {
		return nil, ErrKeyLength
	}

	return &Cipher{subkeys: newKeySchedule(bitblock.FromBytes(key))}, nil
}

// Subkeys returns a copy of the round subkeys.
func (c *Cipher) Subkeys() KeySchedule {
	return c.subkeys
}

// EncryptBlock encrypts one 64-bit block.
func (c *Cipher) EncryptBlock(block uint64) uint64 {
	return c.crypt(block, false)
}

// DecryptBlock decrypts one 64-bit block.
func (c *Cipher) DecryptBlock(block uint64) uint64 {
	return c.crypt(block, true)
}

func newKeySchedule(key uint64) KeySchedule {
	var ks KeySchedule

	cd := permutedChoice1.Permute(key, 64)
	left := uint32(cd >> 28)
	right := uint32(cd)

	for i, n := range keyRotations {
		left = bitblock.RotateLeft28(left, n)
		right = bitblock.RotateLeft28(right, n)
		ks[i] = permutedChoice2.Permute(uint64(left)<<28|uint64(right), 56)
	}

	return ks
}

func (c *Cipher) crypt(block uint64, decrypt bool) uint64 {
	b := initialPermutation.Permute(block, 64)
	left, right := uint32(b>>32), uint32(b)

	for i := 0; i < rounds; i++ {
		k := c.subkeys[i]
		if decrypt {
			k = c.subkeys[rounds-1-i]
		}
		left, right = right, left^feistel(right, k)
	}

	// The last round does not swap halves.
	return finalPermutation.Permute(uint64(right)<<32|uint64(left), 64)
}

// feistel is the round function F.
func feistel(right uint32, subkey uint64) uint32 {
	x := expansion.Permute(uint64(right), 32) ^ subkey

	var out uint64
	for g := range sBoxes {
		six := uint8(x>>(42-6*g)) & 0x3f
		row := six>>4&0x2 | six&0x1
		col := six >> 1 & 0xf
		out = out<<4 | uint64(sBoxes[g][row][col])
	}

	return uint32(permutation.Permute(out, 32))
}
