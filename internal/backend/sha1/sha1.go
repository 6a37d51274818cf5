// Package sha1 implements the SHA-1 message digest as defined in FIPS 180-1.
//
// SHA-1 is cryptographically broken; it is implemented here for conformance
// checks only.
package sha1

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/andrei-cloud/cryptolab/internal/backend/bitblock"
)

// Size is the size of a SHA-1 digest in bytes.
const Size = 20

// ErrEncoding is returned when the message is not valid UTF-8.
var ErrEncoding = errors.New("message is not valid UTF-8")

// state is the running A, B, C, D, E chaining value.
type state [5]uint32

var initState = state{0x67452301, 0xEFCDAB89, 0x98BADCFE, 0x10325476, 0xC3D2E1F0}

const (
	k0 = 0x5A827999
	k1 = 0x6ED9EBA1
	k2 = 0x8F1BBCDC
	k3 = 0xCA62C1D6
)

// Hash returns the lowercase hex SHA-1 digest of the UTF-8 encoded message.
func Hash(message string) (string, error) {
	data, err := bitblock.UTF8(message)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrEncoding, err)
	}

	sum := Sum(data)

	return hex.EncodeToString(sum[:]), nil
}

// Sum returns the SHA-1 digest of data.
func Sum(data []byte) [Size]byte {
	padded := bitblock.Pad(data, binary.BigEndian)

	s := initState
	for i := 0; i < len(padded); i += bitblock.ChunkSize {
		s = compress(s, padded[i:i+bitblock.ChunkSize])
	}

	var digest [Size]byte
	for i, w := range s {
		binary.BigEndian.PutUint32(digest[i*4:], w)
	}

	return digest
}

// schedule expands the sixteen chunk words to the 80-word message schedule.
func schedule(chunk []byte) [80]uint32 {
	var w [80]uint32
	words := bitblock.Words(chunk, binary.BigEndian)
	copy(w[:], words[:])
	for i := 16; i < 80; i++ {
		w[i] = bitblock.RotateLeft32(w[i-3]^w[i-8]^w[i-14]^w[i-16], 1)
	}

	return w
}

// compress runs the 80 SHA-1 rounds over one chunk and adds the result to s.
func compress(s state, chunk []byte) state {
	w := schedule(chunk)
	a, b, c, d, e := s[0], s[1], s[2], s[3], s[4]

	for i := 0; i < 80; i++ {
		var f, k uint32
		switch i / 20 {
		case 0:
			f = b&c | ^b&d
			k = k0
		case 1:
			f = b ^ c ^ d
			k = k1
		case 2:
			f = b&c | b&d | c&d
			k = k2
		default:
			f = b ^ c ^ d
			k = k3
		}

		t := bitblock.RotateLeft32(a, 5) + f + e + k + w[i]
		a, b, c, d, e = t, a, bitblock.RotateLeft32(b, 30), c, d
	}

	return state{s[0] + a, s[1] + b, s[2] + c, s[3] + d, s[4] + e}
}
