// Package md5 implements the MD5 message digest as defined in RFC 1321.
//
// MD5 is cryptographically broken; it is implemented here for conformance
// checks only.
package md5

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"math"

	"github.com/andrei-cloud/cryptolab/internal/backend/bitblock"
)

// Size is the size of an MD5 digest in bytes.
const Size = 16

// ErrEncoding is returned when the message is not valid UTF-8.
var ErrEncoding = errors.New("message is not valid UTF-8")

// state is the running A, B, C, D chaining value.
type state [4]uint32

var initState = state{0x67452301, 0xEFCDAB89, 0x98BADCFE, 0x10325476}

// shifts holds the per-round rotate amounts, one row per 16-round pass.
var shifts = [4][4]int{
	{7, 12, 17, 22},
	{5, 9, 14, 20},
	{4, 11, 16, 23},
	{6, 10, 15, 21},
}

// sines holds floor(2^32 * |sin(i+1)|) for each of the 64 rounds.
var sines = func() (t [64]uint32) {
	for i := range t {
		t[i] = uint32(math.Floor(math.Ldexp(math.Abs(math.Sin(float64(i+1))), 32)))
	}
	return t
}()

// Hash returns the lowercase hex MD5 digest of the UTF-8 encoded message.
func Hash(message string) (string, error) {
	data, err := bitblock.UTF8(message)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrEncoding, err)
	}

	sum := Sum(data)

	return hex.EncodeToString(sum[:]), nil
}

// Sum returns the MD5 digest of data.
func Sum(data []byte) [Size]byte {
	padded := bitblock.Pad(data, binary.LittleEndian)

	s := initState
	for i := 0; i < len(padded); i += bitblock.ChunkSize {
		s = compress(s, padded[i:i+bitblock.ChunkSize])
	}

	var digest [Size]byte
	for i, w := range s {
		binary.LittleEndian.PutUint32(digest[i*4:], w)
	}

	return digest
}

// compress runs the 64 MD5 rounds over one chunk and adds the result to s.
func compress(s state, chunk []byte) state {
	x := bitblock.Words(chunk, binary.LittleEndian)
	a, b, c, d := s[0], s[1], s[2], s[3]

	for i := 0; i < 64; i++ {
		var f uint32
		var k int
		switch i / 16 {
		case 0:
			f = b&c | ^b&d
			k = i
		case 1:
			f = b&d | c&^d
			k = (5*i + 1) % 16
		case 2:
			f = b ^ c ^ d
			k = (3*i + 5) % 16
		default:
			f = c ^ (b | ^d)
			k = (7 * i) % 16
		}

		f = b + bitblock.RotateLeft32(a+f+sines[i]+x[k], shifts[i/16][i%4])
		a, b, c, d = d, f, b, c
	}

	return state{s[0] + a, s[1] + b, s[2] + c, s[3] + d}
}
