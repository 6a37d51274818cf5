package des

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/andrei-cloud/cryptolab/internal/backend/bitblock"
)

// BlockPrefix marks the start of every block literal in a ciphertext.
const BlockPrefix = "0x"

// maxBlockDigits is the widest hex literal a 64-bit block can need.
const maxBlockDigits = 16

// Engine frames text into 64-bit blocks and runs them through DES in ECB
// fashion. With Workers > 1 blocks are processed concurrently; output order
// always follows input order.
type Engine struct {
	Workers int
}

// Encrypt encrypts plaintext with key using a sequential Engine.
func Encrypt(plaintext, key string) (string, error) {
	return Engine{}.Encrypt(plaintext, key)
}

// Decrypt inverts Encrypt using a sequential Engine.
func Decrypt(ciphertext, key string) (string, error) {
	return Engine{}.Decrypt(ciphertext, key)
}

// Encrypt encodes plaintext and key as UTF-8, encrypts the zero-padded
// plaintext block by block and renders each block as a 0x-prefixed literal.
func (e Engine) Encrypt(plaintext, key string) (string, error) {
	c, err := newTextCipher(key)
	if err != nil {
		return "", err
	}

	data, err := bitblock.UTF8(plaintext)
	if err != nil {
		return "", fmt.Errorf("plaintext: %w: %v", ErrEncoding, err)
	}

	return FormatCiphertext(e.run(bitblock.Blocks(data), c.EncryptBlock)), nil
}

// Decrypt parses the block literals of ciphertext, decrypts them and strips
// the zero bytes that block alignment appended to the plaintext.
func (e Engine) Decrypt(ciphertext, key string) (string, error) {
	c, err := newTextCipher(key)
	if err != nil {
		return "", err
	}

	blocks, err := ParseCiphertext(ciphertext)
	if err != nil {
		return "", err
	}

	data := bytes.TrimRight(bitblock.Join(e.run(blocks, c.DecryptBlock)), "\x00")
	plaintext, err := bitblock.UTF8(string(data))
	if err != nil {
		return "", fmt.Errorf("decrypted text: %w: %v", ErrEncoding, err)
	}

	return string(plaintext), nil
}

// EncryptBytes encrypts data, zero-padded to whole blocks, with key.
func (e Engine) EncryptBytes(data, key []byte) ([]uint64, error) {
	c, err := NewCipher(key)
	if err != nil {
		return nil, err
	}

	return e.run(bitblock.Blocks(data), c.EncryptBlock), nil
}

// DecryptBytes decrypts blocks with key. Padding is left in place.
func (e Engine) DecryptBytes(blocks []uint64, key []byte) ([]byte, error) {
	c, err := NewCipher(key)
	if err != nil {
		return nil, err
	}

	return bitblock.Join(e.run(blocks, c.DecryptBlock)), nil
}

func (e Engine) run(blocks []uint64, fn func(uint64) uint64) []uint64 {
	out := make([]uint64, len(blocks))

	if e.Workers <= 1 || len(blocks) < 2 {
		for i, b := range blocks {
			out[i] = fn(b)
		}
		return out
	}

	var g errgroup.Group
	g.SetLimit(e.Workers)
	for i, b := range blocks {
		g.Go(func() error {
			out[i] = fn(b)
			return nil
		})
	}
	_ = g.Wait() // Block functions cannot fail.

	return out
}

func newTextCipher(key string) (*Cipher, error) {
	k, err := bitblock.UTF8(key)
	if err != nil {
		return nil, fmt.Errorf("key: %w: %v", ErrEncoding, err)
	}

	return NewCipher(k)
}

// FormatCiphertext renders blocks as concatenated lowercase hex literals,
// each prefixed with BlockPrefix and without leading zeros.
func FormatCiphertext(blocks []uint64) string {
	var sb strings.Builder
	sb.Grow(len(blocks) * (len(BlockPrefix) + maxBlockDigits))
	for _, b := range blocks {
		sb.WriteString(BlockPrefix)
		sb.WriteString(strconv.FormatUint(b, 16))
	}

	return sb.String()
}

// ParseCiphertext splits s into one 64-bit value per block literal. The empty
// string holds no blocks.
func ParseCiphertext(s string) ([]uint64, error) {
	if s == "" {
		return nil, nil
	}
	if !strings.HasPrefix(s, BlockPrefix) {
		return nil, fmt.Errorf("%w: must start with %q", ErrFormat, BlockPrefix)
	}

	literals := strings.Split(s[len(BlockPrefix):], BlockPrefix)
	blocks := make([]uint64, 0, len(literals))
	for i, lit := range literals {
		if lit == "" || len(lit) > maxBlockDigits {
			return nil, fmt.Errorf("%w: block %d has %d hex digits", ErrFormat, i, len(lit))
		}
		v, err := strconv.ParseUint(lit, 16, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: block %d: %v", ErrFormat, i, err)
		}
		blocks = append(blocks, v)
	}

	return blocks, nil
}
