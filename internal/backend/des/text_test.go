// nolint:all // test package
package des

import (
	stddes "crypto/des"
	"encoding/binary"
	"errors"
	"strconv"
	"strings"
	"testing"
)

func TestEncrypt_MatchesStandardLibraryBlock(t *testing.T) {
	key := "secret12"
	plaintext := "hello wo"

	ref, err := stddes.NewCipher([]byte(key))
	if err != nil {
		t.Fatalf("crypto/des NewCipher() error = %v", err)
	}
	var block [8]byte
	ref.Encrypt(block[:], []byte(plaintext))
	want := BlockPrefix + strconv.FormatUint(binary.BigEndian.Uint64(block[:]), 16)

	got, err := Encrypt(plaintext, key)
	if err != nil {
		t.Fatalf("Encrypt() error = %v", err)
	}
	if got != want {
		t.Errorf("Encrypt() = %q, want %q", got, want)
	}
}

func TestEncrypt_KnownAnswers(t *testing.T) {
	tests := []struct {
		name      string
		key       string
		plaintext string
		want      string
	}{
		{"short_key_two_blocks", "Key", "Hello, World!", "0x8fbc6843ee0bf9c80x67f19b44c14688b8"},
		{"leading_zero_dropped", "secret12", "vector 5", "0x778daeef891556d"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Encrypt(tt.plaintext, tt.key)
			if err != nil {
				t.Fatalf("Encrypt() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Encrypt() = %q, want %q", got, tt.want)
			}

			back, err := Decrypt(tt.want, tt.key)
			if err != nil {
				t.Fatalf("Decrypt() error = %v", err)
			}
			if back != tt.plaintext {
				t.Errorf("Decrypt() = %q, want %q", back, tt.plaintext)
			}
		})
	}
}

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	tests := []struct {
		name      string
		plaintext string
		key       string
		want      string // Expected decryption when it differs from plaintext.
	}{
		{name: "empty_plaintext", plaintext: "", key: "k"},
		{name: "single_char", plaintext: "a", key: "key"},
		{name: "exact_block", plaintext: "abcdefgh", key: "12345678"},
		{name: "multi_block", plaintext: "The quick brown fox jumps over the lazy dog", key: "fox"},
		{name: "long_key_truncated", plaintext: "payload", key: "a key much longer than eight bytes"},
		{name: "cyrillic_text", plaintext: "Привет, мир!", key: "ключ"},
		{name: "emoji", plaintext: "🔐 locked", key: "🔑"},
		{name: "interior_zero_byte_kept", plaintext: "a\x00b", key: "k"},
		{name: "trailing_zero_bytes_stripped", plaintext: "abc\x00\x00", key: "k", want: "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, e := range []Engine{{}, {Workers: 4}} {
				ct, err := e.Encrypt(tt.plaintext, tt.key)
				if err != nil {
					t.Fatalf("Encrypt() error = %v", err)
				}
				wantBlocks := (len(tt.plaintext) + BlockSize - 1) / BlockSize
				if n := strings.Count(ct, BlockPrefix); n != wantBlocks {
					t.Errorf("Encrypt() produced %d blocks, want %d", n, wantBlocks)
				}

				got, err := e.Decrypt(ct, tt.key)
				if err != nil {
					t.Fatalf("Decrypt() error = %v", err)
				}
				want := tt.plaintext
				if tt.want != "" {
					want = tt.want
				}
				if got != want {
					t.Errorf("Decrypt(Encrypt(%q)) = %q, want %q (workers %d)", tt.plaintext, got, want, e.Workers)
				}
			}
		})
	}
}

func TestEncrypt_BlocksAreIndependent(t *testing.T) {
	key := "blocks"
	first, err := Encrypt("abcdefgh", key)
	if err != nil {
		t.Fatalf("Encrypt() error = %v", err)
	}
	second, err := Encrypt("12345678", key)
	if err != nil {
		t.Fatalf("Encrypt() error = %v", err)
	}
	joined, err := Encrypt("abcdefgh12345678", key)
	if err != nil {
		t.Fatalf("Encrypt() error = %v", err)
	}
	if joined != first+second {
		t.Errorf("Encrypt() of two blocks = %q, want %q", joined, first+second)
	}
}

func TestEngine_ParallelMatchesSequential(t *testing.T) {
	plaintext := strings.Repeat("parallel blocks keep their order. ", 40)
	seq, err := Engine{}.Encrypt(plaintext, "order")
	if err != nil {
		t.Fatalf("Encrypt() error = %v", err)
	}
	par, err := Engine{Workers: 8}.Encrypt(plaintext, "order")
	if err != nil {
		t.Fatalf("Encrypt() error = %v", err)
	}
	if seq != par {
		t.Error("parallel Encrypt() differs from sequential Encrypt()")
	}
}

func TestEncrypt_Errors(t *testing.T) {
	tests := []struct {
		name      string
		plaintext string
		key       string
		wantErr   error
	}{
		{"empty_key", "text", "", ErrKeyLength},
		{"invalid_utf8_key", "text", "\xff\xfe", ErrEncoding},
		{"invalid_utf8_plaintext", "bad \xc3\x28", "key", ErrEncoding},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Encrypt(tt.plaintext, tt.key)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Encrypt() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestDecrypt_Errors(t *testing.T) {
	tests := []struct {
		name       string
		ciphertext string
		key        string
		wantErr    error
	}{
		{"empty_key", "0x1f", "", ErrKeyLength},
		{"missing_prefix", "1f2e", "key", ErrFormat},
		{"prefix_only", "0x", "key", ErrFormat},
		{"empty_literal", "0x1f0x", "key", ErrFormat},
		{"non_hex_digit", "0x1g", "key", ErrFormat},
		{"too_many_digits", "0x" + strings.Repeat("f", 17), "key", ErrFormat},
		{"separator_between_blocks", "0x1f 0x2e", "key", ErrFormat},
		{"signed_literal", "0x+1f", "key", ErrFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decrypt(tt.ciphertext, tt.key)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Decrypt() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseCiphertext(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []uint64
	}{
		{"empty", "", nil},
		{"short_literal", "0x1f", []uint64{0x1f}},
		{"uppercase_digits", "0xABCDEF", []uint64{0xabcdef}},
		{"full_width_and_short", "0xffffffffffffffff0x0", []uint64{0xffffffffffffffff, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCiphertext(tt.in)
			if err != nil {
				t.Fatalf("ParseCiphertext() error = %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("ParseCiphertext() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("block %d = %#x, want %#x", i, got[i], tt.want[i])
				}
			}
			if tt.in != "" && FormatCiphertext(got) != strings.ToLower(tt.in) {
				t.Errorf("FormatCiphertext() = %q, want %q", FormatCiphertext(got), strings.ToLower(tt.in))
			}
		})
	}
}

func TestFormatCiphertext_NoLeadingZeros(t *testing.T) {
	if got := FormatCiphertext([]uint64{0x0000000000001f2e, 0}); got != "0x1f2e0x0" {
		t.Errorf("FormatCiphertext() = %q, want %q", got, "0x1f2e0x0")
	}
}

func TestEngine_BytesRoundTrip(t *testing.T) {
	data := []byte{0x00, 0x01, 0xFF, 0x80, 0x7F}
	key := []byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xAB, 0xCD, 0xEF}

	blocks, err := Engine{}.EncryptBytes(data, key)
	if err != nil {
		t.Fatalf("EncryptBytes() error = %v", err)
	}
	got, err := Engine{}.DecryptBytes(blocks, key)
	if err != nil {
		t.Fatalf("DecryptBytes() error = %v", err)
	}
	if len(got) != BlockSize || string(got[:len(data)]) != string(data) {
		t.Errorf("DecryptBytes() = %x, want %x zero-padded to one block", got, data)
	}
}
