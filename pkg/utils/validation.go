package utils

import (
	"encoding/hex"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

var (
	// nameRegex validates vector names.
	nameRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

	// hexRegex validates hex strings.
	hexRegex = regexp.MustCompile(`^[0-9A-Fa-f]+$`)

	// ciphertextRegex validates concatenated 0x-prefixed block literals.
	ciphertextRegex = regexp.MustCompile(`^(0x[0-9A-Fa-f]{1,16})*$`)
)

// maxNameLength bounds vector names.
const maxNameLength = 50

// ErrInvalidUTF8 is returned for text that is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("invalid UTF-8 text")

// ValidateHex checks if a string is valid hexadecimal.
func ValidateHex(input string) error {
	// Remove spaces and validate.
	clean := strings.ReplaceAll(input, " ", "")

	if !hexRegex.MatchString(clean) {
		return fmt.Errorf("invalid hex string")
	}

	if len(clean)%2 != 0 {
		return fmt.Errorf("hex string length must be even")
	}

	return nil
}

// ValidateHexFixedLength checks if a hex string has a specific byte length.
func ValidateHexFixedLength(input string, byteLength int) error {
	if err := ValidateHex(input); err != nil {
		return err
	}

	clean := strings.ReplaceAll(input, " ", "")
	if len(clean) != byteLength*2 {
		return fmt.Errorf("invalid length: got %d bytes, want %d bytes", len(clean)/2, byteLength)
	}

	return nil
}

// DecodeHex decodes a hex string, handling spaces.
func DecodeHex(input string) ([]byte, error) {
	// Remove spaces for decoding.
	clean := strings.ReplaceAll(input, " ", "")

	out, err := hex.DecodeString(clean)
	if err != nil {
		return nil, err
	}

	return out, nil
}

// EncodeUTF8 returns the UTF-8 bytes of input. It fails on the first byte
// sequence that is not valid UTF-8 instead of substituting U+FFFD.
func EncodeUTF8(input string) ([]byte, error) {
	out, n, err := transform.Bytes(encoding.UTF8Validator, []byte(input))
	if err != nil {
		return nil, fmt.Errorf("%w at byte %d", ErrInvalidUTF8, n)
	}

	return out, nil
}

// ValidateUTF8 checks that input is valid UTF-8 text.
func ValidateUTF8(input string) error {
	_, err := EncodeUTF8(input)

	return err
}

// ValidateDESKey checks that a text key is non-empty UTF-8. Keys longer than
// eight bytes are accepted; the cipher only uses the first eight.
func ValidateDESKey(key string) error {
	if key == "" {
		return fmt.Errorf("key cannot be empty")
	}

	return ValidateUTF8(key)
}

// ValidateCiphertext checks that input is a sequence of 0x-prefixed hex
// block literals of at most 16 digits each.
func ValidateCiphertext(input string) error {
	if !ciphertextRegex.MatchString(input) {
		return fmt.Errorf("ciphertext must be a sequence of 0x-prefixed hex blocks")
	}

	return nil
}

// ValidateVectorName checks if a test vector name is valid.
func ValidateVectorName(name string) error {
	if name == "" {
		return fmt.Errorf("vector name cannot be empty")
	}

	if len(name) > maxNameLength {
		return fmt.Errorf("vector name must be at most %d characters", maxNameLength)
	}

	if !nameRegex.MatchString(name) {
		return fmt.Errorf("vector name must contain only letters, digits, '_' or '-'")
	}

	return nil
}
