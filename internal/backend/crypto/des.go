package crypto

import (
	"errors"
	"fmt"
	"strings"

	"github.com/andrei-cloud/cryptolab/internal/backend/bitblock"
	"github.com/andrei-cloud/cryptolab/internal/backend/des"
	"github.com/andrei-cloud/cryptolab/pkg/utils"
)

var (
	// ErrNilParams is returned when a calculator is called without parameters.
	ErrNilParams = errors.New("params cannot be nil")
	// ErrUnsupportedAlgorithm is returned for an unknown hash algorithm.
	ErrUnsupportedAlgorithm = errors.New("unsupported algorithm")
	// ErrUnsupportedOperation is returned for an unknown bitwise operation.
	ErrUnsupportedOperation = errors.New("unsupported operation")
)

// kcvLength is the number of ciphertext bytes shown as key check value.
const kcvLength = 3

// DESParams holds parameters for a DES text operation.
type DESParams struct {
	Text    string // Plaintext when encrypting, 0x-literal ciphertext when decrypting.
	Key     string
	Encrypt bool
	Workers int // Values above 1 process blocks concurrently.
}

// ProcessDES encrypts or decrypts params.Text according to params.
func ProcessDES(params *DESParams) (string, error) {
	if params == nil {
		return "", ErrNilParams
	}

	engine := des.Engine{Workers: params.Workers}
	if params.Encrypt {
		out, err := engine.Encrypt(params.Text, params.Key)
		if err != nil {
			return "", fmt.Errorf("encryption failed: %w", err)
		}
		return out, nil
	}

	// Copy-paste from a terminal often brings surrounding whitespace along.
	out, err := engine.Decrypt(strings.TrimSpace(params.Text), params.Key)
	if err != nil {
		return "", fmt.Errorf("decryption failed: %w", err)
	}

	return out, nil
}

// CalculateKCV calculates the Key Check Value of a text key: the first
// three bytes of the all-zero block encrypted under that key.
func CalculateKCV(key string) (string, error) {
	k, err := utils.EncodeUTF8(key)
	if err != nil {
		return "", fmt.Errorf("failed to calculate KCV: %w: %v", des.ErrEncoding, err)
	}

	blocks, err := des.Engine{}.EncryptBytes(make([]byte, des.BlockSize), k)
	if err != nil {
		return "", fmt.Errorf("failed to calculate KCV: %w", err)
	}

	sum := bitblock.Join(blocks)

	return fmt.Sprintf("%X", sum[:kcvLength]), nil
}
