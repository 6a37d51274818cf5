package crypto

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/andrei-cloud/cryptolab/internal/backend/bitblock"
	"github.com/andrei-cloud/cryptolab/internal/backend/des"
	"github.com/andrei-cloud/cryptolab/internal/backend/storage"
	"github.com/andrei-cloud/cryptolab/pkg/utils"
)

// SelfTestResult reports the outcome of one known-answer vector.
type SelfTestResult struct {
	Name      string
	Algorithm storage.Algorithm
	Expected  string
	Got       string
	Passed    bool
	Err       error
}

// RunSelfTest recomputes every vector and compares the result with its
// expected value. Hex comparisons ignore case.
func RunSelfTest(vectors []storage.Vector) []SelfTestResult {
	results := make([]SelfTestResult, 0, len(vectors))
	for _, v := range vectors {
		got, err := computeVector(v)
		results = append(results, SelfTestResult{
			Name:      v.Name,
			Algorithm: v.Algorithm,
			Expected:  v.Expected,
			Got:       got,
			Passed:    err == nil && matches(v, got),
			Err:       err,
		})
	}

	return results
}

// Failed counts the failing results.
func Failed(results []SelfTestResult) int {
	n := 0
	for _, r := range results {
		if !r.Passed {
			n++
		}
	}

	return n
}

func computeVector(v storage.Vector) (string, error) {
	switch v.Algorithm {
	case storage.MD5:
		return ProcessHash(&HashParams{Algorithm: MD5, Text: v.Input})
	case storage.SHA1:
		return ProcessHash(&HashParams{Algorithm: SHA1, Text: v.Input})
	case storage.DESText:
		return ProcessDES(&DESParams{Text: v.Input, Key: v.Key, Encrypt: true})
	case storage.DESBlock:
		return desBlock(v.Key, v.Input)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedAlgorithm, v.Algorithm)
	}
}

func desBlock(keyHex, blockHex string) (string, error) {
	key, err := decodeBlock(keyHex)
	if err != nil {
		return "", fmt.Errorf("key: %w", err)
	}
	block, err := decodeBlock(blockHex)
	if err != nil {
		return "", fmt.Errorf("block: %w", err)
	}

	c, err := des.NewCipher(key)
	if err != nil {
		return "", err
	}

	out := binary.BigEndian.AppendUint64(nil, c.EncryptBlock(bitblock.FromBytes(block)))

	return encodeHex(out), nil
}

func decodeBlock(s string) ([]byte, error) {
	if err := utils.ValidateHexFixedLength(s, des.BlockSize); err != nil {
		return nil, err
	}

	return utils.DecodeHex(s)
}

func matches(v storage.Vector, got string) bool {
	if v.Algorithm == storage.DESText {
		return got == v.Expected
	}

	return strings.EqualFold(got, v.Expected)
}
