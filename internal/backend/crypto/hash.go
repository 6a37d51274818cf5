package crypto

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/andrei-cloud/cryptolab/internal/backend/md5"
	"github.com/andrei-cloud/cryptolab/internal/backend/sha1"
)

// HashAlgorithm names a message digest.
type HashAlgorithm string

const (
	// MD5 is the RFC 1321 digest.
	MD5 HashAlgorithm = "MD5"
	// SHA1 is the FIPS 180-1 digest.
	SHA1 HashAlgorithm = "SHA-1"
)

// HashAlgorithms lists the supported digests in display order.
var HashAlgorithms = []HashAlgorithm{MD5, SHA1}

// ParseHashAlgorithm maps a user supplied name such as "md5", "sha1" or
// "SHA-1" to a HashAlgorithm.
func ParseHashAlgorithm(name string) (HashAlgorithm, error) {
	switch strings.ToUpper(strings.ReplaceAll(name, "-", "")) {
	case "MD5":
		return MD5, nil
	case "SHA1":
		return SHA1, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedAlgorithm, name)
	}
}

// HashParams holds parameters for a digest calculation. When Data is set it
// is hashed as raw bytes and Text is ignored.
type HashParams struct {
	Algorithm HashAlgorithm
	Text      string
	Data      []byte
}

// ProcessHash returns the lowercase hex digest described by params.
func ProcessHash(params *HashParams) (string, error) {
	if params == nil {
		return "", ErrNilParams
	}

	if params.Data != nil {
		switch params.Algorithm {
		case MD5:
			sum := md5.Sum(params.Data)
			return hex.EncodeToString(sum[:]), nil
		case SHA1:
			sum := sha1.Sum(params.Data)
			return hex.EncodeToString(sum[:]), nil
		default:
			return "", fmt.Errorf("%w: %s", ErrUnsupportedAlgorithm, params.Algorithm)
		}
	}

	var (
		digest string
		err    error
	)
	switch params.Algorithm {
	case MD5:
		digest, err = md5.Hash(params.Text)
	case SHA1:
		digest, err = sha1.Hash(params.Text)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedAlgorithm, params.Algorithm)
	}
	if err != nil {
		return "", fmt.Errorf("%s failed: %w", params.Algorithm, err)
	}

	return digest, nil
}
