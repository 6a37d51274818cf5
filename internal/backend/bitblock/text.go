package bitblock

import (
	"errors"
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// ErrInvalidUTF8 is returned by UTF8 for text that is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("invalid UTF-8 text")

// UTF8 returns the bytes the engines operate on for text. Invalid sequences
// are rejected rather than replaced with U+FFFD.
func UTF8(text string) ([]byte, error) {
	out, n, err := transform.Bytes(encoding.UTF8Validator, []byte(text))
	if err != nil {
		return nil, fmt.Errorf("%w at byte %d", ErrInvalidUTF8, n)
	}

	return out, nil
}
