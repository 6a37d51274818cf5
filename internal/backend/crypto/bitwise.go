package crypto

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/andrei-cloud/cryptolab/internal/backend/bitblock"
	"github.com/andrei-cloud/cryptolab/pkg/utils"
)

// BitwiseOperation represents a bitwise operation type.
type BitwiseOperation string

const (
	// XOR operation.
	XOR BitwiseOperation = "XOR"
	// AND operation.
	AND BitwiseOperation = "AND"
	// OR operation.
	OR BitwiseOperation = "OR"
	// NOT operation.
	NOT BitwiseOperation = "NOT"
)

// BitwiseOperations lists the supported operations in display order.
var BitwiseOperations = []BitwiseOperation{XOR, AND, OR, NOT}

// BitwiseParams holds parameters for bitwise operations.
type BitwiseParams struct {
	Operation BitwiseOperation
	BlockA    string // Hex string input, spaces allowed.
	BlockB    string // Hex string input (ignored for NOT).
}

// PerformBitwise executes the specified bitwise operation and returns the
// result as uppercase hex.
func PerformBitwise(params *BitwiseParams) (string, error) {
	if params == nil {
		return "", ErrNilParams
	}

	a, err := utils.DecodeHex(params.BlockA)
	if err != nil {
		return "", fmt.Errorf("invalid hex in block A: %w", err)
	}

	// For NOT operation, we don't need block B.
	if params.Operation == NOT {
		result := make([]byte, len(a))
		for i := range a {
			result[i] = ^a[i]
		}
		return encodeHex(result), nil
	}

	b, err := utils.DecodeHex(params.BlockB)
	if err != nil {
		return "", fmt.Errorf("invalid hex in block B: %w", err)
	}

	var result []byte
	switch params.Operation {
	case XOR:
		result, err = bitblock.XOR(a, b)
	case AND:
		result, err = combine(a, b, func(x, y byte) byte { return x & y })
	case OR:
		result, err = combine(a, b, func(x, y byte) byte { return x | y })
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedOperation, params.Operation)
	}
	if err != nil {
		return "", fmt.Errorf("input blocks must be same length: %w", err)
	}

	return encodeHex(result), nil
}

func combine(a, b []byte, op func(x, y byte) byte) ([]byte, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("%w: %d and %d bytes", bitblock.ErrLengthMismatch, len(a), len(b))
	}

	out := make([]byte, len(a))
	for i := range a {
		out[i] = op(a[i], b[i])
	}

	return out, nil
}

func encodeHex(b []byte) string {
	return strings.ToUpper(hex.EncodeToString(b))
}
