// nolint:all // test package
package crypto

import (
	stddes "crypto/des"
	"errors"
	"fmt"
	"testing"

	"github.com/andrei-cloud/cryptolab/internal/backend/des"
)

func TestCalculateKCV(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		wantErr bool
	}{
		{name: "eight_byte_key", key: "secret12"},
		{name: "short_key_zero_padded", key: "k"},
		{name: "long_key_truncated", key: "secret12 and then some"},
		{name: "cyrillic_key", key: "ключ"},
		{name: "empty_key", key: "", wantErr: true},
		{name: "invalid_utf8_key", key: "\xff\xfe", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CalculateKCV(tt.key)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CalculateKCV() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}

			want := stdlibKCV(t, tt.key)
			if got != want {
				t.Errorf("CalculateKCV(%q) = %s, want %s", tt.key, got, want)
			}
		})
	}
}

func stdlibKCV(t *testing.T, key string) string {
	t.Helper()
	k := make([]byte, 8)
	copy(k, key)
	block, err := stddes.NewCipher(k)
	if err != nil {
		t.Fatalf("crypto/des: %v", err)
	}
	out := make([]byte, 8)
	block.Encrypt(out, make([]byte, 8))

	return fmt.Sprintf("%X", out[:3])
}

func TestProcessDES(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		key       string
		workers   int
		wantErr   error
		roundTrip bool
	}{
		{name: "ascii_round_trip", text: "Hello, DES!", key: "secret12", roundTrip: true},
		{name: "parallel_round_trip", text: "a longer message spanning several blocks", key: "k", workers: 4, roundTrip: true},
		{name: "unicode_round_trip", text: "Привет 🔐", key: "ключ", roundTrip: true},
		{name: "empty_text", text: "", key: "secret12", roundTrip: true},
		{name: "empty_key", text: "data", key: "", wantErr: des.ErrKeyLength},
		{name: "invalid_plaintext", text: "\xc3\x28", key: "secret12", wantErr: des.ErrEncoding},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ct, err := ProcessDES(&DESParams{Text: tt.text, Key: tt.key, Encrypt: true, Workers: tt.workers})
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("ProcessDES() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ProcessDES() encrypt error = %v", err)
			}

			pt, err := ProcessDES(&DESParams{Text: " " + ct + "\n", Key: tt.key, Workers: tt.workers})
			if err != nil {
				t.Fatalf("ProcessDES() decrypt error = %v", err)
			}
			if pt != tt.text {
				t.Errorf("round trip = %q, want %q", pt, tt.text)
			}
		})
	}
}

func TestProcessDES_Errors(t *testing.T) {
	if _, err := ProcessDES(nil); !errors.Is(err, ErrNilParams) {
		t.Errorf("ProcessDES(nil) error = %v, want ErrNilParams", err)
	}

	_, err := ProcessDES(&DESParams{Text: "deadbeef", Key: "secret12"})
	if !errors.Is(err, des.ErrFormat) {
		t.Errorf("ProcessDES() error = %v, want ErrFormat", err)
	}
}
