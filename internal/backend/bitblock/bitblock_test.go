// nolint:all // test package
package bitblock

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
)

func TestTable_Apply(t *testing.T) {
	tests := []struct {
		name    string
		table   Table
		in      uint64
		width   int
		want    uint64
		wantErr bool
	}{
		{
			name:  "identity_8_bits",
			table: Table{1, 2, 3, 4, 5, 6, 7, 8},
			in:    0xA5,
			width: 8,
			want:  0xA5,
		},
		{
			name:  "reverse_8_bits",
			table: Table{8, 7, 6, 5, 4, 3, 2, 1},
			in:    0x01,
			width: 8,
			want:  0x80,
		},
		{
			name:  "index_1_is_most_significant_bit",
			table: Table{1},
			in:    0x80000000,
			width: 32,
			want:  1,
		},
		{
			name:  "expansion_with_repeats",
			table: Table{4, 1, 2, 3, 4, 1},
			in:    0x9, // 1001.
			width: 4,
			want:  0x33, // 110011.
		},
		{
			name:  "selection_drops_bits",
			table: Table{2, 4},
			in:    0x5, // 0101.
			width: 4,
			want:  0x3,
		},
		{
			name:    "index_beyond_block",
			table:   Table{1, 9},
			in:      0xFF,
			width:   8,
			wantErr: true,
		},
		{
			name:    "zero_index",
			table:   Table{0},
			in:      0xFF,
			width:   8,
			wantErr: true,
		},
		{
			name:    "width_too_large",
			table:   Table{1},
			in:      0,
			width:   65,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.table.Apply(tt.in, tt.width)
			if (err != nil) != tt.wantErr {
				t.Errorf("Apply() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				if !errors.Is(err, ErrTableIndex) {
					t.Errorf("Apply() error = %v, want ErrTableIndex", err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("Apply() = %s, want %s", Format(got, len(tt.table)), Format(tt.want, len(tt.table)))
			}
		})
	}
}

func TestTable_PermutePanicsOnBadIndex(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Permute() did not panic on out-of-range index")
		}
	}()
	Table{33}.Permute(0, 32)
}

func TestBlocks(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want []uint64
	}{
		{"empty", nil, []uint64{}},
		{"one_byte_padded_right", []byte{0xAB}, []uint64{0xAB00000000000000}},
		{
			"exact_block",
			[]byte{1, 2, 3, 4, 5, 6, 7, 8},
			[]uint64{0x0102030405060708},
		},
		{
			"two_blocks_second_padded",
			[]byte{1, 2, 3, 4, 5, 6, 7, 8, 9},
			[]uint64{0x0102030405060708, 0x0900000000000000},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Blocks(tt.data)
			if len(got) != len(tt.want) {
				t.Fatalf("Blocks() returned %d blocks, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Blocks()[%d] = %#x, want %#x", i, got[i], tt.want[i])
				}
			}
			joined := Join(got)
			if !bytes.HasPrefix(joined, tt.data) || len(joined)%8 != 0 {
				t.Errorf("Join(Blocks()) = %x, want %x followed by zero padding", joined, tt.data)
			}
		})
	}
}

func TestFromBytes_TruncatesBeyond64Bits(t *testing.T) {
	got := FromBytes([]byte("0123456789"))
	if want := FromBytes([]byte("01234567")); got != want {
		t.Errorf("FromBytes() = %#x, want %#x", got, want)
	}
}

func TestXOR(t *testing.T) {
	tests := []struct {
		name    string
		a, b    []byte
		want    []byte
		wantErr bool
	}{
		{
			name: "xor_not_nor",
			a:    []byte{0x01, 0x23, 0x45, 0x67},
			b:    []byte{0xFE, 0xDC, 0xBA, 0x98},
			want: []byte{0xFF, 0xFF, 0xFF, 0xFF},
		},
		{
			name: "equal_bits_give_zero",
			a:    []byte{0x00, 0xFF},
			b:    []byte{0x00, 0xFF},
			want: []byte{0x00, 0x00},
		},
		{
			name:    "different_lengths",
			a:       []byte{0x01},
			b:       []byte{0x01, 0x02},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := XOR(tt.a, tt.b)
			if (err != nil) != tt.wantErr {
				t.Errorf("XOR() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr && !errors.Is(err, ErrLengthMismatch) {
				t.Errorf("XOR() error = %v, want ErrLengthMismatch", err)
			}
			if !bytes.Equal(got, tt.want) {
				t.Errorf("XOR() = %x, want %x", got, tt.want)
			}
		})
	}
}

func TestRotateLeft28(t *testing.T) {
	tests := []struct {
		name string
		in   uint32
		n    int
		want uint32
	}{
		{"top_bit_wraps", 0x8000000, 1, 0x0000001},
		{"two_positions", 0xC000001, 2, 0x0000007},
		{"full_turn", 0x1234567, 28, 0x1234567},
		{"ignores_high_nibble", 0xF0000001, 1, 0x0000002},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RotateLeft28(tt.in, tt.n); got != tt.want {
				t.Errorf("RotateLeft28(%#x, %d) = %#x, want %#x", tt.in, tt.n, got, tt.want)
			}
		})
	}
}

func TestPad(t *testing.T) {
	tests := []struct {
		name    string
		msgLen  int
		wantLen int
	}{
		{"empty", 0, 64},
		{"fits_one_chunk", 3, 64},
		{"55_bytes_exactly_fills_chunk", 55, 64},
		{"56_bytes_needs_extra_chunk", 56, 128},
		{"63_bytes", 63, 128},
		{"64_bytes", 64, 128},
		{"119_bytes", 119, 128},
		{"120_bytes", 120, 192},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := bytes.Repeat([]byte{'x'}, tt.msgLen)
			for _, order := range []binary.ByteOrder{binary.BigEndian, binary.LittleEndian} {
				got := Pad(msg, order)
				if len(got) != tt.wantLen {
					t.Fatalf("Pad(%s) length = %d, want %d", order, len(got), tt.wantLen)
				}
				if !bytes.Equal(got[:tt.msgLen], msg) {
					t.Errorf("Pad(%s) altered the message prefix", order)
				}
				if got[tt.msgLen] != 0x80 {
					t.Errorf("Pad(%s) marker byte = %#x, want 0x80", order, got[tt.msgLen])
				}
				for i := tt.msgLen + 1; i < len(got)-8; i++ {
					if got[i] != 0 {
						t.Fatalf("Pad(%s) byte %d = %#x, want 0", order, i, got[i])
					}
				}
				if bitLen := order.Uint64(got[len(got)-8:]); bitLen != uint64(tt.msgLen)*8 {
					t.Errorf("Pad(%s) length suffix = %d, want %d", order, bitLen, tt.msgLen*8)
				}
			}
		})
	}
}

func TestWords(t *testing.T) {
	chunk := make([]byte, ChunkSize)
	copy(chunk, []byte{0x61, 0x62, 0x63, 0x80})

	if got := Words(chunk, binary.BigEndian)[0]; got != 0x61626380 {
		t.Errorf("Words(BigEndian)[0] = %#x, want 0x61626380", got)
	}
	if got := Words(chunk, binary.LittleEndian)[0]; got != 0x80636261 {
		t.Errorf("Words(LittleEndian)[0] = %#x, want 0x80636261", got)
	}
}

func TestFormat(t *testing.T) {
	if got := Format(0x5, 6); got != "000101" {
		t.Errorf("Format() = %q, want %q", got, "000101")
	}
}
