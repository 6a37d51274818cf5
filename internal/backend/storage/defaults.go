package storage

import "strings"

// DefaultVectors returns the RFC 1321 and FIPS 180-1 digests of the
// reference messages, the classic single-block DES vectors and text-mode DES
// vectors that cover key padding, block padding and literal formatting.
func DefaultVectors() []Vector {
	messages := []struct {
		name string
		text string
		md5  string
		sha1 string
	}{
		{"empty", "", "d41d8cd98f00b204e9800998ecf8427e", "da39a3ee5e6b4b0d3255bfef95601890afd80709"},
		{"a", "a", "0cc175b9c0f1b6a831c399e269772661", "86f7e437faa5a7fce15d1ddcb9eaeaea377667b8"},
		{"abc", "abc", "900150983cd24fb0d6963f7d28e17f72", "a9993e364706816aba3e25717850c26c9cd0d89d"},
		{
			"message_digest", "message digest",
			"f96b697d7cb7938d525a2f31aaf161d0", "c12252ceda8be8994d5fa0290a47231c1d16aae3",
		},
		{
			"alphabet", "abcdefghijklmnopqrstuvwxyz",
			"c3fcd3d76192e4007dfb496cca67e13b", "32d10c7b8cf96570ca04ce37f2a19d84240d3a89",
		},
		{
			"alphanumerics", "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789",
			"d174ab98d277d9f5a5611c2c9f419d9f", "761c457bf73b14d27e9e9265c46f4b4dda11f940",
		},
		{
			"digits_x8", strings.Repeat("1234567890", 8),
			"57edf4a22be3c955ac49da2e2107b67a", "50abf5706a150990a08b2c5ea40fa0e585554732",
		},
	}

	vectors := make([]Vector, 0, 2*len(messages)+6)
	for _, m := range messages {
		vectors = append(vectors,
			Vector{Name: "md5_" + m.name, Algorithm: MD5, Input: m.text, Expected: m.md5},
			Vector{Name: "sha1_" + m.name, Algorithm: SHA1, Input: m.text, Expected: m.sha1},
		)
	}

	return append(vectors,
		Vector{
			Name: "des_ecb_textbook", Algorithm: DESBlock,
			Key: "133457799BBCDFF1", Input: "0123456789ABCDEF", Expected: "85E813540F0AB405",
		},
		Vector{
			Name: "des_ecb_now_is_t", Algorithm: DESBlock,
			Key: "0123456789ABCDEF", Input: "4E6F772069732074", Expected: "3FA40E8A984D4815",
		},
		Vector{
			Name: "des_ecb_zero_output", Algorithm: DESBlock,
			Key: "0E329232EA6D0D73", Input: "8787878787878787", Expected: "0000000000000000",
		},
		Vector{
			Name: "des_ecb_kcv_block", Algorithm: DESBlock,
			Key: "0123456789ABCDEF", Input: "0000000000000000", Expected: "D5D44FF720683D0D",
		},
		// Short key and a padded second block.
		Vector{
			Name: "des_text_hello", Algorithm: DESText,
			Key: "Key", Input: "Hello, World!", Expected: "0x8fbc6843ee0bf9c80x67f19b44c14688b8",
		},
		// The block value 0x0778daeef891556d loses its leading zero.
		Vector{
			Name: "des_text_leading_zero", Algorithm: DESText,
			Key: "secret12", Input: "vector 5", Expected: "0x778daeef891556d",
		},
	)
}
