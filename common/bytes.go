// Package common contains the hex helpers shared by the sponge packages and
// their tests.
package common

import "encoding/hex"

// ToHex returns the 0x-prefixed hex form of b.
func ToHex(b []byte) string {
	hex := Bytes2Hex(b)

	if len(hex) == 0 {
		hex = "0"
	}
	return "0x" + hex
}

// FromHex decodes s, tolerating a 0x prefix and an odd number of digits.
// Invalid input decodes to nil.
func FromHex(s string) []byte {
	if hasHexPrefix(s) {
		s = s[2:]
	}
	if len(s)%2 == 1 {
		s = "0" + s
	}
	return Hex2Bytes(s)
}

func hasHexPrefix(str string) bool {
	return len(str) >= 2 && str[0] == '0' && (str[1] == 'x' || str[1] == 'X')
}

func isHexCharacter(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

// IsHex reports whether str is an even-length run of hex digits without a
// prefix.
func IsHex(str string) bool {
	if len(str)%2 != 0 {
		return false
	}
	for _, c := range []byte(str) {
		if !isHexCharacter(c) {
			return false
		}
	}
	return true
}

func Bytes2Hex(d []byte) string {
	return hex.EncodeToString(d)
}

func Hex2Bytes(str string) []byte {
	h, _ := hex.DecodeString(str)

	return h
}
