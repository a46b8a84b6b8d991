package sponge

import (
	"encoding/binary"

	"github.com/Aurorachain/go-sponge/crypto/keccak"
)

// xorIn XORs buf into the leading len(buf) bytes of the state. Byte i lands
// in lane i/n at bit offset 8*(i%n), where n is the lane size in bytes.
func xorIn[L keccak.Lane](a *[25]L, buf []byte, n int) {
	i := 0
	if n == 8 {
		for ; len(buf)-i >= 8; i += 8 {
			a[i/8] ^= L(binary.LittleEndian.Uint64(buf[i:]))
		}
	}
	for ; i < len(buf); i++ {
		a[i/n] ^= L(buf[i]) << (8 * uint(i%n))
	}
}

// copyOut fills b from the leading len(b) bytes of the state, least
// significant byte of each lane first.
func copyOut[L keccak.Lane](a *[25]L, b []byte, n int) {
	i := 0
	if n == 8 {
		for ; len(b)-i >= 8; i += 8 {
			binary.LittleEndian.PutUint64(b[i:], uint64(a[i/8]))
		}
	}
	for ; i < len(b); i++ {
		b[i] = byte(a[i/n] >> (8 * uint(i%n)))
	}
}
