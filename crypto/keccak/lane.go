// Package keccak implements the Keccak-f permutation family for the two lane
// widths used by this module: Keccak-f[200] (8-bit lanes, 18 rounds) and
// Keccak-f[1600] (64-bit lanes, 24 rounds).
//
// The round body is written once over the Lane constraint. The state is a
// flat [25]L array addressed as a[5*y+x].
package keccak

import (
	"math/bits"
	"unsafe"
)

// Lane is the word type of one cell of the 5x5 state.
type Lane interface {
	~uint8 | ~uint64
}

// LaneBits returns the lane width w in bits.
func LaneBits[L Lane]() uint {
	var x L
	return uint(unsafe.Sizeof(x)) * 8
}

// Rounds returns the number of rounds of Keccak-f for lane type L, 12+2l
// where w = 2^l.
func Rounds[L Lane]() int {
	return 12 + 2*bits.TrailingZeros(LaneBits[L]())
}

// rotl rotates x left by n bits within a w-bit lane.
func rotl[L Lane](x L, n, w uint) L {
	n %= w
	if n == 0 {
		return x
	}
	return x<<n | x>>(w-n)
}
