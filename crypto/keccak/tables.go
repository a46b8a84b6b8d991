package keccak

var (
	// RoundConstants holds the 24 iota constants of Keccak-f[1600]. Narrower
	// lanes use the low w bits of the same values.
	RoundConstants [24]uint64

	// RotationOffsets holds the rho offsets in the order of the pi walk, as
	// triangular numbers (t+1)(t+2)/2. They are reduced modulo the lane
	// width at rotation time.
	RotationOffsets [24]uint

	// PiLanes holds the lane indices visited by the combined rho/pi walk
	// starting from lane (1,0).
	PiLanes [24]int
)

func init() {
	deriveRoundConstants()
	deriveRhoPi()
}

// rcBit returns output bit t of the LFSR x^8+x^6+x^5+x^4+1.
func rcBit(t int) uint64 {
	if t%255 == 0 {
		return 1
	}
	r := uint16(1)
	for i := 1; i <= t%255; i++ {
		r <<= 1
		if r&0x100 != 0 {
			r ^= 0x171
		}
	}
	return uint64(r & 1)
}

func deriveRoundConstants() {
	for ir := range RoundConstants {
		var c uint64
		for j := 0; j < 7; j++ {
			c |= rcBit(j+7*ir) << (uint(1)<<uint(j) - 1)
		}
		RoundConstants[ir] = c
	}
}

func deriveRhoPi() {
	x, y := 1, 0
	for t := range PiLanes {
		RotationOffsets[t] = uint((t + 1) * (t + 2) / 2)
		x, y = y, (2*x+3*y)%5
		PiLanes[t] = x + 5*y
	}
}
