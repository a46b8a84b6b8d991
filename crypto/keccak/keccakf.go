package keccak

// Permute applies the first rounds rounds of Keccak-f to a in place.
func Permute[L Lane](a *[25]L, rounds int) {
	w := LaneBits[L]()

	var (
		bc [5]L
		t  L
	)
	for r := 0; r < rounds; r++ {
		// theta
		for i := 0; i < 5; i++ {
			bc[i] = a[i] ^ a[i+5] ^ a[i+10] ^ a[i+15] ^ a[i+20]
		}
		for i := 0; i < 5; i++ {
			t = bc[(i+4)%5] ^ rotl(bc[(i+1)%5], 1, w)
			for j := 0; j < 25; j += 5 {
				a[j+i] ^= t
			}
		}

		// rho pi
		t = a[1]
		for i := 0; i < 24; i++ {
			j := PiLanes[i]
			bc[0] = a[j]
			a[j] = rotl(t, RotationOffsets[i], w)
			t = bc[0]
		}

		// chi
		for j := 0; j < 25; j += 5 {
			for i := 0; i < 5; i++ {
				bc[i] = a[j+i]
			}
			for i := 0; i < 5; i++ {
				a[j+i] = bc[i] ^ (^bc[(i+1)%5] & bc[(i+2)%5])
			}
		}

		// iota
		a[0] ^= L(RoundConstants[r])
	}
}

// F200 applies the 18-round Keccak-f[200] permutation.
func F200(a *[25]uint8) { Permute(a, Rounds[uint8]()) }

// F1600 applies the 24-round Keccak-f[1600] permutation.
func F1600(a *[25]uint64) { Permute(a, Rounds[uint64]()) }
