package sponge

// pad applies the pad10*1 rule to a full rate block whose first k bytes hold
// the unabsorbed message tail: a 0x01 byte at k, zeros, and 0x80 in the last
// byte. When k is the last byte the two marks merge into 0x81.
func pad(block []byte, k int) {
	for i := k; i < len(block); i++ {
		block[i] = 0
	}
	block[k] ^= 0x01
	block[len(block)-1] ^= 0x80
}
