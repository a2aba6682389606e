package aes128

import (
	"fmt"
)

// rcon0 Powers of x mod poly in GF(2), rcon0[r] is the constant of round r. Index 0 is unused.
var rcon0 = func() (t [Rounds + 1]byte) {
	t[1] = 0x01
	for r := 2; r <= Rounds; r++ {
		t[r] = XTime(t[r-1])
	}
	return t
}()

// Rcon Returns the key schedule round constant for round, starting with 0x01 for round 1.
// Only rounds 1 through Rounds exist for AES-128.
func Rcon(round int) byte {
	if round < 1 || round > Rounds {
		panic(fmt.Sprintf("aes128: round constant for round %d out of range [1, %d]", round, Rounds))
	}
	return rcon0[round]
}
