package aes128

import (
	"github.com/Concord1/AES-128/types"
)

// Word 4-byte column of the key schedule
type Word [4]byte

// RoundKey 16 bytes XORed into the state, in the same column-major order as the input block
type RoundKey [BlockSize]byte

// Schedule All round keys for one cipher key. Schedule[0] is the cipher key itself.
type Schedule [Rounds + 1]RoundKey

func (rk *RoundKey) Word(i int) (w Word) {
	copy(w[:], rk[4*i:4*i+4])
	return w
}

func (rk RoundKey) String() string {
	return types.Block(rk).String()
}

// Rotate
func rotWord(w Word) Word {
	return Word{w[1], w[2], w[3], w[0]}
}

// Apply sbox0 to each byte in w.
func subWord(w Word) Word {
	return Word{sbox0[w[0]], sbox0[w[1]], sbox0[w[2]], sbox0[w[3]]}
}

func xorWord(a, b Word) Word {
	return Word{a[0] ^ b[0], a[1] ^ b[1], a[2] ^ b[2], a[3] ^ b[3]}
}

// ExpandKey Derives the Rounds + 1 round keys of key.
//
// Words w[0..3] are the key. Every fourth word passes the previous word through
// RotWord, SubWord and the round constant before the XOR with the word four
// positions earlier; the other words are a plain XOR of the previous word and
// the word four positions earlier.
func ExpandKey(key *types.Key) (schedule Schedule) {
	var w [4 * (Rounds + 1)]Word

	for i := range 4 {
		copy(w[i][:], key[4*i:4*i+4])
	}

	for i := 4; i < len(w); i++ {
		t := w[i-1]
		if i%4 == 0 {
			t = subWord(rotWord(t))
			t[0] ^= Rcon(i / 4)
		}
		w[i] = xorWord(w[i-4], t)
	}

	for r := range schedule {
		for j := range 4 {
			copy(schedule[r][4*j:], w[4*r+j][:])
		}
	}
	return schedule
}
