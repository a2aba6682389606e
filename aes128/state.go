package aes128

import (
	"github.com/Concord1/AES-128/types"
)

// State 4x4 byte matrix indexed [row][column].
// Input byte i is placed at row i % 4, column i / 4.
type State [4][4]byte

func NewState(in *types.Block) (s State) {
	for i := range BlockSize {
		s[i%4][i/4] = in[i]
	}
	return s
}

// Block Serializes the state back in the column-major order it was built from
func (s *State) Block() (out types.Block) {
	for i := range BlockSize {
		out[i] = s[i%4][i/4]
	}
	return out
}

func (s *State) SubBytes() {
	for r := range 4 {
		for c := range 4 {
			s[r][c] = sbox0[s[r][c]]
		}
	}
}

// ShiftRows Rotates row r left by r positions
func (s *State) ShiftRows() {
	for r := 1; r < 4; r++ {
		row := s[r]
		for c := range 4 {
			s[r][c] = row[(c+r)%4]
		}
	}
}

// MixColumns Multiplies every column by the fixed matrix
//
//	2 3 1 1
//	1 2 3 1
//	1 1 2 3
//	3 1 1 2
//
// over GF(2⁸).
func (s *State) MixColumns() {
	for c := range 4 {
		c0, c1, c2, c3 := s[0][c], s[1][c], s[2][c], s[3][c]

		s[0][c] = mul2(c0) ^ mul3(c1) ^ c2 ^ c3
		s[1][c] = c0 ^ mul2(c1) ^ mul3(c2) ^ c3
		s[2][c] = c0 ^ c1 ^ mul2(c2) ^ mul3(c3)
		s[3][c] = mul3(c0) ^ c1 ^ c2 ^ mul2(c3)
	}
}

func (s *State) AddRoundKey(rk *RoundKey) {
	for i := range BlockSize {
		s[i%4][i/4] ^= rk[i]
	}
}
