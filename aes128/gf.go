package aes128

// AES is based on the mathematical behavior of binary polynomials
// (polynomials over GF(2)) modulo the irreducible polynomial x⁸ + x⁴ + x³ + x + 1.
// Addition of these binary polynomials corresponds to binary xor.
// Reducing mod poly corresponds to binary xor with poly every
// time a 0x100 bit appears.
const poly = 1<<8 | 1<<4 | 1<<3 | 1<<1 | 1<<0 // x⁸ + x⁴ + x³ + x + 1

// XTime Multiplies b by x in GF(2⁸) modulo poly.
// The reduction is applied through a mask built from the high bit, so there is no branch on b.
func XTime(b byte) byte {
	return b<<1 ^ (poly&0xff)&-(b>>7)
}

func mul2(b byte) byte {
	return XTime(b)
}

func mul3(b byte) byte {
	return XTime(b) ^ b
}
