package selftest

import (
	"github.com/Concord1/AES-128/types"
)

type Vector struct {
	Name       string      `json:"name"`
	Key        types.Key   `json:"key"`
	Plaintext  types.Block `json:"plaintext"`
	Ciphertext types.Block `json:"ciphertext"`
}

func mustASCII[T ~[16]byte](s string) T {
	v, err := types.Bytes16FromASCII[T](s)
	if err != nil {
		panic(err)
	}
	return v
}

var Vectors = []Vector{
	// FIPS-197 Appendix B, Cipher Example
	{
		Name:       "FIPS-197 B",
		Key:        types.MustKeyFromString("2b7e151628aed2a6abf7158809cf4f3c"),
		Plaintext:  types.MustBlockFromString("3243f6a8885a308d313198a2e0370734"),
		Ciphertext: types.MustBlockFromString("3925841d02dc09fbdc118597196a0b32"),
	},
	// FIPS-197 Appendix C.1, AES-128 (Nk=4, Nr=10)
	{
		Name:       "FIPS-197 C.1",
		Key:        types.MustKeyFromString("000102030405060708090a0b0c0d0e0f"),
		Plaintext:  types.MustBlockFromString("00112233445566778899aabbccddeeff"),
		Ciphertext: types.MustBlockFromString("69c4e0d86a7b0430d8cdb78070b4c55a"),
	},

	// NIST SP 800-38A F.1.1 ECB-AES128.Encrypt, one block each
	{
		Name:       "SP 800-38A F.1.1 #1",
		Key:        types.MustKeyFromString("2b7e151628aed2a6abf7158809cf4f3c"),
		Plaintext:  types.MustBlockFromString("6bc1bee22e409f96e93d7e117393172a"),
		Ciphertext: types.MustBlockFromString("3ad77bb40d7a3660a89ecaf32466ef97"),
	},
	{
		Name:       "SP 800-38A F.1.1 #2",
		Key:        types.MustKeyFromString("2b7e151628aed2a6abf7158809cf4f3c"),
		Plaintext:  types.MustBlockFromString("ae2d8a571e03ac9c9eb76fac45af8e51"),
		Ciphertext: types.MustBlockFromString("f5d3d58503b9699de785895a96fdbaaf"),
	},
	{
		Name:       "SP 800-38A F.1.1 #3",
		Key:        types.MustKeyFromString("2b7e151628aed2a6abf7158809cf4f3c"),
		Plaintext:  types.MustBlockFromString("30c81c46a35ce411e5fbc1191a0a52ef"),
		Ciphertext: types.MustBlockFromString("43b1cd7f598ece23881b00e3ed030688"),
	},
	{
		Name:       "SP 800-38A F.1.1 #4",
		Key:        types.MustKeyFromString("2b7e151628aed2a6abf7158809cf4f3c"),
		Plaintext:  types.MustBlockFromString("f69f2445df4f9b17ad2b417be66c3710"),
		Ciphertext: types.MustBlockFromString("7b0c785e27e8ad3f8223207104725dd4"),
	},

	{
		Name:       "zero key, zero block",
		Key:        types.Key{},
		Plaintext:  types.Block{},
		Ciphertext: types.MustBlockFromString("66e94bd4ef8a2c3b884cfa59ca342b2e"),
	},

	// ASCII inputs
	{
		Name:       "Thats my Kung Fu",
		Key:        mustASCII[types.Key]("Thats my Kung Fu"),
		Plaintext:  mustASCII[types.Block]("Two One Nine Two"),
		Ciphertext: types.MustBlockFromString("29c3505f571420f6402299b31a02d73a"),
	},
}
