package selftest

import (
	"encoding/binary"

	"github.com/Concord1/AES-128/types"
	"golang.org/x/crypto/sha3"
)

var inputPairDomain = append([]byte("aes128_selftest_pair"), 0)
var permutationKeyDomain = append([]byte("aes128_selftest_permutation_key"), 0)

func shake(domain, seed []byte, index uint64, out ...[]byte) {
	var counter [8]byte
	binary.LittleEndian.PutUint64(counter[:], index)

	h := sha3.NewShake128()
	_, _ = h.Write(domain)
	_, _ = h.Write(seed)
	_, _ = h.Write(counter[:])
	for _, buf := range out {
		_, _ = h.Read(buf)
	}
}

// InputPair Deterministic key and plaintext number index derived from seed.
// The same (seed, index) always yields the same pair, independent of which worker asks for it.
func InputPair(seed []byte, index uint64) (key types.Key, plaintext types.Block) {
	shake(inputPairDomain, seed, index, key[:], plaintext[:])
	return key, plaintext
}

func permutationKey(seed []byte) (key types.Key) {
	shake(permutationKeyDomain, seed, 0, key[:])
	return key
}

// counterBlock Distinct block for every index, index big-endian in the last 8 bytes
func counterBlock(index uint64) (b types.Block) {
	binary.BigEndian.PutUint64(b[types.BlockSize-8:], index)
	return b
}
