package types

import (
	"errors"

	fasthex "github.com/tmthrgd/go-hex"
	"lukechampine.com/uint128"
)

const BlockSize = 16
const KeySize = 16

// Block One 128-bit AES block, plaintext or ciphertext, in input byte order
//
//nolint:recvcheck
type Block [BlockSize]byte

// Key One AES-128 cipher key
//
//nolint:recvcheck
type Key [KeySize]byte

var ZeroBlock Block

var (
	ErrWrongSize   = errors.New("wrong size")
	ErrNotASCII    = errors.New("non-ASCII character")
	errInvalidJSON = errors.New("invalid hex JSON string")
)

func MustBytes16FromString[T ~[16]byte](s string) T {
	if h, err := Bytes16FromString[T](s); err != nil {
		panic(err)
	} else {
		return h
	}
}

func Bytes16FromString[T ~[16]byte](s string) (T, error) {
	var h T
	if buf, err := fasthex.DecodeString(s); err != nil {
		return h, err
	} else {
		if len(buf) != 16 {
			return h, ErrWrongSize
		}
		copy(h[:], buf)
		return h, nil
	}
}

// Bytes16FromASCII Takes exactly 16 ASCII characters as the raw 16 bytes, never padding or truncating
func Bytes16FromASCII[T ~[16]byte](s string) (T, error) {
	var h T
	if len(s) != 16 {
		return h, ErrWrongSize
	}
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return h, ErrNotASCII
		}
		h[i] = s[i]
	}
	return h, nil
}

func MustBlockFromString(s string) Block {
	return MustBytes16FromString[Block](s)
}

func BlockFromString(s string) (Block, error) {
	return Bytes16FromString[Block](s)
}

func BlockFromASCII(s string) (Block, error) {
	return Bytes16FromASCII[Block](s)
}

func BlockFromBytes(buf []byte) (b Block) {
	if len(buf) != BlockSize {
		return
	}
	copy(b[:], buf)
	return
}

func MustKeyFromString(s string) Key {
	return MustBytes16FromString[Key](s)
}

func KeyFromString(s string) (Key, error) {
	return Bytes16FromString[Key](s)
}

func KeyFromASCII(s string) (Key, error) {
	return Bytes16FromASCII[Key](s)
}

func KeyFromBytes(buf []byte) (k Key) {
	if len(buf) != KeySize {
		return
	}
	copy(k[:], buf)
	return
}

func (b Block) MarshalJSON() ([]byte, error) {
	return marshalHex16((*[16]byte)(&b)), nil
}

func (b *Block) UnmarshalJSON(buf []byte) error {
	return unmarshalHex16(buf, (*[16]byte)(b))
}

func (b Block) String() string {
	return fasthex.EncodeToString(b[:])
}

func (b Block) Equal(other Block) bool {
	return b == other
}

// Distance Number of bit positions in which b and other differ
func (b Block) Distance(other Block) int {
	return uint128.FromBytes(b[:]).Xor(uint128.FromBytes(other[:])).OnesCount()
}

// FlipBit Returns a copy of b with bit i inverted, counting from the most significant bit of byte 0
func (b Block) FlipBit(i int) Block {
	b[i/8] ^= 0x80 >> (i % 8)
	return b
}

func (k Key) MarshalJSON() ([]byte, error) {
	return marshalHex16((*[16]byte)(&k)), nil
}

func (k *Key) UnmarshalJSON(buf []byte) error {
	return unmarshalHex16(buf, (*[16]byte)(k))
}

func (k Key) String() string {
	return fasthex.EncodeToString(k[:])
}

func marshalHex16(v *[16]byte) []byte {
	var buf [16*2 + 2]byte
	buf[0] = '"'
	buf[16*2+1] = '"'
	fasthex.Encode(buf[1:], v[:])
	return buf[:]
}

func unmarshalHex16(buf []byte, v *[16]byte) error {
	if len(buf) != 16*2+2 || buf[0] != '"' || buf[len(buf)-1] != '"' {
		return errInvalidJSON
	}
	if _, err := fasthex.Decode(v[:], buf[1:len(buf)-1]); err != nil {
		return err
	}
	return nil
}
