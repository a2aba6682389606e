// Package aes128 implements the AES-128 forward cipher for single 16-byte blocks, as in FIPS-197.
package aes128

import (
	"errors"
	"fmt"

	"github.com/Concord1/AES-128/types"
)

const (
	BlockSize = types.BlockSize
	KeySize   = types.KeySize

	// Rounds AES-128 round count
	Rounds = 10
)

var (
	ErrInvalidKeyLength   = errors.New("aes128: invalid key length")
	ErrInvalidBlockLength = errors.New("aes128: invalid block length")
)

func keyLengthError(n int) error {
	return fmt.Errorf("%w: key is %d bytes, want %d", ErrInvalidKeyLength, n, KeySize)
}

func blockLengthError(n int) error {
	return fmt.Errorf("%w: plaintext is %d bytes, want %d", ErrInvalidBlockLength, n, BlockSize)
}

// Cipher An expanded AES-128 key. Safe for concurrent use, it is never mutated after creation.
type Cipher struct {
	schedule Schedule
}

func New(key *types.Key) *Cipher {
	return &Cipher{
		schedule: ExpandKey(key),
	}
}

func NewCipher(key []byte) (*Cipher, error) {
	if len(key) != KeySize {
		return nil, keyLengthError(len(key))
	}
	k := types.KeyFromBytes(key)
	return New(&k), nil
}

func (c *Cipher) BlockSize() int {
	return BlockSize
}

func (c *Cipher) Schedule() Schedule {
	return c.schedule
}

func (c *Cipher) EncryptBlock(plaintext types.Block) types.Block {
	return encryptBlock(&c.schedule, &plaintext, nil)
}

// EncryptTrace Same as EncryptBlock, calling fn with a copy of the state after every step
func (c *Cipher) EncryptTrace(plaintext types.Block, fn TraceFunc) types.Block {
	return encryptBlock(&c.schedule, &plaintext, fn)
}

func (c *Cipher) Encrypt(plaintext []byte) ([]byte, error) {
	if len(plaintext) != BlockSize {
		return nil, blockLengthError(len(plaintext))
	}
	in := types.BlockFromBytes(plaintext)
	out := encryptBlock(&c.schedule, &in, nil)
	return out[:], nil
}

// Validate Checks key and plaintext lengths, key first
func Validate(key, plaintext []byte) error {
	if len(key) != KeySize {
		return keyLengthError(len(key))
	}
	if len(plaintext) != BlockSize {
		return blockLengthError(len(plaintext))
	}
	return nil
}

// EncryptBlock Encrypts one block under key
func EncryptBlock(key *types.Key, plaintext *types.Block) types.Block {
	schedule := ExpandKey(key)
	return encryptBlock(&schedule, plaintext, nil)
}

// Encrypt Encrypts one 16-byte plaintext block under a 16-byte key.
// Both lengths are checked before any work is done; inputs are never padded or truncated.
func Encrypt(key, plaintext []byte) ([]byte, error) {
	if err := Validate(key, plaintext); err != nil {
		return nil, err
	}
	k, in := types.KeyFromBytes(key), types.BlockFromBytes(plaintext)
	out := EncryptBlock(&k, &in)
	return out[:], nil
}

func encryptBlock(schedule *Schedule, in *types.Block, trace TraceFunc) types.Block {
	state := NewState(in)

	state.AddRoundKey(&schedule[0])
	trace.emit(StageInitial, 0, StepAddRoundKey, &state)

	for round := 1; round < Rounds; round++ {
		state.SubBytes()
		trace.emit(StageRound, round, StepSubBytes, &state)
		state.ShiftRows()
		trace.emit(StageRound, round, StepShiftRows, &state)
		state.MixColumns()
		trace.emit(StageRound, round, StepMixColumns, &state)
		state.AddRoundKey(&schedule[round])
		trace.emit(StageRound, round, StepAddRoundKey, &state)
	}

	// final round has no MixColumns
	state.SubBytes()
	trace.emit(StageFinalRound, Rounds, StepSubBytes, &state)
	state.ShiftRows()
	trace.emit(StageFinalRound, Rounds, StepShiftRows, &state)
	state.AddRoundKey(&schedule[Rounds])
	trace.emit(StageFinalRound, Rounds, StepAddRoundKey, &state)

	return state.Block()
}
