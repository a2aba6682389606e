package aes128

import (
	"bytes"
	"crypto/aes"
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/Concord1/AES-128/types"
	"pgregory.net/rapid"
)

func TestEncryptProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		key := rapid.SliceOfN(rapid.Byte(), KeySize, KeySize).Draw(t, "key")
		plaintext := rapid.SliceOfN(rapid.Byte(), BlockSize, BlockSize).Draw(t, "plaintext")

		a, err := Encrypt(key, plaintext)
		if err != nil {
			t.Fatalf("Encrypt: %s", err)
		}
		if len(a) != BlockSize {
			t.Fatalf("ciphertext is %d bytes", len(a))
		}

		b, err := Encrypt(key, plaintext)
		if err != nil {
			t.Fatalf("Encrypt: %s", err)
		}
		if !bytes.Equal(a, b) {
			t.Fatalf("not deterministic: %x != %x", a, b)
		}
	})
}

func TestEncryptRejectsLengths(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		key := rapid.SliceOfN(rapid.Byte(), 0, 64).Draw(t, "key")
		plaintext := rapid.SliceOfN(rapid.Byte(), 0, 64).Draw(t, "plaintext")

		out, err := Encrypt(key, plaintext)
		switch {
		case len(key) != KeySize:
			if !errors.Is(err, ErrInvalidKeyLength) {
				t.Fatalf("key of %d bytes: have %v", len(key), err)
			}
		case len(plaintext) != BlockSize:
			if !errors.Is(err, ErrInvalidBlockLength) {
				t.Fatalf("plaintext of %d bytes: have %v", len(plaintext), err)
			}
		default:
			if err != nil {
				t.Fatalf("valid input: %s", err)
			}
			return
		}
		if out != nil {
			t.Fatalf("output on error: %x", out)
		}
	})
}

func TestAvalanche(t *testing.T) {
	rng := rand.New(rand.NewPCG(0x6165733132385f61, 0x76616c616e636865))

	const trials = 2000
	var total int
	for range trials {
		var key types.Key
		var plaintext types.Block
		for i := range key {
			key[i] = byte(rng.Uint32())
		}
		for i := range plaintext {
			plaintext[i] = byte(rng.Uint32())
		}

		c := New(&key)
		base := c.EncryptBlock(plaintext)
		d := base.Distance(c.EncryptBlock(plaintext.FlipBit(rng.IntN(BlockSize * 8))))
		if d == 0 {
			t.Fatalf("bit flip of %s under %s did not change the ciphertext", plaintext, key)
		}
		total += d
	}

	mean := float64(total) / trials
	if mean < 60 || mean > 68 {
		t.Errorf("mean avalanche %.2f bits, want about 64", mean)
	}
}

func FuzzEncrypt(f *testing.F) {
	for _, v := range testVectors {
		f.Add(v.Key[:], v.Plaintext[:])
	}
	f.Add([]byte{}, []byte{})
	f.Add(make([]byte, 17), make([]byte, 16))

	f.Fuzz(func(t *testing.T, key, plaintext []byte) {
		have, err := Encrypt(key, plaintext)
		if len(key) != KeySize || len(plaintext) != BlockSize {
			if err == nil {
				t.Fatalf("accepted key of %d bytes and plaintext of %d bytes", len(key), len(plaintext))
			}
			return
		}
		if err != nil {
			t.Fatal(err)
		}

		reference, err := aes.NewCipher(key)
		if err != nil {
			t.Fatal(err)
		}
		want := make([]byte, BlockSize)
		reference.Encrypt(want, plaintext)

		if !bytes.Equal(have, want) {
			t.Fatalf("key %x plaintext %x: have %x, crypto/aes %x", key, plaintext, have, want)
		}
	})
}
