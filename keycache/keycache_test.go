package keycache

import (
	"sync"
	"testing"

	"github.com/Concord1/AES-128/aes128"
	"github.com/Concord1/AES-128/types"
	"github.com/stretchr/testify/require"
)

func TestCache(t *testing.T) {
	c := New(2)

	a := types.MustKeyFromString("2b7e151628aed2a6abf7158809cf4f3c")
	b := types.MustKeyFromString("000102030405060708090a0b0c0d0e0f")
	d := types.Key{}

	ca := c.Get(a)
	require.Equal(t, aes128.ExpandKey(&a), ca.Schedule())
	require.Same(t, ca, c.Get(a))
	require.EqualValues(t, 1, c.Hits())
	require.EqualValues(t, 1, c.Misses())

	c.Get(b)
	require.Equal(t, 2, c.Len())

	// a was used before b, so it goes first
	c.Get(d)
	require.Equal(t, 2, c.Len())
	require.EqualValues(t, 3, c.Misses())

	require.NotSame(t, ca, c.Get(a))
	require.EqualValues(t, 4, c.Misses())
	require.EqualValues(t, 1, c.Hits())
}

func TestCacheDefaultSize(t *testing.T) {
	c := New(0)
	for i := range DefaultSize * 2 {
		var key types.Key
		key[0], key[1] = byte(i), byte(i>>8)
		c.Get(key)
	}
	require.Equal(t, DefaultSize, c.Len())
}

func TestCacheConcurrent(t *testing.T) {
	c := New(4)
	plaintext := types.MustBlockFromString("3243f6a8885a308d313198a2e0370734")
	want := types.MustBlockFromString("3925841d02dc09fbdc118597196a0b32")
	key := types.MustKeyFromString("2b7e151628aed2a6abf7158809cf4f3c")

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 200 {
				k := key
				if i%2 == 1 {
					k[15] = byte(i)
				}
				have := c.Get(k).EncryptBlock(plaintext)
				if k == key && have != want {
					t.Errorf("have %s, want %s", have, want)
				}
			}
		}()
	}
	wg.Wait()

	require.EqualValues(t, 8*200, c.Hits()+c.Misses())
	require.LessOrEqual(t, c.Len(), 4)
}
