package selftest

import (
	"context"
	"crypto/aes"
	"errors"
	"testing"

	"github.com/Concord1/AES-128/keycache"
	"github.com/Concord1/AES-128/types"
	"github.com/Concord1/AES-128/utils"
	"github.com/stretchr/testify/require"
)

func TestVectors(t *testing.T) {
	names := make(map[string]bool)
	for _, v := range Vectors {
		require.False(t, names[v.Name], "duplicate vector %s", v.Name)
		names[v.Name] = true

		c, err := aes.NewCipher(v.Key[:])
		require.NoError(t, err)

		var want types.Block
		c.Encrypt(want[:], v.Plaintext[:])
		require.Equal(t, want, v.Ciphertext, v.Name)
	}
}

func TestInputPair(t *testing.T) {
	seed := []byte(DefaultSeed)

	k1, p1 := InputPair(seed, 0)
	k2, p2 := InputPair(seed, 0)
	require.Equal(t, k1, k2)
	require.Equal(t, p1, p2)
	require.NotEqual(t, types.Block(k1), p1)

	k3, p3 := InputPair(seed, 1)
	require.NotEqual(t, k1, k3)
	require.NotEqual(t, p1, p3)

	k4, _ := InputPair([]byte("other"), 0)
	require.NotEqual(t, k1, k4)

	require.NotEqual(t, k1, permutationKey(seed))
}

func TestCounterBlock(t *testing.T) {
	require.Equal(t, types.ZeroBlock, counterBlock(0))
	require.Equal(t, types.MustBlockFromString("00000000000000000000000000000102"), counterBlock(0x0102))
	require.NotEqual(t, counterBlock(1<<32), counterBlock(1))
}

func TestRun(t *testing.T) {
	cache := keycache.New(8)

	report, err := Run(context.Background(), Options{
		Workers:     4,
		Random:      512,
		Permutation: 4096,
		Cache:       cache,
	})
	require.NoError(t, err)
	require.NotNil(t, report)
	require.True(t, report.Passed())

	require.Len(t, report.Vectors, len(Vectors))
	require.Zero(t, report.FailedVectors())
	require.Empty(t, report.Mismatches)
	require.EqualValues(t, 512, report.Random)
	require.EqualValues(t, 4096, report.Distinct)

	require.Greater(t, report.AvalancheMin, 0)
	require.LessOrEqual(t, report.AvalancheMax, 128)
	require.InDelta(t, 64, report.AvalancheMean, 12)

	require.Equal(t, cache.Hits(), report.CacheHits)
	require.Equal(t, cache.Misses(), report.CacheMisses)
	require.NotZero(t, report.CacheHits)
}

func TestRunDeterministic(t *testing.T) {
	opts := Options{Workers: 3, Random: 16, Permutation: 16, Seed: []byte("seed")}

	a, err := Run(context.Background(), opts)
	require.NoError(t, err)
	b, err := Run(context.Background(), opts)
	require.NoError(t, err)

	a.CacheHits, a.CacheMisses, b.CacheHits, b.CacheMisses = 0, 0, 0, 0
	require.Equal(t, a, b)
}

func TestRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := Run(ctx, Options{Random: 1024, Permutation: 1024})
	require.Nil(t, report)
	require.ErrorIs(t, err, context.Canceled)
	require.False(t, errors.Is(err, ErrFailed))
}

func TestReportFailed(t *testing.T) {
	r := &Report{
		Vectors:      []VectorResult{{OK: true}, {OK: false}},
		Permutation:  10,
		Distinct:     10,
		AvalancheMin: 50,
	}
	require.Equal(t, 1, r.FailedVectors())
	require.False(t, r.Passed())

	r.Vectors[1].OK = true
	require.True(t, r.Passed())

	r.Distinct = 9
	require.False(t, r.Passed())
}

func TestReportJSON(t *testing.T) {
	report, err := Run(context.Background(), Options{Workers: 1, Random: 4, Permutation: 4})
	require.NoError(t, err)

	buf, err := utils.MarshalJSON(report)
	require.NoError(t, err)

	var decoded struct {
		Vectors []struct {
			Name       string `json:"name"`
			Ciphertext string `json:"ciphertext"`
			Have       string `json:"have"`
			OK         bool   `json:"ok"`
		} `json:"vectors"`
		Distinct uint64 `json:"distinct"`
	}
	require.NoError(t, utils.UnmarshalJSON(buf, &decoded))
	require.Len(t, decoded.Vectors, len(Vectors))
	for i, v := range decoded.Vectors {
		require.Equal(t, Vectors[i].Name, v.Name)
		require.Equal(t, Vectors[i].Ciphertext.String(), v.Have)
		require.Equal(t, v.Ciphertext, v.Have)
		require.True(t, v.OK)
	}
	require.EqualValues(t, 4, decoded.Distinct)
}
