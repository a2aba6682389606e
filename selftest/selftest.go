// Package selftest checks the aes128 cipher against published vectors and against crypto/aes.
package selftest

import (
	"context"
	"crypto/aes"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Concord1/AES-128/keycache"
	"github.com/Concord1/AES-128/types"
	"github.com/Concord1/AES-128/utils"
	"github.com/dolthub/swiss"
	"golang.org/x/sys/cpu"
)

var ErrFailed = errors.New("self test failed")

const DefaultSeed = "aes128"

type Options struct {
	// Workers goroutines used for vectors and cross-check, <= 0 uses one per CPU
	Workers int
	// Random number of pseudo-random pairs compared to crypto/aes
	Random uint64
	// Permutation number of distinct plaintexts encrypted under one key
	Permutation uint64
	Seed        []byte
	// Cache optional, shared key schedule cache
	Cache *keycache.Cache
}

type VectorResult struct {
	Vector
	Have types.Block `json:"have"`
	OK   bool        `json:"ok"`
}

type Mismatch struct {
	Index     uint64      `json:"index"`
	Key       types.Key   `json:"key"`
	Plaintext types.Block `json:"plaintext"`
	Have      types.Block `json:"have"`
	Want      types.Block `json:"want"`
}

type Report struct {
	HardwareAES bool           `json:"hardware_aes"`
	Vectors     []VectorResult `json:"vectors"`

	Random     uint64     `json:"random"`
	Mismatches []Mismatch `json:"mismatches,omitempty"`

	Permutation uint64 `json:"permutation"`
	Distinct    uint64 `json:"distinct"`

	// AvalancheMean average number of ciphertext bits changed by a single plaintext bit flip
	AvalancheMean float64 `json:"avalanche_mean"`
	AvalancheMin  int     `json:"avalanche_min"`
	AvalancheMax  int     `json:"avalanche_max"`

	CacheHits   uint64 `json:"cache_hits"`
	CacheMisses uint64 `json:"cache_misses"`
}

func (r *Report) FailedVectors() (n int) {
	for _, v := range r.Vectors {
		if !v.OK {
			n++
		}
	}
	return n
}

func (r *Report) Passed() bool {
	return r.FailedVectors() == 0 &&
		len(r.Mismatches) == 0 &&
		r.Distinct == r.Permutation &&
		r.AvalancheMin > 0
}

// HasHardwareAES Whether crypto/aes runs on AES instructions on this host
func HasHardwareAES() bool {
	return cpu.X86.HasAES || cpu.ARM64.HasAES
}

// Run Executes all checks. A non-nil Report is returned whenever the checks ran to the end,
// with ErrFailed when any of them did not pass.
func Run(ctx context.Context, opts Options) (*Report, error) {
	if opts.Cache == nil {
		opts.Cache = keycache.New(0)
	}
	if len(opts.Seed) == 0 {
		opts.Seed = []byte(DefaultSeed)
	}

	report := &Report{
		HardwareAES: HasHardwareAES(),
		Random:      opts.Random,
		Permutation: opts.Permutation,
	}

	utils.Debugf("SelfTest", "hardware AES = %t, workers = %d", report.HardwareAES, opts.Workers)

	var err error
	if report.Vectors, err = checkVectors(ctx, opts); err != nil {
		return nil, err
	}

	if report.Mismatches, err = crossCheck(ctx, opts); err != nil {
		return nil, err
	}

	if report.Distinct, err = checkPermutation(ctx, opts); err != nil {
		return nil, err
	}

	report.AvalancheMean, report.AvalancheMin, report.AvalancheMax = measureAvalanche(opts)

	report.CacheHits, report.CacheMisses = opts.Cache.Hits(), opts.Cache.Misses()

	if !report.Passed() {
		return report, fmt.Errorf("%w: %d vector(s), %d mismatch(es), %d/%d distinct, minimum avalanche %d bits",
			ErrFailed, report.FailedVectors(), len(report.Mismatches), report.Distinct, report.Permutation, report.AvalancheMin)
	}
	return report, nil
}

func checkVectors(ctx context.Context, opts Options) ([]VectorResult, error) {
	results := make([]VectorResult, len(Vectors))

	err := utils.SplitWork(ctx, opts.Workers, uint64(len(Vectors)), func(workIndex uint64, routineIndex int) error {
		v := Vectors[workIndex]
		have := opts.Cache.Get(v.Key).EncryptBlock(v.Plaintext)
		results[workIndex] = VectorResult{
			Vector: v,
			Have:   have,
			OK:     have.Equal(v.Ciphertext),
		}
		if !results[workIndex].OK {
			utils.Errorf("SelfTest", "vector %q: have %s, want %s", v.Name, have, v.Ciphertext)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

func crossCheck(ctx context.Context, opts Options) (mismatches []Mismatch, err error) {
	if opts.Random == 0 {
		return nil, nil
	}

	var lock sync.Mutex
	start := time.Now()

	err = utils.SplitWork(ctx, opts.Workers, opts.Random, func(workIndex uint64, routineIndex int) error {
		key, plaintext := InputPair(opts.Seed, workIndex)

		reference, err := aes.NewCipher(key[:])
		if err != nil {
			return err
		}
		var want types.Block
		reference.Encrypt(want[:], plaintext[:])

		have := opts.Cache.Get(key).EncryptBlock(plaintext)
		if !have.Equal(want) {
			lock.Lock()
			defer lock.Unlock()
			mismatches = append(mismatches, Mismatch{
				Index:     workIndex,
				Key:       key,
				Plaintext: plaintext,
				Have:      have,
				Want:      want,
			})
			utils.Errorf("SelfTest", "pair #%d key %s plaintext %s: have %s, crypto/aes %s", workIndex, key, plaintext, have, want)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	elapsed := time.Since(start)
	utils.Debugf("SelfTest", "cross-checked %d pairs against crypto/aes in %s (%sblocks/s)", opts.Random, elapsed, utils.SiUnits(float64(opts.Random)/elapsed.Seconds(), 2))
	return mismatches, nil
}

// checkPermutation Encrypts opts.Permutation distinct plaintexts under one key and counts distinct ciphertexts
func checkPermutation(ctx context.Context, opts Options) (uint64, error) {
	if opts.Permutation == 0 {
		return 0, nil
	}

	key := permutationKey(opts.Seed)
	c := opts.Cache.Get(key)

	seen := swiss.NewMap[types.Block, uint64](uint32(min(opts.Permutation, 1<<20)))
	for i := range opts.Permutation {
		if i%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return 0, err
			}
		}
		out := c.EncryptBlock(counterBlock(i))
		if prev, ok := seen.Get(out); ok {
			utils.Errorf("SelfTest", "plaintexts #%d and #%d encrypt to the same block %s under key %s", prev, i, out, key)
			continue
		}
		seen.Put(out, i)
	}
	return uint64(seen.Count()), nil
}

// measureAvalanche Flips every plaintext bit of one pair in turn
func measureAvalanche(opts Options) (mean float64, minBits, maxBits int) {
	key, plaintext := InputPair(opts.Seed, 0)
	c := opts.Cache.Get(key)
	base := c.EncryptBlock(plaintext)

	minBits = types.BlockSize * 8
	var total int
	for bit := range types.BlockSize * 8 {
		d := base.Distance(c.EncryptBlock(plaintext.FlipBit(bit)))
		total += d
		minBits = min(minBits, d)
		maxBits = max(maxBits, d)
	}
	mean = float64(total) / float64(types.BlockSize*8)

	utils.Debugf("SelfTest", "avalanche mean %.2f bits, min %d, max %d", mean, minBits, maxBits)
	return mean, minBits, maxBits
}
