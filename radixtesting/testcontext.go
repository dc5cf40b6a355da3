// Package radixtesting provides deterministic key corpora and a
// trivially correct ordered map oracle for exercising the radix
// containers in tests and benchmarks.
package radixtesting

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/google/uuid"
)

type TestContext struct {
	Log  logger.Logger
	Rand *rand.Rand
	T    testing.TB

	alphabet []byte
}

const (
	V1MMRPrefix      = "v1/mmrs"
	V1MMRBlobNameFmt = "%016d.log"

	// massifsPerTenant spreads PathKeys over synthetic tenants so the
	// corpus branches at the uuid and again at the blob name.
	massifsPerTenant = 16
)

type TestConfig struct {
	// Seed fixes the RNG so the generated corpora are the same from run
	// to run. Zero selects the fixed default, not a random seed, so
	// failures always reproduce.
	Seed            int64
	TestLabelPrefix string
	// Alphabet restricts the bytes RandomKeys draws from. Narrow
	// alphabets force dense prefix sharing. Empty means all 256 values.
	Alphabet []byte
}

func NewTestContext(t testing.TB, cfg TestConfig) TestContext {
	c := TestContext{
		T: t,
	}
	logger.New("INFO")
	c.Log = logger.Sugar.WithServiceName(cfg.TestLabelPrefix)

	seed := cfg.Seed
	if seed == 0 {
		seed = 42
	}
	c.Rand = rand.New(rand.NewPCG(uint64(seed), uint64(seed)))
	c.alphabet = cfg.Alphabet

	return c
}

func (c *TestContext) GetLog() logger.Logger { return c.Log }

// RandomKeys returns n keys, each of length 0 through maxLen drawn from
// the configured alphabet. Keys can repeat, and with a narrow alphabet
// frequently do, which is the point for exercising overwrite and merge
// paths.
func (c *TestContext) RandomKeys(n, maxLen int) [][]byte {
	keys := make([][]byte, 0, n)
	for range n {
		keys = append(keys, c.randomKey(maxLen))
	}
	return keys
}

// DistinctKeys returns n distinct keys of length 1 through maxLen. The
// alphabet and maxLen must leave the key space room for n keys, the
// generation gives up after a bounded number of retries.
func (c *TestContext) DistinctKeys(n, maxLen int) [][]byte {
	keys := make([][]byte, 0, n)
	seen := make(map[string]struct{}, n)
	attempts := 0
	for len(keys) < n {
		attempts++
		if attempts > 100*n {
			c.T.Fatalf("key space too small for %d distinct keys of max length %d", n, maxLen)
		}
		k := c.randomKey(maxLen)
		if len(k) == 0 {
			continue
		}
		if _, dup := seen[string(k)]; dup {
			continue
		}
		seen[string(k)] = struct{}{}
		keys = append(keys, k)
	}
	return keys
}

// PathKeys returns n distinct massif blob paths in the v1 storage
// schema, v1/mmrs/tenant/<uuid>/0/massifs/<seq>.log. Paths bunch under a
// shared schema prefix and then under per tenant prefixes, the shape
// radix trees are for.
func (c *TestContext) PathKeys(n int) [][]byte {
	keys := make([][]byte, 0, n)
	var tenant uuid.UUID
	for i := range n {
		if i%massifsPerTenant == 0 {
			for j := range tenant {
				tenant[j] = byte(c.Rand.UintN(256))
			}
		}
		blobName := fmt.Sprintf(V1MMRBlobNameFmt, i%massifsPerTenant)
		path := fmt.Sprintf("%s/tenant/%s/0/massifs/%s", V1MMRPrefix, tenant.String(), blobName)
		keys = append(keys, []byte(path))
	}
	return keys
}

// Shuffle permutes keys in place.
func (c *TestContext) Shuffle(keys [][]byte) {
	c.Rand.Shuffle(len(keys), func(i, j int) {
		keys[i], keys[j] = keys[j], keys[i]
	})
}

func (c *TestContext) randomKey(maxLen int) []byte {
	k := make([]byte, c.Rand.IntN(maxLen+1))
	for i := range k {
		if len(c.alphabet) > 0 {
			k[i] = c.alphabet[c.Rand.IntN(len(c.alphabet))]
			continue
		}
		k[i] = byte(c.Rand.UintN(256))
	}
	return k
}
