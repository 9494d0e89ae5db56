package idgen

import (
	"context"
	"errors"

	"github.com/cespare/xxhash/v2"
)

// HashGenerator derives the ID from the long URL itself.
// It hashes the URL (xxhash64) and keeps the low `bits` bits, so the same URL
// always maps to the same ID. bits controls collision risk: 40 bits is about
// 1.1e12 values. Collisions are possible; the caller has to check the store.
type HashGenerator struct {
	mask uint64
}

// NewHashGenerator returns a HashGenerator that keeps bits bits of the hash.
// bits must be 8..53, which keeps every ID at or below hashids.MaxNumber.
func NewHashGenerator(bits int) (*HashGenerator, error) {
	if bits < 8 || bits > 53 {
		return nil, errors.New("bits must be between 8 and 53")
	}
	return &HashGenerator{mask: 1<<uint(bits) - 1}, nil
}

func (g *HashGenerator) Next(_ context.Context, longURL string) (int64, error) {
	if longURL == "" {
		return 0, errors.New("empty URL")
	}
	v := xxhash.Sum64String(longURL) & g.mask
	if v == 0 {
		// zero is reserved; fold it onto the top of the range
		v = g.mask
	}
	return int64(v), nil
}

func (g *HashGenerator) Deterministic() bool { return true }
