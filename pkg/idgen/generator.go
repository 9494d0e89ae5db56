package idgen

import "context"

// Generator hands out numeric IDs for new links. Every ID is within
// [1, hashids.MaxNumber] so it can be turned into a short code.
type Generator interface {
	Next(ctx context.Context, longURL string) (int64, error)
}

// Deterministic is implemented by generators that always return the same ID
// for the same URL. A duplicate ID from such a generator means the link
// already exists (or collides), not that the generator should be retried.
type Deterministic interface {
	Deterministic() bool
}

// IsDeterministic reports whether g returns stable IDs per URL.
func IsDeterministic(g Generator) bool {
	d, ok := g.(Deterministic)
	return ok && d.Deterministic()
}
