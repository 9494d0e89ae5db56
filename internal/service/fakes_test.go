package service

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/Siddarth2230/hashlink/internal/models"
	"github.com/Siddarth2230/hashlink/internal/repository"
	"github.com/Siddarth2230/hashlink/pkg/cache"
)

type memStore struct {
	mu    sync.Mutex
	rows  map[int64]models.URL
	finds int
}

func newMemStore() *memStore {
	return &memStore{rows: map[int64]models.URL{}}
}

func (m *memStore) Save(_ context.Context, u *models.URL) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[u.ID]; ok {
		return repository.ErrDuplicateID
	}
	m.rows[u.ID] = *u
	return nil
}

func (m *memStore) FindByID(_ context.Context, id int64) (*models.URL, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.finds++
	u, ok := m.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (m *memStore) DeleteByID(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.rows, id)
	return nil
}

// seqGenerator returns the queued IDs in order.
type seqGenerator struct {
	ids []int64
}

func (g *seqGenerator) Next(context.Context, string) (int64, error) {
	if len(g.ids) == 0 {
		return 0, context.Canceled
	}
	id := g.ids[0]
	g.ids = g.ids[1:]
	return id, nil
}

// fixedGenerator always returns id and claims to be deterministic.
type fixedGenerator struct {
	id int64
}

func (g fixedGenerator) Next(context.Context, string) (int64, error) { return g.id, nil }
func (g fixedGenerator) Deterministic() bool                        { return true }

type memRemote struct {
	mu   sync.Mutex
	data map[string][]byte
	ttls map[string]time.Duration
}

func newMemRemote() *memRemote {
	return &memRemote{data: map[string][]byte{}, ttls: map[string]time.Duration{}}
}

func (r *memRemote) Get(_ context.Context, key string, v interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.data[key]
	if !ok {
		return cache.ErrCacheMiss
	}
	return json.Unmarshal(b, v)
}

// Set records a TTL of -1 so tests can tell it from SetWithTTL.
func (r *memRemote) Set(ctx context.Context, key string, v interface{}) error {
	return r.SetWithTTL(ctx, key, v, -1)
}

func (r *memRemote) SetWithTTL(_ context.Context, key string, v interface{}, ttl time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	r.data[key] = b
	r.ttls[key] = ttl
	return nil
}

func (r *memRemote) Delete(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.data, key)
	return nil
}
