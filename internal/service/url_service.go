package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"net/url"
	"strconv"
	"time"

	"github.com/Siddarth2230/hashlink/internal/models"
	"github.com/Siddarth2230/hashlink/internal/repository"
	"github.com/Siddarth2230/hashlink/pkg/cache"
	"github.com/Siddarth2230/hashlink/pkg/hashids"
	"github.com/Siddarth2230/hashlink/pkg/idgen"
	"github.com/Siddarth2230/hashlink/pkg/metrics"
)

var (
	ErrInvalidURL    = errors.New("invalid URL")
	ErrInvalidExpiry = errors.New("expires_in must not be negative")
	ErrNotFound      = errors.New("short code not found")
	ErrExpired       = errors.New("short URL expired")
	ErrGenExhausted  = errors.New("failed to allocate a unique id after retries")
	ErrCollision     = errors.New("another URL already owns this id")
)

// max attempts for generate/save loops
const maxAttempts = 6

// maxExpiresIn is the largest lifetime, in seconds, a time.Duration can hold.
const maxExpiresIn = int64(math.MaxInt64 / time.Second)

// URLStore persists links by numeric ID.
type URLStore interface {
	Save(ctx context.Context, url *models.URL) error
	FindByID(ctx context.Context, id int64) (*models.URL, error)
	DeleteByID(ctx context.Context, id int64) error
}

// RemoteCache is a shared cache in front of the store (Redis in production).
type RemoteCache interface {
	Get(ctx context.Context, key string, v interface{}) error
	Set(ctx context.Context, key string, v interface{}) error
	SetWithTTL(ctx context.Context, key string, v interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// Config holds the optional parts of a URLService.
type Config struct {
	BaseURL   string // optional; set to produce absolute short URLs
	CacheSize int
	Remote    RemoteCache // optional L2 cache
	Strategy  string      // ID strategy name, used as a metrics label
}

// URLService provides URL shortening and lookup. Short codes are the hashid
// of the link's numeric ID, so resolving a code never needs a code index.
type URLService struct {
	repo      URLStore
	generator idgen.Generator
	codec     *hashids.Codec
	cfg       Config
	cache     *cache.LRUCache[int64, *models.URL]
	now       func() time.Time
}

func NewURLService(repo URLStore, gen idgen.Generator, codec *hashids.Codec, cfg Config) *URLService {
	if cfg.Strategy == "" {
		cfg.Strategy = "custom"
	}
	return &URLService{
		repo:      repo,
		generator: gen,
		codec:     codec,
		cfg:       cfg,
		cache:     cache.NewLRUCache[int64, *models.URL](cfg.CacheSize),
		now:       time.Now,
	}
}

// ShortenURL allocates an ID, persists the link and returns its short code.
// It retries on ID collisions unless the generator is deterministic, in which
// case a collision with the same URL returns the existing link.
func (s *URLService) ShortenURL(ctx context.Context, req models.ShortenRequest) (*models.ShortenResponse, error) {
	if err := validateURL(req.URL); err != nil {
		return nil, err
	}
	if req.ExpiresIn < 0 || req.ExpiresIn > maxExpiresIn {
		return nil, ErrInvalidExpiry
	}
	deterministic := idgen.IsDeterministic(s.generator)

	for i := 0; i < maxAttempts; i++ {
		id, err := s.generator.Next(ctx, req.URL)
		if err != nil {
			return nil, fmt.Errorf("generate id: %w", err)
		}
		code, err := s.codec.Encode(id)
		observeCodec("encode", err)
		if err != nil {
			return nil, fmt.Errorf("encode id %d: %w", id, err)
		}

		now := s.now().UTC()
		u := &models.URL{
			ID:        id,
			ShortCode: code,
			LongURL:   req.URL,
			CreatedAt: now,
		}
		if req.ExpiresIn > 0 {
			expiresAt := now.Add(time.Duration(req.ExpiresIn) * time.Second)
			u.ExpiresAt = &expiresAt
		}

		err = s.repo.Save(ctx, u)
		if errors.Is(err, repository.ErrDuplicateID) {
			if !deterministic {
				log.Printf("id collision detected (attempt=%d/%d id=%d)", i+1, maxAttempts, id)
				continue
			}
			existing, retry, err := s.resolveCollision(ctx, id, req.URL)
			if err != nil {
				return nil, err
			}
			if retry {
				continue
			}
			return s.response(existing), nil
		}
		if err != nil {
			return nil, err
		}

		metrics.LinksCreated.WithLabelValues(s.cfg.Strategy).Inc()
		s.cache.Put(id, u)
		return s.response(u), nil
	}

	return nil, ErrGenExhausted
}

// resolveCollision handles a duplicate ID from a deterministic generator.
func (s *URLService) resolveCollision(ctx context.Context, id int64, longURL string) (*models.URL, bool, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		// deleted between Save and FindByID
		return nil, true, nil
	}
	if err != nil {
		return nil, false, err
	}
	if existing.Expired(s.now()) {
		if err := s.repo.DeleteByID(ctx, id); err != nil && !errors.Is(err, repository.ErrNotFound) {
			return nil, false, err
		}
		s.invalidate(ctx, id)
		return nil, true, nil
	}
	if existing.LongURL != longURL {
		log.Printf("hash collision: id=%d already maps to a different URL", id)
		return nil, false, ErrCollision
	}
	return existing, false, nil
}

// GetLongURL resolves a short code through L1, L2 and the store.
func (s *URLService) GetLongURL(ctx context.Context, shortCode string) (string, error) {
	id, err := s.decodeID(shortCode)
	if err != nil {
		return "", err
	}

	// ===== L1 =====
	if u, ok := s.cache.Get(id); ok {
		metrics.CacheHits.WithLabelValues("l1").Inc()
		if u.Expired(s.now()) {
			s.cache.Delete(id)
			return "", ErrExpired
		}
		return u.LongURL, nil
	}
	metrics.CacheMisses.WithLabelValues("l1").Inc()

	// ===== L2 =====
	if s.cfg.Remote != nil {
		var u models.URL
		err := s.cfg.Remote.Get(ctx, remoteKey(id), &u)
		switch {
		case err == nil:
			metrics.CacheHits.WithLabelValues("l2").Inc()
			if u.Expired(s.now()) {
				return "", ErrExpired
			}
			s.cache.Put(id, &u)
			return u.LongURL, nil
		case errors.Is(err, cache.ErrCacheMiss):
			metrics.CacheMisses.WithLabelValues("l2").Inc()
		default:
			log.Printf("l2 cache get id=%d: %v", id, err)
		}
	}

	u, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	if u.Expired(s.now()) {
		return "", ErrExpired
	}

	s.cache.Put(id, u)
	if s.cfg.Remote != nil {
		var err error
		if u.ExpiresAt != nil {
			err = s.cfg.Remote.SetWithTTL(ctx, remoteKey(id), u, u.ExpiresAt.Sub(s.now()))
		} else {
			err = s.cfg.Remote.Set(ctx, remoteKey(id), u)
		}
		if err != nil {
			log.Printf("l2 cache set id=%d: %v", id, err)
		}
	}

	return u.LongURL, nil
}

// DeleteShortCode removes the link and drops it from both caches.
func (s *URLService) DeleteShortCode(ctx context.Context, shortCode string) error {
	id, err := s.decodeID(shortCode)
	if err != nil {
		return err
	}
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	s.invalidate(ctx, id)
	return nil
}

func (s *URLService) invalidate(ctx context.Context, id int64) {
	s.cache.Delete(id)
	if s.cfg.Remote != nil {
		if err := s.cfg.Remote.Delete(ctx, remoteKey(id)); err != nil {
			log.Printf("l2 cache delete id=%d: %v", id, err)
		}
	}
}

// decodeID turns a short code into its link ID. Anything that isn't a
// single-number hash for this codec is reported as not found.
func (s *URLService) decodeID(shortCode string) (int64, error) {
	if shortCode == "" {
		return 0, ErrNotFound
	}
	ids, err := s.codec.Decode(shortCode)
	observeCodec("decode", err)
	if err != nil || len(ids) != 1 {
		return 0, ErrNotFound
	}
	return ids[0], nil
}

func (s *URLService) response(u *models.URL) *models.ShortenResponse {
	shortURL := u.ShortCode
	if s.cfg.BaseURL != "" {
		shortURL = fmt.Sprintf("%s/%s", s.cfg.BaseURL, u.ShortCode)
	}
	return &models.ShortenResponse{
		ShortCode: u.ShortCode,
		ShortURL:  shortURL,
		LongURL:   u.LongURL,
		ExpiresAt: u.ExpiresAt,
	}
}

func remoteKey(id int64) string {
	return strconv.FormatInt(id, 10)
}

// validateURL checks that the URL is syntactically valid and uses http/https.
func validateURL(urlStr string) error {
	if urlStr == "" {
		return ErrInvalidURL
	}
	parsed, err := url.ParseRequestURI(urlStr)
	if err != nil {
		return ErrInvalidURL
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return ErrInvalidURL
	}
	// Restrict to http(s) for redirect safety
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("%w: unsupported scheme %s", ErrInvalidURL, parsed.Scheme)
	}
	return nil
}
