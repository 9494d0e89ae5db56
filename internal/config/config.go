// Package config loads service and CLI settings from an optional TOML file,
// .env files and the environment, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"github.com/Siddarth2230/hashlink/pkg/hashids"
)

// SaltEnv is the environment variable the hashid salt is read from.
const SaltEnv = "HASHID_SALT"

// ID strategies understood by cmd/api.
const (
	StrategyCounter   = "counter"
	StrategySnowflake = "snowflake"
	StrategyHash      = "hash"
)

type Config struct {
	HTTP     HTTPConfig     `toml:"http"`
	Database DatabaseConfig `toml:"database"`
	Redis    RedisConfig    `toml:"redis"`
	Hashids  HashidsConfig  `toml:"hashids"`
	IDs      IDConfig       `toml:"ids"`
	Cache    CacheConfig    `toml:"cache"`
}

type HTTPConfig struct {
	Host    string `toml:"host"`
	Port    string `toml:"port"`
	BaseURL string `toml:"base_url"`
}

type DatabaseConfig struct {
	URL string `toml:"url"`
}

type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

type HashidsConfig struct {
	Salt      string `toml:"salt"`
	Alphabet  string `toml:"alphabet"`
	MinLength int    `toml:"min_length"`
}

type IDConfig struct {
	Strategy   string `toml:"strategy"`
	NodeID     uint64 `toml:"node_id"`
	CounterKey string `toml:"counter_key"`
	HashBits   int    `toml:"hash_bits"`
}

type CacheConfig struct {
	Size       int `toml:"size"`
	TTLSeconds int `toml:"ttl_seconds"`
}

// Default returns the configuration used when nothing overrides it.
// The salt has no default.
func Default() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Host:    "0.0.0.0",
			Port:    "8080",
			BaseURL: "http://localhost:8080",
		},
		Redis: RedisConfig{
			Addr: "localhost:6379",
		},
		Hashids: HashidsConfig{
			Alphabet:  hashids.DefaultAlphabet,
			MinLength: hashids.DefaultMinLength,
		},
		IDs: IDConfig{
			Strategy: StrategyCounter,
			HashBits: 40,
		},
		Cache: CacheConfig{
			Size:       10000,
			TTLSeconds: 300,
		},
	}
}

// Load builds a Config from defaults, the TOML file at path (skipped when
// path is empty), .env/.env.local and the environment.
func Load(path string) (*Config, error) {
	for _, f := range []string{".env", ".env.local"} {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			log.Printf("failed to load %s: %v", f, err)
		}
	}

	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	setString(&c.HTTP.Host, "HOST")
	setString(&c.HTTP.Port, "PORT")
	setString(&c.HTTP.BaseURL, "BASE_URL")
	setString(&c.Database.URL, "DATABASE_URL")
	setString(&c.Redis.Addr, "REDIS_ADDR")
	setString(&c.Redis.Password, "REDIS_PASSWORD")
	setString(&c.Hashids.Salt, SaltEnv)
	setString(&c.Hashids.Alphabet, "HASHID_ALPHABET")
	setString(&c.IDs.Strategy, "ID_STRATEGY")
	setString(&c.IDs.CounterKey, "ID_COUNTER_KEY")

	ints := []struct {
		key string
		dst *int
	}{
		{"REDIS_DB", &c.Redis.DB},
		{"HASHID_MIN_LENGTH", &c.Hashids.MinLength},
		{"ID_HASH_BITS", &c.IDs.HashBits},
		{"CACHE_SIZE", &c.Cache.Size},
		{"CACHE_TTL_SECONDS", &c.Cache.TTLSeconds},
	}
	for _, i := range ints {
		if err := setInt(i.dst, i.key); err != nil {
			return err
		}
	}

	if v := os.Getenv("NODE_ID"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid NODE_ID %q: %w", v, err)
		}
		c.IDs.NodeID = n
	}
	return nil
}

// Validate checks the settings cmd/api needs.
func (c *Config) Validate() error {
	if c.Database.URL == "" {
		return errors.New("DATABASE_URL not set")
	}
	switch c.IDs.Strategy {
	case StrategyCounter, StrategySnowflake, StrategyHash:
	default:
		return fmt.Errorf("unknown id strategy %q", c.IDs.Strategy)
	}
	if _, err := hashids.New(c.CodecOptions()); err != nil {
		return fmt.Errorf("invalid hashids config: %w", err)
	}
	return nil
}

// CodecOptions converts the hashids section for hashids.New.
func (c *Config) CodecOptions() hashids.Options {
	return hashids.Options{
		Salt:      c.Hashids.Salt,
		Alphabet:  c.Hashids.Alphabet,
		MinLength: c.Hashids.MinLength,
	}
}

// Addr is the HTTP listen address.
func (c *Config) Addr() string {
	return c.HTTP.Host + ":" + c.HTTP.Port
}

// CacheTTL is the Redis cache TTL.
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.Cache.TTLSeconds) * time.Second
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	*dst = n
	return nil
}
