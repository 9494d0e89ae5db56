package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/go-redis/redis/v8"
	_ "github.com/lib/pq"
	"golang.org/x/sync/errgroup"

	"github.com/Siddarth2230/hashlink/internal/config"
	"github.com/Siddarth2230/hashlink/internal/handler"
	"github.com/Siddarth2230/hashlink/internal/repository"
	"github.com/Siddarth2230/hashlink/internal/service"
	"github.com/Siddarth2230/hashlink/pkg/cache"
	"github.com/Siddarth2230/hashlink/pkg/hashids"
	"github.com/Siddarth2230/hashlink/pkg/idgen"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configPath := flag.String("config", os.Getenv("HASHLINK_CONFIG"), "path to a TOML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	codec, err := hashids.New(cfg.CodecOptions())
	if err != nil {
		return err
	}

	db, err := sql.Open("postgres", cfg.Database.URL)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := retry(ctx, "postgres", db.PingContext); err != nil {
		return err
	}

	repo := repository.NewURLRepository(db)
	if err := repo.EnsureSchema(ctx); err != nil {
		return err
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:        cfg.Redis.Addr,
		Password:    cfg.Redis.Password,
		DB:          cfg.Redis.DB,
		DialTimeout: 5 * time.Second,
		ReadTimeout: 3 * time.Second,
	})
	defer func() {
		_ = redisClient.Close()
	}()

	if err := retry(ctx, "redis", func(ctx context.Context) error {
		return redisClient.Ping(ctx).Err()
	}); err != nil {
		return err
	}

	gen, err := newGenerator(cfg, redisClient)
	if err != nil {
		return err
	}

	urls := service.NewURLService(repo, gen, codec, service.Config{
		BaseURL:   cfg.HTTP.BaseURL,
		CacheSize: cfg.Cache.Size,
		Remote:    cache.NewRedisCache(redisClient, "hashlink:url:", cfg.CacheTTL()),
		Strategy:  cfg.IDs.Strategy,
	})
	codecs := service.NewCodecService(codec)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler.NewRouter(handler.NewURLHandler(urls), handler.NewCodecHandler(codecs)),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("Server starting on %s (ids=%s)", srv.Addr, cfg.IDs.Strategy)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Println("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func newGenerator(cfg *config.Config, client *redis.Client) (idgen.Generator, error) {
	switch cfg.IDs.Strategy {
	case config.StrategyCounter:
		return idgen.NewCounterGenerator(client, cfg.IDs.CounterKey), nil
	case config.StrategySnowflake:
		return idgen.NewSnowflakeGenerator(cfg.IDs.NodeID, 0)
	case config.StrategyHash:
		return idgen.NewHashGenerator(cfg.IDs.HashBits)
	default:
		return nil, fmt.Errorf("unknown id strategy %q", cfg.IDs.Strategy)
	}
}

// retry pings a dependency with exponential backoff until it answers,
// the context ends or a minute passes.
func retry(ctx context.Context, name string, ping func(context.Context) error) error {
	b := backoff.NewExponentialBackOff()
	b.MaxElapsedTime = time.Minute

	err := backoff.RetryNotify(func() error {
		return ping(ctx)
	}, backoff.WithContext(b, ctx), func(err error, wait time.Duration) {
		log.Printf("%s not ready, retrying in %s: %v", name, wait, err)
	})
	if err != nil {
		return fmt.Errorf("%s ping failed: %w", name, err)
	}
	return nil
}
