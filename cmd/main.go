package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/redis/go-redis/v9"

	"github.com/tinoosan/portfolio/internal/config"
	"github.com/tinoosan/portfolio/internal/content"
	"github.com/tinoosan/portfolio/internal/httpapi"
	"github.com/tinoosan/portfolio/internal/service/guestbook"
	"github.com/tinoosan/portfolio/internal/service/likes"
	"github.com/tinoosan/portfolio/internal/storage/memory"
	pgstore "github.com/tinoosan/portfolio/internal/storage/postgres"
	redisstore "github.com/tinoosan/portfolio/internal/storage/redis"
	"github.com/tinoosan/portfolio/internal/storage/sqlite"
)

// backends holds the stores selected by configuration and how to release them.
type backends struct {
	guestbook guestbook.Store
	likes     likes.Store
	closers   []func()
}

func (b *backends) close() {
	for i := len(b.closers) - 1; i >= 0; i-- {
		b.closers[i]()
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(os.Getenv("PORTFOLIO_CONFIG_DIR"))
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	logger := buildLogger(cfg.Log)
	slog.SetDefault(logger)

	b, err := openBackends(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to open storage", "driver", cfg.Storage.Driver, "err", err)
		os.Exit(1)
	}
	defer b.close()

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           httpapi.New(b.guestbook, b.likes, content.New(), logger).Handler(),
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("portfolio service listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		ctxShutdown, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctxShutdown); err != nil {
			logger.Error("server shutdown error", "err", err)
		}
	case err := <-errCh:
		logger.Error("server error", "err", err)
	}
}

// openBackends builds the guestbook store and the like store, seeding counters
// that do not exist yet.
func openBackends(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*backends, error) {
	b := &backends{}
	seed := cfg.Likes.Seed

	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		pg, err := pgstore.Open(ctx, cfg.Storage.DSN)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		b.closers = append(b.closers, pg.Close)
		if err := pg.Migrate(ctx); err != nil {
			b.close()
			return nil, fmt.Errorf("migrate postgres: %w", err)
		}
		if cfg.Likes.Driver == config.LikesDriverStore {
			if err := pg.SeedLikes(ctx, seed); err != nil {
				b.close()
				return nil, fmt.Errorf("seed likes: %w", err)
			}
		}
		b.guestbook, b.likes = pg, pg
	case config.DriverSQLite:
		lite, err := sqlite.Open(ctx, cfg.Storage.DSN)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		b.closers = append(b.closers, func() {
			if err := lite.Close(); err != nil {
				logger.Error("sqlite close error", "err", err)
			}
		})
		if cfg.Likes.Driver == config.LikesDriverStore {
			if err := lite.SeedLikes(ctx, seed); err != nil {
				b.close()
				return nil, fmt.Errorf("seed likes: %w", err)
			}
		}
		b.guestbook, b.likes = lite, lite
	default:
		store := memory.New()
		store.SeedLikes(seed)
		b.guestbook, b.likes = store, store
	}
	logger.Info("storage backend: "+cfg.Storage.Driver, "seed", seed)

	if cfg.Likes.Driver == config.LikesDriverRedis {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		b.closers = append(b.closers, func() {
			if err := client.Close(); err != nil {
				logger.Error("redis close error", "err", err)
			}
		})
		rs := redisstore.NewLikeStore(client, cfg.Redis.Prefix)
		if err := rs.SeedLikes(ctx, seed); err != nil {
			b.close()
			return nil, fmt.Errorf("seed redis likes: %w", err)
		}
		b.likes = rs
		logger.Info("likes backend: redis", "addr", cfg.Redis.Addr, "prefix", cfg.Redis.Prefix)
	}
	return b, nil
}

// parseLogLevel maps config values to slog.Leveler
func parseLogLevel(s string) slog.Leveler {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error", "err":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func buildLogger(cfg config.LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLogLevel(cfg.Level)}
	if strings.EqualFold(strings.TrimSpace(cfg.Format), "text") {
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	// default to JSON
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}
