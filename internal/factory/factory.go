package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/mcoot/shopsim/internal/dependencies/clock"
	"github.com/mcoot/shopsim/internal/dependencies/hasher"
	"github.com/mcoot/shopsim/internal/dependencies/random"
	"github.com/mcoot/shopsim/internal/model"
	"github.com/mcoot/shopsim/internal/services/catalog"
	"github.com/mcoot/shopsim/internal/services/shop"
	"github.com/mcoot/shopsim/internal/storage"
	"github.com/mcoot/shopsim/internal/storage/memory"
	redisstorage "github.com/mcoot/shopsim/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random
	Hasher hasher.Hasher

	// Services
	Catalog *catalog.Service

	Logger *slog.Logger

	closer io.Closer
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// HashAlgorithm selects the password digest ("sha256" or "bcrypt")
	// If empty, defaults to "sha256"
	HashAlgorithm string
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	h, err := hasher.New(cfg.HashAlgorithm)
	if err != nil {
		return nil, err
	}

	var store storage.Storage
	var closer io.Closer
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
		closer = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	app := newWithDependencies(store, clock.New(), random.New(), h, logger)
	app.closer = closer
	return app, nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, h hasher.Hasher, logger *slog.Logger) *App {
	generator := catalog.NewGenerator(rnd, model.NewIDAllocator())

	return &App{
		Storage: store,
		Clock:   clk,
		Random:  rnd,
		Hasher:  h,
		Catalog: catalog.New(store, generator, rnd, logger),
		Logger:  logger,
	}
}

// NewSession starts an anonymous shop session against the app's catalog
func (a *App) NewSession() *shop.Session {
	return shop.New(a.Catalog, a.Hasher, a.Clock, a.Logger)
}

// Close releases the storage connection, if any
func (a *App) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer.Close()
}
