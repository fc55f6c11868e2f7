package factory

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/mcoot/wordtiles/internal/config"
	"github.com/mcoot/wordtiles/internal/dependencies/clock"
	"github.com/mcoot/wordtiles/internal/dependencies/ids"
	"github.com/mcoot/wordtiles/internal/dependencies/random"
	"github.com/mcoot/wordtiles/internal/events"
	"github.com/mcoot/wordtiles/internal/model"
	"github.com/mcoot/wordtiles/internal/services/board"
	"github.com/mcoot/wordtiles/internal/services/dictionary"
	"github.com/mcoot/wordtiles/internal/services/game"
	"github.com/mcoot/wordtiles/internal/services/move"
	"github.com/mcoot/wordtiles/internal/services/scoring"
	"github.com/mcoot/wordtiles/internal/storage"
	"github.com/mcoot/wordtiles/internal/storage/memory"
	redisstorage "github.com/mcoot/wordtiles/internal/storage/redis"
	sqlitestorage "github.com/mcoot/wordtiles/internal/storage/sqlite"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random
	IDs    ids.Generator

	// Oracle answers word lookups. It is DictionaryService unless a remote
	// word service is configured.
	Oracle            move.WordOracle
	DictionaryService *dictionary.Service

	// Services
	BoardService   *board.Service
	ScoringService *scoring.Service
	MoveService    *move.Service
	GameController *game.Controller
	HubManager     *events.HubManager
	Broadcaster    *events.Broadcaster

	gameConfig game.Config
	remote     bool
	closers    []io.Closer
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory", "redis" or "sqlite")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// SQLitePath is the database file (required if StorageType is "sqlite")
	SQLitePath string
	// DictionaryURL selects a remote word service instead of a local list
	DictionaryURL string
	// SkipLimit is the number of consecutive skips that ends a game
	// If zero, defaults to model.DefaultSkipLimit
	SkipLimit int
}

// FromConfig builds a factory Config from the server configuration
func FromConfig(cfg *config.Config, logger *slog.Logger) Config {
	fc := Config{
		Logger:        logger,
		StorageType:   cfg.StorageType,
		SQLitePath:    cfg.SQLitePath,
		DictionaryURL: cfg.DictionaryURL,
		SkipLimit:     cfg.SkipLimit,
	}
	if cfg.StorageType == config.StorageRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = cfg.RedisURL
		redisCfg.GameTTL = cfg.RedisGameTTL
		fc.RedisConfig = &redisCfg
	}
	return fc
}

// New creates a new application with all dependencies wired
func New(ctx context.Context, cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	var store storage.Storage
	var closers []io.Closer
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = config.StorageMemory
	}

	switch storageType {
	case config.StorageMemory:
		store = memory.New()
	case config.StorageRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig, logger)
		if err != nil {
			return nil, err
		}
		store = redisStore
		closers = append(closers, redisStore)
	case config.StorageSQLite:
		if cfg.SQLitePath == "" {
			return nil, errors.New("SQLitePath required when StorageType is sqlite")
		}
		sqliteStore, err := sqlitestorage.New(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		store = sqliteStore
		closers = append(closers, sqliteStore)
	default:
		return nil, fmt.Errorf("invalid StorageType %q: must be 'memory', 'redis' or 'sqlite'", storageType)
	}

	app := newWithDependencies(store, clock.New(), random.New(), ids.New(), cfg.SkipLimit, logger)
	app.closers = closers

	if cfg.DictionaryURL != "" {
		app.useOracle(dictionary.NewRemote(cfg.DictionaryURL, logger), logger)
		app.remote = true
		logger.Info("using remote dictionary", slog.String("url", cfg.DictionaryURL))
	}

	return app, nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, idGen ids.Generator, skipLimit int, logger *slog.Logger) *App {
	dictService := dictionary.New(store, logger)
	app := &App{
		Storage:           store,
		Clock:             clk,
		Random:            rnd,
		IDs:               idGen,
		DictionaryService: dictService,
		BoardService:      board.New(),
		ScoringService:    scoring.New(),
		HubManager:        events.NewHubManager(logger),
	}
	app.Broadcaster = events.NewBroadcaster(app.HubManager, logger)
	app.gameConfig = game.Config{SkipLimit: skipLimit}
	app.useOracle(dictService, logger)
	return app
}

// useOracle rebuilds the services that depend on the word oracle
func (a *App) useOracle(oracle move.WordOracle, logger *slog.Logger) {
	a.Oracle = oracle
	a.MoveService = move.New(oracle, a.ScoringService, logger)
	a.GameController = game.NewController(
		a.Storage,
		a.BoardService,
		a.MoveService,
		a.Clock,
		a.Random,
		a.IDs,
		a.Broadcaster,
		a.gameConfig,
		logger,
	)
}

// LoadDictionary fills the local dictionary. A word file replaces the stored
// list; otherwise the stored list is used, falling back to the built-in one.
// It does nothing when a remote word service is configured.
func (a *App) LoadDictionary(ctx context.Context, path string) error {
	if a.remote {
		return nil
	}

	if path != "" {
		if err := a.DictionaryService.LoadFromFile(ctx, path); err != nil {
			return fmt.Errorf("loading dictionary from %s: %w", path, err)
		}
		return nil
	}

	err := a.DictionaryService.LoadFromStorage(ctx)
	if errors.Is(err, model.ErrDictionaryNotLoaded) {
		err = a.DictionaryService.LoadEmbedded(ctx)
	}
	if err != nil {
		return fmt.Errorf("loading dictionary: %w", err)
	}
	return nil
}

// Close releases storage connections
func (a *App) Close() error {
	a.HubManager.CloseAll()
	var errs []error
	for _, c := range a.closers {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}
