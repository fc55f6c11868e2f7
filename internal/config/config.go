package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. WORDTILES_PORT
const EnvPrefix = "WORDTILES"

// Storage backends
const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
	StorageSQLite = "sqlite"
)

// Config holds the server configuration
type Config struct {
	Host     string
	Port     int
	LogLevel slog.Level

	StorageType  string
	RedisURL     string
	RedisGameTTL time.Duration
	SQLitePath   string

	// DictionaryPath is a word list file; DictionaryURL a remote word
	// service. With neither set the built-in list is used.
	DictionaryPath string
	DictionaryURL  string

	SkipLimit       int
	ShutdownTimeout time.Duration
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("port", 8080)
	v.SetDefault("log_level", "info")
	v.SetDefault("storage_type", StorageMemory)
	v.SetDefault("redis_url", "redis://localhost:6379")
	v.SetDefault("redis_game_ttl", 24*time.Hour)
	v.SetDefault("sqlite_path", "wordtiles.db")
	v.SetDefault("dictionary_path", "")
	v.SetDefault("dictionary_url", "")
	v.SetDefault("skip_limit", 4)
	v.SetDefault("shutdown_timeout", 10*time.Second)
}

// Load reads the configuration from the environment. Variables in the given
// .env files (default ".env") are added first without overriding the
// environment; missing files are skipped.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading %s: %w", f, err)
		}
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	cfg := &Config{
		Host:            v.GetString("host"),
		Port:            v.GetInt("port"),
		StorageType:     strings.ToLower(v.GetString("storage_type")),
		RedisURL:        v.GetString("redis_url"),
		RedisGameTTL:    v.GetDuration("redis_game_ttl"),
		SQLitePath:      v.GetString("sqlite_path"),
		DictionaryPath:  v.GetString("dictionary_path"),
		DictionaryURL:   v.GetString("dictionary_url"),
		SkipLimit:       v.GetInt("skip_limit"),
		ShutdownTimeout: v.GetDuration("shutdown_timeout"),
	}
	if err := cfg.LogLevel.UnmarshalText([]byte(v.GetString("log_level"))); err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration is usable
func (c *Config) Validate() error {
	switch c.StorageType {
	case StorageMemory, StorageRedis, StorageSQLite:
	default:
		return fmt.Errorf("invalid storage type %q: must be memory, redis or sqlite", c.StorageType)
	}
	if c.StorageType == StorageRedis && c.RedisURL == "" {
		return errors.New("redis url required when storage type is redis")
	}
	if c.StorageType == StorageSQLite && c.SQLitePath == "" {
		return errors.New("sqlite path required when storage type is sqlite")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.SkipLimit < 1 {
		return fmt.Errorf("skip limit must be positive, got %d", c.SkipLimit)
	}
	return nil
}
