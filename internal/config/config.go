package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	FirstPlayerRandom = "random"
	FirstPlayerAI     = "ai"
	FirstPlayerHuman  = "human"

	PruningPartial = "partial"
	PruningFull    = "full"
)

var (
	ErrInvalidFirstPlayer = errors.New("first-player must be one of random, ai, human")
	ErrInvalidPruning     = errors.New("pruning must be one of partial, full")
	ErrInvalidLogLevel    = errors.New("log-level must be one of debug, info, warn, error")
)

type Config struct {
	LogLevel    string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	FirstPlayer string `yaml:"first-player" env:"FIRST_PLAYER" env-default:"random"`
	Pruning     string `yaml:"pruning" env:"PRUNING" env-default:"partial"`
	NoColor     bool   `yaml:"no-color" env:"NO_COLOR"`
	Redis       Redis  `yaml:"redis"`
}

// Redis holds the solved-position cache settings.
type Redis struct {
	Enabled bool          `yaml:"enabled" env:"REDIS_ENABLED" env-default:"false"`
	Host    string        `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port    string        `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	TTL     time.Duration `yaml:"ttl" env:"REDIS_TTL" env-default:"24h"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	if err := config.Validate(); err != nil {
		panic(fmt.Errorf("invalid config file %s: %w", path, err))
	}

	return config
}

func (that *Config) Validate() error {
	switch that.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidLogLevel, that.LogLevel)
	}

	switch that.FirstPlayer {
	case FirstPlayerRandom, FirstPlayerAI, FirstPlayerHuman:
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidFirstPlayer, that.FirstPlayer)
	}

	switch that.Pruning {
	case PruningPartial, PruningFull:
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidPruning, that.Pruning)
	}

	return nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
