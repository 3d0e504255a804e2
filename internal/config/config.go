package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

// EnvSigningKey names the environment variable holding the token signing
// secret. The secret is deliberately env-only: it must never end up in a
// config file that gets committed or baked into an image.
const EnvSigningKey = "AUTH_SIGNING_KEY"

const (
	defaultPort       = "8080"
	defaultDBPath     = "app.db"
	defaultLogLevel   = "info"
	defaultTokenTTL   = 24 * time.Hour
	defaultBcryptCost = 10
)

// Config is the process-wide configuration, read once at startup and
// immutable afterwards.
type Config struct {
	Port       string
	DBPath     string
	LogLevel   string
	SigningKey string
	TokenTTL   time.Duration
	BcryptCost int
}

// Load reads configs/config.yml (optional) and the environment, applies
// defaults, and validates the result. A missing signing secret is a hard
// startup error.
func Load() (*Config, error) {
	v := viper.New()
	v.AddConfigPath("configs") // configs/config.yml
	v.SetConfigName("config")

	v.SetDefault("port", defaultPort)
	v.SetDefault("db.path", defaultDBPath)
	v.SetDefault("log.level", defaultLogLevel)
	v.SetDefault("token.ttl", defaultTokenTTL)
	v.SetDefault("bcrypt.cost", defaultBcryptCost)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		// no config file: defaults + env are enough
	}

	if err := v.BindEnv("signing.key", EnvSigningKey); err != nil {
		return nil, fmt.Errorf("bind %s: %w", EnvSigningKey, err)
	}

	cfg := &Config{
		Port:       v.GetString("port"),
		DBPath:     v.GetString("db.path"),
		LogLevel:   v.GetString("log.level"),
		SigningKey: v.GetString("signing.key"),
		TokenTTL:   v.GetDuration("token.ttl"),
		BcryptCost: v.GetInt("bcrypt.cost"),
	}

	if cfg.SigningKey == "" {
		return nil, fmt.Errorf("%s is not set; refusing to start without a signing secret", EnvSigningKey)
	}
	if cfg.TokenTTL <= 0 {
		return nil, fmt.Errorf("token.ttl must be positive, got %s", cfg.TokenTTL)
	}
	if cfg.BcryptCost < bcrypt.MinCost || cfg.BcryptCost > bcrypt.MaxCost {
		return nil, fmt.Errorf("bcrypt.cost %d outside [%d, %d]", cfg.BcryptCost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	return cfg, nil
}
