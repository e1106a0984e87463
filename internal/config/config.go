// Package config loads the application configuration from a yaml file with
// sensible defaults. The resulting struct is passed explicitly into the
// session and resolver constructors; nothing reads configuration globally.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

// Config is the top-level configuration.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Cards   CardsConfig   `mapstructure:"cards"`
	Session SessionConfig `mapstructure:"session"`
}

// LoggingConfig controls the zap logger.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // json or console
}

// CardsConfig selects and configures the card-data provider.
type CardsConfig struct {
	// Provider is one of: static, scryfall, postgres.
	Provider string `mapstructure:"provider"`

	// CachePath is the SQLite file memoizing resolved cards. Empty
	// disables caching.
	CachePath string `mapstructure:"cache_path"`

	// ScryfallBaseURL overrides the public Scryfall endpoint.
	ScryfallBaseURL string        `mapstructure:"scryfall_base_url"`
	ScryfallTimeout time.Duration `mapstructure:"scryfall_timeout"`

	// DatabaseURL is the Postgres card database, provider=postgres only.
	DatabaseURL string `mapstructure:"database_url"`
}

// SessionConfig controls the interactive session.
type SessionConfig struct {
	HistoryFile string `mapstructure:"history_file"`
	DeckPath    string `mapstructure:"deck_path"`
}

// Load reads configuration from the given path. A missing file is not an
// error; defaults apply.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetDefault("cards.provider", "scryfall")
	v.SetDefault("cards.cache_path", "goldfish_cards.db")
	v.SetDefault("cards.scryfall_base_url", "")
	v.SetDefault("cards.scryfall_timeout", 10*time.Second)

	v.SetDefault("session.history_file", "goldfish_history")
	v.SetDefault("session.deck_path", "")
}

func (c *Config) validate() error {
	switch c.Cards.Provider {
	case "static", "scryfall":
	case "postgres":
		if c.Cards.DatabaseURL == "" {
			return fmt.Errorf("cards.database_url is required when cards.provider is postgres")
		}
	default:
		return fmt.Errorf("unknown cards.provider: %s", c.Cards.Provider)
	}
	return nil
}
