package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/chzyer/readline"
	"github.com/magefree/goldfish/internal/carddata"
	"github.com/magefree/goldfish/internal/config"
	"github.com/magefree/goldfish/internal/session"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	configPath = flag.String("config", "goldfish.yaml", "path to configuration file")
	deckPath   = flag.String("deck", "", "deck list to load at startup")
	version    = "dev" // set via ldflags during build
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := initLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Debug("starting goldfish",
		zap.String("version", version),
		zap.String("config", *configPath),
	)

	resolver, cleanup, err := buildResolver(cfg.Cards, logger)
	if err != nil {
		logger.Fatal("failed to initialize card data provider", zap.Error(err))
	}
	defer cleanup()

	sess := session.NewSession(
		resolver,
		os.Stdout,
		rand.New(rand.NewSource(time.Now().UnixNano())),
		logger,
	)

	deck := *deckPath
	if deck == "" {
		deck = cfg.Session.DeckPath
	}
	if deck != "" {
		if err := sess.Load(deck); err != nil {
			logger.Fatal("failed to load deck", zap.String("deck", deck), zap.Error(err))
		}
		if err := sess.Render(); err != nil {
			logger.Fatal("failed to render state", zap.Error(err))
		}
	}

	if err := repl(sess, cfg.Session.HistoryFile); err != nil {
		logger.Fatal("repl error", zap.Error(err))
	}
}

// repl runs the read-eval-print loop until EOF or interrupt. Command
// failures are reported and the loop keeps going; only I/O failures are
// fatal.
func repl(sess *session.Session, historyFile string) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      "##> ",
		HistoryFile: historyFile,
	})
	if err != nil {
		return fmt.Errorf("initialize readline: %w", err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}

		changed, err := sess.Exec(line)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}
		if changed {
			if err := sess.Render(); err != nil {
				return fmt.Errorf("render state: %w", err)
			}
		}
	}
}

// buildResolver selects the configured card-data backend and wraps it in
// the on-disk cache unless caching is disabled.
func buildResolver(cfg config.CardsConfig, logger *zap.Logger) (carddata.Resolver, func(), error) {
	cleanup := func() {}

	var backend carddata.Resolver
	switch cfg.Provider {
	case "static":
		backend = carddata.NewStaticResolver()
	case "scryfall":
		backend = carddata.NewScryfallResolver(cfg.ScryfallBaseURL, cfg.ScryfallTimeout, logger)
	case "postgres":
		pg, err := carddata.NewPostgresResolver(context.Background(), cfg.DatabaseURL, logger)
		if err != nil {
			return nil, nil, err
		}
		backend = pg
		cleanup = pg.Close
	default:
		return nil, nil, fmt.Errorf("unknown card data provider: %s", cfg.Provider)
	}

	logger.Info("card data provider initialized", zap.String("provider", cfg.Provider))

	if cfg.CachePath == "" {
		return backend, cleanup, nil
	}

	cached, err := carddata.OpenCache(cfg.CachePath, backend, logger)
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	logger.Info("card cache opened", zap.String("path", cfg.CachePath))

	prev := cleanup
	return cached, func() {
		_ = cached.Close()
		prev()
	}, nil
}

// initLogger initializes the zap logger based on configuration.
func initLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	switch cfg.Level {
	case "debug":
		level = zapcore.DebugLevel
	case "info":
		level = zapcore.InfoLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	default:
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
