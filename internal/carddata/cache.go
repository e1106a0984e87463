package carddata

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/magefree/goldfish/internal/card"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// CachedResolver decorates another Resolver with a SQLite lookup table:
// resolve from the cache when possible, otherwise fall through to the
// backend and store the result. Successful resolutions never expire.
type CachedResolver struct {
	db      *sql.DB
	backend Resolver
	logger  *zap.Logger
}

const cacheSchema = `
CREATE TABLE IF NOT EXISTS cards (
	name       TEXT PRIMARY KEY,
	card_name  TEXT NOT NULL,
	card_types TEXT NOT NULL
);`

// OpenCache opens (creating if needed) the SQLite cache at path and wraps
// the backend resolver with it.
func OpenCache(path string, backend Resolver, logger *zap.Logger) (*CachedResolver, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("cache path is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	db, err := sql.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open card cache: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping card cache: %w", err)
	}
	if _, err := db.Exec(cacheSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create card cache schema: %w", err)
	}

	return &CachedResolver{db: db, backend: backend, logger: logger}, nil
}

// Close closes the cache database.
func (r *CachedResolver) Close() error {
	return r.db.Close()
}

// Resolve returns the cached classification when present, otherwise asks
// the backend and memoizes its answer keyed by the normalized name.
func (r *CachedResolver) Resolve(ctx context.Context, name string) (card.Card, error) {
	key := card.NormalizeName(name)

	cached, err := r.lookup(ctx, key)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return card.Card{}, fmt.Errorf("read card cache: %w", err)
	}

	c, err := r.backend.Resolve(ctx, name)
	if err != nil {
		return card.Card{}, err
	}

	if err := r.store(ctx, key, c); err != nil {
		return card.Card{}, fmt.Errorf("write card cache: %w", err)
	}

	r.logger.Debug("card cached", zap.String("name", c.Name))

	return c, nil
}

func (r *CachedResolver) lookup(ctx context.Context, key string) (card.Card, error) {
	var cardName, typeList string
	err := r.db.QueryRowContext(ctx,
		"SELECT card_name, card_types FROM cards WHERE name = ?", key,
	).Scan(&cardName, &typeList)
	if err != nil {
		return card.Card{}, err
	}

	types, err := parseTypeList(typeList)
	if err != nil {
		return card.Card{}, err
	}
	return card.New(cardName, types...), nil
}

func (r *CachedResolver) store(ctx context.Context, key string, c card.Card) error {
	names := make([]string, 0, len(c.Types))
	for _, t := range c.Types {
		names = append(names, t.String())
	}

	_, err := r.db.ExecContext(ctx,
		"INSERT OR REPLACE INTO cards (name, card_name, card_types) VALUES (?, ?, ?)",
		key, c.Name, strings.Join(names, ","),
	)
	return err
}

func parseTypeList(typeList string) ([]card.CardType, error) {
	if typeList == "" {
		return nil, nil
	}
	var types []card.CardType
	for _, name := range strings.Split(typeList, ",") {
		t, err := card.ParseCardType(name)
		if err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return types, nil
}
