package carddata

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/magefree/goldfish/internal/card"
	"go.uber.org/zap"
)

// PostgresResolver resolves card names against a Postgres card database in
// the import-script schema: a `cards` table with `card_name` and
// `card_type` columns, classified by reading the card_type text.
type PostgresResolver struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

// NewPostgresResolver connects to the card database.
func NewPostgresResolver(ctx context.Context, databaseURL string, logger *zap.Logger) (*PostgresResolver, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect to card database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping card database: %w", err)
	}

	return &PostgresResolver{pool: pool, logger: logger}, nil
}

// Close releases the connection pool.
func (r *PostgresResolver) Close() {
	r.pool.Close()
}

// Resolve fetches the first printing matching the name, case-insensitively.
func (r *PostgresResolver) Resolve(ctx context.Context, name string) (card.Card, error) {
	var cardName, cardType string
	err := r.pool.QueryRow(ctx,
		"SELECT card_name, card_type FROM cards WHERE LOWER(card_name) = $1 LIMIT 1",
		card.NormalizeName(name),
	).Scan(&cardName, &cardType)
	if errors.Is(err, pgx.ErrNoRows) {
		return card.Card{}, fmt.Errorf("%w: card database has no card named `%s`", ErrCardNotFound, name)
	}
	if err != nil {
		return card.Card{}, fmt.Errorf("query card database for `%s`: %w", name, err)
	}

	c := card.New(cardName, TypesFromTypeLine(cardType)...)

	r.logger.Debug("card resolved via postgres",
		zap.String("name", c.Name),
		zap.String("card_type", cardType),
	)

	return c, nil
}
