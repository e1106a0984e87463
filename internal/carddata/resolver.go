// Package carddata resolves card names into classified Card values. The
// engine only ever sees the Resolver interface; which backend sits behind
// it (static table, Scryfall, Postgres) is chosen at construction time, and
// any backend can be wrapped in the SQLite cache.
package carddata

import (
	"context"
	"errors"
	"strings"

	"github.com/magefree/goldfish/internal/card"
)

// ErrCardNotFound reports a name the backend cannot resolve.
var ErrCardNotFound = errors.New("card not found")

// Resolver resolves a card name into a fully classified Card. A successful
// resolution is safe to memoize indefinitely, keyed by the normalized name.
type Resolver interface {
	Resolve(ctx context.Context, name string) (card.Card, error)
}

// typeOrder fixes the order types appear in a classified card, so two
// resolutions of the same type line compare equal.
var typeOrder = []card.CardType{
	card.TypeArtifact,
	card.TypeCreature,
	card.TypeEnchantment,
	card.TypeInstant,
	card.TypeLand,
	card.TypePlaneswalker,
	card.TypeSorcery,
}

// TypesFromTypeLine classifies a printed type line ("Legendary Creature —
// Elf Druid") by substring, the way Scryfall type lines are read.
func TypesFromTypeLine(typeLine string) []card.CardType {
	line := strings.ToLower(typeLine)
	var types []card.CardType
	for _, t := range typeOrder {
		if strings.Contains(line, t.String()) {
			types = append(types, t)
		}
	}
	return types
}
