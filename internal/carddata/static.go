package carddata

import (
	"context"
	"fmt"

	"github.com/magefree/goldfish/internal/card"
)

// StaticResolver resolves names from an in-memory table. It is the
// offline backend: no I/O, deterministic, and the default for tests.
type StaticResolver struct {
	types map[string][]card.CardType
}

// NewStaticResolver creates a resolver preloaded with the basic lands.
func NewStaticResolver() *StaticResolver {
	r := &StaticResolver{types: make(map[string][]card.CardType)}
	for _, land := range []string{"Plains", "Island", "Swamp", "Mountain", "Forest", "Wastes"} {
		r.Register(land, card.TypeLand)
	}
	return r
}

// Register adds or replaces a name's classification.
func (r *StaticResolver) Register(name string, types ...card.CardType) {
	r.types[card.NormalizeName(name)] = types
}

// Resolve looks the normalized name up in the table.
func (r *StaticResolver) Resolve(_ context.Context, name string) (card.Card, error) {
	types, ok := r.types[card.NormalizeName(name)]
	if !ok {
		return card.Card{}, fmt.Errorf("%w: `%s` is not in the static card table", ErrCardNotFound, name)
	}
	return card.New(name, types...), nil
}
