// Package card defines the card data model: the closed set of card types,
// the immutable Card value, and the classification rules derived from it.
package card

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// CardType is one of the seven printed card types.
type CardType int

const (
	TypeArtifact CardType = iota
	TypeCreature
	TypeEnchantment
	TypeInstant
	TypeLand
	TypePlaneswalker
	TypeSorcery
)

// typeNames is the single source of truth for CardType <-> name mapping.
// Both parsing and display go through it.
var typeNames = map[CardType]string{
	TypeArtifact:     "artifact",
	TypeCreature:     "creature",
	TypeEnchantment:  "enchantment",
	TypeInstant:      "instant",
	TypeLand:         "land",
	TypePlaneswalker: "planeswalker",
	TypeSorcery:      "sorcery",
}

var typesByName = func() map[string]CardType {
	m := make(map[string]CardType, len(typeNames))
	for t, name := range typeNames {
		m[name] = t
	}
	return m
}()

// String returns the lowercase canonical name of the card type.
func (t CardType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("cardtype(%d)", int(t))
}

// IsPermanent reports whether the type stays on the battlefield once played.
// Instants and sorceries are the only non-permanent types.
func (t CardType) IsPermanent() bool {
	return t != TypeInstant && t != TypeSorcery
}

// ParseCardType parses a lowercase type name into a CardType.
func ParseCardType(name string) (CardType, error) {
	t, ok := typesByName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("`%s` is not a known card type", name)
	}
	return t, nil
}

// Card is an immutable card value. Each physical copy in a deck is an
// independent Card with its own instance ID; cards are relocated between
// zones, never duplicated or mutated.
type Card struct {
	ID    uuid.UUID
	Name  string
	Types []CardType
}

// New creates a card with a fresh instance ID.
func New(name string, types ...CardType) Card {
	return Card{
		ID:    uuid.New(),
		Name:  name,
		Types: types,
	}
}

// Copy returns an independent physical copy of the card with its own ID.
func (c Card) Copy() Card {
	dup := c
	dup.ID = uuid.New()
	dup.Types = append([]CardType(nil), c.Types...)
	return dup
}

// HasType reports whether the card carries the given type.
func (c Card) HasType(t CardType) bool {
	for _, ct := range c.Types {
		if ct == t {
			return true
		}
	}
	return false
}

// IsPermanent reports whether any of the card's types is a permanent type.
func (c Card) IsPermanent() bool {
	for _, t := range c.Types {
		if t.IsPermanent() {
			return true
		}
	}
	return false
}

// IsCreature reports whether the card is a creature.
func (c Card) IsCreature() bool { return c.HasType(TypeCreature) }

// IsLand reports whether the card is a land.
func (c Card) IsLand() bool { return c.HasType(TypeLand) }

// IsNamed reports whether the card's name matches the given name, ignoring
// case and surrounding whitespace.
func (c Card) IsNamed(name string) bool {
	return NormalizeName(c.Name) == NormalizeName(name)
}

// NormalizeName is the canonical form used for all name comparisons and
// cache keys: trimmed and lowercased.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
