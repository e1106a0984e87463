package game

import (
	"fmt"

	"github.com/magefree/goldfish/internal/card"
)

// ZoneType identifies one of the five card zones.
type ZoneType int

const (
	ZoneBattlefield ZoneType = iota
	ZoneDeck
	ZoneExile
	ZoneGraveyard
	ZoneHand
)

// zoneNames is the single source of truth for ZoneType <-> name mapping,
// shared by the parser and the renderer.
var zoneNames = map[ZoneType]string{
	ZoneBattlefield: "battlefield",
	ZoneDeck:        "deck",
	ZoneExile:       "exile",
	ZoneGraveyard:   "graveyard",
	ZoneHand:        "hand",
}

var zonesByName = func() map[string]ZoneType {
	m := make(map[string]ZoneType, len(zoneNames))
	for z, name := range zoneNames {
		m[name] = z
	}
	return m
}()

// AllZones lists every zone in a fixed order. Operations that sweep all
// zones (restart consolidation, conservation checks) iterate this slice so
// their behavior is deterministic.
var AllZones = []ZoneType{ZoneBattlefield, ZoneDeck, ZoneExile, ZoneGraveyard, ZoneHand}

// String returns the lowercase canonical name of the zone.
func (z ZoneType) String() string {
	if name, ok := zoneNames[z]; ok {
		return name
	}
	return fmt.Sprintf("zone(%d)", int(z))
}

// ParseZone matches a token case-sensitively against the zone name table.
func ParseZone(name string) (ZoneType, error) {
	z, ok := zonesByName[name]
	if !ok {
		return 0, fmt.Errorf("%w: `%s` is not a known zone", ErrUnknownZone, name)
	}
	return z, nil
}

// Zone is an ordered, mutable sequence of cards. Index 0 is the top of the
// deck / first card drawn; battlefield display grouping is derived from the
// stored order.
type Zone struct {
	cards []card.Card
}

// Add appends a card at the end of the zone.
func (z *Zone) Add(c card.Card) {
	z.cards = append(z.cards, c)
}

// Len returns the number of cards in the zone.
func (z *Zone) Len() int {
	return len(z.cards)
}

// Cards returns the zone's contents in order. The returned slice is shared;
// callers must treat it as read-only.
func (z *Zone) Cards() []card.Card {
	return z.cards
}

// Remove resolves the specifier against the zone and removes the matching
// card. On success the zone shrinks by exactly one element; on failure it is
// left untouched.
func (z *Zone) Remove(spec Specifier) (card.Card, error) {
	if spec.ByName {
		return z.removeByName(spec.Name)
	}
	return z.removeByIndex(spec.Index)
}

// removeByName removes the first card, front to back, whose normalized name
// matches. Duplicate names tie-break by position.
func (z *Zone) removeByName(name string) (card.Card, error) {
	for i := range z.cards {
		if z.cards[i].IsNamed(name) {
			return z.removeByIndex(i)
		}
	}
	return card.Card{}, fmt.Errorf("%w: no card named `%s`", ErrNotFound, name)
}

func (z *Zone) removeByIndex(i int) (card.Card, error) {
	if i < 0 || i >= len(z.cards) {
		return card.Card{}, fmt.Errorf("%w: no card at index %d", ErrNotFound, i)
	}
	c := z.cards[i]
	z.cards = append(z.cards[:i], z.cards[i+1:]...)
	return c, nil
}
