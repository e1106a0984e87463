package game

import (
	"fmt"
	"math/rand"

	"github.com/magefree/goldfish/internal/card"
	"go.uber.org/zap"
)

// OpeningHandSize is the number of cards drawn when a new game starts.
const OpeningHandSize = 7

// State owns the five zones and executes every command as a single atomic
// transition. A failed transition leaves the zones exactly as they were,
// with the documented exception of DrawN and Mill (see their comments).
// State is not safe for concurrent use; the session serializes access.
type State struct {
	zones  map[ZoneType]*Zone
	rng    *rand.Rand
	logger *zap.Logger
}

// NewState creates an empty state. The rng drives shuffles; tests pass a
// fixed-seed source to make shuffle order reproducible.
func NewState(rng *rand.Rand, logger *zap.Logger) *State {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &State{
		zones:  make(map[ZoneType]*Zone),
		rng:    rng,
		logger: logger,
	}
}

// NewStateWithDeck creates a state with the given cards in the deck, in
// order.
func NewStateWithDeck(cards []card.Card, rng *rand.Rand, logger *zap.Logger) *State {
	s := NewState(rng, logger)
	deck := s.zone(ZoneDeck)
	for _, c := range cards {
		deck.Add(c)
	}
	return s
}

// zone returns the zone for the given type, creating it on first access.
// Absent zones are indistinguishable from empty ones.
func (s *State) zone(zt ZoneType) *Zone {
	z, ok := s.zones[zt]
	if !ok {
		z = &Zone{}
		s.zones[zt] = z
	}
	return z
}

// Count returns the number of cards in a zone.
func (s *State) Count(zt ZoneType) int {
	if z, ok := s.zones[zt]; ok {
		return z.Len()
	}
	return 0
}

// TotalCards returns the card count across all zones. Every command except
// load and restart conserves it.
func (s *State) TotalCards() int {
	total := 0
	for _, zt := range AllZones {
		total += s.Count(zt)
	}
	return total
}

// ZoneCards returns a zone's contents in order, read-only.
func (s *State) ZoneCards(zt ZoneType) []card.Card {
	if z, ok := s.zones[zt]; ok {
		return z.Cards()
	}
	return nil
}

// MoveCard removes the specified card from one zone and appends it to
// another. A self-move is a no-op for every zone except the deck, where
// removal plus re-append is the mechanism behind tucking a card back in.
// Moving a non-permanent to the battlefield fails before the removal
// commits, so the zones are untouched on failure.
func (s *State) MoveCard(spec Specifier, from, to ZoneType) error {
	if from == to && to != ZoneDeck {
		return nil
	}

	fromZone := s.zone(from)

	if to == ZoneBattlefield {
		if c, ok := s.peek(fromZone, spec); ok && !c.IsPermanent() {
			return fmt.Errorf("%w: `%s` is not a permanent", ErrIllegalDestination, c.Name)
		}
	}

	c, err := fromZone.Remove(spec)
	if err != nil {
		return fmt.Errorf("remove from %s: %w", from, err)
	}

	s.zone(to).Add(c)

	s.logger.Debug("card moved",
		zap.String("card", c.Name),
		zap.String("from", from.String()),
		zap.String("to", to.String()),
	)

	return nil
}

// peek resolves a specifier without removing anything.
func (s *State) peek(z *Zone, spec Specifier) (card.Card, bool) {
	cards := z.Cards()
	if spec.ByName {
		for _, c := range cards {
			if c.IsNamed(spec.Name) {
				return c, true
			}
		}
		return card.Card{}, false
	}
	if spec.Index < 0 || spec.Index >= len(cards) {
		return card.Card{}, false
	}
	return cards[spec.Index], true
}

// Draw moves the top card of the deck to the hand.
func (s *State) Draw() error {
	if s.Count(ZoneDeck) == 0 {
		return fmt.Errorf("%w: cannot draw from an empty deck", ErrDeckExhausted)
	}
	return s.MoveCard(ByIndex(0), ZoneDeck, ZoneHand)
}

// DrawN draws n cards one at a time. The first failure stops the sequence
// and is returned as-is; cards drawn before it stay drawn. This is a
// deliberate exception to the engine's all-or-nothing rule.
func (s *State) DrawN(n int) error {
	for i := 0; i < n; i++ {
		if err := s.Draw(); err != nil {
			return err
		}
	}
	return nil
}

// Play removes a card from the hand and routes it by permanence: permanents
// go to the battlefield, everything else to the graveyard.
func (s *State) Play(spec Specifier) error {
	c, err := s.zone(ZoneHand).Remove(spec)
	if err != nil {
		return fmt.Errorf("remove from %s: %w", ZoneHand, err)
	}
	s.placePlayed(c)
	return nil
}

// Fetch pulls a named card out of the deck, routes it by permanence like
// Play, then shuffles the deck.
func (s *State) Fetch(name string) error {
	c, err := s.zone(ZoneDeck).Remove(ByName(name))
	if err != nil {
		return fmt.Errorf("remove from %s: %w", ZoneDeck, err)
	}
	s.placePlayed(c)
	s.Shuffle()
	return nil
}

// Tutor pulls a named card out of the deck into the hand, then shuffles the
// deck.
func (s *State) Tutor(name string) error {
	if err := s.MoveCard(ByName(name), ZoneDeck, ZoneHand); err != nil {
		return err
	}
	s.Shuffle()
	return nil
}

func (s *State) placePlayed(c card.Card) {
	if c.IsPermanent() {
		s.zone(ZoneBattlefield).Add(c)
	} else {
		s.zone(ZoneGraveyard).Add(c)
	}
}

// Discard moves a card from the hand to the graveyard.
func (s *State) Discard(spec Specifier) error {
	return s.MoveCard(spec, ZoneHand, ZoneGraveyard)
}

// Sacrifice moves a card from the battlefield to the graveyard.
func (s *State) Sacrifice(spec Specifier) error {
	return s.MoveCard(spec, ZoneBattlefield, ZoneGraveyard)
}

// Bounce returns a card from the battlefield to the hand.
func (s *State) Bounce(spec Specifier) error {
	return s.MoveCard(spec, ZoneBattlefield, ZoneHand)
}

// Exile moves a card from the given zone to exile.
func (s *State) Exile(spec Specifier, from ZoneType) error {
	return s.MoveCard(spec, from, ZoneExile)
}

// Tuck puts a card from the given zone back into the deck.
func (s *State) Tuck(spec Specifier, from ZoneType) error {
	return s.MoveCard(spec, from, ZoneDeck)
}

// Mill moves n cards from the top of the deck to the graveyard, stopping at
// the first failure without rolling back the cards already milled. Same
// documented exception as DrawN.
func (s *State) Mill(n int) error {
	for i := 0; i < n; i++ {
		if s.Count(ZoneDeck) == 0 {
			return fmt.Errorf("%w: cannot mill from an empty deck", ErrDeckExhausted)
		}
		if err := s.MoveCard(ByIndex(0), ZoneDeck, ZoneGraveyard); err != nil {
			return err
		}
	}
	return nil
}

// Shuffle randomizes the deck order. Other zones are never touched.
func (s *State) Shuffle() {
	deck := s.zone(ZoneDeck)
	s.rng.Shuffle(deck.Len(), func(i, j int) {
		deck.cards[i], deck.cards[j] = deck.cards[j], deck.cards[i]
	})
	s.logger.Debug("deck shuffled", zap.Int("cards", deck.Len()))
}

// StartNewGame recycles every card back into the deck, shuffles, and draws
// the opening hand. Zones are swept in the fixed AllZones order so a fixed
// rng seed reproduces the same opening hand. Fails only when the deck holds
// fewer than seven cards after consolidation.
func (s *State) StartNewGame() error {
	var collected []card.Card
	for _, zt := range AllZones {
		if zt == ZoneDeck {
			continue
		}
		z := s.zone(zt)
		collected = append(collected, z.cards...)
		z.cards = nil
	}

	deck := s.zone(ZoneDeck)
	deck.cards = append(deck.cards, collected...)

	s.Shuffle()

	if err := s.DrawN(OpeningHandSize); err != nil {
		return fmt.Errorf("draw opening hand: %w", err)
	}

	s.logger.Info("new game started",
		zap.Int("deck", s.Count(ZoneDeck)),
		zap.Int("hand", s.Count(ZoneHand)),
	)

	return nil
}

// InspectTop returns up to n card names from the top of the deck without
// mutating anything.
func (s *State) InspectTop(n int) []string {
	cards := s.ZoneCards(ZoneDeck)
	if n > len(cards) {
		n = len(cards)
	}
	names := make([]string, 0, n)
	for _, c := range cards[:n] {
		names = append(names, c.Name)
	}
	return names
}
