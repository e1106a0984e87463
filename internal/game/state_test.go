package game

import (
	"math/rand"
	"testing"

	"github.com/magefree/goldfish/internal/card"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

func testDeck(n int) []card.Card {
	cards := make([]card.Card, 0, n)
	for i := 0; i < n; i++ {
		cards = append(cards, card.New("Forest", card.TypeLand))
	}
	return cards
}

func TestMoveCardBetweenZones(t *testing.T) {
	s := NewStateWithDeck(testDeck(3), testRNG(), nil)

	require.NoError(t, s.MoveCard(ByIndex(0), ZoneDeck, ZoneHand))

	assert.Equal(t, 2, s.Count(ZoneDeck))
	assert.Equal(t, 1, s.Count(ZoneHand))
	assert.Equal(t, 3, s.TotalCards())

	// Moved cards land at the tail of the destination.
	require.NoError(t, s.MoveCard(ByIndex(0), ZoneDeck, ZoneHand))
	hand := s.ZoneCards(ZoneHand)
	require.Len(t, hand, 2)
}

func TestMoveCardSelfMoveIsNoop(t *testing.T) {
	s := NewStateWithDeck(nil, testRNG(), nil)
	s.zone(ZoneHand).Add(card.New("Opt", card.TypeInstant))
	before := s.ZoneCards(ZoneHand)[0].ID

	// Self-moves outside the deck succeed without touching anything,
	// even with a specifier that matches nothing.
	require.NoError(t, s.MoveCard(ByIndex(99), ZoneHand, ZoneHand))
	assert.Equal(t, before, s.ZoneCards(ZoneHand)[0].ID)
}

func TestMoveCardDeckSelfMoveTucks(t *testing.T) {
	s := NewStateWithDeck([]card.Card{
		card.New("Plains", card.TypeLand),
		card.New("Island", card.TypeLand),
	}, testRNG(), nil)

	// A deck-to-deck move removes from the top and appends at the
	// bottom; this is the mechanism behind tucking.
	require.NoError(t, s.MoveCard(ByIndex(0), ZoneDeck, ZoneDeck))

	deck := s.ZoneCards(ZoneDeck)
	require.Len(t, deck, 2)
	assert.Equal(t, "Island", deck[0].Name)
	assert.Equal(t, "Plains", deck[1].Name)
}

func TestMoveNonPermanentToBattlefieldFails(t *testing.T) {
	s := NewStateWithDeck(nil, testRNG(), nil)
	s.zone(ZoneHand).Add(card.New("Lightning Bolt", card.TypeInstant))

	err := s.MoveCard(ByIndex(0), ZoneHand, ZoneBattlefield)
	require.ErrorIs(t, err, ErrIllegalDestination)

	// Permanence is validated before the removal commits, so both zones
	// are untouched.
	assert.Equal(t, 1, s.Count(ZoneHand))
	assert.Equal(t, 0, s.Count(ZoneBattlefield))
}

func TestMoveLandToBattlefield(t *testing.T) {
	s := NewStateWithDeck(nil, testRNG(), nil)
	s.zone(ZoneHand).Add(card.New("Forest", card.TypeLand))

	require.NoError(t, s.MoveCard(ByIndex(0), ZoneHand, ZoneBattlefield))
	assert.Equal(t, 0, s.Count(ZoneHand))
	assert.Equal(t, 1, s.Count(ZoneBattlefield))
}

func TestDrawNPartialProgress(t *testing.T) {
	s := NewStateWithDeck(testDeck(2), testRNG(), nil)

	err := s.DrawN(3)
	require.ErrorIs(t, err, ErrDeckExhausted)

	// The two successful draws stay applied.
	assert.Equal(t, 2, s.Count(ZoneHand))
	assert.Equal(t, 0, s.Count(ZoneDeck))
}

func TestPlayRoutesByPermanence(t *testing.T) {
	s := NewStateWithDeck(nil, testRNG(), nil)
	s.zone(ZoneHand).Add(card.New("Grizzly Bears", card.TypeCreature))
	s.zone(ZoneHand).Add(card.New("Divination", card.TypeSorcery))

	require.NoError(t, s.Play(ByName("Grizzly Bears")))
	assert.Equal(t, 1, s.Count(ZoneBattlefield))

	require.NoError(t, s.Play(ByName("Divination")))
	assert.Equal(t, 1, s.Count(ZoneGraveyard))

	assert.Equal(t, 0, s.Count(ZoneHand))
}

func TestFetchPlaysAndShuffles(t *testing.T) {
	deck := []card.Card{
		card.New("Forest", card.TypeLand),
		card.New("Opt", card.TypeInstant),
		card.New("Mountain", card.TypeLand),
	}
	s := NewStateWithDeck(deck, testRNG(), nil)

	require.NoError(t, s.Fetch("Forest"))

	assert.Equal(t, 2, s.Count(ZoneDeck))
	assert.Equal(t, 1, s.Count(ZoneBattlefield))
	assert.Equal(t, "Forest", s.ZoneCards(ZoneBattlefield)[0].Name)

	require.NoError(t, s.Fetch("Opt"))
	assert.Equal(t, 1, s.Count(ZoneGraveyard))
}

func TestTutorMovesToHandAndShuffles(t *testing.T) {
	s := NewStateWithDeck([]card.Card{
		card.New("Plains", card.TypeLand),
		card.New("Demonic Tutor", card.TypeSorcery),
	}, testRNG(), nil)

	require.NoError(t, s.Tutor("Demonic Tutor"))
	require.Len(t, s.ZoneCards(ZoneHand), 1)
	assert.Equal(t, "Demonic Tutor", s.ZoneCards(ZoneHand)[0].Name)

	err := s.Tutor("Black Lotus")
	require.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 1, s.Count(ZoneDeck))
}

func TestMillPartialProgress(t *testing.T) {
	s := NewStateWithDeck(testDeck(2), testRNG(), nil)

	err := s.Mill(5)
	require.ErrorIs(t, err, ErrDeckExhausted)

	assert.Equal(t, 2, s.Count(ZoneGraveyard))
	assert.Equal(t, 0, s.Count(ZoneDeck))
}

func TestShuffleOnlyTouchesDeck(t *testing.T) {
	s := NewStateWithDeck(testDeck(10), testRNG(), nil)
	s.zone(ZoneHand).Add(card.New("Opt", card.TypeInstant))
	s.zone(ZoneBattlefield).Add(card.New("Forest", card.TypeLand))

	s.Shuffle()

	assert.Equal(t, 10, s.Count(ZoneDeck))
	assert.Equal(t, 1, s.Count(ZoneHand))
	assert.Equal(t, 1, s.Count(ZoneBattlefield))
}

func TestStartNewGame(t *testing.T) {
	cards := make([]card.Card, 0, 20)
	for i := 0; i < 20; i++ {
		cards = append(cards, card.New("Island", card.TypeLand))
	}
	s := NewStateWithDeck(cards, testRNG(), nil)

	// Scatter cards across zones first.
	require.NoError(t, s.DrawN(5))
	require.NoError(t, s.Play(ByIndex(0)))
	require.NoError(t, s.Mill(3))

	require.NoError(t, s.StartNewGame())

	assert.Equal(t, 7, s.Count(ZoneHand))
	assert.Equal(t, 13, s.Count(ZoneDeck))
	assert.Equal(t, 0, s.Count(ZoneBattlefield))
	assert.Equal(t, 0, s.Count(ZoneGraveyard))
	assert.Equal(t, 0, s.Count(ZoneExile))

	// Restarting twice in a row always lands in the same shape.
	require.NoError(t, s.StartNewGame())
	assert.Equal(t, 7, s.Count(ZoneHand))
	assert.Equal(t, 13, s.Count(ZoneDeck))
	assert.Equal(t, 20, s.TotalCards())
}

func TestStartNewGameWithThinDeck(t *testing.T) {
	s := NewStateWithDeck(testDeck(5), testRNG(), nil)

	err := s.StartNewGame()
	require.ErrorIs(t, err, ErrDeckExhausted)
}

func TestConservationAcrossCommands(t *testing.T) {
	deck := []card.Card{
		card.New("Forest", card.TypeLand),
		card.New("Grizzly Bears", card.TypeCreature),
		card.New("Opt", card.TypeInstant),
		card.New("Swamp", card.TypeLand),
		card.New("Island", card.TypeLand),
	}
	s := NewStateWithDeck(deck, testRNG(), nil)

	require.NoError(t, s.DrawN(3))
	assert.Equal(t, 5, s.TotalCards())

	require.NoError(t, s.Play(ByIndex(0)))
	assert.Equal(t, 5, s.TotalCards())

	s.Shuffle()
	assert.Equal(t, 5, s.TotalCards())

	require.NoError(t, s.Mill(1))
	assert.Equal(t, 5, s.TotalCards())

	// A failing command conserves too.
	_ = s.MoveCard(ByName("No Such Card"), ZoneHand, ZoneExile)
	assert.Equal(t, 5, s.TotalCards())
}

func TestInspectTopIsReadOnly(t *testing.T) {
	s := NewStateWithDeck([]card.Card{
		card.New("Plains", card.TypeLand),
		card.New("Island", card.TypeLand),
		card.New("Swamp", card.TypeLand),
	}, testRNG(), nil)

	names := s.InspectTop(2)
	assert.Equal(t, []string{"Plains", "Island"}, names)
	assert.Equal(t, 3, s.Count(ZoneDeck))

	// Asking for more than the deck holds truncates.
	assert.Len(t, s.InspectTop(10), 3)
	assert.Empty(t, s.InspectTop(0))
}

func TestSpecifierIndexOutOfRange(t *testing.T) {
	s := NewStateWithDeck(testDeck(2), testRNG(), nil)

	err := s.MoveCard(ByIndex(2), ZoneDeck, ZoneHand)
	require.ErrorIs(t, err, ErrNotFound)

	s2 := NewStateWithDeck(testDeck(3), testRNG(), nil)
	require.NoError(t, s2.MoveCard(ByIndex(2), ZoneDeck, ZoneHand))
}
