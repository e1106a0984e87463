package game

import (
	"strings"
	"testing"

	"github.com/magefree/goldfish/internal/card"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderBattlefieldBands(t *testing.T) {
	s := NewStateWithDeck(nil, testRNG(), nil)
	bf := s.zone(ZoneBattlefield)

	// Battlefield order deliberately interleaves the bands.
	bf.Add(card.New("Forest", card.TypeLand))
	bf.Add(card.New("Grizzly Bears", card.TypeCreature))
	bf.Add(card.New("Sol Ring", card.TypeArtifact))
	bf.Add(card.New("Mountain", card.TypeLand))
	bf.Add(card.New("Llanowar Elves", card.TypeCreature))

	var buf strings.Builder
	require.NoError(t, s.Render(&buf))
	out := buf.String()

	creatures := strings.Index(out, "creatures:")
	permanents := strings.Index(out, "permanents:")
	lands := strings.Index(out, "lands:")
	require.NotEqual(t, -1, creatures)
	require.NotEqual(t, -1, permanents)
	require.NotEqual(t, -1, lands)

	// Bands print in order: creatures, other permanents, lands.
	assert.Less(t, creatures, permanents)
	assert.Less(t, permanents, lands)

	// Ties keep battlefield order, and indices run over the full sorted
	// sequence, not per band.
	assert.Contains(t, out, "creatures: $0 Grizzly Bears, $1 Llanowar Elves")
	assert.Contains(t, out, "permanents: $2 Sol Ring")
	assert.Contains(t, out, "lands: $3 Forest, $4 Mountain")
}

func TestRenderEmptyBandsPrintNothing(t *testing.T) {
	s := NewStateWithDeck(nil, testRNG(), nil)
	s.zone(ZoneBattlefield).Add(card.New("Forest", card.TypeLand))

	var buf strings.Builder
	require.NoError(t, s.Render(&buf))
	out := buf.String()

	assert.NotContains(t, out, "creatures:")
	assert.NotContains(t, out, "permanents:")
	assert.Contains(t, out, "lands: $0 Forest")
}

func TestRenderHand(t *testing.T) {
	s := NewStateWithDeck(nil, testRNG(), nil)

	var buf strings.Builder
	require.NoError(t, s.Render(&buf))
	assert.Contains(t, buf.String(), "hand: [no cards]")

	s.zone(ZoneHand).Add(card.New("Opt", card.TypeInstant))
	s.zone(ZoneHand).Add(card.New("Island", card.TypeLand))

	buf.Reset()
	require.NoError(t, s.Render(&buf))
	assert.Contains(t, buf.String(), "hand: $0 Opt, $1 Island")
}

func TestRenderZoneCounts(t *testing.T) {
	s := NewStateWithDeck(testDeck(4), testRNG(), nil)
	s.zone(ZoneGraveyard).Add(card.New("Opt", card.TypeInstant))

	var buf strings.Builder
	require.NoError(t, s.Render(&buf))
	out := buf.String()

	assert.Contains(t, out, "deck: [4 cards]")
	assert.Contains(t, out, "graveyard: [1 cards]")
	assert.Contains(t, out, "exile: [0 cards]")
}

func TestRenderZoneListing(t *testing.T) {
	s := NewStateWithDeck(nil, testRNG(), nil)

	var buf strings.Builder
	require.NoError(t, s.RenderZone(&buf, ZoneExile))
	assert.Contains(t, buf.String(), "[no cards]")

	s.zone(ZoneExile).Add(card.New("Path to Exile", card.TypeInstant))
	s.zone(ZoneExile).Add(card.New("Swamp", card.TypeLand))

	buf.Reset()
	require.NoError(t, s.RenderZone(&buf, ZoneExile))
	out := buf.String()
	assert.Contains(t, out, "$0 Path to Exile")
	assert.Contains(t, out, "$1 Swamp")
}

func TestRenderInspect(t *testing.T) {
	s := NewStateWithDeck([]card.Card{
		card.New("Plains", card.TypeLand),
		card.New("Island", card.TypeLand),
	}, testRNG(), nil)

	var buf strings.Builder
	require.NoError(t, s.RenderInspect(&buf, 2))
	out := buf.String()
	assert.Contains(t, out, "$0 Plains")
	assert.Contains(t, out, "$1 Island")

	// Zero count and empty deck both render the marker, not an error.
	buf.Reset()
	require.NoError(t, s.RenderInspect(&buf, 0))
	assert.Contains(t, buf.String(), "[nothing to show]")

	empty := NewStateWithDeck(nil, testRNG(), nil)
	buf.Reset()
	require.NoError(t, empty.RenderInspect(&buf, 3))
	assert.Contains(t, buf.String(), "[nothing to show]")
}
