package game

import (
	"fmt"
	"io"
	"sort"

	"github.com/magefree/goldfish/internal/card"
)

// Battlefield display bands, in print order.
const (
	bandCreatures  = 1
	bandPermanents = 2
	bandLands      = 3
)

func bandOf(c card.Card) int {
	switch {
	case c.IsCreature():
		return bandCreatures
	case c.IsLand():
		return bandLands
	default:
		return bandPermanents
	}
}

var bandNames = map[int]string{
	bandCreatures:  "creatures",
	bandPermanents: "permanents",
	bandLands:      "lands",
}

// Render writes the full state summary: battlefield grouped into bands,
// hand in order, and bare counts for deck, graveyard, and exile.
func (s *State) Render(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "battlefield:"); err != nil {
		return err
	}
	if err := s.renderBattlefield(w); err != nil {
		return err
	}
	if err := s.renderHand(w); err != nil {
		return err
	}
	for _, zt := range []ZoneType{ZoneDeck, ZoneGraveyard, ZoneExile} {
		if _, err := fmt.Fprintf(w, "    %s: [%d cards]\n", zt, s.Count(zt)); err != nil {
			return err
		}
	}
	return nil
}

// renderBattlefield prints the battlefield in three bands. The zone is
// stably sorted by band, so ties keep their relative battlefield order, and
// each card is labeled with its index in the full sorted sequence rather
// than within its band. Empty bands print nothing.
func (s *State) renderBattlefield(w io.Writer) error {
	cards := append([]card.Card(nil), s.ZoneCards(ZoneBattlefield)...)
	sort.SliceStable(cards, func(i, j int) bool {
		return bandOf(cards[i]) < bandOf(cards[j])
	})

	printed := false
	i := 0
	for i < len(cards) {
		band := bandOf(cards[i])
		if _, err := fmt.Fprintf(w, "    %s: ", bandNames[band]); err != nil {
			return err
		}
		first := true
		for i < len(cards) && bandOf(cards[i]) == band {
			if !first {
				if _, err := fmt.Fprint(w, ", "); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(w, "$%d %s", i, cards[i].Name); err != nil {
				return err
			}
			first = false
			i++
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
		printed = true
	}

	if printed {
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

func (s *State) renderHand(w io.Writer) error {
	hand := s.ZoneCards(ZoneHand)

	if _, err := fmt.Fprint(w, "    hand: "); err != nil {
		return err
	}
	if len(hand) == 0 {
		_, err := fmt.Fprintln(w, "[no cards]")
		return err
	}
	for i, c := range hand {
		if i > 0 {
			if _, err := fmt.Fprint(w, ", "); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "$%d %s", i, c.Name); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}

// RenderZone writes a numbered listing of a single zone's contents, used by
// `print exile` and `print graveyard`.
func (s *State) RenderZone(w io.Writer, zt ZoneType) error {
	cards := s.ZoneCards(zt)
	if _, err := fmt.Fprintf(w, "%s:\n", zt); err != nil {
		return err
	}
	if len(cards) == 0 {
		_, err := fmt.Fprintln(w, "    [no cards]")
		return err
	}
	for i, c := range cards {
		if _, err := fmt.Fprintf(w, "    $%d %s\n", i, c.Name); err != nil {
			return err
		}
	}
	return nil
}

// RenderInspect writes up to n top-of-deck card names. Asking for zero
// cards or inspecting an empty deck renders a marker line, not an error.
func (s *State) RenderInspect(w io.Writer, n int) error {
	names := s.InspectTop(n)
	if len(names) == 0 {
		_, err := fmt.Fprintln(w, "    [nothing to show]")
		return err
	}
	for i, name := range names {
		if _, err := fmt.Fprintf(w, "    $%d %s\n", i, name); err != nil {
			return err
		}
	}
	return nil
}
