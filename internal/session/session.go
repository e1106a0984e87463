// Package session drives a single solitaire game: it owns the game state,
// resolves deck lists through the card-data provider, and executes parsed
// commands one at a time.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"

	"github.com/magefree/goldfish/internal/card"
	"github.com/magefree/goldfish/internal/carddata"
	"github.com/magefree/goldfish/internal/command"
	"github.com/magefree/goldfish/internal/decklist"
	"github.com/magefree/goldfish/internal/game"
	"go.uber.org/zap"
)

// ErrNoDeck reports a command issued before any deck has been loaded.
var ErrNoDeck = errors.New("no deck loaded; use `load <path>` first")

// Session owns one game and serializes all access to it. It is
// single-threaded by construction: Exec fully applies one command before
// the next line is read.
type Session struct {
	state    *game.State
	resolver carddata.Resolver
	out      io.Writer
	rng      *rand.Rand
	logger   *zap.Logger
	ready    bool
}

// NewSession creates an empty session. Load must succeed before any
// game command can run.
func NewSession(resolver carddata.Resolver, out io.Writer, rng *rand.Rand, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		resolver: resolver,
		out:      out,
		rng:      rng,
		logger:   logger,
	}
}

// New creates a session and loads a deck from source in one step.
func New(source string, resolver carddata.Resolver, out io.Writer, rng *rand.Rand, logger *zap.Logger) (*Session, error) {
	s := NewSession(resolver, out, rng, logger)
	if err := s.Load(source); err != nil {
		return nil, err
	}
	return s, nil
}

// Load replaces the whole game state with a fresh one built from the deck
// list at source, then starts a new game (shuffle plus opening hand). Each
// distinct card name is resolved through the provider exactly once; copies
// share the classification but are independent card values, and the deck
// keeps the deck-list order before the shuffle.
func (s *Session) Load(source string) error {
	entries, err := decklist.Load(source)
	if err != nil {
		return fmt.Errorf("load deck: %w", err)
	}

	resolved := make(map[string]card.Card)
	var cards []card.Card
	total := 0
	for _, entry := range entries {
		key := card.NormalizeName(entry.Name)
		c, ok := resolved[key]
		if !ok {
			c, err = s.resolver.Resolve(context.Background(), entry.Name)
			if err != nil {
				return fmt.Errorf("load deck: resolve `%s`: %w", entry.Name, err)
			}
			resolved[key] = c
		}
		for i := 0; i < entry.Count; i++ {
			cards = append(cards, c.Copy())
		}
		total += entry.Count
	}

	state := game.NewStateWithDeck(cards, s.rng, s.logger)
	if err := state.StartNewGame(); err != nil {
		return fmt.Errorf("load deck: %w", err)
	}

	s.state = state
	s.ready = true

	s.logger.Info("deck loaded",
		zap.String("source", source),
		zap.Int("cards", total),
		zap.Int("distinct", len(resolved)),
	)

	return nil
}

// Exec parses and executes one input line. It returns whether visible game
// state changed, so the host knows when to re-render. Failures leave the
// state untouched, except the documented partial progress of draw and mill.
func (s *Session) Exec(line string) (bool, error) {
	cmd, err := command.Parse(line)
	if err != nil {
		return false, err
	}

	// Only load and restart are legal before a deck exists; the
	// read-only verbs still need state to read. A restart without a
	// deck runs against an empty state and surfaces the draw failure.
	if !s.ready {
		switch cmd.Kind {
		case command.KindNop, command.KindHelp, command.KindLoad:
		case command.KindRestart:
			s.state = game.NewState(s.rng, s.logger)
		default:
			return false, ErrNoDeck
		}
	}

	switch cmd.Kind {
	case command.KindNop:
		return false, nil
	case command.KindBounce:
		return s.applied(s.state.Bounce(cmd.Spec))
	case command.KindDiscard:
		return s.applied(s.state.Discard(cmd.Spec))
	case command.KindDraw:
		// Draw keeps partial progress on failure, so the change flag
		// comes from the hand delta, not from the error.
		before := s.state.Count(game.ZoneHand)
		err := s.state.DrawN(cmd.Count)
		return s.state.Count(game.ZoneHand) != before, err
	case command.KindExile:
		return s.applied(s.state.Exile(cmd.Spec, cmd.From))
	case command.KindFetch:
		return s.applied(s.state.Fetch(cmd.Name))
	case command.KindHelp:
		return false, s.printHelp()
	case command.KindInspect:
		return false, s.state.RenderInspect(s.out, cmd.Count)
	case command.KindLoad:
		return s.applied(s.Load(cmd.Name))
	case command.KindMill:
		// Same partial-progress rule as draw.
		before := s.state.Count(game.ZoneGraveyard)
		err := s.state.Mill(cmd.Count)
		return s.state.Count(game.ZoneGraveyard) != before, err
	case command.KindMove:
		return s.applied(s.state.MoveCard(cmd.Spec, cmd.From, cmd.To))
	case command.KindPlay:
		return s.applied(s.state.Play(cmd.Spec))
	case command.KindPrint:
		return false, s.execPrint(cmd.Target)
	case command.KindRestart:
		// Consolidation and the shuffle happen before any draw failure.
		return true, s.state.StartNewGame()
	case command.KindSacrifice:
		return s.applied(s.state.Sacrifice(cmd.Spec))
	case command.KindShuffle:
		s.state.Shuffle()
		return true, nil
	case command.KindTuck:
		return s.applied(s.state.Tuck(cmd.Spec, cmd.From))
	case command.KindTutor:
		return s.applied(s.state.Tutor(cmd.Name))
	default:
		return false, fmt.Errorf("unhandled command kind: %d", cmd.Kind)
	}
}

// applied converts an atomic transition's error into the change flag: the
// state changed exactly when the transition succeeded.
func (s *Session) applied(err error) (bool, error) {
	return err == nil, err
}

// Render writes the full state summary to the session output.
func (s *Session) Render() error {
	if !s.ready {
		return ErrNoDeck
	}
	return s.state.Render(s.out)
}

// State exposes the engine for read access; the renderer and tests use it.
func (s *Session) State() *game.State {
	return s.state
}

// Ready reports whether a deck has been loaded.
func (s *Session) Ready() bool {
	return s.ready
}

func (s *Session) execPrint(target command.PrintTarget) error {
	switch target {
	case command.PrintExile:
		return s.state.RenderZone(s.out, game.ZoneExile)
	case command.PrintGraveyard:
		return s.state.RenderZone(s.out, game.ZoneGraveyard)
	default:
		return s.state.Render(s.out)
	}
}

const helpText = `commands:
  bounce <card>                     return a card from the battlefield to your hand
  discard <card>                    discard a card from your hand
  draw [n]                          draw n cards (default 1)
  exile <card> from <zone>          exile a card from a zone
  fetch <name>                      search the deck for a card, play it, then shuffle
  help                              show this help
  inspect [n]                       look at the top n cards of the deck (default 1)
  load <path>                       load a deck list and start a new game
  mill <n>                          put the top n cards of the deck into the graveyard
  move <card> from <zone> to <zone> move a card between zones
  play <card>                       play a card from your hand
  print [exile|graveyard]           print the game state or a single zone
  restart                           return all cards to the deck, shuffle, draw 7
  sac <card>                        sacrifice a card on the battlefield
  shuffle                           shuffle the deck
  tuck <card> from <zone>           put a card from a zone back into the deck
  tutor <name>                      search the deck for a card, put it in hand, then shuffle

cards are addressed by name or by $<index> as shown in print output
`

func (s *Session) printHelp() error {
	_, err := io.WriteString(s.out, helpText)
	return err
}
