// Package command turns a raw input line into a validated command value.
// Parsing never executes anything: either a complete Command comes back, or
// a typed error describing the failing clause, and the game state is never
// touched either way.
package command

import (
	"errors"

	"github.com/magefree/goldfish/internal/game"
)

// Kind discriminates the closed set of commands. Dispatch is an exhaustive
// switch over Kind; adding a verb means adding a Kind, a parse arm, and a
// dispatch arm.
type Kind int

const (
	KindNop Kind = iota
	KindBounce
	KindDiscard
	KindDraw
	KindExile
	KindFetch
	KindHelp
	KindInspect
	KindLoad
	KindMill
	KindMove
	KindPlay
	KindPrint
	KindRestart
	KindSacrifice
	KindShuffle
	KindTuck
	KindTutor
)

// PrintTarget selects what the print command renders.
type PrintTarget int

const (
	PrintDefault PrintTarget = iota
	PrintExile
	PrintGraveyard
)

// Command is the parsed form of one input line. Only the fields relevant to
// its Kind are populated.
type Command struct {
	Kind Kind

	Spec   game.Specifier // bounce, discard, exile, move, play, sac, tuck
	From   game.ZoneType  // exile, move, tuck
	To     game.ZoneType  // move
	Count  int            // draw, inspect, mill
	Name   string         // fetch, load, tutor
	Target PrintTarget    // print
}

// Parser failure kinds.
var (
	// ErrUnknownVerb reports a first token that matches no verb.
	ErrUnknownVerb = errors.New("unknown verb")

	// ErrInvalidIndex reports a `$`-specifier whose remainder is not a
	// non-negative integer.
	ErrInvalidIndex = errors.New("invalid index")

	// ErrInvalidCount reports a numeric argument that is missing, repeated,
	// or not a non-negative integer.
	ErrInvalidCount = errors.New("invalid count")

	// ErrMalformedClause reports a missing `to`/`from` keyword, a wrong
	// token count after one, or trailing tokens on a zero-argument verb.
	ErrMalformedClause = errors.New("malformed clause")
)
