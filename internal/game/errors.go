package game

import "errors"

// Engine failure kinds. Callers discriminate with errors.Is; messages carry
// the specifics of the failing command.
var (
	// ErrNotFound reports a specifier that resolves to no card in its zone.
	ErrNotFound = errors.New("not found")

	// ErrUnknownZone reports a token that matches no zone name.
	ErrUnknownZone = errors.New("unknown zone")

	// ErrIllegalDestination reports moving a non-permanent to the battlefield.
	ErrIllegalDestination = errors.New("illegal destination")

	// ErrDeckExhausted reports a draw or mill against an empty deck.
	ErrDeckExhausted = errors.New("deck exhausted")
)
