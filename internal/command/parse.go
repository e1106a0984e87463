package command

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/magefree/goldfish/internal/game"
)

// input holds the whitespace-split tokens of a line while the grammar
// consumes them.
type input struct {
	parts []string
}

// Parse tokenizes a line and produces a single validated command. An empty
// line parses to a no-op.
func Parse(line string) (Command, error) {
	in := &input{parts: strings.Fields(line)}

	if len(in.parts) == 0 {
		return Command{Kind: KindNop}, nil
	}

	verb := in.parts[0]
	in.parts = in.parts[1:]

	switch verb {
	case "bounce":
		return in.parseSpecCommand(KindBounce)
	case "discard":
		return in.parseSpecCommand(KindDiscard)
	case "draw":
		return in.parseCount(KindDraw, "draw", true)
	case "exile":
		return in.parseSingleZone(KindExile, "exile")
	case "fetch":
		return Command{Kind: KindFetch, Name: in.joined()}, nil
	case "help":
		return in.parseBare(KindHelp, "help")
	case "inspect":
		return in.parseCount(KindInspect, "inspect", true)
	case "load":
		return Command{Kind: KindLoad, Name: in.joined()}, nil
	case "mill":
		return in.parseCount(KindMill, "mill", false)
	case "move":
		return in.parseMove()
	case "play":
		return in.parseSpecCommand(KindPlay)
	case "print":
		return in.parsePrint()
	case "restart":
		return in.parseBare(KindRestart, "restart")
	case "sac":
		return in.parseSpecCommand(KindSacrifice)
	case "shuffle":
		return in.parseBare(KindShuffle, "shuffle")
	case "tuck":
		return in.parseSingleZone(KindTuck, "tuck")
	case "tutor":
		return Command{Kind: KindTutor, Name: in.joined()}, nil
	default:
		return Command{}, fmt.Errorf("%w: `%s` is not a known verb", ErrUnknownVerb, verb)
	}
}

// joined rejoins the remaining tokens with single spaces, collapsing any
// whitespace runs from the original line.
func (in *input) joined() string {
	return strings.Join(in.parts, " ")
}

// splitOffAt scans right to left for the last occurrence of the keyword,
// removes it, and returns the tokens after it. Scanning from the right lets
// an earlier `to`/`from` be part of a card name. Returns ok=false when the
// keyword is absent.
func (in *input) splitOffAt(keyword string) ([]string, bool) {
	for i := len(in.parts) - 1; i >= 0; i-- {
		if in.parts[i] == keyword {
			rest := in.parts[i+1:]
			in.parts = in.parts[:i]
			return rest, true
		}
	}
	return nil, false
}

// zoneAfter consumes the rightmost `keyword` clause and parses the single
// zone-name token that must follow it.
func (in *input) zoneAfter(verb, keyword string) (game.ZoneType, error) {
	rest, ok := in.splitOffAt(keyword)
	if !ok {
		return 0, fmt.Errorf("%w: `%s` needs to specify a zone with `%s`", ErrMalformedClause, verb, keyword)
	}
	if len(rest) == 0 {
		return 0, fmt.Errorf("%w: `%s` needs a zone after `%s`", ErrMalformedClause, verb, keyword)
	}
	if len(rest) > 1 {
		return 0, fmt.Errorf("%w: `%s` needs a single-word zone after `%s`", ErrMalformedClause, verb, keyword)
	}
	return game.ParseZone(rest[0])
}

func (in *input) parseSpecCommand(kind Kind) (Command, error) {
	spec, err := in.parseSpecifier()
	if err != nil {
		return Command{}, err
	}
	return Command{Kind: kind, Spec: spec}, nil
}

// parseSpecifier applies the shared specifier sub-grammar: a `$`-prefixed
// remainder must be a lone non-negative integer; anything else is a literal
// card name with its spaces preserved.
func (in *input) parseSpecifier() (game.Specifier, error) {
	if len(in.parts) == 0 {
		return game.Specifier{}, fmt.Errorf("%w: missing card specifier", ErrMalformedClause)
	}

	spec := in.joined()
	if !strings.HasPrefix(spec, "$") {
		return game.ByName(spec), nil
	}

	i, err := strconv.Atoi(spec[1:])
	if err != nil || i < 0 {
		return game.Specifier{}, fmt.Errorf("%w: `%s` is not numeric after the `$`", ErrInvalidIndex, spec)
	}
	return game.ByIndex(i), nil
}

// parseCount applies the numeric-argument sub-grammar. Verbs with a default
// fall back to 1 when no token remains; mill has no default.
func (in *input) parseCount(kind Kind, verb string, defaultOne bool) (Command, error) {
	if len(in.parts) == 0 {
		if defaultOne {
			return Command{Kind: kind, Count: 1}, nil
		}
		return Command{}, fmt.Errorf("%w: `%s` needs a single-word count", ErrInvalidCount, verb)
	}
	if len(in.parts) > 1 {
		return Command{}, fmt.Errorf("%w: `%s` needs a single-word count", ErrInvalidCount, verb)
	}

	n, err := strconv.Atoi(in.parts[0])
	if err != nil || n < 0 {
		return Command{}, fmt.Errorf("%w: `%s` is not a valid numeric count for `%s`", ErrInvalidCount, in.parts[0], verb)
	}
	return Command{Kind: kind, Count: n}, nil
}

func (in *input) parseBare(kind Kind, verb string) (Command, error) {
	if len(in.parts) != 0 {
		return Command{}, fmt.Errorf("%w: `%s` shouldn't have any words following it", ErrMalformedClause, verb)
	}
	return Command{Kind: kind}, nil
}

// parseMove consumes the `to` clause first, then `from`, both right to
// left, leaving the card specifier in front.
func (in *input) parseMove() (Command, error) {
	to, err := in.zoneAfter("move", "to")
	if err != nil {
		return Command{}, err
	}

	from, err := in.zoneAfter("move", "from")
	if err != nil {
		return Command{}, err
	}

	spec, err := in.parseSpecifier()
	if err != nil {
		return Command{}, err
	}

	return Command{Kind: KindMove, Spec: spec, From: from, To: to}, nil
}

func (in *input) parseSingleZone(kind Kind, verb string) (Command, error) {
	from, err := in.zoneAfter(verb, "from")
	if err != nil {
		return Command{}, err
	}

	spec, err := in.parseSpecifier()
	if err != nil {
		return Command{}, err
	}

	return Command{Kind: kind, Spec: spec, From: from}, nil
}

func (in *input) parsePrint() (Command, error) {
	if len(in.parts) == 0 {
		return Command{Kind: KindPrint, Target: PrintDefault}, nil
	}
	if len(in.parts) > 1 {
		return Command{}, fmt.Errorf("%w: `print` either needs no target or a one-word target", ErrMalformedClause)
	}

	switch in.parts[0] {
	case "exile":
		return Command{Kind: KindPrint, Target: PrintExile}, nil
	case "graveyard":
		return Command{Kind: KindPrint, Target: PrintGraveyard}, nil
	default:
		return Command{}, fmt.Errorf("%w: `%s` is not a printable zone", game.ErrUnknownZone, in.parts[0])
	}
}
