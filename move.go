package nxcube

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/multierr"
)

// Move is a single move: a face or axis label, the turn amount in quarter
// turns (1, 2, or 3 for a reverse quarter turn) and the number of layers
// counted inward from the face. Whole-cube labels ignore Layers beyond
// validating it.
type Move struct {
	Face   Face `json:"face"`
	Turns  int  `json:"turns"`
	Layers int  `json:"layers"`
}

// moveToken matches a face or axis letter, optional layer digits and an
// optional turn suffix: ' for a reverse quarter turn or *N for N quarters.
var moveToken = regexp.MustCompile(`^([FRBLUDxyz])(\d*)(?:(')|\*([123]))?$`)

// Notation returns the canonical token for the move.
// Examples: F1, R2, U1', x1*2
func (m Move) Notation() string {
	return string(m.Face) + strconv.Itoa(m.Layers) + turnSuffix(m.Turns)
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

func turnSuffix(turns int) string {
	switch turns {
	case 1:
		return ""
	case 3:
		return "'"
	default:
		return "*" + strconv.Itoa(turns)
	}
}

// Inverse returns the move that undoes m.
// F1 becomes F1', F1' becomes F1, F1*2 stays F1*2.
func (m Move) Inverse() Move {
	inv := m
	switch m.Turns {
	case 1:
		inv.Turns = 3
	case 3:
		inv.Turns = 1
	}
	return inv
}

// scan matches a token against the move grammar without range checks.
func scan(token string) (Move, bool) {
	sm := moveToken.FindStringSubmatch(token)
	if sm == nil {
		return Move{}, false
	}

	layers := 1
	if sm[2] != "" {
		n, err := strconv.Atoi(sm[2])
		if err != nil {
			return Move{}, false
		}
		layers = n
	}

	turns := 1
	switch {
	case sm[3] != "":
		turns = 3
	case sm[4] != "":
		turns = int(sm[4][0] - '0')
	}

	return Move{Face: Face(sm[1]), Turns: turns, Layers: layers}, true
}

// ParseMove parses a token meant to be executed. It fails on anything that
// does not match the grammar and on a zero layer count; the upper layer
// bound depends on the cube and is checked when the move is applied.
func ParseMove(token string) (Move, error) {
	m, ok := scan(strings.TrimSpace(token))
	if !ok {
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidNotation, token)
	}
	if m.Layers < 1 {
		return Move{}, fmt.Errorf("%w: %q: %w", ErrInvalidNotation, token, ErrInvalidLayer)
	}
	return m, nil
}

// ParseMoves parses a space-separated sequence of moves to execute.
// Every malformed token is reported; on error no moves are returned.
func ParseMoves(s string) ([]Move, error) {
	parts := strings.Fields(s)
	moves := make([]Move, 0, len(parts))

	var errs error
	for _, part := range parts {
		m, err := ParseMove(part)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		moves = append(moves, m)
	}
	if errs != nil {
		return nil, errs
	}
	return moves, nil
}

// Render converts a list of tokens to canonical text. Tokens that do not
// match the grammar are skipped; missing layer digits become 1.
//
//	Render([]string{"F", "R2", "U3", ""}) == "F1 R2 U3"
func Render(tokens []string) string {
	parts := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		m, ok := scan(strings.TrimSpace(tok))
		if !ok {
			continue
		}
		parts = append(parts, m.Notation())
	}
	return strings.Join(parts, " ")
}

// FormatMoves formats moves as a space-separated canonical string.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}
	return strings.Join(parts, " ")
}
