package gocube

import (
	"fmt"
	"strings"
)

// Axis identifies one of the three rotation axes.
type Axis int

const (
	AxisX Axis = iota // Left to right
	AxisY             // Down to up
	AxisZ             // Back to front
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return "?"
	}
}

// Move describes a quarter turn of one outer layer.
//
// Direction follows the right-hand rule about the positive axis: +1 turns
// the layer a quarter counter-clockwise when viewed from the positive end.
type Move struct {
	Name      string // Notation, e.g. R or R'
	Axis      Axis   // Rotation axis
	Layer     int    // -1 or 1 along Axis
	Direction int    // +1 or -1
}

// String returns the move's notation.
func (m Move) String() string {
	return m.Name
}

// Angle returns the signed target rotation in radians.
func (m Move) Angle() float64 {
	return float64(m.Direction) * quarterTurn
}

// Inverse returns the named move that undoes m.
// R becomes R', R' becomes R.
func (m Move) Inverse() Move {
	name := m.Name
	if strings.HasSuffix(name, "'") {
		name = strings.TrimSuffix(name, "'")
	} else {
		name += "'"
	}
	return moveTable[name]
}

// LookupMove returns the move table entry for name.
func LookupMove(name string) (Move, error) {
	m, ok := moveTable[name]
	if !ok {
		return Move{}, fmt.Errorf("%w: %q", ErrUnknownMove, name)
	}
	return m, nil
}

// IsMove reports whether name is in the move table.
func IsMove(name string) bool {
	_, ok := moveTable[name]
	return ok
}

// ExpandToken turns one notation token into quarter-turn names.
// Half turns such as R2 (or R2') become two quarter turns; a bare quarter
// turn is returned as-is. Anything else is returned unchanged so that
// PerformMove can ignore it.
func ExpandToken(tok string) []string {
	tok = strings.TrimSpace(tok)
	if tok == "" {
		return nil
	}
	base := strings.TrimSuffix(tok, "'")
	if strings.HasSuffix(base, "2") {
		quarter := strings.TrimSuffix(base, "2")
		if IsMove(quarter) {
			return []string{quarter, quarter}
		}
	}
	return []string{tok}
}

// ExpandSequence splits a space-separated sequence and expands half turns.
// Example: "R U2 F'" yields R U U F'.
func ExpandSequence(s string) []string {
	var names []string
	for _, tok := range strings.Fields(s) {
		names = append(names, ExpandToken(tok)...)
	}
	return names
}

// ParseMoves parses a space-separated sequence of moves.
// Half turns are expanded, unknown tokens are skipped.
func ParseMoves(s string) []Move {
	names := ExpandSequence(s)
	moves := make([]Move, 0, len(names))
	for _, name := range names {
		if m, ok := moveTable[name]; ok {
			moves = append(moves, m)
		}
	}
	return moves
}

// FormatMoves formats moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Name
	}

	return strings.Join(parts, " ")
}

// InvertSequence returns the moves that undo seq, in the order they must
// be applied.
func InvertSequence(seq []Move) []Move {
	inv := make([]Move, len(seq))
	for i, m := range seq {
		inv[len(seq)-1-i] = m.Inverse()
	}
	return inv
}
