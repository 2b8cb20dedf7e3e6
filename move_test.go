package gocube

import (
	"errors"
	"strings"
	"testing"
)

func TestMoveTableHasTwelveQuarterTurns(t *testing.T) {
	names := MoveNames()
	if got := strings.Join(names, " "); got != "U U' D D' L L' R R' F F' B B'" {
		t.Errorf("unexpected table order: %s", got)
	}

	for _, m := range Moves() {
		if m.Layer != 1 && m.Layer != -1 {
			t.Errorf("%s: layer must be -1 or 1, got %d", m, m.Layer)
		}
		if m.Direction != 1 && m.Direction != -1 {
			t.Errorf("%s: direction must be -1 or 1, got %d", m, m.Direction)
		}
	}
}

func TestInverseIsNamedEntry(t *testing.T) {
	for _, m := range Moves() {
		inv := m.Inverse()
		if !IsMove(inv.Name) {
			t.Errorf("%s: inverse %q is not in the table", m, inv.Name)
		}
		if inv.Axis != m.Axis || inv.Layer != m.Layer || inv.Direction != -m.Direction {
			t.Errorf("%s: inverse %+v does not undo %+v", m, inv, m)
		}
		if inv.Inverse() != m {
			t.Errorf("%s: inverse of inverse is %s", m, inv.Inverse())
		}
	}
}

func TestLookupMove(t *testing.T) {
	m, err := LookupMove("F'")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m != FPrime {
		t.Errorf("expected F', got %+v", m)
	}

	_, err = LookupMove("M")
	if !errors.Is(err, ErrUnknownMove) {
		t.Errorf("expected ErrUnknownMove, got %v", err)
	}
}

func TestExpandSequence(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"R U R' F'", "R U R' F'"},
		{"R2 U", "R R U"},
		{"  D2'  B ", "D D B"},
		{"x R", "x R"},
		{"", ""},
	}
	for _, tt := range tests {
		got := strings.Join(ExpandSequence(tt.in), " ")
		if got != tt.want {
			t.Errorf("ExpandSequence(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseMovesSkipsUnknown(t *testing.T) {
	moves := ParseMoves("R x U2 Q F'")
	if got := FormatMoves(moves); got != "R U U F'" {
		t.Errorf("unexpected parse result %q", got)
	}
}

func TestInvertSequence(t *testing.T) {
	seq := []Move{R, U, FPrime}
	if got := FormatMoves(InvertSequence(seq)); got != "F U' R'" {
		t.Errorf("unexpected inverse sequence %q", got)
	}
}
