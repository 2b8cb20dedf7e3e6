package gocube

import "math"

const quarterTurn = math.Pi / 2

// The move table. Each quarter turn names its axis, layer and direction;
// inverses are separate entries.
var (
	// Up face moves
	U      = Move{Name: "U", Axis: AxisY, Layer: 1, Direction: -1} // Up clockwise
	UPrime = Move{Name: "U'", Axis: AxisY, Layer: 1, Direction: 1} // Up counter-clockwise

	// Down face moves
	D      = Move{Name: "D", Axis: AxisY, Layer: -1, Direction: 1}   // Down clockwise
	DPrime = Move{Name: "D'", Axis: AxisY, Layer: -1, Direction: -1} // Down counter-clockwise

	// Left face moves
	L      = Move{Name: "L", Axis: AxisX, Layer: -1, Direction: 1}   // Left clockwise
	LPrime = Move{Name: "L'", Axis: AxisX, Layer: -1, Direction: -1} // Left counter-clockwise

	// Right face moves
	R      = Move{Name: "R", Axis: AxisX, Layer: 1, Direction: -1} // Right clockwise
	RPrime = Move{Name: "R'", Axis: AxisX, Layer: 1, Direction: 1} // Right counter-clockwise

	// Front face moves
	F      = Move{Name: "F", Axis: AxisZ, Layer: 1, Direction: -1} // Front clockwise
	FPrime = Move{Name: "F'", Axis: AxisZ, Layer: 1, Direction: 1} // Front counter-clockwise

	// Back face moves
	B      = Move{Name: "B", Axis: AxisZ, Layer: -1, Direction: 1}   // Back clockwise
	BPrime = Move{Name: "B'", Axis: AxisZ, Layer: -1, Direction: -1} // Back counter-clockwise
)

// tableOrder is the order controls are generated in.
var tableOrder = []Move{U, UPrime, D, DPrime, L, LPrime, R, RPrime, F, FPrime, B, BPrime}

var moveTable = func() map[string]Move {
	t := make(map[string]Move, len(tableOrder))
	for _, m := range tableOrder {
		t[m.Name] = m
	}
	return t
}()

// Moves returns every move table entry in table order.
func Moves() []Move {
	out := make([]Move, len(tableOrder))
	copy(out, tableOrder)
	return out
}

// MoveNames returns the notation of every move table entry in table order.
func MoveNames() []string {
	names := make([]string, len(tableOrder))
	for i, m := range tableOrder {
		names[i] = m.Name
	}
	return names
}

// Sexy move: R U R' U' - returns to solved after six repetitions
var SexyMove = []Move{R, U, RPrime, UPrime}
