// Package gocube models a 3x3x3 puzzle cube as 26 cubelets on an integer
// lattice, animates named face turns one at a time, and reads the visible
// stickers back into the 54-character facelet string understood by
// two-phase solving services.
//
// # Quick Start
//
//	cube := gocube.NewCube()
//
//	cube.SetMoveCallback(func(m gocube.Move) {
//	    fmt.Println("Turned:", m)
//	})
//
//	cube.PerformMove("R")
//	cube.PerformMove("U'")
//
//	// Drive the animation from a frame loop...
//	cube.Step(16 * time.Millisecond)
//
//	// ...or finish every queued turn at once.
//	cube.Settle()
//
//	fmt.Println(cube.FaceletString())
//
// # Moves
//
// The move table holds the twelve quarter turns of the outer layers:
//
//	gocube.U, gocube.UPrime, gocube.D, gocube.DPrime,
//	gocube.L, gocube.LPrime, gocube.R, gocube.RPrime,
//	gocube.F, gocube.FPrime, gocube.B, gocube.BPrime
//
// Every inverse is its own named entry. Unknown names passed to PerformMove
// are ignored; use LookupMove to get an error instead.
//
// # Animation
//
// A Cube is either Idle or Animating. PerformMove appends to a FIFO queue and
// starts the next turn when Idle. Step advances the turn in flight with an
// ease-out curve; when it completes, the layer is snapped to the lattice, the
// move callback fires, and the next queued turn starts. The idle callback
// fires when the queue has drained.
//
// # Facelets
//
// FaceletString scans faces in U, R, F, D, L, B order, nine stickers per
// face, and emits one of U R F D L B per sticker or '?' when a sticker cannot
// be resolved (for example while a layer is mid-turn).
package gocube
