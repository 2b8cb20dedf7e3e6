package gocube

import (
	"math"

	"github.com/westphae/quaternion"
)

// latticeTolerance bounds how far a rotated point may sit from a lattice
// point and still be considered on it.
const latticeTolerance = 1e-6

// pivot returns the rotation of a layer turned by angle radians about axis,
// right-handed.
func pivot(axis Axis, angle float64) quaternion.Quaternion {
	sin, cos := math.Sincos(angle / 2)
	q := quaternion.Quaternion{W: cos}
	switch axis {
	case AxisX:
		q.X = sin
	case AxisY:
		q.Y = sin
	default:
		q.Z = sin
	}
	return q
}

// rotate applies q to v as q*v*conj(q).
func rotate(q quaternion.Quaternion, v quaternion.Vec3) quaternion.Vec3 {
	p := quaternion.Prod(q, quaternion.Quaternion{X: v.X, Y: v.Y, Z: v.Z}, q.Conj())
	return quaternion.Vec3{X: p.X, Y: p.Y, Z: p.Z}
}

func toVec3(v Vec) quaternion.Vec3 {
	return quaternion.Vec3{X: float64(v.X), Y: float64(v.Y), Z: float64(v.Z)}
}

// snap rounds a rotated vector to the nearest lattice point.
func snap(v quaternion.Vec3) Vec {
	return Vec{
		X: int(math.Round(v.X)),
		Y: int(math.Round(v.Y)),
		Z: int(math.Round(v.Z)),
	}
}

// onLattice reports whether v lies on lattice point p.
func onLattice(v quaternion.Vec3, p Vec) bool {
	return math.Abs(v.X-float64(p.X)) < latticeTolerance &&
		math.Abs(v.Y-float64(p.Y)) < latticeTolerance &&
		math.Abs(v.Z-float64(p.Z)) < latticeTolerance
}

// layer selects the cubelets whose coordinate on axis equals layer.
func (c *Cube) layer(axis Axis, layer int) []*Cubelet {
	var members []*Cubelet
	for _, cl := range c.cubelets {
		if cl.Position.Get(axis) == layer {
			members = append(members, cl)
		}
	}
	return members
}

// applyTurn rotates members by exactly a quarter turn and snaps them back
// onto the lattice. Position, orientation and sticker slots move together.
func applyTurn(m Move, members []*Cubelet) {
	q := pivot(m.Axis, m.Angle())
	for _, cl := range members {
		cl.Position = snap(rotate(q, toVec3(cl.Position)))
		for i, axis := range cl.Orientation {
			cl.Orientation[i] = snap(rotate(q, toVec3(axis)))
		}

		var stickers [6]Color
		for d := Dir(0); d < 6; d++ {
			to, ok := dirOf(snap(rotate(q, toVec3(d.Vec()))))
			if !ok {
				// A quarter turn about a cardinal axis always lands on one.
				panic("gocube: quarter turn produced a non-cardinal direction")
			}
			stickers[to] = cl.Stickers[d]
		}
		cl.Stickers = stickers
	}
}

// ApplyInstant applies moves to the cube without animating. Queued turns
// are completed first so ordering is preserved.
func (c *Cube) ApplyInstant(moves ...Move) {
	c.Settle()
	for _, m := range moves {
		applyTurn(m, c.layer(m.Axis, m.Layer))
	}
}
