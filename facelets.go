package gocube

import "strings"

// ErrorToken marks a sticker that could not be resolved.
const ErrorToken = '?'

// FaceletCount is the length of a facelet string.
const FaceletCount = 54

// SolvedFacelets is the facelet string of a solved cube.
const SolvedFacelets = "UUUUUUUUU" + "RRRRRRRRR" + "FFFFFFFFF" + "DDDDDDDDD" + "LLLLLLLLL" + "BBBBBBBBB"

// Face indices in facelet order.
const (
	faceU = iota
	faceR
	faceF
	faceD
	faceL
	faceB
)

// colorTokens maps sticker colors to the face token a solver expects.
var colorTokens = map[Color]byte{
	White:  'U',
	Red:    'R',
	Blue:   'F',
	Yellow: 'D',
	Orange: 'L',
	Green:  'B',
}

// faceScan describes how one face is read: its outward direction and the
// lattice cell under each sticker, row-major as seen looking at the face.
type faceScan struct {
	normal Dir
	cell   func(row, col int) Vec
}

var scanOrder = [6]faceScan{
	faceU: {DirPosY, func(r, c int) Vec { return Vec{c - 1, 1, r - 1} }},
	faceR: {DirPosX, func(r, c int) Vec { return Vec{1, 1 - r, 1 - c} }},
	faceF: {DirPosZ, func(r, c int) Vec { return Vec{c - 1, 1 - r, 1} }},
	faceD: {DirNegY, func(r, c int) Vec { return Vec{c - 1, -1, 1 - r} }},
	faceL: {DirNegX, func(r, c int) Vec { return Vec{-1, 1 - r, c - 1} }},
	faceB: {DirNegZ, func(r, c int) Vec { return Vec{1 - c, 1 - r, -1} }},
}

// FaceletString reads the visible stickers into the 54-token facelet
// string: faces U, R, F, D, L, B, nine tokens each, row by row.
//
// Each face is read as seen from outside, in the Kociemba layout. U has B on
// top, D has F on top, and the side faces have U on top. R reads columns
// from F toward B and L from B toward F.
//
// Cubelets in a turning layer are read at their current world transform,
// so a reading taken mid-turn contains ErrorToken for the stickers that are
// off the lattice. Callers must reject any reading with FaceletsValid.
func (c *Cube) FaceletString() string {
	var b strings.Builder
	b.Grow(FaceletCount)

	for _, face := range scanOrder {
		for row := 0; row < 3; row++ {
			for col := 0; col < 3; col++ {
				b.WriteByte(c.sample(face.cell(row, col), face.normal))
			}
		}
	}
	return b.String()
}

// sample finds the cubelet occupying cell and reads the sticker facing
// outward along normal.
func (c *Cube) sample(cell Vec, normal Dir) byte {
	for _, cl := range c.cubelets {
		q, turning := c.worldTransform(cl)
		if !turning {
			if cl.Position != cell {
				continue
			}
			return tokenFor(cl.Stickers[normal])
		}

		if !onLattice(rotate(q, toVec3(cl.Position)), cell) {
			continue
		}
		for d := Dir(0); d < 6; d++ {
			if onLattice(rotate(q, toVec3(d.Vec())), normal.Vec()) {
				return tokenFor(cl.Stickers[d])
			}
		}
	}
	return ErrorToken
}

func tokenFor(col Color) byte {
	tok, ok := colorTokens[col]
	if !ok {
		return ErrorToken
	}
	return tok
}

// FaceletsValid reports whether s is a complete reading with no
// unresolved stickers.
func FaceletsValid(s string) bool {
	return len(s) == FaceletCount && !strings.ContainsRune(s, ErrorToken)
}

// splitFaces cuts a facelet string into its six nine-token faces.
func splitFaces(s string) [6]string {
	var faces [6]string
	for i := range faces {
		if len(s) >= (i+1)*9 {
			faces[i] = s[i*9 : (i+1)*9]
		} else {
			faces[i] = strings.Repeat(string(ErrorToken), 9)
		}
	}
	return faces
}

// FaceTokens returns the facelet tokens in face order.
func FaceTokens() []byte {
	return []byte{'U', 'R', 'F', 'D', 'L', 'B'}
}
