package gocube

import "strings"

// Color represents a sticker color.
type Color byte

const (
	Neutral Color = iota // Interior face, never visible
	White                // Up face when solved
	Yellow               // Down face when solved
	Blue                 // Front face when solved
	Green                // Back face when solved
	Red                  // Right face when solved
	Orange               // Left face when solved
)

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Blue:
		return "B"
	case Green:
		return "G"
	case Red:
		return "R"
	case Orange:
		return "O"
	default:
		return "-"
	}
}

// Vec is a point or direction on the integer lattice.
type Vec struct {
	X, Y, Z int
}

// Get returns the coordinate along axis a.
func (v Vec) Get(a Axis) int {
	switch a {
	case AxisX:
		return v.X
	case AxisY:
		return v.Y
	default:
		return v.Z
	}
}

// Dir is one of the six cardinal directions. Sticker slots are indexed by Dir.
type Dir int

const (
	DirPosX Dir = iota // Right
	DirNegX            // Left
	DirPosY            // Up
	DirNegY            // Down
	DirPosZ            // Front
	DirNegZ            // Back
)

var dirVecs = [6]Vec{
	DirPosX: {X: 1},
	DirNegX: {X: -1},
	DirPosY: {Y: 1},
	DirNegY: {Y: -1},
	DirPosZ: {Z: 1},
	DirNegZ: {Z: -1},
}

// Vec returns the unit vector for d.
func (d Dir) Vec() Vec {
	return dirVecs[d]
}

func (d Dir) String() string {
	return [6]string{"+x", "-x", "+y", "-y", "+z", "-z"}[d]
}

// dirOf maps an axis-aligned unit vector back to its Dir.
func dirOf(v Vec) (Dir, bool) {
	for d, dv := range dirVecs {
		if dv == v {
			return Dir(d), true
		}
	}
	return 0, false
}

// solvedColor is the color each exterior direction carries on a solved cube.
var solvedColor = [6]Color{
	DirPosX: Red,
	DirNegX: Orange,
	DirPosY: White,
	DirNegY: Yellow,
	DirPosZ: Blue,
	DirNegZ: Green,
}

// Cubelet is one of the 26 visible sub-cubes.
//
// Stickers holds one slot per world direction. Rotations permute the slots
// together with Position and Orientation, so the slot facing a direction
// always holds the color visible from that direction.
type Cubelet struct {
	Position    Vec      // Lattice coordinates in {-1,0,1}
	Orientation [3]Vec   // World images of the local x, y and z axes
	Stickers    [6]Color // Color facing each world direction
}

// Cube represents a 3x3x3 puzzle cube with an embedded move sequencer.
type Cube struct {
	cubelets []*Cubelet
	cfg      *config

	sequencer
}

// NewCube creates a solved cube in the standard orientation:
// white up, blue front, red right.
func NewCube(opts ...Option) *Cube {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	c := &Cube{cfg: cfg}
	for x := -1; x <= 1; x++ {
		for y := -1; y <= 1; y++ {
			for z := -1; z <= 1; z++ {
				if x == 0 && y == 0 && z == 0 {
					continue
				}
				c.cubelets = append(c.cubelets, newCubelet(Vec{x, y, z}))
			}
		}
	}
	return c
}

func newCubelet(p Vec) *Cubelet {
	cl := &Cubelet{
		Position:    p,
		Orientation: [3]Vec{{X: 1}, {Y: 1}, {Z: 1}},
	}
	// A face is colored only when it lies on the exterior in its direction.
	for d := Dir(0); d < 6; d++ {
		dv := d.Vec()
		if (dv.X != 0 && dv.X == p.X) || (dv.Y != 0 && dv.Y == p.Y) || (dv.Z != 0 && dv.Z == p.Z) {
			cl.Stickers[d] = solvedColor[d]
		}
	}
	return cl
}

// Clone creates a deep copy of the cube's settled state.
// The move queue, any turn in flight and callbacks are not copied.
func (c *Cube) Clone() *Cube {
	cfg := *c.cfg
	clone := &Cube{cfg: &cfg}
	clone.cubelets = make([]*Cubelet, len(c.cubelets))
	for i, cl := range c.cubelets {
		cp := *cl
		clone.cubelets[i] = &cp
	}
	return clone
}

// Cubelets returns a snapshot of every cubelet's settled state.
func (c *Cube) Cubelets() []Cubelet {
	out := make([]Cubelet, len(c.cubelets))
	for i, cl := range c.cubelets {
		out[i] = *cl
	}
	return out
}

// IsSolved returns true if every face shows a single color.
func (c *Cube) IsSolved() bool {
	return c.FaceletString() == SolvedFacelets
}

// String returns an unfolded net of the cube using facelet tokens.
//
//	      U U U
//	      U U U
//	      U U U
//	L L L F F F R R R B B B
//	...
//	      D D D
func (c *Cube) String() string {
	faces := splitFaces(c.FaceletString())
	var b strings.Builder

	writeRow := func(face string, row int) {
		for col := 0; col < 3; col++ {
			b.WriteByte(face[row*3+col])
			b.WriteByte(' ')
		}
	}

	// U face (indented)
	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		writeRow(faces[faceU], row)
		b.WriteString("\n")
	}

	// L, F, R, B faces (side by side)
	for row := 0; row < 3; row++ {
		for _, f := range []int{faceL, faceF, faceR, faceB} {
			writeRow(faces[f], row)
		}
		b.WriteString("\n")
	}

	// D face (indented)
	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		writeRow(faces[faceD], row)
		b.WriteString("\n")
	}

	return b.String()
}
