package gocube

import (
	"time"

	"github.com/westphae/quaternion"
)

// State is the animation state of a Cube.
type State int

const (
	Idle      State = iota // No turn in flight
	Animating              // A layer is turning
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Animating:
		return "animating"
	default:
		return "unknown"
	}
}

// Frame describes the turn in flight.
type Frame struct {
	Move     Move
	Angle    float64 // Current signed pivot angle in radians
	Progress float64 // Eased progress in [0,1]
}

// turn is a rotation in flight: the pivot group and its animation clock.
type turn struct {
	move    Move
	members map[*Cubelet]bool
	elapsed time.Duration
	angle   float64
}

// sequencer serializes moves so only one turn animates at a time.
type sequencer struct {
	queue  []string
	state  State
	active *turn

	onMove func(Move)
	onIdle func()
}

// SetMoveCallback sets a callback that fires after each turn completes.
func (c *Cube) SetMoveCallback(cb func(Move)) {
	c.onMove = cb
}

// SetIdleCallback sets a callback that fires when the queue has drained and
// the cube returns to Idle.
func (c *Cube) SetIdleCallback(cb func()) {
	c.onIdle = cb
}

// State returns the current animation state.
func (c *Cube) State() State {
	return c.state
}

// IsAnimating returns true while a turn is in flight.
func (c *Cube) IsAnimating() bool {
	return c.state == Animating
}

// Pending returns the names still waiting in the queue.
func (c *Cube) Pending() []string {
	out := make([]string, len(c.queue))
	copy(out, c.queue)
	return out
}

// Animation returns the turn in flight, if any.
func (c *Cube) Animation() (Frame, bool) {
	if c.active == nil {
		return Frame{}, false
	}
	return Frame{
		Move:     c.active.move,
		Angle:    c.active.angle,
		Progress: c.active.angle / c.active.move.Angle(),
	}, true
}

// PerformMove queues a move by name. Unknown names are ignored.
// If the cube is Idle the move starts immediately.
func (c *Cube) PerformMove(name string) {
	if !IsMove(name) {
		return
	}
	c.queue = append(c.queue, name)
	if c.state == Idle {
		c.processQueue()
	}
}

// processQueue starts the next queued move. It never starts a turn while
// another is in flight.
func (c *Cube) processQueue() {
	if c.state != Idle || len(c.queue) == 0 {
		return
	}
	name := c.queue[0]
	c.queue = c.queue[1:]

	m := moveTable[name]
	members := make(map[*Cubelet]bool)
	for _, cl := range c.layer(m.Axis, m.Layer) {
		members[cl] = true
	}
	c.active = &turn{move: m, members: members}
	c.state = Animating
}

// Step advances the turn in flight by dt. It is the per-frame driver: when
// the turn completes the layer is snapped, the move callback fires and the
// next queued move starts on the same call.
func (c *Cube) Step(dt time.Duration) {
	t := c.active
	if t == nil {
		return
	}

	t.elapsed += dt
	if t.elapsed < c.cfg.turnDuration {
		progress := float64(t.elapsed) / float64(c.cfg.turnDuration)
		t.angle = t.move.Angle() * c.cfg.easing(progress)
		return
	}

	c.finishTurn()
}

// finishTurn snaps the pivot to the exact quarter turn, returns the layer
// to the lattice and moves on to the next queued turn.
func (c *Cube) finishTurn() {
	t := c.active
	t.angle = t.move.Angle()

	members := make([]*Cubelet, 0, len(t.members))
	for _, cl := range c.cubelets {
		if t.members[cl] {
			members = append(members, cl)
		}
	}
	applyTurn(t.move, members)

	c.active = nil
	c.state = Idle

	if c.onMove != nil {
		c.onMove(t.move)
	}

	c.processQueue()

	if c.state == Idle && c.onIdle != nil {
		c.onIdle()
	}
}

// Settle completes every queued turn immediately.
func (c *Cube) Settle() {
	for c.state == Animating {
		c.Step(c.cfg.turnDuration)
	}
}

// TurnDuration returns the configured duration of a single turn.
func (c *Cube) TurnDuration() time.Duration {
	return c.cfg.turnDuration
}

// worldTransform returns the pivot rotation currently applied to cl, or
// false when cl is not part of a turning layer.
func (c *Cube) worldTransform(cl *Cubelet) (quaternion.Quaternion, bool) {
	if c.active == nil || !c.active.members[cl] {
		return quaternion.Quaternion{}, false
	}
	return pivot(c.active.move.Axis, c.active.angle), true
}
