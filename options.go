package gocube

import "time"

// DefaultTurnDuration is how long a single quarter turn animates.
const DefaultTurnDuration = 400 * time.Millisecond

// Option configures Cube behavior.
type Option func(*config)

type config struct {
	turnDuration time.Duration
	easing       func(float64) float64
}

func defaultConfig() *config {
	return &config{
		turnDuration: DefaultTurnDuration,
		easing:       EaseOutQuad,
	}
}

// WithTurnDuration sets how long each quarter turn takes to animate.
// A zero duration completes a turn on the next Step.
func WithTurnDuration(d time.Duration) Option {
	return func(c *config) {
		if d < 0 {
			d = 0
		}
		c.turnDuration = d
	}
}

// WithEasing sets the interpolation curve applied to turn progress.
// The function maps [0,1] onto [0,1]; nil keeps the default.
func WithEasing(fn func(float64) float64) Option {
	return func(c *config) {
		if fn != nil {
			c.easing = fn
		}
	}
}

// EaseOutQuad decelerates towards the end of the turn.
func EaseOutQuad(t float64) float64 {
	return t * (2 - t)
}

// Linear is a constant-speed easing.
func Linear(t float64) float64 {
	return t
}
