package gocube

import "errors"

// Sentinel errors for the gocube package.
var (
	// Move errors
	ErrUnknownMove = errors.New("gocube: unknown move")

	// Sampling errors
	ErrUnreadableState = errors.New("gocube: cube state could not be read")
)
