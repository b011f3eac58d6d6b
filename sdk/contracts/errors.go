package contracts

import "errors"

var (
	// ErrUnsupportedCapability is returned when no synthesis backend can be created in the host environment.
	ErrUnsupportedCapability = errors.New("synthesis backend unavailable")
	// ErrInvalidGeometry is returned when the canvas or composition length makes the mapping undefined.
	ErrInvalidGeometry = errors.New("invalid canvas geometry")
	// ErrInvalidPoint is returned when a captured point violates the canvas or brush invariants.
	ErrInvalidPoint = errors.New("invalid drawn point")
)
