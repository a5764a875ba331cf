package main

import (
	"math"

	"github.com/hubastard/ember/engine/core"
	"github.com/hubastard/ember/engine/geom"
)

// Moving on both axes at once scales each axis so total speed stays equal
// to the configured speed.
const diagonalFactor = 1 / math.Sqrt2

type ship struct {
	bounds geom.Rect
	speed  float64 // pixels per second
}

// moveAxes reads the held movement keys into per-axis directions of
// -1, 0 or +1. Opposing keys cancel.
func moveAxes(in *core.Input) (dx, dy float64) {
	if in.IsKeyHeld(core.KeyLeft) || in.IsKeyHeld(core.KeyA) {
		dx--
	}
	if in.IsKeyHeld(core.KeyRight) || in.IsKeyHeld(core.KeyD) {
		dx++
	}
	if in.IsKeyHeld(core.KeyUp) || in.IsKeyHeld(core.KeyW) {
		dy--
	}
	if in.IsKeyHeld(core.KeyDown) || in.IsKeyHeld(core.KeyS) {
		dy++
	}
	return dx, dy
}

// advance moves the ship speed·dt along the given axes and clamps it into
// world. A world smaller than the ship is a configuration error caught at
// view construction, so the no-fit result is ignored here.
func (s *ship) advance(dx, dy, dt float64, world geom.Rect) {
	if dx == 0 && dy == 0 {
		return
	}
	step := s.speed * dt
	if dx != 0 && dy != 0 {
		step *= diagonalFactor
	}

	moved := s.bounds
	moved.X += dx * step
	moved.Y += dy * step
	if clamped, ok := moved.MoveInside(world); ok {
		s.bounds = clamped
	}
}
