// Package player implements the player's pose and per-tick movement with
// axis-separated collision against the tile map.
package player

import (
	"math"

	"chosenoffset.com/raycaster/internal/world/maploader"
)

// Default movement rates, applied once per tick.
const (
	MoveSpeed = 0.05 // tiles per tick
	RotSpeed  = 0.04 // radians per tick
)

// collisionMargin is how far ahead of the new position a move probes for
// walls, in tiles.
const collisionMargin = 0.25

// Command is one logical movement intent.
type Command uint8

const (
	Forward Command = 1 << iota
	Backward
	RotateLeft
	RotateRight
)

// Commands is the set of intents held during one tick. It is a value so each
// frame's input snapshot is passed explicitly into Update.
type Commands uint8

// With returns the set with c added.
func (cs Commands) With(c Command) Commands {
	return cs | Commands(c)
}

// Has reports whether c is held.
func (cs Commands) Has(c Command) bool {
	return cs&Commands(c) != 0
}

// Map is the part of the tile map movement needs.
type Map interface {
	IsSolid(x, y int) bool
}

// Player is the mutable pose of the viewer.
type Player struct {
	X, Y  float64 // tile coordinates
	Angle float64 // radians, 0 faces +x

	MoveSpeed float64
	RotSpeed  float64
}

// New creates a player at the given pose with the default speeds.
func New(start maploader.Pose) *Player {
	return &Player{
		X:         start.X,
		Y:         start.Y,
		Angle:     start.Angle,
		MoveSpeed: MoveSpeed,
		RotSpeed:  RotSpeed,
	}
}

// Pose returns the current pose.
func (p *Player) Pose() maploader.Pose {
	return maploader.Pose{X: p.X, Y: p.Y, Angle: p.Angle}
}

// Update advances the player by one tick.
func (p *Player) Update(cmds Commands, m Map) {
	dx := math.Cos(p.Angle)
	dy := math.Sin(p.Angle)

	if cmds.Has(Forward) {
		p.tryMove(dx*p.MoveSpeed, dy*p.MoveSpeed, m)
	}
	if cmds.Has(Backward) {
		p.tryMove(-dx*p.MoveSpeed, -dy*p.MoveSpeed, m)
	}
	// Rotation is never blocked.
	if cmds.Has(RotateLeft) {
		p.Angle -= p.RotSpeed
	}
	if cmds.Has(RotateRight) {
		p.Angle += p.RotSpeed
	}
}

// tryMove resolves x before y so the player slides along walls. The y probe
// uses the already-updated x.
func (p *Player) tryMove(dx, dy float64, m Map) {
	nx := p.X + dx
	ny := p.Y + dy

	if !m.IsSolid(int(nx+collisionMargin*sign(dx)), int(p.Y)) {
		p.X = nx
	}
	if !m.IsSolid(int(p.X), int(ny+collisionMargin*sign(dy))) {
		p.Y = ny
	}
}

// sign returns -1, 0 or 1. Zero displacement gets no look-ahead.
func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
