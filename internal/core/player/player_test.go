package player

import (
	"math"
	"testing"

	"chosenoffset.com/raycaster/internal/world/maploader"
)

const epsilon = 1e-9

// boxMap is a 16x16 room with a solid border.
func boxMap(extra ...[2]int) *maploader.Map {
	var grid [maploader.Height][maploader.Width]maploader.Cell
	for y := 0; y < maploader.Height; y++ {
		for x := 0; x < maploader.Width; x++ {
			if x == 0 || y == 0 || x == maploader.Width-1 || y == maploader.Height-1 {
				grid[y][x] = maploader.Wall(1)
			}
		}
	}
	for _, c := range extra {
		grid[c[1]][c[0]] = maploader.Wall(2)
	}
	return maploader.New("box", grid, nil, maploader.DefaultStart)
}

func TestCommands(t *testing.T) {
	var cmds Commands
	if cmds.Has(Forward) {
		t.Error("Expected empty set to hold nothing")
	}
	cmds = cmds.With(Forward).With(RotateRight)
	if !cmds.Has(Forward) || !cmds.Has(RotateRight) {
		t.Error("Expected Forward and RotateRight to be held")
	}
	if cmds.Has(Backward) || cmds.Has(RotateLeft) {
		t.Error("Expected Backward and RotateLeft not to be held")
	}
}

func TestNewUsesStartPose(t *testing.T) {
	p := New(maploader.Pose{X: 3.5, Y: 4.5, Angle: 1})
	if p.X != 3.5 || p.Y != 4.5 || p.Angle != 1 {
		t.Errorf("Expected pose (3.5, 4.5, 1), got (%v, %v, %v)", p.X, p.Y, p.Angle)
	}
	if p.MoveSpeed != MoveSpeed || p.RotSpeed != RotSpeed {
		t.Errorf("Expected default speeds, got %v %v", p.MoveSpeed, p.RotSpeed)
	}
	if p.Pose() != (maploader.Pose{X: 3.5, Y: 4.5, Angle: 1}) {
		t.Errorf("Unexpected pose %+v", p.Pose())
	}
}

func TestForwardAndBackward(t *testing.T) {
	m := boxMap()
	p := New(maploader.Pose{X: 5.5, Y: 5.5, Angle: 0})

	p.Update(Commands(0).With(Forward), m)
	if math.Abs(p.X-5.55) > epsilon || p.Y != 5.5 {
		t.Errorf("Expected (5.55, 5.5) after forward, got (%v, %v)", p.X, p.Y)
	}

	p.Update(Commands(0).With(Backward), m)
	if math.Abs(p.X-5.5) > epsilon || p.Y != 5.5 {
		t.Errorf("Expected (5.5, 5.5) after backward, got (%v, %v)", p.X, p.Y)
	}
}

func TestRotationIsNeverBlocked(t *testing.T) {
	m := boxMap()
	// Pressed into a corner.
	p := New(maploader.Pose{X: 1.1, Y: 1.1, Angle: math.Pi})

	p.Update(Commands(0).With(RotateLeft), m)
	if math.Abs(p.Angle-(math.Pi-RotSpeed)) > epsilon {
		t.Errorf("Expected angle %v, got %v", math.Pi-RotSpeed, p.Angle)
	}
	p.Update(Commands(0).With(RotateRight).With(RotateRight), m)
	if math.Abs(p.Angle-math.Pi) > epsilon {
		t.Errorf("Expected angle %v, got %v", math.Pi, p.Angle)
	}
}

func TestBlockedByWallAhead(t *testing.T) {
	m := boxMap()
	// Wall column 15 starts at x=15; margin probes 0.25 ahead.
	p := New(maploader.Pose{X: 14.74, Y: 5.5, Angle: 0})

	p.Update(Commands(0).With(Forward), m)
	if p.X != 14.74 {
		t.Errorf("Expected x to stay at 14.74, got %v", p.X)
	}
}

func TestWallSliding(t *testing.T) {
	m := boxMap()
	// Facing diagonally into the east wall: x is blocked, y still moves.
	angle := math.Pi / 4
	p := New(maploader.Pose{X: 14.74, Y: 5.5, Angle: angle})

	p.Update(Commands(0).With(Forward), m)
	if p.X != 14.74 {
		t.Errorf("Expected x to stay at 14.74, got %v", p.X)
	}
	wantY := 5.5 + math.Sin(angle)*MoveSpeed
	if math.Abs(p.Y-wantY) > epsilon {
		t.Errorf("Expected y %v, got %v", wantY, p.Y)
	}

	// Facing diagonally into the south wall: y is blocked, x still moves.
	p = New(maploader.Pose{X: 5.5, Y: 14.74, Angle: angle})
	p.Update(Commands(0).With(Forward), m)
	if p.Y != 14.74 {
		t.Errorf("Expected y to stay at 14.74, got %v", p.Y)
	}
	wantX := 5.5 + math.Cos(angle)*MoveSpeed
	if math.Abs(p.X-wantX) > epsilon {
		t.Errorf("Expected x %v, got %v", wantX, p.X)
	}
}

func TestYProbeUsesUpdatedX(t *testing.T) {
	// Pillar at (6, 6). The x move carries the player from tile 5 into
	// tile 6, so the y probe checks (6, 6) and is blocked. Probing with the
	// old x would have checked the free tile (5, 6).
	m := boxMap([2]int{6, 6})
	angle := math.Pi / 4
	step := math.Cos(angle) * MoveSpeed

	p := New(maploader.Pose{X: 5.98, Y: 5.76, Angle: angle})
	p.Update(Commands(0).With(Forward), m)
	if math.Abs(p.X-(5.98+step)) > epsilon {
		t.Errorf("Expected x %v, got %v", 5.98+step, p.X)
	}
	if p.Y != 5.76 {
		t.Errorf("Expected y blocked by the pillar at 5.76, got %v", p.Y)
	}
}

func TestMoveIntoOutOfBounds(t *testing.T) {
	// Open grid: the only barrier is the implicit solid outside the map.
	m := maploader.New("open", [maploader.Height][maploader.Width]maploader.Cell{}, nil, maploader.DefaultStart)
	p := New(maploader.Pose{X: 15.8, Y: 8.5, Angle: 0})

	p.Update(Commands(0).With(Forward), m)
	if p.X != 15.8 {
		t.Errorf("Expected out-of-bounds to block movement, x=%v", p.X)
	}
}
