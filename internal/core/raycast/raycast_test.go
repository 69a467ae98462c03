package raycast

import (
	"math"
	"testing"

	"chosenoffset.com/raycaster/internal/world/maploader"
)

const epsilon = 1e-9

type grid [maploader.Height][maploader.Width]maploader.Cell

func borderGrid() grid {
	var g grid
	for y := 0; y < maploader.Height; y++ {
		for x := 0; x < maploader.Width; x++ {
			if x == 0 || y == 0 || x == maploader.Width-1 || y == maploader.Height-1 {
				g[y][x] = maploader.Wall(1)
			}
		}
	}
	return g
}

func (g grid) toMap() *maploader.Map {
	return maploader.New("test", g, nil, maploader.DefaultStart)
}

func TestCorridorDistanceIndependentOfY(t *testing.T) {
	g := borderGrid()
	const wallCol = 10
	for y := 1; y < maploader.Height-1; y++ {
		g[y][wallCol] = maploader.Wall(2)
	}
	m := g.toMap()

	px := 2.3
	for _, py := range []float64{5.1, 5.5, 5.9, 6.0} {
		hit := CastRay(px, py, 0, m)
		if math.Abs(hit.Distance-(wallCol-px)) > epsilon {
			t.Errorf("py=%v: expected distance %v, got %v", py, wallCol-px, hit.Distance)
		}
		if hit.Side != Vertical {
			t.Errorf("py=%v: expected vertical hit, got %v", py, hit.Side)
		}
		if hit.Cell != maploader.Wall(2) {
			t.Errorf("py=%v: expected Wall(2), got %v", py, hit.Cell)
		}
		wantWallX := py - math.Floor(py)
		if math.Abs(hit.WallX-wantWallX) > epsilon {
			t.Errorf("py=%v: expected wall x %v, got %v", py, wantWallX, hit.WallX)
		}
	}
}

func TestFlatWallHasNoFisheye(t *testing.T) {
	g := borderGrid()
	const wallCol = 10
	for y := 1; y < maploader.Height-1; y++ {
		if y <= 8 {
			g[y][wallCol] = maploader.Wall(2)
		} else {
			g[y][wallCol] = maploader.Wall(3)
		}
	}
	m := g.toMap()

	px, py := 5.5, 8.5
	hits := Cast(px, py, 0, m)
	if len(hits) != NumRays {
		t.Fatalf("Expected %d hits, got %d", NumRays, len(hits))
	}

	want := wallCol - px
	for i, hit := range hits {
		if hit.Side != Vertical {
			t.Errorf("Column %d: expected vertical hit, got %v", i, hit.Side)
		}
		if math.Abs(hit.Distance-want) > epsilon {
			t.Errorf("Column %d: expected distance %v, got %v", i, want, hit.Distance)
		}
	}

	// Rays fan from the left (negative y) to the right (positive y).
	if hits[0].Cell != maploader.Wall(2) {
		t.Errorf("Expected leftmost ray to hit Wall(2), got %v", hits[0].Cell)
	}
	if hits[NumRays-1].Cell != maploader.Wall(3) {
		t.Errorf("Expected rightmost ray to hit Wall(3), got %v", hits[NumRays-1].Cell)
	}
}

func TestCorridorEndWallIsFlat(t *testing.T) {
	g := borderGrid()
	for x := 1; x < maploader.Width-1; x++ {
		g[7][x] = maploader.Wall(2)
		g[9][x] = maploader.Wall(2)
	}
	const endCol = 12
	g[8][endCol] = maploader.Wall(3)
	m := g.toMap()

	px := 2.5
	endHits := 0
	for i, hit := range Cast(px, 8.5, 0, m) {
		switch hit.Cell {
		case maploader.Wall(3):
			endHits++
			if hit.Side != Vertical {
				t.Errorf("Column %d: expected vertical hit on the end wall", i)
			}
			if math.Abs(hit.Distance-(endCol-px)) > epsilon {
				t.Errorf("Column %d: expected end wall distance %v, got %v", i, endCol-px, hit.Distance)
			}
		case maploader.Wall(2):
			if hit.Side != Horizontal {
				t.Errorf("Column %d: expected horizontal hit on the corridor side", i)
			}
		default:
			t.Errorf("Column %d: unexpected cell %v", i, hit.Cell)
		}
	}
	if endHits == 0 {
		t.Error("Expected some rays to reach the end wall")
	}
}

func TestBorderScenario(t *testing.T) {
	m := borderGrid().toMap()
	px, py := 2.5, 2.5

	hits := Cast(px, py, 0, m)
	center := hits[NumRays/2]
	if center.Side != Vertical {
		t.Errorf("Expected center ray to strike the east border vertically, got %v", center.Side)
	}
	if math.Abs(center.Distance-12.5) > epsilon {
		t.Errorf("Expected center distance 12.5, got %v", center.Distance)
	}
	if center.Cell != maploader.Wall(1) {
		t.Errorf("Expected Wall(1), got %v", center.Cell)
	}

	down := CastRay(px, py, math.Pi/2, m)
	if down.Side != Horizontal {
		t.Errorf("Expected downward ray to strike the south border horizontally, got %v", down.Side)
	}
	if math.Abs(down.Distance-12.5) > 1e-6 {
		t.Errorf("Expected downward distance 12.5, got %v", down.Distance)
	}
	if math.Abs(down.WallX-0.5) > 1e-6 {
		t.Errorf("Expected downward wall x 0.5, got %v", down.WallX)
	}
}

func TestOutOfBoundsTerminatesRays(t *testing.T) {
	m := grid{}.toMap()

	east := CastRay(3.5, 4.5, 0, m)
	if math.Abs(east.Distance-12.5) > epsilon || east.Cell != maploader.Wall(1) {
		t.Errorf("Expected to stop 12.5 away at the grid edge, got %v %v", east.Distance, east.Cell)
	}

	west := CastRay(3.5, 4.5, math.Pi, m)
	if math.Abs(west.Distance-3.5) > 1e-6 || west.Cell != maploader.Wall(1) {
		t.Errorf("Expected to stop 3.5 away at the grid edge, got %v %v", west.Distance, west.Cell)
	}
	if west.Side != Vertical {
		t.Errorf("Expected vertical side, got %v", west.Side)
	}
}

func TestDoorStopsRays(t *testing.T) {
	g := borderGrid()
	g[4][6] = maploader.Door()
	m := g.toMap()

	hit := CastRay(2.5, 4.5, 0, m)
	if hit.Cell != maploader.Door() {
		t.Errorf("Expected door hit, got %v", hit.Cell)
	}
	if math.Abs(hit.Distance-3.5) > epsilon {
		t.Errorf("Expected distance 3.5, got %v", hit.Distance)
	}
}

func TestMinimumDistance(t *testing.T) {
	g := borderGrid()
	g[5][10] = maploader.Wall(2)
	m := g.toMap()

	hit := CastRay(10-1e-7, 5.5, 0, m)
	if hit.Distance != MinDistance {
		t.Errorf("Expected distance clamped to %v, got %v", MinDistance, hit.Distance)
	}
}

func TestWallXInRange(t *testing.T) {
	m := borderGrid().toMap()
	for _, angle := range []float64{0.3, 1.2, 2.5, 3.9, 5.1} {
		for _, hit := range Cast(7.3, 6.8, angle, m) {
			if hit.WallX < 0 || hit.WallX >= 1 {
				t.Fatalf("angle %v: wall x %v out of [0, 1)", angle, hit.WallX)
			}
			if hit.Distance < MinDistance {
				t.Fatalf("angle %v: distance %v below minimum", angle, hit.Distance)
			}
		}
	}
}

func TestColumnHeight(t *testing.T) {
	if got := ColumnHeight(MinDistance); got != ScreenH {
		t.Errorf("Expected ColumnHeight(%v) = %d, got %d", MinDistance, ScreenH, got)
	}

	cases := map[float64]int{1: 480, 2: 240, 3: 160, 7: 68, 0.5: 480}
	for d, want := range cases {
		if got := ColumnHeight(d); got != want {
			t.Errorf("ColumnHeight(%v): expected %d, got %d", d, want, got)
		}
	}

	prev := ColumnHeight(MinDistance)
	for d := MinDistance; d < 40; d += 0.013 {
		h := ColumnHeight(d)
		if h > ScreenH {
			t.Fatalf("ColumnHeight(%v) = %d exceeds screen height", d, h)
		}
		if h > prev {
			t.Fatalf("ColumnHeight not monotonic at %v: %d > %d", d, h, prev)
		}
		prev = h
	}
}

func TestWallColor(t *testing.T) {
	near := func(a, b [4]float32) bool {
		for i := range a {
			if math.Abs(float64(a[i]-b[i])) > 1e-6 {
				return false
			}
		}
		return true
	}

	cases := []struct {
		cell maploader.Cell
		want [4]float32
	}{
		{maploader.Wall(1), [4]float32{0.6, 0.6, 0.6, 1}},
		{maploader.Wall(2), [4]float32{0.7, 0.4, 0.2, 1}},
		{maploader.Wall(3), [4]float32{0.4, 0.4, 0.6, 1}},
		{maploader.Door(), [4]float32{0.6, 0.5, 0.1, 1}},
		{maploader.Wall(9), [4]float32{0.5, 0.5, 0.5, 1}},
		{maploader.Wall(0), [4]float32{0.5, 0.5, 0.5, 1}},
	}
	for _, c := range cases {
		if got := WallColor(c.cell, Vertical); !near(got, c.want) {
			t.Errorf("%v vertical: expected %v, got %v", c.cell, c.want, got)
		}
		shaded := [4]float32{c.want[0] * 0.6, c.want[1] * 0.6, c.want[2] * 0.6, 1}
		if got := WallColor(c.cell, Horizontal); !near(got, shaded) {
			t.Errorf("%v horizontal: expected %v, got %v", c.cell, shaded, got)
		}
	}
}
