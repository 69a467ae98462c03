// Package raycast converts a player pose and a tile map into one wall hit per
// screen column using grid traversal (DDA).
package raycast

import (
	"math"

	"chosenoffset.com/raycaster/internal/world/maploader"
)

// Screen and camera constants. The ray count and projection depend on them,
// so they are fixed regardless of the window size.
const (
	ScreenW = 640
	ScreenH = 480
	NumRays = ScreenW
	FOV     = math.Pi / 3
	HalfFOV = FOV / 2
)

// MinDistance keeps column heights finite for rays that start on a wall face.
const MinDistance = 0.001

// Side is the grid axis a ray crossed when it hit.
type Side uint8

const (
	// Vertical means the ray crossed a vertical grid line (x changed).
	Vertical Side = iota
	// Horizontal means the ray crossed a horizontal grid line (y changed).
	Horizontal
)

// String returns the side name.
func (s Side) String() string {
	switch s {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	default:
		return "unknown"
	}
}

// RayHit is the first solid cell along one ray.
type RayHit struct {
	Distance float64 // perpendicular to the camera plane, >= MinDistance
	Cell     maploader.Cell
	Side     Side
	WallX    float64 // offset along the hit face in [0, 1)
}

// Map is the part of the tile map ray marching needs. CellAt must report a
// non-empty cell for every coordinate outside the grid.
type Map interface {
	CellAt(x, y int) maploader.Cell
}

// Cast fans NumRays rays across the field of view, left to right, centered
// on angle.
func Cast(px, py, angle float64, m Map) []RayHit {
	hits := make([]RayHit, NumRays)
	for i := range hits {
		offset := -HalfFOV + (float64(i)/NumRays)*FOV
		hits[i] = castRay(px, py, angle+offset, offset, m)
	}
	return hits
}

// CastRay marches a single ray from (px, py) along angle until it enters a
// non-empty cell. The ray is treated as the view center, so its distance is
// the plain ray length.
func CastRay(px, py, angle float64, m Map) RayHit {
	return castRay(px, py, angle, 0, m)
}

// castRay marches a ray that is offset radians off the view direction. The
// unit direction is stretched by 1/cos(offset) so that one unit of ray
// parameter is one unit along the view axis; the side-distance accumulators
// then measure perpendicular distance directly.
func castRay(px, py, angle, offset float64, m Map) RayHit {
	scale := 1 / math.Cos(offset)
	dirX := math.Cos(angle) * scale
	dirY := math.Sin(angle) * scale

	mapX := int(px)
	mapY := int(py)

	deltaX := stepDistance(dirX)
	deltaY := stepDistance(dirY)

	var stepX, stepY int
	var sideX, sideY float64
	if dirX < 0 {
		stepX = -1
		sideX = (px - float64(mapX)) * deltaX
	} else {
		stepX = 1
		sideX = (float64(mapX) + 1 - px) * deltaX
	}
	if dirY < 0 {
		stepY = -1
		sideY = (py - float64(mapY)) * deltaY
	} else {
		stepY = 1
		sideY = (float64(mapY) + 1 - py) * deltaY
	}

	// Terminates because everything outside the grid is solid.
	var side Side
	var cell maploader.Cell
	for {
		if sideX < sideY {
			sideX += deltaX
			mapX += stepX
			side = Vertical
		} else {
			sideY += deltaY
			mapY += stepY
			side = Horizontal
		}

		cell = m.CellAt(mapX, mapY)
		if cell.Kind != maploader.CellEmpty {
			break
		}
	}

	// Back off the final step to get the distance to the face itself.
	var perp, wallX float64
	switch side {
	case Vertical:
		perp = sideX - deltaX
		wallX = py + perp*dirY
	case Horizontal:
		perp = sideY - deltaY
		wallX = px + perp*dirX
	}
	wallX -= math.Floor(wallX)
	if wallX >= 1 {
		wallX = 0
	}

	return RayHit{
		Distance: math.Max(perp, MinDistance),
		Cell:     cell,
		Side:     side,
		WallX:    wallX,
	}
}

// stepDistance is the ray length needed to cross one tile along an axis.
// A zero direction component never crosses, so the distance is infinite.
func stepDistance(dir float64) float64 {
	if dir == 0 {
		return math.Inf(1)
	}
	return math.Abs(1 / dir)
}
