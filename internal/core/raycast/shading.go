package raycast

import (
	"math"

	"chosenoffset.com/raycaster/internal/world/maploader"
)

// horizontalShade darkens faces hit across a horizontal grid line so the two
// wall orientations read differently.
const horizontalShade = 0.6

// ColumnHeight returns the on-screen height in pixels of a wall slice at the
// given perpendicular distance, never taller than the screen.
func ColumnHeight(distance float64) int {
	h := math.Min(ScreenH/distance, ScreenH)
	if h <= 0 || math.IsNaN(h) {
		return 0
	}
	return int(h)
}

// WallColor returns the RGBA color of a wall slice. Unknown materials are
// drawn neutral gray.
func WallColor(cell maploader.Cell, side Side) [4]float32 {
	var base [4]float32
	switch cell.Kind {
	case maploader.CellDoor:
		base = [4]float32{0.6, 0.5, 0.1, 1.0}
	case maploader.CellWall:
		switch cell.Material {
		case 1:
			base = [4]float32{0.6, 0.6, 0.6, 1.0}
		case 2:
			base = [4]float32{0.7, 0.4, 0.2, 1.0}
		case 3:
			base = [4]float32{0.4, 0.4, 0.6, 1.0}
		default:
			base = [4]float32{0.5, 0.5, 0.5, 1.0}
		}
	default:
		base = [4]float32{0.5, 0.5, 0.5, 1.0}
	}

	if side == Horizontal {
		return [4]float32{base[0] * horizontalShade, base[1] * horizontalShade, base[2] * horizontalShade, base[3]}
	}
	return base
}
