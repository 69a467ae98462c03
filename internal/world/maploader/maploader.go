// Package maploader holds the tile map: the wall grid, the static actor list
// and the player start, plus the text-grid loaders that build them.
package maploader

// Map dimensions in tiles. Every map is exactly this size.
const (
	Width  = 16
	Height = 16
)

// EnemyKind identifies the type of an enemy spawn.
type EnemyKind uint8

const (
	Guard EnemyKind = iota
	Ss
	Officer
)

// String returns the enemy kind name.
func (k EnemyKind) String() string {
	switch k {
	case Guard:
		return "guard"
	case Ss:
		return "ss"
	case Officer:
		return "officer"
	default:
		return "unknown"
	}
}

// Enemy is a static actor record. Nothing in the engine simulates enemies
// yet; they are kept so a later combat system can consume them.
type Enemy struct {
	Kind  EnemyKind
	X     float64 // tile units, tile center
	Y     float64
	Alive bool
}

// Pose is a position in tile units plus a facing angle in radians.
type Pose struct {
	X, Y  float64
	Angle float64
}

// DefaultStart is used when the spawn grid has no "P" marker.
var DefaultStart = Pose{X: 1.5, Y: 1.5, Angle: 0}

// Map is an immutable tile grid with its actors.
type Map struct {
	Name        string
	walls       [Height][Width]Cell
	Enemies     []Enemy
	PlayerStart Pose
}

// New creates a map from a wall grid. Enemies and start pose are taken as-is.
func New(name string, walls [Height][Width]Cell, enemies []Enemy, start Pose) *Map {
	return &Map{
		Name:        name,
		walls:       walls,
		Enemies:     enemies,
		PlayerStart: start,
	}
}

func inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < Width && y < Height
}

// CellAt returns the cell at the given tile. Anything outside the grid is
// reported as Wall(1) so that rays always terminate.
func (m *Map) CellAt(x, y int) Cell {
	if !inBounds(x, y) {
		return Wall(1)
	}
	return m.walls[y][x]
}

// IsSolid returns whether the tile blocks movement and rays.
// Out-of-bounds tiles are solid.
func (m *Map) IsSolid(x, y int) bool {
	return m.CellAt(x, y).IsSolid()
}

// IsDoor returns whether the tile is a door. Unlike IsSolid, out-of-bounds
// tiles are not doors.
func (m *Map) IsDoor(x, y int) bool {
	if !inBounds(x, y) {
		return false
	}
	return m.walls[y][x].Kind == CellDoor
}
