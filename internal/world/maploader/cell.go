package maploader

import "fmt"

// CellKind identifies which variant a Cell holds.
type CellKind uint8

const (
	CellEmpty CellKind = iota
	CellWall
	CellDoor
)

// Cell is the occupancy and render material of one tile.
// Material is only meaningful for CellWall.
type Cell struct {
	Kind     CellKind
	Material uint8
}

// Empty returns an open cell.
func Empty() Cell {
	return Cell{Kind: CellEmpty}
}

// Wall returns a wall cell with the given material id.
func Wall(material uint8) Cell {
	return Cell{Kind: CellWall, Material: material}
}

// Door returns a door cell. Doors block movement and rays like walls.
func Door() Cell {
	return Cell{Kind: CellDoor}
}

// IsSolid reports whether the cell blocks movement and rays.
func (c Cell) IsSolid() bool {
	switch c.Kind {
	case CellWall, CellDoor:
		return true
	case CellEmpty:
		return false
	default:
		return false
	}
}

// String returns a debug representation of the cell.
func (c Cell) String() string {
	switch c.Kind {
	case CellEmpty:
		return "Empty"
	case CellWall:
		return fmt.Sprintf("Wall(%d)", c.Material)
	case CellDoor:
		return "Door"
	default:
		return "Unknown"
	}
}
