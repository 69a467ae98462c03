package maploader

import (
	"strconv"
	"strings"
)

// gridRows splits grid text into token rows. Comment lines (leading '#') and
// blank lines are dropped and do not count as rows. At most Height rows are
// returned and each row is cut to Width tokens.
func gridRows(content string) [][]string {
	var rows [][]string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.HasPrefix(line, "#") || strings.TrimSpace(line) == "" {
			continue
		}
		if len(rows) >= Height {
			break
		}
		tokens := strings.Fields(line)
		if len(tokens) > Width {
			tokens = tokens[:Width]
		}
		rows = append(rows, tokens)
	}
	return rows
}

// parseWallToken maps one wall-grid token to a cell. Tokens that are not a
// valid material byte fall back to Wall(1).
func parseWallToken(token string) Cell {
	switch token {
	case "0":
		return Empty()
	case "4":
		return Door()
	}
	material, err := strconv.ParseUint(token, 10, 8)
	if err != nil {
		return Wall(1)
	}
	return Wall(uint8(material))
}

// ParseWalls builds the wall grid from text. Cells not covered by the text
// stay Empty.
func ParseWalls(content string) [Height][Width]Cell {
	var grid [Height][Width]Cell
	for row, tokens := range gridRows(content) {
		for col, token := range tokens {
			grid[row][col] = parseWallToken(token)
		}
	}
	return grid
}

// ParseEnemies reads the actor grid. "1", "2" and "3" spawn a guard, an SS
// and an officer at the tile center; every other token is ignored.
func ParseEnemies(content string) []Enemy {
	var enemies []Enemy
	for row, tokens := range gridRows(content) {
		for col, token := range tokens {
			var kind EnemyKind
			switch token {
			case "1":
				kind = Guard
			case "2":
				kind = Ss
			case "3":
				kind = Officer
			default:
				continue
			}
			enemies = append(enemies, Enemy{
				Kind:  kind,
				X:     float64(col) + 0.5,
				Y:     float64(row) + 0.5,
				Alive: true,
			})
		}
	}
	return enemies
}

// ParseSpawn returns the pose of the first "P" in the spawn grid, or
// DefaultStart when there is none.
func ParseSpawn(content string) Pose {
	for row, tokens := range gridRows(content) {
		for col, token := range tokens {
			if token == "P" {
				return Pose{X: float64(col) + 0.5, Y: float64(row) + 0.5, Angle: 0}
			}
		}
	}
	return DefaultStart
}

// Parse builds a complete map from the three grid texts. It never fails:
// malformed input degrades to safe defaults.
func Parse(name, walls, enemies, spawn string) *Map {
	return New(name, ParseWalls(walls), ParseEnemies(enemies), ParseSpawn(spawn))
}
