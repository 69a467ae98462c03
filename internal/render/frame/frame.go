// Package frame assembles the per-frame triangle list: the first-person
// column view followed by the minimap overlay.
package frame

import (
	"math"

	"chosenoffset.com/raycaster/internal/core/raycast"
	"chosenoffset.com/raycaster/internal/render"
	"chosenoffset.com/raycaster/internal/world/maploader"
)

// VerticesPerQuad is the number of vertices emitted for each quad: two
// triangles, no index buffer.
const VerticesPerQuad = 6

var (
	ceilingColor = [4]float32{0.15, 0.15, 0.25, 1.0}
	floorColor   = [4]float32{0.25, 0.20, 0.15, 1.0}
)

// Minimap layout in NDC. The map is drawn from the bottom-left corner with
// row 0 at the bottom.
const (
	minimapScale   = 0.012
	minimapOriginX = -1.0
	minimapOriginY = -1.0
)

var (
	markerColor  = [4]float32{1.0, 0.0, 0.0, 1.0}
	headingColor = [4]float32{1.0, 1.0, 0.0, 1.0}
)

// Build returns the complete frame: view quads first, minimap on top.
func Build(pose maploader.Pose, m *maploader.Map, hits []raycast.RayHit) []render.Vertex {
	verts := make([]render.Vertex, 0, QuadCount(len(hits))*VerticesPerQuad)
	verts = BuildView(verts, hits)
	verts = BuildMinimap(verts, pose, m)
	return verts
}

// QuadCount returns how many quads Build emits for the given number of
// columns.
func QuadCount(columns int) int {
	return 2 + columns + maploader.Width*maploader.Height + 2
}

// BuildView appends the ceiling, the floor and one wall column per hit.
// Hit i covers screen columns [i, i+1).
func BuildView(verts []render.Vertex, hits []raycast.RayHit) []render.Vertex {
	const sw = float32(raycast.ScreenW)
	const sh = float32(raycast.ScreenH)

	verts = appendQuad(verts, -1, 0, 1, 1, ceilingColor)
	verts = appendQuad(verts, -1, -1, 1, 0, floorColor)

	for i, hit := range hits {
		colH := float32(raycast.ColumnHeight(hit.Distance))
		top := sh/2 - colH/2
		bottom := sh/2 + colH/2

		x0 := ndcX(float32(i), sw)
		x1 := ndcX(float32(i)+1, sw)
		y0 := ndcY(min(bottom, sh), sh)
		y1 := ndcY(max(top, 0), sh)

		verts = appendQuad(verts, x0, y0, x1, y1, raycast.WallColor(hit.Cell, hit.Side))
	}
	return verts
}

// BuildMinimap appends one quad per map cell, the player marker and the
// heading line.
func BuildMinimap(verts []render.Vertex, pose maploader.Pose, m *maploader.Map) []render.Vertex {
	const scale = float32(minimapScale)
	const ox = float32(minimapOriginX)
	const oy = float32(minimapOriginY)

	for row := 0; row < maploader.Height; row++ {
		for col := 0; col < maploader.Width; col++ {
			x0 := ox + float32(col)*scale
			y0 := oy + float32(row)*scale
			x1 := x0 + scale*0.95
			y1 := y0 + scale*0.95
			verts = appendQuad(verts, x0, y0, x1, y1, MinimapColor(m.CellAt(col, row)))
		}
	}

	px := ox + float32(pose.X)*scale
	py := oy + float32(pose.Y)*scale
	ps := scale * 0.4
	verts = appendQuad(verts, px-ps, py-ps, px+ps, py+ps, markerColor)

	dirLen := scale * 1.5
	ex := px + float32(math.Cos(pose.Angle))*dirLen
	ey := py + float32(math.Sin(pose.Angle))*dirLen
	lw := scale * 0.12
	verts = appendQuad(verts, px-lw, py-lw, ex+lw, ey+lw, headingColor)

	return verts
}

// MinimapColor returns the overlay color of a cell. The overlay palette is
// translucent so the view shows through.
func MinimapColor(cell maploader.Cell) [4]float32 {
	switch cell.Kind {
	case maploader.CellEmpty:
		return [4]float32{0.1, 0.1, 0.1, 0.7}
	case maploader.CellDoor:
		return [4]float32{0.8, 0.7, 0.1, 0.9}
	case maploader.CellWall:
		switch cell.Material {
		case 1:
			return [4]float32{0.7, 0.7, 0.7, 0.9}
		case 2:
			return [4]float32{0.7, 0.4, 0.2, 0.9}
		case 3:
			return [4]float32{0.4, 0.4, 0.7, 0.9}
		}
	}
	return [4]float32{0.5, 0.5, 0.5, 0.9}
}

func ndcX(px, sw float32) float32 {
	return (px/sw)*2 - 1
}

func ndcY(py, sh float32) float32 {
	return 1 - (py/sh)*2
}

// appendQuad appends the rectangle spanning (x0, y0)-(x1, y1) in NDC, with
// y1 the top edge, as two triangles.
func appendQuad(verts []render.Vertex, x0, y0, x1, y1 float32, color [4]float32) []render.Vertex {
	tl := render.Vertex{Position: [2]float32{x0, y1}, Color: color}
	tr := render.Vertex{Position: [2]float32{x1, y1}, Color: color}
	bl := render.Vertex{Position: [2]float32{x0, y0}, Color: color}
	br := render.Vertex{Position: [2]float32{x1, y0}, Color: color}
	return append(verts, tl, bl, tr, tr, bl, br)
}
