// Package raster is a small software rasterizer for render.Vertex triangle
// lists. It backs the backends that have no GPU: the terminal presenter and
// PNG snapshots.
package raster

import (
	"image"
	"image/color"

	"chosenoffset.com/raycaster/internal/render"
)

// RGB is a straight color with components in [0, 1].
type RGB struct {
	R, G, B float32
}

// Raster is a framebuffer of RGB pixels that implements render.Image.
type Raster struct {
	width, height int
	pixels        []RGB
}

// New creates a black raster of the given size in pixels.
func New(width, height int) *Raster {
	r := &Raster{}
	r.Resize(width, height)
	return r
}

// Resize changes the raster size, discarding its contents.
func (r *Raster) Resize(width, height int) {
	r.width = max(width, 0)
	r.height = max(height, 0)
	r.pixels = make([]RGB, r.width*r.height)
}

// Size returns the raster size in pixels.
func (r *Raster) Size() (width, height int) {
	return r.width, r.height
}

// Fill sets every pixel to clr.
func (r *Raster) Fill(clr color.Color) {
	cr, cg, cb, _ := clr.RGBA()
	p := RGB{float32(cr) / 0xffff, float32(cg) / 0xffff, float32(cb) / 0xffff}
	for i := range r.pixels {
		r.pixels[i] = p
	}
}

// Pixel returns the color of a pixel. Outside the raster it is black.
func (r *Raster) Pixel(x, y int) RGB {
	if x < 0 || y < 0 || x >= r.width || y >= r.height {
		return RGB{}
	}
	return r.pixels[y*r.width+x]
}

// At returns the color of a pixel as 8-bit RGB.
func (r *Raster) At(x, y int) (red, green, blue uint8) {
	p := r.Pixel(x, y)
	return To8(p.R), To8(p.G), To8(p.B)
}

// RGBA copies the raster into an opaque image.
func (r *Raster) RGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, r.width, r.height))
	for y := 0; y < r.height; y++ {
		for x := 0; x < r.width; x++ {
			red, green, blue := r.At(x, y)
			img.SetRGBA(x, y, color.RGBA{red, green, blue, 255})
		}
	}
	return img
}

// DrawTriangles rasterizes the triangle list by sampling pixel centers and
// alpha-blends each covered pixel. A pixel on an edge shared by two
// triangles is drawn by exactly one of them.
func (r *Raster) DrawTriangles(vertices []render.Vertex) {
	for i := 0; i+2 < len(vertices); i += 3 {
		r.fillTriangle(vertices[i], vertices[i+1], vertices[i+2])
	}
}

type point struct {
	x, y float32
}

func (r *Raster) fillTriangle(v0, v1, v2 render.Vertex) {
	p0 := r.toPixel(v0)
	p1 := r.toPixel(v1)
	p2 := r.toPixel(v2)

	area := edge(p0, p1, p2)
	if area == 0 {
		return
	}
	if area < 0 {
		p1, p2 = p2, p1
	}

	minX := max(int(min(p0.x, p1.x, p2.x)), 0)
	maxX := min(int(max(p0.x, p1.x, p2.x))+1, r.width)
	minY := max(int(min(p0.y, p1.y, p2.y)), 0)
	maxY := min(int(max(p0.y, p1.y, p2.y))+1, r.height)

	// Color is per triangle; the frame builder never varies it per vertex.
	col := v0.Color
	for y := minY; y < maxY; y++ {
		for x := minX; x < maxX; x++ {
			p := point{float32(x) + 0.5, float32(y) + 0.5}
			if covers(p0, p1, p) && covers(p1, p2, p) && covers(p2, p0, p) {
				r.blend(x, y, col)
			}
		}
	}
}

func (r *Raster) toPixel(v render.Vertex) point {
	x, y := render.NDCToScreen(v.Position[0], v.Position[1], r.width, r.height)
	return point{x, y}
}

// edge is twice the signed area of triangle (a, b, p).
func edge(a, b, p point) float32 {
	return (b.x-a.x)*(p.y-a.y) - (b.y-a.y)*(p.x-a.x)
}

// covers reports whether p is on the inner side of edge a->b. Points exactly
// on the edge are owned by only one of the two directions the edge can be
// walked in.
func covers(a, b, p point) bool {
	e := edge(a, b, p)
	if e != 0 {
		return e > 0
	}
	dy := b.y - a.y
	dx := b.x - a.x
	return dy > 0 || (dy == 0 && dx < 0)
}

func (r *Raster) blend(x, y int, col [4]float32) {
	i := y*r.width + x
	a := col[3]
	dst := r.pixels[i]
	r.pixels[i] = RGB{
		R: col[0]*a + dst.R*(1-a),
		G: col[1]*a + dst.G*(1-a),
		B: col[2]*a + dst.B*(1-a),
	}
}

// To8 converts a component in [0, 1] to 8 bits, clamping out-of-range values.
func To8(v float32) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	default:
		return uint8(v*255 + 0.5)
	}
}
