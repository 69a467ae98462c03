package raster

import (
	"image/color"
	"testing"

	"chosenoffset.com/raycaster/internal/render"
)

// quad returns the two triangles covering (x0, y0)-(x1, y1) in NDC, wound the
// way the frame builder winds them.
func quad(x0, y0, x1, y1 float32, c [4]float32) []render.Vertex {
	tl := render.Vertex{Position: [2]float32{x0, y1}, Color: c}
	tr := render.Vertex{Position: [2]float32{x1, y1}, Color: c}
	bl := render.Vertex{Position: [2]float32{x0, y0}, Color: c}
	br := render.Vertex{Position: [2]float32{x1, y0}, Color: c}
	return []render.Vertex{tl, bl, tr, tr, bl, br}
}

func TestFill(t *testing.T) {
	c := New(4, 4)
	c.Fill(color.RGBA{R: 255, G: 128, B: 0, A: 255})
	r, g, b := c.At(3, 3)
	if r != 255 || g != 128 || b != 0 {
		t.Errorf("Expected (255, 128, 0), got (%d, %d, %d)", r, g, b)
	}
}

func TestFullScreenQuadCoversEveryPixel(t *testing.T) {
	c := New(16, 16)
	c.DrawTriangles(quad(-1, -1, 1, 1, [4]float32{1, 0, 0, 1}))

	w, h := c.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if r, _, _ := c.At(x, y); r != 255 {
				t.Fatalf("Expected pixel (%d, %d) to be red, got r=%d", x, y, r)
			}
		}
	}
}

func TestTranslucentQuadBlendsOnce(t *testing.T) {
	// A pixel on the shared diagonal must not be blended twice.
	c := New(16, 16)
	c.DrawTriangles(quad(-1, -1, 1, 1, [4]float32{1, 1, 1, 0.5}))

	w, h := c.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if r, _, _ := c.At(x, y); r != 128 {
				t.Fatalf("Expected pixel (%d, %d) at half intensity, got %d", x, y, r)
			}
		}
	}
}

func TestQuadCoversOnlyItsArea(t *testing.T) {
	c := New(10, 10)
	// Left half, top half in NDC.
	c.DrawTriangles(quad(-1, 0, 0, 1, [4]float32{0, 1, 0, 1}))

	if _, g, _ := c.At(0, 0); g != 255 {
		t.Error("Expected top-left pixel to be covered")
	}
	if _, g, _ := c.At(4, 4); g != 255 {
		t.Error("Expected pixel (4, 4) to be covered")
	}
	if _, g, _ := c.At(5, 0); g != 0 {
		t.Error("Expected pixel (5, 0) to be outside the quad")
	}
	if _, g, _ := c.At(0, 5); g != 0 {
		t.Error("Expected pixel (0, 5) to be outside the quad")
	}
}

func TestAdjacentQuadsDoNotOverlap(t *testing.T) {
	c := New(10, 10)
	half := [4]float32{1, 1, 1, 0.5}
	var verts []render.Vertex
	verts = append(verts, quad(-1, -1, 0, 1, half)...)
	verts = append(verts, quad(0, -1, 1, 1, half)...)
	c.DrawTriangles(verts)

	for x := 0; x < 10; x++ {
		if r, _, _ := c.At(x, 3); r != 128 {
			t.Errorf("Expected pixel (%d, 3) blended once, got %d", x, r)
		}
	}
}

func TestDegenerateTriangleIgnored(t *testing.T) {
	c := New(4, 4)
	v := render.Vertex{Position: [2]float32{0, 0}, Color: [4]float32{1, 1, 1, 1}}
	c.DrawTriangles([]render.Vertex{v, v, v})
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if r, _, _ := c.At(x, y); r != 0 {
				t.Fatalf("Expected untouched pixel (%d, %d), got %d", x, y, r)
			}
		}
	}
}

func TestRGBA(t *testing.T) {
	r := New(3, 2)
	r.Fill(color.RGBA{R: 0, G: 0, B: 255, A: 255})
	img := r.RGBA()
	if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 2 {
		t.Fatalf("Expected 3x2 image, got %v", img.Bounds())
	}
	if got := img.RGBAAt(2, 1); got != (color.RGBA{0, 0, 255, 255}) {
		t.Errorf("Expected opaque blue, got %v", got)
	}
}

func TestTo8Clamps(t *testing.T) {
	if To8(-0.5) != 0 || To8(1.5) != 255 || To8(0) != 0 || To8(1) != 255 {
		t.Error("Expected out-of-range components to clamp")
	}
}

func TestPixelOutside(t *testing.T) {
	r := New(2, 2)
	r.Fill(color.White)
	if r.Pixel(-1, 0) != (RGB{}) || r.Pixel(2, 0) != (RGB{}) {
		t.Error("Expected black outside the raster")
	}
}
