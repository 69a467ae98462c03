// Package snapshot renders frames and top-down map previews to PNG images
// without opening a window.
package snapshot

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"

	"chosenoffset.com/raycaster/internal/core/raycast"
	"chosenoffset.com/raycaster/internal/render/frame"
	"chosenoffset.com/raycaster/internal/render/raster"
	"chosenoffset.com/raycaster/internal/world/maploader"
)

// TileSize is the size of one map cell in a preview image
const TileSize = 16

// ColorPalette defines colors for the preview markers
var ColorPalette = struct {
	// Actors
	PlayerStart color.RGBA
	Guard       color.RGBA
	Ss          color.RGBA
	Officer     color.RGBA

	// Heading line from the start position
	Heading color.RGBA
}{
	PlayerStart: color.RGBA{0, 255, 100, 255}, // Bright green
	Guard:       color.RGBA{255, 50, 50, 255}, // Bright red
	Ss:          color.RGBA{200, 0, 200, 255}, // Magenta
	Officer:     color.RGBA{255, 215, 0, 255}, // Gold
	Heading:     color.RGBA{255, 255, 0, 255},
}

// Frame renders what the player sees from pose, minimap included, at the
// given size.
func Frame(pose maploader.Pose, m *maploader.Map, width, height int) *image.RGBA {
	r := raster.New(width, height)
	r.Fill(color.Black)
	hits := raycast.Cast(pose.X, pose.Y, pose.Angle, m)
	r.DrawTriangles(frame.Build(pose, m, hits))
	return r.RGBA()
}

// MapPreview draws the map from above, row 0 at the top, with the enemies
// and the player start marked.
func MapPreview(m *maploader.Map) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, maploader.Width*TileSize, maploader.Height*TileSize))

	for row := 0; row < maploader.Height; row++ {
		for col := 0; col < maploader.Width; col++ {
			fill := opaque(frame.MinimapColor(m.CellAt(col, row)))
			tile := CreateBorderedTile(fill, Darken(fill, 0.6), 1)
			at := image.Pt(col*TileSize, row*TileSize)
			draw.Draw(img, tile.Bounds().Add(at), tile, image.Point{}, draw.Src)
		}
	}

	for _, e := range m.Enemies {
		if !e.Alive {
			continue
		}
		drawCircle(img, e.X, e.Y, enemyColor(e.Kind))
	}

	start := m.PlayerStart
	drawCircle(img, start.X, start.Y, ColorPalette.PlayerStart)
	drawHeading(img, start, ColorPalette.Heading)

	return img
}

func enemyColor(kind maploader.EnemyKind) color.RGBA {
	switch kind {
	case maploader.Ss:
		return ColorPalette.Ss
	case maploader.Officer:
		return ColorPalette.Officer
	default:
		return ColorPalette.Guard
	}
}

func opaque(c [4]float32) color.RGBA {
	return color.RGBA{raster.To8(c[0]), raster.To8(c[1]), raster.To8(c[2]), 255}
}

// CreateBorderedTile creates a tile with a border
func CreateBorderedTile(fillColor, borderColor color.RGBA, borderWidth int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, TileSize, TileSize))

	// Fill background
	draw.Draw(img, img.Bounds(), &image.Uniform{fillColor}, image.Point{}, draw.Src)

	// Draw borders
	for i := 0; i < borderWidth; i++ {
		// Top and bottom borders
		for x := 0; x < TileSize; x++ {
			img.Set(x, i, borderColor)
			img.Set(x, TileSize-1-i, borderColor)
		}
		// Left and right borders
		for y := 0; y < TileSize; y++ {
			img.Set(i, y, borderColor)
			img.Set(TileSize-1-i, y, borderColor)
		}
	}

	return img
}

// drawCircle fills a circle centered on map coordinates (mx, my).
func drawCircle(img *image.RGBA, mx, my float64, fill color.RGBA) {
	cx := mx * TileSize
	cy := my * TileSize
	radius := float64(TileSize)/2 - 3

	for y := int(cy - radius); y <= int(cy+radius); y++ {
		for x := int(cx - radius); x <= int(cx+radius); x++ {
			dx := float64(x) + 0.5 - cx
			dy := float64(y) + 0.5 - cy
			if dx*dx+dy*dy <= radius*radius {
				img.Set(x, y, fill)
			}
		}
	}
}

func drawHeading(img *image.RGBA, pose maploader.Pose, c color.RGBA) {
	length := float64(TileSize)
	cx := pose.X * TileSize
	cy := pose.Y * TileSize
	for i := 0; i <= int(length); i++ {
		x := cx + math.Cos(pose.Angle)*float64(i)
		y := cy + math.Sin(pose.Angle)*float64(i)
		img.Set(int(x), int(y), c)
	}
}

// SavePNG saves an image to a PNG file
func SavePNG(img image.Image, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return nil
}

// Darken returns a darker version of a color
func Darken(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}
