// Package terminal presents frames in a text terminal using tcell. Every
// terminal cell shows two stacked pixels with the upper half block glyph.
package terminal

import (
	"image/color"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/raycaster/internal/render/raster"
)

const halfBlock = '▀'

// Canvas is a raster sized in half-cell pixels with a text layer on the
// terminal cell grid. It implements render.Image.
type Canvas struct {
	*raster.Raster
	text map[[2]int]rune // keyed by terminal cell
}

// NewCanvas creates a canvas for a terminal of cols x rows cells.
func NewCanvas(cols, rows int) *Canvas {
	c := &Canvas{Raster: raster.New(0, 0)}
	c.Resize(cols, rows)
	return c
}

// Resize changes the canvas to match a terminal of cols x rows cells,
// discarding its contents.
func (c *Canvas) Resize(cols, rows int) {
	c.Raster.Resize(cols, max(rows, 0)*2)
	c.text = make(map[[2]int]rune)
}

// Fill sets every pixel to clr and clears any text.
func (c *Canvas) Fill(clr color.Color) {
	c.Raster.Fill(clr)
	clear(c.text)
}

// PutText places text on the terminal cell grid; it is drawn over the pixels
// on the next flush.
func (c *Canvas) PutText(text string, x, y int) {
	width, height := c.Size()
	row := y / 2
	col := x
	for _, r := range text {
		if col >= width {
			break
		}
		if col >= 0 && row >= 0 && row < height/2 {
			c.text[[2]int{col, row}] = r
		}
		col++
	}
}

// TextAt returns the text rune at a terminal cell, or 0.
func (c *Canvas) TextAt(col, row int) rune {
	return c.text[[2]int{col, row}]
}

// Flush copies the canvas to the terminal screen and shows it.
func (c *Canvas) Flush(screen tcell.Screen) {
	width, height := c.Size()
	for row := 0; row < height/2; row++ {
		for col := 0; col < width; col++ {
			top := c.Pixel(col, row*2)
			bottom := c.Pixel(col, row*2+1)

			if r, ok := c.text[[2]int{col, row}]; ok {
				style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(toColor(bottom))
				screen.SetContent(col, row, r, nil, style)
				continue
			}
			style := tcell.StyleDefault.Foreground(toColor(top)).Background(toColor(bottom))
			screen.SetContent(col, row, halfBlock, nil, style)
		}
	}
	screen.Show()
}

func toColor(p raster.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(raster.To8(p.R)), int32(raster.To8(p.G)), int32(raster.To8(p.B)))
}
