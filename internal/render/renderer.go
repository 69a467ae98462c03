package render

import (
	"errors"
	"image/color"
)

// ErrTerminated is returned from Game.Update to end the game loop cleanly.
var ErrTerminated = errors.New("game terminated")

// Vertex is one corner of a flat-colored triangle. Position is in normalized
// device coordinates: x and y in [-1, 1], +y up. Color is straight RGBA in
// [0, 1].
type Vertex struct {
	Position [2]float32
	Color    [4]float32
}

// Image represents a renderable surface that frames are presented on.
// It abstracts the underlying window or terminal.
type Image interface {
	// Size returns the surface size in the backend's units (pixels or cells).
	Size() (width, height int)

	// Fill fills the entire surface with the given color.
	Fill(clr color.Color)

	// DrawTriangles draws a non-indexed triangle list: every three vertices
	// form one triangle, painted in order without depth testing.
	DrawTriangles(vertices []Vertex)
}

// Renderer provides backend-specific drawing that is not triangle based.
type Renderer interface {
	// DrawText draws a line of debug text with its top-left corner at (x, y).
	DrawText(dst Image, text string, x, y int)
}

// InputManager handles input from the user (keyboard).
type InputManager interface {
	IsKeyPressed(key Key) bool
	IsKeyJustPressed(key Key) bool
}

// Key represents a keyboard key.
type Key int

// Key constants for the keys the game reads
const (
	KeyW Key = iota
	KeyA
	KeyS
	KeyD
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyM   // Minimap toggle
	KeyTab // Debug overlay toggle
	KeyEscape
)

// Game represents the game interface that the engine will call.
type Game interface {
	// Update updates the game logic. It is called every tick (60 times per second).
	// Returning ErrTerminated stops the engine without an error.
	Update() error

	// Draw draws the game screen. It is called every frame.
	Draw(screen Image)

	// Layout accepts the outside size (e.g., window size) and returns the logical screen size.
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Engine represents the game engine that manages the game loop and window.
type Engine interface {
	// SetWindowSize sets the window size in pixels.
	SetWindowSize(width, height int)

	// SetWindowTitle sets the window title.
	SetWindowTitle(title string)

	// SetWindowResizable enables or disables window resizing.
	SetWindowResizable(resizable bool)

	// RunGame runs the game loop with the provided game.
	// This is a blocking call that runs until the game ends.
	RunGame(game Game) error
}

// Backend bundles the pieces a presentation backend provides.
type Backend struct {
	Renderer Renderer
	Input    InputManager
	Engine   Engine
}

// NDCToScreen converts a normalized device coordinate to a position on a
// surface of the given size, with y growing downward.
func NDCToScreen(x, y float32, width, height int) (float32, float32) {
	sx := (x + 1) / 2 * float32(width)
	sy := (1 - y) / 2 * float32(height)
	return sx, sy
}
