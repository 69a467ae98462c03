package terminal

import (
	"errors"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/raycaster/internal/render"
)

// TicksPerSecond matches the Ebiten update rate so movement speeds agree.
const TicksPerSecond = 60

// NewBackend creates the full terminal backend.
func NewBackend() render.Backend {
	input := NewInputManager()
	return render.Backend{
		Renderer: &Renderer{},
		Input:    input,
		Engine:   NewEngine(input),
	}
}

// Renderer implements render.Renderer by placing text on the canvas.
type Renderer struct{}

// DrawText draws text at pixel (x, y). The row is rounded down to a terminal
// row.
func (r *Renderer) DrawText(dst render.Image, text string, x, y int) {
	if c, ok := dst.(*Canvas); ok {
		c.PutText(text, x, y)
	}
}

// Engine implements render.Engine on a tcell screen.
type Engine struct {
	input  *InputManager
	screen tcell.Screen
}

// NewEngine creates an engine that feeds key events to input.
func NewEngine(input *InputManager) *Engine {
	return &Engine{input: input}
}

// SetScreen overrides the screen RunGame draws on, for example with a
// simulation screen. The screen must not be initialized yet.
func (e *Engine) SetScreen(s tcell.Screen) {
	e.screen = s
}

// SetWindowSize does nothing; the terminal decides its own size.
func (e *Engine) SetWindowSize(width, height int) {}

// SetWindowTitle does nothing; the terminal keeps its own title.
func (e *Engine) SetWindowTitle(title string) {}

// SetWindowResizable does nothing; terminal resizes are always followed.
func (e *Engine) SetWindowResizable(resizable bool) {}

// RunGame initializes the terminal and runs the game at TicksPerSecond until
// Update returns an error. render.ErrTerminated ends the loop without error.
func (e *Engine) RunGame(game render.Game) error {
	screen := e.screen
	if screen == nil {
		s, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("failed to create terminal screen: %w", err)
		}
		screen = s
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal screen: %w", err)
	}
	defer screen.Fini()

	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	screen.HideCursor()
	screen.Clear()

	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	defer close(quit)
	go e.pollEvents(screen, events, quit)

	cols, rows := screen.Size()
	canvas := NewCanvas(cols, rows)

	ticker := time.NewTicker(time.Second / TicksPerSecond)
	defer ticker.Stop()

	for range ticker.C {
		if resized := drainEvents(events); resized {
			screen.Sync()
		}
		if c, r := screen.Size(); c != cols || r != rows {
			cols, rows = c, r
			canvas.Resize(cols, rows)
		}

		e.input.BeginTick()
		if err := game.Update(); err != nil {
			if errors.Is(err, render.ErrTerminated) {
				return nil
			}
			return err
		}

		game.Layout(canvas.Size())
		game.Draw(canvas)
		canvas.Flush(screen)
	}
	return nil
}

// pollEvents forwards screen events until the screen is finalized.
func (e *Engine) pollEvents(screen tcell.Screen, events chan<- tcell.Event, quit <-chan struct{}) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		if key, ok := ev.(*tcell.EventKey); ok {
			// Record immediately so key timing is not tied to the tick rate.
			e.input.HandleKey(key)
			continue
		}
		select {
		case events <- ev:
		case <-quit:
			return
		}
	}
}

// drainEvents consumes queued non-key events and reports whether the
// terminal was resized.
func drainEvents(events <-chan tcell.Event) bool {
	resized := false
	for {
		select {
		case ev := <-events:
			if _, ok := ev.(*tcell.EventResize); ok {
				resized = true
			}
		default:
			return resized
		}
	}
}
