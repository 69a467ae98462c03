// Package game runs one tick of the raycaster: input is turned into player
// commands and applied, then the frame is cast and presented.
package game

import (
	"fmt"
	"log"

	"go.opentelemetry.io/otel/trace"

	"chosenoffset.com/raycaster/internal/config"
	"chosenoffset.com/raycaster/internal/core/player"
	"chosenoffset.com/raycaster/internal/core/raycast"
	"chosenoffset.com/raycaster/internal/render"
	"chosenoffset.com/raycaster/internal/telemetry"
	"chosenoffset.com/raycaster/internal/world/maploader"
)

// TickSeconds is the fixed tick length. Both backends update 60 times per
// second and the movement speeds are per tick.
const TickSeconds = 1.0 / 60.0

// Game holds all game state and logic.
type Game struct {
	Map      *maploader.Map
	Player   *player.Player
	Renderer render.Renderer
	InputMgr render.InputManager

	// UI state
	Messages    []Message
	ShowMinimap bool
	ShowDebug   bool
	minimap     fade

	// Reused between frames
	hits     []raycast.RayHit
	vertices []render.Vertex

	tracer      trace.Tracer
	sampleEvery int

	// Debug
	FrameCount int
}

// New creates a game on m with the player at the map's start pose.
func New(m *maploader.Map, cfg *config.Config, r render.Renderer, input render.InputManager) *Game {
	p := player.New(m.PlayerStart)
	p.MoveSpeed = cfg.Movement.MoveSpeed
	p.RotSpeed = cfg.Movement.RotSpeed

	tracer := telemetry.NoopTracer()
	if cfg.Telemetry.Enabled {
		tracer = telemetry.Tracer("game")
	}

	return &Game{
		Map:         m,
		Player:      p,
		Renderer:    r,
		InputMgr:    input,
		ShowMinimap: cfg.Minimap.Visible,
		minimap:     newFade(cfg.Minimap.Visible, cfg.Minimap.FadeSeconds),
		tracer:      tracer,
		sampleEvery: cfg.Telemetry.SampleEvery,
	}
}

// Update handles game logic updates. The player moves here and nowhere else,
// so the following Draw sees the committed pose.
func (g *Game) Update() error {
	if g.InputMgr.IsKeyJustPressed(render.KeyEscape) {
		log.Printf("Quit requested after %d frames", g.FrameCount)
		return render.ErrTerminated
	}

	g.updateMessages(TickSeconds)
	g.minimap.step(TickSeconds)

	if g.InputMgr.IsKeyJustPressed(render.KeyM) {
		g.ShowMinimap = !g.ShowMinimap
		if g.ShowMinimap {
			g.minimap.toward(1)
			g.ShowMessage("Minimap on")
		} else {
			g.minimap.toward(0)
			g.ShowMessage("Minimap off")
		}
	}
	if g.InputMgr.IsKeyJustPressed(render.KeyTab) {
		g.ShowDebug = !g.ShowDebug
	}

	g.Player.Update(g.readCommands(), g.Map)
	g.FrameCount++
	return nil
}

// readCommands snapshots the held movement keys.
func (g *Game) readCommands() player.Commands {
	var cmds player.Commands
	if g.InputMgr.IsKeyPressed(render.KeyW) || g.InputMgr.IsKeyPressed(render.KeyUp) {
		cmds = cmds.With(player.Forward)
	}
	if g.InputMgr.IsKeyPressed(render.KeyS) || g.InputMgr.IsKeyPressed(render.KeyDown) {
		cmds = cmds.With(player.Backward)
	}
	if g.InputMgr.IsKeyPressed(render.KeyA) || g.InputMgr.IsKeyPressed(render.KeyLeft) {
		cmds = cmds.With(player.RotateLeft)
	}
	if g.InputMgr.IsKeyPressed(render.KeyD) || g.InputMgr.IsKeyPressed(render.KeyRight) {
		cmds = cmds.With(player.RotateRight)
	}
	return cmds
}

// Layout returns the game's logical screen size. The view is always cast at
// the fixed raycaster resolution and scaled by the backend.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return raycast.ScreenW, raycast.ScreenH
}

// MinimapAlpha returns the current minimap opacity in [0, 1].
func (g *Game) MinimapAlpha() float32 {
	return g.minimap.value
}

func (g *Game) updateMessages(dt float64) {
	var active []Message
	for _, msg := range g.Messages {
		msg.TimeLeft -= dt
		if msg.TimeLeft > 0 {
			active = append(active, msg)
		}
	}
	g.Messages = active
}

// ShowMessage adds a new message to be displayed on screen.
func (g *Game) ShowMessage(text string) {
	g.Messages = append(g.Messages, Message{
		Text:     text,
		TimeLeft: 2.0,
		MaxTime:  2.0,
	})
	log.Printf("Message: %s", text)
}

func (g *Game) debugLines() []string {
	pose := g.Player.Pose()
	lines := []string{
		fmt.Sprintf("map %s  frame %d", g.Map.Name, g.FrameCount),
		fmt.Sprintf("pos %.2f, %.2f  angle %.2f", pose.X, pose.Y, pose.Angle),
	}
	if len(g.hits) > 0 {
		center := g.hits[len(g.hits)/2]
		lines = append(lines, fmt.Sprintf("center %v %v d=%.2f", center.Cell, center.Side, center.Distance))
	}
	return lines
}
