package game

import (
	"context"
	"image/color"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"chosenoffset.com/raycaster/internal/core/raycast"
	"chosenoffset.com/raycaster/internal/render"
	"chosenoffset.com/raycaster/internal/render/frame"
)

// Draw renders the game to the screen from the pose committed by the last
// Update.
func (g *Game) Draw(screen render.Image) {
	var span trace.Span
	if g.sampleEvery > 0 && g.FrameCount%g.sampleEvery == 0 {
		_, span = g.tracer.Start(context.Background(), "game.frame")
		defer span.End()
	}

	pose := g.Player.Pose()
	g.hits = raycast.Cast(pose.X, pose.Y, pose.Angle, g.Map)

	g.vertices = frame.BuildView(g.vertices[:0], g.hits)
	if alpha := g.minimap.value; alpha > 0 {
		start := len(g.vertices)
		g.vertices = frame.BuildMinimap(g.vertices, pose, g.Map)
		if alpha < 1 {
			for i := start; i < len(g.vertices); i++ {
				g.vertices[i].Color[3] *= alpha
			}
		}
	}

	screen.Fill(color.Black)
	screen.DrawTriangles(g.vertices)

	g.drawUI(screen)

	if span != nil {
		span.SetAttributes(
			attribute.Int("frame.number", g.FrameCount),
			attribute.Int("frame.vertices", len(g.vertices)),
			attribute.Float64("player.x", pose.X),
			attribute.Float64("player.y", pose.Y),
		)
	}
}

func (g *Game) drawUI(screen render.Image) {
	y := 4
	if g.ShowDebug {
		for _, line := range g.debugLines() {
			g.Renderer.DrawText(screen, line, 4, y)
			y += 16
		}
	}
	for _, msg := range g.Messages {
		g.Renderer.DrawText(screen, msg.Text, 4, y)
		y += 16
	}
}
