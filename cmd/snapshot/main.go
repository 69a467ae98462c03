package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"chosenoffset.com/raycaster/internal/core/raycast"
	"chosenoffset.com/raycaster/internal/render/snapshot"
	"chosenoffset.com/raycaster/internal/world/maploader"
)

func main() {
	mapName := flag.String("map", maploader.DefaultMapName, "map set to render")
	mapDir := flag.String("mapdir", "", "directory to load maps from instead of the built-in ones")
	outDir := flag.String("out", ".", "directory the PNG files are written to")
	width := flag.Int("width", raycast.ScreenW, "view image width in pixels")
	height := flag.Int("height", raycast.ScreenH, "view image height in pixels")
	flag.Parse()

	fmt.Println("Raycaster Snapshot Generator")
	fmt.Println("============================")
	fmt.Println()

	if err := run(*mapDir, *mapName, *outDir, *width, *height); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println("Done!")
}

func run(mapDir, mapName, outDir string, width, height int) error {
	ctx := context.Background()

	var m *maploader.Map
	var err error
	if mapDir == "" {
		m, err = maploader.LoadEmbedded(ctx, mapName)
	} else {
		m, err = maploader.LoadDir(ctx, mapDir, mapName)
	}
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	viewPath := filepath.Join(outDir, m.Name+"_view.png")
	if err := snapshot.SavePNG(snapshot.Frame(m.PlayerStart, m, width, height), viewPath); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", viewPath)

	previewPath := filepath.Join(outDir, m.Name+"_map.png")
	if err := snapshot.SavePNG(snapshot.MapPreview(m), previewPath); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", previewPath)

	return nil
}
