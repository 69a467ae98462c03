package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"chosenoffset.com/raycaster/internal/config"
	"chosenoffset.com/raycaster/internal/game"
	"chosenoffset.com/raycaster/internal/render"
	ebitenrender "chosenoffset.com/raycaster/internal/render/ebiten"
	"chosenoffset.com/raycaster/internal/render/terminal"
	"chosenoffset.com/raycaster/internal/telemetry"
	"chosenoffset.com/raycaster/internal/world/maploader"
)

func main() {
	configPath := flag.String("config", "raycaster.json", "path to the JSON config file")
	backendName := flag.String("backend", "", "presentation backend: ebiten or terminal")
	mapName := flag.String("map", "", "map set to load, e.g. map1")
	mapDir := flag.String("mapdir", "", "directory to load maps from instead of the built-in ones")
	list := flag.Bool("list", false, "list the available maps and exit")
	logFile := flag.String("logfile", "raycaster.log", "log file used while the terminal backend owns the screen")
	flag.Parse()

	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.ApplyEnv(os.Getenv); err != nil {
		log.Fatalf("Failed to apply environment: %v", err)
	}

	// Flags win over the file and the environment
	if *backendName != "" {
		cfg.Window.Backend = *backendName
	}
	if *mapName != "" {
		cfg.Map.Name = *mapName
	}
	if *mapDir != "" {
		cfg.Map.Dir = *mapDir
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	if *list {
		if err := listMaps(cfg.Map.Dir); err != nil {
			log.Fatal(err)
		}
		return
	}

	ctx := context.Background()

	if cfg.Telemetry.Enabled {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			log.Printf("Warning: telemetry setup failed: %v", err)
			log.Printf("Game will run without tracing")
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					log.Printf("Error shutting down telemetry: %v", err)
				}
			}()
		}
	}

	gameMap, err := loadMap(ctx, cfg.Map)
	if err != nil {
		log.Fatalf("Failed to load map: %v", err)
	}
	log.Printf("Loaded map %s: start (%.2f, %.2f), %d enemies",
		gameMap.Name, gameMap.PlayerStart.X, gameMap.PlayerStart.Y, len(gameMap.Enemies))

	var backend render.Backend
	switch cfg.Window.Backend {
	case config.BackendTerminal:
		// The terminal is the screen now, so logs go to a file.
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
		backend = terminal.NewBackend()
	default:
		backend = ebitenrender.NewBackend()
	}

	g := game.New(gameMap, cfg, backend.Renderer, backend.Input)

	backend.Engine.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	backend.Engine.SetWindowTitle(fmt.Sprintf("%s - %s", cfg.Window.Title, gameMap.Name))
	backend.Engine.SetWindowResizable(cfg.Window.Resizable)

	log.Printf("Starting game with %s backend...", cfg.Window.Backend)
	if err := backend.Engine.RunGame(g); err != nil {
		log.Fatalf("Game error: %v", err)
	}
}

func loadMap(ctx context.Context, mc config.MapConfig) (*maploader.Map, error) {
	if mc.Dir == "" {
		log.Printf("Loading built-in map %s", mc.Name)
		return maploader.LoadEmbedded(ctx, mc.Name)
	}
	log.Printf("Loading map from %s", maploader.Path(mc.Dir, mc.Name))
	return maploader.LoadDir(ctx, mc.Dir, mc.Name)
}

func listMaps(dir string) error {
	var names []string
	if dir == "" {
		names = maploader.EmbeddedNames()
	} else {
		var err error
		names, err = maploader.ScanDir(dir)
		if err != nil {
			return fmt.Errorf("failed to list maps: %w", err)
		}
	}
	for _, name := range names {
		fmt.Println(name)
	}
	return nil
}
