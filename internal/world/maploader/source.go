package maploader

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"chosenoffset.com/raycaster/internal/telemetry"
)

// DefaultMapName is the map set compiled into the binary.
const DefaultMapName = "map1"

// File name suffixes of the three grids that make up a map set.
const (
	wallsSuffix   = "_walls.txt"
	enemiesSuffix = "_enemies.txt"
	spawnSuffix   = "_spawn.txt"
)

//go:embed maps/*.txt
var mapsFS embed.FS

// LoadEmbedded loads a map set compiled into the binary.
func LoadEmbedded(ctx context.Context, name string) (*Map, error) {
	sub, err := fs.Sub(mapsFS, "maps")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded maps: %w", err)
	}
	return load(ctx, sub, name)
}

// LoadDir loads the map set called name from a directory on disk.
func LoadDir(ctx context.Context, dir, name string) (*Map, error) {
	return load(ctx, os.DirFS(dir), name)
}

func load(ctx context.Context, fsys fs.FS, name string) (*Map, error) {
	_, span := telemetry.Tracer("maploader").Start(ctx, "maploader.load")
	defer span.End()

	walls, err := fs.ReadFile(fsys, name+wallsSuffix)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to read wall grid for map %s: %w", name, err)
	}

	// Actor and spawn grids are optional; without them the map has no
	// enemies and the player starts at DefaultStart.
	enemies, err := readOptional(fsys, name+enemiesSuffix)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to read enemy grid for map %s: %w", name, err)
	}
	spawn, err := readOptional(fsys, name+spawnSuffix)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to read spawn grid for map %s: %w", name, err)
	}

	m := Parse(name, string(walls), enemies, spawn)

	span.SetAttributes(
		attribute.String("map.name", name),
		attribute.Int("map.enemies", len(m.Enemies)),
		attribute.Float64("map.start_x", m.PlayerStart.X),
		attribute.Float64("map.start_y", m.PlayerStart.Y),
	)
	return m, nil
}

func readOptional(fsys fs.FS, path string) (string, error) {
	data, err := fs.ReadFile(fsys, path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ScanDir returns the names of the map sets in a directory, sorted.
// A map set is recognised by its wall grid file.
func ScanDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read map directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		fileName := entry.Name()
		if strings.HasPrefix(fileName, ".") {
			continue
		}
		if name, ok := strings.CutSuffix(fileName, wallsSuffix); ok && name != "" {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	return names, nil
}

// EmbeddedNames lists the map sets compiled into the binary.
func EmbeddedNames() []string {
	entries, err := fs.ReadDir(mapsFS, "maps")
	if err != nil {
		return nil
	}
	var names []string
	for _, entry := range entries {
		if name, ok := strings.CutSuffix(entry.Name(), wallsSuffix); ok {
			names = append(names, name)
		}
	}
	return names
}

// Path returns the wall grid path of a map set inside dir.
func Path(dir, name string) string {
	return filepath.Join(dir, name+wallsSuffix)
}
