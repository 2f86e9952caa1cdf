package xyz_test

import (
	"errors"
	"maps"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/mlevkov/go-tilegrid/tile"
	"github.com/mlevkov/go-tilegrid/xyz"
)

func TestWriterReader(t *testing.T) {
	rootDir := t.TempDir()
	pattern := filepath.Join(rootDir, "{z}", "{x}", "{y}.png")

	tiles := map[tile.Tile][]byte{
		{X: 0, Y: 0, Z: 0}: []byte("tile000"),
		{X: 1, Y: 1, Z: 1}: []byte("tile111"),
		{X: 0, Y: 0, Z: 6}: []byte("tile006"),
		{X: 6, Y: 6, Z: 6}: []byte("tile666"),
	}

	writer, err := xyz.NewWriter(pattern)
	if err != nil {
		t.Fatalf("NewWriter failed: %v", err)
	}

	for tl, tileData := range tiles {
		if err := writer.WriteTile(tl, tileData); err != nil {
			t.Errorf("WriteTile(%v) failed: %v", tl, err)
		}
	}

	if err := writer.Finalize(); err != nil {
		t.Fatalf("Finalize failed: %v", err)
	}

	reader, err := xyz.NewReader(pattern)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}

	if got, want := maps.Collect(tile.IterTiles(reader)), tiles; !cmp.Equal(got, want) {
		t.Errorf("VisitTiles data mismatch")
	}

	for tl, tileData := range tiles {
		data, err := reader.ReadTile(tl)
		if err != nil {
			t.Errorf("ReadTile(%v) failed: %v", tl, err)
			continue
		}
		if !cmp.Equal(data, tileData) {
			t.Errorf("ReadTile data mismatch for %v", tl)
		}
	}

	tileData, err := reader.ReadTile(tile.New(9, 9, 9))
	if err != nil {
		t.Errorf("ReadTile(missing tile) failed: %v", err)
	}
	if len(tileData) != 0 {
		t.Errorf("ReadTile(missing tile) expected empty tile, got: %v bytes", len(tileData))
	}
}

func TestNewReaderInvalidPattern(t *testing.T) {
	for _, pattern := range []string{"", "tiles/{z}/{x}.png", "tiles/{x}/{y}.png"} {
		if _, err := xyz.NewReader(pattern); err == nil {
			t.Errorf("NewReader(%q) expected error", pattern)
		}
	}
}

// A file matching the pattern but addressing a cell outside the grid
// must fail the walk instead of yielding an invalid tile.
func TestVisitTilesRejectsOutOfRangeIndices(t *testing.T) {
	rootDir := t.TempDir()
	pattern := filepath.Join(rootDir, "{z}", "{x}", "{y}.png")

	writer, err := xyz.NewWriter(pattern)
	if err != nil {
		t.Fatalf("NewWriter failed: %v", err)
	}
	// Bypasses validation on purpose: 2/7/0 is outside the 4x4 grid.
	if err := writer.WriteTile(tile.New(2, 7, 0), []byte("oops")); err != nil {
		t.Fatalf("WriteTile failed: %v", err)
	}

	reader, err := xyz.NewReader(pattern)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}

	err = reader.VisitTiles(func(tile.Tile, []byte) error { return nil })
	if !errors.Is(err, tile.ErrInvalidTile) {
		t.Errorf("VisitTiles error = %v, want ErrInvalidTile", err)
	}
}

// A path component beyond uint32 must fail the walk instead of
// wrapping around and aliasing the file onto a small valid tile.
func TestVisitTilesRejectsOverflowingIndices(t *testing.T) {
	rootDir := t.TempDir()
	pattern := filepath.Join(rootDir, "{z}", "{x}", "{y}.png")

	// 4294967296 is 2^32; truncated to uint32 it would read as zoom 0.
	dir := filepath.Join(rootDir, "4294967296", "0")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "0.png"), []byte("oops"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	reader, err := xyz.NewReader(pattern)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}

	var visited []tile.Tile
	err = reader.VisitTiles(func(tl tile.Tile, _ []byte) error {
		visited = append(visited, tl)
		return nil
	})
	if !errors.Is(err, tile.ErrInvalidTile) {
		t.Errorf("VisitTiles error = %v, want ErrInvalidTile", err)
	}
	if len(visited) != 0 {
		t.Errorf("VisitTiles yielded %v for an out-of-range path", visited)
	}
}
