package xyz

import (
	"os"
	"path/filepath"

	"github.com/mlevkov/go-tilegrid/tile"
)

// Reader implements the tile.Reader interface for tiles in XYZ format.
type Reader struct {
	pattern *pattern
	rootDir string
}

// NewReader creates a new Reader for the given file pattern
// (e.g. "/home/user/tiles/{z}/{x}/{y}.png").
func NewReader(filePattern string) (*Reader, error) {
	p, err := newPattern(filePattern)
	if err != nil {
		return nil, err
	}
	return &Reader{pattern: p, rootDir: p.rootDir()}, nil
}

func (r *Reader) ReadTile(t tile.Tile) ([]byte, error) {
	tileData, err := os.ReadFile(r.pattern.path(t))
	if os.IsNotExist(err) {
		return make([]byte, 0), nil
	}
	if err != nil {
		return nil, err
	}
	return tileData, nil
}

// VisitTiles walks the tileset directory tree. Files not matching the
// pattern are skipped; matching files with out-of-range indices abort
// the walk with an error.
func (r *Reader) VisitTiles(visitor func(tile.Tile, []byte) error) error {
	return filepath.WalkDir(r.rootDir, func(filePath string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		t, ok, err := r.pattern.parse(filePath)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		tileData, err := os.ReadFile(filePath)
		if err != nil {
			return err
		}

		return visitor(t, tileData)
	})
}
