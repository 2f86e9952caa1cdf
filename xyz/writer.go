package xyz

import (
	"os"
	"path/filepath"

	"github.com/mlevkov/go-tilegrid/tile"
)

// Writer implements the tile.Writer interface for tiles in XYZ format.
type Writer struct {
	pattern *pattern
}

// NewWriter creates a new Writer for the given file pattern
// (e.g. "/home/user/tiles/{z}/{x}/{y}.png").
func NewWriter(filePattern string) (*Writer, error) {
	p, err := newPattern(filePattern)
	if err != nil {
		return nil, err
	}
	return &Writer{pattern: p}, nil
}

func (w *Writer) WriteTile(t tile.Tile, tileData []byte) error {
	filePath := w.pattern.path(t)

	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return err
	}

	return os.WriteFile(filePath, tileData, 0644)
}

func (w *Writer) Finalize() error {
	return nil
}
