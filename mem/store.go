// Package mem provides an in-memory tileset, for tests and as a
// staging area when composing tilesets.
package mem

import (
	"maps"
	"slices"

	"github.com/mlevkov/go-tilegrid/tile"
)

// Store implements the tile.Reader and tile.Writer interfaces over a
// plain map keyed by tile. A Store is not safe for concurrent use.
type Store struct {
	tiles map[tile.Tile][]byte
}

func New() *Store {
	return &Store{tiles: make(map[tile.Tile][]byte)}
}

// Len returns the number of stored tiles.
func (s *Store) Len() int {
	return len(s.tiles)
}

func (s *Store) WriteTile(t tile.Tile, tileData []byte) error {
	s.tiles[t] = slices.Clone(tileData)
	return nil
}

func (s *Store) Finalize() error {
	return nil
}

func (s *Store) ReadTile(t tile.Tile) ([]byte, error) {
	tileData, ok := s.tiles[t]
	if !ok {
		return make([]byte, 0), nil
	}
	return slices.Clone(tileData), nil
}

// VisitTiles visits tiles in (Z, X, Y) order. The visitor receives a
// copy of the tile data and may keep or mutate it freely.
func (s *Store) VisitTiles(visitor func(tile.Tile, []byte) error) error {
	for _, t := range slices.SortedFunc(maps.Keys(s.tiles), tile.Tile.Compare) {
		if err := visitor(t, slices.Clone(s.tiles[t])); err != nil {
			return err
		}
	}
	return nil
}
