// Package index provides a flat binary tile index format, mapping
// tile coordinates to byte ranges in a separate tile data file.
package index

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/mlevkov/go-tilegrid/tile"
)

var ErrCorruptIndex = errors.New("tilegrid: corrupt tile index")

// Item is a single record in the index, mapping tile coordinates
// (X, Y, Z) to the location (Offset, Length) of the tile data. Records
// are serialized little-endian with no padding, so the format is
// easily portable to other languages and utilities.
type Item struct {
	X      uint32
	Y      uint32
	Z      uint32
	Length uint32
	Offset uint64
}

// FromTile creates an index record for a tile and its data location.
func FromTile(t tile.Tile, location tile.Location) Item {
	return Item{
		X:      t.X,
		Y:      t.Y,
		Z:      t.Z,
		Length: uint32(location.Length),
		Offset: location.Offset,
	}
}

// Tile returns the tile the record belongs to. Indices read from
// untrusted files should be checked with tile.Tile.Valid.
func (i Item) Tile() tile.Tile {
	return tile.Tile{X: i.X, Y: i.Y, Z: i.Z}
}

func (i Item) Location() tile.Location {
	return tile.Location{Offset: i.Offset, Length: uint64(i.Length)}
}

// Sort orders records by their tile, see tile.Tile.Compare.
func Sort(items []Item) {
	slices.SortFunc(items, func(a, b Item) int {
		return a.Tile().Compare(b.Tile())
	})
}

func WriteAll(items []Item, writer io.Writer) error {
	return binary.Write(writer, binary.LittleEndian, items)
}

func ReadAll(indexData []byte) ([]Item, error) {
	itemSize := binary.Size(Item{})
	if len(indexData)%itemSize != 0 {
		return nil, fmt.Errorf("%w: %d bytes is not a multiple of the record size", ErrCorruptIndex, len(indexData))
	}

	items := make([]Item, len(indexData)/itemSize)
	if err := binary.Read(bytes.NewReader(indexData), binary.LittleEndian, items); err != nil {
		return nil, err
	}

	return items, nil
}
