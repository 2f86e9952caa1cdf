// Package tilekey provides locality-preserving keys for tiles.
//
// The (Z, X, Y) ordering of tile.Tile.Compare is arbitrary and
// scatters neighboring tiles. The keys in this package keep nearby
// tiles close in key space, which suits cache layouts and on-disk
// ordering of tile storage.
package tilekey

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"

	"github.com/google/hilbert"

	"github.com/mlevkov/go-tilegrid/tile"
)

var ErrInvalidQuadkey = errors.New("tilegrid: invalid quadkey")

// Hilbert returns the Hilbert-curve code of a tile. Tiles of lower
// zoom levels come first (the zoom 0 tile has code 0), and within one
// zoom level codes follow the Hilbert curve over the grid.
func Hilbert(t tile.Tile) uint64 {
	h, _ := hilbert.NewHilbert(1 << t.Z)
	code, _ := h.MapInverse(int(t.X), int(t.Y))

	// Number of tiles on all zoom levels below t.Z.
	tilesBefore := (1<<(t.Z*2) - 1) / 3

	return uint64(code + tilesBefore)
}

// FromHilbert decodes a Hilbert-curve code back into a tile.
// It is the inverse of Hilbert.
func FromHilbert(code uint64) tile.Tile {
	z := (bits.Len64(3*code+1) - 1) / 2
	tilesBefore := (1<<(z*2) - 1) / 3

	h, _ := hilbert.NewHilbert(1 << z)
	x, y, _ := h.Map(int(code) - tilesBefore)

	return tile.Tile{X: uint32(x), Y: uint32(y), Z: uint32(z)}
}

// Quadkey returns the Bing Maps quadkey of a tile: one base-4 digit
// per zoom level, most significant first, each digit selecting a
// quadrant (0 northwest, 1 northeast, 2 southwest, 3 southeast).
// The zoom 0 tile has the empty quadkey.
func Quadkey(t tile.Tile) string {
	var sb strings.Builder
	sb.Grow(int(t.Z))
	for z := t.Z; z > 0; z-- {
		digit := byte('0')
		mask := uint32(1) << (z - 1)
		if t.X&mask != 0 {
			digit++
		}
		if t.Y&mask != 0 {
			digit += 2
		}
		sb.WriteByte(digit)
	}
	return sb.String()
}

// FromQuadkey parses a quadkey back into a tile. The key length gives
// the zoom level.
func FromQuadkey(key string) (tile.Tile, error) {
	if len(key) > tile.MaxZoom {
		return tile.Tile{}, fmt.Errorf("%w: %d digits exceed max zoom", ErrInvalidQuadkey, len(key))
	}

	var x, y uint32
	for i := 0; i < len(key); i++ {
		digit := key[i]
		if digit < '0' || digit > '3' {
			return tile.Tile{}, fmt.Errorf("%w: unexpected digit %q", ErrInvalidQuadkey, digit)
		}
		x = x<<1 | uint32(digit-'0')&1
		y = y<<1 | uint32(digit-'0')>>1
	}

	return tile.Tile{X: x, Y: y, Z: uint32(len(key))}, nil
}
