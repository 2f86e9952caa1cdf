// Package tile provides the tile value type of the slippy map tiling
// scheme and common interfaces for reading and writing tilesets.
package tile

import (
	"cmp"
	"errors"
	"fmt"

	"github.com/mlevkov/go-tilegrid/geo"
)

// MaxZoom is the highest zoom level a tile can address. At zoom 30 the
// grid has 2^30 columns and rows, the largest power of two for which
// index arithmetic stays comfortably inside 32 bits.
const MaxZoom = 30

var ErrInvalidTile = errors.New("tilegrid: invalid tile")

// Tile addresses a square region of the Web Mercator plane in the XYZ
// scheme (Tiled web map): zoom level Z, column X and row Y. The grid at
// zoom z has 2^z columns and rows, column 0 at the western edge and
// row 0 at the northern edge. The zero value is the single world tile
// 0/0/0.
//
// Tile is a plain comparable value: it can be copied freely, compared
// with ==, and used directly as a map key or a cache key.
type Tile struct {
	X uint32
	Y uint32
	Z uint32
}

// New creates a tile from raw indices without any validation.
//
// This is the trusted construction path for indices already known to
// be in range, e.g. reconstructed from a storage key. The caller must
// guarantee z <= MaxZoom and x, y < 2^z; New stores the values
// verbatim. Use NewChecked for untrusted input.
func New(z, x, y uint32) Tile {
	return Tile{X: x, Y: y, Z: z}
}

// NewChecked creates a tile from raw indices, returning ErrInvalidTile
// when they do not address a cell of the grid.
func NewChecked(z, x, y uint32) (Tile, error) {
	t := Tile{X: x, Y: y, Z: z}
	if !t.Valid() {
		return Tile{}, fmt.Errorf("%w: %d/%d/%d", ErrInvalidTile, z, x, y)
	}
	return t, nil
}

// At returns the tile containing the given location at the given zoom
// level. The location must be valid (see geo.Location.Valid) and zoom
// must not exceed MaxZoom.
//
// The projected coordinate is quantized onto the 2^zoom grid and both
// indices are clamped into [0, 2^zoom-1], so floating point rounding
// at the plane edges can never overflow the grid: a location exactly
// on the eastern or southern edge lands in the last column or row.
// A location exactly on an interior tile boundary belongs to the tile
// east respectively south of it.
func At(zoom uint32, loc geo.Location) Tile {
	c := geo.Project(loc)

	n := int64(1) << zoom
	scale := 2 * geo.MaxCoordinate / float64(n)

	return Tile{
		X: quantize((c.X+geo.MaxCoordinate)/scale, n),
		Y: quantize((geo.MaxCoordinate-c.Y)/scale, n), // row 0 is the northernmost
		Z: zoom,
	}
}

// quantize truncates a fractional grid coordinate to a tile index,
// clamped into [0, n-1].
func quantize(v float64, n int64) uint32 {
	if v <= 0 {
		return 0
	}
	if v >= float64(n) {
		return uint32(n - 1)
	}
	return uint32(v)
}

// Valid reports whether the tile addresses a cell of the grid at its
// zoom level: Z <= MaxZoom and both indices below 2^Z.
//
// Construction through New performs no checks, so any consumer of
// tiles built from untrusted indices must call Valid itself.
func (t Tile) Valid() bool {
	return t.Z <= MaxZoom && t.X < (1<<t.Z) && t.Y < (1<<t.Z)
}

// Compare orders tiles by (Z, X, Y) ascending and is suitable for
// slices.SortFunc and ordered containers.
//
// The order is a strict total order but an arbitrary one: it does not
// preserve spatial locality. Callers that want nearby tiles to sort
// nearby should key on a space filling curve instead, see the tilekey
// package.
func (t Tile) Compare(o Tile) int {
	if c := cmp.Compare(t.Z, o.Z); c != 0 {
		return c
	}
	if c := cmp.Compare(t.X, o.X); c != 0 {
		return c
	}
	return cmp.Compare(t.Y, o.Y)
}

// Less reports whether t sorts before o, see Compare.
func (t Tile) Less(o Tile) bool {
	return t.Compare(o) < 0
}

// String returns the tile in z/x/y form.
func (t Tile) String() string {
	return fmt.Sprintf("%d/%d/%d", t.Z, t.X, t.Y)
}
