package tilekey_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/mlevkov/go-tilegrid/tile"
	"github.com/mlevkov/go-tilegrid/tilekey"
)

func TestHilbertRoundTrip(t *testing.T) {
	for z := range 8 {
		for x := range 1 << z {
			for y := range 1 << z {
				tl := tile.Tile{X: uint32(x), Y: uint32(y), Z: uint32(z)}
				if diff := cmp.Diff(tl, tilekey.FromHilbert(tilekey.Hilbert(tl))); diff != "" {
					t.Errorf("FromHilbert(Hilbert(%v)) mismatch (-want+got):\n%v", tl, diff)
				}
			}
		}
	}
	for z := range uint32(tile.MaxZoom + 1) {
		tl := tile.Tile{X: 1<<z - 1, Y: 1<<z - 1, Z: z}
		if diff := cmp.Diff(tl, tilekey.FromHilbert(tilekey.Hilbert(tl))); diff != "" {
			t.Errorf("FromHilbert(Hilbert(%v)) mismatch (-want+got):\n%v", tl, diff)
		}
	}
}

func TestHilbertZoomLevelsAreContiguous(t *testing.T) {
	if got := tilekey.Hilbert(tile.New(0, 0, 0)); got != 0 {
		t.Errorf("Hilbert(0/0/0) = %v, want 0", got)
	}

	// Codes of zoom z occupy [tilesBefore, tilesBefore + 4^z).
	next := uint64(1)
	for z := uint32(1); z <= 5; z++ {
		seen := make(map[uint64]bool)
		for x := range uint32(1) << z {
			for y := range uint32(1) << z {
				code := tilekey.Hilbert(tile.New(z, x, y))
				if code < next || code >= next+1<<(2*z) {
					t.Fatalf("Hilbert(%v) = %v, outside zoom %d range [%d, %d)", tile.New(z, x, y), code, z, next, next+1<<(2*z))
				}
				seen[code] = true
			}
		}
		if got, want := len(seen), 1<<(2*z); got != want {
			t.Errorf("zoom %d produced %d distinct codes, want %d", z, got, want)
		}
		next += 1 << (2 * z)
	}
}

func TestQuadkey(t *testing.T) {
	// Reference values from the Bing Maps tile system documentation.
	tests := []struct {
		t    tile.Tile
		want string
	}{
		{tile.New(0, 0, 0), ""},
		{tile.New(1, 0, 0), "0"},
		{tile.New(1, 1, 0), "1"},
		{tile.New(1, 0, 1), "2"},
		{tile.New(1, 1, 1), "3"},
		{tile.New(3, 3, 5), "213"},
	}
	for _, tt := range tests {
		if got := tilekey.Quadkey(tt.t); got != tt.want {
			t.Errorf("Quadkey(%v) = %q, want %q", tt.t, got, tt.want)
		}
	}
}

func TestQuadkeyRoundTrip(t *testing.T) {
	for z := range 6 {
		for x := range 1 << z {
			for y := range 1 << z {
				tl := tile.Tile{X: uint32(x), Y: uint32(y), Z: uint32(z)}
				got, err := tilekey.FromQuadkey(tilekey.Quadkey(tl))
				if err != nil {
					t.Fatalf("FromQuadkey(Quadkey(%v)) failed: %v", tl, err)
				}
				if got != tl {
					t.Errorf("FromQuadkey(Quadkey(%v)) = %v", tl, got)
				}
			}
		}
	}
}

func TestFromQuadkeyInvalid(t *testing.T) {
	for _, key := range []string{"4", "012a", strings.Repeat("0", tile.MaxZoom+1)} {
		if _, err := tilekey.FromQuadkey(key); !errors.Is(err, tilekey.ErrInvalidQuadkey) {
			t.Errorf("FromQuadkey(%q) error = %v, want ErrInvalidQuadkey", key, err)
		}
	}
}
