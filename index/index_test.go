package index_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/mlevkov/go-tilegrid/index"
	"github.com/mlevkov/go-tilegrid/tile"
)

func TestWriteReadRoundTrip(t *testing.T) {
	items := []index.Item{
		{X: 0, Y: 0, Z: 0, Length: 10, Offset: 0},
		{X: 1, Y: 0, Z: 1, Length: 20, Offset: 10},
		{X: 123, Y: 456, Z: 10, Length: 0, Offset: 30},
	}

	var buffer bytes.Buffer
	if err := index.WriteAll(items, &buffer); err != nil {
		t.Fatalf("WriteAll failed: %v", err)
	}
	if got, want := buffer.Len(), 24*len(items); got != want {
		t.Errorf("serialized size = %v, want %v", got, want)
	}

	got, err := index.ReadAll(buffer.Bytes())
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if diff := cmp.Diff(items, got); diff != "" {
		t.Errorf("ReadAll mismatch (-want+got):\n%v", diff)
	}
}

func TestReadAllCorrupt(t *testing.T) {
	if _, err := index.ReadAll(make([]byte, 25)); !errors.Is(err, index.ErrCorruptIndex) {
		t.Errorf("ReadAll(25 bytes) error = %v, want ErrCorruptIndex", err)
	}
}

func TestSort(t *testing.T) {
	items := []index.Item{
		{X: 3, Y: 4, Z: 5},
		{X: 10, Y: 10, Z: 4},
		{X: 3, Y: 3, Z: 5},
		{X: 0, Y: 0, Z: 0},
	}
	index.Sort(items)

	want := []tile.Tile{
		{X: 0, Y: 0, Z: 0},
		{X: 10, Y: 10, Z: 4},
		{X: 3, Y: 3, Z: 5},
		{X: 3, Y: 4, Z: 5},
	}
	for i, item := range items {
		if item.Tile() != want[i] {
			t.Errorf("items[%d].Tile() = %v, want %v", i, item.Tile(), want[i])
		}
	}
}

func TestItemTileLocation(t *testing.T) {
	item := index.FromTile(tile.New(5, 3, 4), tile.Location{Offset: 100, Length: 42})
	if got, want := item.Tile(), tile.New(5, 3, 4); got != want {
		t.Errorf("Tile() = %v, want %v", got, want)
	}
	if got, want := item.Location(), (tile.Location{Offset: 100, Length: 42}); got != want {
		t.Errorf("Location() = %v, want %v", got, want)
	}
}
