package tile

// Writer defines an interface for writing tiles to a tileset.
type Writer interface {
	// WriteTile writes a single tile to the tileset.
	WriteTile(t Tile, tileData []byte) error

	// Finalize completes the writing process: flushes buffers and
	// writes any trailing indices. It must be called before closing
	// the Writer.
	Finalize() error
}

type Reader interface {
	// ReadTile reads a single tile from the tileset.
	// It returns the tile data or an error if the tile cannot be read.
	// If the tile does not exist, it returns an empty slice with no error.
	ReadTile(t Tile) ([]byte, error)
}

type Visitor interface {
	// VisitTiles visits all tiles in the tileset, calling the visitor
	// for each. It returns an error if visiting fails. The order of
	// tiles and upfront cpu and memory consumption are
	// implementation-defined.
	VisitTiles(visitor func(Tile, []byte) error) error
}

// Location is the absolute location of tile data inside a tileset file.
type Location struct {
	Offset uint64
	Length uint64
}

type LocationReader interface {
	ReadLocation(t Tile) (Location, error)
}

type LocationVisitor interface {
	VisitLocations(visitor func(Tile, Location) error) error
}
