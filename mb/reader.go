// Package mb provides API for reading and writing tiles and metadata
// in MBTiles format.
//
// MBTiles stores rows in the TMS scheme where row 0 is the
// southernmost; this package converts to and from the XYZ scheme of
// tile.Tile at the boundary.
//
// Note: the caller must register a sqlite3 driver for database/sql
// (e.g. import _ "github.com/mattn/go-sqlite3") before using this
// package.
package mb

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/mlevkov/go-tilegrid/tile"
)

// Reader implements the tile.Reader interface for MBTiles format.
type Reader struct {
	db   *sql.DB
	stmt *sql.Stmt
}

// NewReader creates a new Reader for the given MBTiles file path.
//
// The returned Reader must be closed after use to release database
// resources.
func NewReader(filePath string) (*Reader, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?mode=ro", filePath))
	if err != nil {
		return nil, err
	}

	stmt, err := db.Prepare("SELECT tile_data FROM tiles WHERE zoom_level = ? AND tile_column = ? AND tile_row = ?")
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Reader{db: db, stmt: stmt}, nil
}

func (r *Reader) Close() error {
	return errors.Join(r.stmt.Close(), r.db.Close())
}

// ReadMetadata returns the contents of the metadata table.
func (r *Reader) ReadMetadata() (map[string]string, error) {
	metadata := make(map[string]string)

	rows, err := r.db.Query("SELECT name, value FROM metadata")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var name, value string
		if err := rows.Scan(&name, &value); err != nil {
			return nil, err
		}
		metadata[name] = value
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return metadata, nil
}

func (r *Reader) ReadTile(t tile.Tile) ([]byte, error) {
	row := (uint32(1) << t.Z) - 1 - t.Y // XYZ -> TMS

	var tileData []byte
	if err := r.stmt.QueryRow(t.Z, t.X, row).Scan(&tileData); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return make([]byte, 0), nil
		}
		return nil, err
	}

	return tileData, nil
}

func (r *Reader) VisitTiles(visitor func(tile.Tile, []byte) error) error {
	rows, err := r.db.Query("SELECT zoom_level, tile_column, tile_row, tile_data FROM tiles")
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var x, y, z uint32
		var tileData []byte

		if err := rows.Scan(&z, &x, &y, &tileData); err != nil {
			return err
		}

		y = (uint32(1) << z) - 1 - y // TMS -> XYZ

		if err := visitor(tile.Tile{X: x, Y: y, Z: z}, tileData); err != nil {
			return err
		}
	}

	return rows.Err()
}
