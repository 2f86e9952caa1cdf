// Package bolt provides a tileset stored in a single bbolt database
// file.
//
// All tiles live in one bucket under 12-byte big-endian (Z, X, Y)
// keys, so a cursor scan yields tiles in the (Z, X, Y) total order of
// tile.Tile.Compare.
package bolt

import (
	"encoding/binary"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/mlevkov/go-tilegrid/tile"
)

var tilesBucket = []byte("tiles")

// Store implements the tile.Reader and tile.Writer interfaces on top
// of a bbolt database. A Store is safe for concurrent use.
type Store struct {
	db *bbolt.DB
}

// Open opens or creates a tileset database at the given path.
//
// The returned Store must be closed after use to release the file
// lock.
func Open(filePath string) (*Store, error) {
	db, err := bbolt.Open(filePath, 0600, nil)
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(tilesBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func tileKey(t tile.Tile) []byte {
	key := make([]byte, 12)
	binary.BigEndian.PutUint32(key[0:4], t.Z)
	binary.BigEndian.PutUint32(key[4:8], t.X)
	binary.BigEndian.PutUint32(key[8:12], t.Y)
	return key
}

func parseTileKey(key []byte) (tile.Tile, error) {
	if len(key) != 12 {
		return tile.Tile{}, fmt.Errorf("tilegrid: malformed tile key of %d bytes", len(key))
	}
	return tile.NewChecked(
		binary.BigEndian.Uint32(key[0:4]),
		binary.BigEndian.Uint32(key[4:8]),
		binary.BigEndian.Uint32(key[8:12]),
	)
}

func (s *Store) WriteTile(t tile.Tile, tileData []byte) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(tilesBucket).Put(tileKey(t), tileData)
	})
}

func (s *Store) Finalize() error {
	return nil
}

func (s *Store) ReadTile(t tile.Tile) ([]byte, error) {
	var tileData []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		value := tx.Bucket(tilesBucket).Get(tileKey(t))
		tileData = make([]byte, len(value))
		copy(tileData, value)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return tileData, nil
}

// VisitTiles visits tiles in (Z, X, Y) order.
func (s *Store) VisitTiles(visitor func(tile.Tile, []byte) error) error {
	return s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(tilesBucket).ForEach(func(key, value []byte) error {
			t, err := parseTileKey(key)
			if err != nil {
				return err
			}
			return visitor(t, value)
		})
	})
}
