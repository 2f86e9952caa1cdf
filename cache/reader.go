// Package cache provides a read-through cache for tile readers.
package cache

import (
	"time"

	"github.com/jellydator/ttlcache/v3"

	"github.com/mlevkov/go-tilegrid/tile"
)

// Reader wraps a tile.Reader with an in-memory TTL cache keyed by
// tile. Entries expire ttl after their last read. A Reader is safe
// for concurrent use if the underlying reader is.
//
// Missing tiles are cached like any other: the underlying reader's
// empty-slice answer is remembered until the entry expires.
type Reader struct {
	source tile.Reader
	cache  *ttlcache.Cache[tile.Tile, []byte]
}

type readerConfig struct {
	Capacity uint64
}

type ReaderOption func(*readerConfig)

// WithCapacity limits the number of cached tiles; the least recently
// read entry is evicted first. Zero means unbounded.
func WithCapacity(capacity uint64) ReaderOption {
	return func(c *readerConfig) { c.Capacity = capacity }
}

// NewReader creates a caching wrapper around the given reader.
func NewReader(source tile.Reader, ttl time.Duration, opts ...ReaderOption) *Reader {
	config := readerConfig{}
	for _, opt := range opts {
		opt(&config)
	}

	cacheOpts := []ttlcache.Option[tile.Tile, []byte]{
		ttlcache.WithTTL[tile.Tile, []byte](ttl),
	}
	if config.Capacity > 0 {
		cacheOpts = append(cacheOpts, ttlcache.WithCapacity[tile.Tile, []byte](config.Capacity))
	}

	return &Reader{
		source: source,
		cache:  ttlcache.New(cacheOpts...),
	}
}

func (r *Reader) ReadTile(t tile.Tile) ([]byte, error) {
	if item := r.cache.Get(t); item != nil {
		return item.Value(), nil
	}

	tileData, err := r.source.ReadTile(t)
	if err != nil {
		return nil, err
	}

	r.cache.Set(t, tileData, ttlcache.DefaultTTL)
	return tileData, nil
}

// Len returns the number of cached entries.
func (r *Reader) Len() int {
	return r.cache.Len()
}

// Purge drops all cached entries.
func (r *Reader) Purge() {
	r.cache.DeleteAll()
}
