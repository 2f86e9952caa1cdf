package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/mlevkov/go-tilegrid/bolt"
	"github.com/mlevkov/go-tilegrid/mb"
	"github.com/mlevkov/go-tilegrid/tile"
	"github.com/mlevkov/go-tilegrid/xyz"
)

// deduceFormat picks a tileset format from an explicit flag value or,
// when empty, from the path: *.mbtiles and *.db files are recognized,
// anything else is treated as an xyz file pattern.
func deduceFormat(format, filePath string) string {
	if format != "" {
		return format
	}
	if strings.HasSuffix(filePath, ".mbtiles") {
		return "mbtiles"
	}
	if strings.HasSuffix(filePath, ".db") {
		return "bolt"
	}
	return "xyz"
}

func openReader(format, filePath string) (tile.Visitor, error) {
	switch deduceFormat(format, filePath) {
	case "mbtiles":
		return mb.NewReader(filePath)
	case "bolt":
		return bolt.Open(filePath)
	case "xyz":
		return xyz.NewReader(filePath)
	}
	return nil, fmt.Errorf("invalid format: %q", format)
}

func openWriter(format, filePath string) (tile.Writer, error) {
	switch deduceFormat(format, filePath) {
	case "mbtiles":
		return mb.NewWriter(filePath)
	case "bolt":
		return bolt.Open(filePath)
	case "xyz":
		return xyz.NewWriter(filePath)
	}
	return nil, fmt.Errorf("invalid format: %q", format)
}

func closeQuietly(v any) {
	if closer, ok := v.(io.Closer); ok {
		closer.Close()
	}
}
