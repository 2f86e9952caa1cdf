// Package xyz provides API for reading and writing tiles in XYZ
// directory format, where tiles are stored as individual files with
// paths like "/z/x/y.ext".
package xyz

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/mlevkov/go-tilegrid/tile"
)

var ErrInvalidPattern = errors.New("tilegrid: invalid file pattern")

// pattern is a file path template with {z}, {x} and {y} placeholders,
// e.g. "/home/user/tiles/{z}/{x}/{y}.png".
type pattern struct {
	raw    string
	regexp *regexp.Regexp
}

func newPattern(raw string) (*pattern, error) {
	for _, p := range []string{"{x}", "{y}", "{z}"} {
		if !strings.Contains(raw, p) {
			return nil, fmt.Errorf("%w: placeholder %v not found", ErrInvalidPattern, p)
		}
	}

	re := raw
	re = strings.ReplaceAll(re, "{x}", `(?P<x>\d+)`)
	re = strings.ReplaceAll(re, "{y}", `(?P<y>\d+)`)
	re = strings.ReplaceAll(re, "{z}", `(?P<z>\d+)`)
	compiled, err := regexp.Compile("^" + re + "$")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPattern, err)
	}

	return &pattern{raw: raw, regexp: compiled}, nil
}

func (p *pattern) path(t tile.Tile) string {
	result := p.raw
	result = strings.ReplaceAll(result, "{x}", strconv.FormatUint(uint64(t.X), 10))
	result = strings.ReplaceAll(result, "{y}", strconv.FormatUint(uint64(t.Y), 10))
	result = strings.ReplaceAll(result, "{z}", strconv.FormatUint(uint64(t.Z), 10))
	return result
}

// parse matches a file path against the pattern and extracts the tile.
// The second result is false when the path does not belong to the
// tileset; an error means the path matched but carries out-of-range
// indices.
func (p *pattern) parse(filePath string) (tile.Tile, bool, error) {
	matches := p.regexp.FindStringSubmatch(filePath)
	if matches == nil {
		return tile.Tile{}, false, nil
	}

	x, errX := strconv.ParseUint(matches[p.regexp.SubexpIndex("x")], 10, 32)
	y, errY := strconv.ParseUint(matches[p.regexp.SubexpIndex("y")], 10, 32)
	z, errZ := strconv.ParseUint(matches[p.regexp.SubexpIndex("z")], 10, 32)
	if err := errors.Join(errX, errY, errZ); err != nil {
		return tile.Tile{}, false, fmt.Errorf("%v: %w: %w", filePath, tile.ErrInvalidTile, err)
	}

	t, err := tile.NewChecked(uint32(z), uint32(x), uint32(y))
	if err != nil {
		return tile.Tile{}, false, fmt.Errorf("%v: %w", filePath, err)
	}
	return t, true, nil
}

// rootDir returns the longest directory prefix shared by all tile
// paths of the pattern.
func (p *pattern) rootDir() string {
	path0 := p.path(tile.Tile{X: 0, Y: 0, Z: 0})
	path1 := p.path(tile.Tile{X: 1, Y: 1, Z: 1})
	for path0 != path1 {
		path0 = filepath.Dir(path0)
		path1 = filepath.Dir(path1)
	}
	return path0
}
