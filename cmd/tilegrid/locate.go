package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/google/subcommands"

	"github.com/mlevkov/go-tilegrid/geo"
	"github.com/mlevkov/go-tilegrid/tile"
	"github.com/mlevkov/go-tilegrid/tilekey"
)

type locateCmd struct {
	zoom uint
	lon  float64
	lat  float64
}

func (c *locateCmd) Name() string     { return "locate" }
func (c *locateCmd) Synopsis() string { return "find the tile containing a geographic coordinate" }
func (c *locateCmd) Usage() string {
	return "tilegrid locate -lon <degrees> -lat <degrees> [-z <zoom>]\n"
}
func (c *locateCmd) SetFlags(f *flag.FlagSet) {
	f.UintVar(&c.zoom, "z", 14, "Zoom level")
	f.Float64Var(&c.lon, "lon", 0, "Longitude, degrees")
	f.Float64Var(&c.lat, "lat", 0, "Latitude, degrees")
}

func (c *locateCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	if c.zoom > tile.MaxZoom {
		log.Printf("zoom %d exceeds max zoom %d", c.zoom, tile.MaxZoom)
		return subcommands.ExitUsageError
	}
	loc := geo.Location{Lon: c.lon, Lat: c.lat}
	if !loc.Valid() {
		log.Printf("invalid location: lon=%v lat=%v", c.lon, c.lat)
		return subcommands.ExitUsageError
	}

	t := tile.At(uint32(c.zoom), loc)
	fmt.Println("tile:   ", t)
	fmt.Println("quadkey:", tilekey.Quadkey(t))
	fmt.Println("hilbert:", tilekey.Hilbert(t))

	return subcommands.ExitSuccess
}
