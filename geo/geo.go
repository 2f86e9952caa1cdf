// Package geo provides the geographic location type and the spherical
// Web Mercator projection (EPSG:3857) used by the tile grid.
package geo

import "math"

const (
	// EarthRadius is the radius of the spherical earth model, in meters.
	EarthRadius = 6378137.0

	// MaxCoordinate is the half extent of the Mercator plane
	// (EarthRadius * pi): both projected axes lie in
	// [-MaxCoordinate, MaxCoordinate] meters.
	MaxCoordinate = 20037508.342789244

	// MaxLat is the northernmost latitude the projection supports;
	// it projects to exactly MaxCoordinate on the y axis, making the
	// Mercator plane square.
	MaxLat = 85.05112877980659

	// MinLat is the southernmost latitude the projection supports.
	MinLat = -MaxLat
)

// Location is a geographic coordinate on WGS84, in degrees.
type Location struct {
	Lon float64
	Lat float64
}

// Valid reports whether the location is a well-formed geographic
// coordinate: longitude in [-180, 180] and latitude in [-90, 90].
func (l Location) Valid() bool {
	return l.Lon >= -180 && l.Lon <= 180 && l.Lat >= -90 && l.Lat <= 90
}

// Coordinates is a planar coordinate on the Mercator plane, in meters.
type Coordinates struct {
	X float64
	Y float64
}

// Project maps a location onto the Mercator plane.
//
// Latitudes beyond [MinLat, MaxLat] project outside the plane on the
// y axis (the poles go to infinity); callers quantizing onto a tile
// grid must clamp the result.
func Project(l Location) Coordinates {
	return Coordinates{
		X: EarthRadius * radians(l.Lon),
		Y: EarthRadius * math.Log(math.Tan(math.Pi/4+radians(l.Lat)/2)),
	}
}

// Unproject maps a Mercator plane coordinate back to a location.
// It is the inverse of Project.
func Unproject(c Coordinates) Location {
	return Location{
		Lon: degrees(c.X / EarthRadius),
		Lat: degrees(2*math.Atan(math.Exp(c.Y/EarthRadius)) - math.Pi/2),
	}
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }

func degrees(rad float64) float64 { return rad * 180 / math.Pi }
