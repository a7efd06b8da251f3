package models

import "strconv"

// Coordinate is a clicked point on the map, in degrees.
// Values are not range checked; whatever the map emits is forwarded upstream.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// LatString formats the latitude without trailing zeros.
func (c Coordinate) LatString() string {
	return strconv.FormatFloat(c.Lat, 'f', -1, 64)
}

// LonString formats the longitude without trailing zeros.
func (c Coordinate) LonString() string {
	return strconv.FormatFloat(c.Lon, 'f', -1, 64)
}
