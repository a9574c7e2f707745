// ABOUTME: Core value types shared across the adapter: regions, cameras, points
// ABOUTME: Provides validation and the documented default viewport

package models

import (
	"fmt"
	"math"
)

// LatLng is a geographic point in the web widget's representation.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Region is the mobile-style viewport descriptor: center coordinates plus
// latitude/longitude spans. Regions are immutable values, replaced wholesale.
type Region struct {
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	LatitudeDelta  float64 `json:"latitudeDelta"`
	LongitudeDelta float64 `json:"longitudeDelta"`
}

// Center returns the region's center as a widget point.
func (r Region) Center() LatLng {
	return LatLng{Lat: r.Latitude, Lng: r.Longitude}
}

// DeltaRatio returns latitudeDelta / longitudeDelta, used to reconstruct a
// latitude span from a widget-reported zoom level. Returns 1 when the
// longitude span is non-positive rather than dividing by zero.
func (r Region) DeltaRatio() float64 {
	if r.LongitudeDelta <= 0 {
		return 1
	}
	return r.LatitudeDelta / r.LongitudeDelta
}

// IsZero reports whether all four fields are zero. The adapter hands out a
// zero Region when the widget has not loaded yet.
func (r Region) IsZero() bool {
	return r == Region{}
}

// DefaultRegion is the viewport used when a caller supplies neither a region
// nor an initial region: a whole-hemisphere view centered on the origin
// (45 degree spans map to zoom level 3).
var DefaultRegion = Region{
	Latitude:       0,
	Longitude:      0,
	LatitudeDelta:  45,
	LongitudeDelta: 45,
}

// Camera is the imperative viewport descriptor exposed by the camera handle.
// Altitude is always 0: the web widget has no altitude concept.
type Camera struct {
	Center   LatLng  `json:"center"`
	Pitch    float64 `json:"pitch"`
	Altitude float64 `json:"altitude"`
	Heading  float64 `json:"heading"`
	Zoom     float64 `json:"zoom"`
}

// CameraUpdate is a partial camera move. Nil fields leave the widget's
// current value untouched.
type CameraUpdate struct {
	Center  *LatLng  `json:"center,omitempty"`
	Pitch   *float64 `json:"pitch,omitempty"`
	Heading *float64 `json:"heading,omitempty"`
	Zoom    *float64 `json:"zoom,omitempty"`
}

// ValidateCoordinates checks if latitude and longitude are within valid ranges.
func ValidateCoordinates(lat, lng float64) error {
	if math.IsNaN(lat) || math.IsNaN(lng) {
		return fmt.Errorf("coordinates cannot be NaN")
	}
	if math.IsInf(lat, 0) || math.IsInf(lng, 0) {
		return fmt.Errorf("coordinates cannot be infinite")
	}
	if lat < -90 || lat > 90 {
		return fmt.Errorf("latitude must be between -90 and 90")
	}
	if lng < -180 || lng > 180 {
		return fmt.Errorf("longitude must be between -180 and 180")
	}
	return nil
}

// ValidateRegion checks a region's center coordinates and requires strictly
// positive, finite spans.
func ValidateRegion(r Region) error {
	if err := ValidateCoordinates(r.Latitude, r.Longitude); err != nil {
		return err
	}
	for _, d := range []float64{r.LatitudeDelta, r.LongitudeDelta} {
		if math.IsNaN(d) || math.IsInf(d, 0) {
			return fmt.Errorf("deltas must be finite")
		}
		if d <= 0 {
			return fmt.Errorf("deltas must be positive")
		}
	}
	return nil
}
