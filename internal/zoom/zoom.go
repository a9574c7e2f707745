// ABOUTME: Conversion between mobile-style longitude deltas and widget zoom levels
// ABOUTME: Pure arithmetic over a fixed 360-degree reference world width

package zoom

import "math"

const (
	// referenceWorldWidth is the longitude span visible at zoom level 0.
	referenceWorldWidth = 360.0

	// Min and Max bound the widget's supported zoom range.
	Min = 0
	Max = 21
)

// FromLongitudeDelta maps a longitude span to the nearest integer zoom level,
// clamped to [Min, Max]. A zero or negative delta is invalid input and maps
// to Max (the smallest representable span) instead of producing NaN or Inf.
func FromLongitudeDelta(lngDelta float64) int {
	if lngDelta <= 0 || math.IsNaN(lngDelta) {
		return Max
	}
	z := int(math.Round(math.Log2(referenceWorldWidth / lngDelta)))
	return clamp(z)
}

// ToDeltas is the inverse of FromLongitudeDelta: it reconstructs the spans a
// zoom level represents. The latitude span is derived from the longitude span
// via ratio (latitudeDelta / longitudeDelta at the last external region),
// since zoom alone carries no aspect information.
func ToDeltas(level int, ratio float64) (latDelta, lngDelta float64) {
	lngDelta = referenceWorldWidth / math.Pow(2, float64(clamp(level)))
	latDelta = lngDelta * ratio
	return latDelta, lngDelta
}

func clamp(z int) int {
	return max(Min, min(z, Max))
}
