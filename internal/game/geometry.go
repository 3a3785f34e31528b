package game

import "math"

// findBearing returns the angle in degrees of (dx, dy), in (-180, 180].
func findBearing(dx, dy float64) float64 {
	return math.Atan2(dy, dx) * 180 / math.Pi
}

// normalizeDegrees wraps any angle into [0, 360).
func normalizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	// -tiny + 360 rounds to 360 in float64
	if deg >= 360 {
		deg = 0
	}
	return deg
}

// ResolvePosition converts a landing point into its normalized distance from
// the board center and its calibrated angle in [0, 360).
//
// The angle is measured on the vector from the landing point to the center,
// not the other way round; the calibration offset assumes that direction.
// Distances beyond 1.0 are returned as is and mean the dart left the board.
func ResolvePosition(landing Vec2, layout *BoardLayout) (normalizedDistance, degrees float64) {
	v := layout.Center.Minus(landing)
	degrees = normalizeDegrees(findBearing(v.X, v.Y) + layout.CalibrationOffset)
	normalizedDistance = v.Magnitude() / layout.Radius
	return normalizedDistance, degrees
}

// AimAt returns the world point whose resolved angle and normalized distance
// are the given values. It inverts ResolvePosition up to float rounding.
func AimAt(layout *BoardLayout, normalizedDistance, degrees float64) Vec2 {
	// v = center - point has bearing (degrees - offset); the point sits opposite.
	bearing := degrees - layout.CalibrationOffset + 180
	return layout.Center.Polar(normalizedDistance*layout.Radius, bearing)
}

// RoundToTwo rounds to two decimals for display.
func RoundToTwo(val float64) float64 {
	return math.Round(val*100) / 100
}
