package raycast

import "math"

const (
	twoPi = 2 * math.Pi

	// axisEpsilon is the smallest |sin| or |cos| for which a ray is still
	// considered to cross the corresponding family of grid lines.
	axisEpsilon = 1e-9
)

// Normalize wraps angle into [0, 2π).
func Normalize(angle float64) float64 {
	a := math.Mod(angle, twoPi)
	if a < 0 {
		a += twoPi
	}
	if a >= twoPi {
		a = 0
	}
	return a
}

// PointingDown reports whether a normalized angle points toward +y.
func PointingDown(angle float64) bool {
	return angle > 0 && angle < math.Pi
}

// PointingLeft reports whether a normalized angle points toward -x.
func PointingLeft(angle float64) bool {
	return angle > math.Pi/2 && angle < 3*math.Pi/2
}

// directed returns |v| when positive is true and -|v| otherwise.
func directed(v float64, positive bool) float64 {
	if positive {
		return math.Abs(v)
	}
	return -math.Abs(v)
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
