package gamemath

import "math"

// Epsilon is the smallest distance treated as non-zero when normalizing.
const Epsilon = 1e-9

// TruncStep returns the whole-pixel step for a velocity component,
// truncated toward zero.
func TruncStep(v float64) float64 {
	return math.Trunc(v)
}

// Distance returns the euclidean distance between (x1, y1) and (x2, y2).
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// Normalize returns the unit vector of (x, y).
// ok is false when the vector is too short to normalize.
func Normalize(x, y float64) (nx, ny float64, ok bool) {
	length := math.Hypot(x, y)
	if length < Epsilon {
		return 0, 0, false
	}
	return x / length, y / length, true
}

// Dot returns the dot product of two vectors.
func Dot(ax, ay, bx, by float64) float64 {
	return ax*bx + ay*by
}

// Reflect mirrors velocity (vx, vy) about the unit normal (nx, ny):
// v - 2(v·n)n.
func Reflect(vx, vy, nx, ny float64) (rx, ry float64) {
	d := Dot(vx, vy, nx, ny)
	return vx - 2*d*nx, vy - 2*d*ny
}

// OutsideCircle reports whether a disc of the given diameter centered at
// distance from the circle's center pokes past a boundary of radius.
func OutsideCircle(distance, radius, diameter float64) bool {
	return distance > radius-diameter/2
}

// LaunchVelocity returns the sling-shot velocity for a drag that started at
// (anchorX, anchorY) and was released at (releaseX, releaseY). The result
// points away from the release point, scaled down by divisor.
func LaunchVelocity(anchorX, anchorY, releaseX, releaseY, divisor float64) (vx, vy float64) {
	return (anchorX - releaseX) / divisor, (anchorY - releaseY) / divisor
}

// RoundTo rounds v to the given number of decimal places, half away from zero.
func RoundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	r := math.Round(v*p) / p
	if r == 0 {
		// avoid printing "-0.0"
		return 0
	}
	return r
}
