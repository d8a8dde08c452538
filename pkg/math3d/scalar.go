package math3d

import "github.com/chewxy/math32"

// Epsilon is the tolerance used by the approximate comparison helpers.
const Epsilon float32 = 1e-4

// DegToRad converts degrees to radians.
func DegToRad(deg float32) float32 {
	return deg * (math32.Pi / 180)
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad float32) float32 {
	return rad * (180 / math32.Pi)
}

// Clamp limits x to [lo, hi].
func Clamp(x, lo, hi float32) float32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// ApproxEqual reports whether a and b differ by less than Epsilon.
func ApproxEqual(a, b float32) bool {
	return math32.Abs(a-b) < Epsilon
}

// spline weights shared by the Catmull-Rom and Hermite helpers of every
// vector width.
func catmullRomWeights(s float32) (wa, wb, wc, wd float32) {
	s2 := s * s
	s3 := s2 * s
	wa = (-s3 + 2*s2 - s) / 2
	wb = (3*s3 - 5*s2 + 2) / 2
	wc = (-3*s3 + 4*s2 + s) / 2
	wd = (s3 - s2) / 2
	return wa, wb, wc, wd
}

func hermiteWeights(s float32) (wa, wt1, wb, wt2 float32) {
	s2 := s * s
	s3 := s2 * s
	wa = 2*s3 - 3*s2 + 1
	wb = -2*s3 + 3*s2
	wt1 = s3 - 2*s2 + s
	wt2 = s3 - s2
	return wa, wt1, wb, wt2
}
