package draft

import "math"

// arbitraryAxisBound is the threshold of the arbitrary axis algorithm: when
// both the x and y components of a normal are smaller than this, the normal is
// treated as parallel to the world z axis and world Y is used as the reference
// axis instead of world Z. Crossing two near-parallel vectors would blow up
// numerically. The basis choice is discontinuous exactly at the boundary; this
// is documented behavior of the algorithm, not a bug.
const arbitraryAxisBound = 1.0 / 64.0

// ArbitraryAxis builds an entity's local reference frame from its normal,
// using the arbitrary axis algorithm.
//
// The returned matrix is orthonormal and right-handed and its third column is
// normalize(normal). As returned it maps OCS coordinates to WCS; its transpose
// maps WCS to OCS. The normal must be non-zero; callers guard this.
func ArbitraryAxis(normal Vector3) Matrix3 {
	n := normal.Normalize()
	ref := UnitZ
	if math.Abs(n.X) < arbitraryAxisBound && math.Abs(n.Y) < arbitraryAxisBound {
		ref = UnitY
	}
	xAxis := ref.Cross(n).Normalize()
	yAxis := n.Cross(xAxis).Normalize()
	return NewMatrix3FromAxes(xAxis, yAxis, n)
}

// ObjectToWorld re-expresses a batch of OCS points as WCS points.
func ObjectToWorld(points []Vector3, normal Vector3) []Vector3 {
	frame := ArbitraryAxis(normal)
	out := make([]Vector3, len(points))
	for i, p := range points {
		out[i] = frame.MulVec(p)
	}
	return out
}

// WorldToObject re-expresses a batch of WCS points as OCS points.
func WorldToObject(points []Vector3, normal Vector3) []Vector3 {
	frame := ArbitraryAxis(normal).Transpose()
	out := make([]Vector3, len(points))
	for i, p := range points {
		out[i] = frame.MulVec(p)
	}
	return out
}

// DegToRad converts an angle in degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// RadToDeg converts an angle in radians to degrees.
func RadToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// NormalizeAngle maps an angle in degrees into [0°, 360°).
func NormalizeAngle(deg float64) float64 {
	norm := math.Mod(deg, 360)
	if norm < 0 {
		norm += 360
	}
	// Mod can hand back 360-ε which rounds to 360 when it reaches callers.
	if isZero(norm - 360) {
		return 0
	}
	return norm
}
