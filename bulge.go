package draft

import "math"

// BulgeArc converts a polyline segment's chord and signed bulge into the arc
// it encodes.
//
// The bulge is the tangent of a quarter of the arc's included angle, signed by
// traversal direction: positive bulges run counterclockwise from p1 to p2,
// negative ones clockwise. The returned angles are in degrees and the arc
// always runs counterclockwise from startAngle to endAngle; for a negative
// bulge the two angles are swapped to keep that contract.
//
// A bulge of (numerically) zero describes a straight segment. In that case the
// returned radius is zero, which callers treat as the "draw a line instead"
// sentinel.
func BulgeArc(p1, p2 Vector2, bulge float64) (center Vector2, radius, startAngle, endAngle float64) {
	theta := 4 * math.Atan(math.Abs(bulge))
	if isZero(theta) {
		return p1.Midpoint(p2), 0, 0, 0
	}
	chord := p2.Sub(p1)
	radius = chord.Hypot() / (2 * math.Sin(theta/2))

	// The center sits on the chord's perpendicular bisector, on the side the
	// bulge sign selects.
	offset := radius * math.Cos(theta/2)
	perp := chord.Normalize().Perpendicular()
	if bulge < 0 {
		perp = perp.Negate()
	}
	center = p1.Midpoint(p2).Add(perp.Mul(offset))

	startAngle = RadToDeg(p1.Sub(center).Angle())
	endAngle = RadToDeg(p2.Sub(center).Angle())
	if bulge < 0 {
		startAngle, endAngle = endAngle, startAngle
	}
	return center, radius, NormalizeAngle(startAngle), NormalizeAngle(endAngle)
}

// ArcBulge is the inverse of [BulgeArc]: it encodes a counterclockwise arc
// from startAngle to endAngle (degrees) as a signed bulge.
func ArcBulge(startAngle, endAngle float64) float64 {
	included := NormalizeAngle(endAngle - startAngle)
	return math.Tan(DegToRad(included) / 4)
}
