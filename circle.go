package draft

import (
	"errors"
	"math"
)

// ErrBadPolygonPrecision reports a precision too small to trace a polygon
// around a full closed curve.
var ErrBadPolygonPrecision = errors.New("a closed curve polygon requires at least 3 vertices")

// Circle is a full circle in the plane defined by its normal.
type Circle struct {
	entity
	// Center is the circle's center in WCS.
	Center    Vector3
	radius    float64
	Thickness float64
}

// NewCircle returns a circle with the given WCS center and radius. The radius
// must be positive.
func NewCircle(center Vector3, radius float64) (*Circle, error) {
	c := &Circle{entity: newEntity(), Center: center}
	if err := c.SetRadius(radius); err != nil {
		return nil, err
	}
	return c, nil
}

// Radius returns the circle's radius.
func (c *Circle) Radius() float64 {
	return c.radius
}

// SetRadius assigns the circle's radius, which must be positive.
func (c *Circle) SetRadius(radius float64) error {
	if radius <= 0 {
		return ErrNonPositive
	}
	c.radius = radius
	return nil
}

// TransformBy applies an affine map to the circle. The radius is re-derived
// from a transformed radius reference direction; a radius collapsed to zero is
// substituted with a small positive epsilon, never zero.
func (c *Circle) TransformBy(m Matrix3, translation Vector3) error {
	newNormal := transformedNormal(m, c.normal)
	transOW := ArbitraryAxis(c.normal)
	transWO := ArbitraryAxis(newNormal).Transpose()

	radiusDir := transformOCSDirection(m, transOW, transWO, UnitX.Mul(c.radius))
	newRadius := radiusDir.Hypot()
	if isZero(newRadius) {
		newRadius = Epsilon
	}

	c.Center = m.MulVec(c.Center).Add(translation)
	c.radius = newRadius
	c.normal = newNormal
	return nil
}

// PolygonalVertices approximates the circle with precision vertices in its
// OCS plane, counterclockwise from angle zero. The caller connects the last
// vertex back to the first. precision must be at least 3.
func (c *Circle) PolygonalVertices(precision int) ([]Vector2, error) {
	if precision < 3 {
		return nil, ErrBadPolygonPrecision
	}
	center := ArbitraryAxis(c.normal).Transpose().MulVec(c.Center).XY()
	out := make([]Vector2, precision)
	delta := 2 * math.Pi / float64(precision)
	for i := range out {
		out[i] = center.Add(V2FromAngle(float64(i) * delta).Mul(c.radius))
	}
	return out, nil
}

// Explode decomposes the circle into two half arcs.
func (c *Circle) Explode() []Entity {
	half := func(start, end float64) *Arc {
		a := &Arc{
			entity:     c.entity,
			Center:     c.Center,
			radius:     c.radius,
			StartAngle: start,
			EndAngle:   end,
			Thickness:  c.Thickness,
		}
		return a
	}
	return []Entity{half(0, 180), half(180, 360)}
}
