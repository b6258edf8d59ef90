package draft

import (
	"errors"
	"math"
)

// Ellipse is a full ellipse or an elliptical arc in the plane defined by its
// normal.
type Ellipse struct {
	entity
	// Center is the ellipse's center in WCS.
	Center Vector3
	// majorAxis and minorAxis are the full axis lengths.
	majorAxis float64
	minorAxis float64
	// Rotation is the angle of the major axis in degrees, measured
	// counterclockwise from the OCS x axis.
	Rotation float64
	// StartAngle and EndAngle are parametric angles in degrees. A full
	// ellipse runs from 0 to 360.
	StartAngle float64
	EndAngle   float64
	Thickness  float64
}

// NewEllipse returns a full ellipse with the given WCS center and full axis
// lengths. Both lengths must be positive and the major axis cannot be shorter
// than the minor one.
func NewEllipse(center Vector3, majorAxis, minorAxis float64) (*Ellipse, error) {
	e := &Ellipse{
		entity:     newEntity(),
		Center:     center,
		StartAngle: 0,
		EndAngle:   360,
	}
	if err := e.SetAxes(majorAxis, minorAxis); err != nil {
		return nil, err
	}
	return e, nil
}

// MajorAxis returns the full length of the major axis.
func (e *Ellipse) MajorAxis() float64 { return e.majorAxis }

// MinorAxis returns the full length of the minor axis.
func (e *Ellipse) MinorAxis() float64 { return e.minorAxis }

// SetAxes assigns both axis lengths, validating their order and sign.
func (e *Ellipse) SetAxes(major, minor float64) error {
	if major <= 0 || minor <= 0 {
		return ErrNonPositive
	}
	if minor > major {
		return errors.New("ellipse minor axis cannot exceed the major axis")
	}
	e.majorAxis = major
	e.minorAxis = minor
	return nil
}

// IsFull reports whether the ellipse is complete rather than an arc.
func (e *Ellipse) IsFull() bool {
	return isZero(NormalizeAngle(e.EndAngle - e.StartAngle))
}

// pointAt returns the local OCS point at parametric angle th (radians),
// relative to the center.
func (e *Ellipse) pointAt(th float64) Vector2 {
	sin, cos := math.Sincos(th)
	return V2(0.5*e.majorAxis*cos, 0.5*e.minorAxis*sin).Rotate(DegToRad(e.Rotation))
}

// conjugateAxes recovers an ellipse's principal semi-axes and rotation from a
// pair of conjugate semi-diameters, the images of the original semi-axes
// under a linear map.
func conjugateAxes(f1, f2 Vector2) (major, minor, rotation float64) {
	// The parametric curve P(t) = f1·cos t + f2·sin t reaches its extremal
	// radii a quarter turn apart, at the t0 below (Rytz's construction).
	t0 := 0.5 * math.Atan2(2*f1.Dot(f2), f1.Hypot2()-f2.Hypot2())
	sin, cos := math.Sincos(t0)
	p1 := f1.Mul(cos).Add(f2.Mul(sin))
	p2 := f2.Mul(cos).Sub(f1.Mul(sin))
	if p1.Hypot2() >= p2.Hypot2() {
		return p1.Hypot(), p2.Hypot(), p1.Angle()
	}
	return p2.Hypot(), p1.Hypot(), p2.Angle()
}

// TransformBy applies an affine map to the ellipse. The axes and rotation are
// re-derived from the transformed conjugate semi-diameters; arc parameter
// angles are re-derived from the transformed start and end points and swapped
// when the map reflects the plane.
func (e *Ellipse) TransformBy(m Matrix3, translation Vector3) error {
	newNormal := transformedNormal(m, e.normal)
	transOW := ArbitraryAxis(e.normal)
	transWO := ArbitraryAxis(newNormal).Transpose()
	local2D := func(v Vector2) Vector2 {
		return transformOCSDirection(m, transOW, transWO, V3FromXY(v, 0)).XY()
	}

	rot := DegToRad(e.Rotation)
	f1 := local2D(V2FromAngle(rot).Mul(0.5 * e.majorAxis))
	f2 := local2D(V2FromAngle(rot + math.Pi/2).Mul(0.5 * e.minorAxis))

	semiMajor, semiMinor, newRot := conjugateAxes(f1, f2)
	if isZero(semiMajor) {
		semiMajor = Epsilon
	}
	if isZero(semiMinor) {
		semiMinor = Epsilon
	}

	startAngle, endAngle := e.StartAngle, e.EndAngle
	if !e.IsFull() {
		param := func(th float64) float64 {
			q := local2D(e.pointAt(DegToRad(th))).Rotate(-newRot)
			return NormalizeAngle(RadToDeg(math.Atan2(q.Y/semiMinor, q.X/semiMajor)))
		}
		startAngle = param(e.StartAngle)
		endAngle = param(e.EndAngle)
		if m.Determinant() < 0 {
			startAngle, endAngle = endAngle, startAngle
		}
	}

	e.Center = m.MulVec(e.Center).Add(translation)
	e.majorAxis = 2 * semiMajor
	e.minorAxis = 2 * semiMinor
	e.Rotation = NormalizeAngle(RadToDeg(newRot))
	e.StartAngle = startAngle
	e.EndAngle = endAngle
	e.normal = newNormal
	return nil
}

// PolygonalVertices approximates the ellipse with precision vertices in its
// OCS plane. Full ellipses are sampled counterclockwise with no closing
// duplicate; arcs include both the start and the end point. precision must be
// at least 2 for arcs and 3 for full ellipses.
func (e *Ellipse) PolygonalVertices(precision int) ([]Vector2, error) {
	full := e.IsFull()
	if precision < 2 {
		return nil, ErrBadPrecision
	}
	if full && precision < 3 {
		return nil, ErrBadPolygonPrecision
	}
	center := ArbitraryAxis(e.normal).Transpose().MulVec(e.Center).XY()
	start := DegToRad(e.StartAngle)
	var sweep, delta float64
	if full {
		sweep = 2 * math.Pi
		delta = sweep / float64(precision)
	} else {
		sweep = DegToRad(NormalizeAngle(e.EndAngle - e.StartAngle))
		delta = sweep / float64(precision-1)
	}
	out := make([]Vector2, precision)
	for i := range out {
		out[i] = center.Add(e.pointAt(start + float64(i)*delta))
	}
	return out, nil
}
