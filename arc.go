package draft

// Arc is a circular arc running counterclockwise from StartAngle to EndAngle
// in the plane defined by its normal.
type Arc struct {
	entity
	// Center is the arc's center in WCS.
	Center Vector3
	radius float64
	// StartAngle and EndAngle are in degrees, measured counterclockwise from
	// the OCS x axis.
	StartAngle float64
	EndAngle   float64
	Thickness  float64
}

// NewArc returns an arc with the given WCS center, radius and angles in
// degrees. The radius must be positive.
func NewArc(center Vector3, radius, startAngle, endAngle float64) (*Arc, error) {
	a := &Arc{
		entity:     newEntity(),
		Center:     center,
		StartAngle: NormalizeAngle(startAngle),
		EndAngle:   NormalizeAngle(endAngle),
	}
	if err := a.SetRadius(radius); err != nil {
		return nil, err
	}
	return a, nil
}

// Radius returns the arc's radius.
func (a *Arc) Radius() float64 {
	return a.radius
}

// SetRadius assigns the arc's radius, which must be positive.
func (a *Arc) SetRadius(radius float64) error {
	if radius <= 0 {
		return ErrNonPositive
	}
	a.radius = radius
	return nil
}

// IncludedAngle returns the arc's sweep in degrees, in (0°, 360°].
func (a *Arc) IncludedAngle() float64 {
	included := NormalizeAngle(a.EndAngle - a.StartAngle)
	if included == 0 {
		return 360
	}
	return included
}

// TransformBy applies an affine map to the arc. The radius and both angles
// are re-derived from the transformed start and end reference directions;
// when the map reflects the arc's plane the angles are swapped so the arc
// still runs counterclockwise.
func (a *Arc) TransformBy(m Matrix3, translation Vector3) error {
	newNormal := transformedNormal(m, a.normal)
	transOW := ArbitraryAxis(a.normal)
	transWO := ArbitraryAxis(newNormal).Transpose()

	start := V2FromAngle(DegToRad(a.StartAngle)).Mul(a.radius)
	end := V2FromAngle(DegToRad(a.EndAngle)).Mul(a.radius)
	vs := transformOCSDirection(m, transOW, transWO, V3FromXY(start, 0)).XY()
	ve := transformOCSDirection(m, transOW, transWO, V3FromXY(end, 0)).XY()

	newRadius := vs.Hypot()
	if isZero(newRadius) {
		newRadius = Epsilon
	}
	startAngle := NormalizeAngle(RadToDeg(vs.Angle()))
	endAngle := NormalizeAngle(RadToDeg(ve.Angle()))
	if m.Determinant() < 0 {
		startAngle, endAngle = endAngle, startAngle
	}

	a.Center = m.MulVec(a.Center).Add(translation)
	a.radius = newRadius
	a.StartAngle = startAngle
	a.EndAngle = endAngle
	a.normal = newNormal
	return nil
}

// PolygonalVertices approximates the arc with precision vertices in its OCS
// plane, from the start point to the exact end point. precision must be at
// least 2.
func (a *Arc) PolygonalVertices(precision int) ([]Vector2, error) {
	if precision < 2 {
		return nil, ErrBadPrecision
	}
	center := ArbitraryAxis(a.normal).Transpose().MulVec(a.Center).XY()
	start := DegToRad(a.StartAngle)
	delta := DegToRad(a.IncludedAngle()) / float64(precision-1)
	out := make([]Vector2, precision)
	for i := range out {
		out[i] = center.Add(V2FromAngle(start + float64(i)*delta).Mul(a.radius))
	}
	return out, nil
}

// midAngle returns the angle halfway along the arc, in degrees.
func (a *Arc) midAngle() float64 {
	return NormalizeAngle(a.StartAngle + a.IncludedAngle()/2)
}

// Explode splits the arc into two half arcs.
func (a *Arc) Explode() []Entity {
	mid := a.midAngle()
	first := *a
	first.EndAngle = mid
	second := *a
	second.StartAngle = mid
	return []Entity{&first, &second}
}
