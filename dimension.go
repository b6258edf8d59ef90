package draft

import (
	"math"
	"strconv"
)

// dimension carries the state common to all dimension entities. Definition
// points live in the entity's OCS plane at the given elevation; the style and
// per-entity overrides supply every scalar default.
type dimension struct {
	entity
	Style     *DimensionStyle
	Overrides DimStyleOverrides
	// Elevation is the OCS z coordinate of the dimension's plane.
	Elevation float64
	// TextRotation is added to the computed text angle, in degrees.
	TextRotation float64
}

func newDimension() dimension {
	return dimension{
		entity:    newEntity(),
		Style:     DefaultDimensionStyle(),
		Overrides: DimStyleOverrides{},
	}
}

// TextOffset resolves the gap between dimension line and text, scaled by the
// overall dimension scale.
func (d *dimension) TextOffset() float64 {
	return resolveDimFloat(d.Style, d.Overrides, DimTextOffset) *
		resolveDimFloat(d.Style, d.Overrides, DimScale)
}

// ArrowSize resolves the arrow head length, scaled by the overall dimension
// scale.
func (d *dimension) ArrowSize() float64 {
	return resolveDimFloat(d.Style, d.Overrides, DimArrowSize) *
		resolveDimFloat(d.Style, d.Overrides, DimScale)
}

// formatMeasurement renders a measurement with the style's decimal places.
func (d *dimension) formatMeasurement(v float64) string {
	return strconv.FormatFloat(v, 'f', resolveDimInt(d.Style, d.Overrides, DimDecimalPlaces), 64)
}

// transformLocals pushes the dimension's definition points through an affine
// map: lift from the old OCS at the current elevation, apply the map, project
// into the new OCS. It returns the new points, the new elevation and the new
// normal without mutating the dimension; callers commit the results once
// their own validation passes.
func (d *dimension) transformLocals(m Matrix3, translation Vector3, pts ...Vector2) (out []Vector2, elevation float64, newNormal Vector3) {
	newNormal = transformedNormal(m, d.normal)
	transOW := ArbitraryAxis(d.normal)
	transWO := ArbitraryAxis(newNormal).Transpose()
	out = make([]Vector2, len(pts))
	elevation = d.Elevation
	for i, p := range pts {
		v := transformOCSPoint(m, translation, transOW, transWO, V3FromXY(p, d.Elevation))
		out[i] = v.XY()
		elevation = v.Z
	}
	return out, elevation, newNormal
}

// AlignedDimension measures the distance between two reference points, its
// dimension line parallel to the reference line.
type AlignedDimension struct {
	dimension
	Ref1 Vector2
	Ref2 Vector2
	// Offset is the distance from the reference line to the dimension line.
	Offset float64
}

// NewAlignedDimension returns an aligned dimension between two OCS reference
// points with the given dimension line offset.
func NewAlignedDimension(ref1, ref2 Vector2, offset float64) *AlignedDimension {
	return &AlignedDimension{dimension: newDimension(), Ref1: ref1, Ref2: ref2, Offset: offset}
}

// Measurement returns the measured distance.
func (d *AlignedDimension) Measurement() float64 {
	return d.Ref1.Distance(d.Ref2)
}

// Text returns the measurement formatted per the resolved style.
func (d *AlignedDimension) Text() string {
	return d.formatMeasurement(d.Measurement())
}

// TransformBy applies an affine map to the dimension. The offset is scaled by
// the map's uniform reference scale in the dimension's plane.
func (d *AlignedDimension) TransformBy(m Matrix3, translation Vector3) error {
	pts, elevation, newNormal := d.transformLocals(m, translation, d.Ref1, d.Ref2)
	d.Offset *= referenceScale(m, d.normal, newNormal)
	d.Ref1, d.Ref2 = pts[0], pts[1]
	d.Elevation = elevation
	d.normal = newNormal
	return nil
}

// LinearDimension measures the projection of the segment between two
// reference points onto a direction given by its rotation.
type LinearDimension struct {
	dimension
	Ref1 Vector2
	Ref2 Vector2
	// Rotation is the angle of the dimension line in degrees.
	Rotation float64
	Offset   float64
}

// NewLinearDimension returns a rotated linear dimension between two OCS
// reference points.
func NewLinearDimension(ref1, ref2 Vector2, rotation, offset float64) *LinearDimension {
	return &LinearDimension{
		dimension: newDimension(),
		Ref1:      ref1,
		Ref2:      ref2,
		Rotation:  NormalizeAngle(rotation),
		Offset:    offset,
	}
}

// Measurement returns the measured projected distance.
func (d *LinearDimension) Measurement() float64 {
	dir := V2FromAngle(DegToRad(d.Rotation))
	return math.Abs(d.Ref2.Sub(d.Ref1).Dot(dir))
}

// Text returns the measurement formatted per the resolved style.
func (d *LinearDimension) Text() string {
	return d.formatMeasurement(d.Measurement())
}

// TransformBy applies an affine map to the dimension, re-deriving the
// dimension line's rotation from its transformed direction.
func (d *LinearDimension) TransformBy(m Matrix3, translation Vector3) error {
	newNormal := transformedNormal(m, d.normal)
	transOW := ArbitraryAxis(d.normal)
	transWO := ArbitraryAxis(newNormal).Transpose()

	dir := transformOCSDirection(m, transOW, transWO, V3FromXY(V2FromAngle(DegToRad(d.Rotation)), 0))

	pts, elevation, _ := d.transformLocals(m, translation, d.Ref1, d.Ref2)
	d.Offset *= referenceScale(m, d.normal, newNormal)
	d.Ref1, d.Ref2 = pts[0], pts[1]
	d.Rotation = NormalizeAngle(RadToDeg(dir.XY().Angle()))
	d.Elevation = elevation
	d.normal = newNormal
	return nil
}

// RadialDimension measures the radius of an arc or circle from its center to
// a point on the curve.
type RadialDimension struct {
	dimension
	Center   Vector2
	RefPoint Vector2
}

// NewRadialDimension returns a radial dimension from an OCS center to a point
// on the measured curve.
func NewRadialDimension(center, refPoint Vector2) *RadialDimension {
	return &RadialDimension{dimension: newDimension(), Center: center, RefPoint: refPoint}
}

// Measurement returns the measured radius.
func (d *RadialDimension) Measurement() float64 {
	return d.Center.Distance(d.RefPoint)
}

// Text returns the measurement formatted per the resolved style.
func (d *RadialDimension) Text() string {
	return "R" + d.formatMeasurement(d.Measurement())
}

// TransformBy applies an affine map to the dimension.
func (d *RadialDimension) TransformBy(m Matrix3, translation Vector3) error {
	pts, elevation, newNormal := d.transformLocals(m, translation, d.Center, d.RefPoint)
	d.Center, d.RefPoint = pts[0], pts[1]
	d.Elevation = elevation
	d.normal = newNormal
	return nil
}

// DiametricDimension measures the diameter of an arc or circle between two
// opposite points on the curve.
type DiametricDimension struct {
	dimension
	Center   Vector2
	RefPoint Vector2
}

// NewDiametricDimension returns a diametric dimension from an OCS center to a
// point on the measured curve.
func NewDiametricDimension(center, refPoint Vector2) *DiametricDimension {
	return &DiametricDimension{dimension: newDimension(), Center: center, RefPoint: refPoint}
}

// Measurement returns the measured diameter.
func (d *DiametricDimension) Measurement() float64 {
	return 2 * d.Center.Distance(d.RefPoint)
}

// Text returns the measurement formatted per the resolved style.
func (d *DiametricDimension) Text() string {
	return "⌀" + d.formatMeasurement(d.Measurement())
}

// TransformBy applies an affine map to the dimension.
func (d *DiametricDimension) TransformBy(m Matrix3, translation Vector3) error {
	pts, elevation, newNormal := d.transformLocals(m, translation, d.Center, d.RefPoint)
	d.Center, d.RefPoint = pts[0], pts[1]
	d.Elevation = elevation
	d.normal = newNormal
	return nil
}

// OrdinateAxis selects which coordinate an ordinate dimension measures.
type OrdinateAxis int

const (
	OrdinateX OrdinateAxis = iota
	OrdinateY
)

// OrdinateDimension measures one coordinate of a feature point relative to an
// origin.
type OrdinateDimension struct {
	dimension
	Origin       Vector2
	FeaturePoint Vector2
	LeaderEnd    Vector2
	Axis         OrdinateAxis
}

// NewOrdinateDimension returns an ordinate dimension measuring the given axis
// of an OCS feature point relative to an origin.
func NewOrdinateDimension(origin, featurePoint, leaderEnd Vector2, axis OrdinateAxis) *OrdinateDimension {
	return &OrdinateDimension{
		dimension:    newDimension(),
		Origin:       origin,
		FeaturePoint: featurePoint,
		LeaderEnd:    leaderEnd,
		Axis:         axis,
	}
}

// Measurement returns the measured coordinate delta.
func (d *OrdinateDimension) Measurement() float64 {
	delta := d.FeaturePoint.Sub(d.Origin)
	if d.Axis == OrdinateX {
		return delta.X
	}
	return delta.Y
}

// Text returns the measurement formatted per the resolved style.
func (d *OrdinateDimension) Text() string {
	return d.formatMeasurement(d.Measurement())
}

// TransformBy applies an affine map to the dimension.
func (d *OrdinateDimension) TransformBy(m Matrix3, translation Vector3) error {
	pts, elevation, newNormal := d.transformLocals(m, translation, d.Origin, d.FeaturePoint, d.LeaderEnd)
	d.Origin, d.FeaturePoint, d.LeaderEnd = pts[0], pts[1], pts[2]
	d.Elevation = elevation
	d.normal = newNormal
	return nil
}

// Angular2LineDimension measures the angle between two lines.
type Angular2LineDimension struct {
	dimension
	StartFirst  Vector2
	EndFirst    Vector2
	StartSecond Vector2
	EndSecond   Vector2
	Offset      float64
}

// NewAngular2LineDimension returns an angular dimension between the lines
// (startFirst, endFirst) and (startSecond, endSecond), given in OCS. The two
// lines must not be parallel.
func NewAngular2LineDimension(startFirst, endFirst, startSecond, endSecond Vector2, offset float64) (*Angular2LineDimension, error) {
	if isZero(endFirst.Sub(startFirst).Cross(endSecond.Sub(startSecond))) {
		return nil, ErrDegenerateTransform
	}
	return &Angular2LineDimension{
		dimension:   newDimension(),
		StartFirst:  startFirst,
		EndFirst:    endFirst,
		StartSecond: startSecond,
		EndSecond:   endSecond,
		Offset:      offset,
	}, nil
}

// Measurement returns the measured angle in degrees.
func (d *Angular2LineDimension) Measurement() float64 {
	first := d.EndFirst.Sub(d.StartFirst)
	second := d.EndSecond.Sub(d.StartSecond)
	return NormalizeAngle(RadToDeg(second.Angle() - first.Angle()))
}

// Text returns the measurement formatted per the resolved style.
func (d *Angular2LineDimension) Text() string {
	return d.formatMeasurement(d.Measurement()) + "°"
}

// TransformBy applies an affine map to the dimension. When the map collapses
// the two measured lines onto parallel directions the transform is rejected
// and the dimension is left unchanged.
func (d *Angular2LineDimension) TransformBy(m Matrix3, translation Vector3) error {
	pts, elevation, newNormal := d.transformLocals(m, translation,
		d.StartFirst, d.EndFirst, d.StartSecond, d.EndSecond)
	if isZero(pts[1].Sub(pts[0]).Cross(pts[3].Sub(pts[2]))) {
		return ErrDegenerateTransform
	}
	d.Offset *= referenceScale(m, d.normal, newNormal)
	d.StartFirst, d.EndFirst, d.StartSecond, d.EndSecond = pts[0], pts[1], pts[2], pts[3]
	d.Elevation = elevation
	d.normal = newNormal
	return nil
}

// Angular3PointDimension measures the angle at a center point between two
// reference points.
type Angular3PointDimension struct {
	dimension
	Center Vector2
	Start  Vector2
	End    Vector2
	Offset float64
}

// NewAngular3PointDimension returns an angular dimension of the angle swept
// at an OCS center from a start to an end reference point.
func NewAngular3PointDimension(center, start, end Vector2, offset float64) *Angular3PointDimension {
	return &Angular3PointDimension{
		dimension: newDimension(),
		Center:    center,
		Start:     start,
		End:       end,
		Offset:    offset,
	}
}

// Measurement returns the measured angle in degrees.
func (d *Angular3PointDimension) Measurement() float64 {
	return NormalizeAngle(RadToDeg(d.End.Sub(d.Center).Angle() - d.Start.Sub(d.Center).Angle()))
}

// Text returns the measurement formatted per the resolved style.
func (d *Angular3PointDimension) Text() string {
	return d.formatMeasurement(d.Measurement()) + "°"
}

// TransformBy applies an affine map to the dimension. When the map reflects
// the plane the start and end points swap to keep the measured sweep
// counterclockwise.
func (d *Angular3PointDimension) TransformBy(m Matrix3, translation Vector3) error {
	pts, elevation, newNormal := d.transformLocals(m, translation, d.Center, d.Start, d.End)
	start, end := pts[1], pts[2]
	if m.Determinant() < 0 {
		start, end = end, start
	}
	d.Offset *= referenceScale(m, d.normal, newNormal)
	d.Center, d.Start, d.End = pts[0], start, end
	d.Elevation = elevation
	d.normal = newNormal
	return nil
}

// ArcLengthDimension measures the length of a circular arc.
type ArcLengthDimension struct {
	dimension
	Center Vector2
	radius float64
	// StartAngle and EndAngle are in degrees, counterclockwise.
	StartAngle float64
	EndAngle   float64
	Offset     float64
}

// NewArcLengthDimension returns an arc length dimension over the given OCS
// arc. The radius must be positive.
func NewArcLengthDimension(center Vector2, radius, startAngle, endAngle, offset float64) (*ArcLengthDimension, error) {
	if radius <= 0 {
		return nil, ErrNonPositive
	}
	return &ArcLengthDimension{
		dimension:  newDimension(),
		Center:     center,
		radius:     radius,
		StartAngle: NormalizeAngle(startAngle),
		EndAngle:   NormalizeAngle(endAngle),
		Offset:     offset,
	}, nil
}

// Radius returns the measured arc's radius.
func (d *ArcLengthDimension) Radius() float64 { return d.radius }

// Measurement returns the measured arc length.
func (d *ArcLengthDimension) Measurement() float64 {
	return d.radius * DegToRad(NormalizeAngle(d.EndAngle-d.StartAngle))
}

// Text returns the measurement formatted per the resolved style.
func (d *ArcLengthDimension) Text() string {
	return d.formatMeasurement(d.Measurement())
}

// TransformBy applies an affine map to the dimension, re-deriving the radius
// and both angles the way an arc does.
func (d *ArcLengthDimension) TransformBy(m Matrix3, translation Vector3) error {
	newNormal := transformedNormal(m, d.normal)
	transOW := ArbitraryAxis(d.normal)
	transWO := ArbitraryAxis(newNormal).Transpose()

	vs := transformOCSDirection(m, transOW, transWO,
		V3FromXY(V2FromAngle(DegToRad(d.StartAngle)).Mul(d.radius), 0)).XY()
	ve := transformOCSDirection(m, transOW, transWO,
		V3FromXY(V2FromAngle(DegToRad(d.EndAngle)).Mul(d.radius), 0)).XY()

	newRadius := vs.Hypot()
	if isZero(newRadius) {
		newRadius = Epsilon
	}
	startAngle := NormalizeAngle(RadToDeg(vs.Angle()))
	endAngle := NormalizeAngle(RadToDeg(ve.Angle()))
	if m.Determinant() < 0 {
		startAngle, endAngle = endAngle, startAngle
	}

	pts, elevation, _ := d.transformLocals(m, translation, d.Center)
	d.Offset *= referenceScale(m, d.normal, newNormal)
	d.Center = pts[0]
	d.radius = newRadius
	d.StartAngle = startAngle
	d.EndAngle = endAngle
	d.Elevation = elevation
	d.normal = newNormal
	return nil
}
