package draft

// Point is a point marker entity.
type Point struct {
	entity
	// Position is the marker's location in WCS.
	Position Vector3
	// Rotation is the marker's angle in degrees, measured counterclockwise in
	// its OCS plane.
	Rotation  float64
	Thickness float64
}

// NewPoint returns a point marker at the given WCS position.
func NewPoint(position Vector3) *Point {
	return &Point{
		entity:   newEntity(),
		Position: position,
	}
}

// TransformBy applies an affine map to the marker, re-deriving its rotation
// from the transformed local X reference direction.
func (p *Point) TransformBy(m Matrix3, translation Vector3) error {
	newNormal := transformedNormal(m, p.normal)
	transOW := ArbitraryAxis(p.normal)
	transWO := ArbitraryAxis(newNormal).Transpose()

	dir := V3FromXY(V2FromAngle(DegToRad(p.Rotation)), 0)
	dir = transformOCSDirection(m, transOW, transWO, dir)

	p.Rotation = NormalizeAngle(RadToDeg(dir.XY().Angle()))
	p.Position = m.MulVec(p.Position).Add(translation)
	p.normal = newNormal
	return nil
}
