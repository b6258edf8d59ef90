package draft

// Tolerance is a geometric tolerance frame: a feature control block anchored
// at a position in the plane defined by its normal.
type Tolerance struct {
	entity
	// Value is the tolerance frame's encoded content.
	Value string
	// Position is the frame's anchor in WCS.
	Position Vector3
	// Rotation is in degrees, measured counterclockwise in the OCS plane.
	Rotation  float64
	Style     *DimensionStyle
	Overrides DimStyleOverrides
}

// NewTolerance returns a tolerance frame with the given encoded value at a
// WCS position.
func NewTolerance(value string, position Vector3) *Tolerance {
	return &Tolerance{
		entity:    newEntity(),
		Value:     value,
		Position:  position,
		Style:     DefaultDimensionStyle(),
		Overrides: DimStyleOverrides{},
	}
}

// TextHeight resolves the frame's text height, scaled by the overall
// dimension scale.
func (t *Tolerance) TextHeight() float64 {
	return resolveDimFloat(t.Style, t.Overrides, DimTextHeight) *
		resolveDimFloat(t.Style, t.Overrides, DimScale)
}

// TransformBy applies an affine map to the tolerance frame, re-deriving its
// rotation from the transformed local X reference direction.
func (t *Tolerance) TransformBy(m Matrix3, translation Vector3) error {
	newNormal := transformedNormal(m, t.normal)
	transOW := ArbitraryAxis(t.normal)
	transWO := ArbitraryAxis(newNormal).Transpose()

	dir := transformOCSDirection(m, transOW, transWO,
		V3FromXY(V2FromAngle(DegToRad(t.Rotation)), 0))

	t.Rotation = NormalizeAngle(RadToDeg(dir.XY().Angle()))
	t.Position = m.MulVec(t.Position).Add(translation)
	t.normal = newNormal
	return nil
}
