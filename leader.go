package draft

import "errors"

// Leader is an annotation pointer: an arrowed polyline from a feature to an
// annotation, in the plane defined by its normal.
type Leader struct {
	entity
	// Vertexes is the leader's path in the OCS plane, starting at the arrow.
	Vertexes []Vector2
	// Offset displaces the attached annotation from the last vertex.
	Offset    Vector2
	Elevation float64
	HasArrow  bool
	Style     *DimensionStyle
	Overrides DimStyleOverrides
	// Annotation is the id of the attached annotation entity, resolved
	// through a [ReactorRegistry]; empty when the leader is bare.
	Annotation string
}

// NewLeader returns a leader along the given OCS path, which must have at
// least two vertexes.
func NewLeader(vertexes []Vector2) (*Leader, error) {
	if len(vertexes) < 2 {
		return nil, errors.New("a leader requires at least two vertexes")
	}
	return &Leader{
		entity:    newEntity(),
		Vertexes:  vertexes,
		HasArrow:  true,
		Style:     DefaultDimensionStyle(),
		Overrides: DimStyleOverrides{},
	}, nil
}

// ArrowSize resolves the leader's arrow head length, scaled by the overall
// dimension scale.
func (l *Leader) ArrowSize() float64 {
	return resolveDimFloat(l.Style, l.Overrides, DimArrowSize) *
		resolveDimFloat(l.Style, l.Overrides, DimScale)
}

// TextOffset resolves the gap between the leader's hook line and its
// annotation, scaled by the overall dimension scale.
func (l *Leader) TextOffset() float64 {
	return resolveDimFloat(l.Style, l.Overrides, DimTextOffset) *
		resolveDimFloat(l.Style, l.Overrides, DimScale)
}

// TransformBy applies an affine map to the leader. Path vertices transform
// individually; the annotation offset is a local displacement and transforms
// as a direction.
func (l *Leader) TransformBy(m Matrix3, translation Vector3) error {
	newNormal := transformedNormal(m, l.normal)
	transOW := ArbitraryAxis(l.normal)
	transWO := ArbitraryAxis(newNormal).Transpose()

	elevation := l.Elevation
	for i := range l.Vertexes {
		v := transformOCSPoint(m, translation, transOW, transWO,
			V3FromXY(l.Vertexes[i], l.Elevation))
		l.Vertexes[i] = v.XY()
		elevation = v.Z
	}
	l.Offset = transformOCSDirection(m, transOW, transWO, V3FromXY(l.Offset, 0)).XY()
	l.Elevation = elevation
	l.normal = newNormal
	return nil
}
