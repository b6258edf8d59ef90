package draft

import "errors"

// MLineStyleElement is one parallel element of a multiline style: a signed
// offset from the multiline's spine plus the element's color.
type MLineStyleElement struct {
	Offset float64
	Color  Color
}

// MLineStyle describes the parallel elements a multiline draws.
type MLineStyle struct {
	Name     string
	Elements []MLineStyleElement
}

// DefaultMLineStyle returns the stock two-element "Standard" multiline style.
func DefaultMLineStyle() *MLineStyle {
	return &MLineStyle{
		Name: "Standard",
		Elements: []MLineStyleElement{
			{Offset: 0.5, Color: ColorByLayer()},
			{Offset: -0.5, Color: ColorByLayer()},
		},
	}
}

// MLineVertex is one vertex of a multiline's spine, with the directions used
// to miter the parallel elements through it.
type MLineVertex struct {
	Position Vector2
	// Direction points along the segment leaving the vertex; Miter points
	// along the joint's bisector. Both are unit vectors in the OCS plane.
	Direction Vector2
	Miter     Vector2
}

// MLine draws several parallel lines offset from a single spine.
type MLine struct {
	entity
	Vertexes  []MLineVertex
	Style     *MLineStyle
	IsClosed  bool
	Elevation float64
	scale     float64
}

// NewMLine returns a multiline along the given OCS spine points with the
// stock style and the given element scale, which must be non-zero.
func NewMLine(spine []Vector2, scale float64, closed bool) (*MLine, error) {
	if len(spine) < 2 {
		return nil, errors.New("a multiline requires at least two vertexes")
	}
	if isZero(scale) {
		return nil, errors.New("multiline scale cannot be zero")
	}
	ml := &MLine{
		entity:   newEntity(),
		Style:    DefaultMLineStyle(),
		IsClosed: closed,
		scale:    scale,
	}
	ml.Vertexes = make([]MLineVertex, len(spine))
	for i, p := range spine {
		ml.Vertexes[i].Position = p
	}
	ml.updateJoints()
	return ml, nil
}

// Scale returns the multiline's element scale.
func (ml *MLine) Scale() float64 { return ml.scale }

// updateJoints recomputes each vertex's segment direction and miter bisector
// from the spine positions.
func (ml *MLine) updateJoints() {
	n := len(ml.Vertexes)
	for i := range ml.Vertexes {
		next := ml.Vertexes[(i+1)%n].Position
		prev := ml.Vertexes[(i-1+n)%n].Position
		cur := ml.Vertexes[i].Position

		var dir Vector2
		if i == n-1 && !ml.IsClosed {
			dir = cur.Sub(prev)
		} else {
			dir = next.Sub(cur)
		}
		if dir.IsZero() {
			dir = V2(1, 0)
		}
		dir = dir.Normalize()
		ml.Vertexes[i].Direction = dir

		miter := dir.Perpendicular()
		if (i > 0 || ml.IsClosed) && (i < n-1 || ml.IsClosed) {
			in := cur.Sub(prev)
			if !in.IsZero() {
				bisector := in.Normalize().Add(dir).Perpendicular()
				if !bisector.IsZero() {
					miter = bisector.Normalize()
				}
			}
		}
		ml.Vertexes[i].Miter = miter
	}
}

// ElementVertices returns the offset spine of one style element, mitered
// through the joints.
func (ml *MLine) ElementVertices(element int) ([]Vector2, error) {
	if element < 0 || element >= len(ml.Style.Elements) {
		return nil, errors.New("multiline element index out of range")
	}
	offset := ml.Style.Elements[element].Offset * ml.scale
	out := make([]Vector2, len(ml.Vertexes))
	for i, v := range ml.Vertexes {
		// Project the offset along the miter so joints stay aligned.
		cos := v.Miter.Dot(v.Direction.Perpendicular())
		widen := offset
		if !isZero(cos) {
			widen = offset / cos
		}
		out[i] = v.Position.Add(v.Miter.Mul(widen))
	}
	return out, nil
}

// TransformBy applies an affine map to the multiline. Spine positions
// transform per vertex; the element scale and all per-vertex offsets are
// scaled once by the map's uniform reference scale; joint directions are
// recomputed from the new spine.
func (ml *MLine) TransformBy(m Matrix3, translation Vector3) error {
	newNormal := transformedNormal(m, ml.normal)
	transOW := ArbitraryAxis(ml.normal)
	transWO := ArbitraryAxis(newNormal).Transpose()
	scale := referenceScale(m, ml.normal, newNormal)

	elevation := ml.Elevation
	for i := range ml.Vertexes {
		v := transformOCSPoint(m, translation, transOW, transWO,
			V3FromXY(ml.Vertexes[i].Position, ml.Elevation))
		ml.Vertexes[i].Position = v.XY()
		elevation = v.Z
	}
	ml.scale *= scale
	ml.Elevation = elevation
	ml.normal = newNormal
	ml.updateJoints()
	return nil
}
