package draft

import "errors"

// SmoothType selects the curve fitted through a polyline's vertices.
type SmoothType int

const (
	// SmoothNone draws straight segments and bulge arcs.
	SmoothNone SmoothType = iota
	// SmoothQuadratic fits a quadratic B-spline through the vertices.
	SmoothQuadratic
	// SmoothCubic fits a cubic B-spline through the vertices.
	SmoothCubic
)

// degree returns the B-spline degree of the smoothing, or 0 for none.
func (s SmoothType) degree() int {
	switch s {
	case SmoothQuadratic:
		return 2
	case SmoothCubic:
		return 3
	default:
		return 0
	}
}

// PolylineVertex is one vertex of a 2D polyline: a local-plane position, the
// bulge of the segment leaving it, and that segment's start and end widths.
type PolylineVertex struct {
	Position Vector2
	Bulge    float64
	// StartWidth and EndWidth taper the segment leaving this vertex. They
	// cannot be negative.
	StartWidth float64
	EndWidth   float64
}

// Polyline2D is a polyline in the plane defined by its normal, at the given
// elevation. Segments between consecutive vertices are straight when the
// leading vertex has zero bulge and circular arcs otherwise.
type Polyline2D struct {
	entity
	Vertexes  []PolylineVertex
	IsClosed  bool
	Smooth    SmoothType
	Elevation float64
	Thickness float64
}

// NewPolyline2D returns a polyline through the given OCS vertices, which must
// number at least two. Negative segment widths are rejected.
func NewPolyline2D(vertexes []PolylineVertex, closed bool) (*Polyline2D, error) {
	if len(vertexes) < 2 {
		return nil, errors.New("a polyline requires at least two vertexes")
	}
	for _, v := range vertexes {
		if v.StartWidth < 0 || v.EndWidth < 0 {
			return nil, errors.New("polyline segment widths cannot be negative")
		}
	}
	return &Polyline2D{
		entity:   newEntity(),
		Vertexes: vertexes,
		IsClosed: closed,
	}, nil
}

// TransformBy applies an affine map to the polyline. Vertex positions
// transform individually; segment widths are scaled by the map's single
// uniform reference scale; when the map reflects the plane every bulge
// changes sign so arcs keep bulging to the same geometric side.
func (p *Polyline2D) TransformBy(m Matrix3, translation Vector3) error {
	newNormal := transformedNormal(m, p.normal)
	transOW := ArbitraryAxis(p.normal)
	transWO := ArbitraryAxis(newNormal).Transpose()
	scale := referenceScale(m, p.normal, newNormal)
	mirrored := m.Determinant() < 0

	elevation := p.Elevation
	for i := range p.Vertexes {
		v := transformOCSPoint(m, translation, transOW, transWO,
			V3FromXY(p.Vertexes[i].Position, p.Elevation))
		p.Vertexes[i].Position = v.XY()
		elevation = v.Z
		p.Vertexes[i].StartWidth *= scale
		p.Vertexes[i].EndWidth *= scale
		if mirrored {
			p.Vertexes[i].Bulge = -p.Vertexes[i].Bulge
		}
	}
	p.Elevation = elevation
	p.normal = newNormal
	return nil
}

// PolygonalVertices approximates the polyline in its local plane. Unsmoothed
// polylines sample each bulge arc with precision points and keep straight
// segments exact; smoothed polylines evaluate the fitted B-spline with
// precision samples. precision must be at least 2.
func (p *Polyline2D) PolygonalVertices(precision int) ([]Vector2, error) {
	if precision < 2 {
		return nil, ErrBadPrecision
	}
	if p.Smooth != SmoothNone {
		controls := make([]Vector3, len(p.Vertexes))
		for i, v := range p.Vertexes {
			controls[i] = V3FromXY(v.Position, 0)
		}
		degree := p.Smooth.degree()
		if len(controls) < degree+1 {
			return nil, ErrTooFewControls
		}
		sampled, err := NurbsEvaluate(controls, nil, nil, degree, p.IsClosed, p.IsClosed, precision)
		if err != nil {
			return nil, err
		}
		out := make([]Vector2, len(sampled))
		for i, v := range sampled {
			out[i] = v.XY()
		}
		return out, nil
	}

	var out []Vector2
	for i, seg := range p.segments() {
		start, end := p.Vertexes[seg[0]].Position, p.Vertexes[seg[1]].Position
		if i == 0 {
			out = append(out, start)
		}
		bulge := p.Vertexes[seg[0]].Bulge
		center, radius, startAngle, endAngle := BulgeArc(start, end, bulge)
		if radius == 0 {
			out = append(out, end)
			continue
		}
		sweep := NormalizeAngle(endAngle - startAngle)
		if sweep == 0 {
			sweep = 360
		}
		first, last := startAngle, sweep
		if bulge < 0 {
			// BulgeArc reports the counterclockwise arc; walk it backwards to
			// stay in traversal order.
			first, last = endAngle, -sweep
		}
		for k := 1; k <= precision; k++ {
			th := DegToRad(first + last*float64(k)/float64(precision))
			out = append(out, center.Add(V2FromAngle(th).Mul(radius)))
		}
	}
	return out, nil
}

// segments lists the vertex index pairs of the polyline's segments.
func (p *Polyline2D) segments() [][2]int {
	n := len(p.Vertexes)
	count := n - 1
	if p.IsClosed {
		count = n
	}
	segs := make([][2]int, count)
	for i := range segs {
		segs[i] = [2]int{i, (i + 1) % n}
	}
	return segs
}

// Explode decomposes the polyline into simpler entities: lines and arcs for
// an unsmoothed polyline, a single spline through the vertices for a smoothed
// one. A polyline with too few vertices to carry its smoothing decomposes as
// if unsmoothed. The produced entities are lifted into WCS.
func (p *Polyline2D) Explode() []Entity {
	frame := ArbitraryAxis(p.normal)
	lift := func(v Vector2) Vector3 {
		return frame.MulVec(V3FromXY(v, p.Elevation))
	}

	if p.Smooth != SmoothNone {
		controls := make([]Vector3, len(p.Vertexes))
		for i, v := range p.Vertexes {
			controls[i] = lift(v.Position)
		}
		if s, err := NewSpline(controls, p.Smooth.degree(), p.IsClosed); err == nil {
			s.entity = p.entity
			return []Entity{s}
		}
	}

	var out []Entity
	for _, seg := range p.segments() {
		start, end := p.Vertexes[seg[0]].Position, p.Vertexes[seg[1]].Position
		bulge := p.Vertexes[seg[0]].Bulge
		center, radius, startAngle, endAngle := BulgeArc(start, end, bulge)
		if radius == 0 {
			l := NewLine(lift(start), lift(end))
			l.entity = p.entity
			l.Thickness = p.Thickness
			out = append(out, l)
			continue
		}
		a := &Arc{
			entity:     p.entity,
			Center:     frame.MulVec(V3FromXY(center, p.Elevation)),
			radius:     radius,
			StartAngle: startAngle,
			EndAngle:   endAngle,
			Thickness:  p.Thickness,
		}
		out = append(out, a)
	}
	return out
}

// Polyline3D is a polyline through WCS points. It has no bulges or widths;
// its segments are straight unless smoothing fits a B-spline through the
// vertices.
type Polyline3D struct {
	entity
	Vertexes []Vector3
	IsClosed bool
	Smooth   SmoothType
}

// NewPolyline3D returns a polyline through the given WCS vertices, which must
// number at least two.
func NewPolyline3D(vertexes []Vector3, closed bool) (*Polyline3D, error) {
	if len(vertexes) < 2 {
		return nil, errors.New("a polyline requires at least two vertexes")
	}
	return &Polyline3D{
		entity:   newEntity(),
		Vertexes: vertexes,
		IsClosed: closed,
	}, nil
}

// TransformBy applies an affine map to every vertex.
func (p *Polyline3D) TransformBy(m Matrix3, translation Vector3) error {
	for i := range p.Vertexes {
		p.Vertexes[i] = m.MulVec(p.Vertexes[i]).Add(translation)
	}
	p.normal = transformedNormal(m, p.normal)
	return nil
}

// SampledVertices returns the polyline's WCS points, evaluating the fitted
// B-spline with precision samples when the polyline is smoothed.
func (p *Polyline3D) SampledVertices(precision int) ([]Vector3, error) {
	if p.Smooth == SmoothNone {
		out := make([]Vector3, len(p.Vertexes))
		copy(out, p.Vertexes)
		return out, nil
	}
	degree := p.Smooth.degree()
	if len(p.Vertexes) < degree+1 {
		return nil, ErrTooFewControls
	}
	return NurbsEvaluate(p.Vertexes, nil, nil, degree, p.IsClosed, p.IsClosed, precision)
}

// Explode decomposes the polyline into lines, or into a single spline when
// smoothed. A polyline with too few vertices to carry its smoothing decomposes
// into lines.
func (p *Polyline3D) Explode() []Entity {
	if p.Smooth != SmoothNone {
		if s, err := NewSpline(p.Vertexes, p.Smooth.degree(), p.IsClosed); err == nil {
			s.entity = p.entity
			return []Entity{s}
		}
	}
	var out []Entity
	n := len(p.Vertexes)
	count := n - 1
	if p.IsClosed {
		count = n
	}
	for i := 0; i < count; i++ {
		l := NewLine(p.Vertexes[i], p.Vertexes[(i+1)%n])
		l.entity = p.entity
		out = append(out, l)
	}
	return out
}
