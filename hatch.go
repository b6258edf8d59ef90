package draft

import (
	"errors"
	"math"

	"github.com/rclancey/earcut"
)

// HatchEdge is one segment of a hatch boundary loop, described in the
// hatch's OCS plane. The concrete types are [EdgeLine], [EdgeArc],
// [EdgeEllipse], [EdgePolyline] and [EdgeSpline].
type HatchEdge interface {
	// tessellate approximates the edge with a point sequence, including both
	// end points for open edge kinds.
	tessellate(precision int) ([]Vector2, error)
	// transform pushes the edge through the hatch plane's 2D map. mirrored
	// tells arcs to swap their angles; scale is the map's uniform reference
	// scale for per-edge scalar distances.
	transform(local func(Vector2) Vector2, scale float64, mirrored bool)
}

// EdgeLine is a straight boundary segment.
type EdgeLine struct {
	Start Vector2
	End   Vector2
}

func (e *EdgeLine) tessellate(precision int) ([]Vector2, error) {
	return []Vector2{e.Start, e.End}, nil
}

func (e *EdgeLine) transform(local func(Vector2) Vector2, scale float64, mirrored bool) {
	e.Start = local(e.Start)
	e.End = local(e.End)
}

// EdgeArc is a circular boundary segment, counterclockwise from StartAngle
// to EndAngle (degrees).
type EdgeArc struct {
	Center     Vector2
	Radius     float64
	StartAngle float64
	EndAngle   float64
}

func (e *EdgeArc) tessellate(precision int) ([]Vector2, error) {
	if precision < 2 {
		return nil, ErrBadPrecision
	}
	sweep := NormalizeAngle(e.EndAngle - e.StartAngle)
	if sweep == 0 {
		sweep = 360
	}
	out := make([]Vector2, precision)
	for i := range out {
		th := DegToRad(e.StartAngle + sweep*float64(i)/float64(precision-1))
		out[i] = e.Center.Add(V2FromAngle(th).Mul(e.Radius))
	}
	return out, nil
}

func (e *EdgeArc) transform(local func(Vector2) Vector2, scale float64, mirrored bool) {
	start := local(e.Center.Add(V2FromAngle(DegToRad(e.StartAngle)).Mul(e.Radius)))
	end := local(e.Center.Add(V2FromAngle(DegToRad(e.EndAngle)).Mul(e.Radius)))
	e.Center = local(e.Center)
	e.Radius *= scale
	if isZero(e.Radius) {
		e.Radius = Epsilon
	}
	startAngle := NormalizeAngle(RadToDeg(start.Sub(e.Center).Angle()))
	endAngle := NormalizeAngle(RadToDeg(end.Sub(e.Center).Angle()))
	if mirrored {
		startAngle, endAngle = endAngle, startAngle
	}
	e.StartAngle, e.EndAngle = startAngle, endAngle
}

// EdgeEllipse is an elliptical boundary segment. Angles are parametric, in
// degrees; a full ellipse runs from 0 to 360.
type EdgeEllipse struct {
	Center Vector2
	// MajorAxis and MinorAxis are full axis lengths.
	MajorAxis float64
	MinorAxis float64
	// Rotation is the major axis angle in degrees.
	Rotation   float64
	StartAngle float64
	EndAngle   float64
}

func (e *EdgeEllipse) pointAt(th float64) Vector2 {
	sin, cos := math.Sincos(th)
	return V2(0.5*e.MajorAxis*cos, 0.5*e.MinorAxis*sin).Rotate(DegToRad(e.Rotation))
}

func (e *EdgeEllipse) tessellate(precision int) ([]Vector2, error) {
	if precision < 2 {
		return nil, ErrBadPrecision
	}
	sweep := NormalizeAngle(e.EndAngle - e.StartAngle)
	if sweep == 0 {
		sweep = 360
	}
	out := make([]Vector2, precision)
	for i := range out {
		th := DegToRad(e.StartAngle + sweep*float64(i)/float64(precision-1))
		out[i] = e.Center.Add(e.pointAt(th))
	}
	return out, nil
}

func (e *EdgeEllipse) transform(local func(Vector2) Vector2, scale float64, mirrored bool) {
	center := local(e.Center)
	rot := DegToRad(e.Rotation)
	f1 := local(e.Center.Add(V2FromAngle(rot).Mul(0.5 * e.MajorAxis))).Sub(center)
	f2 := local(e.Center.Add(V2FromAngle(rot + math.Pi/2).Mul(0.5 * e.MinorAxis))).Sub(center)
	semiMajor, semiMinor, newRot := conjugateAxes(f1, f2)
	if isZero(semiMajor) {
		semiMajor = Epsilon
	}
	if isZero(semiMinor) {
		semiMinor = Epsilon
	}
	startAngle, endAngle := e.StartAngle, e.EndAngle
	if !isZero(NormalizeAngle(endAngle - startAngle)) {
		param := func(th float64) float64 {
			q := local(e.Center.Add(e.pointAt(DegToRad(th)))).Sub(center).Rotate(-newRot)
			return NormalizeAngle(RadToDeg(math.Atan2(q.Y/semiMinor, q.X/semiMajor)))
		}
		startAngle, endAngle = param(e.StartAngle), param(e.EndAngle)
		if mirrored {
			startAngle, endAngle = endAngle, startAngle
		}
	}
	e.Center = center
	e.MajorAxis = 2 * semiMajor
	e.MinorAxis = 2 * semiMinor
	e.Rotation = NormalizeAngle(RadToDeg(newRot))
	e.StartAngle, e.EndAngle = startAngle, endAngle
}

// EdgePolyline is a polyline boundary segment whose vertices may carry
// bulges.
type EdgePolyline struct {
	Vertexes []PolylineVertex
	IsClosed bool
}

func (e *EdgePolyline) tessellate(precision int) ([]Vector2, error) {
	p := Polyline2D{entity: newEntity(), Vertexes: e.Vertexes, IsClosed: e.IsClosed}
	return p.PolygonalVertices(precision)
}

func (e *EdgePolyline) transform(local func(Vector2) Vector2, scale float64, mirrored bool) {
	for i := range e.Vertexes {
		e.Vertexes[i].Position = local(e.Vertexes[i].Position)
		e.Vertexes[i].StartWidth *= scale
		e.Vertexes[i].EndWidth *= scale
		if mirrored {
			e.Vertexes[i].Bulge = -e.Vertexes[i].Bulge
		}
	}
}

// Explode decomposes the polyline edge into line and arc edges, interpreting
// each vertex's bulge.
func (e *EdgePolyline) Explode() []HatchEdge {
	p := Polyline2D{entity: newEntity(), Vertexes: e.Vertexes, IsClosed: e.IsClosed}
	var out []HatchEdge
	for _, seg := range p.segments() {
		start, end := e.Vertexes[seg[0]].Position, e.Vertexes[seg[1]].Position
		center, radius, startAngle, endAngle := BulgeArc(start, end, e.Vertexes[seg[0]].Bulge)
		if radius == 0 {
			out = append(out, &EdgeLine{Start: start, End: end})
			continue
		}
		out = append(out, &EdgeArc{
			Center:     center,
			Radius:     radius,
			StartAngle: startAngle,
			EndAngle:   endAngle,
		})
	}
	return out
}

// EdgeSpline is a B-spline boundary segment.
type EdgeSpline struct {
	Controls []Vector2
	Weights  []float64
	Knots    []float64
	Degree   int
	Periodic bool
}

func (e *EdgeSpline) tessellate(precision int) ([]Vector2, error) {
	controls := make([]Vector3, len(e.Controls))
	for i, c := range e.Controls {
		controls[i] = V3FromXY(c, 0)
	}
	pts, err := NurbsEvaluate(controls, e.Weights, e.Knots, e.Degree, e.Periodic, e.Periodic, precision)
	if err != nil {
		return nil, err
	}
	out := make([]Vector2, len(pts))
	for i, p := range pts {
		out[i] = p.XY()
	}
	return out, nil
}

func (e *EdgeSpline) transform(local func(Vector2) Vector2, scale float64, mirrored bool) {
	for i := range e.Controls {
		e.Controls[i] = local(e.Controls[i])
	}
}

// BoundaryPath is one closed loop of a hatch's boundary, assembled from
// consecutive edges.
type BoundaryPath struct {
	Edges []HatchEdge
}

// NewBoundaryPath returns a boundary loop over the given edges, which must
// not be empty.
func NewBoundaryPath(edges []HatchEdge) (*BoundaryPath, error) {
	if len(edges) == 0 {
		return nil, errors.New("a hatch boundary path requires at least one edge")
	}
	return &BoundaryPath{Edges: edges}, nil
}

// Tessellate approximates the loop with a point sequence, welding the
// duplicated joint between consecutive edges.
func (bp *BoundaryPath) Tessellate(precision int) ([]Vector2, error) {
	var out []Vector2
	for _, edge := range bp.Edges {
		pts, err := edge.tessellate(precision)
		if err != nil {
			return nil, err
		}
		if len(out) > 0 && len(pts) > 0 && out[len(out)-1].Sub(pts[0]).IsZero() {
			pts = pts[1:]
		}
		out = append(out, pts...)
	}
	// Drop a closing duplicate; callers treat the loop as implicitly closed.
	if len(out) > 1 && out[0].Sub(out[len(out)-1]).IsZero() {
		out = out[:len(out)-1]
	}
	return out, nil
}

// HatchPattern fills a hatch's boundary.
type HatchPattern struct {
	Name  string
	Angle float64
	scale float64
}

// NewHatchPattern returns a pattern with the given name and scale, which
// must be positive.
func NewHatchPattern(name string, scale float64) (HatchPattern, error) {
	if scale <= 0 {
		return HatchPattern{}, ErrNonPositive
	}
	return HatchPattern{Name: name, scale: scale}, nil
}

// Scale returns the pattern scale.
func (hp HatchPattern) Scale() float64 { return hp.scale }

// Hatch fills one or more closed boundary loops with a pattern, in the plane
// defined by its normal. The first loop is the outer boundary; subsequent
// loops are holes.
type Hatch struct {
	entity
	Paths     []*BoundaryPath
	Pattern   HatchPattern
	Elevation float64
}

// NewHatch returns a hatch over the given boundary loops, which must not be
// empty.
func NewHatch(paths []*BoundaryPath, pattern HatchPattern) (*Hatch, error) {
	if len(paths) == 0 {
		return nil, errors.New("a hatch requires at least one boundary path")
	}
	return &Hatch{entity: newEntity(), Paths: paths, Pattern: pattern}, nil
}

// TransformBy applies an affine map to the hatch. Boundary edges transform
// in the hatch plane; the pattern angle follows the transformed local X
// direction and the pattern scale is multiplied by the map's uniform
// reference scale.
func (h *Hatch) TransformBy(m Matrix3, translation Vector3) error {
	newNormal := transformedNormal(m, h.normal)
	transOW := ArbitraryAxis(h.normal)
	transWO := ArbitraryAxis(newNormal).Transpose()
	scale := referenceScale(m, h.normal, newNormal)
	mirrored := m.Determinant() < 0

	elevation := h.Elevation
	local := func(p Vector2) Vector2 {
		v := transformOCSPoint(m, translation, transOW, transWO, V3FromXY(p, h.Elevation))
		elevation = v.Z
		return v.XY()
	}
	for _, path := range h.Paths {
		for _, edge := range path.Edges {
			edge.transform(local, scale, mirrored)
		}
	}

	patternDir := transformOCSDirection(m, transOW, transWO,
		V3FromXY(V2FromAngle(DegToRad(h.Pattern.Angle)), 0)).XY()
	h.Pattern.Angle = NormalizeAngle(RadToDeg(patternDir.Angle()))
	if h.Pattern.scale > 0 {
		h.Pattern.scale *= scale
	}
	h.Elevation = elevation
	h.normal = newNormal
	return nil
}

// Triangulate tessellates the hatch's boundary loops and triangulates the
// enclosed region, treating every loop after the first as a hole. The
// triangles are in the hatch's OCS plane.
func (h *Hatch) Triangulate(precision int) ([][3]Vector2, error) {
	var coords []float64
	var holes []int
	for i, path := range h.Paths {
		pts, err := path.Tessellate(precision)
		if err != nil {
			return nil, err
		}
		if len(pts) < 3 {
			return nil, errors.New("hatch boundary path degenerates below three points")
		}
		if i > 0 {
			holes = append(holes, len(coords)/2)
		}
		for _, p := range pts {
			coords = append(coords, p.X, p.Y)
		}
	}

	indices, err := earcut.Earcut(coords, holes, 2)
	if err != nil {
		return nil, err
	}
	triangles := make([][3]Vector2, len(indices)/3)
	for t := range triangles {
		for k := 0; k < 3; k++ {
			idx := indices[t*3+k]
			triangles[t][k] = V2(coords[idx*2], coords[idx*2+1])
		}
	}
	return triangles, nil
}
