package draft

import "errors"

// Spline is a rational B-spline curve through WCS control points.
type Spline struct {
	entity
	controlPoints []Vector3
	weights       []float64
	knots         []float64
	degree        int
	isPeriodic    bool
	// FitPoints records the points a fitted spline was created through; it is
	// empty for splines created from control points.
	FitPoints []Vector3
}

// NewSpline returns a spline of the given degree through the given WCS
// control points, with unit weights and an internally generated knot vector.
// A periodic spline is closed with derivative continuity across the seam.
func NewSpline(controls []Vector3, degree int, periodic bool) (*Spline, error) {
	return NewRationalSpline(controls, nil, nil, degree, periodic)
}

// NewRationalSpline returns a spline with explicit weights and knots. Nil
// weights default to 1.0 each; nil knots are generated. The degree must be in
// [1, 10], the control points must number at least max(2, degree+1), weights
// must match the control points and the knot count must equal
// controls+degree+1 (open) or controls+2·degree+1 (periodic).
func NewRationalSpline(controls []Vector3, weights, knots []float64, degree int, periodic bool) (*Spline, error) {
	if degree < MinDegree || degree > MaxDegree {
		return nil, ErrDegreeOutOfRange
	}
	if len(controls) < max(2, degree+1) {
		return nil, ErrTooFewControls
	}
	if weights == nil {
		weights = make([]float64, len(controls))
		for i := range weights {
			weights[i] = 1
		}
	} else if len(weights) != len(controls) {
		return nil, ErrWeightCount
	}
	numKnots := len(controls) + degree + 1
	if periodic {
		numKnots = len(controls) + 2*degree + 1
	}
	if knots == nil {
		knots = generateKnots(len(controls), degree, periodic)
	} else if len(knots) != numKnots {
		return nil, ErrKnotCount
	}
	s := &Spline{
		entity:        newEntity(),
		controlPoints: controls,
		weights:       weights,
		knots:         knots,
		degree:        degree,
		isPeriodic:    periodic,
	}
	return s, nil
}

// NewSplineFromFitPoints returns a cubic spline fitted through the given WCS
// points, which must number at least two. The fit points double as the
// curve's control polygon; the fitted points are retained.
func NewSplineFromFitPoints(fitPoints []Vector3) (*Spline, error) {
	if len(fitPoints) < 2 {
		return nil, errors.New("a fitted spline requires at least two fit points")
	}
	degree := 3
	if len(fitPoints) < degree+1 {
		degree = len(fitPoints) - 1
	}
	s, err := NewSpline(fitPoints, degree, false)
	if err != nil {
		return nil, err
	}
	s.FitPoints = append([]Vector3(nil), fitPoints...)
	return s, nil
}

// Degree returns the curve's polynomial degree.
func (s *Spline) Degree() int { return s.degree }

// IsPeriodic reports whether the curve is closed-periodic.
func (s *Spline) IsPeriodic() bool { return s.isPeriodic }

// IsClosed reports whether the curve's ends join.
func (s *Spline) IsClosed() bool {
	if s.isPeriodic {
		return true
	}
	first := s.controlPoints[0]
	last := s.controlPoints[len(s.controlPoints)-1]
	return first.Sub(last).IsZero()
}

// ControlPoints returns the curve's control points.
func (s *Spline) ControlPoints() []Vector3 { return s.controlPoints }

// Weights returns the control point weights.
func (s *Spline) Weights() []float64 { return s.weights }

// Knots returns the knot vector.
func (s *Spline) Knots() []float64 { return s.knots }

// Reverse flips the curve's direction in place.
func (s *Spline) Reverse() {
	for i, j := 0, len(s.controlPoints)-1; i < j; i, j = i+1, j-1 {
		s.controlPoints[i], s.controlPoints[j] = s.controlPoints[j], s.controlPoints[i]
		s.weights[i], s.weights[j] = s.weights[j], s.weights[i]
	}
	for i, j := 0, len(s.FitPoints)-1; i < j; i, j = i+1, j-1 {
		s.FitPoints[i], s.FitPoints[j] = s.FitPoints[j], s.FitPoints[i]
	}
	// A reversed curve traverses the knot spans back to front; mirror the
	// vector about its span so it stays non-decreasing.
	span := s.knots[0] + s.knots[len(s.knots)-1]
	reversed := make([]float64, len(s.knots))
	for i, k := range s.knots {
		reversed[len(s.knots)-1-i] = span - k
	}
	s.knots = reversed
}

// TransformBy applies an affine map to the spline's control and fit points.
// Weights and knots are invariant under affine maps.
func (s *Spline) TransformBy(m Matrix3, translation Vector3) error {
	for i := range s.controlPoints {
		s.controlPoints[i] = m.MulVec(s.controlPoints[i]).Add(translation)
	}
	for i := range s.FitPoints {
		s.FitPoints[i] = m.MulVec(s.FitPoints[i]).Add(translation)
	}
	s.normal = transformedNormal(m, s.normal)
	return nil
}

// PolygonalVertices tessellates the curve into precision WCS points.
func (s *Spline) PolygonalVertices(precision int) ([]Vector3, error) {
	return NurbsEvaluate(s.controlPoints, s.weights, s.knots, s.degree,
		s.IsClosed(), s.isPeriodic, precision)
}

// Explode decomposes the spline into a polyline through its tessellated
// points, using the default tessellation density. It returns nil when the
// curve cannot be tessellated.
func (s *Spline) Explode() []Entity {
	pts, err := s.PolygonalVertices(DefaultPrecision)
	if err != nil {
		return nil
	}
	p, err := NewPolyline3D(pts, s.IsClosed())
	if err != nil {
		return nil
	}
	p.entity = s.entity
	return []Entity{p}
}
