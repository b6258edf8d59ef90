package draft

import (
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

func TestNewRationalSplineValidation(t *testing.T) {
	controls := []Vector3{V3(0, 0, 0), V3(1, 1, 0), V3(2, 0, 0), V3(3, 1, 0)}

	_, err := NewRationalSpline(controls, nil, nil, 0, false)
	require.ErrorIs(t, err, ErrDegreeOutOfRange)

	_, err = NewRationalSpline(controls[:2], nil, nil, 3, false)
	require.ErrorIs(t, err, ErrTooFewControls)

	_, err = NewRationalSpline(controls, []float64{1, 1}, nil, 3, false)
	require.ErrorIs(t, err, ErrWeightCount)

	_, err = NewRationalSpline(controls, nil, []float64{0, 1}, 3, false)
	require.ErrorIs(t, err, ErrKnotCount)

	s, err := NewRationalSpline(controls, nil, nil, 3, false)
	require.NoError(t, err)
	require.Equal(t, 3, s.Degree())
	require.Len(t, s.Knots(), len(controls)+3+1)
	require.Equal(t, []float64{1, 1, 1, 1}, s.Weights())
}

func TestSplineIsClosed(t *testing.T) {
	open, err := NewSpline([]Vector3{V3(0, 0, 0), V3(1, 1, 0), V3(2, 0, 0)}, 2, false)
	if err != nil {
		t.Fatal(err)
	}
	if open.IsClosed() {
		t.Error("an open spline with distinct ends should not report closed")
	}

	ring, err := NewSpline([]Vector3{V3(0, 0, 0), V3(1, 1, 0), V3(2, 0, 0), V3(0, 0, 0)}, 2, false)
	if err != nil {
		t.Fatal(err)
	}
	if !ring.IsClosed() {
		t.Error("coincident end controls should report closed")
	}

	periodic, err := NewSpline([]Vector3{V3(0, 0, 0), V3(1, 1, 0), V3(2, 0, 0)}, 2, true)
	if err != nil {
		t.Fatal(err)
	}
	if !periodic.IsClosed() {
		t.Error("a periodic spline should always report closed")
	}
}

func TestSplineReverse(t *testing.T) {
	const epsilon = 1e-9
	controls := []Vector3{V3(0, 0, 0), V3(1, 2, 0), V3(3, 2, 0), V3(4, 0, 0)}
	s, err := NewRationalSpline(controls, []float64{1, 2, 3, 4}, nil, 3, false)
	if err != nil {
		t.Fatal(err)
	}

	s.Reverse()
	assertNear3(t, s.ControlPoints()[0], V3(4, 0, 0), epsilon)
	assertNear3(t, s.ControlPoints()[3], V3(0, 0, 0), epsilon)
	diff(t, []float64{4, 3, 2, 1}, s.Weights())
	// Mirroring a clamped vector [0,0,0,0,1,1,1,1] about its span gives the
	// same vector back.
	diff(t, []float64{0, 0, 0, 0, 1, 1, 1, 1}, s.Knots(), cmpopts.EquateApprox(0, epsilon))

	// Reversing twice restores the original direction.
	s.Reverse()
	assertNear3(t, s.ControlPoints()[0], V3(0, 0, 0), epsilon)
	diff(t, []float64{1, 2, 3, 4}, s.Weights())
}

func TestSplineTransform(t *testing.T) {
	const epsilon = 1e-9
	s, err := NewSplineFromFitPoints([]Vector3{V3(0, 0, 0), V3(1, 1, 0), V3(2, 0, 0)})
	if err != nil {
		t.Fatal(err)
	}

	if err := s.TransformBy(Scale3(2, 2, 2), V3(1, 0, 0)); err != nil {
		t.Fatal(err)
	}
	assertNear3(t, s.ControlPoints()[0], V3(1, 0, 0), epsilon)
	assertNear3(t, s.ControlPoints()[2], V3(5, 0, 0), epsilon)
	assertNear3(t, s.FitPoints[1], V3(3, 2, 0), epsilon)
	// Weights and knots are affine invariants.
	diff(t, []float64{1, 1, 1}, s.Weights())
}

func TestSplineFromFitPoints(t *testing.T) {
	if _, err := NewSplineFromFitPoints([]Vector3{V3(0, 0, 0)}); err == nil {
		t.Error("expected a single fit point to be rejected")
	}

	s, err := NewSplineFromFitPoints([]Vector3{V3(0, 0, 0), V3(1, 1, 0)})
	if err != nil {
		t.Fatal(err)
	}
	// Two fit points can only carry a linear curve.
	if s.Degree() != 1 {
		t.Errorf("got degree %d, expected 1", s.Degree())
	}

	s, err = NewSplineFromFitPoints([]Vector3{V3(0, 0, 0), V3(1, 1, 0), V3(2, 0, 0), V3(3, 1, 0), V3(4, 0, 0)})
	if err != nil {
		t.Fatal(err)
	}
	if s.Degree() != 3 {
		t.Errorf("got degree %d, expected 3", s.Degree())
	}
}

func TestSplineExplode(t *testing.T) {
	s, err := NewSpline([]Vector3{V3(0, 0, 0), V3(1, 2, 0), V3(3, 2, 0), V3(4, 0, 0)}, 3, false)
	if err != nil {
		t.Fatal(err)
	}
	parts := s.Explode()
	if len(parts) != 1 {
		t.Fatalf("got %d entities, expected 1", len(parts))
	}
	p, ok := parts[0].(*Polyline3D)
	if !ok {
		t.Fatalf("got %T, expected *Polyline3D", parts[0])
	}
	if len(p.Vertexes) != DefaultPrecision {
		t.Errorf("got %d vertices, expected %d", len(p.Vertexes), DefaultPrecision)
	}
}
