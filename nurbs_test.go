package draft

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNurbsEvaluateValidation(t *testing.T) {
	controls := []Vector3{V3(0, 0, 0), V3(1, 1, 0), V3(2, 0, 0)}

	_, err := NurbsEvaluate(controls, nil, nil, 0, false, false, 8)
	require.ErrorIs(t, err, ErrDegreeOutOfRange)

	_, err = NurbsEvaluate(controls, nil, nil, 11, false, false, 8)
	require.ErrorIs(t, err, ErrDegreeOutOfRange)

	_, err = NurbsEvaluate(controls[:2], nil, nil, 2, false, false, 8)
	require.ErrorIs(t, err, ErrTooFewControls)

	_, err = NurbsEvaluate(controls, []float64{1, 1}, nil, 2, false, false, 8)
	require.ErrorIs(t, err, ErrWeightCount)

	_, err = NurbsEvaluate(controls, nil, []float64{0, 0, 1, 1}, 2, false, false, 8)
	require.ErrorIs(t, err, ErrKnotCount)

	_, err = NurbsEvaluate(controls, nil, nil, 2, false, false, 1)
	require.ErrorIs(t, err, ErrBadPrecision)
}

func TestNurbsEvaluateLinear(t *testing.T) {
	const epsilon = 1e-9
	controls := []Vector3{V3(0, 0, 0), V3(2, 0, 0), V3(2, 2, 0)}

	// A degree-1 curve interpolates its control polygon.
	pts, err := NurbsEvaluate(controls, nil, nil, 1, false, false, 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(pts) != 5 {
		t.Fatalf("got %d samples, expected 5", len(pts))
	}
	assertNear3(t, pts[0], V3(0, 0, 0), epsilon)
	assertNear3(t, pts[1], V3(1, 0, 0), epsilon)
	assertNear3(t, pts[2], V3(2, 0, 0), epsilon)
	assertNear3(t, pts[3], V3(2, 1, 0), epsilon)
	assertNear3(t, pts[4], V3(2, 2, 0), epsilon)
}

func TestNurbsEvaluateOpenEndpoints(t *testing.T) {
	const epsilon = 1e-9
	controls := []Vector3{V3(0, 0, 0), V3(1, 2, 0), V3(3, 2, 0), V3(4, 0, 0)}

	pts, err := NurbsEvaluate(controls, nil, nil, 3, false, false, 16)
	if err != nil {
		t.Fatal(err)
	}
	if len(pts) != 16 {
		t.Fatalf("got %d samples, expected 16", len(pts))
	}
	// A clamped curve starts and ends at the outer control points.
	assertNear3(t, pts[0], controls[0], epsilon)
	assertNear3(t, pts[len(pts)-1], controls[len(controls)-1], epsilon)
}

func TestNurbsEvaluatePeriodic(t *testing.T) {
	controls := []Vector3{V3(1, 0, 0), V3(0, 1, 0), V3(-1, 0, 0), V3(0, -1, 0)}

	pts, err := NurbsEvaluate(controls, nil, nil, 2, true, true, 32)
	if err != nil {
		t.Fatal(err)
	}
	if len(pts) != 32 {
		t.Fatalf("got %d samples, expected 32 with no closing duplicate", len(pts))
	}
	// The seam is continuous: the last sample stays close to the first.
	if d := pts[len(pts)-1].Sub(pts[0]).Hypot(); d > 0.5 {
		t.Errorf("seam gap %v, expected a closed curve", d)
	}
	for _, p := range pts {
		if p.IsNaN() {
			t.Fatalf("got NaN sample %s", p)
		}
	}
}

func TestNurbsEvaluateWeighted(t *testing.T) {
	const epsilon = 1e-9
	controls := []Vector3{V3(0, 0, 0), V3(1, 1, 0), V3(2, 0, 0)}

	uniform, err := NurbsEvaluate(controls, nil, nil, 2, false, false, 9)
	if err != nil {
		t.Fatal(err)
	}
	pulled, err := NurbsEvaluate(controls, []float64{1, 5, 1}, nil, 2, false, false, 9)
	if err != nil {
		t.Fatal(err)
	}

	// A heavier middle weight pulls the midpoint towards its control point.
	mid := len(uniform) / 2
	if pulled[mid].Y <= uniform[mid].Y+epsilon {
		t.Errorf("weighted midpoint %s not pulled above uniform %s", pulled[mid], uniform[mid])
	}
}
