package draft

import (
	"errors"
	"fmt"
)

// MinDegree and MaxDegree bound the polynomial degree of rational B-spline
// curves.
const (
	MinDegree = 1
	MaxDegree = 10
)

// Errors reported by [NurbsEvaluate] for inputs that violate its
// preconditions. Invalid inputs are never silently repaired.
var (
	ErrDegreeOutOfRange = fmt.Errorf("spline degree must be in [%d, %d]", MinDegree, MaxDegree)
	ErrTooFewControls   = errors.New("not enough control points for the degree")
	ErrWeightCount      = errors.New("weights length must match control points length")
	ErrKnotCount        = errors.New("knots length does not match control points and degree")
	ErrBadPrecision     = errors.New("curve precision must be at least 2")
)

// NurbsEvaluate tessellates a rational B-spline curve into a polygonal point
// sequence.
//
// The curve is defined by its control points, optional weights (defaulting to
// 1.0 each), optional knot vector (generated internally when nil), degree, and
// whether it is closed and periodic. precision is the number of samples.
//
// Open curves include the exact last control point as their final sample.
// Closed and periodic curves yield precision samples with no closing
// duplicate; callers connect the last point back to the first themselves.
func NurbsEvaluate(controls []Vector3, weights []float64, knots []float64, degree int, closed, periodic bool, precision int) ([]Vector3, error) {
	if degree < MinDegree || degree > MaxDegree {
		return nil, ErrDegreeOutOfRange
	}
	if len(controls) < max(2, degree+1) {
		return nil, ErrTooFewControls
	}
	if precision < 2 {
		return nil, ErrBadPrecision
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

	if periodic {
		// Wrap the control polygon so the curve has continuous derivatives
		// across the seam.
		wrapped := make([]Vector3, 0, len(controls)+degree)
		wrapped = append(wrapped, controls[len(controls)-degree:]...)
		controls = append(wrapped, controls...)

		wrappedW := make([]float64, 0, len(weights)+degree)
		wrappedW = append(wrappedW, weights[len(weights)-degree:]...)
		weights = append(wrappedW, weights...)
	}

	out := make([]Vector3, 0, precision)
	if closed || periodic {
		uStart := knots[degree]
		uEnd := knots[len(knots)-degree-1]
		uDelta := (uEnd - uStart) / float64(precision)
		for i := 0; i < precision; i++ {
			out = append(out, nurbsPoint(controls, weights, knots, degree, uStart+float64(i)*uDelta))
		}
	} else {
		uStart := knots[0]
		uEnd := knots[len(knots)-1]
		uDelta := (uEnd - uStart) / float64(precision-1)
		for i := 0; i < precision-1; i++ {
			out = append(out, nurbsPoint(controls, weights, knots, degree, uStart+float64(i)*uDelta))
		}
		// The basis vanishes at the very end of the domain; the curve ends at
		// the last control point exactly.
		out = append(out, controls[len(controls)-1])
	}
	return out, nil
}

// generateKnots builds the default knot vector: clamped uniform for open
// curves, unclamped uniform for periodic ones.
func generateKnots(numControls, degree int, periodic bool) []float64 {
	if periodic {
		knots := make([]float64, numControls+2*degree+1)
		factor := 1.0 / float64(numControls-degree)
		for i := range knots {
			knots[i] = float64(i-degree) * factor
		}
		return knots
	}
	knots := make([]float64, numControls+degree+1)
	for i := range knots {
		switch {
		case i <= degree:
			knots[i] = 0
		case i < numControls:
			knots[i] = float64(i - degree)
		default:
			knots[i] = float64(numControls - degree)
		}
	}
	return knots
}

// nurbsBasis is the Cox-de Boor recursion N(i,p,u). Terms whose denominator is
// numerically zero are dropped rather than divided.
func nurbsBasis(i, p int, u float64, knots []float64) float64 {
	if p == 0 {
		if knots[i] <= u && u < knots[i+1] {
			return 1
		}
		return 0
	}
	var sum float64
	if den := knots[i+p] - knots[i]; !isZero(den) {
		sum += (u - knots[i]) / den * nurbsBasis(i, p-1, u, knots)
	}
	if den := knots[i+p+1] - knots[i+1]; !isZero(den) {
		sum += (knots[i+p+1] - u) / den * nurbsBasis(i+1, p-1, u, knots)
	}
	return sum
}

// nurbsPoint evaluates C(u) = Σ wᵢNᵢ,ₚ(u)·Pᵢ / Σ wᵢNᵢ,ₚ(u).
func nurbsPoint(controls []Vector3, weights []float64, knots []float64, degree int, u float64) Vector3 {
	var num Vector3
	var den float64
	for i, ctrl := range controls {
		b := nurbsBasis(i, degree, u, knots) * weights[i]
		num = num.Add(ctrl.Mul(b))
		den += b
	}
	if isZero(den) {
		// Out-of-domain parameter; does not occur for valid inputs.
		return Vector3{}
	}
	return num.Div(den)
}
