package draft

import (
	"math"
	"testing"
)

func TestBulgeArcSemicircle(t *testing.T) {
	const epsilon = 1e-12
	center, radius, startAngle, endAngle := BulgeArc(V2(0, 0), V2(2, 0), 1)

	assertNear2(t, center, V2(1, 0), epsilon)
	nearFloat(t, radius, 1, epsilon)
	nearFloat(t, startAngle, 180, epsilon)
	nearFloat(t, endAngle, 0, epsilon)
}

func TestBulgeArcQuarter(t *testing.T) {
	const epsilon = 1e-9
	bulge := math.Tan(DegToRad(90) / 4)
	center, radius, startAngle, endAngle := BulgeArc(V2(0, 0), V2(2, 0), bulge)

	assertNear2(t, center, V2(1, 1), epsilon)
	nearFloat(t, radius, math.Sqrt2, epsilon)
	nearFloat(t, startAngle, 225, epsilon)
	nearFloat(t, endAngle, 315, epsilon)
}

func TestBulgeArcNegative(t *testing.T) {
	const epsilon = 1e-9
	bulge := -math.Tan(DegToRad(90) / 4)
	center, radius, startAngle, endAngle := BulgeArc(V2(0, 0), V2(2, 0), bulge)

	// A clockwise bulge puts the center on the other side; the reported arc
	// still runs counterclockwise.
	assertNear2(t, center, V2(1, -1), epsilon)
	nearFloat(t, radius, math.Sqrt2, epsilon)
	nearFloat(t, startAngle, 45, epsilon)
	nearFloat(t, endAngle, 135, epsilon)
}

func TestBulgeArcStraight(t *testing.T) {
	const epsilon = 1e-12
	center, radius, _, _ := BulgeArc(V2(0, 0), V2(2, 2), 0)
	if radius != 0 {
		t.Fatalf("got radius %v for a zero bulge, expected the 0 sentinel", radius)
	}
	assertNear2(t, center, V2(1, 1), epsilon)

	_, radius, _, _ = BulgeArc(V2(0, 0), V2(2, 2), 1e-14)
	if radius != 0 {
		t.Fatalf("got radius %v for a vanishing bulge, expected the 0 sentinel", radius)
	}
}

func TestArcBulgeRoundTrip(t *testing.T) {
	const epsilon = 1e-9
	for _, bulge := range []float64{1, 0.5, 0.1, -0.3, -1} {
		p1, p2 := V2(-1, 2), V2(3, 0.5)
		_, _, startAngle, endAngle := BulgeArc(p1, p2, bulge)
		got := ArcBulge(startAngle, endAngle)
		if bulge < 0 {
			// BulgeArc reports the counterclockwise arc, so the sign folds
			// away; only the magnitude survives the round trip.
			got = -got
		}
		nearFloat(t, got, bulge, epsilon)
	}
}
