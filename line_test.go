package draft

import (
	"math"
	"testing"
)

func TestLineTransform(t *testing.T) {
	const epsilon = 1e-9
	l := NewLine(V3(0, 0, 0), V3(1, 0, 0))

	if err := Transform(l, NewMatrix4(RotationZ(math.Pi/2), V3(0, 0, 5))); err != nil {
		t.Fatal(err)
	}
	assertNear3(t, l.Start, V3(0, 0, 5), epsilon)
	assertNear3(t, l.End, V3(0, 1, 5), epsilon)
	assertNear3(t, l.Direction(), V3(0, 1, 0), epsilon)
}

func TestRayDirection(t *testing.T) {
	const epsilon = 1e-9
	if _, err := NewRay(V3(0, 0, 0), Vector3{}); err == nil {
		t.Error("expected a zero direction to be rejected")
	}

	r, err := NewRay(V3(1, 1, 0), V3(0, 0, 3))
	if err != nil {
		t.Fatal(err)
	}
	assertNear3(t, r.Direction(), UnitZ, epsilon)

	if err := r.TransformBy(RotationY(math.Pi/2), V3(1, 0, 0)); err != nil {
		t.Fatal(err)
	}
	assertNear3(t, r.Origin, V3(1, 1, -1), epsilon)
	assertNear3(t, r.Direction(), UnitX, epsilon)
}

func TestXLineDegenerateDirectionKept(t *testing.T) {
	const epsilon = 1e-9
	x, err := NewXLine(V3(0, 0, 0), UnitX)
	if err != nil {
		t.Fatal(err)
	}

	// A map that collapses the direction leaves it unchanged.
	if err := x.TransformBy(Scale3(0, 1, 1), Vector3{}); err != nil {
		t.Fatal(err)
	}
	assertNear3(t, x.Direction(), UnitX, epsilon)
}

func TestPointRotation(t *testing.T) {
	const epsilon = 1e-9
	p := NewPoint(V3(1, 0, 0))
	p.Rotation = 30

	if err := p.TransformBy(RotationZ(math.Pi/2), V3(0, 0, 1)); err != nil {
		t.Fatal(err)
	}
	assertNear3(t, p.Position, V3(0, 1, 1), epsilon)
	nearFloat(t, p.Rotation, 120, epsilon)
}
