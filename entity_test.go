package draft

import (
	"math"
	"testing"
)

func TestSetNormal(t *testing.T) {
	const epsilon = 1e-12
	c, err := NewCircle(V3(0, 0, 0), 1)
	if err != nil {
		t.Fatal(err)
	}

	if err := c.SetNormal(Vector3{}); err != ErrZeroNormal {
		t.Fatalf("got %v, expected ErrZeroNormal", err)
	}
	if err := c.SetNormal(V3(0, 0, 5)); err != nil {
		t.Fatal(err)
	}
	assertNear3(t, c.Normal(), UnitZ, epsilon)
}

func TestTransformDecomposesMatrix4(t *testing.T) {
	const epsilon = 1e-9
	p := NewPoint(V3(1, 2, 3))
	if err := Transform(p, NewMatrix4(Scale3(2, 2, 2), V3(0, 0, 1))); err != nil {
		t.Fatal(err)
	}
	assertNear3(t, p.Position, V3(2, 4, 7), epsilon)
}

func TestTransformedNormalOnTiltedPlane(t *testing.T) {
	const epsilon = 1e-9
	c, err := NewCircle(V3(0, 0, 0), 1)
	if err != nil {
		t.Fatal(err)
	}

	if err := c.TransformBy(RotationX(math.Pi/2), Vector3{}); err != nil {
		t.Fatal(err)
	}
	assertNear3(t, c.Normal(), V3(0, -1, 0), epsilon)
}

func TestDegenerateNormalKept(t *testing.T) {
	const epsilon = 1e-12
	c, err := NewCircle(V3(0, 0, 0), 1)
	if err != nil {
		t.Fatal(err)
	}

	// A rank-deficient map that kills the normal leaves the frame alone.
	if err := c.TransformBy(Scale3(1, 1, 0), Vector3{}); err != nil {
		t.Fatal(err)
	}
	assertNear3(t, c.Normal(), UnitZ, epsilon)
}

func TestLinetypeScale(t *testing.T) {
	c, err := NewCircle(V3(0, 0, 0), 1)
	if err != nil {
		t.Fatal(err)
	}
	if c.LinetypeScale() != 1 {
		t.Errorf("got default linetype scale %v, expected 1", c.LinetypeScale())
	}
	if err := c.SetLinetypeScale(0); err != ErrNonPositive {
		t.Fatalf("got %v, expected ErrNonPositive", err)
	}
	if err := c.SetLinetypeScale(2.5); err != nil {
		t.Fatal(err)
	}
	if c.LinetypeScale() != 2.5 {
		t.Errorf("got linetype scale %v, expected 2.5", c.LinetypeScale())
	}
}

func TestReferenceScale(t *testing.T) {
	const epsilon = 1e-9
	nearFloat(t, referenceScale(Scale3(3, 3, 3), UnitZ, UnitZ), 3, epsilon)
	nearFloat(t, referenceScale(RotationZ(1.2), UnitZ, UnitZ), 1, epsilon)
}
