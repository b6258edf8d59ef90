package draft

import (
	"math"
	"testing"
)

func TestMatrix3Mul(t *testing.T) {
	const epsilon = 1e-12
	a := RotationZ(math.Pi / 3)
	b := Scale3(2, 3, 4)
	v := V3(1, 2, 3)

	assertNear3(t, a.Mul(b).MulVec(v), a.MulVec(b.MulVec(v)), epsilon)
	assertNear3(t, Identity3.MulVec(v), v, epsilon)
}

func TestMatrix3Rotations(t *testing.T) {
	const epsilon = 1e-12
	assertNear3(t, RotationZ(math.Pi/2).MulVec(UnitX), UnitY, epsilon)
	assertNear3(t, RotationX(math.Pi/2).MulVec(UnitY), UnitZ, epsilon)
	assertNear3(t, RotationY(math.Pi/2).MulVec(UnitZ), UnitX, epsilon)
}

func TestMatrix3Invert(t *testing.T) {
	const epsilon = 1e-9
	m := RotationZ(0.7).Mul(Scale3(2, 3, 0.5)).Mul(RotationX(-1.2))
	inv := m.Invert()
	for _, v := range []Vector3{UnitX, UnitY, UnitZ, V3(1, -2, 3)} {
		assertNear3(t, inv.MulVec(m.MulVec(v)), v, epsilon)
		assertNear3(t, m.MulVec(inv.MulVec(v)), v, epsilon)
	}
}

func TestMatrix3Determinant(t *testing.T) {
	const epsilon = 1e-12
	nearFloat(t, Scale3(2, 3, 4).Determinant(), 24, epsilon)
	nearFloat(t, RotationZ(1.1).Determinant(), 1, epsilon)
	if d := Scale3(-1, 1, 1).Determinant(); d >= 0 {
		t.Fatalf("got determinant %v for a reflection, expected negative", d)
	}
}

func TestMatrix3Transpose(t *testing.T) {
	const epsilon = 1e-12
	r := RotationZ(0.3).Mul(RotationX(0.9))
	// Rotations are orthonormal so the transpose is the inverse.
	assertNear3(t, r.Transpose().MulVec(r.MulVec(V3(1, 2, 3))), V3(1, 2, 3), epsilon)
}

func TestMatrix4Compose(t *testing.T) {
	const epsilon = 1e-12
	m := NewMatrix4(RotationZ(math.Pi/2), V3(5, 0, 0))

	assertNear3(t, m.MulPoint(V3(1, 0, 0)), V3(5, 1, 0), epsilon)
	assertNear3(t, m.Linear().MulVec(UnitX), UnitY, epsilon)
	assertNear3(t, m.Translation(), V3(5, 0, 0), epsilon)

	a := Translation4(V3(1, 2, 3))
	b := NewMatrix4(Scale3(2, 2, 2), Vector3{})
	v := V3(1, 1, 1)
	assertNear3(t, a.Mul(b).MulPoint(v), a.MulPoint(b.MulPoint(v)), epsilon)
}
