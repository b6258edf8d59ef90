package draft

import (
	"math"
	"testing"
)

func TestArbitraryAxisOrthonormal(t *testing.T) {
	const epsilon = 1e-12
	normals := []Vector3{
		UnitZ,
		UnitZ.Negate(),
		V3(1, 0, 0),
		V3(0, 1, 0),
		V3(1, 1, 1),
		V3(-0.3, 0.4, 0.86),
		V3(0.05, -0.02, 0.99),
	}
	for _, n := range normals {
		frame := ArbitraryAxis(n)
		x := frame.MulVec(UnitX)
		y := frame.MulVec(UnitY)
		z := frame.MulVec(UnitZ)

		nearFloat(t, x.Hypot(), 1, epsilon)
		nearFloat(t, y.Hypot(), 1, epsilon)
		nearFloat(t, z.Hypot(), 1, epsilon)
		nearFloat(t, x.Dot(y), 0, epsilon)
		nearFloat(t, x.Dot(z), 0, epsilon)
		assertNear3(t, x.Cross(y), z, epsilon)
		assertNear3(t, z, n.Normalize(), epsilon)
	}
}

func TestArbitraryAxisThreshold(t *testing.T) {
	const epsilon = 1e-12
	// Just inside the near-vertical region the reference axis is world Y.
	below := ArbitraryAxis(V3(1.0/64.0-1e-9, 0, 1))
	assertNear3(t, below.MulVec(UnitX), UnitY.Cross(V3(1.0/64.0-1e-9, 0, 1)).Normalize(), epsilon)

	// Beyond it the reference axis switches to world Z.
	above := ArbitraryAxis(V3(0.1, 0, 1))
	assertNear3(t, above.MulVec(UnitX), UnitZ.Cross(V3(0.1, 0, 1)).Normalize(), epsilon)
}

func TestObjectWorldRoundTrip(t *testing.T) {
	const epsilon = 1e-12
	normal := V3(1, 2, 3)
	pts := []Vector3{V3(0, 0, 0), V3(1, 0, 0), V3(-2, 5, 1.5)}

	world := ObjectToWorld(pts, normal)
	back := WorldToObject(world, normal)
	for i := range pts {
		assertNear3(t, back[i], pts[i], epsilon)
	}

	for i := range pts {
		nearFloat(t, world[i].Hypot(), pts[i].Hypot(), epsilon)
	}
}

func TestNormalizeAngle(t *testing.T) {
	const epsilon = 1e-12
	nearFloat(t, NormalizeAngle(0), 0, epsilon)
	nearFloat(t, NormalizeAngle(370), 10, epsilon)
	nearFloat(t, NormalizeAngle(-90), 270, epsilon)
	nearFloat(t, NormalizeAngle(720), 0, epsilon)
	nearFloat(t, NormalizeAngle(360-1e-13), 0, epsilon)
}

func TestAngleConversions(t *testing.T) {
	const epsilon = 1e-12
	nearFloat(t, DegToRad(180), math.Pi, epsilon)
	nearFloat(t, RadToDeg(math.Pi/2), 90, epsilon)
	nearFloat(t, RadToDeg(DegToRad(123.456)), 123.456, epsilon)
}
