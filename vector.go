package draft

import (
	"fmt"
	"math"
)

// Epsilon is the tolerance used throughout the package when deciding whether a
// computed quantity is numerically zero.
const Epsilon = 1e-12

// isZero reports whether f is within Epsilon of zero.
func isZero(f float64) bool {
	return math.Abs(f) < Epsilon
}

// Vector2 is a point or direction in an entity's local (OCS) plane.
type Vector2 struct {
	X float64
	Y float64
}

// V2 returns the vector ⟨x, y⟩.
func V2(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

func (v Vector2) String() string {
	return fmt.Sprintf("⟨%g, %g⟩", v.X, v.Y)
}

// Splat returns the vector's x and y coordinates.
func (v Vector2) Splat() (float64, float64) {
	return v.X, v.Y
}

// Add adds two vectors and returns the resulting vector.
func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub subtracts two vectors and returns the resulting vector.
func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vector2) Mul(f float64) Vector2 {
	return Vector2{X: v.X * f, Y: v.Y * f}
}

func (v Vector2) Div(f float64) Vector2 {
	return Vector2{X: v.X / f, Y: v.Y / f}
}

// Negate returns a new vector with the signs of x and y flipped.
func (v Vector2) Negate() Vector2 {
	return Vector2{X: -v.X, Y: -v.Y}
}

// Dot returns the dot product of v and o.
func (v Vector2) Dot(o Vector2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Cross returns the (scalar) cross product of v and o.
//
// Its sign tells on which side of v the vector o lies: positive is
// counterclockwise.
func (v Vector2) Cross(o Vector2) float64 {
	return v.X*o.Y - v.Y*o.X
}

// Hypot returns the magnitude of the vector.
func (v Vector2) Hypot() float64 {
	return math.Hypot(v.X, v.Y)
}

// Hypot2 returns the squared magnitude of the vector.
func (v Vector2) Hypot2() float64 {
	return v.Dot(v)
}

// Angle returns the angle in radians between the vector and ⟨1, 0⟩ in the
// positive y direction. This is atan2(y, x).
func (v Vector2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// V2FromAngle returns a unit vector of the given angle, which is expressed in
// radians. With θ = 0, the result is the positive x unit vector.
func V2FromAngle(th float64) Vector2 {
	y, x := math.Sincos(th)
	return Vector2{X: x, Y: y}
}

// Rotate rotates the vector about the origin by th radians.
func (v Vector2) Rotate(th float64) Vector2 {
	sin, cos := math.Sincos(th)
	return Vector2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Perpendicular returns v rotated a quarter turn counterclockwise.
func (v Vector2) Perpendicular() Vector2 {
	return Vector2{X: -v.Y, Y: v.X}
}

// Lerp linearly interpolates between two vectors.
func (v Vector2) Lerp(o Vector2, t float64) Vector2 {
	return v.Add(o.Sub(v).Mul(t))
}

// Midpoint returns the midpoint of two points.
func (v Vector2) Midpoint(o Vector2) Vector2 {
	return Vector2{X: 0.5 * (v.X + o.X), Y: 0.5 * (v.Y + o.Y)}
}

// Distance returns the euclidean distance between two points.
func (v Vector2) Distance(o Vector2) float64 {
	return math.Hypot(v.X-o.X, v.Y-o.Y)
}

// Normalize returns a vector of magnitude 1.0 with the same angle as v.
// This produces a NaN vector if the magnitude is 0.
func (v Vector2) Normalize() Vector2 {
	return v.Mul(1.0 / v.Hypot())
}

// IsZero reports whether both components are within Epsilon of zero.
func (v Vector2) IsZero() bool {
	return isZero(v.X) && isZero(v.Y)
}

// IsNaN reports whether at least one of x and y is NaN.
func (v Vector2) IsNaN() bool {
	return math.IsNaN(v.X) || math.IsNaN(v.Y)
}

// Vector3 is a point or direction in the drawing's world frame (WCS).
type Vector3 struct {
	X float64
	Y float64
	Z float64
}

// V3 returns the vector ⟨x, y, z⟩.
func V3(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// UnitX, UnitY and UnitZ are the world axis directions.
var (
	UnitX = Vector3{X: 1}
	UnitY = Vector3{Y: 1}
	UnitZ = Vector3{Z: 1}
)

func (v Vector3) String() string {
	return fmt.Sprintf("⟨%g, %g, %g⟩", v.X, v.Y, v.Z)
}

// Splat returns the vector's x, y and z coordinates.
func (v Vector3) Splat() (float64, float64, float64) {
	return v.X, v.Y, v.Z
}

// XY projects the vector onto the xy plane, dropping z.
func (v Vector3) XY() Vector2 {
	return Vector2{X: v.X, Y: v.Y}
}

// V3FromXY lifts a 2D vector into 3D with the given z.
func V3FromXY(v Vector2, z float64) Vector3 {
	return Vector3{X: v.X, Y: v.Y, Z: z}
}

// Add adds two vectors and returns the resulting vector.
func (v Vector3) Add(o Vector3) Vector3 {
	return Vector3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Sub subtracts two vectors and returns the resulting vector.
func (v Vector3) Sub(o Vector3) Vector3 {
	return Vector3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

func (v Vector3) Mul(f float64) Vector3 {
	return Vector3{X: v.X * f, Y: v.Y * f, Z: v.Z * f}
}

func (v Vector3) Div(f float64) Vector3 {
	return Vector3{X: v.X / f, Y: v.Y / f, Z: v.Z / f}
}

// Negate returns a new vector with the signs of all components flipped.
func (v Vector3) Negate() Vector3 {
	return Vector3{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// Dot returns the dot product of v and o.
func (v Vector3) Dot(o Vector3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the cross product of v and o.
func (v Vector3) Cross(o Vector3) Vector3 {
	return Vector3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Hypot returns the magnitude of the vector.
func (v Vector3) Hypot() float64 {
	return math.Sqrt(v.Dot(v))
}

// Hypot2 returns the squared magnitude of the vector.
func (v Vector3) Hypot2() float64 {
	return v.Dot(v)
}

// Distance returns the euclidean distance between two points.
func (v Vector3) Distance(o Vector3) float64 {
	return v.Sub(o).Hypot()
}

// Lerp linearly interpolates between two vectors.
func (v Vector3) Lerp(o Vector3, t float64) Vector3 {
	return v.Add(o.Sub(v).Mul(t))
}

// Normalize returns a vector of magnitude 1.0 with the same direction as v.
// This produces a NaN vector if the magnitude is 0.
func (v Vector3) Normalize() Vector3 {
	return v.Mul(1.0 / v.Hypot())
}

// IsZero reports whether all components are within Epsilon of zero.
func (v Vector3) IsZero() bool {
	return isZero(v.X) && isZero(v.Y) && isZero(v.Z)
}

// IsNaN reports whether at least one component is NaN.
func (v Vector3) IsNaN() bool {
	return math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsNaN(v.Z)
}

// IsParallel reports whether v and o span no area, i.e. point along the same
// or exactly opposite directions. The zero vector is parallel to everything.
func (v Vector3) IsParallel(o Vector3) bool {
	return v.Cross(o).IsZero()
}
