package draft

import "math"

// Matrix3 is a row-major 3×3 linear map over WCS vectors.
//
// We represent the matrix as a struct of scalars instead of an array because Go
// applies fuck-all optimizations to arrays, while structs benefit from SROA.
type Matrix3 struct {
	M11, M12, M13 float64
	M21, M22, M23 float64
	M31, M32, M33 float64
}

// Identity3 is the identity linear map.
var Identity3 = Matrix3{
	1, 0, 0,
	0, 1, 0,
	0, 0, 1,
}

// Scale3 creates a map scaling by x, y and z along the world axes.
func Scale3(x, y, z float64) Matrix3 {
	return Matrix3{
		x, 0, 0,
		0, y, 0,
		0, 0, z,
	}
}

// RotationX creates a rotation of th radians about the world x axis.
func RotationX(th float64) Matrix3 {
	sin, cos := math.Sincos(th)
	return Matrix3{
		1, 0, 0,
		0, cos, -sin,
		0, sin, cos,
	}
}

// RotationY creates a rotation of th radians about the world y axis.
func RotationY(th float64) Matrix3 {
	sin, cos := math.Sincos(th)
	return Matrix3{
		cos, 0, sin,
		0, 1, 0,
		-sin, 0, cos,
	}
}

// RotationZ creates a rotation of th radians about the world z axis.
//
// The convention for rotation is that a positive angle rotates a positive X
// direction into positive Y.
func RotationZ(th float64) Matrix3 {
	sin, cos := math.Sincos(th)
	return Matrix3{
		cos, -sin, 0,
		sin, cos, 0,
		0, 0, 1,
	}
}

// NewMatrix3FromAxes builds the matrix whose columns are the given vectors.
func NewMatrix3FromAxes(x, y, z Vector3) Matrix3 {
	return Matrix3{
		x.X, y.X, z.X,
		x.Y, y.Y, z.Y,
		x.Z, y.Z, z.Z,
	}
}

func (m Matrix3) Mul(o Matrix3) Matrix3 {
	return Matrix3{
		m.M11*o.M11 + m.M12*o.M21 + m.M13*o.M31,
		m.M11*o.M12 + m.M12*o.M22 + m.M13*o.M32,
		m.M11*o.M13 + m.M12*o.M23 + m.M13*o.M33,

		m.M21*o.M11 + m.M22*o.M21 + m.M23*o.M31,
		m.M21*o.M12 + m.M22*o.M22 + m.M23*o.M32,
		m.M21*o.M13 + m.M22*o.M23 + m.M23*o.M33,

		m.M31*o.M11 + m.M32*o.M21 + m.M33*o.M31,
		m.M31*o.M12 + m.M32*o.M22 + m.M33*o.M32,
		m.M31*o.M13 + m.M32*o.M23 + m.M33*o.M33,
	}
}

// MulVec applies the linear map to a vector.
func (m Matrix3) MulVec(v Vector3) Vector3 {
	return Vector3{
		X: m.M11*v.X + m.M12*v.Y + m.M13*v.Z,
		Y: m.M21*v.X + m.M22*v.Y + m.M23*v.Z,
		Z: m.M31*v.X + m.M32*v.Y + m.M33*v.Z,
	}
}

// Transpose returns the transposed matrix. For an orthonormal matrix this is
// also its inverse.
func (m Matrix3) Transpose() Matrix3 {
	return Matrix3{
		m.M11, m.M21, m.M31,
		m.M12, m.M22, m.M32,
		m.M13, m.M23, m.M33,
	}
}

// Determinant computes the determinant. A negative determinant means the map
// reverses orientation, i.e. contains a reflection.
func (m Matrix3) Determinant() float64 {
	return m.M11*(m.M22*m.M33-m.M23*m.M32) -
		m.M12*(m.M21*m.M33-m.M23*m.M31) +
		m.M13*(m.M21*m.M32-m.M22*m.M31)
}

// Invert computes the inverse map.
//
// Produces Inf or NaN values when the determinant is zero.
func (m Matrix3) Invert() Matrix3 {
	invDet := 1 / m.Determinant()
	return Matrix3{
		+invDet * (m.M22*m.M33 - m.M23*m.M32),
		-invDet * (m.M12*m.M33 - m.M13*m.M32),
		+invDet * (m.M12*m.M23 - m.M13*m.M22),

		-invDet * (m.M21*m.M33 - m.M23*m.M31),
		+invDet * (m.M11*m.M33 - m.M13*m.M31),
		-invDet * (m.M11*m.M23 - m.M13*m.M21),

		+invDet * (m.M21*m.M32 - m.M22*m.M31),
		-invDet * (m.M11*m.M32 - m.M12*m.M31),
		+invDet * (m.M11*m.M22 - m.M12*m.M21),
	}
}

func (m Matrix3) IsNaN() bool {
	return math.IsNaN(m.M11) || math.IsNaN(m.M12) || math.IsNaN(m.M13) ||
		math.IsNaN(m.M21) || math.IsNaN(m.M22) || math.IsNaN(m.M23) ||
		math.IsNaN(m.M31) || math.IsNaN(m.M32) || math.IsNaN(m.M33)
}

// Matrix4 is a row-major 4×4 affine map: a Matrix3 linear part plus a
// translation.
type Matrix4 struct {
	M11, M12, M13, M14 float64
	M21, M22, M23, M24 float64
	M31, M32, M33, M34 float64
	M41, M42, M43, M44 float64
}

// Identity4 is the identity affine map.
var Identity4 = Matrix4{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 1, 0,
	0, 0, 0, 1,
}

// NewMatrix4 composes an affine map from its linear part and translation.
func NewMatrix4(linear Matrix3, translation Vector3) Matrix4 {
	return Matrix4{
		linear.M11, linear.M12, linear.M13, translation.X,
		linear.M21, linear.M22, linear.M23, translation.Y,
		linear.M31, linear.M32, linear.M33, translation.Z,
		0, 0, 0, 1,
	}
}

// Translation4 creates an affine map representing translation.
func Translation4(v Vector3) Matrix4 {
	return NewMatrix4(Identity3, v)
}

// Linear returns the 3×3 linear part of the map.
func (m Matrix4) Linear() Matrix3 {
	return Matrix3{
		m.M11, m.M12, m.M13,
		m.M21, m.M22, m.M23,
		m.M31, m.M32, m.M33,
	}
}

// Translation returns the translation component of the map.
func (m Matrix4) Translation() Vector3 {
	return Vector3{X: m.M14, Y: m.M24, Z: m.M34}
}

func (m Matrix4) Mul(o Matrix4) Matrix4 {
	return Matrix4{
		m.M11*o.M11 + m.M12*o.M21 + m.M13*o.M31 + m.M14*o.M41,
		m.M11*o.M12 + m.M12*o.M22 + m.M13*o.M32 + m.M14*o.M42,
		m.M11*o.M13 + m.M12*o.M23 + m.M13*o.M33 + m.M14*o.M43,
		m.M11*o.M14 + m.M12*o.M24 + m.M13*o.M34 + m.M14*o.M44,

		m.M21*o.M11 + m.M22*o.M21 + m.M23*o.M31 + m.M24*o.M41,
		m.M21*o.M12 + m.M22*o.M22 + m.M23*o.M32 + m.M24*o.M42,
		m.M21*o.M13 + m.M22*o.M23 + m.M23*o.M33 + m.M24*o.M43,
		m.M21*o.M14 + m.M22*o.M24 + m.M23*o.M34 + m.M24*o.M44,

		m.M31*o.M11 + m.M32*o.M21 + m.M33*o.M31 + m.M34*o.M41,
		m.M31*o.M12 + m.M32*o.M22 + m.M33*o.M32 + m.M34*o.M42,
		m.M31*o.M13 + m.M32*o.M23 + m.M33*o.M33 + m.M34*o.M43,
		m.M31*o.M14 + m.M32*o.M24 + m.M33*o.M34 + m.M34*o.M44,

		m.M41*o.M11 + m.M42*o.M21 + m.M43*o.M31 + m.M44*o.M41,
		m.M41*o.M12 + m.M42*o.M22 + m.M43*o.M32 + m.M44*o.M42,
		m.M41*o.M13 + m.M42*o.M23 + m.M43*o.M33 + m.M44*o.M43,
		m.M41*o.M14 + m.M42*o.M24 + m.M43*o.M34 + m.M44*o.M44,
	}
}

// MulPoint applies the affine map to a point, including translation.
func (m Matrix4) MulPoint(v Vector3) Vector3 {
	return m.Linear().MulVec(v).Add(m.Translation())
}
