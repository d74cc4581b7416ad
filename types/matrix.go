package types

import "math"

// Epsilon for float comparisons inside this package.
const floatCmpEpsilon = 1e-7

// Column-major 3x3 and 4x4 matrices following the conventions of
// https://github.com/go-gl/mathgl/blob/master/mgl32/matrix.go so that the
// flat arrays can be handed to OpenGL directly.
type Mat3 [9]float32
type Mat4 [16]float32

// Create an identity 3x3 matrix.
func Ident3() Mat3 {
	return Mat3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Create an identity 4x4 matrix.
func Ident4() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Extract the top-left 3x3 matrix from a 4x4 matrix.
func (m Mat4) Mat3() Mat3 {
	return Mat3{
		m[0], m[1], m[2],
		m[4], m[5], m[6],
		m[8], m[9], m[10],
	}
}

// Extract the translation column from a 4x4 matrix.
func (m Mat4) Translation() Vec3 {
	return Vec3{m[12], m[13], m[14]}
}

// Multiply two 4x4 matrices.
func (m Mat4) Mul4(m2 Mat4) Mat4 {
	var out Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m[k*4+row] * m2[col*4+k]
			}
			out[col*4+row] = sum
		}
	}
	return out
}

// Multiply a 4x4 matrix with a 4 component vector.
func (m Mat4) Mul4x1(v Vec4) Vec4 {
	return Vec4{
		m[0]*v[0] + m[4]*v[1] + m[8]*v[2] + m[12]*v[3],
		m[1]*v[0] + m[5]*v[1] + m[9]*v[2] + m[13]*v[3],
		m[2]*v[0] + m[6]*v[1] + m[10]*v[2] + m[14]*v[3],
		m[3]*v[0] + m[7]*v[1] + m[11]*v[2] + m[15]*v[3],
	}
}

// Multiply a 3x3 matrix with a 3 component vector.
func (m Mat3) MulVec3(v Vec3) Vec3 {
	return Vec3{
		m[0]*v[0] + m[3]*v[1] + m[6]*v[2],
		m[1]*v[0] + m[4]*v[1] + m[7]*v[2],
		m[2]*v[0] + m[5]*v[1] + m[8]*v[2],
	}
}

// Multiply two 3x3 matrices.
func (m Mat3) Mul3(m2 Mat3) Mat3 {
	var out Mat3
	for col := 0; col < 3; col++ {
		for row := 0; row < 3; row++ {
			out[col*3+row] = m[row]*m2[col*3] + m[3+row]*m2[col*3+1] + m[6+row]*m2[col*3+2]
		}
	}
	return out
}

// Transpose a 3x3 matrix.
func (m Mat3) Transpose() Mat3 {
	return Mat3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// Generate a view transform that places the camera at eye looking towards
// center with the given up direction. The resulting matrix maps world-space
// coordinates into camera space where the view direction is -Z.
func LookAtV(eye, center, up Vec3) Mat4 {
	f := center.Sub(eye).Normalize()
	s := f.Cross(up.Normalize()).Normalize()
	u := s.Cross(f)

	return Mat4{
		s[0], u[0], -f[0], 0,
		s[1], u[1], -f[1], 0,
		s[2], u[2], -f[2], 0,
		-s.Dot(eye), -u.Dot(eye), f.Dot(eye), 1,
	}
}

// Generate a perspective projection matrix. The fovy angle is expressed in
// degrees and measured vertically.
func Perspective4(fovy, aspect, near, far float32) Mat4 {
	fovyRad := float64(fovy) * math.Pi / 180.0
	t := float32(1.0 / math.Tan(fovyRad*0.5))

	return Mat4{
		t / aspect, 0, 0, 0,
		0, t, 0, 0,
		0, 0, (near + far) / (near - far), -1,
		0, 0, (2 * near * far) / (near - far), 0,
	}
}
