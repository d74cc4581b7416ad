package types

import (
	"testing"

	"github.com/chewxy/math32"
)

func vecClose(a, b Vec3) bool {
	return a.Sub(b).Len() < 1e-5
}

func TestLookAtVMapsWorldToCameraSpace(t *testing.T) {
	eye := Vec3{0, 0, 5}
	m := LookAtV(eye, Vec3{0, 0, 0}, Vec3{0, 1, 0})

	// the focal point sits on -z in camera space
	p := m.Mul4x1(Vec4{0, 0, 0, 1}).Vec3()
	if !vecClose(p, Vec3{0, 0, -5}) {
		t.Fatalf("expected origin at (0,0,-5) in camera space; got %v", p)
	}
	// the eye maps to the camera-space origin
	p = m.Mul4x1(eye.Vec4(1)).Vec3()
	if !vecClose(p, Vec3{0, 0, 0}) {
		t.Fatalf("expected eye at the camera origin; got %v", p)
	}
	// +x stays to the right
	p = m.Mul4x1(Vec4{1, 0, 0, 1}).Vec3()
	if !vecClose(p, Vec3{1, 0, -5}) {
		t.Fatalf("expected (1,0,-5); got %v", p)
	}
}

func TestCameraPositionRecovery(t *testing.T) {
	// the picker recovers the eye from the view matrix as -R^T * t
	eye := Vec3{3, -2, 7}
	m := LookAtV(eye, Vec3{1, 1, 1}, Vec3{0, 1, 0})

	rotT := m.Mat3().Transpose()
	recovered := rotT.MulVec3(m.Translation()).Mul(-1)
	if !vecClose(recovered, eye) {
		t.Fatalf("expected recovered eye %v; got %v", eye, recovered)
	}
}

func TestMat3MulTranspose(t *testing.T) {
	// rotation about z by 90 degrees, column-major
	r := Mat3{
		0, 1, 0,
		-1, 0, 0,
		0, 0, 1,
	}
	v := r.MulVec3(Vec3{1, 0, 0})
	if !vecClose(v, Vec3{0, 1, 0}) {
		t.Fatalf("expected x to rotate to y; got %v", v)
	}

	// a rotation's transpose is its inverse
	back := r.Transpose().MulVec3(v)
	if !vecClose(back, Vec3{1, 0, 0}) {
		t.Fatalf("expected transpose to invert the rotation; got %v", back)
	}

	id := r.Transpose().Mul3(r)
	for i, want := range Ident3() {
		if math32.Abs(id[i]-want) > 1e-6 {
			t.Fatalf("expected R^T R = I; got %v", id)
		}
	}
}

func TestQuatAxisAngleRotation(t *testing.T) {
	q := QuatFromAxisAngle(Vec3{0, 1, 0}, math32.Pi/2).Normalize()
	v := q.Rotate(Vec3{0, 0, -1})
	if !vecClose(v, Vec3{-1, 0, 0}) {
		t.Fatalf("expected -z to rotate to -x about +y; got %v", v)
	}
}

func TestPerspectiveDepthRange(t *testing.T) {
	m := Perspective4(45, 4.0/3.0, 1, 100)

	near := m.Mul4x1(Vec4{0, 0, -1, 1})
	if math32.Abs(near[2]/near[3]+1) > 1e-5 {
		t.Fatalf("expected near plane at NDC z=-1; got %v", near[2]/near[3])
	}
	far := m.Mul4x1(Vec4{0, 0, -100, 1})
	if math32.Abs(far[2]/far[3]-1) > 1e-4 {
		t.Fatalf("expected far plane at NDC z=+1; got %v", far[2]/far[3])
	}
}
