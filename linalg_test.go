package nxcube

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestRotationComposition(t *testing.T) {
	ctors := map[string]func(float64) Matrix3{
		"x": RotationX,
		"y": RotationY,
		"z": RotationZ,
	}
	angles := []float64{0, 0.1, math.Pi / 20, math.Pi / 2, -math.Pi / 2, 2.5, math.Pi}

	for name, rot := range ctors {
		for _, a := range angles {
			for _, b := range angles {
				got := rot(a).Mul(rot(b))
				want := rot(a + b)
				if !got.ApproxEqual(want, eps) {
					t.Errorf("rotation%s(%v) * rotation%s(%v) != rotation%s(%v)", name, a, name, b, name, a+b)
				}
			}
		}
	}
}

func TestRotationRightHanded(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix3
		in   Vector3
		want Vector3
	}{
		{"x maps y to z", RotationX(math.Pi / 2), Vec(0, 1, 0), Vec(0, 0, 1)},
		{"y maps z to x", RotationY(math.Pi / 2), Vec(0, 0, 1), Vec(1, 0, 0)},
		{"z maps x to y", RotationZ(math.Pi / 2), Vec(1, 0, 0), Vec(0, 1, 0)},
		{"negative z maps y to x", RotationZ(-math.Pi / 2), Vec(0, 1, 0), Vec(1, 0, 0)},
	}

	for _, tt := range tests {
		if got := tt.m.MulVec(tt.in); !got.ApproxEqual(tt.want, eps) {
			t.Errorf("%s: got %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestRotationPreservesLength(t *testing.T) {
	vectors := []Vector3{Vec(1, 0, 0), Vec(1, -0.5, 1.5), Vec(-3, 2, 7)}
	for _, a := range []Axis{AxisX, AxisY, AxisZ} {
		m := Rotation(a, 0.7)
		if !m.IsRotation(eps) {
			t.Errorf("rotation about %v is not orthonormal", a)
		}
		for _, v := range vectors {
			if got := m.MulVec(v).Len(); math.Abs(got-v.Len()) > eps {
				t.Errorf("rotation about %v changed length of %v: %v", a, v, got)
			}
		}
	}
}

func TestMatrixRowsAndProducts(t *testing.T) {
	a := NewMatrix3(Vec(1, 2, 3), Vec(4, 5, 6), Vec(7, 8, 10))
	if a.At(0, 2) != 3 || a.At(2, 0) != 7 || a.At(1, 1) != 5 {
		t.Fatalf("At does not address rows: %v %v %v", a.At(0, 2), a.At(2, 0), a.At(1, 1))
	}
	if got := a.MulVec(Vec(1, 0, 0)); got != Vec(1, 4, 7) {
		t.Errorf("MulVec picked %v, want first column (1, 4, 7)", got)
	}
	if got := a.Transpose().At(0, 2); got != 7 {
		t.Errorf("Transpose().At(0, 2) = %v, want 7", got)
	}
	if got := a.Det(); math.Abs(got-(-3)) > eps {
		t.Errorf("Det = %v, want -3", got)
	}

	// (a*b)v == a(bv)
	b := RotationY(0.3)
	v := Vec(0.5, -1, 2)
	if !a.Mul(b).MulVec(v).ApproxEqual(a.MulVec(b.MulVec(v)), eps) {
		t.Error("matrix product does not apply right-to-left")
	}
}

func TestMatrixRounded(t *testing.T) {
	m := RotationX(math.Pi / 2).Rounded()
	want := NewMatrix3(Vec(1, 0, 0), Vec(0, 0, -1), Vec(0, 1, 0))
	if !m.ApproxEqual(want, 0) {
		t.Errorf("Rounded quarter turn is not exact")
	}
	if !Identity().IsRotation(0) {
		t.Error("identity should be a rotation")
	}
}

func TestVectorOps(t *testing.T) {
	a, b := Vec(1, 0, 0), Vec(0, 1, 0)
	if got := a.Cross(b); got != Vec(0, 0, 1) {
		t.Errorf("x cross y = %v", got)
	}
	if got := a.Dot(b); got != 0 {
		t.Errorf("x dot y = %v", got)
	}
	if got := a.Add(b).Scale(2); got != Vec(2, 2, 0) {
		t.Errorf("(x+y)*2 = %v", got)
	}
	if got := Vec(3, 4, 0).Normalized(); !got.ApproxEqual(Vec(0.6, 0.8, 0), eps) {
		t.Errorf("Normalized = %v", got)
	}
	if got := Vec(0.49, -0.26, 1.74).Rounded(0.5); got != Vec(0.5, -0.5, 1.5) {
		t.Errorf("Rounded(0.5) = %v", got)
	}
	if got := Vec(2, -3, 5).Component(AxisY); got != -3 {
		t.Errorf("Component(y) = %v", got)
	}
}
