package multivector

import (
	"math"
	"math/rand/v2"
	"testing"
)

func TestGradeProjection(t *testing.T) {
	a := New(1, Vec3{2, 3, 4}, Vec3{5, 6, 7}, 8)
	sum := Multivector{}
	for k := 0; k <= 3; k++ {
		sum = sum.Add(a.Grade(k))
	}
	if !sum.Equal(a) {
		t.Fatalf("sum of grades=%v, want %v", sum, a)
	}
	if !a.Grade(4).IsZero() || !a.Grade(-1).IsZero() {
		t.Fatalf("out-of-range grade not zero")
	}
	if !a.Even().Add(a.Odd()).Equal(a) {
		t.Fatalf("even+odd != a")
	}
	if !a.Grade(0).IsScalar() || a.Grade(1).IsScalar() {
		t.Fatalf("IsScalar wrong")
	}
}

func TestInvolutions(t *testing.T) {
	a := New(1, Vec3{2, 3, 4}, Vec3{5, 6, 7}, 8)

	if got := a.Reverse(); !got.Equal(New(1, Vec3{2, 3, 4}, Vec3{-5, -6, -7}, -8)) {
		t.Fatalf("reverse=%v", got)
	}
	if got := a.Involute(); !got.Equal(New(1, Vec3{-2, -3, -4}, Vec3{5, 6, 7}, -8)) {
		t.Fatalf("involute=%v", got)
	}
	if got := a.Conjugate(); !got.Equal(a.Reverse().Involute()) {
		t.Fatalf("conjugate=%v, want reverse∘involute", got)
	}

	r := rand.New(rand.NewPCG(21, 22))
	for i := 0; i < 100; i++ {
		x, y := randMV(r), randMV(r)
		if !x.Mul(y).Reverse().ApproxEqual(y.Reverse().Mul(x.Reverse()), DefaultTolerance) {
			t.Fatalf("reverse is not an anti-automorphism")
		}
		if !x.Mul(y).Involute().ApproxEqual(x.Involute().Mul(y.Involute()), DefaultTolerance) {
			t.Fatalf("involute is not an automorphism")
		}
	}
}

func TestNorm(t *testing.T) {
	r := rand.New(rand.NewPCG(23, 24))
	for i := 0; i < 100; i++ {
		a := randMV(r)
		want := a.Mul(a.Reverse()).Scalar
		if math.Abs(a.NormSquared()-want) > DefaultTolerance {
			t.Fatalf("norm²=%v, want %v", a.NormSquared(), want)
		}
		if n := a.Normalize().Norm(); math.Abs(n-1) > DefaultTolerance {
			t.Fatalf("normalized norm=%v", n)
		}
	}
	if Vector(3, 0, 4).Norm() != 5 {
		t.Fatalf("|(3,0,4)|=%v", Vector(3, 0, 4).Norm())
	}
	if !(Multivector{}).Normalize().IsZero() {
		t.Fatalf("normalize(0) not zero")
	}
}

func TestNormExtremeMagnitudes(t *testing.T) {
	huge := Vector(1e200, 0, 0)
	if n := huge.Norm(); n != 1e200 {
		t.Fatalf("|huge|=%v, want 1e200", n)
	}
	if got := huge.Normalize(); !got.ApproxEqual(E1, DefaultTolerance) {
		t.Fatalf("normalize huge=%v, want e1", got)
	}

	tiny := Vector(1e-170, 0, 0)
	if n := tiny.Norm(); n != 1e-170 {
		t.Fatalf("|tiny|=%v, want 1e-170", n)
	}
	if got := tiny.Normalize(); !got.ApproxEqual(E1, DefaultTolerance) {
		t.Fatalf("normalize tiny=%v, want e1", got)
	}

	mixed := New(3e200, Vec3{}, Vec3{0, 0, 4e200}, 0)
	if n := mixed.Norm(); math.Abs(n-5e200) > 5e200*1e-14 {
		t.Fatalf("|mixed|=%v, want 5e200", n)
	}
	if got := mixed.Normalize(); !got.ApproxEqual(New(0.6, Vec3{}, Vec3{0, 0, 0.8}, 0), DefaultTolerance) {
		t.Fatalf("normalize mixed=%v", got)
	}

	sub := Pseudoscalar(5e-324)
	if got := sub.Normalize(); !got.ApproxEqual(I, DefaultTolerance) {
		t.Fatalf("normalize subnormal=%v, want I", got)
	}
}
