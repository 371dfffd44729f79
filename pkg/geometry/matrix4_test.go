package geometry

import (
	"math"
	"testing"
)

func vectorsClose(a, b Vector3) bool {
	return a.Distance(b) < 1e-9
}

func TestMatrix4TranslationPoint(t *testing.T) {
	m := Translation(NewVector3(1, 2, 3))
	result := m.TransformPoint(NewVector3(1, 1, 1))

	expected := NewVector3(2, 3, 4)
	if !vectorsClose(result, expected) {
		t.Errorf("TransformPoint failed: expected %v, got %v", expected, result)
	}
}

func TestMatrix4TranslationDirection(t *testing.T) {
	m := Translation(NewVector3(1, 2, 3))
	result := m.TransformDirection(NewVector3(0, 0, 1))

	expected := NewVector3(0, 0, 1)
	if !vectorsClose(result, expected) {
		t.Errorf("TransformDirection should ignore translation: expected %v, got %v", expected, result)
	}
}

func TestMatrix4RotationZ(t *testing.T) {
	m := RotationEuler(NewVector3(0, 0, math.Pi/2))
	result := m.TransformPoint(NewVector3(1, 0, 0))

	expected := NewVector3(0, 1, 0)
	if !vectorsClose(result, expected) {
		t.Errorf("Rotation failed: expected %v, got %v", expected, result)
	}
}

func TestMatrix4ComposeOrder(t *testing.T) {
	// scale first, then rotate, then translate
	m := Compose(NewVector3(10, 0, 0), NewVector3(0, 0, math.Pi/2), NewVector3(2, 2, 2))
	result := m.TransformPoint(NewVector3(1, 0, 0))

	expected := NewVector3(10, 2, 0)
	if !vectorsClose(result, expected) {
		t.Errorf("Compose failed: expected %v, got %v", expected, result)
	}
}

func TestMatrix4InverseRoundTrip(t *testing.T) {
	m := Compose(NewVector3(3, -2, 5), NewVector3(0.3, -1.1, 2.0), NewVector3(2, 0.5, 4))
	inv, ok := m.Inverse()
	if !ok {
		t.Fatal("Inverse failed: matrix reported singular")
	}

	p := NewVector3(0.25, 7, -3)
	result := inv.TransformPoint(m.TransformPoint(p))
	if !vectorsClose(result, p) {
		t.Errorf("Inverse round trip failed: expected %v, got %v", p, result)
	}

	identity := m.Mul(inv)
	for i, v := range Identity() {
		if math.Abs(identity[i]-v) > 1e-9 {
			t.Errorf("m * inverse(m) element %d: expected %v, got %v", i, v, identity[i])
		}
	}
}

func TestMatrix4InverseSingular(t *testing.T) {
	m := Scaling(NewVector3(1, 0, 1))
	if _, ok := m.Inverse(); ok {
		t.Error("Inverse of a zero-scale matrix should fail")
	}
	if m.Determinant() != 0 {
		t.Errorf("Determinant failed: expected 0, got %v", m.Determinant())
	}
}
