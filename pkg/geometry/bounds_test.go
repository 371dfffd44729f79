package geometry

import (
	"math"
	"testing"
)

func TestBoundingBoxExtend(t *testing.T) {
	bbox := NewBoundingBox()

	bbox.Extend(NewVector3(1, 2, 3))
	bbox.Extend(NewVector3(4, 5, 6))
	bbox.Extend(NewVector3(-1, 0, 2))

	expectedMin := NewVector3(-1, 0, 2)
	expectedMax := NewVector3(4, 5, 6)

	if bbox.Min != expectedMin {
		t.Errorf("Min failed: expected %v, got %v", expectedMin, bbox.Min)
	}
	if bbox.Max != expectedMax {
		t.Errorf("Max failed: expected %v, got %v", expectedMax, bbox.Max)
	}
}

func TestBoundingBoxEmpty(t *testing.T) {
	bbox := NewBoundingBox()

	if !bbox.IsEmpty() {
		t.Error("New bounding box should be empty")
	}
	if bbox.Size() != (Vector3{}) {
		t.Errorf("Empty box size should be zero, got %v", bbox.Size())
	}
}

func TestBoundingBoxSizeAndCenter(t *testing.T) {
	bbox := NewBoundingBox()
	bbox.Extend(NewVector3(0, 0, 0))
	bbox.Extend(NewVector3(10, 20, 30))

	if bbox.Size() != NewVector3(10, 20, 30) {
		t.Errorf("Size failed: expected (10, 20, 30), got %v", bbox.Size())
	}
	if bbox.Center() != NewVector3(5, 10, 15) {
		t.Errorf("Center failed: expected (5, 10, 15), got %v", bbox.Center())
	}
	if bbox.MaxDimension() != 30 {
		t.Errorf("MaxDimension failed: expected 30, got %v", bbox.MaxDimension())
	}
}

func TestBoundingBoxDiagonal(t *testing.T) {
	bbox := NewBoundingBox()
	bbox.Extend(NewVector3(0, 0, 0))
	bbox.Extend(NewVector3(3, 4, 0))

	if math.Abs(bbox.Diagonal()-5.0) > 1e-10 {
		t.Errorf("Diagonal failed: expected 5, got %v", bbox.Diagonal())
	}
}

func TestBoundingBoxTransform(t *testing.T) {
	bbox := NewBoundingBox()
	bbox.Extend(NewVector3(-1, -1, -1))
	bbox.Extend(NewVector3(1, 1, 1))

	moved := bbox.Transform(Translation(NewVector3(10, 0, 0)))

	if moved.Min != NewVector3(9, -1, -1) || moved.Max != NewVector3(11, 1, 1) {
		t.Errorf("Transform failed: got min %v max %v", moved.Min, moved.Max)
	}
}
