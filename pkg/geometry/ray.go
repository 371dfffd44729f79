package geometry

import "math"

// Ray is a half-line starting at Origin
type Ray struct {
	Origin    Vector3
	Direction Vector3
}

// NewRay creates a ray with a normalized direction
func NewRay(origin, direction Vector3) Ray {
	return Ray{Origin: origin, Direction: direction.Normalize()}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vector3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// Plane is the set of points p with Normal.Dot(p) + Constant == 0
type Plane struct {
	Normal   Vector3
	Constant float64
}

// NewPlaneFromNormalAndPoint builds the plane through point facing normal
func NewPlaneFromNormalAndPoint(normal, point Vector3) Plane {
	n := normal.Normalize()
	return Plane{Normal: n, Constant: -n.Dot(point)}
}

// DistanceToPoint returns the signed distance of p from the plane
func (p Plane) DistanceToPoint(point Vector3) float64 {
	return p.Normal.Dot(point) + p.Constant
}

// IntersectPlane returns the point where the ray crosses the plane.
// ok is false when the ray is parallel to the plane or the plane lies
// behind the ray origin.
func (r Ray) IntersectPlane(plane Plane) (Vector3, bool) {
	denom := plane.Normal.Dot(r.Direction)
	if math.Abs(denom) < 1e-12 {
		if plane.DistanceToPoint(r.Origin) == 0 {
			return r.Origin, true
		}
		return Vector3{}, false
	}
	t := -(r.Origin.Dot(plane.Normal) + plane.Constant) / denom
	if t < 0 {
		return Vector3{}, false
	}
	return r.At(t), true
}

// DistanceSqToSegment returns the squared distance between the ray and the
// segment a-b, used for picking thin edge handles.
func (r Ray) DistanceSqToSegment(a, b Vector3) float64 {
	onRay, onSegment := r.closestPoints(a, b)
	diff := onRay.Sub(onSegment)
	return diff.Dot(diff)
}

// ClosestPointOnSegment returns the point of segment a-b nearest to the ray
func (r Ray) ClosestPointOnSegment(a, b Vector3) Vector3 {
	_, onSegment := r.closestPoints(a, b)
	return onSegment
}

func (r Ray) closestPoints(a, b Vector3) (onRay, onSegment Vector3) {
	d1 := r.Direction
	d2 := b.Sub(a)
	w := r.Origin.Sub(a)

	aa := d1.Dot(d1)
	e := d2.Dot(d2)
	f := d2.Dot(w)
	if aa == 0 {
		return r.Origin, a
	}

	var s, t float64
	if e <= 1e-12 {
		s = math.Max(0, -d1.Dot(w)/aa)
	} else {
		c := d1.Dot(w)
		bb := d1.Dot(d2)
		denom := aa*e - bb*bb
		if denom != 0 {
			s = math.Max(0, (bb*f-c*e)/denom)
		}
		t = (bb*s + f) / e
		if t < 0 {
			t = 0
			s = math.Max(0, -c/aa)
		} else if t > 1 {
			t = 1
			s = math.Max(0, (bb-c)/aa)
		}
	}

	return r.At(s), a.Add(d2.Mul(t))
}
