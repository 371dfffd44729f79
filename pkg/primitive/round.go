package primitive

import (
	"fmt"
	"math"

	"github.com/philipparndt/meshedit/pkg/geometry"
	"github.com/philipparndt/meshedit/pkg/mesh"
)

// MinSegments is the lowest radial segment count of round primitives
const MinSegments = 3

// Cylinder is a capped cylinder (or cone frustum) along Y centred on the
// origin. The first and last vertex of every ring share a position so the
// seam carries duplicate vertices.
type Cylinder struct {
	RadiusTop, RadiusBottom float64
	Height                  float64
	Segments                int
}

// NewCylinder returns a Cylinder with the given dimensions and radial segments
func NewCylinder(radiusTop, radiusBottom, height float64, segments int) Cylinder {
	return Cylinder{RadiusTop: radiusTop, RadiusBottom: radiusBottom, Height: height, Segments: segments}
}

func (Cylinder) Kind() Kind { return KindCylinder }

// N returns counts for one height segment plus both caps
func (c Cylinder) N() (numVertex, numIndex int) {
	s := c.Segments
	return 6*s + 4, 12 * s
}

func (c Cylinder) Resolution() int { return c.Segments }

func (c Cylinder) WithResolution(count int) (Shape, error) {
	if count < MinSegments {
		return nil, fmt.Errorf("cylinder segments %d (minimum %d): %w", count, MinSegments, ErrInvalidResolution)
	}
	c.Segments = count
	return c, nil
}

func (Cylinder) sealed() {}

func (c Cylinder) Generate() *mesh.Mesh {
	nv, ni := c.N()
	positions := make([]geometry.Vector3, 0, nv)
	indices := make([]int, 0, ni)
	half := c.Height / 2
	segs := c.Segments

	ring := func(radius, y float64) {
		for x := 0; x <= segs; x++ {
			theta := float64(x) / float64(segs) * 2 * math.Pi
			positions = append(positions, geometry.NewVector3(radius*math.Sin(theta), y, radius*math.Cos(theta)))
		}
	}

	// torso: top ring then bottom ring
	ring(c.RadiusTop, half)
	ring(c.RadiusBottom, -half)
	for x := 0; x < segs; x++ {
		a := x
		b := segs + 1 + x
		cc := b + 1
		d := a + 1
		indices = append(indices, a, b, d, b, cc, d)
	}

	addCap := func(top bool) {
		radius, y := c.RadiusBottom, -half
		if top {
			radius, y = c.RadiusTop, half
		}
		centerStart := len(positions)
		for x := 0; x < segs; x++ {
			positions = append(positions, geometry.NewVector3(0, y, 0))
		}
		ringStart := len(positions)
		ring(radius, y)
		for x := 0; x < segs; x++ {
			center := centerStart + x
			i := ringStart + x
			if top {
				indices = append(indices, i, i+1, center)
			} else {
				indices = append(indices, i+1, i, center)
			}
		}
	}
	addCap(true)
	addCap(false)

	m := mesh.New(KindCylinder.String(), positions, indices)
	m.NormalMode = mesh.NormalsSmooth
	m.ComputeNormals()
	return m
}

// Sphere is a UV sphere centred on the origin. Its width and height segment
// counts are derived from a single resolution.
type Sphere struct {
	Radius         float64
	WidthSegments  int
	HeightSegments int
}

// NewSphere returns a Sphere with the given radius and segment counts
func NewSphere(radius float64, widthSegments, heightSegments int) Sphere {
	return Sphere{Radius: radius, WidthSegments: widthSegments, HeightSegments: heightSegments}
}

func (Sphere) Kind() Kind { return KindSphere }

func (s Sphere) N() (numVertex, numIndex int) {
	w, h := s.WidthSegments, s.HeightSegments
	return (w + 1) * (h + 1), 6 * w * (h - 1)
}

func (s Sphere) Resolution() int { return s.WidthSegments }

// WithResolution sets count width segments and half as many height segments,
// never fewer than two
func (s Sphere) WithResolution(count int) (Shape, error) {
	if count < MinSegments {
		return nil, fmt.Errorf("sphere segments %d (minimum %d): %w", count, MinSegments, ErrInvalidResolution)
	}
	s.WidthSegments = count
	s.HeightSegments = max(2, count/2)
	return s, nil
}

func (Sphere) sealed() {}

func (s Sphere) Generate() *mesh.Mesh {
	nv, ni := s.N()
	positions := make([]geometry.Vector3, 0, nv)
	indices := make([]int, 0, ni)
	w, h := s.WidthSegments, s.HeightSegments

	grid := make([][]int, h+1)
	for iy := 0; iy <= h; iy++ {
		phiV := float64(iy) / float64(h) * math.Pi
		grid[iy] = make([]int, w+1)
		for ix := 0; ix <= w; ix++ {
			phiU := float64(ix) / float64(w) * 2 * math.Pi
			grid[iy][ix] = len(positions)
			positions = append(positions, geometry.NewVector3(
				-s.Radius*math.Cos(phiU)*math.Sin(phiV),
				s.Radius*math.Cos(phiV),
				s.Radius*math.Sin(phiU)*math.Sin(phiV),
			))
		}
	}

	for iy := 0; iy < h; iy++ {
		for ix := 0; ix < w; ix++ {
			a := grid[iy][ix+1]
			b := grid[iy][ix]
			c := grid[iy+1][ix]
			d := grid[iy+1][ix+1]
			// pole rows collapse to one triangle per quad
			if iy != 0 {
				indices = append(indices, a, b, d)
			}
			if iy != h-1 {
				indices = append(indices, b, c, d)
			}
		}
	}

	m := mesh.New(KindSphere.String(), positions, indices)
	m.NormalMode = mesh.NormalsSmooth
	m.ComputeNormals()
	return m
}
