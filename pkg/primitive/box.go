package primitive

import (
	"fmt"

	"github.com/philipparndt/meshedit/pkg/geometry"
	"github.com/philipparndt/meshedit/pkg/mesh"
)

// Box is an axis-aligned cuboid centred on the origin. Each face owns its
// four corner vertices so every cube corner is stored three times.
type Box struct {
	Width, Height, Depth float64
}

// NewBox returns a Box with the given size
func NewBox(width, height, depth float64) Box {
	return Box{Width: width, Height: height, Depth: depth}
}

func (Box) Kind() Kind { return KindBox }

func (Box) N() (numVertex, numIndex int) {
	return 24, 36
}

func (Box) Resolution() int { return 0 }

func (b Box) WithResolution(count int) (Shape, error) {
	return nil, fmt.Errorf("box: %w", ErrResolutionNotSupported)
}

func (Box) sealed() {}

// boxFaces lists normal, u and v axes per face with u x v == normal
var boxFaces = [6][3]geometry.Vector3{
	{{X: 1}, {Z: -1}, {Y: 1}},
	{{X: -1}, {Z: 1}, {Y: 1}},
	{{Y: 1}, {X: 1}, {Z: -1}},
	{{Y: -1}, {X: 1}, {Z: 1}},
	{{Z: 1}, {X: 1}, {Y: 1}},
	{{Z: -1}, {X: -1}, {Y: 1}},
}

func (b Box) Generate() *mesh.Mesh {
	nv, ni := b.N()
	positions := make([]geometry.Vector3, 0, nv)
	indices := make([]int, 0, ni)
	size := geometry.NewVector3(b.Width, b.Height, b.Depth)

	for _, face := range boxFaces {
		n, u, v := face[0], face[1], face[2]
		base := len(positions)
		for iy := 0; iy < 2; iy++ {
			for ix := 0; ix < 2; ix++ {
				unit := n.Mul(0.5).Add(u.Mul(float64(ix) - 0.5)).Add(v.Mul(float64(iy) - 0.5))
				positions = append(positions, geometry.NewVector3(unit.X*size.X, unit.Y*size.Y, unit.Z*size.Z))
			}
		}
		indices = append(indices, quadIndices(base)...)
	}

	return mesh.New(KindBox.String(), positions, indices)
}

// quadIndices triangulates corners laid out as base+iy*2+ix
func quadIndices(base int) []int {
	return []int{base, base + 1, base + 3, base, base + 3, base + 2}
}

// Plane is a single quad in the XY plane facing +Z
type Plane struct {
	Width, Height float64
}

// NewPlane returns a Plane with the given size
func NewPlane(width, height float64) Plane {
	return Plane{Width: width, Height: height}
}

func (Plane) Kind() Kind { return KindPlane }

func (Plane) N() (numVertex, numIndex int) {
	return 4, 6
}

func (Plane) Resolution() int { return 0 }

func (p Plane) WithResolution(count int) (Shape, error) {
	return nil, fmt.Errorf("plane: %w", ErrResolutionNotSupported)
}

func (Plane) sealed() {}

func (p Plane) Generate() *mesh.Mesh {
	hw, hh := p.Width/2, p.Height/2
	positions := []geometry.Vector3{
		{X: -hw, Y: -hh},
		{X: hw, Y: -hh},
		{X: -hw, Y: hh},
		{X: hw, Y: hh},
	}
	return mesh.New(KindPlane.String(), positions, quadIndices(0))
}
