package primitive

import (
	"errors"
	"fmt"
	"strings"

	"github.com/philipparndt/meshedit/pkg/mesh"
)

var (
	// ErrResolutionNotSupported is returned when a shape has no resolution parameter
	ErrResolutionNotSupported = errors.New("resolution not supported for this primitive")
	// ErrInvalidResolution is returned for a segment count the shape cannot build
	ErrInvalidResolution = errors.New("invalid resolution")
	// ErrUnknownKind is returned when parsing an unknown primitive name
	ErrUnknownKind = errors.New("unknown primitive kind")
)

// Kind identifies the primitive variant
type Kind int

const (
	KindBox Kind = iota
	KindPlane
	KindCylinder
	KindSphere
)

var kindNames = [...]string{
	KindBox:      "box",
	KindPlane:    "plane",
	KindCylinder: "cylinder",
	KindSphere:   "sphere",
}

func (k Kind) String() string {
	if int(k) >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// ParseKind converts a primitive name such as "sphere" into a Kind
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if strings.EqualFold(n, name) {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// Kinds returns every primitive kind in declaration order
func Kinds() []Kind {
	return []Kind{KindBox, KindPlane, KindCylinder, KindSphere}
}

// Shape is a parametric primitive. The set of implementations is closed:
// Box, Plane, Cylinder and Sphere.
type Shape interface {
	Kind() Kind

	// N returns the vertex and index counts Generate will produce
	N() (numVertex, numIndex int)

	// Generate builds a fresh indexed mesh for the current parameters
	Generate() *mesh.Mesh

	// Resolution returns the segment count driving the tessellation, or 0 when
	// the shape has none
	Resolution() int

	// WithResolution returns a copy re-tessellated with count segments
	WithResolution(count int) (Shape, error)

	sealed()
}

// New returns the default shape for a kind
func New(kind Kind) (Shape, error) {
	switch kind {
	case KindBox:
		return NewBox(1, 1, 1), nil
	case KindPlane:
		return NewPlane(1, 1), nil
	case KindCylinder:
		return NewCylinder(0.5, 0.5, 1, 32), nil
	case KindSphere:
		return NewSphere(0.5, 32, 16), nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
}
