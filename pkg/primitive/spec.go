package primitive

import "fmt"

// Spec is the serialisable form of a Shape used by scene files
type Spec struct {
	Kind           string  `yaml:"kind"`
	Width          float64 `yaml:"width,omitempty"`
	Height         float64 `yaml:"height,omitempty"`
	Depth          float64 `yaml:"depth,omitempty"`
	Radius         float64 `yaml:"radius,omitempty"`
	RadiusTop      float64 `yaml:"radius_top,omitempty"`
	RadiusBottom   float64 `yaml:"radius_bottom,omitempty"`
	Segments       int     `yaml:"segments,omitempty"`
	HeightSegments int     `yaml:"height_segments,omitempty"`
}

// ToSpec captures the parameters of a shape
func ToSpec(s Shape) Spec {
	switch shape := s.(type) {
	case Box:
		return Spec{Kind: KindBox.String(), Width: shape.Width, Height: shape.Height, Depth: shape.Depth}
	case Plane:
		return Spec{Kind: KindPlane.String(), Width: shape.Width, Height: shape.Height}
	case Cylinder:
		return Spec{
			Kind:         KindCylinder.String(),
			Height:       shape.Height,
			RadiusTop:    shape.RadiusTop,
			RadiusBottom: shape.RadiusBottom,
			Segments:     shape.Segments,
		}
	case Sphere:
		return Spec{
			Kind:           KindSphere.String(),
			Radius:         shape.Radius,
			Segments:       shape.WidthSegments,
			HeightSegments: shape.HeightSegments,
		}
	}
	return Spec{}
}

// FromSpec rebuilds a shape. Missing parameters fall back to the defaults of
// New for that kind.
func FromSpec(spec Spec) (Shape, error) {
	kind, err := ParseKind(spec.Kind)
	if err != nil {
		return nil, err
	}
	def, err := New(kind)
	if err != nil {
		return nil, err
	}

	switch shape := def.(type) {
	case Box:
		shape.Width = orDefault(spec.Width, shape.Width)
		shape.Height = orDefault(spec.Height, shape.Height)
		shape.Depth = orDefault(spec.Depth, shape.Depth)
		return shape, nil
	case Plane:
		shape.Width = orDefault(spec.Width, shape.Width)
		shape.Height = orDefault(spec.Height, shape.Height)
		return shape, nil
	case Cylinder:
		shape.Height = orDefault(spec.Height, shape.Height)
		shape.RadiusTop = orDefault(spec.RadiusTop, shape.RadiusTop)
		shape.RadiusBottom = orDefault(spec.RadiusBottom, shape.RadiusBottom)
		if spec.Segments != 0 {
			if spec.Segments < MinSegments {
				return nil, fmt.Errorf("cylinder segments %d: %w", spec.Segments, ErrInvalidResolution)
			}
			shape.Segments = spec.Segments
		}
		return shape, nil
	case Sphere:
		shape.Radius = orDefault(spec.Radius, shape.Radius)
		if spec.Segments != 0 {
			resized, err := shape.WithResolution(spec.Segments)
			if err != nil {
				return nil, err
			}
			shape = resized.(Sphere)
		}
		if spec.HeightSegments >= 2 {
			shape.HeightSegments = spec.HeightSegments
		}
		return shape, nil
	}
	return def, nil
}

func orDefault(value, fallback float64) float64 {
	if value == 0 {
		return fallback
	}
	return value
}
