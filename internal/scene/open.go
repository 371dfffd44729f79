package scene

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/philipparndt/meshedit/pkg/mesh"
	"github.com/philipparndt/meshedit/pkg/openscad"
	"github.com/philipparndt/meshedit/pkg/stl"
)

// Open loads a scene from a .yaml scene file, an STL file or an OpenSCAD
// file. STL and OpenSCAD files become a single mesh object named after the
// file.
func Open(ctx context.Context, path string) (*Scene, error) {
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return Load(path)

	case ".stl":
		model, err := stl.Parse(path)
		if err != nil {
			return nil, fmt.Errorf("failed to parse STL file: %w", err)
		}
		return single(name, model.ToMesh()), nil

	case ".scad":
		m, err := openscad.NewRenderer(filepath.Dir(path)).RenderMesh(ctx, filepath.Base(path))
		if err != nil {
			return nil, fmt.Errorf("failed to render OpenSCAD file: %w", err)
		}
		return single(name, m), nil

	default:
		return nil, fmt.Errorf("unsupported file type: %s (expected .stl, .scad or .yaml)", ext)
	}
}

func single(name string, m *mesh.Mesh) *Scene {
	m.Name = name
	s := New()
	s.Add(NewMeshObject(name, m))
	return s
}

// SourceFiles lists the files a reload of path depends on. For OpenSCAD
// files this includes every used or included file.
func SourceFiles(path string) ([]string, error) {
	if strings.ToLower(filepath.Ext(path)) == ".scad" {
		return openscad.NewRenderer(filepath.Dir(path)).ResolveDependencies(filepath.Base(path))
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	return []string{abs}, nil
}

// WriteFile saves s to path. A .yaml path keeps the whole scene; an .stl
// path exports the visible objects in world space as one binary STL.
func (s *Scene) WriteFile(path string) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return s.Save(path)
	case ".stl":
		return stl.Save(path, s.ToModel(), stl.FormatBinary)
	default:
		return fmt.Errorf("unsupported file type: %s (expected .stl or .yaml)", ext)
	}
}

// ToModel flattens the visible objects into one triangle soup in world space
func (s *Scene) ToModel() *stl.Model {
	model := stl.NewModel("meshedit")
	for _, o := range s.Objects {
		if !o.Visible || o.mesh == nil {
			continue
		}
		world := o.WorldMatrix()
		m := o.mesh.Clone()
		for i := 0; i < m.VertexCount(); i++ {
			m.SetPosition(i, world.TransformPoint(m.Position(i)))
		}
		for _, t := range stl.FromMesh(m).Triangles {
			model.AddTriangle(t)
		}
	}
	if len(s.Objects) == 1 {
		model.Name = s.Objects[0].Name
	}
	return model
}
