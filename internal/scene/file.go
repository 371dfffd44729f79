package scene

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/philipparndt/meshedit/pkg/geometry"
	"github.com/philipparndt/meshedit/pkg/mesh"
	"github.com/philipparndt/meshedit/pkg/primitive"
	"gopkg.in/yaml.v3"
)

type (
	document struct {
		Objects []objectDoc `yaml:"objects"`
	}

	objectDoc struct {
		Name      string          `yaml:"name"`
		Hidden    bool            `yaml:"hidden,omitempty"`
		Normals   string          `yaml:"normals,omitempty"`
		Primitive *primitive.Spec `yaml:"primitive,omitempty"`
		Transform transformDoc    `yaml:"transform"`
		// Edited holds vertices of a primitive that no longer sit where the
		// generator put them
		Edited []editedVertex `yaml:"edited,omitempty"`
		// Positions and Indices store meshes without a primitive
		Positions []vec3 `yaml:"positions,omitempty"`
		Indices   []int  `yaml:"indices,omitempty,flow"`
	}

	transformDoc struct {
		Position vec3 `yaml:"position"`
		Rotation vec3 `yaml:"rotation"`
		Scale    vec3 `yaml:"scale"`
	}

	editedVertex struct {
		Index    int  `yaml:"index"`
		Position vec3 `yaml:"position"`
	}

	vec3 [3]float64
)

// MarshalYAML writes a vector as a flow sequence
func (v vec3) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, c := range v {
		child := &yaml.Node{}
		if err := child.Encode(c); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, child)
	}
	return node, nil
}

func toVec3(v geometry.Vector3) vec3 {
	return vec3{v.X, v.Y, v.Z}
}

func (v vec3) vector() geometry.Vector3 {
	return geometry.NewVector3(v[0], v[1], v[2])
}

// Save writes the scene as YAML, creating parent directories
func (s *Scene) Save(path string) error {
	_ = os.MkdirAll(filepath.Dir(path), 0755)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	encoder := yaml.NewEncoder(f)
	defer encoder.Close()
	encoder.SetIndent(2)

	return encoder.Encode(s.document())
}

// Load reads a scene file written by Save
func Load(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var doc document
	if err := yaml.NewDecoder(f).Decode(&doc); err != nil {
		return nil, fmt.Errorf("scene: parse %s: %w", path, err)
	}

	s := New()
	for i, od := range doc.Objects {
		o, err := od.object()
		if err != nil {
			return nil, fmt.Errorf("scene: object %d (%s): %w", i, od.Name, err)
		}
		s.Add(o)
	}
	return s, nil
}

func (s *Scene) document() document {
	doc := document{Objects: make([]objectDoc, 0, len(s.Objects))}
	for _, o := range s.Objects {
		od := objectDoc{
			Name:   o.Name,
			Hidden: !o.Visible,
			Transform: transformDoc{
				Position: toVec3(o.Transform.Position),
				Rotation: toVec3(o.Transform.Rotation),
				Scale:    toVec3(o.Transform.Scale),
			},
		}
		if o.mesh != nil {
			od.Normals = o.mesh.NormalMode.String()
		}

		if o.Shape != nil {
			spec := primitive.ToSpec(o.Shape)
			od.Primitive = &spec
			od.Edited = editedVertices(o.Shape.Generate(), o.mesh)
		} else if o.mesh != nil {
			od.Positions = make([]vec3, o.mesh.VertexCount())
			for i, p := range o.mesh.Positions() {
				od.Positions[i] = toVec3(p)
			}
			od.Indices = o.mesh.Indices()
		}
		doc.Objects = append(doc.Objects, od)
	}
	return doc
}

// editedVertices lists the positions of current that differ from generated
func editedVertices(generated, current *mesh.Mesh) []editedVertex {
	if current == nil || current.VertexCount() != generated.VertexCount() {
		return nil
	}
	var edited []editedVertex
	for i := 0; i < current.VertexCount(); i++ {
		if p := current.Position(i); p != generated.Position(i) {
			edited = append(edited, editedVertex{Index: i, Position: toVec3(p)})
		}
	}
	return edited
}

func (od objectDoc) object() (*Object, error) {
	var o *Object
	switch {
	case od.Primitive != nil:
		shape, err := primitive.FromSpec(*od.Primitive)
		if err != nil {
			return nil, err
		}
		o = NewPrimitiveObject(od.Name, shape)
		for _, ev := range od.Edited {
			if ev.Index < 0 || ev.Index >= o.mesh.VertexCount() {
				return nil, fmt.Errorf("edited vertex %d out of range", ev.Index)
			}
			o.mesh.SetPosition(ev.Index, ev.Position.vector())
		}

	default:
		positions := make([]geometry.Vector3, len(od.Positions))
		for i, p := range od.Positions {
			positions[i] = p.vector()
		}
		for _, idx := range od.Indices {
			if idx < 0 || idx >= len(positions) {
				return nil, fmt.Errorf("index %d out of range", idx)
			}
		}
		o = NewMeshObject(od.Name, mesh.New(od.Name, positions, od.Indices))
	}

	switch od.Normals {
	case mesh.NormalsFlat.String():
		o.mesh.NormalMode = mesh.NormalsFlat
	case mesh.NormalsSmooth.String():
		o.mesh.NormalMode = mesh.NormalsSmooth
	}
	o.mesh.ComputeNormals()
	o.Visible = !od.Hidden
	o.Transform = Transform{
		Position: od.Transform.Position.vector(),
		Rotation: od.Transform.Rotation.vector(),
		Scale:    od.Transform.Scale.vector(),
	}
	if o.Transform.Scale == (geometry.Vector3{}) {
		o.Transform.Scale = geometry.NewVector3(1, 1, 1)
	}
	return o, nil
}
