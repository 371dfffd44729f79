package app

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/meshedit/internal/scene"
	"github.com/philipparndt/meshedit/pkg/geometry"
	"github.com/philipparndt/meshedit/pkg/mesh"
)

// gpuMesh is an uploaded copy of a mesh at one revision
type gpuMesh struct {
	mesh     rl.Mesh
	source   *mesh.Mesh
	revision uint64
}

// lightDir is the direction used for baked lighting
var lightDir = geometry.NewVector3(-0.5, -1.0, -0.5).Normalize()

// toRaylibMatrix converts a row-major transform
func toRaylibMatrix(m geometry.Matrix4) rl.Matrix {
	return rl.Matrix{
		M0: float32(m[0]), M4: float32(m[1]), M8: float32(m[2]), M12: float32(m[3]),
		M1: float32(m[4]), M5: float32(m[5]), M9: float32(m[6]), M13: float32(m[7]),
		M2: float32(m[8]), M6: float32(m[9]), M10: float32(m[10]), M14: float32(m[11]),
		M3: float32(m[12]), M7: float32(m[13]), M11: float32(m[14]), M15: float32(m[15]),
	}
}

// bakeMesh expands the triangles of m into per-corner arrays with flat baked
// lighting. Positions stay in local space.
func bakeMesh(m *mesh.Mesh) (vertices, normals, texcoords []float32, colors []uint8) {
	triangleCount := m.TriangleCount()
	vertexCount := triangleCount * 3

	vertices = make([]float32, 0, vertexCount*3)
	normals = make([]float32, 0, vertexCount*3)
	texcoords = make([]float32, vertexCount*2)
	colors = make([]uint8, 0, vertexCount*4)

	for t := 0; t < triangleCount; t++ {
		triangle := m.Triangle(t)
		normal := triangle.Normal

		// Min 30% ambient, max 100% diffuse
		lightIntensity := math.Max(0.3, -normal.Dot(lightDir))
		baseColor := 200.0
		r := uint8(baseColor * lightIntensity * 0.5)
		g := uint8(baseColor * lightIntensity * 0.6)
		b := uint8(baseColor * lightIntensity)

		for _, v := range [3]geometry.Vector3{triangle.V1, triangle.V2, triangle.V3} {
			vertices = append(vertices, float32(v.X), float32(v.Y), float32(v.Z))
			normals = append(normals, float32(normal.X), float32(normal.Y), float32(normal.Z))
			colors = append(colors, r, g, b, 255)
		}
	}
	return vertices, normals, texcoords, colors
}

// uploadMesh converts a mesh to a raylib mesh with baked lighting
func uploadMesh(m *mesh.Mesh) rl.Mesh {
	vertices, normals, texcoords, colors := bakeMesh(m)

	out := rl.Mesh{
		VertexCount:   int32(len(vertices) / 3),
		TriangleCount: int32(len(vertices) / 9),
	}
	if len(vertices) > 0 {
		out.Vertices = &vertices[0]
		out.Normals = &normals[0]
		out.Texcoords = &texcoords[0]
		out.Colors = &colors[0]
	}

	// Upload mesh data to GPU
	rl.UploadMesh(&out, false)
	return out
}

// syncMeshes uploads meshes that are new or were edited since the last frame
// and drops those of removed objects
func (app *App) syncMeshes() {
	alive := make(map[*scene.Object]bool, len(app.Scene.scene.Objects))
	for _, o := range app.Scene.scene.Objects {
		m := o.Mesh()
		if m == nil || m.TriangleCount() == 0 {
			continue
		}
		alive[o] = true

		current, ok := app.Scene.meshes[o]
		if ok && current.source == m && current.revision == m.Revision() {
			continue
		}
		if ok {
			rl.UnloadMesh(&current.mesh)
		}
		app.Scene.meshes[o] = gpuMesh{mesh: uploadMesh(m), source: m, revision: m.Revision()}
		m.ClearDirty()
	}

	for o, gm := range app.Scene.meshes {
		if !alive[o] {
			rl.UnloadMesh(&gm.mesh)
			delete(app.Scene.meshes, o)
		}
	}
}

func (app *App) unloadMeshes() {
	for o, gm := range app.Scene.meshes {
		rl.UnloadMesh(&gm.mesh)
		delete(app.Scene.meshes, o)
	}
}

// drawScene draws every visible object inside BeginMode3D
func (app *App) drawScene() {
	for _, o := range app.Scene.scene.Objects {
		if !o.Visible {
			continue
		}
		if gm, ok := app.Scene.meshes[o]; ok && app.View.showFilled {
			rl.DrawMesh(gm.mesh, app.Scene.material, toRaylibMatrix(o.WorldMatrix()))
		}
		if app.View.showWireframe {
			app.drawWireframe(o)
		}
	}
}
