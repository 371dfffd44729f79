package viewer

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	"github.com/philipparndt/meshedit/pkg/edit"
	"github.com/philipparndt/meshedit/pkg/geometry"
	"github.com/philipparndt/meshedit/pkg/mesh"
)

var (
	backgroundColor     = color.RGBA{30, 32, 36, 255}
	surfaceColor        = color.RGBA{90, 140, 200, 255}
	wireColor           = color.RGBA{20, 20, 24, 255}
	handleColor         = color.RGBA{230, 230, 230, 255}
	selectedHandleColor = color.RGBA{255, 150, 30, 255}
)

// Overlay describes the edit handles drawn on top of the shaded mesh
type Overlay struct {
	Mode      edit.Mode
	Edges     []mesh.Edge
	Selection edit.Selection
}

// OverlayFor captures the handle state of an engine
func OverlayFor(e *edit.Engine) Overlay {
	return Overlay{Mode: e.Mode(), Edges: e.Edges(), Selection: e.Selection()}
}

// RenderImage rasterises m, placed by world, as seen from cam, with flat
// shading, depth testing and the handles of the overlay's edit mode
func RenderImage(m *mesh.Mesh, world geometry.Matrix4, cam *Camera, overlay Overlay, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = backgroundColor.R, backgroundColor.G, backgroundColor.B, 255
	}
	if m == nil || width <= 0 || height <= 0 {
		return img
	}

	w, h := float64(width), float64(height)
	zbuffer := make([]float64, width*height)
	for i := range zbuffer {
		zbuffer[i] = math.Inf(1)
	}

	n := m.VertexCount()
	screen := make([][3]float64, n)
	for i := 0; i < n; i++ {
		x, y, z := cam.Project(world.TransformPoint(m.Position(i)), w, h)
		screen[i] = [3]float64{x, y, z}
	}
	inView := func(idx ...int) bool {
		for _, i := range idx {
			if i < 0 || i >= n || screen[i][2] <= 0.01 {
				return false
			}
		}
		return true
	}

	toLight := cam.Forward().Negate()
	for t := 0; t < m.TriangleCount(); t++ {
		a, b, c := m.TriangleIndices(t)
		if !inView(a, b, c) {
			continue
		}
		normal := geometry.FaceNormal(
			world.TransformPoint(m.Position(a)),
			world.TransformPoint(m.Position(b)),
			world.TransformPoint(m.Position(c)),
		)
		pa, pb, pc := screen[a], screen[b], screen[c]
		fillTriangleWithDepth(img, zbuffer, pa[0], pa[1], pa[2], pb[0], pb[1], pb[2], pc[0], pc[1], pc[2], shade(surfaceColor, normal.Dot(toLight)))
	}

	line := func(i, j int, col color.RGBA) {
		if inView(i, j) {
			drawLine(img, int(screen[i][0]), int(screen[i][1]), int(screen[j][0]), int(screen[j][1]), col)
		}
	}

	switch overlay.Mode {
	case edit.ModeEdge:
		for slot, e := range overlay.Edges {
			if !overlay.Selection.HasEdge(slot) {
				line(e[0], e[1], handleColor)
			}
		}
		for _, slot := range overlay.Selection.Edges {
			if slot >= 0 && slot < len(overlay.Edges) {
				line(overlay.Edges[slot][0], overlay.Edges[slot][1], selectedHandleColor)
			}
		}

	case edit.ModeVertex:
		for _, e := range mesh.DeriveEdges(m.Indices()) {
			line(e[0], e[1], wireColor)
		}
		// selected handles last so coincident duplicates do not hide them
		for i := 0; i < n; i++ {
			if inView(i) && !overlay.Selection.HasVertex(i) {
				drawSquare(img, int(screen[i][0]), int(screen[i][1]), 3, handleColor)
			}
		}
		for _, i := range overlay.Selection.Vertices {
			if inView(i) {
				drawSquare(img, int(screen[i][0]), int(screen[i][1]), 3, selectedHandleColor)
			}
		}
	}

	return img
}

// SavePNG encodes img into a PNG file
func SavePNG(filename string, img image.Image) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", filename, err)
	}
	if err := png.Encode(file, img); err != nil {
		file.Close()
		return fmt.Errorf("failed to encode %s: %w", filename, err)
	}
	return file.Close()
}

// shade scales col by a lambert term with some ambient light
func shade(col color.RGBA, lambert float64) color.RGBA {
	k := 0.25 + 0.75*math.Max(0, lambert)
	return color.RGBA{uint8(float64(col.R) * k), uint8(float64(col.G) * k), uint8(float64(col.B) * k), 255}
}

// drawSquare draws a filled square handle centred on x, y
func drawSquare(img *image.RGBA, x, y, half int, col color.RGBA) {
	bounds := img.Bounds()
	for py := y - half; py <= y+half; py++ {
		for px := x - half; px <= x+half; px++ {
			if px >= 0 && px < bounds.Max.X && py >= 0 && py < bounds.Max.Y {
				img.SetRGBA(px, py, col)
			}
		}
	}
}

// fillTriangleWithDepth fills a triangle with depth testing
func fillTriangleWithDepth(img *image.RGBA, zbuffer []float64, x1, y1, z1, x2, y2, z2, x3, y3, z3 float64, col color.RGBA) {
	// Convert to integers for pixel operations
	vertices := [][3]float64{
		{x1, y1, z1},
		{x2, y2, z2},
		{x3, y3, z3},
	}

	// Sort vertices by Y coordinate (top to bottom)
	if vertices[0][1] > vertices[1][1] {
		vertices[0], vertices[1] = vertices[1], vertices[0]
	}
	if vertices[1][1] > vertices[2][1] {
		vertices[1], vertices[2] = vertices[2], vertices[1]
	}
	if vertices[0][1] > vertices[1][1] {
		vertices[0], vertices[1] = vertices[1], vertices[0]
	}

	x1, y1, z1 = vertices[0][0], vertices[0][1], vertices[0][2]
	x2, y2, z2 = vertices[1][0], vertices[1][1], vertices[1][2]
	x3, y3, z3 = vertices[2][0], vertices[2][1], vertices[2][2]

	bounds := img.Bounds()
	width := bounds.Max.X

	// Scanline algorithm with depth interpolation
	for y := int(math.Max(0, y1)); y <= int(math.Min(float64(bounds.Max.Y-1), y3)); y++ {
		fy := float64(y)

		var xStart, xEnd, zStart, zEnd float64
		foundStart := false
		foundEnd := false

		// Find intersections with triangle edges
		// Edge 1-2
		if y1 != y2 && fy >= y1 && fy <= y2 {
			t := (fy - y1) / (y2 - y1)
			x := x1 + t*(x2-x1)
			z := z1 + t*(z2-z1)
			if !foundStart {
				xStart, zStart = x, z
				foundStart = true
			} else {
				xEnd, zEnd = x, z
				foundEnd = true
			}
		}

		// Edge 2-3
		if y2 != y3 && fy >= y2 && fy <= y3 {
			t := (fy - y2) / (y3 - y2)
			x := x2 + t*(x3-x2)
			z := z2 + t*(z3-z2)
			if !foundStart {
				xStart, zStart = x, z
				foundStart = true
			} else {
				xEnd, zEnd = x, z
				foundEnd = true
			}
		}

		// Edge 1-3
		if y1 != y3 && fy >= y1 && fy <= y3 {
			t := (fy - y1) / (y3 - y1)
			x := x1 + t*(x3-x1)
			z := z1 + t*(z3-z1)
			if !foundStart {
				xStart, zStart = x, z
				foundStart = true
			} else {
				xEnd, zEnd = x, z
				foundEnd = true
			}
		}

		if foundStart && foundEnd {
			// Ensure xStart < xEnd
			if xStart > xEnd {
				xStart, xEnd = xEnd, xStart
				zStart, zEnd = zEnd, zStart
			}

			// Clamp to image bounds
			xStartInt := int(math.Max(0, xStart))
			xEndInt := int(math.Min(float64(bounds.Max.X-1), xEnd))

			// Draw horizontal line with depth testing
			for x := xStartInt; x <= xEndInt; x++ {
				// Interpolate depth
				t := 0.0
				if xEnd != xStart {
					t = (float64(x) - xStart) / (xEnd - xStart)
				}
				z := zStart + t*(zEnd-zStart)

				// Depth test - draw if closer (smaller z)
				idx := y*width + x
				if idx >= 0 && idx < len(zbuffer) {
					if z < zbuffer[idx] {
						zbuffer[idx] = z
						img.SetRGBA(x, y, col)
					}
				}
			}
		}
	}
}

// drawLine draws a line on an image using Bresenham's algorithm
func drawLine(img *image.RGBA, x1, y1, x2, y2 int, col color.RGBA) {
	bounds := img.Bounds()

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	var sx, sy int
	if x1 < x2 {
		sx = 1
	} else {
		sx = -1
	}
	if y1 < y2 {
		sy = 1
	} else {
		sy = -1
	}

	err := dx - dy

	for {
		// Check bounds
		if x1 >= 0 && x1 < bounds.Max.X && y1 >= 0 && y1 < bounds.Max.Y {
			img.SetRGBA(x1, y1, col)
		}

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
