// Package render draws a world with raylib. Meshes and the lit shader are created
// on first use so GPU resources are allocated after the window/OpenGL context exists.
package render

import (
	"image/color"

	"aviator/internal/scene"
	"aviator/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

// meshKey identifies a unit mesh; cylinders differ by radial segment count.
type meshKey struct {
	shape    scene.Shape
	segments int
}

// Renderer caches one unit mesh per shape and one material with the lit shader.
// Each primitive is drawn by scaling a unit mesh to its geometry size.
type Renderer struct {
	meshes   map[meshKey]rl.Mesh
	mtl      rl.Material
	uniforms uniforms
	ready    bool
	draws    []scene.Draw
	overlays []func()
	clip     [2]float32
}

// New returns a renderer with nothing loaded yet.
func New() *Renderer {
	return &Renderer{meshes: make(map[meshKey]rl.Mesh)}
}

// AddOverlay registers a 2D draw function called after the 3D pass, in order.
func (r *Renderer) AddOverlay(fn func()) {
	if fn != nil {
		r.overlays = append(r.overlays, fn)
	}
}

// ensureMaterial creates the shared material on first Render.
func (r *Renderer) ensureMaterial() {
	if r.ready {
		return
	}
	r.mtl = rl.LoadMaterialDefault()
	if shader := loadLitShader(); rl.IsShaderValid(shader) {
		r.mtl.Shader = shader
		r.uniforms = locate(shader)
	} else {
		r.uniforms = uniforms{-1, -1, -1, -1, -1, -1, -1, -1, -1, -1}
	}
	r.ready = true
}

// mesh returns the unit mesh for g, generating it on first use. Cubes are 1x1x1;
// cylinders have radius 0.5 and height 1.
func (r *Renderer) mesh(g *scene.Geometry) rl.Mesh {
	key := meshKey{shape: g.Shape}
	if g.Shape == scene.Cylinder {
		key.segments = g.Segments
	}
	if m, ok := r.meshes[key]; ok {
		return m
	}
	var m rl.Mesh
	switch g.Shape {
	case scene.Cylinder:
		m = rl.GenMeshCylinder(0.5, 1, key.segments)
	default:
		m = rl.GenMeshCube(1, 1, 1)
	}
	r.meshes[key] = m
	return m
}

// centerOffset shifts a unit mesh so its centre sits at the origin. Raylib's
// cylinder has its base at Y=0 and top at Y=1.
func centerOffset(s scene.Shape) mgl32.Mat4 {
	if s == scene.Cylinder {
		return mgl32.Translate3D(0, -0.5, 0)
	}
	return mgl32.Ident4()
}

// matrix converts a column-major mgl32 matrix to raylib's layout (also column-major:
// M12, M13, M14 hold the translation).
func matrix(m mgl32.Mat4) rl.Matrix {
	return rl.Matrix{
		M0: m[0], M1: m[1], M2: m[2], M3: m[3],
		M4: m[4], M5: m[5], M6: m[6], M7: m[7],
		M8: m[8], M9: m[9], M10: m[10], M11: m[11],
		M12: m[12], M13: m[13], M14: m[14], M15: m[15],
	}
}

func vector(v mgl32.Vec3) rl.Vector3 {
	return rl.NewVector3(v[0], v[1], v[2])
}

// Camera converts the scene camera to a raylib perspective camera.
func Camera(c scene.Camera) rl.Camera3D {
	return rl.Camera3D{
		Position:   vector(c.Position),
		Target:     vector(c.Target),
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       c.Fov,
		Projection: rl.CameraPerspective,
	}
}

func tint(m *scene.Material) color.RGBA {
	c := m.Color
	a := m.Opacity
	if a > 1 {
		a = 1
	}
	if a < 0 {
		a = 0
	}
	c.A = uint8(a*255 + 0.5)
	return c
}

// Render draws one frame: clear, 3D pass over the world's scene, overlays.
// EndDrawing presents the frame and waits out the rest of the target frame time.
func (r *Renderer) Render(w *world.World) {
	r.ensureMaterial()
	s := w.Scene
	if clip := [2]float32{s.Camera.Near, s.Camera.Far}; clip != r.clip {
		rl.SetClipPlanes(float64(clip[0]), float64(clip[1]))
		r.clip = clip
	}

	rl.BeginDrawing()
	rl.ClearBackground(s.Background)

	setFrameUniforms(r.mtl.Shader, r.uniforms, s)
	rl.BeginMode3D(Camera(s.Camera))
	r.draws = scene.Flatten(s.Root, r.draws)
	for _, d := range r.draws {
		g := d.Primitive.Geometry
		if albedo := r.mtl.GetMap(rl.MapAlbedo); albedo != nil {
			albedo.Color = tint(d.Primitive.Material)
		}
		model := d.Model().Mul4(centerOffset(g.Shape))
		rl.DrawMesh(r.mesh(g), r.mtl, matrix(model))
	}
	rl.EndMode3D()

	for _, fn := range r.overlays {
		fn()
	}
	rl.EndDrawing()
}

// Close releases the GPU resources. Call before the window closes.
func (r *Renderer) Close() {
	for k, m := range r.meshes {
		rl.UnloadMesh(&m)
		delete(r.meshes, k)
	}
	if r.ready {
		rl.UnloadMaterial(r.mtl)
		r.ready = false
	}
}
