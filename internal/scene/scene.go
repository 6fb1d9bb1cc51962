// Package scene describes what is drawn: a graph of nodes holding primitive
// shapes, plus the camera, lights and fog that frame them. It knows nothing
// about the GPU; the render package turns a Scene into raylib draw calls.
package scene

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
)

// Shape is a primitive solid.
type Shape int

const (
	Box Shape = iota
	Cylinder
)

func (s Shape) String() string {
	switch s {
	case Box:
		return "box"
	case Cylinder:
		return "cylinder"
	default:
		return "unknown"
	}
}

// Geometry is a centered primitive solid. For a cylinder, Size is
// (2*radius, height, 2*radius) with the axis along local Y.
type Geometry struct {
	Shape    Shape
	Size     mgl32.Vec3
	Segments int // radial segments, cylinders only
}

// BoxGeometry returns a w x h x d box.
func BoxGeometry(w, h, d float32) *Geometry {
	return &Geometry{Shape: Box, Size: mgl32.Vec3{w, h, d}}
}

// CylinderGeometry returns a cylinder of the given radius and height along local Y.
func CylinderGeometry(radius, height float32, segments int) *Geometry {
	if segments < 3 {
		segments = 3
	}
	return &Geometry{Shape: Cylinder, Size: mgl32.Vec3{2 * radius, height, 2 * radius}, Segments: segments}
}

// Material is a flat-shaded colour. Opacity below 1 makes it translucent.
type Material struct {
	Color   color.RGBA
	Opacity float32
}

// NewMaterial returns an opaque material.
func NewMaterial(c color.RGBA) *Material {
	return &Material{Color: c, Opacity: 1}
}

// Translucent reports whether the material must be blended over what is behind it.
func (m *Material) Translucent() bool {
	return m.Opacity < 1
}

// Primitive is a drawable leaf: geometry, material and shadow flags.
// Geometry and Material may be shared by reference between sibling primitives.
type Primitive struct {
	Geometry      *Geometry
	Material      *Material
	CastShadow    bool
	ReceiveShadow bool
}

// HemisphereLight blends Sky and Ground colours by surface orientation.
type HemisphereLight struct {
	Sky       color.RGBA
	Ground    color.RGBA
	Intensity float32
}

// DirectionalLight shines from Position towards the origin.
type DirectionalLight struct {
	Color      color.RGBA
	Intensity  float32
	Position   mgl32.Vec3
	CastShadow bool
}

// Direction returns the normalized direction from the origin towards the light.
func (l DirectionalLight) Direction() mgl32.Vec3 {
	if l.Position.Len() == 0 {
		return mgl32.Vec3{0, 1, 0}
	}
	return l.Position.Normalize()
}

// Camera is a perspective camera. Fov is vertical, in degrees.
// Aspect only feeds Projection and Project; raylib derives its own aspect
// from the framebuffer when drawing.
type Camera struct {
	Fov      float32
	Near     float32
	Far      float32
	Aspect   float32
	Position mgl32.Vec3
	Target   mgl32.Vec3
}

// SetViewport updates the aspect ratio; zero sizes are ignored.
func (c *Camera) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.Aspect = float32(width) / float32(height)
}

// View is the look-at matrix with +Y up.
func (c Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Target, mgl32.Vec3{0, 1, 0})
}

// Projection is the perspective matrix for Fov, Aspect and the clip planes.
func (c Camera) Projection() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.Fov), c.Aspect, c.Near, c.Far)
}

// Project maps a world point to normalized device coordinates. A point is on
// screen when x and y are both within [-1, 1].
func (c Camera) Project(p mgl32.Vec3) mgl32.Vec3 {
	clip := c.Projection().Mul4(c.View()).Mul4x1(p.Vec4(1))
	return clip.Vec3().Mul(1 / clip[3])
}

// Fog is linear distance fog between Near and Far.
type Fog struct {
	Color color.RGBA
	Near  float32
	Far   float32
}

// Scene is the root of everything drawn in one frame.
type Scene struct {
	Root       *Node
	Camera     Camera
	Hemisphere HemisphereLight
	Sun        DirectionalLight
	Fog        Fog
	Background color.RGBA
}

// New returns a scene with an empty root group.
func New() *Scene {
	return &Scene{Root: NewGroup("scene")}
}

// Add inserts compound objects under the root.
func (s *Scene) Add(nodes ...*Node) {
	s.Root.Add(nodes...)
}
