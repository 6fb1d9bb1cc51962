// Package builder assembles primitive solids into the compound objects of the
// scene: the sea, clouds, the sky and the airplane. Builders that need
// randomness take a Rand so a seeded source reproduces the same scene.
package builder

import (
	"image/color"

	"aviator/internal/scene"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Palette.
var (
	Red       = color.RGBA{0xf2, 0x53, 0x46, 0xff}
	White     = color.RGBA{0xd8, 0xd0, 0xd1, 0xff}
	Brown     = color.RGBA{0x59, 0x33, 0x2e, 0xff}
	Pink      = color.RGBA{0xf5, 0x98, 0x6e, 0xff}
	BrownDark = color.RGBA{0x23, 0x19, 0x0f, 0xff}
	Blue      = color.RGBA{0x68, 0xc3, 0xc0, 0xff}
)

const (
	seaRadius   = 600
	seaHeight   = 800
	seaSegments = 40
	seaOpacity  = 0.6

	cloudBlockSize  = 20
	cloudMinBlocks  = 3
	cloudExtraBlock = 3 // blocks = cloudMinBlocks + floor(r*cloudExtraBlock)
	cloudBlockStep  = 15
	cloudJitter     = 10
	cloudMinScale   = 0.1
	cloudScaleRange = 0.9

	// DefaultClouds is the number of clouds in the sky.
	DefaultClouds = 20

	skyRadius       = 750
	skyRadiusJitter = 200
	skyDepth        = -400
	skyDepthJitter  = 400
	skyMinScale     = 1
	skyScaleRange   = 2
)

// Names of the compound objects and retained parts.
const (
	SeaName       = "sea"
	SkyName       = "sky"
	CloudName     = "cloud"
	AirplaneName  = "airplane"
	PropellerName = "propeller"
	BladeName     = "blade"
)

// Sea returns a wide cylinder laid on its side (axis along Z) with a translucent
// blue material. Rotating the node about Z rolls the sea under the airplane.
func Sea() *scene.Node {
	mat := &scene.Material{Color: Blue, Opacity: seaOpacity}
	body := scene.NewMesh("water", &scene.Primitive{
		Geometry:      scene.CylinderGeometry(seaRadius, seaHeight, seaSegments),
		Material:      mat,
		ReceiveShadow: true,
	})
	body.Rotation = mgl32.Vec3{-math32.Pi / 2, 0, 0}

	sea := scene.NewGroup(SeaName)
	sea.Add(body)
	return sea
}

// Cloud returns 3 to 5 white cubes lined up along X, each with random vertical and
// depth jitter, a random rotation about Y and Z, and a random uniform scale in
// [0.1, 1). The cubes share one geometry and one material.
func Cloud(rnd Rand) *scene.Node {
	geom := scene.BoxGeometry(cloudBlockSize, cloudBlockSize, cloudBlockSize)
	mat := scene.NewMaterial(White)

	cloud := scene.NewGroup(CloudName)
	blocks := cloudMinBlocks + int(math32.Floor(rnd.Float32()*cloudExtraBlock))
	for i := 0; i < blocks; i++ {
		m := scene.NewMesh("block", &scene.Primitive{
			Geometry:      geom,
			Material:      mat,
			CastShadow:    true,
			ReceiveShadow: true,
		})
		m.Position = mgl32.Vec3{
			float32(i) * cloudBlockStep,
			rnd.Float32() * cloudJitter,
			rnd.Float32() * cloudJitter,
		}
		m.Rotation[2] = rnd.Float32() * math32.Pi * 2
		m.Rotation[1] = rnd.Float32() * math32.Pi * 2
		m.SetScalar(cloudMinScale + rnd.Float32()*cloudScaleRange)
		cloud.Add(m)
	}
	return cloud
}

// CloudPlacement is where a cloud sits on the sky's ring.
type CloudPlacement struct {
	Angle  float32 // i * 2π/n, before any jitter
	Radius float32 // distance from the ring's centre
	Depth  float32 // Z offset behind the ring
	Scale  float32 // uniform scale
}

// Position returns the cloud's cartesian position on the ring.
func (p CloudPlacement) Position() mgl32.Vec3 {
	return mgl32.Vec3{math32.Cos(p.Angle) * p.Radius, math32.Sin(p.Angle) * p.Radius, p.Depth}
}

// Rotation turns the cloud so its local up follows the radial direction.
func (p CloudPlacement) Rotation() float32 {
	return p.Angle + math32.Pi/2
}

// SkyLayout returns n placements at exactly 2π/n radians apart with a random
// radius in [750, 950), depth in (-800, -400] and scale in [1, 3).
func SkyLayout(rnd Rand, n int) []CloudPlacement {
	if n <= 0 {
		return nil
	}
	step := math32.Pi * 2 / float32(n)
	out := make([]CloudPlacement, n)
	for i := range out {
		p := CloudPlacement{Angle: step * float32(i)}
		p.Radius = skyRadius + rnd.Float32()*skyRadiusJitter
		p.Depth = skyDepth - rnd.Float32()*skyDepthJitter
		p.Scale = skyMinScale + rnd.Float32()*skyScaleRange
		out[i] = p
	}
	return out
}

// Sky returns a group of n clouds arranged on a ring around its origin.
func Sky(rnd Rand, n int) *scene.Node {
	sky := scene.NewGroup(SkyName)
	for _, p := range SkyLayout(rnd, n) {
		c := Cloud(rnd)
		c.Position = p.Position()
		c.Rotation[2] = p.Rotation()
		c.SetScalar(p.Scale)
		sky.Add(c)
	}
	return sky
}

type part struct {
	name   string
	size   mgl32.Vec3
	offset mgl32.Vec3
	color  color.RGBA
}

var airplaneParts = []part{
	{name: "cockpit", size: mgl32.Vec3{60, 50, 50}, color: Red},
	{name: "engine", size: mgl32.Vec3{20, 50, 50}, offset: mgl32.Vec3{40, 0, 0}, color: White},
	{name: "tail", size: mgl32.Vec3{15, 20, 5}, offset: mgl32.Vec3{-35, 25, 0}, color: Red},
	{name: "sidewing", size: mgl32.Vec3{40, 8, 150}, color: Red},
}

var (
	propellerPart = part{name: PropellerName, size: mgl32.Vec3{20, 10, 10}, offset: mgl32.Vec3{50, 0, 0}, color: Brown}
	bladePart     = part{name: BladeName, size: mgl32.Vec3{1, 100, 20}, offset: mgl32.Vec3{8, 0, 0}, color: BrownDark}
)

func (p part) node() *scene.Node {
	n := scene.NewMesh(p.name, &scene.Primitive{
		Geometry:      scene.BoxGeometry(p.size[0], p.size[1], p.size[2]),
		Material:      scene.NewMaterial(p.color),
		CastShadow:    true,
		ReceiveShadow: true,
	})
	n.Position = p.offset
	return n
}

// Airplane returns the airplane and its propeller. The blade is a child of the
// propeller so it turns with it; the propeller is the only part animated later.
func Airplane() (plane, propeller *scene.Node) {
	plane = scene.NewGroup(AirplaneName)
	for _, p := range airplaneParts {
		plane.Add(p.node())
	}
	propeller = propellerPart.node()
	propeller.Add(bladePart.node())
	plane.Add(propeller)
	return plane, propeller
}
