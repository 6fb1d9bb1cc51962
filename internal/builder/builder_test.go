package builder

import (
	"testing"

	"aviator/internal/scene"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedRand always returns the same value.
type fixedRand float32

func (f fixedRand) Float32() float32 { return float32(f) }

func TestSea(t *testing.T) {
	sea := Sea()
	assert.Equal(t, SeaName, sea.Name)
	require.Len(t, sea.Children, 1)
	body := sea.Children[0]
	require.NotNil(t, body.Primitive)
	assert.Equal(t, scene.Cylinder, body.Primitive.Geometry.Shape)
	assert.Equal(t, float32(2*seaRadius), body.Primitive.Geometry.Size[0])
	assert.Equal(t, float32(seaHeight), body.Primitive.Geometry.Size[1])
	assert.True(t, body.Primitive.Material.Translucent())
	assert.True(t, body.Primitive.ReceiveShadow)
	assert.Equal(t, float32(-math32.Pi/2), body.Rotation[0])
}

func TestCloudBlockCount(t *testing.T) {
	assert.Len(t, Cloud(fixedRand(0)).Children, 3)
	assert.Len(t, Cloud(fixedRand(0.5)).Children, 4)
	assert.Len(t, Cloud(fixedRand(0.9999)).Children, 5)

	rnd := NewRand(7)
	for i := 0; i < 500; i++ {
		n := len(Cloud(rnd).Children)
		assert.GreaterOrEqual(t, n, 3)
		assert.LessOrEqual(t, n, 5)
	}
}

func TestCloudBlocks(t *testing.T) {
	c := Cloud(NewRand(42))
	first := c.Children[0].Primitive
	for i, b := range c.Children {
		assert.Equal(t, float32(i)*cloudBlockStep, b.Position[0])
		assert.GreaterOrEqual(t, b.Position[1], float32(0))
		assert.Less(t, b.Position[1], float32(cloudJitter))
		assert.Equal(t, b.Scale[0], b.Scale[1])
		assert.Equal(t, b.Scale[0], b.Scale[2])
		assert.GreaterOrEqual(t, b.Scale[0], float32(0.1))
		assert.Less(t, b.Scale[0], float32(1))
		assert.Zero(t, b.Rotation[0])
		assert.Same(t, first.Geometry, b.Primitive.Geometry)
		assert.Same(t, first.Material, b.Primitive.Material)
		assert.True(t, b.Primitive.CastShadow)
	}
}

func TestCloudsAreIndependent(t *testing.T) {
	rnd := NewRand(3)
	a, b := Cloud(rnd), Cloud(rnd)
	assert.NotEqual(t, a.Children[0].Position, b.Children[0].Position)
}

func TestSkyLayoutAngles(t *testing.T) {
	layout := SkyLayout(NewRand(1), DefaultClouds)
	require.Len(t, layout, DefaultClouds)
	step := math32.Pi * 2 / float32(DefaultClouds)
	for i, p := range layout {
		assert.Equal(t, step*float32(i), p.Angle)
		assert.GreaterOrEqual(t, p.Radius, float32(skyRadius))
		assert.Less(t, p.Radius, float32(skyRadius+skyRadiusJitter))
		assert.LessOrEqual(t, p.Depth, float32(skyDepth))
		assert.Greater(t, p.Depth, float32(skyDepth-skyDepthJitter))
		assert.GreaterOrEqual(t, p.Scale, float32(1))
		assert.Less(t, p.Scale, float32(3))
	}
	assert.Empty(t, SkyLayout(NewRand(1), 0))
}

func TestSky(t *testing.T) {
	sky := Sky(NewRand(11), DefaultClouds)
	assert.Equal(t, SkyName, sky.Name)
	require.Len(t, sky.Children, DefaultClouds)

	step := math32.Pi * 2 / float32(DefaultClouds)
	for i, c := range sky.Children {
		assert.Equal(t, CloudName, c.Name)
		a := step * float32(i)
		assert.InDelta(t, a+math32.Pi/2, c.Rotation[2], 1e-6)
		r := math32.Hypot(c.Position[0], c.Position[1])
		assert.InDelta(t, math32.Cos(a)*r, c.Position[0], 1e-2)
		assert.InDelta(t, math32.Sin(a)*r, c.Position[1], 1e-2)
	}
}

func TestSkySeeded(t *testing.T) {
	a := Sky(NewRand(99), 5)
	b := Sky(NewRand(99), 5)
	for i := range a.Children {
		assert.Equal(t, a.Children[i].Position, b.Children[i].Position)
		assert.Equal(t, len(a.Children[i].Children), len(b.Children[i].Children))
	}
}

func TestAirplane(t *testing.T) {
	plane, prop := Airplane()
	assert.Equal(t, AirplaneName, plane.Name)
	assert.Len(t, plane.Children, 5)
	assert.Equal(t, 6, plane.Primitives())

	require.NotNil(t, prop)
	assert.Equal(t, PropellerName, prop.Name)
	assert.Same(t, plane, prop.Parent())
	require.Len(t, prop.Children, 1)
	assert.Equal(t, BladeName, prop.Children[0].Name)

	for _, name := range []string{"cockpit", "engine", "tail", "sidewing"} {
		assert.NotNil(t, plane.Find(name), name)
	}
	assert.Equal(t, float32(40), plane.Find("engine").Position[0])
	assert.Equal(t, float32(50), prop.Position[0])
}

func TestAirplanePartsNotShared(t *testing.T) {
	a, _ := Airplane()
	b, _ := Airplane()
	assert.NotSame(t, a.Children[0].Primitive, b.Children[0].Primitive)
	assert.NotSame(t, a.Children[0].Primitive.Material, a.Children[2].Primitive.Material)
}
