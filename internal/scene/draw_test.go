package scene

import (
	"image/color"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlattenOrdersTranslucentLast(t *testing.T) {
	glass := &Primitive{Geometry: BoxGeometry(1, 1, 1), Material: &Material{Opacity: 0.5}}
	solid := &Primitive{Geometry: BoxGeometry(1, 1, 1), Material: NewMaterial(color.RGBA{A: 255})}

	root := NewGroup("root")
	root.Add(NewMesh("glass", glass), NewMesh("a", solid), NewGroup("empty"), NewMesh("b", solid))

	draws := Flatten(root, nil)
	require.Len(t, draws, 3)
	assert.Equal(t, "a", draws[0].Node.Name)
	assert.Equal(t, "b", draws[1].Node.Name)
	assert.Equal(t, "glass", draws[2].Node.Name)

	again := Flatten(root, draws)
	assert.Len(t, again, 3)
	assert.Empty(t, Flatten(nil, nil))
}

func TestDrawModelScalesBySize(t *testing.T) {
	p := &Primitive{Geometry: BoxGeometry(60, 50, 50), Material: NewMaterial(color.RGBA{})}
	n := NewMesh("cockpit", p)
	n.Position = mgl32.Vec3{10, 0, 0}

	draws := Flatten(n, nil)
	require.Len(t, draws, 1)
	corner := draws[0].Model().Mul4x1(mgl32.Vec4{0.5, 0.5, 0.5, 1}).Vec3()
	assert.True(t, corner.ApproxEqual(mgl32.Vec3{40, 25, 25}), "got %v", corner)
}
