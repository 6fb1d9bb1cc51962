package scene

import (
	"sort"

	"github.com/go-gl/mathgl/mgl32"
)

// Draw is one primitive with its world transform, ready for the renderer.
type Draw struct {
	Node      *Node
	Primitive *Primitive
	World     mgl32.Mat4
}

// Model returns the matrix that maps a unit, origin-centred shape onto the
// primitive: world transform times the geometry size.
func (d Draw) Model() mgl32.Mat4 {
	s := d.Primitive.Geometry.Size
	return d.World.Mul4(mgl32.Scale3D(s[0], s[1], s[2]))
}

// Flatten walks root and returns every drawable primitive. Opaque primitives
// come first in graph order, then translucent ones, so blending sees what is
// behind it. dst is reused when it has capacity.
func Flatten(root *Node, dst []Draw) []Draw {
	dst = dst[:0]
	if root == nil {
		return dst
	}
	root.Walk(func(n *Node, world mgl32.Mat4) bool {
		p := n.Primitive
		if p != nil && p.Geometry != nil && p.Material != nil {
			dst = append(dst, Draw{Node: n, Primitive: p, World: world})
		}
		return true
	})
	sort.SliceStable(dst, func(i, j int) bool {
		return !dst[i].Primitive.Material.Translucent() && dst[j].Primitive.Material.Translucent()
	})
	return dst
}
