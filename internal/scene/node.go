package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Node is one transform in the scene graph. A node with a Primitive draws a shape;
// a node without one only groups its children (a compound object).
// Rotation is Euler XYZ in radians: the local matrix is T * Rx * Ry * Rz * S.
type Node struct {
	Name      string
	Position  mgl32.Vec3
	Rotation  mgl32.Vec3
	Scale     mgl32.Vec3
	Primitive *Primitive // nil for group nodes
	Children  []*Node

	parent *Node
}

// NewGroup returns an empty compound node with unit scale.
func NewGroup(name string) *Node {
	return &Node{Name: name, Scale: mgl32.Vec3{1, 1, 1}}
}

// NewMesh returns a node that draws p, with unit scale.
func NewMesh(name string, p *Primitive) *Node {
	return &Node{Name: name, Scale: mgl32.Vec3{1, 1, 1}, Primitive: p}
}

// Add appends children in order. A child already owned by another node is
// detached from it first, so every node has at most one parent.
func (n *Node) Add(children ...*Node) {
	for _, c := range children {
		if c == nil || c == n {
			continue
		}
		if c.parent != nil {
			c.parent.remove(c)
		}
		c.parent = n
		n.Children = append(n.Children, c)
	}
}

func (n *Node) remove(c *Node) {
	for i, k := range n.Children {
		if k == c {
			n.Children = append(n.Children[:i], n.Children[i+1:]...)
			c.parent = nil
			return
		}
	}
}

// Parent returns the owning node, or nil for a root.
func (n *Node) Parent() *Node {
	return n.parent
}

// SetScalar sets the same scale on all three axes.
func (n *Node) SetScalar(s float32) {
	n.Scale = mgl32.Vec3{s, s, s}
}

// Local returns the node's transform relative to its parent.
func (n *Node) Local() mgl32.Mat4 {
	t := mgl32.Translate3D(n.Position[0], n.Position[1], n.Position[2])
	r := mgl32.HomogRotate3DX(n.Rotation[0]).
		Mul4(mgl32.HomogRotate3DY(n.Rotation[1])).
		Mul4(mgl32.HomogRotate3DZ(n.Rotation[2]))
	s := mgl32.Scale3D(n.Scale[0], n.Scale[1], n.Scale[2])
	return t.Mul4(r).Mul4(s)
}

// World returns the node's transform in scene space (all ancestors applied).
func (n *Node) World() mgl32.Mat4 {
	m := n.Local()
	for p := n.parent; p != nil; p = p.parent {
		m = p.Local().Mul4(m)
	}
	return m
}

// Walk visits n and its descendants depth-first, parents before children,
// passing each node's world transform. Returning false from fn skips that
// node's children.
func (n *Node) Walk(fn func(n *Node, world mgl32.Mat4) bool) {
	parent := mgl32.Ident4()
	if n.parent != nil {
		parent = n.parent.World()
	}
	n.walk(parent, fn)
}

func (n *Node) walk(parent mgl32.Mat4, fn func(*Node, mgl32.Mat4) bool) {
	world := parent.Mul4(n.Local())
	if !fn(n, world) {
		return
	}
	for _, c := range n.Children {
		c.walk(world, fn)
	}
}

// Find returns the first node named name in n's subtree (n included), or nil.
func (n *Node) Find(name string) *Node {
	if n.Name == name {
		return n
	}
	for _, c := range n.Children {
		if f := c.Find(name); f != nil {
			return f
		}
	}
	return nil
}

// Primitives returns the number of drawable nodes in n's subtree.
func (n *Node) Primitives() int {
	count := 0
	n.Walk(func(k *Node, _ mgl32.Mat4) bool {
		if k.Primitive != nil {
			count++
		}
		return true
	})
	return count
}
