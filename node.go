package scene

// Node is the positionable, opacity-bearing anchor shared by all
// renderables. Components embed it rather than inheriting behavior:
// the renderer only needs position, size and opacity.
//
// Width and height are measurement caches updated as a side effect of
// Measure/Draw, not authoritative geometry; the scene graph uses them
// as the bounding box for culling.
type Node struct {
	id      NodeID
	pos     Vec2
	width   float32
	height  float32
	opacity float32
	parent  *Node
}

// NewNode creates a node with a fresh ID and full opacity.
func NewNode() Node {
	return Node{id: nextNodeID(), opacity: 1}
}

// ID returns the node's stable identifier.
func (n *Node) ID() NodeID { return n.id }

// Position returns the node's current position.
func (n *Node) Position() Vec2 { return n.pos }

// SetPosition moves the node.
func (n *Node) SetPosition(p Vec2) { n.pos = p }

// Size returns the node's cached width and height.
func (n *Node) Size() Vec2 { return Vec2{X: n.width, Y: n.height} }

// Bounds returns the node's bounding box at its current position.
func (n *Node) Bounds() Rect {
	return Rect{X: n.pos.X, Y: n.pos.Y, W: n.width, H: n.height}
}

// Opacity returns the node's own opacity (0.0-1.0).
func (n *Node) Opacity() float32 { return n.opacity }

// SetOpacity sets the node's opacity, clamped to [0, 1].
func (n *Node) SetOpacity(a float32) { n.opacity = clampf(a, 0, 1) }

// SetParent attaches the node under parent for opacity inheritance.
// A nil parent detaches it.
func (n *Node) SetParent(parent *Node) { n.parent = parent }

// EffectiveOpacity returns the node's opacity multiplied through its
// ancestor chain.
func (n *Node) EffectiveOpacity() float32 {
	a := n.opacity
	for p := n.parent; p != nil; p = p.parent {
		a *= p.opacity
	}
	return a
}

// setSize updates the cached bounding box dimensions.
func (n *Node) setSize(w, h float32) {
	n.width = w
	n.height = h
}

// Drawable is implemented by anything a Scene can render.
type Drawable interface {
	// DrawTo draws the component onto the surface at its current position.
	DrawTo(s Surface)
}

// Scene is a flat container of drawables rendered in insertion order.
// It exists so components have an owning context; it performs no
// culling or z-sorting of its own.
type Scene struct {
	root  Node
	items []Drawable
}

// SceneOption configures a Scene.
type SceneOption func(*Scene)

// WithSceneOpacity sets the scene root opacity inherited by all
// attached nodes.
func WithSceneOpacity(a float32) SceneOption {
	return func(sc *Scene) { sc.root.SetOpacity(a) }
}

// NewScene creates an empty scene.
func NewScene(opts ...SceneOption) *Scene {
	sc := &Scene{root: NewNode()}
	for _, opt := range opts {
		opt(sc)
	}
	return sc
}

// Root returns the scene's root node.
func (sc *Scene) Root() *Node { return &sc.root }

// Add appends a drawable to the scene. If the drawable exposes a node
// anchor, it is parented under the scene root.
func (sc *Scene) Add(d Drawable) {
	if a, ok := d.(interface{ anchor() *Node }); ok {
		a.anchor().SetParent(&sc.root)
	}
	sc.items = append(sc.items, d)
}

// Len returns the number of drawables in the scene.
func (sc *Scene) Len() int { return len(sc.items) }

// Render draws every item in insertion order.
func (sc *Scene) Render(s Surface) {
	for _, d := range sc.items {
		d.DrawTo(s)
	}
}
