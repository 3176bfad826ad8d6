package scene

import (
	"fmt"

	"github.com/google/uuid"
)

// Node is a scene-graph node. Nodes form a tree via SetParent; geometry,
// visibility, and structure are observable through the On* subscription
// methods. A Node is not safe for concurrent use.
type Node struct {
	id      string
	name    string
	order   int
	visible bool
	size    Dim2
	pos     Dim2

	parent   *Node
	children []*Node

	driver    string
	destroyed bool

	childAdded   *signal[*Node]
	childRemoved *signal[*Node]
	destroySig   *signal[*Node]
	visChanged   *signal[*Node]
	extChanged   *signal[*Node]
}

// New creates a detached, visible node with zero size and position.
func New(name string) *Node {
	return &Node{
		id:           uuid.NewString(),
		name:         name,
		visible:      true,
		childAdded:   newSignal[*Node](),
		childRemoved: newSignal[*Node](),
		destroySig:   newSignal[*Node](),
		visChanged:   newSignal[*Node](),
		extChanged:   newSignal[*Node](),
	}
}

// ID returns the node's unique identity.
func (n *Node) ID() string { return n.id }

// Name returns the node's identifier string.
func (n *Node) Name() string { return n.name }

// OrderIndex returns the node's explicit ordering key.
func (n *Node) OrderIndex() int { return n.order }

// SetOrderIndex updates the node's ordering key. Order changes are not
// signalled; layout systems pick them up on their next pass.
func (n *Node) SetOrderIndex(i int) {
	if n.destroyed {
		return
	}
	n.order = i
}

// Visible reports whether the node participates in layout and rendering.
func (n *Node) Visible() bool { return n.visible }

// SetVisible updates the visibility flag, firing VisibilityChanged when
// the value actually changes.
func (n *Node) SetVisible(v bool) {
	if n.destroyed || n.visible == v {
		return
	}
	n.visible = v
	n.visChanged.emit(n)
}

// Size returns the node's scale/offset size.
func (n *Node) Size() Dim2 { return n.size }

// SetSize updates the node's size, firing ExtentChanged when the value
// actually changes.
func (n *Node) SetSize(s Dim2) {
	if n.destroyed || n.size == s {
		return
	}
	n.size = s
	n.extChanged.emit(n)
}

// Position returns the node's scale/offset position relative to its parent.
func (n *Node) Position() Dim2 { return n.pos }

// SetPosition updates the node's position. Position writes are not
// signalled; they are outputs of layout, not inputs to it.
func (n *Node) SetPosition(p Dim2) {
	if n.destroyed {
		return
	}
	n.pos = p
}

// Parent returns the node's parent, or nil for a root or detached node.
func (n *Node) Parent() *Node { return n.parent }

// Children returns a copy of the node's direct children in insertion order.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// Destroyed reports whether Destroy has been called on the node.
func (n *Node) Destroyed() bool { return n.destroyed }

// SetParent moves the node under p, firing ChildRemoved on the old parent
// and ChildAdded on the new one. Passing nil detaches the node. Returns
// an error when the move would create a cycle or either node is destroyed.
func (n *Node) SetParent(p *Node) error {
	if n.destroyed {
		return fmt.Errorf("scene: set parent of destroyed node %q", n.name)
	}
	if p != nil && p.destroyed {
		return fmt.Errorf("scene: set parent to destroyed node %q", p.name)
	}
	if p == n.parent {
		return nil
	}
	for a := p; a != nil; a = a.parent {
		if a == n {
			return fmt.Errorf("scene: parenting %q under %q creates a cycle", n.name, p.name)
		}
	}

	if old := n.parent; old != nil {
		old.removeChild(n)
		n.parent = nil
		old.childRemoved.emit(n)
	}
	if p != nil {
		n.parent = p
		p.children = append(p.children, n)
		p.childAdded.emit(n)
	}
	return nil
}

// AbsoluteExtent resolves the node's size against the parent chain.
func (n *Node) AbsoluteExtent() Vec2 {
	if n.parent == nil {
		return n.size.Resolve(Vec2{})
	}
	return n.size.Resolve(n.parent.AbsoluteExtent())
}

// AbsolutePosition resolves the node's position against the parent chain,
// relative to the tree root.
func (n *Node) AbsolutePosition() Vec2 {
	if n.parent == nil {
		return n.pos.Resolve(Vec2{})
	}
	base := n.parent.AbsolutePosition()
	rel := n.pos.Resolve(n.parent.AbsoluteExtent())
	return Vec2{X: base.X + rel.X, Y: base.Y + rel.Y}
}

// Driver returns the name of the attached layout driver, or "".
func (n *Node) Driver() string { return n.driver }

// AttachDriver claims the node's layout-driver slot. It reports whether
// the claim succeeded; attaching the same driver twice succeeds.
func (n *Node) AttachDriver(name string) bool {
	if n.destroyed {
		return false
	}
	if n.driver != "" && n.driver != name {
		return false
	}
	n.driver = name
	return true
}

// DetachDriver releases the driver slot if name currently holds it.
func (n *Node) DetachDriver(name string) {
	if n.driver == name {
		n.driver = ""
	}
}

// OnChildAdded subscribes to direct-child additions.
func (n *Node) OnChildAdded(fn func(child *Node)) Conn {
	if n.destroyed {
		return noopConn{}
	}
	return n.childAdded.connect(fn)
}

// OnChildRemoved subscribes to direct-child removals. The handler runs
// after the child has been detached from the tree.
func (n *Node) OnChildRemoved(fn func(child *Node)) Conn {
	if n.destroyed {
		return noopConn{}
	}
	return n.childRemoved.connect(fn)
}

// OnDestroyed subscribes to the node's destruction. The handler runs
// before the node's children are destroyed.
func (n *Node) OnDestroyed(fn func(node *Node)) Conn {
	if n.destroyed {
		return noopConn{}
	}
	return n.destroySig.connect(fn)
}

// OnVisibilityChanged subscribes to visibility flips on this node.
func (n *Node) OnVisibilityChanged(fn func(node *Node)) Conn {
	if n.destroyed {
		return noopConn{}
	}
	return n.visChanged.connect(fn)
}

// OnExtentChanged subscribes to size changes on this node.
func (n *Node) OnExtentChanged(fn func(node *Node)) Conn {
	if n.destroyed {
		return noopConn{}
	}
	return n.extChanged.connect(fn)
}

// Destroy removes the node from its parent, notifies Destroyed
// subscribers, destroys all descendants, and releases every handler.
// Destroy is idempotent.
func (n *Node) Destroy() {
	if n.destroyed {
		return
	}
	n.destroyed = true

	n.destroySig.emit(n)

	if old := n.parent; old != nil {
		old.removeChild(n)
		n.parent = nil
		old.childRemoved.emit(n)
	}

	kids := n.Children()
	for _, c := range kids {
		// Detach first so child destruction does not re-enter this
		// node's childRemoved handlers.
		c.parent = nil
		c.Destroy()
	}
	n.children = nil

	n.childAdded.clear()
	n.childRemoved.clear()
	n.destroySig.clear()
	n.visChanged.clear()
	n.extChanged.clear()
}

func (n *Node) removeChild(c *Node) {
	for i, k := range n.children {
		if k == c {
			n.children = append(n.children[:i], n.children[i+1:]...)
			return
		}
	}
}
