package backend

import "strings"

// NodeKind enumerates the kinds of nodes in a [Tree].
type NodeKind uint8

const (
	ElementNode NodeKind = iota
	TextNode
	MarkerNode
)

// Node is a node in a [Tree]. Exported fields are read-only to callers;
// mutate them through the Tree methods so that sibling links stay
// consistent.
type Node struct {
	ID    int
	Kind  NodeKind
	Tag   string
	Text  string
	Attrs map[string]string
	// Props holds values set with property semantics, separately from
	// Attrs, mirroring the DOM's attribute/property split.
	Props     map[string]string
	Listeners map[string]Token

	parent   *Node
	children []*Node
}

// Parent returns the node's parent, or nil if detached.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the node's children. The returned slice must not be
// mutated.
func (n *Node) Children() []*Node { return n.children }

// Tree is an in-memory retained node tree. It implements the structural
// part of [Backend]; backends embed it and add their own I/O and event
// delivery.
type Tree struct {
	root   *Node
	nextID int
}

// NewTree returns a Tree with a fresh root container.
func NewTree() *Tree {
	t := &Tree{}
	t.root = t.newNode(ElementNode)
	t.root.Tag = "#root"
	return t
}

// Root returns the handle of the root container.
func (t *Tree) Root() Handle { return t.root }

func (t *Tree) newNode(kind NodeKind) *Node {
	t.nextID++
	return &Node{ID: t.nextID, Kind: kind}
}

func (t *Tree) CreateElement(tag string) Handle {
	n := t.newNode(ElementNode)
	n.Tag = tag
	return n
}

func (t *Tree) CreateText(data string) Handle {
	n := t.newNode(TextNode)
	n.Text = data
	return n
}

func (t *Tree) CreateMarker() Handle {
	return t.newNode(MarkerNode)
}

func (t *Tree) SetText(h Handle, data string) {
	h.(*Node).Text = data
}

func (t *Tree) SetAttr(h Handle, name, value string, property bool) {
	n := h.(*Node)
	m := &n.Attrs
	if property {
		m = &n.Props
	}
	if *m == nil {
		*m = make(map[string]string)
	}
	(*m)[name] = value
}

func (t *Tree) ClearAttr(h Handle, name string, property bool) {
	n := h.(*Node)
	if property {
		delete(n.Props, name)
	} else {
		delete(n.Attrs, name)
	}
}

func (t *Tree) SetListener(h Handle, event string, tok Token) {
	n := h.(*Node)
	if n.Listeners == nil {
		n.Listeners = make(map[string]Token)
	}
	n.Listeners[event] = tok
}

func (t *Tree) ClearListener(h Handle, event string, tok Token) {
	n := h.(*Node)
	if n.Listeners[event] == tok {
		delete(n.Listeners, event)
	}
}

// InsertBefore inserts h under parent, before anchor. A nil anchor
// appends. If h is currently attached it is detached first.
func (t *Tree) InsertBefore(parent, h, anchor Handle) {
	p := parent.(*Node)
	n := h.(*Node)
	if n.parent != nil {
		n.parent.detach(n)
	}
	i := len(p.children)
	if anchor != nil {
		i = p.index(anchor.(*Node))
	}
	p.children = append(p.children, nil)
	copy(p.children[i+1:], p.children[i:])
	p.children[i] = n
	n.parent = p
}

// Remove detaches h from its parent. Removing an already detached node
// is a no-op.
func (t *Tree) Remove(h Handle) {
	n := h.(*Node)
	if n.parent != nil {
		n.parent.detach(n)
	}
}

func (t *Tree) FirstChild(parent Handle) Handle {
	p := parent.(*Node)
	if len(p.children) == 0 {
		return nil
	}
	return p.children[0]
}

func (t *Tree) NextSibling(h Handle) Handle {
	n := h.(*Node)
	if n.parent == nil {
		return nil
	}
	i := n.parent.index(n)
	if i+1 >= len(n.parent.children) {
		return nil
	}
	return n.parent.children[i+1]
}

func (p *Node) index(n *Node) int {
	for i, c := range p.children {
		if c == n {
			return i
		}
	}
	panic("backend: node is not a child of its recorded parent")
}

func (p *Node) detach(n *Node) {
	i := p.index(n)
	p.children = append(p.children[:i], p.children[i+1:]...)
	n.parent = nil
}

// NumNodes returns the number of nodes attached under the root,
// excluding the root itself.
func (t *Tree) NumNodes() int {
	var count func(n *Node) int
	count = func(n *Node) int {
		total := len(n.children)
		for _, c := range n.children {
			total += count(c)
		}
		return total
	}
	return count(t.root)
}

// RenderText returns the concatenation of all text node data under the
// root, in document order. Markers and elements contribute nothing.
func (t *Tree) RenderText() string {
	var sb strings.Builder
	var walk func(n *Node)
	walk = func(n *Node) {
		if n.Kind == TextNode {
			sb.WriteString(n.Text)
		}
		for _, c := range n.children {
			walk(c)
		}
	}
	walk(t.root)
	return sb.String()
}
