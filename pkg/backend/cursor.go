package backend

// Cursor is an ephemeral pointer to an insertion position among the
// children of a parent node: conceptually it sits just before its
// current node, or at the end of the sibling list when the current node
// is nil. Cursors live on the stack during a single build or rebuild
// pass and are never retained across update cycles.
type Cursor struct {
	b      Backend
	parent Handle
	next   Handle
}

// Enter returns a cursor at the first child of parent.
func Enter(b Backend, parent Handle) *Cursor {
	return &Cursor{b: b, parent: parent, next: b.FirstChild(parent)}
}

// Before returns a cursor positioned just before next, which must be a
// child of parent. A nil next positions the cursor at the end.
func Before(b Backend, parent, next Handle) *Cursor {
	return &Cursor{b: b, parent: parent, next: next}
}

// After returns a cursor positioned just after h, which must be a child
// of parent.
func After(b Backend, parent, h Handle) *Cursor {
	return &Cursor{b: b, parent: parent, next: b.NextSibling(h)}
}

// Backend returns the backend the cursor operates on.
func (c *Cursor) Backend() Backend { return c.b }

// Parent returns the parent whose children the cursor points into.
func (c *Cursor) Parent() Handle { return c.parent }

// Current returns the node the cursor sits before, or nil at the end.
func (c *Cursor) Current() Handle { return c.next }

// Advance moves the cursor past its current node.
func (c *Cursor) Advance() {
	if c.next != nil {
		c.next = c.b.NextSibling(c.next)
	}
}

// JumpPast repositions the cursor just after h. It is used by
// marker-delimited views to step over their entire range regardless of
// what happened to the nodes inside it.
func (c *Cursor) JumpPast(h Handle) {
	c.next = c.b.NextSibling(h)
}

// Insert inserts h at the cursor position. The cursor ends up past the
// inserted node.
func (c *Cursor) Insert(h Handle) {
	c.b.InsertBefore(c.parent, h, c.next)
}

// InsertMarker creates a marker node and inserts it at the cursor
// position, returning its handle.
func (c *Cursor) InsertMarker() Handle {
	m := c.b.CreateMarker()
	c.Insert(m)
	return m
}
