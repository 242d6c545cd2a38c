package backend

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// cursorBackend is the minimal Backend for exercising cursors: a Tree
// plus a never-firing event channel.
type cursorBackend struct {
	*Tree
	events chan Event
}

func newCursorBackend() *cursorBackend {
	return &cursorBackend{Tree: NewTree(), events: make(chan Event)}
}

func (b *cursorBackend) Events() <-chan Event { return b.events }

func TestCursorInsertAndAdvance(t *testing.T) {
	b := newCursorBackend()
	root := b.Root()

	c := Enter(b, root)
	if c.Current() != nil {
		t.Errorf("cursor into empty parent has a current node")
	}
	x := b.CreateText("x")
	c.Insert(x)
	y := b.CreateText("y")
	c.Insert(y)
	if diff := cmp.Diff([]string{"text:x", "text:y"}, childTags(b.Tree, root)); diff != "" {
		t.Errorf("children (-want +got):\n%s", diff)
	}

	// Entering again walks the existing children in order.
	c = Enter(b, root)
	if c.Current() != x {
		t.Errorf("Current = %v, want first child", c.Current())
	}
	c.Advance()
	if c.Current() != y {
		t.Errorf("Current after Advance = %v, want second child", c.Current())
	}

	// Inserting mid-list goes before the current node.
	m := c.InsertMarker()
	if diff := cmp.Diff([]string{"text:x", "marker", "text:y"}, childTags(b.Tree, root)); diff != "" {
		t.Errorf("children after mid insert (-want +got):\n%s", diff)
	}
	c.JumpPast(y)
	if c.Current() != nil {
		t.Errorf("Current after JumpPast last = %v, want nil", c.Current())
	}
	_ = m
}

func TestClear(t *testing.T) {
	b := newCursorBackend()
	root := b.Root()
	c := Enter(b, root)
	start := c.InsertMarker()
	c.Insert(b.CreateText("a"))
	c.Insert(b.CreateText("b"))
	end := c.InsertMarker()
	c.Insert(b.CreateText("after"))

	Clear(b, root, start, end)
	want := []string{"marker", "marker", "text:after"}
	if diff := cmp.Diff(want, childTags(b.Tree, root)); diff != "" {
		t.Errorf("children after Clear (-want +got):\n%s", diff)
	}
}

func TestMoveRange(t *testing.T) {
	b := newCursorBackend()
	root := b.Root()
	c := Enter(b, root)
	h1 := c.InsertMarker()
	c.Insert(b.CreateText("1"))
	h2 := c.InsertMarker()
	c.Insert(b.CreateText("2"))

	// Move [h2, end) before h1.
	MoveRange(b, root, h2, nil, h1)
	want := []string{"marker", "text:2", "marker", "text:1"}
	if diff := cmp.Diff(want, childTags(b.Tree, root)); diff != "" {
		t.Errorf("children after MoveRange (-want +got):\n%s", diff)
	}
}
