package sway

import "testing"

func TestNewNodeDefaults(t *testing.T) {
	n := NewNode("test")
	if n.ID == 0 {
		t.Error("ID should be non-zero")
	}
	if n.Name != "test" {
		t.Errorf("Name = %q, want %q", n.Name, "test")
	}
	if n.ScaleX != 1 || n.ScaleY != 1 {
		t.Errorf("Scale = (%v, %v), want (1, 1)", n.ScaleX, n.ScaleY)
	}
	if n.Alpha != 1 {
		t.Errorf("Alpha = %v, want 1", n.Alpha)
	}
	if n.Color != ColorWhite {
		t.Errorf("Color = %v, want white", n.Color)
	}
	if !n.Visible || n.Interactable {
		t.Errorf("Visible = %v Interactable = %v, want true, false", n.Visible, n.Interactable)
	}
	if !n.transformDirty {
		t.Error("transformDirty should be true")
	}
}

func TestNewRect(t *testing.T) {
	c := Color{0.2, 0.4, 0.6, 1}
	n := NewRect("r", 30, 10, c)
	if n.Width != 30 || n.Height != 10 || n.Color != c {
		t.Errorf("rect = %vx%v %v", n.Width, n.Height, n.Color)
	}
}

func TestUniqueIDs(t *testing.T) {
	a := NewNode("a")
	b := NewNode("b")
	c := NewRect("c", 1, 1, ColorWhite)
	if a.ID == b.ID || b.ID == c.ID || a.ID == c.ID {
		t.Errorf("IDs should be unique: %d, %d, %d", a.ID, b.ID, c.ID)
	}
}

// --- Hierarchy ---

func TestAddChildReparent(t *testing.T) {
	p1 := NewNode("p1")
	p2 := NewNode("p2")
	child := NewNode("child")

	p1.AddChild(child)
	if p1.NumChildren() != 1 || child.Parent != p1 {
		t.Fatal("p1 should own child")
	}

	p2.AddChild(child)
	if p1.NumChildren() != 0 {
		t.Error("p1 should have 0 children after reparent")
	}
	if p2.NumChildren() != 1 || child.Parent != p2 {
		t.Error("p2 should own child")
	}
}

func TestAddChildPanics(t *testing.T) {
	parent := NewNode("parent")
	child := NewNode("child")
	grandchild := NewNode("grandchild")
	parent.AddChild(child)
	child.AddChild(grandchild)

	cases := map[string]func(){
		"cycle": func() { grandchild.AddChild(parent) },
		"self":  func() { parent.AddChild(parent) },
		"nil":   func() { parent.AddChild(nil) },
		"wrong parent": func() {
			parent.RemoveChild(grandchild)
		},
	}
	for name, fn := range cases {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			fn()
		})
	}
}

func TestRemoveFromParent(t *testing.T) {
	parent := NewNode("parent")
	child := NewNode("child")
	parent.AddChild(child)

	child.RemoveFromParent()
	if child.Parent != nil || parent.NumChildren() != 0 {
		t.Error("child still attached")
	}
	child.RemoveFromParent() // no-op without a parent
}

func TestContainsAndFindChild(t *testing.T) {
	root := NewNode("root")
	a := NewNode("a")
	b := NewNode("b")
	root.AddChild(a)
	a.AddChild(b)

	if !root.Contains(b) || !a.Contains(a) || b.Contains(a) || root.Contains(nil) {
		t.Error("Contains mismatch")
	}
	if root.FindChild("b") != b || root.FindChild("nope") != nil {
		t.Error("FindChild mismatch")
	}
}

func TestIsActive(t *testing.T) {
	root := NewNode("root")
	child := NewNode("child")
	root.AddChild(child)

	if !child.IsActive() {
		t.Fatal("child should be active")
	}
	root.Visible = false
	if child.IsActive() {
		t.Error("child of invisible parent is active")
	}
	root.Visible = true
	child.Dispose()
	if child.IsActive() {
		t.Error("disposed node is active")
	}
}

func TestPaintOrder(t *testing.T) {
	parent := NewNode("parent")
	a, b, c := NewNode("a"), NewNode("b"), NewNode("c")
	parent.AddChild(a)
	parent.AddChild(b)
	parent.AddChild(c)

	if got := parent.paintOrder(); got[0] != a || got[1] != b || got[2] != c {
		t.Error("insertion order not kept without z-indices")
	}

	a.SetZIndex(1)
	c.SetZIndex(-1)
	got := parent.paintOrder()
	if got[0] != c || got[1] != b || got[2] != a {
		t.Errorf("paint order = %s %s %s, want c b a", got[0].Name, got[1].Name, got[2].Name)
	}
	if parent.Children()[0] != a {
		t.Error("paintOrder reordered Children()")
	}
}

// --- Dispose ---

func TestDispose(t *testing.T) {
	root := NewNode("root")
	parent := NewNode("parent")
	child := NewNode("child")
	root.AddChild(parent)
	parent.AddChild(child)
	parent.OnFocus = func() {}

	parent.Dispose()

	if !parent.IsDisposed() || !child.IsDisposed() {
		t.Error("subtree should be disposed")
	}
	if parent.ID != 0 || child.ID != 0 {
		t.Error("disposed nodes should have ID = 0")
	}
	if root.NumChildren() != 0 {
		t.Error("root should have 0 children after dispose")
	}
	if parent.OnFocus != nil {
		t.Error("callbacks should be cleared")
	}
	parent.Dispose() // idempotent
}

func TestDirtyPropagationOnAddChild(t *testing.T) {
	parent := NewNode("parent")
	child := NewNode("child")
	grandchild := NewNode("grandchild")
	child.AddChild(grandchild)

	child.transformDirty = false
	grandchild.transformDirty = false

	parent.AddChild(child)

	if !child.transformDirty || !grandchild.transformDirty {
		t.Error("subtree should be dirty after AddChild")
	}
}
