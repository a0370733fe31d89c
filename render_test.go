package sway

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestDrawDoesNotPanic(t *testing.T) {
	s := NewScene()
	s.ClearColor = Color{0.1, 0.1, 0.1, 1}
	box := NewRect("box", 10, 10, Color{1, 0, 0, 1})
	box.SetPosition(Vec3{X: 5, Y: 5})
	box.SetRotation(0.3)
	hidden := NewRect("hidden", 10, 10, ColorWhite)
	hidden.Visible = false
	s.Root().AddChild(box)
	s.Root().AddChild(hidden)

	screen := ebiten.NewImage(32, 32)
	s.Draw(screen)

	if box.worldTransform[4] == 0 {
		t.Error("Draw did not refresh world transforms")
	}
}
