package sway

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// toRGBA converts a straight-alpha Color to a premultiplied color.RGBA.
func (c Color) toRGBA() color.RGBA {
	clamp := func(v float64) uint8 {
		switch {
		case v <= 0:
			return 0
		case v >= 1:
			return 255
		}
		return uint8(v*255 + 0.5)
	}
	return color.RGBA{
		R: clamp(c.R * c.A),
		G: clamp(c.G * c.A),
		B: clamp(c.B * c.A),
		A: clamp(c.A),
	}
}

// Draw renders the scene: every visible node with a non-zero size is drawn
// as a solid rectangle tinted by its Color and faded by its world alpha,
// children after parents in ZIndex order.
func (s *Scene) Draw(screen *ebiten.Image) {
	if s.ClearColor.A > 0 {
		screen.Fill(s.ClearColor.toRGBA())
	}
	updateWorldTransform(s.root, identityTransform, 1.0, false)
	s.drawNode(screen, s.root)
	s.flushCaptures(screen)
}

func (s *Scene) drawNode(screen *ebiten.Image, n *Node) {
	if !n.Visible || n.disposed {
		return
	}
	if n.Width > 0 && n.Height > 0 && n.worldAlpha > 0 {
		var op ebiten.DrawImageOptions
		op.GeoM.Scale(n.Width, n.Height)
		m := n.worldTransform
		var world ebiten.GeoM
		world.SetElement(0, 0, m[0])
		world.SetElement(1, 0, m[1])
		world.SetElement(0, 1, m[2])
		world.SetElement(1, 1, m[3])
		world.SetElement(0, 2, m[4])
		world.SetElement(1, 2, m[5])
		op.GeoM.Concat(world)

		a := float32(n.Color.A * n.worldAlpha)
		op.ColorScale.Scale(float32(n.Color.R)*a, float32(n.Color.G)*a, float32(n.Color.B)*a, a)
		screen.DrawImage(WhitePixel, &op)
	}
	for _, child := range n.paintOrder() {
		s.drawNode(screen, child)
	}
}
