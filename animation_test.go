package sway

import (
	"errors"
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTweenColorAllComponents(t *testing.T) {
	node := NewNode("color")
	node.Color = Color{R: 1, G: 0, B: 0, A: 1}
	target := Color{R: 0, G: 1, B: 0.5, A: 0.5}

	g := TweenColor(nil, node, target, 1.0, ease.Linear)

	g.Update(0.5)
	g.Update(0.5)

	if !g.Done {
		t.Fatal("expected Done after full duration")
	}
	if math.Abs(node.Color.R-target.R) > 0.01 {
		t.Errorf("R = %f, want %f", node.Color.R, target.R)
	}
	if math.Abs(node.Color.G-target.G) > 0.01 {
		t.Errorf("G = %f, want %f", node.Color.G, target.G)
	}
	if math.Abs(node.Color.B-target.B) > 0.01 {
		t.Errorf("B = %f, want %f", node.Color.B, target.B)
	}
	if math.Abs(node.Color.A-target.A) > 0.01 {
		t.Errorf("A = %f, want %f", node.Color.A, target.A)
	}
}

func TestTweenAlphaInterpolates(t *testing.T) {
	node := NewNode("alpha")
	node.Alpha = 1.0

	tw := TweenAlpha(nil, node, 0.0, 1.0, ease.Linear)

	tw.Update(0.5)
	if tw.Done {
		t.Fatal("should not be done at halfway")
	}
	if math.Abs(node.Alpha-0.5) > 0.05 {
		t.Errorf("Alpha = %f, want ~0.5 at halfway", node.Alpha)
	}

	tw.Update(0.5)
	if !tw.Done {
		t.Fatal("should be done after full duration")
	}
	if math.Abs(node.Alpha) > 0.01 {
		t.Errorf("Alpha = %f, want ~0.0", node.Alpha)
	}
}

func TestTweenZeroDurationWritesImmediately(t *testing.T) {
	a := NewAnimator()
	node := NewNode("instant")

	g := TweenAlpha(a, node, 0.25, 0, nil)
	if !g.Done {
		t.Fatal("zero-duration tween should be Done at once")
	}
	if node.Alpha != 0.25 {
		t.Errorf("Alpha = %f, want 0.25", node.Alpha)
	}
	if a.Active() != 0 {
		t.Errorf("zero-duration tween registered %d tasks", a.Active())
	}
}

func TestTweenDrivenByAnimator(t *testing.T) {
	a := NewAnimator()
	node := NewNode("driven")
	node.Alpha = 0

	g := TweenAlpha(a, node, 1, 0.5, ease.Linear)
	done := 0
	g.OnDone(func() { done++ })

	for i := 0; i < 4; i++ {
		a.Tick(0.125)
	}
	if !g.Done || done != 1 {
		t.Fatalf("Done = %v, callbacks = %d", g.Done, done)
	}
	if math.Abs(node.Alpha-1) > 0.01 {
		t.Errorf("Alpha = %f, want ~1", node.Alpha)
	}
	a.Tick(0.125)
	if done != 1 || a.Active() != 0 {
		t.Errorf("finished tween kept running: callbacks %d active %d", done, a.Active())
	}
}

func TestTweenStopSkipsDoneCallback(t *testing.T) {
	a := NewAnimator()
	node := NewNode("stop")
	g := TweenAlpha(a, node, 0, 1, ease.Linear)
	called := false
	g.OnDone(func() { called = true })

	a.Tick(0.25)
	mid := node.Alpha
	g.Stop()
	a.Tick(0.25)

	if called {
		t.Error("Stop must not run the done callback")
	}
	if node.Alpha != mid {
		t.Errorf("Alpha moved after Stop: %f -> %f", mid, node.Alpha)
	}
}

func TestTweenGroupDoneFlagTransition(t *testing.T) {
	node := NewNode("done")
	g := TweenAlpha(nil, node, 0, 0.5, ease.Linear)

	if g.Done {
		t.Fatal("should not be Done at start")
	}
	g.Update(0.25)
	if g.Done {
		t.Fatal("should not be Done partway through")
	}
	g.Update(0.25)
	if !g.Done {
		t.Fatal("should be Done after full duration")
	}

	// Update after done is a no-op.
	g.Update(0.1)
	if !g.Done {
		t.Fatal("should remain Done")
	}
}

func TestTweenGroupDisposedNode(t *testing.T) {
	node := NewNode("disposed")
	node.Alpha = 1

	g := TweenAlpha(nil, node, 0, 1.0, ease.Linear)
	node.Dispose()
	g.Update(0.1)

	if !g.Done {
		t.Fatal("expected Done after disposed node detected")
	}
	if node.Alpha != 1 {
		t.Errorf("Alpha changed to %f on disposed node", node.Alpha)
	}
}

func TestTweenEasingFunctionsProduceDifferentCurves(t *testing.T) {
	nodeL := NewNode("linear")
	nodeC := NewNode("cubic")
	nodeL.Alpha, nodeC.Alpha = 0, 0

	gL := TweenAlpha(nil, nodeL, 1, 1.0, ease.Linear)
	gC := TweenAlpha(nil, nodeC, 1, 1.0, ease.OutCubic)

	gL.Update(0.5)
	gC.Update(0.5)

	// OutCubic is ahead of linear at the midpoint.
	if nodeC.Alpha-nodeL.Alpha < 0.1 {
		t.Errorf("linear=%f cubic=%f", nodeL.Alpha, nodeC.Alpha)
	}
}

func TestParseEase(t *testing.T) {
	for _, name := range []string{"", "linear", "outCubic", "in-out-sine", "OUT_BACK"} {
		fn, err := ParseEase(name)
		if err != nil || fn == nil {
			t.Errorf("ParseEase(%q) = %v, %v", name, fn, err)
		}
	}
	if _, err := ParseEase("wobble"); !errors.Is(err, ErrUnknownEase) {
		t.Errorf("ParseEase(wobble) error = %v, want ErrUnknownEase", err)
	}
}

func TestTweenGroupUpdateZeroAlloc(t *testing.T) {
	node := NewNode("alloc")
	g := TweenColor(nil, node, Color{}, 1.0, ease.Linear)

	g.Update(0.01)

	result := testing.AllocsPerRun(100, func() {
		g.Update(0.001)
	})
	if result > 0 {
		t.Errorf("TweenGroup.Update allocated %f times per run, want 0", result)
	}
}
