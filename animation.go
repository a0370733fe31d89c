package sway

import (
	"fmt"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 channels of a Node (color or alpha) over a
// fixed duration. Color changes do not benefit from spring dynamics, so they
// use plain easing curves rather than the spring kernel.
//
// Groups created with an Animator advance on every Tick. Groups created
// with a nil Animator are advanced manually via Update. If the target node
// is disposed, the group stops immediately without writing.
type TweenGroup struct {
	taskSlot
	animator *Animator
	tweens   [4]*gween.Tween
	count    int
	fields   [4]*float64
	target   *Node
	onDone   func()
	Done     bool
}

// Update advances all tweens by dt seconds, writes values to the target fields,
// and marks the node dirty.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}

	if g.target != nil && g.target.IsDisposed() {
		g.finish(false)
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}

	if g.target != nil {
		g.target.MarkDirty()
	}
	if allDone {
		g.finish(true)
	}
}

// Stop halts the group where it is. The done callback does not run.
func (g *TweenGroup) Stop() {
	g.Done = true
	g.live = false
}

// OnDone sets a callback that runs once when every channel reaches its end value.
func (g *TweenGroup) OnDone(fn func()) {
	g.onDone = fn
}

func (g *TweenGroup) finish(ran bool) {
	g.Done = true
	g.live = false
	if ran && g.onDone != nil {
		g.onDone()
	}
}

func (g *TweenGroup) slot() *taskSlot { return &g.taskSlot }

func (g *TweenGroup) advance(dt float64) { g.Update(float32(dt)) }

// newTweenGroup builds a group over the given fields. A non-positive
// duration writes the end values immediately and returns a finished group.
func newTweenGroup(a *Animator, node *Node, fields []*float64, to []float64, duration float64, fn ease.TweenFunc) *TweenGroup {
	if fn == nil {
		fn = ease.Linear
	}
	g := &TweenGroup{animator: a, count: len(fields), target: node}
	for i, f := range fields {
		g.fields[i] = f
		g.tweens[i] = gween.New(float32(*f), float32(to[i]), float32(duration), fn)
	}
	if duration <= 0 {
		for i, f := range fields {
			*f = to[i]
		}
		node.MarkDirty()
		g.Done = true
		return g
	}
	if a != nil {
		a.start(g)
	}
	return g
}

// TweenColor animates all four components of node.Color (R, G, B, A) to the
// target color over duration seconds.
func TweenColor(a *Animator, node *Node, to Color, duration float64, fn ease.TweenFunc) *TweenGroup {
	return newTweenGroup(a, node,
		[]*float64{&node.Color.R, &node.Color.G, &node.Color.B, &node.Color.A},
		[]float64{to.R, to.G, to.B, to.A},
		duration, fn)
}

// TweenAlpha animates node.Alpha to the target value over duration seconds.
func TweenAlpha(a *Animator, node *Node, to float64, duration float64, fn ease.TweenFunc) *TweenGroup {
	return newTweenGroup(a, node, []*float64{&node.Alpha}, []float64{to}, duration, fn)
}

// eases maps profile ease names to gween easing functions.
var eases = map[string]ease.TweenFunc{
	"linear":     ease.Linear,
	"inquad":     ease.InQuad,
	"outquad":    ease.OutQuad,
	"inoutquad":  ease.InOutQuad,
	"incubic":    ease.InCubic,
	"outcubic":   ease.OutCubic,
	"inoutcubic": ease.InOutCubic,
	"insine":     ease.InSine,
	"outsine":    ease.OutSine,
	"inoutsine":  ease.InOutSine,
	"inexpo":     ease.InExpo,
	"outexpo":    ease.OutExpo,
	"inoutexpo":  ease.InOutExpo,
	"outback":    ease.OutBack,
	"outbounce":  ease.OutBounce,
	"outelastic": ease.OutElastic,
}

// ParseEase resolves an easing function by name ("linear", "outCubic",
// "in-out-sine", ...). An empty name yields ease.Linear.
func ParseEase(name string) (ease.TweenFunc, error) {
	n := normalizeName(name)
	if n == "" {
		return ease.Linear, nil
	}
	if fn, ok := eases[n]; ok {
		return fn, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownEase, name)
}
