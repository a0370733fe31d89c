package sway

import (
	"cmp"
	"slices"
)

// DefaultStagger is the delay between consecutive elements of a batch, in
// seconds.
const DefaultStagger = 0.035

// Screen sequences batch shows and hides over a group of elements. Elements
// are ordered by clustering their resting positions into a grid and walking
// it from the side named by the event's direction; element i starts
// Stagger*i seconds after the first.
//
// Scene input is locked for the length of a batch. Once every element has
// finished, input unlocks, DefaultFocus is selected (shows only) and
// OnComplete runs.
type Screen struct {
	Name string

	// Stagger is the per-element start delay in seconds.
	Stagger float64

	// GridTolerance is the distance within which positions share a row or
	// column.
	GridTolerance float64

	// DefaultFocus is selected when a show batch completes.
	DefaultFocus *Node

	// OnComplete runs when a batch completes. It does not run for a batch
	// cancelled by a newer one.
	OnComplete func(shown bool)

	scene    *Scene
	elements []*Element
	batch    *screenBatch
}

type screenBatch struct {
	show    bool
	name    string
	pending int
	timers  []*Timer
	unsubs  []func()
	done    bool
}

// NewScreen groups elements under one sequencer.
func NewScreen(scene *Scene, elements ...*Element) *Screen {
	if scene == nil {
		panic("sway: NewScreen requires a scene")
	}
	return &Screen{
		Stagger:       DefaultStagger,
		GridTolerance: 1.0,
		scene:         scene,
		elements:      elements,
	}
}

// Add appends elements to the screen. It does not affect a batch in flight.
func (s *Screen) Add(elements ...*Element) {
	s.elements = append(s.elements, elements...)
}

// Elements returns the screen's elements in insertion order. The returned
// slice MUST NOT be mutated by the caller.
func (s *Screen) Elements() []*Element {
	return s.elements
}

// IsAnimating reports whether a batch is in flight.
func (s *Screen) IsAnimating() bool {
	return s.batch != nil && !s.batch.done
}

// Show plays the named show on every element, staggered.
func (s *Screen) Show(name string) { s.run(name, true) }

// Hide plays the named hide on every element, staggered.
func (s *Screen) Hide(name string) { s.run(name, false) }

// Cancel abandons the batch in flight. Elements already started keep
// animating; pending starts are dropped and input unlocks.
func (s *Screen) Cancel() {
	b := s.batch
	if b == nil || b.done {
		return
	}
	s.release(b)
}

func (s *Screen) run(name string, show bool) {
	s.Cancel()

	family := FamilyHide
	if show {
		family = FamilyShow
	}
	order := s.Order(s.direction(family, name))
	b := &screenBatch{show: show, name: name, pending: len(order)}
	s.batch = b
	s.scene.LockInput()

	if len(order) == 0 {
		s.finish(b)
		return
	}
	if show {
		for _, e := range order {
			if e.IsHidden() && e.node.IsActive() {
				e.SnapToStart(name)
			}
		}
	}
	for i, e := range order {
		delay := s.Stagger * float64(i)
		if delay <= 0 {
			s.start(b, e)
			continue
		}
		b.timers = append(b.timers, s.scene.animator.After(delay, func() {
			s.start(b, e)
		}))
	}
}

// start launches one element of a batch. Elements that became inactive or
// are already in the batch's end state count as finished at once.
func (s *Screen) start(b *screenBatch, e *Element) {
	if b.done {
		return
	}
	end, flight := StateHidden, StateHiding
	if b.show {
		end, flight = StateShown, StateShowing
	}
	if !e.node.IsActive() || e.State() == end {
		s.elementDone(b)
		return
	}

	var unsub func()
	unsub = e.OnStateChanged(func(_ *Element, st State) {
		if st == end {
			unsub()
			s.elementDone(b)
		}
	})
	b.unsubs = append(b.unsubs, unsub)

	e.Animate(b.name, b.show, false, true)
	if e.State() != flight && e.State() != end {
		// No config for this element: nothing will finish.
		unsub()
		s.elementDone(b)
	}
}

func (s *Screen) elementDone(b *screenBatch) {
	if b.done {
		return
	}
	b.pending--
	if b.pending <= 0 {
		s.finish(b)
	}
}

func (s *Screen) finish(b *screenBatch) {
	s.release(b)
	if b.show && s.DefaultFocus != nil {
		s.scene.SetSelected(s.DefaultFocus)
	}
	s.scene.emitAnimation(AnimationEvent{
		Type:    AnimationBatchDone,
		Element: s.Name,
		Event:   b.name,
	})
	if s.OnComplete != nil {
		s.OnComplete(b.show)
	}
}

// release ends b without completing it.
func (s *Screen) release(b *screenBatch) {
	b.done = true
	for _, t := range b.timers {
		t.Stop()
	}
	for _, unsub := range b.unsubs {
		unsub()
	}
	b.timers, b.unsubs = nil, nil
	s.scene.UnlockInput()
}

// direction reads the batch direction from the first element that has the
// named config.
func (s *Screen) direction(f Family, name string) Direction {
	for _, e := range s.elements {
		if cfg, ok := e.cfg.TryGetConfig(f, name); ok {
			return cfg.Direction
		}
	}
	return DirectionNone
}

// Order returns the screen's elements in the order a batch travelling in
// dir starts them. Resting positions are clustered into columns and rows
// within GridTolerance. Right starts at the rightmost column, Left at the
// leftmost, Up at the top row and Down at the bottom row; None uses reading
// order. Ties keep insertion order.
func (s *Screen) Order(dir Direction) []*Element {
	n := len(s.elements)
	xs := make([]float64, n)
	ys := make([]float64, n)
	for i, e := range s.elements {
		p := e.pose.Rest().Position
		xs[i], ys[i] = p.X, p.Y
	}
	cols := clusterRanks(xs, s.GridTolerance)
	rows := clusterRanks(ys, s.GridTolerance)

	type slot struct {
		e        *Element
		col, row int
	}
	slots := make([]slot, n)
	for i, e := range s.elements {
		slots[i] = slot{e, cols[i], rows[i]}
	}
	slices.SortStableFunc(slots, func(a, b slot) int {
		switch dir {
		case DirectionRight:
			return cmp.Or(cmp.Compare(b.col, a.col), cmp.Compare(a.row, b.row))
		case DirectionLeft:
			return cmp.Or(cmp.Compare(a.col, b.col), cmp.Compare(a.row, b.row))
		case DirectionUp:
			return cmp.Or(cmp.Compare(a.row, b.row), cmp.Compare(a.col, b.col))
		case DirectionDown:
			return cmp.Or(cmp.Compare(b.row, a.row), cmp.Compare(a.col, b.col))
		default:
			return cmp.Or(cmp.Compare(a.row, b.row), cmp.Compare(a.col, b.col))
		}
	})

	out := make([]*Element, n)
	for i, sl := range slots {
		out[i] = sl.e
	}
	return out
}

// clusterRanks assigns each value the index of its cluster, clusters
// numbered in ascending order. A cluster spans tol from its smallest value.
func clusterRanks(values []float64, tol float64) []int {
	idx := make([]int, len(values))
	for i := range idx {
		idx[i] = i
	}
	slices.SortStableFunc(idx, func(a, b int) int {
		return cmp.Compare(values[a], values[b])
	})

	ranks := make([]int, len(values))
	rank := -1
	var anchor float64
	for _, i := range idx {
		if rank < 0 || values[i]-anchor > tol {
			rank++
			anchor = values[i]
		}
		ranks[i] = rank
	}
	return ranks
}
