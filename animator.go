package sway

// task is anything the Animator advances once per tick.
type task interface {
	advance(dt float64)
	slot() *taskSlot
}

// taskSlot is the scheduling state embedded in every task. live is the
// cooperative cancellation flag; queued records membership in the registry
// so that a task stopped and restarted within one tick keeps its place.
type taskSlot struct {
	live   bool
	queued bool
}

// Animator is the scheduling context for running animations and timers.
// Every Element, SmoothValue and TweenGroup belongs to exactly one Animator;
// a Scene owns one and advances it from Update.
//
// The Animator is single-threaded: all calls must happen on the goroutine
// that calls Tick.
type Animator struct {
	tasks   []task
	elapsed float64
	frame   uint64
}

// NewAnimator returns an empty scheduling context.
func NewAnimator() *Animator {
	return &Animator{}
}

// Tick advances every live task by dt seconds in registration order. Tasks
// started during the tick run from the next tick on. Stopped tasks are
// removed after the pass.
func (a *Animator) Tick(dt float64) {
	if dt < 0 {
		dt = 0
	}
	a.elapsed += dt
	a.frame++

	n := len(a.tasks)
	for i := 0; i < n; i++ {
		t := a.tasks[i]
		if t.slot().live {
			t.advance(dt)
		}
	}

	kept := a.tasks[:0]
	for _, t := range a.tasks {
		s := t.slot()
		if s.live {
			kept = append(kept, t)
			continue
		}
		s.queued = false
	}
	clear(a.tasks[len(kept):])
	a.tasks = kept
}

// Elapsed returns the total simulated time in seconds.
func (a *Animator) Elapsed() float64 { return a.elapsed }

// Frame returns the number of ticks processed.
func (a *Animator) Frame() uint64 { return a.frame }

// Active returns the number of live tasks.
func (a *Animator) Active() int {
	n := 0
	for _, t := range a.tasks {
		if t.slot().live {
			n++
		}
	}
	return n
}

// start marks t live and registers it if it is not already queued.
func (a *Animator) start(t task) {
	s := t.slot()
	s.live = true
	if !s.queued {
		s.queued = true
		a.tasks = append(a.tasks, t)
	}
}

// --- Timers ---

// Timer runs a callback once after a delay measured in ticked time.
type Timer struct {
	taskSlot
	animator  *Animator
	remaining float64
	fn        func()
}

// After schedules fn to run once delay seconds of ticked time from now.
// A non-positive delay fires on the next tick.
func (a *Animator) After(delay float64, fn func()) *Timer {
	t := &Timer{animator: a, remaining: delay, fn: fn}
	a.start(t)
	return t
}

// Stop cancels the timer. Returns false if it had already fired or stopped.
func (t *Timer) Stop() bool {
	if t == nil || !t.live {
		return false
	}
	t.live = false
	return true
}

// Reset re-arms the timer with a new delay, whether or not it has fired.
func (t *Timer) Reset(delay float64) {
	t.remaining = delay
	t.animator.start(t)
}

// Pending reports whether the timer has yet to fire.
func (t *Timer) Pending() bool { return t != nil && t.live }

// Remaining returns the ticked time left before the timer fires.
func (t *Timer) Remaining() float64 { return t.remaining }

func (t *Timer) slot() *taskSlot { return &t.taskSlot }

func (t *Timer) advance(dt float64) {
	t.remaining -= dt
	if t.remaining > timerEpsilon {
		return
	}
	t.live = false
	if t.fn != nil {
		t.fn()
	}
}

// timerEpsilon absorbs accumulated float error so that a delay that is an
// exact multiple of the tick fires on the expected tick.
const timerEpsilon = 1e-9
