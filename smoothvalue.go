package sway

// Default convergence tolerances, in the value's own units. They are shared
// by every value type, so very large or very small coordinate spaces may
// want to override them per driver.
const (
	DefaultPositionTolerance = 0.001
	DefaultVelocityTolerance = 0.01
)

// SmoothValue drives one Interpolator from an Animator and pushes every new
// value to an output callback. It is the running animation behind each
// animated property of an element.
//
// SetValue retargets in place: a value already in motion keeps its velocity.
// SnapValue assigns immediately without animating. Stop cancels without
// snapping. Completion listeners fire only when an animation converges.
type SmoothValue[T Value] struct {
	taskSlot

	// PositionTolerance and VelocityTolerance bound convergence: the
	// animation completes once both the distance to the target and the
	// velocity magnitude fall below them.
	PositionTolerance float64
	VelocityTolerance float64

	animator  *Animator
	interp    Interpolator[T]
	apply     func(T)
	listeners []completionListener
	nextID    int
	completed bool
}

type completionListener struct {
	id int
	fn func()
}

// NewSmoothValue returns a driver resting at initial. apply may be nil.
// A nil animator yields a driver whose operations are all no-ops.
func NewSmoothValue[T Value](a *Animator, cfg InterpolationConfig, initial T, apply func(T)) *SmoothValue[T] {
	return &SmoothValue[T]{
		PositionTolerance: DefaultPositionTolerance,
		VelocityTolerance: DefaultVelocityTolerance,
		animator:          a,
		interp:            Interpolator[T]{config: cfg, current: initial, target: initial},
		apply:             apply,
	}
}

// SetValue animates toward target, starting the loop if it is idle.
func (v *SmoothValue[T]) SetValue(target T) {
	if v.animator == nil {
		return
	}
	v.interp.target = target
	v.completed = false
	v.animator.start(v)
}

// SnapValue cancels any running animation, jumps to target with zero
// velocity and calls the output callback once. Completion listeners do not
// fire.
func (v *SmoothValue[T]) SnapValue(target T) {
	if v.animator == nil {
		return
	}
	v.live = false
	v.interp.Reset(target)
	if v.apply != nil {
		v.apply(target)
	}
}

// Stop cancels the running animation in place.
func (v *SmoothValue[T]) Stop() {
	if v.animator == nil {
		return
	}
	v.live = false
}

// Reset discards velocity and places the value at current without calling
// the output callback or stopping the loop. Used when an element switches
// to a different family of animation and old momentum must not carry over.
func (v *SmoothValue[T]) Reset(current T) {
	target := v.interp.target
	v.interp.Reset(current)
	v.interp.target = target
}

// UpdateConfig changes the dynamics of the value without resetting it.
// A running animation adopts them on its next step.
func (v *SmoothValue[T]) UpdateConfig(strategy Strategy, speed, elasticity float64) {
	v.interp.config = InterpolationConfig{Strategy: strategy, Speed: speed, Elasticity: elasticity}
}

// SetConfig is UpdateConfig taking a whole InterpolationConfig.
func (v *SmoothValue[T]) SetConfig(cfg InterpolationConfig) {
	v.interp.config = cfg
}

// Config returns the active interpolation config.
func (v *SmoothValue[T]) Config() InterpolationConfig { return v.interp.config }

// Value returns the current value.
func (v *SmoothValue[T]) Value() T { return v.interp.current }

// Target returns the value being animated toward.
func (v *SmoothValue[T]) Target() T { return v.interp.target }

// Velocity returns the current velocity.
func (v *SmoothValue[T]) Velocity() T { return v.interp.velocity }

// IsAnimating reports whether the loop is running.
func (v *SmoothValue[T]) IsAnimating() bool { return v.live }

// Completed reports whether the most recent SetValue converged.
func (v *SmoothValue[T]) Completed() bool { return v.completed }

// OnCompleted registers fn to run whenever an animation converges.
// Returns an unsubscribe function.
func (v *SmoothValue[T]) OnCompleted(fn func()) func() {
	id := v.nextID
	v.nextID++
	v.listeners = append(v.listeners, completionListener{id: id, fn: fn})
	return func() {
		for i := range v.listeners {
			if v.listeners[i].id == id {
				v.listeners = append(v.listeners[:i], v.listeners[i+1:]...)
				return
			}
		}
	}
}

func (v *SmoothValue[T]) slot() *taskSlot { return &v.taskSlot }

func (v *SmoothValue[T]) advance(dt float64) {
	value := v.interp.Advance(dt)
	if v.apply != nil {
		v.apply(value)
	}
	if v.interp.Distance() >= v.PositionTolerance || v.interp.Speed() >= v.VelocityTolerance {
		return
	}

	v.live = false
	v.completed = true
	v.interp.Reset(v.interp.target)
	if v.apply != nil {
		v.apply(v.interp.current)
	}
	// Listeners may restart this value; iterate over a snapshot.
	listeners := append([]completionListener(nil), v.listeners...)
	for _, l := range listeners {
		l.fn()
	}
}
