package sway

import "math"

// Value is the set of types an Interpolator can drive. Vector types step
// every axis independently with the same kernel.
type Value interface {
	float64 | Vec2 | Vec3
}

// Interpolator owns the mutable state of one interpolated value: its current
// value, its target, and its velocity in units per second.
type Interpolator[T Value] struct {
	config   InterpolationConfig
	current  T
	target   T
	velocity T
}

// NewInterpolator returns an interpolator resting at initial.
func NewInterpolator[T Value](cfg InterpolationConfig, initial T) *Interpolator[T] {
	return &Interpolator[T]{config: cfg, current: initial, target: initial}
}

// Step sets the target and advances one integration step of dt seconds.
func (ip *Interpolator[T]) Step(target T, dt float64) T {
	ip.target = target
	return ip.Advance(dt)
}

// Advance steps toward the last target without changing it.
func (ip *Interpolator[T]) Advance(dt float64) T {
	k := ip.config.kernel(dt)
	cur, tgt, vel := axes(ip.current), axes(ip.target), axes(ip.velocity)
	for i := range cur {
		cur[i], vel[i] = k.step(cur[i], tgt[i], vel[i])
	}
	ip.current = fromAxes[T](cur)
	ip.velocity = fromAxes[T](vel)
	return ip.current
}

// Value returns the current value.
func (ip *Interpolator[T]) Value() T { return ip.current }

// Target returns the last target.
func (ip *Interpolator[T]) Target() T { return ip.target }

// Velocity returns the current velocity.
func (ip *Interpolator[T]) Velocity() T { return ip.velocity }

// Config returns the active configuration.
func (ip *Interpolator[T]) Config() InterpolationConfig { return ip.config }

// SetConfig replaces the configuration without touching value or velocity.
func (ip *Interpolator[T]) SetConfig(cfg InterpolationConfig) { ip.config = cfg }

// Reset places the value at v with zero velocity and v as the target.
func (ip *Interpolator[T]) Reset(v T) {
	var zero T
	ip.current = v
	ip.target = v
	ip.velocity = zero
}

// Distance returns the Euclidean distance between the current value and the target.
func (ip *Interpolator[T]) Distance() float64 {
	return distance(ip.current, ip.target)
}

// Speed returns the magnitude of the velocity.
func (ip *Interpolator[T]) Speed() float64 {
	var zero T
	return distance(ip.velocity, zero)
}

// axes flattens a value into up to three scalar axes.
func axes[T Value](v T) []float64 {
	switch x := any(v).(type) {
	case float64:
		return []float64{x}
	case Vec2:
		return []float64{x.X, x.Y}
	case Vec3:
		return []float64{x.X, x.Y, x.Z}
	}
	return nil
}

func fromAxes[T Value](a []float64) T {
	var out T
	switch p := any(&out).(type) {
	case *float64:
		*p = a[0]
	case *Vec2:
		*p = Vec2{a[0], a[1]}
	case *Vec3:
		*p = Vec3{a[0], a[1], a[2]}
	}
	return out
}

func distance[T Value](a, b T) float64 {
	pa, pb := axes(a), axes(b)
	var sum float64
	for i := range pa {
		d := pa[i] - pb[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}
