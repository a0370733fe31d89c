package sway

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/harmonica"
)

// Strategy selects the numerical rule that moves a value toward its target.
type Strategy uint8

const (
	// StrategyDirect snaps to the target on the next step.
	StrategyDirect Strategy = iota
	// StrategyExponential closes a fixed fraction of the remaining distance
	// per second. Never overshoots.
	StrategyExponential
	// StrategyDampedSpring is a critically damped spring: the fastest
	// approach that never overshoots. Speed is the angular frequency.
	StrategyDampedSpring
	// StrategySpring is a spring whose damping ratio is the configured
	// elasticity. Below 1 it overshoots and oscillates before settling.
	StrategySpring
)

// String returns the snake_case name used in profile files.
func (s Strategy) String() string {
	switch s {
	case StrategyDirect:
		return "direct"
	case StrategyExponential:
		return "exponential"
	case StrategyDampedSpring:
		return "damped_spring"
	case StrategySpring:
		return "spring"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy parses a strategy name. Matching ignores case, dashes and
// underscores, so "DampedSpring", "damped-spring" and "damped_spring" are
// all accepted.
func ParseStrategy(name string) (Strategy, error) {
	switch normalizeName(name) {
	case "direct", "none", "":
		return StrategyDirect, nil
	case "exponential", "exp":
		return StrategyExponential, nil
	case "dampedspring", "critical":
		return StrategyDampedSpring, nil
	case "spring", "elastic":
		return StrategySpring, nil
	}
	return StrategyDirect, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

func normalizeName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "_", "")
	return strings.ReplaceAll(s, "-", "")
}

// InterpolationConfig describes how a value moves toward its target.
// The zero value behaves as StrategyDirect.
type InterpolationConfig struct {
	Strategy   Strategy `yaml:"strategy"`
	Speed      float64  `yaml:"speed"`
	Elasticity float64  `yaml:"elasticity"`
}

// DirectConfig returns a config that snaps instantly.
func DirectConfig() InterpolationConfig {
	return InterpolationConfig{Strategy: StrategyDirect}
}

// ExponentialConfig returns an exponential-decay config with the given rate.
func ExponentialConfig(speed float64) InterpolationConfig {
	return InterpolationConfig{Strategy: StrategyExponential, Speed: speed}
}

// DampedSpringConfig returns a critically damped spring config.
func DampedSpringConfig(speed float64) InterpolationConfig {
	return InterpolationConfig{Strategy: StrategyDampedSpring, Speed: speed, Elasticity: 1}
}

// SpringConfig returns an elastic spring config. Elasticity is the damping
// ratio: values below 1 overshoot.
func SpringConfig(speed, elasticity float64) InterpolationConfig {
	return InterpolationConfig{Strategy: StrategySpring, Speed: speed, Elasticity: elasticity}
}

// kernel is one integration step of an InterpolationConfig for a fixed dt.
// It is built once per step and applied to every axis of a vector value.
type kernel struct {
	strategy Strategy
	dt       float64
	blend    float64
	spring   harmonica.Spring
}

// kernel builds the stepping function for an elapsed time of dt seconds.
func (c InterpolationConfig) kernel(dt float64) kernel {
	k := kernel{strategy: c.Strategy, dt: dt}
	if c.Speed <= 0 || math.IsNaN(c.Speed) {
		k.strategy = StrategyDirect
		return k
	}
	if dt <= 0 {
		return k
	}
	switch k.strategy {
	case StrategyExponential:
		k.blend = 1 - math.Exp(-c.Speed*dt)
	case StrategyDampedSpring:
		k.spring = harmonica.NewSpring(dt, c.Speed, 1)
	case StrategySpring:
		damping := c.Elasticity
		if damping < 0 || math.IsNaN(damping) {
			damping = 0
		}
		k.spring = harmonica.NewSpring(dt, c.Speed, damping)
	}
	return k
}

// step advances a single scalar axis.
func (k kernel) step(current, target, velocity float64) (float64, float64) {
	if k.strategy == StrategyDirect {
		return target, 0
	}
	if k.dt <= 0 {
		return current, velocity
	}
	switch k.strategy {
	case StrategyExponential:
		next := current + (target-current)*k.blend
		return next, (next - current) / k.dt
	case StrategyDampedSpring, StrategySpring:
		return k.spring.Update(current, velocity, target)
	}
	return target, 0
}
