package sway

import (
	"errors"
	"math"
	"testing"
)

const testDT = 1.0 / 60

// run steps a scalar from current toward target until it converges or the
// step budget runs out. It returns every intermediate value.
func run(cfg InterpolationConfig, current, target float64, steps int) []float64 {
	var vel float64
	out := make([]float64, 0, steps)
	for i := 0; i < steps; i++ {
		current, vel = cfg.kernel(testDT).step(current, target, vel)
		out = append(out, current)
		if math.Abs(current-target) < DefaultPositionTolerance && math.Abs(vel) < DefaultVelocityTolerance {
			break
		}
	}
	return out
}

func TestDirectSnaps(t *testing.T) {
	cur, vel := DirectConfig().kernel(testDT).step(3, 10, 5)
	if cur != 10 || vel != 0 {
		t.Errorf("direct step = (%v, %v), want (10, 0)", cur, vel)
	}
}

func TestZeroConfigBehavesAsDirect(t *testing.T) {
	var cfg InterpolationConfig
	cur, vel := cfg.kernel(testDT).step(0, 4, 0)
	if cur != 4 || vel != 0 {
		t.Errorf("zero config step = (%v, %v), want (4, 0)", cur, vel)
	}
	cur, _ = SpringConfig(0, 0.5).kernel(testDT).step(0, 4, 0)
	if cur != 4 {
		t.Errorf("spring with zero speed = %v, want 4", cur)
	}
}

func TestExponentialNeverOvershoots(t *testing.T) {
	for _, tc := range []struct {
		name            string
		from, to, speed float64
	}{
		{"up", 0, 10, 8},
		{"down", 10, -3, 15},
		{"fast", 0, 1, 200},
	} {
		t.Run(tc.name, func(t *testing.T) {
			vals := run(ExponentialConfig(tc.speed), tc.from, tc.to, 2000)
			prev := tc.from
			for i, v := range vals {
				if math.Abs(tc.to-v) > math.Abs(tc.to-prev)+1e-12 {
					t.Fatalf("step %d moved away from target: %v -> %v", i, prev, v)
				}
				if (tc.to-tc.from)*(tc.to-v) < -1e-12 {
					t.Fatalf("step %d overshot: %v", i, v)
				}
				prev = v
			}
			if last := vals[len(vals)-1]; math.Abs(last-tc.to) >= DefaultPositionTolerance {
				t.Errorf("did not converge, last = %v", last)
			}
		})
	}
}

func TestExponentialBlendMatchesFormula(t *testing.T) {
	cfg := ExponentialConfig(5)
	cur, vel := cfg.kernel(0.1).step(0, 10, 0)
	want := 10 * (1 - math.Exp(-0.5))
	if math.Abs(cur-want) > 1e-12 {
		t.Errorf("current = %v, want %v", cur, want)
	}
	if math.Abs(vel-want/0.1) > 1e-9 {
		t.Errorf("velocity = %v, want %v", vel, want/0.1)
	}
}

func TestDampedSpringConvergesMonotonically(t *testing.T) {
	for _, tc := range []struct {
		from, to, speed float64
	}{
		{0, 10, 6},
		{0, 10, 20},
		{5, -5, 12},
		{100, 0, 30},
	} {
		vals := run(DampedSpringConfig(tc.speed), tc.from, tc.to, 5000)
		prev := tc.from
		for i, v := range vals {
			if math.Abs(tc.to-v) > math.Abs(tc.to-prev)+1e-9 {
				t.Fatalf("%v->%v speed %v: step %d moved away: %v -> %v", tc.from, tc.to, tc.speed, i, prev, v)
			}
			prev = v
		}
		if len(vals) == 5000 {
			t.Errorf("%v->%v speed %v: no convergence in 5000 steps", tc.from, tc.to, tc.speed)
		}
	}
}

func TestSpringOvershootDependsOnElasticity(t *testing.T) {
	overshoots := func(elasticity float64) bool {
		for _, v := range run(SpringConfig(15, elasticity), 0, 10, 5000) {
			if v > 10+1e-6 {
				return true
			}
		}
		return false
	}
	for _, e := range []float64{0.1, 0.3, 0.6, 0.9} {
		if !overshoots(e) {
			t.Errorf("elasticity %v: expected overshoot", e)
		}
	}
	for _, e := range []float64{1, 1.5, 3} {
		if overshoots(e) {
			t.Errorf("elasticity %v: unexpected overshoot", e)
		}
	}
}

func TestSpringZeroDTKeepsState(t *testing.T) {
	cur, vel := SpringConfig(10, 0.5).kernel(0).step(2, 8, 3)
	if cur != 2 || vel != 3 {
		t.Errorf("zero dt step = (%v, %v), want (2, 3)", cur, vel)
	}
}

func TestParseStrategy(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want Strategy
	}{
		{"direct", StrategyDirect},
		{"", StrategyDirect},
		{"Exponential", StrategyExponential},
		{"damped_spring", StrategyDampedSpring},
		{"DampedSpring", StrategyDampedSpring},
		{"damped-spring", StrategyDampedSpring},
		{"spring", StrategySpring},
		{"elastic", StrategySpring},
	} {
		got, err := ParseStrategy(tc.in)
		if err != nil {
			t.Errorf("ParseStrategy(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseStrategy(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
	if _, err := ParseStrategy("bouncy"); !errors.Is(err, ErrUnknownStrategy) {
		t.Errorf("expected ErrUnknownStrategy, got %v", err)
	}
}

func TestStrategyStringRoundTrip(t *testing.T) {
	for _, s := range []Strategy{StrategyDirect, StrategyExponential, StrategyDampedSpring, StrategySpring} {
		got, err := ParseStrategy(s.String())
		if err != nil || got != s {
			t.Errorf("ParseStrategy(%q) = %v, %v", s.String(), got, err)
		}
	}
}

func BenchmarkSpringStep(b *testing.B) {
	cfg := SpringConfig(15, 0.5)
	var cur, vel float64
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		cur, vel = cfg.kernel(testDT).step(cur, 10, vel)
	}
}
