package sway

import (
	"math"
	"testing"
)

func TestInterpolatorVectorAxesIndependent(t *testing.T) {
	cfg := DampedSpringConfig(10)
	vec := NewInterpolator(cfg, Vec3{})
	xs := NewInterpolator(cfg, 0.0)
	ys := NewInterpolator(cfg, 0.0)
	zs := NewInterpolator(cfg, 0.0)

	target := Vec3{X: 10, Y: -4, Z: 2}
	for i := 0; i < 30; i++ {
		v := vec.Step(target, testDT)
		x := xs.Step(target.X, testDT)
		y := ys.Step(target.Y, testDT)
		z := zs.Step(target.Z, testDT)
		if math.Abs(v.X-x) > 1e-12 || math.Abs(v.Y-y) > 1e-12 || math.Abs(v.Z-z) > 1e-12 {
			t.Fatalf("step %d: vector %v diverged from scalars (%v, %v, %v)", i, v, x, y, z)
		}
	}
	if vel := vec.Velocity(); math.Abs(vel.X-xs.Velocity()) > 1e-12 {
		t.Errorf("velocity X = %v, want %v", vel.X, xs.Velocity())
	}
}

func TestInterpolatorAdvanceReusesTarget(t *testing.T) {
	ip := NewInterpolator(ExponentialConfig(10), Vec2{})
	ip.Step(Vec2{X: 5, Y: 5}, testDT)
	before := ip.Value()
	after := ip.Advance(testDT)
	if ip.Target() != (Vec2{X: 5, Y: 5}) {
		t.Errorf("target changed: %v", ip.Target())
	}
	if after.X <= before.X || after.Y <= before.Y {
		t.Errorf("Advance did not move toward target: %v -> %v", before, after)
	}
}

func TestInterpolatorReset(t *testing.T) {
	ip := NewInterpolator(SpringConfig(12, 0.4), 0.0)
	for i := 0; i < 5; i++ {
		ip.Step(10, testDT)
	}
	if ip.Velocity() == 0 {
		t.Fatal("expected non-zero velocity mid-flight")
	}
	ip.Reset(3)
	if ip.Value() != 3 || ip.Target() != 3 || ip.Velocity() != 0 {
		t.Errorf("after Reset: value %v target %v velocity %v", ip.Value(), ip.Target(), ip.Velocity())
	}
	if ip.Distance() != 0 || ip.Speed() != 0 {
		t.Errorf("distance %v speed %v, want 0", ip.Distance(), ip.Speed())
	}
}

func TestInterpolatorSetConfigKeepsState(t *testing.T) {
	ip := NewInterpolator(DampedSpringConfig(8), 0.0)
	for i := 0; i < 5; i++ {
		ip.Step(10, testDT)
	}
	val, vel := ip.Value(), ip.Velocity()
	ip.SetConfig(SpringConfig(20, 0.3))
	if ip.Value() != val || ip.Velocity() != vel {
		t.Error("SetConfig must not touch value or velocity")
	}
	if ip.Config().Strategy != StrategySpring {
		t.Errorf("config strategy = %v", ip.Config().Strategy)
	}
}

func TestInterpolatorDistance(t *testing.T) {
	ip := NewInterpolator(DirectConfig(), Vec2{X: 3})
	ip.target = Vec2{Y: 4}
	if got := ip.Distance(); math.Abs(got-5) > 1e-12 {
		t.Errorf("Distance = %v, want 5", got)
	}
}

func TestInterpolatorDirectSnapsAllAxes(t *testing.T) {
	ip := NewInterpolator(DirectConfig(), Vec3{})
	got := ip.Step(Vec3{X: 1, Y: 2, Z: 3}, testDT)
	if got != (Vec3{X: 1, Y: 2, Z: 3}) || ip.Velocity() != (Vec3{}) {
		t.Errorf("direct step = %v velocity %v", got, ip.Velocity())
	}
}
