package sway

// focusDriver animates an element's focus indicator. It runs independently
// of the element's pose so focus can change while a show or hide is in
// flight.
type focusDriver struct {
	animator  *Animator
	indicator *Node
	restScale Vec2
	scale     *SmoothValue[Vec2]
	alpha     *TweenGroup
	focused   bool
}

func newFocusDriver(a *Animator, indicator *Node) *focusDriver {
	return &focusDriver{
		animator:  a,
		indicator: indicator,
		restScale: indicator.Scale(),
	}
}

// play animates the indicator to its focused or unfocused look.
func (f *focusDriver) play(cfg *FocusConfig, focused bool) {
	f.focused = focused
	scale, alpha := cfg.UnfocusedScale, cfg.UnfocusedAlpha
	if focused {
		scale, alpha = cfg.Scale, cfg.Alpha
	}
	if f.scale == nil {
		f.scale = NewSmoothValue(f.animator, cfg.Interpolation, f.indicator.Scale(), f.indicator.SetScale)
	}
	f.scale.SetConfig(cfg.Interpolation)
	f.scale.SetValue(f.restScale.Mul(scale))

	if f.alpha != nil {
		f.alpha.Stop()
	}
	fn, _ := ParseEase(cfg.Ease)
	f.alpha = TweenAlpha(f.animator, f.indicator, alpha, cfg.Duration, fn)
}

func (f *focusDriver) isAnimating() bool {
	return (f.scale != nil && f.scale.IsAnimating()) || (f.alpha != nil && !f.alpha.Done)
}

// snap shows the unfocused look immediately.
func (f *focusDriver) snap(cfg *FocusConfig) {
	f.focused = false
	if f.alpha != nil {
		f.alpha.Stop()
	}
	to := f.restScale.Mul(cfg.UnfocusedScale)
	if f.scale != nil {
		f.scale.SnapValue(to)
	} else {
		f.indicator.SetScale(to)
	}
	f.indicator.SetAlpha(cfg.UnfocusedAlpha)
}
