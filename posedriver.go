package sway

// PoseDriver is the composite driver of one element. It turns an
// EventConfig and the element's resting pose into concrete targets and
// dispatches them to per-property drivers, which it creates on first use
// and keeps for the element's lifetime.
//
// Position, rotation and scale follow the spring kernel. Color and alpha
// are fixed-duration tweens. The move offset is a separate spring whose
// value is added to the position.
type PoseDriver struct {
	animator *Animator
	node     *Node
	graphic  *Node
	rest     Pose
	base     Vec3 // position before the move offset

	position *SmoothValue[Vec3]
	rotation *SmoothValue[float64]
	scale    *SmoothValue[Vec2]
	offset   *SmoothValue[Vec3]
	color    *TweenGroup
	alpha    *TweenGroup
}

// NewPoseDriver captures node's current pose as the resting pose. graphic
// receives color tweens and may be nil, in which case color animation is
// skipped.
func NewPoseDriver(a *Animator, node, graphic *Node) *PoseDriver {
	p := &PoseDriver{animator: a, node: node, graphic: graphic}
	p.CaptureRest()
	return p
}

// CaptureRest re-reads the resting pose from the node and graphic.
func (p *PoseDriver) CaptureRest() {
	if p.node != nil {
		p.rest = p.node.Pose()
		p.base = p.rest.Position.Sub(p.offsetValue())
		p.rest.Position = p.base
	}
	if p.graphic != nil {
		p.rest.Color = p.graphic.Color
	}
}

// Rest returns the resting pose.
func (p *PoseDriver) Rest() Pose { return p.rest }

// SetRest replaces the resting pose without moving the node.
func (p *PoseDriver) SetRest(pose Pose) { p.rest = pose }

// --- Pose arithmetic ---

// StartPose is where a show of cfg begins: the resting pose displaced by
// every enabled group.
func (p *PoseDriver) StartPose(cfg *EventConfig) Pose {
	return p.displaced(cfg)
}

// displaced applies cfg's offset, delta, factor and alpha to the rest pose.
func (p *PoseDriver) displaced(cfg *EventConfig) Pose {
	out := p.rest
	if cfg.Position.Enabled {
		out.Position = out.Position.Add(cfg.Position.Offset)
	}
	if cfg.Rotation.Enabled {
		out.Rotation += cfg.Rotation.Delta * degToRad
	}
	if cfg.Scale.Enabled {
		out.Scale = out.Scale.Mul(cfg.Scale.Factor)
	}
	if cfg.Alpha.Enabled {
		out.Alpha = cfg.Alpha.Value
	}
	if cfg.Color.Enabled {
		out.Color = cfg.Color.Color
	}
	return out
}

// --- Playback ---

// Play animates toward the target of cfg for the given family. When reset
// is set, every driver touched discards its velocity first.
//
// Show targets the full resting pose, so groups a show leaves disabled
// still return to rest. Hide and event targets displace the resting pose by
// the enabled groups only.
func (p *PoseDriver) Play(cfg *EventConfig, family Family, reset bool) {
	if p.node == nil {
		return
	}
	switch family {
	case FamilyShow:
		p.playShow(cfg, reset)
	default:
		p.playDisplaced(cfg, reset)
	}
}

func (p *PoseDriver) playShow(cfg *EventConfig, reset bool) {
	rest := p.rest
	if cfg.Position.Enabled || p.position != nil {
		drivePosition(p, cfg.Position.Enabled, cfg.Position.Interpolation, rest.Position, reset)
	}
	if cfg.Rotation.Enabled || p.rotation != nil {
		driveRotation(p, cfg.Rotation.Enabled, cfg.Rotation.Interpolation, rest.Rotation, reset)
	}
	if cfg.Scale.Enabled || p.scale != nil {
		driveScale(p, cfg.Scale.Enabled, cfg.Scale.Interpolation, rest.Scale, reset)
	}
	if cfg.Alpha.Enabled {
		p.tweenAlpha(rest.Alpha, cfg.Alpha.Duration, cfg.Alpha.Ease)
	} else {
		p.tweenAlpha(rest.Alpha, 0, "")
	}
	if cfg.Color.Enabled {
		p.tweenColor(rest.Color, cfg.Color.Duration, cfg.Color.Ease)
	}
}

func (p *PoseDriver) playDisplaced(cfg *EventConfig, reset bool) {
	to := p.displaced(cfg)
	if cfg.Position.Enabled {
		drivePosition(p, true, cfg.Position.Interpolation, to.Position, reset)
	}
	if cfg.Rotation.Enabled {
		driveRotation(p, true, cfg.Rotation.Interpolation, to.Rotation, reset)
	}
	if cfg.Scale.Enabled {
		driveScale(p, true, cfg.Scale.Interpolation, to.Scale, reset)
	}
	if cfg.Alpha.Enabled {
		p.tweenAlpha(to.Alpha, cfg.Alpha.Duration, cfg.Alpha.Ease)
	}
	if cfg.Color.Enabled {
		p.tweenColor(to.Color, cfg.Color.Duration, cfg.Color.Ease)
	}
}

// drive retargets sv, adopting cfg only when the group is enabled so that a
// disabled group keeps the dynamics it last ran with.
func drive[T Value](sv *SmoothValue[T], enabled bool, cfg InterpolationConfig, to T, reset bool) {
	if enabled {
		sv.SetConfig(cfg)
	}
	if reset {
		sv.Reset(sv.Value())
	}
	sv.SetValue(to)
}

func drivePosition(p *PoseDriver, enabled bool, cfg InterpolationConfig, to Vec3, reset bool) {
	drive(p.positionDriver(cfg), enabled, cfg, to, reset)
}

func driveRotation(p *PoseDriver, enabled bool, cfg InterpolationConfig, to float64, reset bool) {
	drive(p.rotationDriver(cfg), enabled, cfg, to, reset)
}

func driveScale(p *PoseDriver, enabled bool, cfg InterpolationConfig, to Vec2, reset bool) {
	drive(p.scaleDriver(cfg), enabled, cfg, to, reset)
}

// SnapTo places the node at pose immediately, cancelling every running
// animation. Drivers that do not exist yet are not created; the node is
// written directly.
func (p *PoseDriver) SnapTo(pose Pose) {
	if p.node == nil {
		return
	}
	p.stopTweens()
	if p.position != nil {
		p.position.SnapValue(pose.Position)
	} else {
		p.base = pose.Position
		p.node.SetPosition(p.base.Add(p.offsetValue()))
	}
	if p.rotation != nil {
		p.rotation.SnapValue(pose.Rotation)
	} else {
		p.node.SetRotation(pose.Rotation)
	}
	if p.scale != nil {
		p.scale.SnapValue(pose.Scale)
	} else {
		p.node.SetScale(pose.Scale)
	}
	p.node.SetAlpha(pose.Alpha)
	if p.graphic != nil {
		p.graphic.Color = pose.Color
		p.graphic.MarkDirty()
	}
}

// SnapToStart places the node at the start pose of a show of cfg.
func (p *PoseDriver) SnapToStart(cfg *EventConfig) {
	p.SnapTo(p.StartPose(cfg))
}

// SnapRest places the node at its resting pose with no move offset.
func (p *PoseDriver) SnapRest() {
	if p.offset != nil {
		p.offset.SnapValue(Vec3{})
	}
	p.SnapTo(p.rest)
}

// Stop cancels every running animation in place.
func (p *PoseDriver) Stop() {
	if p.position != nil {
		p.position.Stop()
	}
	if p.rotation != nil {
		p.rotation.Stop()
	}
	if p.scale != nil {
		p.scale.Stop()
	}
	if p.offset != nil {
		p.offset.Stop()
	}
	p.stopTweens()
}

// IsAnimating reports whether any property is still in motion.
func (p *PoseDriver) IsAnimating() bool {
	return (p.position != nil && p.position.IsAnimating()) ||
		(p.rotation != nil && p.rotation.IsAnimating()) ||
		(p.scale != nil && p.scale.IsAnimating()) ||
		(p.offset != nil && p.offset.IsAnimating()) ||
		(p.color != nil && !p.color.Done) ||
		(p.alpha != nil && !p.alpha.Done)
}

// --- Move offset ---

// Nudge animates the additive move offset toward to. Velocity carries over
// unless the new offset points against the current one.
func (p *PoseDriver) Nudge(to Vec3, cfg InterpolationConfig) {
	if p.node == nil {
		return
	}
	sv := p.offsetDriver(cfg)
	sv.SetConfig(cfg)
	if sv.Target().Dot(to) < 0 {
		sv.Reset(sv.Value())
	}
	sv.SetValue(to)
}

// ReturnNudge animates the move offset back to zero.
func (p *PoseDriver) ReturnNudge() {
	if p.offset != nil {
		p.offset.SetValue(Vec3{})
	}
}

// Offset returns the current move offset.
func (p *PoseDriver) Offset() Vec3 { return p.offsetValue() }

// --- Lazy drivers ---

func (p *PoseDriver) offsetValue() Vec3 {
	if p.offset != nil {
		return p.offset.Value()
	}
	return Vec3{}
}

func (p *PoseDriver) positionDriver(cfg InterpolationConfig) *SmoothValue[Vec3] {
	if p.position == nil {
		p.position = NewSmoothValue(p.animator, cfg, p.base, func(v Vec3) {
			p.base = v
			p.node.SetPosition(v.Add(p.offsetValue()))
		})
	}
	return p.position
}

func (p *PoseDriver) rotationDriver(cfg InterpolationConfig) *SmoothValue[float64] {
	if p.rotation == nil {
		p.rotation = NewSmoothValue(p.animator, cfg, p.node.Rotation, p.node.SetRotation)
	}
	return p.rotation
}

func (p *PoseDriver) scaleDriver(cfg InterpolationConfig) *SmoothValue[Vec2] {
	if p.scale == nil {
		p.scale = NewSmoothValue(p.animator, cfg, p.node.Scale(), p.node.SetScale)
	}
	return p.scale
}

func (p *PoseDriver) offsetDriver(cfg InterpolationConfig) *SmoothValue[Vec3] {
	if p.offset == nil {
		p.offset = NewSmoothValue(p.animator, cfg, Vec3{}, func(v Vec3) {
			p.node.SetPosition(p.base.Add(v))
		})
	}
	return p.offset
}

// --- Tweens ---

func (p *PoseDriver) tweenAlpha(to, duration float64, easeName string) {
	if p.alpha != nil {
		p.alpha.Stop()
	}
	fn, _ := ParseEase(easeName)
	p.alpha = TweenAlpha(p.animator, p.node, to, duration, fn)
}

func (p *PoseDriver) tweenColor(to Color, duration float64, easeName string) {
	if p.graphic == nil {
		return
	}
	if p.color != nil {
		p.color.Stop()
	}
	fn, _ := ParseEase(easeName)
	p.color = TweenColor(p.animator, p.graphic, to, duration, fn)
}

func (p *PoseDriver) stopTweens() {
	if p.alpha != nil {
		p.alpha.Stop()
	}
	if p.color != nil {
		p.color.Stop()
	}
}
