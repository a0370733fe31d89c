package sway

import "fmt"

// State is the shown/hidden lifecycle of an Element. An element is in
// exactly one state at a time.
type State uint8

const (
	StateHidden  State = iota // fully hidden, not interactable
	StateShowing              // show in flight
	StateShown                // fully shown, interactable
	StateHiding               // hide in flight
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateHidden:
		return "hidden"
	case StateShowing:
		return "showing"
	case StateShown:
		return "shown"
	case StateHiding:
		return "hiding"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Event names the element reacts to without a profile lookup.
const (
	EventNormal  = "Normal"
	EventOver    = "Over"
	EventPress   = "Press"
	EventFocus   = "Focus"
	EventUnfocus = "Unfocus"
)

// ElementOption configures an Element at construction.
type ElementOption func(*Element)

// WithName overrides the element name used in logs and events. The default
// is the node's name.
func WithName(name string) ElementOption {
	return func(e *Element) { e.Name = name }
}

// WithGraphic sets the node whose Color is tinted by color groups. The
// default is the element's own node.
func WithGraphic(n *Node) ElementOption {
	return func(e *Element) { e.graphic = n }
}

// WithFocusIndicator sets the overlay node animated by Focus and Unfocus.
// Without one, focus changes are ignored.
func WithFocusIndicator(n *Node) ElementOption {
	return func(e *Element) { e.indicator = n }
}

// WithHiddenStart starts the element hidden instead of shown.
func WithHiddenStart() ElementOption {
	return func(e *Element) { e.hiddenStart = true }
}

// Element is the animation state machine of one UI element. It maps named
// events onto its node's pose through a PoseDriver, enforces the legal
// shown/hidden transitions, and tracks focus and move nudges alongside.
//
// All methods must be called from the goroutine that ticks the scene.
type Element struct {
	Name string

	scene     *Scene
	node      *Node
	graphic   *Node
	indicator *Node
	cfg       ConfigSource

	pose  *PoseDriver
	focus *focusDriver

	state      State
	transition string // name of the show or hide in flight or last finished
	completion *Timer
	moveTimer  *Timer

	hovered     bool
	focused     bool
	hiddenStart bool

	listeners []stateListener
	nextID    int

	// callbacks set on the node before the element hooked it
	prevEnter, prevLeave, prevDown, prevUp func(PointerContext)
	prevFocus, prevBlur                    func()
}

type stateListener struct {
	id int
	fn func(*Element, State)
}

// NewElement binds an element to node. The node's current pose becomes its
// resting pose, and its pointer and focus callbacks are wired to play
// Over, Normal, Press, Focus and Unfocus. Panics if scene, node or cfg is
// nil.
func NewElement(scene *Scene, node *Node, cfg ConfigSource, opts ...ElementOption) *Element {
	if scene == nil {
		panic("sway: NewElement requires a scene")
	}
	if node == nil {
		panic("sway: NewElement requires a node")
	}
	if cfg == nil {
		panic("sway: NewElement requires a config source")
	}
	e := &Element{
		Name:  node.Name,
		scene: scene,
		node:  node,
		cfg:   cfg,
		state: StateShown,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.graphic == nil {
		e.graphic = node
	}
	e.pose = NewPoseDriver(scene.animator, node, e.graphic)
	if e.indicator != nil {
		e.focus = newFocusDriver(scene.animator, e.indicator)
		if fc, ok := cfg.FocusConfig(); ok {
			e.focus.snap(fc)
		}
	}
	e.hook()
	if e.hiddenStart {
		e.SetHiddenImmediate()
	} else {
		node.Interactable = true
	}
	return e
}

// hook chains the element's handlers in front of any callbacks already set
// on the node.
func (e *Element) hook() {
	n := e.node
	enter, leave, down, up := n.OnPointerEnter, n.OnPointerLeave, n.OnPointerDown, n.OnPointerUp
	onFocus, onBlur := n.OnFocus, n.OnBlur
	e.prevEnter, e.prevLeave, e.prevDown, e.prevUp = enter, leave, down, up
	e.prevFocus, e.prevBlur = onFocus, onBlur

	n.OnPointerEnter = func(ctx PointerContext) {
		e.hovered = true
		e.pointerEvent(EventOver)
		if enter != nil {
			enter(ctx)
		}
	}
	n.OnPointerLeave = func(ctx PointerContext) {
		e.hovered = false
		e.pointerEvent(EventNormal)
		if leave != nil {
			leave(ctx)
		}
	}
	n.OnPointerDown = func(ctx PointerContext) {
		e.pointerEvent(EventPress)
		if down != nil {
			down(ctx)
		}
	}
	n.OnPointerUp = func(ctx PointerContext) {
		if e.hovered {
			e.pointerEvent(EventOver)
		} else {
			e.pointerEvent(EventNormal)
		}
		if up != nil {
			up(ctx)
		}
	}
	n.OnFocus = func() {
		e.Focus()
		if onFocus != nil {
			onFocus()
		}
	}
	n.OnBlur = func() {
		e.Unfocus()
		if onBlur != nil {
			onBlur()
		}
	}
}

// --- Accessors ---

// Node returns the element's node.
func (e *Element) Node() *Node { return e.node }

// Driver returns the element's composite pose driver.
func (e *Element) Driver() *PoseDriver { return e.pose }

// State returns the current lifecycle state.
func (e *Element) State() State { return e.state }

// IsShown reports whether the element is fully shown.
func (e *Element) IsShown() bool { return e.state == StateShown }

// IsHidden reports whether the element is fully hidden.
func (e *Element) IsHidden() bool { return e.state == StateHidden }

// IsShowing reports whether a show is in flight.
func (e *Element) IsShowing() bool { return e.state == StateShowing }

// IsHiding reports whether a hide is in flight.
func (e *Element) IsHiding() bool { return e.state == StateHiding }

// IsFocused reports whether the focus indicator shows the focused look.
func (e *Element) IsFocused() bool { return e.focused }

// IsAnimating reports whether any property or transition is in flight.
func (e *Element) IsAnimating() bool {
	return e.pose.IsAnimating() || e.completion.Pending() || e.moveTimer.Pending() ||
		(e.focus != nil && e.focus.isAnimating())
}

// Transition returns the name of the current or most recent show or hide.
func (e *Element) Transition() string { return e.transition }

// OnStateChanged registers fn to run after every state change. Returns an
// unsubscribe function.
func (e *Element) OnStateChanged(fn func(*Element, State)) func() {
	id := e.nextID
	e.nextID++
	e.listeners = append(e.listeners, stateListener{id: id, fn: fn})
	return func() {
		for i := range e.listeners {
			if e.listeners[i].id == id {
				e.listeners = append(e.listeners[:i], e.listeners[i+1:]...)
				return
			}
		}
	}
}

// --- Entry point ---

// Animate drives the state machine with a named event.
//
// With isStateChange set, name is a show (isShowAction) or hide config.
// Otherwise Focus and Unfocus drive the focus indicator, names found in the
// move family nudge the element, and anything else is a stateless event
// such as Over or Press. For stateless events isShowAction marks the call
// as part of an outer show or hide, which exempts it from the suppression
// applied while the element is hiding or hidden.
//
// resetInterpolator discards the velocity of every property driven.
// Calls on an inactive node are ignored.
func (e *Element) Animate(name string, isShowAction, resetInterpolator, isStateChange bool) {
	if !e.node.IsActive() {
		return
	}
	if isStateChange {
		if isShowAction {
			e.show(name, resetInterpolator)
		} else {
			e.hide(name, resetInterpolator)
		}
		return
	}
	switch name {
	case EventFocus:
		e.setFocus(true)
		return
	case EventUnfocus:
		e.setFocus(false)
		return
	}
	if cfg, ok := e.cfg.TryGetConfig(FamilyMove, name); ok {
		e.move(cfg)
		return
	}
	e.event(name, isShowAction, resetInterpolator)
}

// Show plays the named show config.
func (e *Element) Show(name string) { e.Animate(name, true, false, true) }

// Hide plays the named hide config.
func (e *Element) Hide(name string) { e.Animate(name, false, false, true) }

// PlayEvent plays a stateless event such as Over or Press.
func (e *Element) PlayEvent(name string) { e.Animate(name, false, false, false) }

// Move plays the named move config.
func (e *Element) Move(name string) { e.Animate(name, false, false, false) }

// Focus shows the focused look of the focus indicator.
func (e *Element) Focus() { e.Animate(EventFocus, false, false, false) }

// Unfocus shows the unfocused look of the focus indicator.
func (e *Element) Unfocus() { e.Animate(EventUnfocus, false, false, false) }

// --- Transitions ---

func (e *Element) show(name string, reset bool) {
	if e.state == StateShown {
		return
	}
	cfg, ok := e.lookup(FamilyShow, name)
	if !ok {
		return
	}
	if e.state == StateShowing && name == e.transition {
		e.pose.Play(cfg, FamilyShow, reset)
		return
	}
	hard := reset || e.state == StateShowing
	from := e.state

	e.completion.Stop()
	e.node.Interactable = false
	e.transition = name
	if from == StateHidden {
		e.pose.SnapToStart(cfg)
	}
	e.pose.Play(cfg, FamilyShow, hard)
	e.completion = e.scene.animator.After(cfg.CompletionTime(), e.finishShow)
	e.setState(StateShowing, AnimationShowStarted)
}

func (e *Element) hide(name string, reset bool) {
	if e.state == StateHidden {
		return
	}
	cfg, ok := e.lookup(FamilyHide, name)
	if !ok {
		return
	}
	if e.state == StateHiding && name == e.transition {
		e.pose.Play(cfg, FamilyHide, reset)
		return
	}
	hard := reset || e.state == StateHiding

	if sel := e.scene.Selected(); sel != nil && e.node.Contains(sel) {
		e.scene.SetSelected(nil)
	}
	e.completion.Stop()
	e.node.Interactable = false
	e.transition = name
	e.hovered = false
	if normal, ok := e.cfg.TryGetConfig(FamilyEvent, EventNormal); ok {
		e.pose.Play(normal, FamilyEvent, false)
	}
	e.pose.Play(cfg, FamilyHide, hard)
	e.completion = e.scene.animator.After(cfg.CompletionTime(), e.finishHide)
	e.setState(StateHiding, AnimationHideStarted)
}

func (e *Element) finishShow() {
	e.node.Interactable = true
	e.setState(StateShown, AnimationShown)
}

func (e *Element) finishHide() {
	e.setState(StateHidden, AnimationHidden)
}

func (e *Element) event(name string, internal, reset bool) {
	if !internal && (e.state == StateHiding || e.state == StateHidden) {
		return
	}
	cfg, ok := e.lookup(FamilyEvent, name)
	if !ok {
		return
	}
	e.pose.Play(cfg, FamilyEvent, reset)
}

// pointerEvent plays an event raised by the pointer. Pointer events only
// apply to a fully shown element.
func (e *Element) pointerEvent(name string) {
	if e.state != StateShown {
		return
	}
	e.Animate(name, false, false, false)
}

func (e *Element) move(cfg *EventConfig) {
	if !cfg.Position.Enabled {
		return
	}
	e.pose.Nudge(cfg.Position.Offset, cfg.Position.Interpolation)
	if e.moveTimer == nil {
		e.moveTimer = e.scene.animator.After(cfg.ReturnDelay, e.pose.ReturnNudge)
		return
	}
	e.moveTimer.Reset(cfg.ReturnDelay)
}

func (e *Element) setFocus(on bool) {
	if e.focus == nil {
		return
	}
	fc, ok := e.cfg.FocusConfig()
	if !ok {
		e.scene.logger.Warn("sway: no focus config", "element", e.Name)
		return
	}
	e.focused = on
	e.focus.play(fc, on)
}

func (e *Element) lookup(f Family, name string) (*EventConfig, bool) {
	cfg, ok := e.cfg.TryGetConfig(f, name)
	if !ok {
		e.scene.logger.Warn("sway: no animation config",
			"element", e.Name, "event", name, "family", f.String())
	}
	return cfg, ok
}

func (e *Element) setState(s State, ev AnimationEventType) {
	from := e.state
	e.state = s
	if e.scene.debug {
		e.scene.logger.Debug("sway: element state",
			"element", e.Name, "from", from.String(), "to", s.String(), "event", e.transition)
	}
	e.scene.emitAnimation(AnimationEvent{
		Type:     ev,
		EntityID: e.node.EntityID,
		Element:  e.Name,
		Event:    e.transition,
	})
	// Listeners may unsubscribe; iterate over a snapshot.
	listeners := append([]stateListener(nil), e.listeners...)
	for _, l := range listeners {
		l.fn(e, s)
	}
}

// --- Immediate placement ---

// SnapToStart places the element at the start pose of the named show
// without animating or changing state.
func (e *Element) SnapToStart(name string) {
	cfg, ok := e.lookup(FamilyShow, name)
	if !ok {
		return
	}
	e.pose.SnapToStart(cfg)
}

// SetHiddenImmediate cancels everything in flight and forces the hidden
// state: resting transform, zero alpha, not interactable.
func (e *Element) SetHiddenImmediate() {
	e.completion.Stop()
	e.moveTimer.Stop()
	e.pose.SnapRest()
	e.node.SetAlpha(0)
	e.node.Interactable = false
	e.hovered = false
	if e.state != StateHidden {
		e.setState(StateHidden, AnimationHidden)
	}
}

// SetShownImmediate cancels everything in flight and forces the shown
// state at the resting pose.
func (e *Element) SetShownImmediate() {
	e.completion.Stop()
	e.moveTimer.Stop()
	e.pose.SnapRest()
	e.node.Interactable = true
	if e.state != StateShown {
		e.setState(StateShown, AnimationShown)
	}
}

// Dispose stops every animation and restores the node callbacks that were
// set before the element was created. The node itself is left in the tree.
func (e *Element) Dispose() {
	e.completion.Stop()
	e.moveTimer.Stop()
	e.pose.Stop()
	if e.focus != nil && e.focus.scale != nil {
		e.focus.scale.Stop()
	}
	if e.focus != nil && e.focus.alpha != nil {
		e.focus.alpha.Stop()
	}
	e.node.OnPointerEnter = e.prevEnter
	e.node.OnPointerLeave = e.prevLeave
	e.node.OnPointerDown = e.prevDown
	e.node.OnPointerUp = e.prevUp
	e.node.OnFocus = e.prevFocus
	e.node.OnBlur = e.prevBlur
	e.listeners = nil
}
