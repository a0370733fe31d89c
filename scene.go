package sway

import (
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
)

// EntityStore is the interface for optional ECS integration.
// When set on a Scene, interaction and animation events are forwarded to it.
type EntityStore interface {
	EmitEvent(event InteractionEvent)
	EmitAnimation(event AnimationEvent)
}

// InteractionEvent carries pointer interaction data for the ECS bridge.
type InteractionEvent struct {
	Type     EventType
	EntityID uint32
	GlobalX  float64
	GlobalY  float64
	LocalX   float64
	LocalY   float64
	Button   MouseButton
}

// AnimationEventType identifies an element or screen lifecycle change.
type AnimationEventType uint8

const (
	AnimationShowStarted AnimationEventType = iota // element began showing
	AnimationShown                                 // element finished showing
	AnimationHideStarted                           // element began hiding
	AnimationHidden                                // element finished hiding
	AnimationBatchDone                             // every element of a screen batch finished
)

// AnimationEvent carries element and screen lifecycle data for the ECS bridge.
type AnimationEvent struct {
	Type     AnimationEventType
	EntityID uint32
	Element  string
	Event    string
}

// Scene is the top-level object that owns the node tree, the animation
// context, focus selection and input state. It is the explicit context
// passed to every Element and Screen.
type Scene struct {
	root     *Node
	animator *Animator
	store    EntityStore
	logger   *slog.Logger
	debug    bool

	// ClearColor fills the screen before nodes are drawn.
	ClearColor Color

	// CaptureDir is where Capture writes PNG files. Defaults to
	// DefaultCaptureDir.
	CaptureDir string

	selected   *Node
	inputLocks int

	// Input state
	pointer     pointerState
	hitBuf      []*Node
	injectQueue []syntheticPointerEvent
	testRunner  *TestRunner

	captureQueue []string

	updateFunc func() error
}

// NewScene creates a new scene with a pre-created root container.
func NewScene() *Scene {
	root := NewNode("root")
	root.Interactable = true
	return &Scene{
		root:     root,
		animator: NewAnimator(),
		logger:   slog.Default(),
	}
}

// Root returns the scene's root container node.
func (s *Scene) Root() *Node {
	return s.root
}

// Animator returns the scheduling context that drives every animation in
// the scene.
func (s *Scene) Animator() *Animator {
	return s.animator
}

// Update is the per-frame entry point for an ebiten.Game: it reads device
// input and advances the scene by one tick of 1/TPS seconds.
func (s *Scene) Update() {
	dt := 1.0 / float64(ebiten.TPS())
	updateWorldTransform(s.root, identityTransform, 1.0, false)
	if len(s.injectQueue) == 0 {
		s.processMousePointer()
	}
	s.Tick(dt)
}

// Tick advances the scene by dt seconds without reading device input:
// the scripted test runner, queued synthetic pointer events, then every
// running animation and timer.
func (s *Scene) Tick(dt float64) {
	updateWorldTransform(s.root, identityTransform, 1.0, false)
	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	s.processInjectedInput()
	s.animator.Tick(dt)
}

// SetEntityStore sets the optional ECS bridge.
func (s *Scene) SetEntityStore(store EntityStore) {
	s.store = store
}

// SetLogger replaces the scene's structured logger. Nil restores slog.Default().
func (s *Scene) SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.Default()
	}
	s.logger = l
}

// Logger returns the scene's structured logger.
func (s *Scene) Logger() *slog.Logger {
	return s.logger
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics and element state transitions are logged at debug level.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set Scene debug flag so that node
// operations (which lack a Scene pointer) can check it cheaply.
var globalDebug bool

// --- Focus ---

// Selected returns the node that currently holds focus, or nil.
func (s *Scene) Selected() *Node {
	return s.selected
}

// SetSelected moves focus to n (nil clears it). The previous node's OnBlur
// runs before the new node's OnFocus.
func (s *Scene) SetSelected(n *Node) {
	if n == s.selected {
		return
	}
	prev := s.selected
	s.selected = n
	if prev != nil && prev.OnBlur != nil {
		prev.OnBlur()
	}
	if n != nil && n.OnFocus != nil {
		n.OnFocus()
	}
}

// --- Input locking ---

// LockInput suspends pointer dispatch until a matching UnlockInput. Locks
// nest, so overlapping batches on different screens are safe.
func (s *Scene) LockInput() {
	s.inputLocks++
}

// UnlockInput releases one LockInput.
func (s *Scene) UnlockInput() {
	if s.inputLocks > 0 {
		s.inputLocks--
	}
}

// InputLocked reports whether pointer dispatch is suspended.
func (s *Scene) InputLocked() bool {
	return s.inputLocks > 0
}

func (s *Scene) emitAnimation(ev AnimationEvent) {
	if s.store != nil {
		s.store.EmitAnimation(ev)
	}
}
