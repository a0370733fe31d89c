package sway

import (
	"fmt"
	"maps"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// Family groups event configs by the kind of transition they drive.
type Family uint8

const (
	FamilyShow  Family = iota // Showing transitions (ShowFromLeft, ShowFade, ...)
	FamilyHide                // Hiding transitions
	FamilyEvent               // stateless pointer events (Normal, Over, Press, ...)
	FamilyMove                // transient nudges (MoveLeft, ...)
)

// String returns the profile section name of the family.
func (f Family) String() string {
	switch f {
	case FamilyShow:
		return "show"
	case FamilyHide:
		return "hide"
	case FamilyEvent:
		return "events"
	case FamilyMove:
		return "move"
	default:
		return "family(" + strconv.Itoa(int(f)) + ")"
	}
}

// PositionGroup offsets the element from its resting position.
type PositionGroup struct {
	Enabled       bool                `yaml:"enabled"`
	Offset        Vec3                `yaml:"offset"`
	Interpolation InterpolationConfig `yaml:"interpolation"`
}

// RotationGroup rotates the element away from its resting rotation.
// Delta is in degrees.
type RotationGroup struct {
	Enabled       bool                `yaml:"enabled"`
	Delta         float64             `yaml:"delta"`
	Interpolation InterpolationConfig `yaml:"interpolation"`
}

// ScaleGroup multiplies the element's resting scale per axis.
type ScaleGroup struct {
	Enabled       bool                `yaml:"enabled"`
	Factor        Vec2                `yaml:"factor"`
	Interpolation InterpolationConfig `yaml:"interpolation"`
}

// ColorGroup tints the element's graphic over a fixed duration.
type ColorGroup struct {
	Enabled  bool    `yaml:"enabled"`
	Color    Color   `yaml:"color"`
	Duration float64 `yaml:"duration"`
	Ease     string  `yaml:"ease"`
}

// AlphaGroup fades the element's node over a fixed duration. For show
// events Value is the starting alpha; for hide events it is the final one.
type AlphaGroup struct {
	Enabled  bool    `yaml:"enabled"`
	Value    float64 `yaml:"value"`
	Duration float64 `yaml:"duration"`
	Ease     string  `yaml:"ease"`
}

// EventConfig describes one named animation. Each property group is
// toggled independently; a group present in a profile file is enabled
// unless it sets enabled: false.
type EventConfig struct {
	Name     string        `yaml:"-"`
	Position PositionGroup `yaml:"position"`
	Rotation RotationGroup `yaml:"rotation"`
	Scale    ScaleGroup    `yaml:"scale"`
	Color    ColorGroup    `yaml:"color"`
	Alpha    AlphaGroup    `yaml:"alpha"`

	// Duration is the completion timeout of a show or hide. Zero falls back
	// to the longest color or alpha duration.
	Duration float64 `yaml:"duration"`

	// ReturnDelay is how long a move holds its offset before returning.
	ReturnDelay float64 `yaml:"returnDelay"`

	// Direction orders staggered screen batches.
	Direction Direction `yaml:"direction"`
}

// CompletionTime returns the completion timeout of the event.
func (c *EventConfig) CompletionTime() float64 {
	if c.Duration > 0 {
		return c.Duration
	}
	var d float64
	if c.Alpha.Enabled {
		d = max(d, c.Alpha.Duration)
	}
	if c.Color.Enabled {
		d = max(d, c.Color.Duration)
	}
	return d
}

// HasTransform reports whether any spring-driven group is enabled.
func (c *EventConfig) HasTransform() bool {
	return c.Position.Enabled || c.Rotation.Enabled || c.Scale.Enabled
}

// Clone returns a copy of c.
func (c *EventConfig) Clone() *EventConfig {
	cp := *c
	return &cp
}

// FocusConfig drives an element's focus indicator.
type FocusConfig struct {
	Scale          Vec2                `yaml:"scale"`
	UnfocusedScale Vec2                `yaml:"unfocusedScale"`
	Alpha          float64             `yaml:"alpha"`
	UnfocusedAlpha float64             `yaml:"unfocusedAlpha"`
	Duration       float64             `yaml:"duration"`
	Ease           string              `yaml:"ease"`
	Interpolation  InterpolationConfig `yaml:"interpolation"`
}

// ConfigSource is the read-only lookup an Element resolves its animations
// from. Values must stay stable for the duration of one animation.
type ConfigSource interface {
	TryGetConfig(family Family, name string) (*EventConfig, bool)
	FocusConfig() (*FocusConfig, bool)
}

// Profile is a ConfigSource backed by plain maps, usually loaded from YAML.
type Profile struct {
	Show   map[string]*EventConfig `yaml:"show"`
	Hide   map[string]*EventConfig `yaml:"hide"`
	Events map[string]*EventConfig `yaml:"events"`
	Move   map[string]*EventConfig `yaml:"move"`
	Focus  *FocusConfig            `yaml:"focus"`
}

func (p *Profile) family(f Family) map[string]*EventConfig {
	switch f {
	case FamilyShow:
		return p.Show
	case FamilyHide:
		return p.Hide
	case FamilyEvent:
		return p.Events
	case FamilyMove:
		return p.Move
	}
	return nil
}

// TryGetConfig returns the named event of the given family.
func (p *Profile) TryGetConfig(f Family, name string) (*EventConfig, bool) {
	c, ok := p.family(f)[name]
	return c, ok && c != nil
}

// FocusConfig returns the focus indicator config, if any.
func (p *Profile) FocusConfig() (*FocusConfig, bool) {
	return p.Focus, p.Focus != nil
}

// Names lists the event names of a family in sorted order.
func (p *Profile) Names(f Family) []string {
	return slices.Sorted(maps.Keys(p.family(f)))
}

// Set stores cfg under name in the given family, replacing any previous entry.
func (p *Profile) Set(f Family, name string, cfg *EventConfig) {
	cfg.Name = name
	m := p.family(f)
	if m == nil {
		m = make(map[string]*EventConfig)
		switch f {
		case FamilyShow:
			p.Show = m
		case FamilyHide:
			p.Hide = m
		case FamilyEvent:
			p.Events = m
		case FamilyMove:
			p.Move = m
		}
	}
	m[name] = cfg
}

// WithTransition returns a copy of the profile whose color and alpha
// transitions all use the given duration and ease. The receiver is not
// modified.
func (p *Profile) WithTransition(duration float64, easeName string) *Profile {
	out := &Profile{}
	for _, f := range []Family{FamilyShow, FamilyHide, FamilyEvent, FamilyMove} {
		for name, c := range p.family(f) {
			cp := c.Clone()
			cp.Color.Duration = duration
			cp.Color.Ease = easeName
			cp.Alpha.Duration = duration
			cp.Alpha.Ease = easeName
			out.Set(f, name, cp)
		}
	}
	if p.Focus != nil {
		fc := *p.Focus
		fc.Duration = duration
		fc.Ease = easeName
		out.Focus = &fc
	}
	return out
}

// LoadProfile parses a YAML animation profile.
func LoadProfile(data []byte) (*Profile, error) {
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse profile: %w", err)
	}
	for _, f := range []Family{FamilyShow, FamilyHide, FamilyEvent, FamilyMove} {
		for name, c := range p.family(f) {
			if c == nil {
				return nil, fmt.Errorf("parse profile: %s %q is empty", f, name)
			}
			c.Name = name
			if err := validateEases(c.Color.Ease, c.Alpha.Ease); err != nil {
				return nil, fmt.Errorf("parse profile: %s %q: %w", f, name, err)
			}
		}
	}
	if p.Focus != nil {
		if err := validateEases(p.Focus.Ease); err != nil {
			return nil, fmt.Errorf("parse profile: focus: %w", err)
		}
	}
	return &p, nil
}

// LoadProfileFile reads and parses a YAML animation profile from disk.
func LoadProfileFile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile: %w", err)
	}
	return LoadProfile(data)
}

func validateEases(names ...string) error {
	for _, n := range names {
		if _, err := ParseEase(n); err != nil {
			return err
		}
	}
	return nil
}

// DefaultProfile returns the standard event set. offset is the distance,
// in pixels, directional shows travel from and hides travel to.
func DefaultProfile(offset float64) *Profile {
	p := &Profile{}
	slide := DampedSpringConfig(14)
	pop := SpringConfig(16, 0.55)
	fadeIn := AlphaGroup{Enabled: true, Value: 0, Duration: 0.25, Ease: "outCubic"}
	fadeOut := AlphaGroup{Enabled: true, Value: 0, Duration: 0.2, Ease: "inCubic"}

	sides := []struct {
		suffix string
		dir    Direction
		offset Vec3
	}{
		{"Left", DirectionLeft, Vec3{X: -offset}},
		{"Right", DirectionRight, Vec3{X: offset}},
		{"Top", DirectionUp, Vec3{Y: -offset}},
		{"Bottom", DirectionDown, Vec3{Y: offset}},
	}
	for _, s := range sides {
		p.Set(FamilyShow, "ShowFrom"+s.suffix, &EventConfig{
			Position:  PositionGroup{Enabled: true, Offset: s.offset, Interpolation: slide},
			Alpha:     fadeIn,
			Duration:  0.35,
			Direction: s.dir,
		})
		p.Set(FamilyHide, "HideTo"+s.suffix, &EventConfig{
			Position:  PositionGroup{Enabled: true, Offset: s.offset, Interpolation: slide},
			Alpha:     fadeOut,
			Duration:  0.3,
			Direction: s.dir,
		})
	}
	p.Set(FamilyShow, "ShowFade", &EventConfig{Alpha: fadeIn})
	p.Set(FamilyHide, "HideFade", &EventConfig{Alpha: fadeOut})
	p.Set(FamilyShow, "ShowScale", &EventConfig{
		Scale:    ScaleGroup{Enabled: true, Factor: Vec2{0.6, 0.6}, Interpolation: pop},
		Alpha:    fadeIn,
		Duration: 0.35,
	})
	p.Set(FamilyHide, "HideScale", &EventConfig{
		Scale:    ScaleGroup{Enabled: true, Factor: Vec2{0.6, 0.6}, Interpolation: slide},
		Alpha:    fadeOut,
		Duration: 0.3,
	})

	p.Set(FamilyEvent, "Normal", &EventConfig{
		Scale: ScaleGroup{Enabled: true, Factor: Vec2{1, 1}, Interpolation: pop},
		Color: ColorGroup{Enabled: true, Color: ColorWhite, Duration: 0.12},
	})
	p.Set(FamilyEvent, "Over", &EventConfig{
		Scale: ScaleGroup{Enabled: true, Factor: Vec2{1.06, 1.06}, Interpolation: pop},
		Color: ColorGroup{Enabled: true, Color: Color{0.85, 0.93, 1, 1}, Duration: 0.12},
	})
	p.Set(FamilyEvent, "Press", &EventConfig{
		Scale: ScaleGroup{Enabled: true, Factor: Vec2{0.94, 0.94}, Interpolation: ExponentialConfig(30)},
		Color: ColorGroup{Enabled: true, Color: Color{0.7, 0.8, 0.95, 1}, Duration: 0.06},
	})
	p.Set(FamilyEvent, "Disabled", &EventConfig{
		Color: ColorGroup{Enabled: true, Color: Color{0.5, 0.5, 0.5, 1}, Duration: 0.2},
	})

	nudge := offset / 4
	for _, s := range []struct {
		name string
		dir  Direction
		off  Vec3
	}{
		{"MoveLeft", DirectionLeft, Vec3{X: -nudge}},
		{"MoveRight", DirectionRight, Vec3{X: nudge}},
		{"MoveUp", DirectionUp, Vec3{Y: -nudge}},
		{"MoveDown", DirectionDown, Vec3{Y: nudge}},
	} {
		p.Set(FamilyMove, s.name, &EventConfig{
			Position:    PositionGroup{Enabled: true, Offset: s.off, Interpolation: pop},
			ReturnDelay: 0.15,
			Direction:   s.dir,
		})
	}

	p.Focus = &FocusConfig{
		Scale:          Vec2{1, 1},
		UnfocusedScale: Vec2{0.9, 0.9},
		Alpha:          1,
		UnfocusedAlpha: 0,
		Duration:       0.15,
		Interpolation:  pop,
	}
	return p
}

// --- YAML decoding ---

// UnmarshalYAML enables the group when it appears in a profile.
func (g *PositionGroup) UnmarshalYAML(value *yaml.Node) error {
	type plain PositionGroup
	p := plain{Enabled: true}
	if err := value.Decode(&p); err != nil {
		return err
	}
	*g = PositionGroup(p)
	return nil
}

// UnmarshalYAML enables the group when it appears in a profile.
func (g *RotationGroup) UnmarshalYAML(value *yaml.Node) error {
	type plain RotationGroup
	p := plain{Enabled: true}
	if err := value.Decode(&p); err != nil {
		return err
	}
	*g = RotationGroup(p)
	return nil
}

// UnmarshalYAML enables the group when it appears in a profile. A missing
// factor defaults to (1, 1).
func (g *ScaleGroup) UnmarshalYAML(value *yaml.Node) error {
	type plain ScaleGroup
	p := plain{Enabled: true, Factor: Vec2{1, 1}}
	if err := value.Decode(&p); err != nil {
		return err
	}
	*g = ScaleGroup(p)
	return nil
}

// UnmarshalYAML enables the group when it appears in a profile. A missing
// color defaults to white.
func (g *ColorGroup) UnmarshalYAML(value *yaml.Node) error {
	type plain ColorGroup
	p := plain{Enabled: true, Color: ColorWhite}
	if err := value.Decode(&p); err != nil {
		return err
	}
	*g = ColorGroup(p)
	return nil
}

// UnmarshalYAML enables the group when it appears in a profile.
func (g *AlphaGroup) UnmarshalYAML(value *yaml.Node) error {
	type plain AlphaGroup
	p := plain{Enabled: true}
	if err := value.Decode(&p); err != nil {
		return err
	}
	*g = AlphaGroup(p)
	return nil
}

// UnmarshalYAML accepts [x, y] or {x: .., y: ..}.
func (v *Vec2) UnmarshalYAML(value *yaml.Node) error {
	a, err := decodeAxes(value, 2)
	if err != nil {
		return err
	}
	*v = Vec2{a[0], a[1]}
	return nil
}

// UnmarshalYAML accepts [x, y], [x, y, z] or {x: .., y: .., z: ..}.
func (v *Vec3) UnmarshalYAML(value *yaml.Node) error {
	a, err := decodeAxes(value, 3)
	if err != nil {
		return err
	}
	*v = Vec3{a[0], a[1], a[2]}
	return nil
}

func decodeAxes(value *yaml.Node, n int) ([]float64, error) {
	out := make([]float64, n)
	switch value.Kind {
	case yaml.SequenceNode:
		var s []float64
		if err := value.Decode(&s); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBadVector, err)
		}
		if len(s) < 2 || len(s) > n {
			return nil, fmt.Errorf("%w: line %d: want %d components, got %d", ErrBadVector, value.Line, n, len(s))
		}
		copy(out, s)
	case yaml.MappingNode:
		var m map[string]float64
		if err := value.Decode(&m); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBadVector, err)
		}
		for k, f := range m {
			i := strings.Index("xyz", strings.ToLower(k))
			if len(k) != 1 || i < 0 || i >= n {
				return nil, fmt.Errorf("%w: line %d: unknown component %q", ErrBadVector, value.Line, k)
			}
			out[i] = f
		}
	default:
		return nil, fmt.Errorf("%w: line %d", ErrBadVector, value.Line)
	}
	return out, nil
}

// UnmarshalYAML accepts "#rrggbb", "#rrggbbaa" or [r, g, b, a] in [0, 1].
func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.SequenceNode {
		var s []float64
		if err := value.Decode(&s); err != nil {
			return fmt.Errorf("%w: %w", ErrBadColor, err)
		}
		if len(s) != 3 && len(s) != 4 {
			return fmt.Errorf("%w: line %d: want 3 or 4 channels", ErrBadColor, value.Line)
		}
		*c = Color{s[0], s[1], s[2], 1}
		if len(s) == 4 {
			c.A = s[3]
		}
		return nil
	}
	parsed, err := ParseHexColor(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*c = parsed
	return nil
}

// ParseHexColor parses "#rgb", "#rrggbb" or "#rrggbbaa".
func ParseHexColor(s string) (Color, error) {
	alpha := 1.0
	if len(s) == 9 {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q", ErrBadColor, s)
		}
		alpha = float64(a) / 255
		s = s[:7]
	}
	hc, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrBadColor, s)
	}
	return Color{hc.R, hc.G, hc.B, alpha}, nil
}

// UnmarshalYAML accepts a strategy name.
func (s *Strategy) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := ParseStrategy(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*s = parsed
	return nil
}

// UnmarshalYAML accepts a direction name.
func (d *Direction) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := ParseDirection(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*d = parsed
	return nil
}

// ParseDirection resolves "left", "right", "up"/"top", "down"/"bottom" or
// "none" (case-insensitive). An empty name yields DirectionNone.
func ParseDirection(name string) (Direction, error) {
	switch normalizeName(name) {
	case "", "none":
		return DirectionNone, nil
	case "left":
		return DirectionLeft, nil
	case "right":
		return DirectionRight, nil
	case "up", "top":
		return DirectionUp, nil
	case "down", "bottom":
		return DirectionDown, nil
	}
	return DirectionNone, fmt.Errorf("%w: %q", ErrUnknownDirection, name)
}
