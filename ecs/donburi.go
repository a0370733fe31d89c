package ecs

import (
	"github.com/phanxgames/sway"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InteractionEventType is the Donburi event type for sway pointer events.
var InteractionEventType = events.NewEventType[sway.InteractionEvent]()

// AnimationEventType is the Donburi event type for element and screen
// lifecycle events: show and hide started or finished, batch done.
var AnimationEventType = events.NewEventType[sway.AnimationEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Events are published to InteractionEventType and AnimationEventType and
// can be consumed with events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) sway.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event sway.InteractionEvent) {
	InteractionEventType.Publish(s.world, event)
}

func (s *donburiStore) EmitAnimation(event sway.AnimationEvent) {
	AnimationEventType.Publish(s.world, event)
}
