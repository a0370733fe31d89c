// Package ecs provides ECS adapters for sway's event stream.
//
// The primary adapter is [NewDonburiStore], which bridges sway pointer
// events and element lifecycle events into a [Donburi] world as typed
// events. Subscribe to [InteractionEventType] or [AnimationEventType] in
// your ECS systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	scene.SetEntityStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
