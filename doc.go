// Package sway animates the discrete state transitions of UI elements for
// [Ebitengine]: shown and hidden, hovered and pressed, focused, nudged.
//
// Every animated property of an element is a [SmoothValue] moving toward a
// target under one of four strategies: direct snap, exponential decay, a
// critically damped spring, or an elastic spring (via [harmonica]). Color
// and alpha use fixed-duration tweens (via [gween]). An [Element] maps named
// events onto those properties and enforces legal transitions; a [Screen]
// staggers a show or hide across many elements.
//
// # Quick start
//
//	scene := sway.NewScene()
//	profile := sway.DefaultProfile(40)
//
//	button := sway.NewRect("play", 120, 40, sway.ColorWhite)
//	button.X, button.Y = 100, 80
//	scene.Root().AddChild(button)
//
//	el := sway.NewElement(scene, button, profile, sway.WithHiddenStart())
//	el.Show("ShowFromLeft")
//
//	sway.Run(scene, sway.RunConfig{Title: "Menu", Width: 640, Height: 480})
//
// For full control, implement [ebiten.Game] yourself and call
// [Scene.Update] and [Scene.Draw] directly. Tests and headless hosts call
// [Scene.Tick] with an explicit step instead.
//
// # Scheduling
//
// There is no global animation manager. Each [Scene] owns an [Animator];
// every running value, tween and timer of the scene's elements is
// registered there and advanced once per tick, in registration order.
// Everything is single-threaded: call into sway only from the goroutine
// that ticks the scene.
//
// # Profiles
//
// Elements look their animations up through a [ConfigSource]. [Profile] is
// the stock implementation and loads from YAML:
//
//	show:
//	  ShowFromLeft:
//	    position:
//	      offset: [-40, 0]
//	      interpolation: {strategy: damped_spring, speed: 14}
//	    alpha: {value: 0, duration: 0.25, ease: outCubic}
//	    duration: 0.35
//	    direction: left
//
// # ECS integration
//
// Set an [EntityStore] on the scene to receive pointer and animation
// lifecycle events. The sway/ecs module provides a [Donburi] adapter.
//
// [Ebitengine]: https://ebitengine.org
// [harmonica]: https://github.com/charmbracelet/harmonica
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package sway
