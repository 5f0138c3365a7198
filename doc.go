// Package sprout is a tiny software-rendered square demo kit for [Ebitengine].
//
// Sprout owns exactly one thing: an axis-aligned square whose size is always
// 10% of the current canvas, rasterized into a plain uint32 pixel buffer
// every frame. The square can be nudged with the keyboard, recentered with a
// mouse click, or animated with elastic boundary bounces. Everything else
// (window creation, the event loop, presenting pixels) is Ebitengine's job.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	sq := sprout.New(800, 600)
//	sprout.Run(sq, sprout.RunConfig{
//		Title: "My Square", Width: 800, Height: 600,
//		Keyboard: true, Animate: true,
//	})
//
// For full control, implement [ebiten.Game] yourself and call
// [Square.HandleEvent], [Square.Advance], and [Square.Draw] directly. The
// [Square] carries no window or surface handle, so it works headless: the
// package tests exercise every behavior without opening a window.
//
// # Feature levels
//
// The examples/ directory contains one runnable program per feature level,
// from a static centered square up to bounce physics with sound:
//
//   - examples/static: draw the centered square
//   - examples/keyboard: WASD / arrow-key movement, clamped to the window
//   - examples/pointer: cursor tracking and click-to-recenter
//   - examples/bounce: continuous bounce animation, blip sound, FPS overlay
//   - examples/glide: eased click-to-move via [gween]
//
// # Resize behavior
//
// The square's size and movement bounds are recomputed from the canvas
// dimensions on every call, never cached, so resizing the window rescales
// and re-bounds the square with no extra bookkeeping.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package sprout
