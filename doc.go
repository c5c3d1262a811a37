// Package herofx renders the animated hero of a personal site with
// [Ebitengine]: a liquid gradient background, a collision "pong" over the
// hero text, and a glass-wave transition that plays on every page change.
//
// # Quick start
//
// [Run] opens a window around an [App]:
//
//	app, err := herofx.NewApp(herofx.DefaultConfig(), 1280, 720, nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//	herofx.Run(app, herofx.RunConfig{Title: "Ch Varun", Width: 1280, Height: 720})
//
// # Transition overlay
//
// An [Overlay] looks up a live surface by query in a [SurfaceRegistry] and
// reveals it through an expanding circle with refraction, wobble and
// chromatic aberration, then fades out. [Navigator] locks page changes
// while a transition runs and unlocks on [Overlay.OnComplete], with a
// safety timer in case completion never arrives.
//
// The shader math also exists on the CPU ([ShadeGlass], [RenderGlass]) so
// frames can be rendered headless; see cmd/glassframes.
//
// # Collision text
//
// [Pong] lays out the hero text ([BuildLines]), rasterizes it
// ([RasterizeLines]) and partitions the coverage into an occupancy grid
// ([BuildGrid]). After a scripted handwriting [Intro], a ball bounces around
// the canvas and erases every cell it touches.
//
// # Configuration
//
// [Config] is YAML ([LoadConfig]). [App.WatchConfig] reloads it on change
// through a [ConfigWatcher].
//
// # Testing
//
// [LoadTestScript] builds a [TestRunner] that drives an [App] from a JSON
// script of navigate, click, resize, play, wait and screenshot steps.
//
// [Ebitengine]: https://ebitengine.org
package herofx
