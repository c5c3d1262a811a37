package herofx

// syntheticPointerEvent is a queued pointer event in screen coordinates.
type syntheticPointerEvent struct {
	x, y    float64
	pressed bool
}

// InjectPress queues a pointer press at the given screen coordinates. The
// event is consumed on the next frame's Update.
func (b *NavBar) InjectPress(x, y float64) {
	b.input.injectQueue = append(b.input.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectRelease queues a pointer release at the given screen coordinates.
func (b *NavBar) InjectRelease(x, y float64) {
	b.input.injectQueue = append(b.input.injectQueue, syntheticPointerEvent{x: x, y: y})
}

// InjectClick queues a press followed by a release at the same point.
// Consumes two frames.
func (b *NavBar) InjectClick(x, y float64) {
	b.InjectPress(x, y)
	b.InjectRelease(x, y)
}

// ClickItem queues a click on the center of item i. It does nothing for an
// out-of-range index.
func (b *NavBar) ClickItem(i int) {
	if i < 0 || i >= len(b.rects) {
		return
	}
	r := b.rects[i]
	b.InjectClick(r.X+r.Width/2, r.Y+r.Height/2)
}

// Pending reports how many synthetic events are still queued.
func (b *NavBar) Pending() int {
	return len(b.input.injectQueue)
}

// processInjectedInput pops one event from the queue and feeds it through
// the mouse pointer. Returns true if an event was consumed.
func (in *pointerInput) processInjectedInput() bool {
	if len(in.injectQueue) == 0 {
		return false
	}
	evt := in.injectQueue[0]
	copy(in.injectQueue, in.injectQueue[1:])
	in.injectQueue = in.injectQueue[:len(in.injectQueue)-1]

	in.processPointer(0, evt.x, evt.y, evt.pressed)
	return true
}
