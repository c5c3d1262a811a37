package herofx

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// maxPointers is the number of tracked pointers: 0 = mouse, 1-9 = touch.
const maxPointers = 10

// noTarget is the hit-test result for empty space.
const noTarget = -1

// --- Per-pointer state ---

type pointerState struct {
	down    bool
	lastX   float64
	lastY   float64
	pressed int // target under the pointer at press time
}

// pointerInput turns raw mouse and touch state into clicks on indexed hit
// targets. A click fires when a pointer is pressed and released over the
// same target.
type pointerInput struct {
	hitTest func(x, y float64) int
	onClick func(target int)

	pointers     [maxPointers]pointerState
	hover        int // target under the mouse
	touchMap     [maxPointers]ebiten.TouchID
	touchUsed    [maxPointers]bool
	prevTouchIDs []ebiten.TouchID
	injectQueue  []syntheticPointerEvent
}

func newPointerInput(hitTest func(x, y float64) int, onClick func(int)) pointerInput {
	in := pointerInput{hitTest: hitTest, onClick: onClick, hover: noTarget}
	for i := range in.pointers {
		in.pointers[i].pressed = noTarget
	}
	return in
}

// update is called once per frame. A queued synthetic event replaces real
// mouse input for that frame.
func (in *pointerInput) update() {
	if in.processInjectedInput() {
		return
	}
	in.processMousePointer()
	in.processTouchPointers()
}

// processMousePointer handles mouse input (pointer 0).
func (in *pointerInput) processMousePointer() {
	mx, my := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	in.processPointer(0, float64(mx), float64(my), pressed)
}

// processTouchPointers handles touch input (pointers 1-9).
func (in *pointerInput) processTouchPointers() {
	touchIDs := ebiten.AppendTouchIDs(in.prevTouchIDs[:0])
	in.prevTouchIDs = touchIDs

	var activeSlots [maxPointers]bool
	for _, tid := range touchIDs {
		slot := in.touchSlot(tid)
		if slot < 0 {
			continue
		}
		activeSlots[slot] = true
		tx, ty := ebiten.TouchPosition(tid)
		in.processPointer(slot, float64(tx), float64(ty), true)
	}

	// Release any touch slots that are no longer active.
	for i := 1; i < maxPointers; i++ {
		if in.touchUsed[i] && !activeSlots[i] {
			ps := &in.pointers[i]
			if ps.down {
				in.processPointer(i, ps.lastX, ps.lastY, false)
			}
			in.touchUsed[i] = false
			in.touchMap[i] = 0
		}
	}
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (in *pointerInput) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if in.touchUsed[i] && in.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !in.touchUsed[i] {
			in.touchUsed[i] = true
			in.touchMap[i] = tid
			return i
		}
	}
	return -1
}

// processPointer runs the press/release state machine for one pointer.
func (in *pointerInput) processPointer(id int, x, y float64, pressed bool) {
	ps := &in.pointers[id]
	target := in.hitTest(x, y)
	if id == 0 {
		in.hover = target
	}

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.pressed = target
	case !pressed && ps.down:
		if ps.pressed != noTarget && ps.pressed == target && in.onClick != nil {
			in.onClick(target)
		}
		ps.down = false
		ps.pressed = noTarget
	}
	ps.lastX = x
	ps.lastY = y
}
