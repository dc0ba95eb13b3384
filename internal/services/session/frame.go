package session

import (
	evdev "github.com/holoplot/go-evdev"

	"github.td.teradata.com/sandbox/input-ctl/internal/services/device"
	"github.td.teradata.com/sandbox/input-ctl/internal/services/events"
)

// v120 is one wheel notch in high-resolution scroll units.
const v120 = 120.0

// assembler converts the raw evdev stream of a single device into typed
// events. The kernel groups related codes between SYN_REPORT markers, so
// axis movement is coalesced per frame while key and button transitions are
// emitted the moment they arrive.
type assembler struct {
	class device.Class

	relDX, relDY   float64
	wheelV, wheelH float64
	hiResV, hiResH float64
	hiSeenV        bool
	hiSeenH        bool
	scrolled       bool

	absX, absY float64
	absDirty   bool

	touching   bool
	touchDown  bool
	touchUp    bool
	touchMoved bool

	tabletPending bool
}

func newAssembler(class device.Class) *assembler {
	return &assembler{class: class}
}

func (a *assembler) feed(ev *evdev.InputEvent, emit func(events.Event)) {
	switch ev.Type {
	case evdev.EV_SYN:
		if ev.Code == evdev.SYN_REPORT {
			a.flush(emit)
		}
	case evdev.EV_KEY:
		a.feedKey(ev, emit)
	case evdev.EV_REL:
		a.feedRel(ev)
	case evdev.EV_ABS:
		a.feedAbs(ev)
	case evdev.EV_SW:
		emit(events.Switch{Code: int(ev.Code), State: int(ev.Value)})
	case evdev.EV_LED, evdev.EV_SND, evdev.EV_FF:
		cat := events.OtherUnknown
		if a.class.Keyboard {
			cat = events.OtherKeyboard
		}
		emit(events.Other{Category: cat})
	default:
		// EV_MSC scan codes and EV_REP rate reports are pure noise here.
	}
}

func (a *assembler) feedKey(ev *evdev.InputEvent, emit func(events.Event)) {
	if ev.Value == 2 {
		// Kernel autorepeat; a press was already reported.
		return
	}
	state := events.Released
	if ev.Value != 0 {
		state = events.Pressed
	}

	if a.class.Tablet {
		a.tabletPending = true
		return
	}

	switch {
	case ev.Code == evdev.BTN_TOUCH:
		if a.class.Touchscreen {
			if state == events.Pressed {
				a.touchDown = true
			} else {
				a.touchUp = true
			}
		}
	case ev.Code == evdev.BTN_TOOL_DOUBLETAP:
		emit(gesture(events.GesturePinchBegin, events.GesturePinchEnd, state, 2))
	case ev.Code == evdev.BTN_TOOL_TRIPLETAP:
		emit(gesture(events.GestureSwipeBegin, events.GestureSwipeEnd, state, 3))
	case ev.Code == evdev.BTN_TOOL_QUADTAP:
		emit(gesture(events.GestureSwipeBegin, events.GestureSwipeEnd, state, 4))
	case ev.Code == evdev.BTN_TOOL_QUINTTAP:
		emit(gesture(events.GestureSwipeBegin, events.GestureSwipeEnd, state, 5))
	case ev.Code == evdev.BTN_TOOL_FINGER, ev.Code == evdev.BTN_TOOL_PEN:
		// Single-contact tool presence carries no information of its own.
	case ev.Code >= evdev.BTN_MOUSE && ev.Code <= evdev.BTN_TASK:
		emit(events.Button{Code: int(ev.Code), State: state})
	case ev.Code < evdev.BTN_MISC:
		emit(events.Key{Code: int(ev.Code), State: state})
	default:
		emit(events.Other{Category: events.OtherPointer})
	}
}

func gesture(begin, end events.GestureKind, state events.ButtonState, fingers int) events.Event {
	kind := end
	if state == events.Pressed {
		kind = begin
	}
	return events.Gesture{Kind: kind, Fingers: fingers}
}

func (a *assembler) feedRel(ev *evdev.InputEvent) {
	switch ev.Code {
	case evdev.REL_X:
		a.relDX += float64(ev.Value)
	case evdev.REL_Y:
		a.relDY += float64(ev.Value)
	case evdev.REL_WHEEL:
		a.wheelV += float64(ev.Value) * v120
		a.scrolled = true
	case evdev.REL_HWHEEL:
		a.wheelH += float64(ev.Value) * v120
		a.scrolled = true
	case evdev.REL_WHEEL_HI_RES:
		a.hiResV += float64(ev.Value)
		a.hiSeenV = true
		a.scrolled = true
	case evdev.REL_HWHEEL_HI_RES:
		a.hiResH += float64(ev.Value)
		a.hiSeenH = true
		a.scrolled = true
	}
}

func (a *assembler) feedAbs(ev *evdev.InputEvent) {
	if a.class.Tablet {
		a.tabletPending = true
		return
	}
	if a.class.Touchscreen {
		switch ev.Code {
		case evdev.ABS_MT_TRACKING_ID:
			if ev.Value >= 0 {
				a.touchDown = true
			} else {
				a.touchUp = true
			}
		case evdev.ABS_X, evdev.ABS_Y, evdev.ABS_MT_POSITION_X, evdev.ABS_MT_POSITION_Y:
			a.touchMoved = true
		}
		return
	}
	if a.class.Touchpad {
		// Pad contacts only matter for the gesture tools handled above.
		return
	}
	switch ev.Code {
	case evdev.ABS_X:
		a.absX = float64(ev.Value)
		a.absDirty = true
	case evdev.ABS_Y:
		a.absY = float64(ev.Value)
		a.absDirty = true
	}
}

// flush emits everything the frame accumulated, then clears per-frame state.
// Last-seen absolute coordinates persist so a single-axis frame still
// reports a full position.
func (a *assembler) flush(emit func(events.Event)) {
	if a.touchDown {
		a.touching = true
		emit(events.Touch{Kind: events.TouchDown})
	} else if a.touchMoved && a.touching {
		emit(events.Touch{Kind: events.TouchMotion})
	}
	if a.touchUp {
		a.touching = false
		emit(events.Touch{Kind: events.TouchUp})
	}
	a.touchDown, a.touchUp, a.touchMoved = false, false, false

	if a.relDX != 0 || a.relDY != 0 {
		emit(events.Motion{DX: a.relDX, DY: a.relDY})
		a.relDX, a.relDY = 0, 0
	}

	if a.absDirty {
		emit(events.MotionAbsolute{X: a.absX, Y: a.absY})
		a.absDirty = false
	}

	if a.scrolled {
		v, h := a.wheelV, a.wheelH
		if a.hiSeenV {
			v = a.hiResV
		}
		if a.hiSeenH {
			h = a.hiResH
		}
		emit(events.Scroll{Horizontal: h, Vertical: v})
		a.wheelV, a.wheelH, a.hiResV, a.hiResH = 0, 0, 0, 0
		a.hiSeenV, a.hiSeenH, a.scrolled = false, false, false
	}

	if a.tabletPending {
		emit(events.Tablet{})
		a.tabletPending = false
	}
}
