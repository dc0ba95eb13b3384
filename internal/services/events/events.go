// Package events defines the typed input events the session layer produces
// and the monitor consumes. The set is closed: every event the session can
// emit is one of the variants below, and anything it cannot express becomes
// an Other.
package events

// Event is implemented by every event variant.
type Event interface {
	event()
}

// DeviceAction distinguishes device lifecycle notifications.
type DeviceAction int

const (
	DeviceAdded DeviceAction = iota
	DeviceRemoved
	DeviceChanged
)

// Device reports a device joining or leaving the seat.
type Device struct {
	Action DeviceAction
	Name   string
	Path   string
}

// ButtonState covers keys and pointer buttons alike.
type ButtonState int

const (
	Released ButtonState = iota
	Pressed
)

// Key is a keyboard key transition.
type Key struct {
	Code  int
	State ButtonState
}

// Button is a pointer button transition.
type Button struct {
	Code  int
	State ButtonState
}

// Motion is a relative pointer movement, coalesced per frame.
type Motion struct {
	DX float64
	DY float64
}

// MotionAbsolute is an absolute pointer position report.
type MotionAbsolute struct {
	X float64
	Y float64
}

// Scroll carries wheel movement in v120 units (one notch = 120). An axis the
// device reported nothing on is zero.
type Scroll struct {
	Horizontal float64
	Vertical   float64
}

// TouchKind names the touch sub-kinds.
type TouchKind int

const (
	TouchDown TouchKind = iota
	TouchUp
	TouchMotion
)

func (k TouchKind) String() string {
	switch k {
	case TouchDown:
		return "Down"
	case TouchUp:
		return "Up"
	case TouchMotion:
		return "Motion"
	}
	return "Unknown"
}

// Touch is a touchscreen contact transition or movement.
type Touch struct {
	Kind TouchKind
}

// GestureKind names the gesture sub-kinds.
type GestureKind int

const (
	GesturePinchBegin GestureKind = iota
	GesturePinchEnd
	GestureSwipeBegin
	GestureSwipeEnd
)

func (k GestureKind) String() string {
	switch k {
	case GesturePinchBegin:
		return "PinchBegin"
	case GesturePinchEnd:
		return "PinchEnd"
	case GestureSwipeBegin:
		return "SwipeBegin"
	case GestureSwipeEnd:
		return "SwipeEnd"
	}
	return "Unknown"
}

// Gesture is a multi-finger touchpad gesture transition.
type Gesture struct {
	Kind    GestureKind
	Fingers int
}

// Tablet is any event from a pen tablet.
type Tablet struct{}

// Switch is a hardware switch toggle (lid, tablet mode).
type Switch struct {
	Code  int
	State int
}

// OtherCategory tags an unmatched event with the device category it came
// from, when that much is known.
type OtherCategory int

const (
	OtherUnknown OtherCategory = iota
	OtherKeyboard
	OtherPointer
)

// Other is the default arm for anything unmatched.
type Other struct {
	Category OtherCategory
}

func (Device) event()         {}
func (Key) event()            {}
func (Button) event()         {}
func (Motion) event()         {}
func (MotionAbsolute) event() {}
func (Scroll) event()         {}
func (Touch) event()          {}
func (Gesture) event()        {}
func (Tablet) event()         {}
func (Switch) event()         {}
func (Other) event()          {}
