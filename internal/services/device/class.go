package device

import (
	evdev "github.com/holoplot/go-evdev"
)

// Class records which roles a device can play. A single node can hold
// several at once (a laptop keyboard with a pointing stick, a touchpad with
// buttons), so these are flags rather than an enum.
type Class struct {
	Keyboard    bool
	Pointer     bool
	Touchpad    bool
	Touchscreen bool
	Tablet      bool
	Switch      bool
}

func (c Class) String() string {
	s := ""
	add := func(label string, on bool) {
		if on {
			if s != "" {
				s += "+"
			}
			s += label
		}
	}
	add("keyboard", c.Keyboard)
	add("pointer", c.Pointer)
	add("touchpad", c.Touchpad)
	add("touchscreen", c.Touchscreen)
	add("tablet", c.Tablet)
	add("switch", c.Switch)
	if s == "" {
		s = "unclassified"
	}
	return s
}

// Classify derives a device's roles from its kernel capability sets.
func Classify(dev *evdev.InputDevice) Class {
	keys := map[evdev.EvCode]bool{}
	rels := map[evdev.EvCode]bool{}
	abss := map[evdev.EvCode]bool{}
	hasSwitch := false

	for _, t := range dev.CapableTypes() {
		switch t {
		case evdev.EV_KEY:
			for _, c := range dev.CapableEvents(t) {
				keys[c] = true
			}
		case evdev.EV_REL:
			for _, c := range dev.CapableEvents(t) {
				rels[c] = true
			}
		case evdev.EV_ABS:
			for _, c := range dev.CapableEvents(t) {
				abss[c] = true
			}
		case evdev.EV_SW:
			hasSwitch = true
		}
	}
	return classify(keys, rels, abss, hasSwitch)
}

func classify(keys, rels, abss map[evdev.EvCode]bool, hasSwitch bool) Class {
	var c Class

	c.Switch = hasSwitch
	c.Tablet = keys[evdev.BTN_TOOL_PEN]

	if keys[evdev.BTN_TOUCH] && !c.Tablet {
		if keys[evdev.BTN_TOOL_FINGER] {
			c.Touchpad = true
		} else {
			c.Touchscreen = true
		}
	}

	// A mouse moves relatively; some pointing devices (VM mice, absolute
	// trackballs) report ABS_X/Y with a button but no touch contact.
	if rels[evdev.REL_X] && rels[evdev.REL_Y] {
		c.Pointer = true
	}
	if abss[evdev.ABS_X] && abss[evdev.ABS_Y] && keys[evdev.BTN_LEFT] &&
		!c.Touchpad && !c.Touchscreen && !c.Tablet {
		c.Pointer = true
	}

	if keys[evdev.KEY_A] && keys[evdev.KEY_ENTER] {
		c.Keyboard = true
	}
	return c
}
