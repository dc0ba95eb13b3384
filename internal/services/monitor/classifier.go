package monitor

import (
	"fmt"

	"github.td.teradata.com/sandbox/input-ctl/internal/services/codes"
	"github.td.teradata.com/sandbox/input-ctl/internal/services/common"
	"github.td.teradata.com/sandbox/input-ctl/internal/services/events"
)

// State is the running session state: last known pointer position and delta,
// plus the press and click counters. It is owned by the render loop and
// handed to Classify by pointer; nothing else touches it.
type State struct {
	X, Y   float64
	DX, DY float64

	KeyPresses uint64
	Clicks     uint64
}

// Classify turns one event into its output lines, updating state as the
// event demands. Every variant has an arm and every arm returns something,
// so classification never fails.
func Classify(ev events.Event, st *State) []string {
	switch e := ev.(type) {
	case events.Device:
		return deviceLines(e)

	case events.Key:
		name := codes.KeyName(e.Code)
		if e.State == events.Pressed {
			st.KeyPresses++
			return []string{
				fmt.Sprintf("%s⌨️  KEY PRESS DETECTED --> %s%s%s %s%s %s<-- (code: %d)%s",
					common.Yellow, common.Magenta, common.Bold, name,
					common.Reset, common.Yellow, common.Bold, e.Code, common.Reset),
				fmt.Sprintf("%s🔠 YOU PRESSED: [ %s ]%s (Total key presses: %d)",
					common.Green, name, common.Reset, st.KeyPresses),
			}
		}
		return []string{
			fmt.Sprintf("%s⌨️  KEY RELEASE DETECTED --> %s %s <-- (code: %d)%s",
				common.Blue, name, common.Reset, e.Code, common.Reset),
		}

	case events.Motion:
		st.DX, st.DY = e.DX, e.DY
		st.X += e.DX
		st.Y += e.DY
		return []string{
			fmt.Sprintf("%s🖱️  Mouse motion - Position: (%.2f, %.2f), Delta: (%.2f, %.2f)%s",
				common.Cyan, st.X, st.Y, st.DX, st.DY, common.Reset),
		}

	case events.MotionAbsolute:
		st.X, st.Y = e.X, e.Y
		return []string{
			fmt.Sprintf("%s🖱️  Mouse absolute position: (%.2f, %.2f)%s",
				common.Cyan, st.X, st.Y, common.Reset),
		}

	case events.Button:
		name := codes.ButtonName(e.Code)
		if e.State == events.Pressed {
			st.Clicks++
			return []string{
				fmt.Sprintf("%s🖱️  Mouse button %s (%d) - PRESSED at position: (%.2f, %.2f)%s (Total clicks: %d)",
					common.Magenta, name, e.Code, st.X, st.Y, common.Reset, st.Clicks),
			}
		}
		return []string{
			fmt.Sprintf("%s🖱️  Mouse button %s (%d) - RELEASED at position: (%.2f, %.2f)%s",
				common.Blue, name, e.Code, st.X, st.Y, common.Reset),
		}

	case events.Scroll:
		return []string{
			fmt.Sprintf("%s🖱️  Scroll wheel: horizontal: %.2f, vertical: %.2f%s",
				common.Cyan, e.Horizontal, e.Vertical, common.Reset),
		}

	case events.Touch:
		return []string{
			fmt.Sprintf("%s👆 Touch Event: %s%s", common.Magenta, e.Kind, common.Reset),
		}

	case events.Gesture:
		return []string{
			fmt.Sprintf("%s🤲 Gesture Event: %s (%d fingers)%s",
				common.Magenta, e.Kind, e.Fingers, common.Reset),
		}

	case events.Tablet:
		return []string{
			fmt.Sprintf("%s✏️ Tablet Event%s", common.Yellow, common.Reset),
		}

	case events.Switch:
		return []string{
			fmt.Sprintf("%s🔄 Switch Event%s", common.Yellow, common.Reset),
		}

	case events.Other:
		switch e.Category {
		case events.OtherKeyboard:
			return []string{
				fmt.Sprintf("%s⌨️  Other Keyboard Event%s", common.Cyan, common.Reset),
			}
		case events.OtherPointer:
			return []string{
				fmt.Sprintf("%s🖱️  Other Pointer Event%s", common.Cyan, common.Reset),
			}
		}
		return []string{
			fmt.Sprintf("%s⚠️ Other Event%s", common.Red, common.Reset),
		}

	default:
		return []string{
			fmt.Sprintf("%s⚠️ Other Event%s", common.Red, common.Reset),
		}
	}
}

func deviceLines(e events.Device) []string {
	switch e.Action {
	case events.DeviceAdded:
		return []string{
			fmt.Sprintf("%s➕ Device Added%s%s", common.Green, deviceSuffix(e), common.Reset),
		}
	case events.DeviceRemoved:
		return []string{
			fmt.Sprintf("%s➖ Device Removed%s%s", common.Red, deviceSuffix(e), common.Reset),
		}
	default:
		return []string{
			fmt.Sprintf("%s📱 Other Device Event%s", common.Blue, common.Reset),
		}
	}
}

func deviceSuffix(e events.Device) string {
	switch {
	case e.Name != "" && e.Path != "":
		return fmt.Sprintf(": %s (%s)", e.Name, e.Path)
	case e.Path != "":
		return fmt.Sprintf(": %s", e.Path)
	default:
		return ""
	}
}
