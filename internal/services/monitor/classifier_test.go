package monitor

import (
	"strings"
	"testing"

	"github.td.teradata.com/sandbox/input-ctl/internal/services/display"
	"github.td.teradata.com/sandbox/input-ctl/internal/services/events"
)

func classifyText(t *testing.T, ev events.Event, st *State) []string {
	t.Helper()
	var out []string
	for _, line := range Classify(ev, st) {
		out = append(out, display.StripFormatting(line))
	}
	return out
}

func TestKeyPress(t *testing.T) {
	st := &State{}

	lines := classifyText(t, events.Key{Code: 30, State: events.Pressed}, st)
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines for a key press, got %d: %v", len(lines), lines)
	}
	if !strings.Contains(lines[0], "KEY PRESS DETECTED") || !strings.Contains(lines[0], "--> A ") {
		t.Errorf("Press line missing key name: %q", lines[0])
	}
	if !strings.Contains(lines[0], "(code: 30)") {
		t.Errorf("Press line missing code: %q", lines[0])
	}
	if !strings.Contains(lines[1], "YOU PRESSED: [ A ]") {
		t.Errorf("Summary line missing bracketed name: %q", lines[1])
	}
	if !strings.Contains(lines[1], "(Total key presses: 1)") {
		t.Errorf("Summary line missing counter: %q", lines[1])
	}
	if st.KeyPresses != 1 {
		t.Errorf("Expected key press counter 1, got %d", st.KeyPresses)
	}
}

func TestKeyRelease(t *testing.T) {
	st := &State{KeyPresses: 3}

	lines := classifyText(t, events.Key{Code: 30, State: events.Released}, st)
	if len(lines) != 1 {
		t.Fatalf("Expected 1 line for a key release, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "KEY RELEASE DETECTED") || !strings.Contains(lines[0], "--> A ") {
		t.Errorf("Release line missing key name: %q", lines[0])
	}
	if st.KeyPresses != 3 {
		t.Errorf("Release must not change the counter, got %d", st.KeyPresses)
	}
}

func TestKeyCounterMonotonic(t *testing.T) {
	st := &State{}
	for i := 0; i < 5; i++ {
		Classify(events.Key{Code: 30, State: events.Pressed}, st)
		Classify(events.Key{Code: 30, State: events.Released}, st)
	}
	if st.KeyPresses != 5 {
		t.Errorf("Expected counter 5 after 5 press/release pairs, got %d", st.KeyPresses)
	}
}

func TestRelativeMotion(t *testing.T) {
	st := &State{X: 100, Y: 200}

	lines := classifyText(t, events.Motion{DX: 2.5, DY: -1.25}, st)
	if st.X != 102.5 || st.Y != 198.75 {
		t.Errorf("Expected position (102.5, 198.75), got (%v, %v)", st.X, st.Y)
	}
	if st.DX != 2.5 || st.DY != -1.25 {
		t.Errorf("Expected stored delta (2.5, -1.25), got (%v, %v)", st.DX, st.DY)
	}
	if !strings.Contains(lines[0], "Position: (102.50, 198.75)") {
		t.Errorf("Motion line missing position: %q", lines[0])
	}
	if !strings.Contains(lines[0], "Delta: (2.50, -1.25)") {
		t.Errorf("Motion line missing delta: %q", lines[0])
	}
}

func TestAbsoluteMotion(t *testing.T) {
	st := &State{X: 5, Y: 6, DX: 1, DY: 1}

	lines := classifyText(t, events.MotionAbsolute{X: 1254.23, Y: 876.49}, st)
	if st.X != 1254.23 || st.Y != 876.49 {
		t.Errorf("Expected position overwritten to (1254.23, 876.49), got (%v, %v)", st.X, st.Y)
	}
	if !strings.Contains(lines[0], "(1254.23, 876.49)") {
		t.Errorf("Absolute line missing coordinates: %q", lines[0])
	}
}

func TestButtonPress(t *testing.T) {
	st := &State{X: 1254.23, Y: 876.49}

	lines := classifyText(t, events.Button{Code: 272, State: events.Pressed}, st)
	if len(lines) != 1 {
		t.Fatalf("Expected 1 line, got %d", len(lines))
	}
	for _, want := range []string{"LEFT", "(272)", "PRESSED", "(1254.23, 876.49)", "(Total clicks: 1)"} {
		if !strings.Contains(lines[0], want) {
			t.Errorf("Button line missing %q: %q", want, lines[0])
		}
	}
	if st.Clicks != 1 {
		t.Errorf("Expected click counter 1, got %d", st.Clicks)
	}
}

func TestButtonRelease(t *testing.T) {
	st := &State{Clicks: 2}

	lines := classifyText(t, events.Button{Code: 273, State: events.Released}, st)
	for _, want := range []string{"RIGHT", "(273)", "RELEASED"} {
		if !strings.Contains(lines[0], want) {
			t.Errorf("Button line missing %q: %q", want, lines[0])
		}
	}
	if strings.Contains(lines[0], "Total clicks") {
		t.Errorf("Release line must not show the click counter: %q", lines[0])
	}
	if st.Clicks != 2 {
		t.Errorf("Release must not change the counter, got %d", st.Clicks)
	}
}

func TestScroll(t *testing.T) {
	st := &State{}

	lines := classifyText(t, events.Scroll{Vertical: 120}, st)
	if !strings.Contains(lines[0], "horizontal: 0.00, vertical: 120.00") {
		t.Errorf("Scroll line wrong: %q", lines[0])
	}
	if *st != (State{}) {
		t.Errorf("Scroll must not change state: %+v", st)
	}
}

func TestDeviceEvents(t *testing.T) {
	tests := []struct {
		name  string
		event events.Event
		want  string
	}{
		{"Added", events.Device{Action: events.DeviceAdded, Name: "kbd", Path: "/dev/input/event3"}, "➕ Device Added: kbd (/dev/input/event3)"},
		{"Removed", events.Device{Action: events.DeviceRemoved, Path: "/dev/input/event3"}, "➖ Device Removed: /dev/input/event3"},
		{"Changed", events.Device{Action: events.DeviceChanged}, "📱 Other Device Event"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := &State{}
			lines := classifyText(t, tt.event, st)
			if len(lines) != 1 || lines[0] != tt.want {
				t.Errorf("Expected %q, got %v", tt.want, lines)
			}
			if *st != (State{}) {
				t.Errorf("Device events must not change state: %+v", st)
			}
		})
	}
}

func TestCategoryLines(t *testing.T) {
	tests := []struct {
		name  string
		event events.Event
		want  string
	}{
		{"Touch down", events.Touch{Kind: events.TouchDown}, "👆 Touch Event: Down"},
		{"Touch motion", events.Touch{Kind: events.TouchMotion}, "👆 Touch Event: Motion"},
		{"Swipe begin", events.Gesture{Kind: events.GestureSwipeBegin, Fingers: 3}, "🤲 Gesture Event: SwipeBegin (3 fingers)"},
		{"Tablet", events.Tablet{}, "✏️ Tablet Event"},
		{"Switch", events.Switch{Code: 0, State: 1}, "🔄 Switch Event"},
		{"Other keyboard", events.Other{Category: events.OtherKeyboard}, "⌨️  Other Keyboard Event"},
		{"Other pointer", events.Other{Category: events.OtherPointer}, "🖱️  Other Pointer Event"},
		{"Other", events.Other{}, "⚠️ Other Event"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := classifyText(t, tt.event, &State{})
			if len(lines) != 1 || lines[0] != tt.want {
				t.Errorf("Expected %q, got %v", tt.want, lines)
			}
		})
	}
}

func TestUnknownKeyAndButton(t *testing.T) {
	st := &State{}

	lines := classifyText(t, events.Key{Code: 700, State: events.Pressed}, st)
	if !strings.Contains(lines[0], "UNKNOWN KEY") {
		t.Errorf("Expected UNKNOWN KEY sentinel: %q", lines[0])
	}

	lines = classifyText(t, events.Button{Code: 280, State: events.Pressed}, st)
	if !strings.Contains(lines[0], "280 (280)") {
		t.Errorf("Expected raw code fallback: %q", lines[0])
	}
}
