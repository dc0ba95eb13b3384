package display

import (
	"bytes"
	"strings"
	"testing"

	"github.td.teradata.com/sandbox/input-ctl/internal/services/common"
)

func TestStripFormatting(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"Plain text untouched", "hello", "hello"},
		{"Single colour", common.Red + "hot" + common.Reset, "hot"},
		{"Stacked attributes", common.Yellow + common.Bold + "A" + common.Reset, "A"},
		{"Empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripFormatting(tt.text); got != tt.want {
				t.Errorf("StripFormatting(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestPrintln(t *testing.T) {
	var buf bytes.Buffer
	term := NewWriter(&buf)

	term.Println("first")
	term.Println("second")

	if got := buf.String(); got != "first\nsecond\n" {
		t.Errorf("Expected two terminated lines, got %q", got)
	}
}

func TestBanner(t *testing.T) {
	var buf bytes.Buffer
	term := NewWriter(&buf)

	term.Banner()

	text := StripFormatting(buf.String())
	for _, want := range []string{"INPUT MONITOR", "Waiting for input events...", "Ctrl+C"} {
		if !strings.Contains(text, want) {
			t.Errorf("Banner missing %q:\n%s", want, text)
		}
	}
}

func TestWriterDefaults(t *testing.T) {
	term := NewWriter(&bytes.Buffer{})
	if term.Cols() != defaultCols {
		t.Errorf("Expected default width %d, got %d", defaultCols, term.Cols())
	}
	if term.IsTerminal() {
		t.Error("A buffer-backed terminal must not report a tty")
	}
}
