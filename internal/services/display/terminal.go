package display

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	xterm "golang.org/x/term"

	"github.td.teradata.com/sandbox/input-ctl/internal/services/common"
)

const defaultCols = 80

var rex = regexp.MustCompile("\u001b\\[[0-9]{1,3}m")

// Terminal is the append-only line stream the monitor renders into. Unlike a
// full-screen display there is no cursor addressing; every event becomes one
// line, written and flushed immediately.
type Terminal struct {
	out  io.Writer
	cols int
	tty  bool
}

func New() *Terminal {
	t := &Terminal{
		out:  os.Stdout,
		cols: defaultCols,
		tty:  xterm.IsTerminal(int(os.Stdout.Fd())),
	}
	if t.tty {
		if w, _, e := xterm.GetSize(int(os.Stdout.Fd())); e == nil && w > 0 {
			t.cols = w
		}
	}
	return t
}

// NewWriter returns a Terminal bound to an arbitrary writer, for tests.
func NewWriter(w io.Writer) *Terminal {
	return &Terminal{out: w, cols: defaultCols}
}

func (t *Terminal) Println(line string) {
	fmt.Fprintf(t.out, "%s\n", line)
}

func (t *Terminal) Printf(format string, a ...interface{}) {
	fmt.Fprintf(t.out, format, a...)
}

// Banner prints the one-time welcome header. Stdout is unbuffered so the
// banner is visible before any event line arrives.
func (t *Terminal) Banner() {
	border := strings.Repeat("═", 54)
	t.Println(fmt.Sprintf("%s%s%s", common.Cyan, border, common.Reset))
	t.Println(fmt.Sprintf("%s%s           🎮 INPUT MONITOR 🎮           %s%s%s",
		common.Cyan, common.Bold, common.Reset, common.Cyan, common.Reset))
	t.Println(fmt.Sprintf("%s%s%s", common.Cyan, border, common.Reset))
	t.Println("")
	t.Println(fmt.Sprintf("%sA beautiful way to visualize your input events in real-time%s",
		common.Green, common.Reset))
	t.Println("")
	t.Println(fmt.Sprintf("%sWaiting for input events...%s (press %sCtrl+C%s to exit)",
		common.Yellow, common.Reset, common.Red, common.Reset))
	t.Println("")
	t.Println(fmt.Sprintf("%s------------------------------------------%s",
		common.Cyan, common.Reset))
}

func (t *Terminal) Cols() int {
	return t.cols
}

// IsTerminal reports whether stdout is attached to a terminal.
func (t *Terminal) IsTerminal() bool {
	return t.tty
}

// StripFormatting removes colour escapes, leaving the printable text.
func StripFormatting(text string) string {
	return string(rex.ReplaceAll([]byte(text), []byte{}))
}
