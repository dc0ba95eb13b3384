package logging

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.td.teradata.com/sandbox/input-ctl/internal/services/common"
)

// Log writes colourized, levelled lines. Output is a plain line stream so it
// interleaves cleanly with the event lines the monitor prints.
type Log struct {
	sync  sync.Mutex
	out   io.Writer
	debug bool
}

func New() *Log {
	return &Log{
		out:   os.Stderr,
		debug: false,
	}
}

func (l *Log) SetDebug(enabled bool) {
	if l.debug != enabled {
		if enabled {
			l.debug = true
			l.Info("Debug output enabled")
		} else {
			l.Info("Debug output disabled")
			l.debug = false
		}
	}
}

// SetOutput redirects log lines, primarily for tests.
func (l *Log) SetOutput(w io.Writer) {
	l.sync.Lock()
	l.out = w
	l.sync.Unlock()
}

func (l *Log) notify(text string, colour string) {
	l.sync.Lock()
	fmt.Fprintf(l.out, "%s%s%s\n", colour, text, common.Reset)
	l.sync.Unlock()
}

func (l *Log) Tracef(text string, a ...interface{}) {
	l.Trace(fmt.Sprintf(text, a...))
}
func (l *Log) Trace(text string) {
	if l.debug {
		l.notify(text, common.White)
	}
}
func (l *Log) Debugf(text string, a ...interface{}) {
	l.Debug(fmt.Sprintf(text, a...))
}
func (l *Log) Debug(text string) {
	if l.debug {
		l.notify(text, common.White)
	}
}
func (l *Log) Infof(text string, a ...interface{}) {
	l.Info(fmt.Sprintf(text, a...))
}
func (l *Log) Info(text string) {
	l.notify(text, common.BrightWhite)
}
func (l *Log) Warnf(text string, a ...interface{}) {
	l.Warn(fmt.Sprintf(text, a...))
}
func (l *Log) Warn(text string) {
	l.notify(text, common.BrightYellow)
}
func (l *Log) Errorf(text string, a ...interface{}) {
	l.Error(fmt.Sprintf(text, a...))
}
func (l *Log) Error(text string) {
	l.notify(text, common.BrightRed)
}
