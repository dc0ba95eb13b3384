// Package monitor drives the render loop: poll the session, classify each
// pending event, print its lines in arrival order, idle, repeat.
package monitor

import (
	"context"
	"fmt"
	"time"

	"github.td.teradata.com/sandbox/input-ctl/internal/services/display"
	"github.td.teradata.com/sandbox/input-ctl/internal/services/logging"
	"github.td.teradata.com/sandbox/input-ctl/internal/services/session"
)

type Monitor struct {
	session  *session.Session
	term     *display.Terminal
	log      *logging.Log
	interval time.Duration
	state    State
}

func New(s *session.Session, t *display.Terminal, log *logging.Log, interval time.Duration) *Monitor {
	if interval <= 0 {
		interval = 5 * time.Millisecond
	}
	return &Monitor{
		session:  s,
		term:     t,
		log:      log,
		interval: interval,
	}
}

// Run prints the banner and loops until the context is cancelled or the
// session fails. A dispatch error is unrecoverable and propagates up; there
// is no retry and no degraded mode.
func (m *Monitor) Run(ctx context.Context) error {
	m.term.Banner()

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		if err := m.session.Dispatch(); err != nil {
			return fmt.Errorf("dispatch failed: %w", err)
		}

		for _, ev := range m.session.Events() {
			for _, line := range Classify(ev, &m.state) {
				m.term.Println(line)
			}
		}

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(m.interval):
		}
	}
}
