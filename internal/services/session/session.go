// Package session binds the machine's input devices to a seat and turns
// their raw streams into one ordered queue of typed events. It is the layer
// the render loop polls: udev supplies enumeration and hotplug, evdev
// supplies the per-device event streams, and the device shim performs every
// open and close.
package session

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"sync"

	"github.com/jochenvg/go-udev"

	"github.td.teradata.com/sandbox/input-ctl/internal/services/device"
	"github.td.teradata.com/sandbox/input-ctl/internal/services/events"
	"github.td.teradata.com/sandbox/input-ctl/internal/services/logging"
)

const defaultQueueSize = 256

// ErrMonitorClosed is returned by Dispatch when the udev monitor dies; the
// session cannot recover from it.
var ErrMonitorClosed = errors.New("udev monitor closed")

type Session struct {
	log    *logging.Log
	opener device.Opener
	seat   string
	dir    string

	queue   chan events.Event
	mu      sync.Mutex
	devices map[string]*attached

	u       udev.Udev
	hotplug <-chan *udev.Device
	cancel  context.CancelFunc
}

type attached struct {
	path   string
	handle *device.Handle
	asm    *assembler
}

func New(opener device.Opener, log *logging.Log, seat string, dir string, queueSize int) *Session {
	if queueSize <= 0 {
		queueSize = defaultQueueSize
	}
	if dir == "" {
		dir = "/dev/input"
	}
	return &Session{
		log:     log,
		opener:  opener,
		seat:    seat,
		dir:     dir,
		queue:   make(chan events.Event, queueSize),
		devices: map[string]*attached{},
	}
}

// Start attaches every event node currently on the seat and begins watching
// for hotplug. A device that cannot be opened is logged and skipped; only a
// dead udev monitor is fatal.
func (s *Session) Start(ctx context.Context) error {
	ctx, s.cancel = context.WithCancel(ctx)

	m := s.u.NewMonitorFromNetlink("udev")
	ch, err := m.DeviceChan(ctx)
	if err != nil {
		return err
	}
	s.hotplug = ch

	e := s.u.NewEnumerate()
	if err := e.AddMatchSubsystem("input"); err != nil {
		return err
	}
	devs, err := e.Devices()
	if err != nil {
		return err
	}
	for _, d := range devs {
		if s.onSeat(d) {
			s.attach(d.Devnode())
		}
	}
	return nil
}

// Dispatch drains pending hotplug notifications. It returns nil when there
// is nothing to do and an error only when the monitor is gone.
func (s *Session) Dispatch() error {
	for {
		select {
		case d, ok := <-s.hotplug:
			if !ok {
				return ErrMonitorClosed
			}
			s.handleHotplug(d)
		default:
			return nil
		}
	}
}

// Events drains the queue, preserving arrival order. An idle poll returns
// nothing and changes nothing.
func (s *Session) Events() []events.Event {
	var out []events.Event
	for {
		select {
		case ev := <-s.queue:
			out = append(out, ev)
		default:
			return out
		}
	}
}

// Close detaches every device; each handle is released exactly once.
func (s *Session) Close() {
	if s.cancel != nil {
		s.cancel()
	}
	s.mu.Lock()
	paths := make([]string, 0, len(s.devices))
	for p := range s.devices {
		paths = append(paths, p)
	}
	s.mu.Unlock()
	for _, p := range paths {
		s.detach(p)
	}
}

func (s *Session) handleHotplug(d *udev.Device) {
	if d.Subsystem() != "input" || !s.isEventNode(d.Devnode()) {
		return
	}
	switch d.Action() {
	case "add":
		if s.onSeat(d) {
			s.attach(d.Devnode())
		}
	case "remove":
		path := d.Devnode()
		s.mu.Lock()
		a, known := s.devices[path]
		s.mu.Unlock()
		if known {
			name := a.handle.Name()
			s.detach(path)
			s.push(events.Device{Action: events.DeviceRemoved, Name: name, Path: path})
		}
	default:
		s.push(events.Device{Action: events.DeviceChanged, Path: d.Devnode()})
	}
}

func (s *Session) onSeat(d *udev.Device) bool {
	if !s.isEventNode(d.Devnode()) {
		return false
	}
	seat := d.PropertyValue("ID_SEAT")
	if seat == "" {
		seat = "seat0"
	}
	return seat == s.seat
}

func (s *Session) isEventNode(path string) bool {
	return path != "" &&
		filepath.Dir(path) == s.dir &&
		strings.HasPrefix(filepath.Base(path), "event")
}

func (s *Session) attach(path string) {
	s.mu.Lock()
	_, dup := s.devices[path]
	s.mu.Unlock()
	if dup {
		return
	}

	h, err := s.opener.OpenRestricted(path, device.ReadOnly)
	if err != nil {
		// The device is dropped; everything else carries on.
		s.log.Warnf("Skipping device %s: %v", path, err)
		return
	}
	class := h.Class()
	s.log.Debugf("Attached %s (%s): %s", path, h.Name(), class)

	a := &attached{path: path, handle: h, asm: newAssembler(class)}
	s.mu.Lock()
	s.devices[path] = a
	s.mu.Unlock()

	s.push(events.Device{Action: events.DeviceAdded, Name: h.Name(), Path: path})
	go s.read(a)
}

func (s *Session) detach(path string) {
	s.mu.Lock()
	a, ok := s.devices[path]
	delete(s.devices, path)
	s.mu.Unlock()
	if ok {
		// Closing the handle unblocks the reader goroutine.
		s.opener.CloseRestricted(a.handle)
	}
}

// read pumps one device into the shared queue. Each device gets its own
// goroutine, but a single consumer drains the queue, so printed order is
// arrival order.
func (s *Session) read(a *attached) {
	for {
		ev, err := a.handle.ReadOne()
		if err != nil {
			// Device unplugged or handle closed; udev reports the removal.
			s.detach(a.path)
			return
		}
		a.asm.feed(ev, s.push)
	}
}

func (s *Session) push(ev events.Event) {
	select {
	case s.queue <- ev:
	default:
		s.log.Debug("Event queue full, dropping event")
	}
}
