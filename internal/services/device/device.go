// Package device is the access shim between the session layer and raw
// /dev/input nodes: it opens and closes device handles on the session's
// behalf and answers capability questions about them.
package device

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	evdev "github.com/holoplot/go-evdev"
	"golang.org/x/sys/unix"
)

// AccessMode is the access requested for a device node, mapped onto the
// three standard open(2) flag values.
type AccessMode int

const (
	ReadOnly AccessMode = iota
	WriteOnly
	ReadWrite
)

// Flag returns the open(2) flag value for the mode.
func (m AccessMode) Flag() int {
	switch m {
	case WriteOnly:
		return unix.O_WRONLY
	case ReadWrite:
		return unix.O_RDWR
	default:
		return unix.O_RDONLY
	}
}

func (m AccessMode) String() string {
	switch m {
	case WriteOnly:
		return "write-only"
	case ReadWrite:
		return "read-write"
	default:
		return "read-only"
	}
}

// OpenError reports a failed device open with the underlying errno, the way
// the raw open syscall would.
type OpenError struct {
	Path  string
	Errno unix.Errno
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("open %s: %v", e.Path, e.Errno)
}
func (e *OpenError) Unwrap() error {
	return e.Errno
}

// Handle owns one opened input device. Close releases it exactly once no
// matter how many paths call it.
type Handle struct {
	dev  *evdev.InputDevice
	path string
	name string

	once     sync.Once
	closeErr error
}

func (h *Handle) Device() *evdev.InputDevice { return h.dev }
func (h *Handle) Path() string               { return h.path }
func (h *Handle) Name() string               { return h.name }

// ReadOne blocks until the device delivers its next raw event.
func (h *Handle) ReadOne() (*evdev.InputEvent, error) {
	if h.dev == nil {
		return nil, os.ErrClosed
	}
	return h.dev.ReadOne()
}

// Class reports the device's capability roles.
func (h *Handle) Class() Class {
	if h.dev == nil {
		return Class{}
	}
	return Classify(h.dev)
}

func (h *Handle) Close() error {
	h.once.Do(func() {
		if h.dev != nil {
			h.closeErr = h.dev.Close()
		}
	})
	return h.closeErr
}

// Opener is the open/close callback pair the session invokes for device
// lifecycle. An open failure belongs to that device alone; the session
// drops the device and carries on.
type Opener interface {
	OpenRestricted(path string, mode AccessMode) (*Handle, error)
	CloseRestricted(h *Handle)
}

// NodeOpener opens real event nodes. Event devices are read-side only, so a
// write-only request is refused up front rather than left to fail later.
type NodeOpener struct{}

func (NodeOpener) OpenRestricted(path string, mode AccessMode) (*Handle, error) {
	if mode == WriteOnly {
		return nil, &OpenError{Path: path, Errno: unix.EINVAL}
	}
	dev, err := evdev.Open(path)
	if err != nil {
		return nil, &OpenError{Path: path, Errno: errnoOf(err)}
	}
	name, err := dev.Name()
	if err != nil {
		name = ""
	}
	return &Handle{dev: dev, path: path, name: name}, nil
}

func (NodeOpener) CloseRestricted(h *Handle) {
	_ = h.Close()
}

func errnoOf(err error) unix.Errno {
	var errno unix.Errno
	if errors.As(err, &errno) {
		return errno
	}
	if errors.Is(err, fs.ErrNotExist) {
		return unix.ENOENT
	}
	if errors.Is(err, fs.ErrPermission) {
		return unix.EACCES
	}
	return unix.EIO
}
