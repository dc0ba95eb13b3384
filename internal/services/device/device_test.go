package device

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"testing"

	"golang.org/x/sys/unix"
)

func TestAccessModeFlag(t *testing.T) {
	tests := []struct {
		name string
		mode AccessMode
		want int
	}{
		{"Read only", ReadOnly, unix.O_RDONLY},
		{"Write only", WriteOnly, unix.O_WRONLY},
		{"Read write", ReadWrite, unix.O_RDWR},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.mode.Flag(); got != tt.want {
				t.Errorf("Flag() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestOpenError(t *testing.T) {
	err := &OpenError{Path: "/dev/input/event3", Errno: unix.EACCES}
	if got := err.Error(); got != "open /dev/input/event3: permission denied" {
		t.Errorf("Unexpected message: %q", got)
	}
	if !errors.Is(err, unix.EACCES) {
		t.Error("Expected the errno to be visible through Unwrap")
	}
}

func TestErrnoOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want unix.Errno
	}{
		{"Raw errno", unix.EBUSY, unix.EBUSY},
		{"Wrapped errno", fmt.Errorf("ioctl: %w", unix.ENODEV), unix.ENODEV},
		{"Missing file", fs.ErrNotExist, unix.ENOENT},
		{"Permission", fs.ErrPermission, unix.EACCES},
		{"Anything else", errors.New("boom"), unix.EIO},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errnoOf(tt.err); got != tt.want {
				t.Errorf("errnoOf(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestOpenRestrictedWriteOnly(t *testing.T) {
	_, err := NodeOpener{}.OpenRestricted("/dev/input/event0", WriteOnly)
	if !errors.Is(err, unix.EINVAL) {
		t.Errorf("Expected EINVAL for a write-only request, got %v", err)
	}
}

func TestOpenRestrictedMissingNode(t *testing.T) {
	_, err := NodeOpener{}.OpenRestricted("/dev/input/no-such-node", ReadOnly)
	var oe *OpenError
	if !errors.As(err, &oe) {
		t.Fatalf("Expected an OpenError, got %v", err)
	}
	if oe.Errno != unix.ENOENT {
		t.Errorf("Expected ENOENT, got %v", oe.Errno)
	}
}

func TestHandleClosedGuards(t *testing.T) {
	h := &Handle{path: "/dev/input/event9", name: "stub"}

	if _, err := h.ReadOne(); !errors.Is(err, os.ErrClosed) {
		t.Errorf("Expected ErrClosed from a device-less handle, got %v", err)
	}
	if got := h.Class(); got != (Class{}) {
		t.Errorf("Expected an empty class, got %+v", got)
	}
	if h.Path() != "/dev/input/event9" || h.Name() != "stub" {
		t.Error("Path and name must survive without a device")
	}
	for i := 0; i < 3; i++ {
		if err := h.Close(); err != nil {
			t.Errorf("Close call %d failed: %v", i+1, err)
		}
	}
}
