package bpfocket

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/sys/unix"
)

// ErrNotImplemented is returned when raw packet sockets are not available
// on the host operating system.
var ErrNotImplemented = errors.New("not implemented on this platform")

// Code identifies which step of socket acquisition or interface discovery
// failed. Codes are grouped in numeric bands (1xx generic, 2xx ioctl, 3xx
// socket calls) purely so related failures sort together in logs; nothing
// dispatches on the bands.
type Code uint32

const (
	Success Code = 0

	Failure           Code = 100
	InterfaceNotFound Code = 101

	IoctlGetConfigFailed Code = 201
	IoctlGetFlagsFailed  Code = 202
	IoctlSetFlagsFailed  Code = 203
	IoctlGetHwAddrFailed Code = 204

	SocketCreationFailed Code = 301
	SocketSetOptFailed   Code = 302
)

func (c Code) String() string {
	switch c {
	case Success:
		return "success"
	case Failure:
		return "failure"
	case InterfaceNotFound:
		return "interface not found"
	case IoctlGetConfigFailed:
		return "ioctl SIOCGIFCONF failed"
	case IoctlGetFlagsFailed:
		return "ioctl SIOCGIFFLAGS failed"
	case IoctlSetFlagsFailed:
		return "ioctl SIOCSIFFLAGS failed"
	case IoctlGetHwAddrFailed:
		return "ioctl SIOCGIFHWADDR failed"
	case SocketCreationFailed:
		return "socket creation failed"
	case SocketSetOptFailed:
		return "setsockopt failed"
	}
	return fmt.Sprintf("unknown code %d", uint32(c))
}

// Error describes a failed acquisition step: the operation that failed, an
// optional context message, the step's Code, and the OS errno when a system
// call was the direct cause. Errno is zero for logical failures such as
// InterfaceNotFound.
type Error struct {
	Op    string
	Msg   string
	Code  Code
	Errno unix.Errno
}

func newError(code Code, errno unix.Errno, op, msg string) *Error {
	return &Error{
		Op:    op,
		Msg:   msg,
		Code:  code,
		Errno: errno,
	}
}

func (e *Error) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "error occurred in %s:", e.Op)
	if e.Msg != "" {
		b.WriteByte(' ')
		b.WriteString(e.Msg)
	}
	fmt.Fprintf(&b, " [code: %d]", uint32(e.Code))
	if e.Errno != 0 {
		fmt.Fprintf(&b, "[errno: %d]", int(e.Errno))
	}
	return b.String()
}

// Unwrap exposes the underlying errno so errors.Is(err, unix.EPERM) and
// friends work. Logical failures unwrap to nil.
func (e *Error) Unwrap() error {
	if e.Errno != 0 {
		return e.Errno
	}
	return nil
}

// errnoOf pulls the raw OS error number out of an error returned by the
// syscall layer, zero if there is none.
func errnoOf(err error) unix.Errno {
	var errno unix.Errno
	if errors.As(err, &errno) {
		return errno
	}
	return 0
}
