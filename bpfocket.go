package bpfocket

import (
	"sync"

	"golang.org/x/sys/unix"
)

// syscall entry points, as variables so tests can substitute a fake kernel
var (
	socketFunc = unix.Socket
	closeFunc  = unix.Close
)

// RawSocket owns a single AF_PACKET raw socket bound to all link-layer
// protocols, together with the name of the first active ethernet-class
// interface found at construction time. A RawSocket must not be copied
// after New returns; the file descriptor has exactly one owner.
type RawSocket struct {
	fd     int
	ifname string
	errno  unix.Errno

	close sync.Once
}

// Fd returns the socket file descriptor. It is non-negative for the whole
// life of a successfully constructed RawSocket.
func (s *RawSocket) Fd() int {
	return s.fd
}

// Ifname returns the name of the discovered ethernet interface. New never
// succeeds without setting it, and it never changes afterwards.
func (s *RawSocket) Ifname() string {
	return s.ifname
}

// Err returns the OS error number captured by the most recent failing step,
// zero when no system call was the direct cause.
func (s *RawSocket) Err() unix.Errno {
	return s.errno
}

// Close releases the socket descriptor. It is safe to call more than once;
// the descriptor is closed exactly once, whether or not discovery succeeded.
func (s *RawSocket) Close() error {
	var err error
	s.close.Do(func() {
		err = closeFunc(s.fd)
	})
	return err
}

func htons(in uint16) uint16 {
	return (in<<8)&0xff00 | in>>8
}
