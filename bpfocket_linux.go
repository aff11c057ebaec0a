package bpfocket

import (
	"bytes"
	"strings"
	"unsafe"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"
)

// ifConf mirrors struct ifconf from <net/if.h>: a length in bytes and a
// pointer to a caller-owned buffer of packed ifreq records. With Buf nil the
// SIOCGIFCONF ioctl only reports the required length.
type ifConf struct {
	Len int32
	_   [unsafe.Sizeof(uintptr(0)) - unsafe.Sizeof(int32(0))]byte
	Buf *byte
}

// sizeofIfreq is sizeof(struct ifreq); x/sys/unix wraps the raw struct in
// Ifreq without exporting the size constant.
const sizeofIfreq = int(unsafe.Sizeof(unix.Ifreq{}))

// per-ioctl seams, replaceable in tests
var (
	ioctlIfconf = ioctlIfconfSyscall
	ioctlIfreq  = unix.IoctlIfreq
)

func ioctlIfconfSyscall(fd int, ifc *ifConf) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), uintptr(unix.SIOCGIFCONF), uintptr(unsafe.Pointer(ifc)))
	if errno != 0 {
		return errno
	}
	return nil
}

// New opens a raw packet socket for all link-layer protocols and resolves
// the first interface that is up, running, non-loopback, reports ethernet
// hardware, and whose name contains "eth" or "en". On any failure the
// descriptor is released and a *Error carrying the failing step's Code and
// errno is returned; no partially constructed RawSocket escapes.
func New() (*RawSocket, error) {
	s := &RawSocket{fd: -1}

	if code := s.createFd(); code != Success {
		return nil, newError(code, s.errno, "New", "create raw socket")
	}

	if code := s.setIfname(); code != Success {
		errno := s.errno
		_ = s.Close()
		return nil, newError(code, errno, "New", "ethernet interface discovery")
	}

	return s, nil
}

func (s *RawSocket) createFd() Code {
	fd, err := socketFunc(unix.AF_PACKET, unix.SOCK_RAW, int(htons(unix.ETH_P_ALL)))
	if err != nil {
		s.errno = errnoOf(err)
		return SocketCreationFailed
	}
	s.fd = fd

	return Success
}

// setIfname enumerates the kernel's interface list with the two-call
// SIOCGIFCONF protocol: first with a nil buffer to learn the required size,
// then with a buffer of exactly that size to fetch the records.
func (s *RawSocket) setIfname() Code {
	logger := log.WithField("fd", s.fd)

	var ifc ifConf
	if err := ioctlIfconf(s.fd, &ifc); err != nil {
		s.errno = errnoOf(err)
		return IoctlGetConfigFailed
	}
	logger.WithField("len", ifc.Len).Debug("interface list size probed")

	buf := make([]byte, ifc.Len)
	if len(buf) > 0 {
		ifc.Buf = &buf[0]
	}
	if err := ioctlIfconf(s.fd, &ifc); err != nil {
		s.errno = errnoOf(err)
		return IoctlGetConfigFailed
	}

	// the kernel rewrites Len on every call; never trust it past the buffer
	n := int(ifc.Len)
	if n > len(buf) {
		n = len(buf)
	}

	name, code := s.findEthIfr(buf[:n])
	if code != Success {
		if code == InterfaceNotFound {
			s.errno = 0
		}
		return code
	}

	s.ifname = name
	logger.WithField("ifname", name).Debug("ethernet interface selected")

	return Success
}

// findEthIfr scans the packed ifreq records in kernel order and returns the
// name of the first candidate passing the flags, hardware-family, and name
// filters. Any per-interface ioctl failure aborts the whole scan.
func (s *RawSocket) findEthIfr(buf []byte) (string, Code) {
	for off := 0; off+sizeofIfreq <= len(buf); off += sizeofIfreq {
		name := ifrName(buf[off : off+unix.IFNAMSIZ])
		ifr, err := unix.NewIfreq(name)
		if err != nil {
			continue
		}

		if err := ioctlIfreq(s.fd, unix.SIOCGIFFLAGS, ifr); err != nil {
			s.errno = errnoOf(err)
			return "", IoctlGetFlagsFailed
		}
		flags := ifr.Uint16()
		if flags&unix.IFF_LOOPBACK != 0 ||
			flags&unix.IFF_UP == 0 ||
			flags&unix.IFF_RUNNING == 0 {
			continue
		}

		if err := ioctlIfreq(s.fd, unix.SIOCGIFHWADDR, ifr); err != nil {
			s.errno = errnoOf(err)
			return "", IoctlGetHwAddrFailed
		}
		if ifr.Uint16() != unix.ARPHRD_ETHER {
			continue
		}

		// deliberately loose: "en" also admits names like "ben0"
		if !strings.Contains(name, "eth") && !strings.Contains(name, "en") {
			continue
		}

		return name, Success
	}

	return "", InterfaceNotFound
}

// ifrName reads the NUL-terminated interface name out of a raw ifreq record.
func ifrName(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return string(b)
}
