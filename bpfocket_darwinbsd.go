//go:build darwin || freebsd

package bpfocket

// New is not available off Linux: AF_PACKET sockets and the SIOCGIFCONF
// enumeration protocol this package relies on are Linux-specific. BSD-style
// systems would go through /dev/bpf* devices instead.
func New() (*RawSocket, error) {
	return nil, ErrNotImplemented
}
