package bpfocket

/*
 Linux uses an AF_PACKET raw socket to work with frames at the link layer.
  Canonical reference is packet(7): https://man7.org/linux/man-pages/man7/packet.7.html
 Interface enumeration goes through the SIOCGIFCONF ioctl and its two-call
 size-then-fetch protocol, with per-interface flags and hardware addresses
 read via SIOCGIFFLAGS and SIOCGIFHWADDR.
  See netdevice(7): https://man7.org/linux/man-pages/man7/netdevice.7.html
 MacOS and the BSDs use /dev/bpf* devices instead of raw sockets and are not
 supported by this package.
*/
