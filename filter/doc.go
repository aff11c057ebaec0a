// Package filter is reserved for building and attaching BPF filters to raw
// sockets opened by the parent package. Nothing lives here yet.
package filter
