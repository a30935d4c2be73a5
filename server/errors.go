package server

import (
	"errors"
	"fmt"
	"net"

	"golang.org/x/sys/unix"
)

// Reasons a listener can fail to bind
const (
	ReasonAddrInUse   = "address in use"
	ReasonPermission  = "permission denied"
	ReasonInvalidPort = "invalid port"
	ReasonUnknown     = "bind failed"
)

// BindError is the only failure a Server reports: the listener could not
// be created on the configured address.
type BindError struct {
	Addr string
	Err  error
}

func (e *BindError) Error() string {
	return fmt.Sprintf("error listening on %s: %s: %v", e.Addr, e.Reason(), e.Err)
}

func (e *BindError) Unwrap() error { return e.Err }

// Reason classifies the underlying error
func (e *BindError) Reason() string {
	switch {
	case errors.Is(e.Err, unix.EADDRINUSE):
		return ReasonAddrInUse
	case errors.Is(e.Err, unix.EACCES), errors.Is(e.Err, unix.EPERM):
		return ReasonPermission
	}

	// Out of range ports never reach the kernel; net reports them as an
	// AddrError from address resolution.
	var addrErr *net.AddrError
	if errors.As(e.Err, &addrErr) && addrErr.Err == "invalid port" {
		return ReasonInvalidPort
	}
	return ReasonUnknown
}
