// Package guard prevents two checker instances from running against
// the same client service at once, by holding a canary port on
// localhost for the lifetime of the process.
package guard

import (
	"errors"
	"fmt"
	"io"
	"net"
	"syscall"
)

// ErrPortInUse reports that another instance already holds the canary
// port. Any other bind failure is returned as-is.
var ErrPortInUse = errors.New("port already in use")

// Acquire binds the canary port. The returned closer must be held
// until the process exits; closing it releases the port.
func Acquire(port int) (io.Closer, error) {
	l, err := net.Listen("tcp", fmt.Sprintf("localhost:%d", port))
	if err != nil {
		if errors.Is(err, syscall.EADDRINUSE) {
			return nil, fmt.Errorf("%w: %d", ErrPortInUse, port)
		}
		return nil, err
	}
	return l, nil
}
