package guard

import (
	"errors"
	"net"
	"testing"
)

// freePort asks the kernel for an unused port and releases it again.
func freePort(t *testing.T) int {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer l.Close()
	return l.Addr().(*net.TCPAddr).Port
}

func TestAcquire_Release(t *testing.T) {
	port := freePort(t)

	c, err := Acquire(port)
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	// After release the port is usable again.
	c2, err := Acquire(port)
	if err != nil {
		t.Fatalf("Acquire after release: %v", err)
	}
	c2.Close()
}

func TestAcquire_SecondInstanceRefused(t *testing.T) {
	port := freePort(t)

	c, err := Acquire(port)
	if err != nil {
		t.Fatalf("first Acquire: %v", err)
	}
	defer c.Close()

	_, err = Acquire(port)
	if err == nil {
		t.Fatalf("second Acquire should fail")
	}
	if !errors.Is(err, ErrPortInUse) {
		t.Fatalf("want ErrPortInUse, got %v", err)
	}
}
