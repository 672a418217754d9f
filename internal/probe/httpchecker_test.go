package probe

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestHTTPChecker_Status200(t *testing.T) {
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(200)
		w.Write([]byte("ok"))
	}))
	defer s.Close()

	chk := NewHTTPChecker(2 * time.Second)
	out := chk.Check(context.Background(), s.URL)
	if !out.Alive {
		t.Fatalf("want alive, got %+v", out)
	}
	if out.Status == nil || *out.Status != 200 {
		t.Fatalf("want status 200, got %v", out.Status)
	}
	if out.Reason != "OK" {
		t.Fatalf("want reason OK, got %q", out.Reason)
	}
	if out.URL != s.URL {
		t.Fatalf("want url %q, got %q", s.URL, out.URL)
	}
}

func TestHTTPChecker_Status401(t *testing.T) {
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", 401)
	}))
	defer s.Close()

	chk := NewHTTPChecker(2 * time.Second)
	out := chk.Check(context.Background(), s.URL)
	if out.Alive {
		t.Fatalf("want dead, got %+v", out)
	}
	if out.Status == nil || *out.Status != 401 {
		t.Fatalf("want status 401, got %v", out.Status)
	}
	if out.Reason != "Unauthorized" {
		t.Fatalf("want reason Unauthorized, got %q", out.Reason)
	}
}

func TestHTTPChecker_Status500(t *testing.T) {
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", 500)
	}))
	defer s.Close()

	chk := NewHTTPChecker(2 * time.Second)
	out := chk.Check(context.Background(), s.URL)
	if out.Alive {
		t.Fatalf("want dead, got %+v", out)
	}
	if out.Status == nil || *out.Status != 500 {
		t.Fatalf("want status 500, got %v", out.Status)
	}
	if out.Reason != "Internal Server Error" {
		t.Fatalf("want reason Internal Server Error, got %q", out.Reason)
	}
}

func TestHTTPChecker_FollowsRedirect(t *testing.T) {
	dst := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(200)
	}))
	defer dst.Close()
	src := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, dst.URL, http.StatusFound)
	}))
	defer src.Close()

	chk := NewHTTPChecker(2 * time.Second)
	out := chk.Check(context.Background(), src.URL)
	if !out.Alive {
		t.Fatalf("want alive after redirect, got %+v", out)
	}
	if out.Status == nil || *out.Status != 200 {
		t.Fatalf("want final status 200, got %v", out.Status)
	}
	// The result names the URL that was asked for, not the final hop.
	if out.URL != src.URL {
		t.Fatalf("want url %q, got %q", src.URL, out.URL)
	}
}

func TestHTTPChecker_ConnectionFailure(t *testing.T) {
	// Grab a port that is guaranteed to have nothing listening on it.
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	dead := "http://" + l.Addr().String()
	l.Close()

	chk := NewHTTPChecker(2 * time.Second)
	out := chk.Check(context.Background(), dead)
	if out.Alive {
		t.Fatalf("want dead, got %+v", out)
	}
	if out.Status != nil {
		t.Fatalf("want nil status on transport failure, got %v", *out.Status)
	}
	if out.Reason == "" {
		t.Fatalf("want non-empty reason")
	}
}

func TestHTTPChecker_TimeoutYieldsNilStatus(t *testing.T) {
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(200)
	}))
	defer s.Close()

	chk := NewHTTPChecker(50 * time.Millisecond)
	out := chk.Check(context.Background(), s.URL)
	if out.Alive {
		t.Fatalf("want failure due to timeout, got %+v", out)
	}
	if out.Status != nil {
		t.Fatalf("want nil status on timeout, got %v", *out.Status)
	}
	if out.Reason == "" {
		t.Fatalf("want non-empty reason")
	}
}
