package domain

import (
	"encoding/json"
	"testing"
)

func TestProbeResult_StatusCode(t *testing.T) {
	code := 200
	withStatus := ProbeResult{URL: "https://example.com", Alive: true, Status: &code, Reason: "OK"}
	if got, ok := withStatus.StatusCode(); !ok || got != 200 {
		t.Fatalf("want (200, true), got (%d, %v)", got, ok)
	}

	noStatus := ProbeResult{URL: "https://example.com", Alive: false, Reason: "connection refused"}
	if got, ok := noStatus.StatusCode(); ok || got != 0 {
		t.Fatalf("want (0, false), got (%d, %v)", got, ok)
	}
}

func TestProbeResult_JSONNullStatus(t *testing.T) {
	r := ProbeResult{URL: "https://example.com", Alive: false, Reason: "dial tcp: timeout"}
	b, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	v, present := m["status"]
	if !present {
		t.Fatalf("status key should be present (as null), got %s", b)
	}
	if v != nil {
		t.Fatalf("status should be null on transport failure, got %v", v)
	}
}
