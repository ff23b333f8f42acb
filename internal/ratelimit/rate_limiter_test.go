package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestRateLimiterAllow(t *testing.T) {
	limiter := New(0, 2)

	type testCase struct {
		Key      string
		Expected bool
	}

	testCases := []testCase{
		{Key: "10.0.0.1", Expected: true},
		{Key: "10.0.0.1", Expected: true},
		{Key: "10.0.0.1", Expected: false},
		{Key: "10.0.0.2", Expected: true},
	}

	for idx, tc := range testCases {
		if e, g := tc.Expected, limiter.Allow(tc.Key); e != g {
			t.Errorf("#%d %s: expected '%v', got '%v'", idx, tc.Key, e, g)
		}
	}
}

func TestRateLimiterEvictsIdleClients(t *testing.T) {
	now := time.Date(2024, 9, 2, 8, 0, 0, 0, time.UTC)

	limiter := New(0, 1, WithIdleTimeout(time.Minute), WithNow(func() time.Time {
		return now
	}))

	if !limiter.Allow("10.0.0.1") {
		t.Fatalf("first request: expected to be allowed")
	}

	if limiter.Allow("10.0.0.1") {
		t.Fatalf("second request: expected to be limited")
	}

	now = now.Add(2 * time.Minute)

	limiter.Allow("10.0.0.2")

	if _, exists := limiter.clients.Load("10.0.0.1"); exists {
		t.Errorf("expected idle client to be evicted")
	}

	if _, exists := limiter.clients.Load("10.0.0.2"); !exists {
		t.Errorf("expected active client to be kept")
	}

	if !limiter.Allow("10.0.0.1") {
		t.Errorf("evicted client: expected a fresh allowance")
	}
}

func TestRemoteAddr(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
	req.RemoteAddr = "10.0.0.1:4000"

	key, err := RemoteAddr(req)
	if err != nil {
		t.Fatalf("%+v", err)
	}

	if e, g := "10.0.0.1", key; e != g {
		t.Errorf("key: expected '%v', got '%v'", e, g)
	}

	req.RemoteAddr = "not-an-address"

	if _, err := RemoteAddr(req); err == nil {
		t.Errorf("expected an error")
	}
}
