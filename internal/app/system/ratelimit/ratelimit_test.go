package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestAllowWithinLimit(t *testing.T) {
	l := New(3, time.Minute)

	for i := 0; i < 3; i++ {
		if !l.Allow("1.2.3.4") {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	if l.Allow("1.2.3.4") {
		t.Error("fourth request should be blocked")
	}
}

func TestAllowSeparateKeys(t *testing.T) {
	l := New(1, time.Minute)

	if !l.Allow("a") {
		t.Error("first key should be allowed")
	}
	if !l.Allow("b") {
		t.Error("second key should be allowed independently")
	}
	if l.Allow("a") {
		t.Error("first key should now be blocked")
	}
}

func TestReset(t *testing.T) {
	l := New(1, time.Minute)
	l.Allow("x")
	l.Reset("x")
	if !l.Allow("x") {
		t.Error("key should be allowed after reset")
	}
}

func TestRemaining(t *testing.T) {
	l := New(5, time.Minute)
	if got := l.Remaining("y"); got != 5 {
		t.Errorf("Remaining = %d, want 5", got)
	}
	l.Allow("y")
	l.Allow("y")
	if got := l.Remaining("y"); got != 3 {
		t.Errorf("Remaining = %d, want 3", got)
	}
}

func TestWindowExpiry(t *testing.T) {
	l := New(1, 20*time.Millisecond)
	l.Allow("z")
	if l.Allow("z") {
		t.Fatal("should be blocked inside window")
	}
	time.Sleep(30 * time.Millisecond)
	if !l.Allow("z") {
		t.Error("should be allowed after window expires")
	}
}

func TestMiddleware(t *testing.T) {
	l := New(1, time.Minute)
	h := l.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	r := httptest.NewRequest("POST", "/api/contact", nil)
	r.RemoteAddr = "9.9.9.9:1234"

	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	if w.Code != http.StatusOK {
		t.Errorf("first request status = %d, want 200", w.Code)
	}

	w = httptest.NewRecorder()
	h.ServeHTTP(w, r)
	if w.Code != http.StatusTooManyRequests {
		t.Errorf("second request status = %d, want 429", w.Code)
	}
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		xff        string
		xri        string
		want       string
	}{
		{"remote addr with port", "10.0.0.1:5000", "", "", "10.0.0.1"},
		{"x-forwarded-for single", "10.0.0.1:5000", "203.0.113.7", "", "203.0.113.7"},
		{"x-forwarded-for list", "10.0.0.1:5000", "203.0.113.7, 10.0.0.2", "", "203.0.113.7"},
		{"x-real-ip", "10.0.0.1:5000", "", "198.51.100.3", "198.51.100.3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/", nil)
			r.RemoteAddr = tt.remoteAddr
			if tt.xff != "" {
				r.Header.Set("X-Forwarded-For", tt.xff)
			}
			if tt.xri != "" {
				r.Header.Set("X-Real-IP", tt.xri)
			}
			if got := ClientIP(r); got != tt.want {
				t.Errorf("ClientIP = %q, want %q", got, tt.want)
			}
		})
	}
}
