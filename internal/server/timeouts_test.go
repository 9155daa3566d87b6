package server

import (
	"net/http"
	"testing"
	"time"
)

func TestNew_Defaults(t *testing.T) {
	s := New(":0", http.NotFoundHandler(), Timeouts{})
	if s.ReadTimeout != 10*time.Second || s.WriteTimeout != 15*time.Second || s.IdleTimeout != time.Minute {
		t.Fatalf("unexpected defaults: %v %v %v", s.ReadTimeout, s.WriteTimeout, s.IdleTimeout)
	}
}

func TestNew_Overrides(t *testing.T) {
	s := New(":0", http.NotFoundHandler(), Timeouts{Write: 30 * time.Second})
	if s.WriteTimeout != 30*time.Second {
		t.Fatalf("WriteTimeout = %v", s.WriteTimeout)
	}
	if s.ReadTimeout != 10*time.Second {
		t.Fatalf("ReadTimeout = %v", s.ReadTimeout)
	}
}
