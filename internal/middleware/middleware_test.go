package middleware

import (
	"crypto/tls"
	"net/http"
	"net/http/httptest"
	"testing"
)

func ok() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestForceHTTPS(t *testing.T) {
	tests := []struct {
		name    string
		enabled bool
		host    string
		tls     bool
		proto   string
		code    int
		loc     string
	}{
		{"disabled", false, "names.example", false, "", http.StatusOK, ""},
		{"plain http", true, "names.example", false, "", http.StatusPermanentRedirect,
			"https://names.example/names/islamic/ali?x=1"},
		{"port dropped", true, "names.example:8080", false, "", http.StatusPermanentRedirect,
			"https://names.example/names/islamic/ali?x=1"},
		{"already tls", true, "names.example", true, "", http.StatusOK, ""},
		{"proxy says https", true, "names.example", false, "https", http.StatusOK, ""},
		{"localhost", true, "localhost:8080", false, "", http.StatusOK, ""},
		{"loopback ip", true, "127.0.0.1:8080", false, "", http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/names/islamic/ali?x=1", nil)
			req.Host = tt.host
			if tt.tls {
				req.TLS = &tls.ConnectionState{}
			}
			if tt.proto != "" {
				req.Header.Set("X-Forwarded-Proto", tt.proto)
			}
			rr := httptest.NewRecorder()

			ForceHTTPS(tt.enabled)(ok()).ServeHTTP(rr, req)

			if rr.Code != tt.code {
				t.Fatalf("status = %d, want %d", rr.Code, tt.code)
			}
			if got := rr.Header().Get("Location"); got != tt.loc {
				t.Fatalf("Location = %q, want %q", got, tt.loc)
			}
		})
	}
}

func TestSecurity_HeadersSurviveWriteHeader(t *testing.T) {
	rr := httptest.NewRecorder()
	Security(ok()).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	res := rr.Result()
	for _, h := range []string{
		"Strict-Transport-Security", "Content-Security-Policy", "X-Frame-Options",
		"X-Content-Type-Options", "Referrer-Policy", "Permissions-Policy",
	} {
		if res.Header.Get(h) == "" {
			t.Errorf("%s missing", h)
		}
	}
}

func TestSecurity_HandlerMayOverride(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Frame-Options", "SAMEORIGIN")
		w.WriteHeader(http.StatusOK)
	})
	rr := httptest.NewRecorder()
	Security(h).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	if got := rr.Result().Header.Get("X-Frame-Options"); got != "SAMEORIGIN" {
		t.Fatalf("X-Frame-Options = %q", got)
	}
}
