package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	perr "aidetect/internal/platform/errors"
	pnet "aidetect/internal/platform/net"
	"aidetect/internal/platform/net/middleware"
)

type fakeAuthPort struct {
	client string
	err    error
}

func (f fakeAuthPort) Authenticate(*http.Request) (string, error) {
	return f.client, f.err
}

func writeStub(w http.ResponseWriter, status int, _ any) {
	w.WriteHeader(status)
}

func TestAuth_NilPortPassesThrough(t *testing.T) {
	var nextCalled bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		w.WriteHeader(http.StatusOK)
	})

	rr := httptest.NewRecorder()
	middleware.Auth(nil, writeStub)(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	if !nextCalled || rr.Code != http.StatusOK {
		t.Fatalf("expected pass through, called=%v code=%d", nextCalled, rr.Code)
	}
}

func TestAuth_ErrorFromPortWritesMappedError(t *testing.T) {
	p := fakeAuthPort{err: perr.Unauthorizedf("nope")}

	var nextCalled bool
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { nextCalled = true })

	rr := httptest.NewRecorder()
	middleware.Auth(p, writeStub)(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	if nextCalled {
		t.Fatal("did not expect next to be called on auth error")
	}
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", rr.Code)
	}
}

func TestAuth_SetsClientOnContext(t *testing.T) {
	p := fakeAuthPort{client: "frontend"}

	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = pnet.Client(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	rr := httptest.NewRecorder()
	middleware.Auth(p, writeStub)(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	if seen != "frontend" {
		t.Fatalf("expected client frontend got %q", seen)
	}
}

func TestNewStaticKeys(t *testing.T) {
	if ks := middleware.NewStaticKeys(nil); ks != nil {
		t.Fatalf("expected nil for no entries")
	}
	if ks := middleware.NewStaticKeys([]string{" ", "name:"}); ks != nil {
		t.Fatalf("expected nil when no entry carries a key")
	}
	ks := middleware.NewStaticKeys([]string{"frontend:abc", "raw-key", ""})
	if ks.Len() != 2 {
		t.Fatalf("expected 2 keys got %d", ks.Len())
	}
}

func TestStaticKeys_Authenticate(t *testing.T) {
	ks := middleware.NewStaticKeys([]string{"frontend:abc", "cli:xyz", "raw-key"})

	tests := []struct {
		name   string
		header string
		value  string
		want   string
		code   perr.ErrorCode
	}{
		{name: "api key header", header: middleware.APIKeyHeader, value: "abc", want: "frontend"},
		{name: "bearer", header: "Authorization", value: "Bearer xyz", want: "cli"},
		{name: "unnamed entry", header: middleware.APIKeyHeader, value: "raw-key", want: "client-3"},
		{name: "missing", code: perr.ErrorCodeUnauthorized},
		{name: "wrong", header: middleware.APIKeyHeader, value: "abd", code: perr.ErrorCodeUnauthorized},
		{name: "basic scheme ignored", header: "Authorization", value: "Basic abc", code: perr.ErrorCodeUnauthorized},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				r.Header.Set(tc.header, tc.value)
			}
			got, err := ks.Authenticate(r)
			if tc.want != "" {
				if err != nil || got != tc.want {
					t.Fatalf("got %q err %v want %q", got, err, tc.want)
				}
				return
			}
			if !perr.IsCode(err, tc.code) {
				t.Fatalf("expected code %d got %v", tc.code, err)
			}
		})
	}
}
