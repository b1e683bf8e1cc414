package httpx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestGetJSONSendsAcceptAndReturnsBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Accept") != "application/json" {
			http.Error(w, "bad accept "+r.Header.Get("Accept"), http.StatusNotAcceptable)
			return
		}
		_, _ = w.Write([]byte(`[{"id":"g1"}]`))
	}))
	defer srv.Close()

	body, err := GetJSON(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("GetJSON: %v", err)
	}
	if string(body) != `[{"id":"g1"}]` {
		t.Fatalf("unexpected body %q", body)
	}
}

func TestGetErrorIncludesStatusAndExcerpt(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, strings.Repeat("x", 10000), http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := Get(context.Background(), srv.URL)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "(500)") {
		t.Fatalf("missing status: %v", err)
	}
	if len(err.Error()) > 4096+len(srv.URL)+32 {
		t.Fatalf("body excerpt not bounded: %d bytes", len(err.Error()))
	}
}

func TestGetRejectsOversizedBody(t *testing.T) {
	old := MaxBody
	MaxBody = 8
	defer func() { MaxBody = old }()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("0123456789"))
	}))
	defer srv.Close()

	if _, err := Get(context.Background(), srv.URL); err == nil || !strings.Contains(err.Error(), "larger than 8 bytes") {
		t.Fatalf("expected size error, got %v", err)
	}
}
