package server

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/desertthunder/neonx/internal/shared"
)

type pingHandler struct{}

func (pingHandler) Routes() []string { return []string{"/ping", "/healthz"} }

func (pingHandler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	w.Write([]byte("pong"))
}

func text(body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(body))
	})
}

func serve(h http.Handler, method, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	return rec
}

func TestBasicRouter(t *testing.T) {
	t.Run("dispatches by method on one path", func(t *testing.T) {
		r := NewBasicRouter()
		r.Handle(http.MethodGet, "/api/state", text("get"))
		r.Handle("post", "/api/state", text("post"))

		if got := serve(r, http.MethodGet, "/api/state").Body.String(); got != "get" {
			t.Errorf("expected get, got %q", got)
		}
		if got := serve(r, http.MethodPost, "/api/state").Body.String(); got != "post" {
			t.Errorf("expected post, got %q", got)
		}

		rec := serve(r, http.MethodDelete, "/api/state")
		if rec.Code != http.StatusMethodNotAllowed {
			t.Errorf("expected 405, got %d", rec.Code)
		}
		if allow := rec.Header().Get("Allow"); allow != "GET, POST" {
			t.Errorf("unexpected Allow header %q", allow)
		}
	})

	t.Run("exact root does not catch other paths", func(t *testing.T) {
		r := NewBasicRouter()
		r.Handle(http.MethodGet, "/{$}", text("index"))

		if got := serve(r, http.MethodGet, "/").Body.String(); got != "index" {
			t.Errorf("expected index, got %q", got)
		}
		for _, method := range []string{http.MethodGet, http.MethodPost} {
			if rec := serve(r, method, "/nope"); rec.Code != http.StatusNotFound {
				t.Errorf("%s /nope: expected 404, got %d", method, rec.Code)
			}
		}
	})

	t.Run("registers every handler route", func(t *testing.T) {
		r := NewBasicRouter()
		r.Handler(pingHandler{})
		for _, path := range []string{"/ping", "/healthz"} {
			if got := serve(r, http.MethodGet, path).Body.String(); got != "pong" {
				t.Errorf("%s: expected pong, got %q", path, got)
			}
		}
	})

	t.Run("middleware order", func(t *testing.T) {
		var order []string
		mark := func(name string) Middleware {
			return func(next http.Handler) http.Handler {
				return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
					order = append(order, name)
					next.ServeHTTP(w, req)
				})
			}
		}

		r := NewBasicRouter()
		r.Use(mark("first"), mark("second"))
		r.Handle(http.MethodGet, "/", text("ok"))
		serve(r, http.MethodGet, "/")

		if strings.Join(order, ",") != "first,second" {
			t.Errorf("unexpected order %v", order)
		}
	})
}

func TestNew(t *testing.T) {
	srv := New("127.0.0.1:0", NewBasicRouter())
	if srv.Addr != "127.0.0.1:0" || srv.Handler == nil {
		t.Errorf("unexpected server %+v", srv)
	}
	if srv.ReadHeaderTimeout == 0 || srv.WriteTimeout == 0 {
		t.Error("expected timeouts to be set")
	}
}

func TestMiddleware(t *testing.T) {
	t.Run("Logging records status", func(t *testing.T) {
		var buf bytes.Buffer
		h := Logging(shared.NewLogger(&buf))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "nope", http.StatusTeapot)
		}))
		serve(h, http.MethodGet, "/brew")

		out := buf.String()
		if !strings.Contains(out, "/brew") || !strings.Contains(out, "418") {
			t.Errorf("log missing path or status: %s", out)
		}
	})

	t.Run("RateLimit rejects past the burst", func(t *testing.T) {
		h := RateLimit(2)(text("ok"))
		codes := []int{}
		for range 3 {
			codes = append(codes, serve(h, http.MethodGet, "/").Code)
		}
		if codes[0] != http.StatusOK || codes[1] != http.StatusOK || codes[2] != http.StatusTooManyRequests {
			t.Errorf("unexpected codes %v", codes)
		}
	})

	t.Run("RateLimit disabled", func(t *testing.T) {
		h := RateLimit(0)(text("ok"))
		for range 50 {
			if code := serve(h, http.MethodGet, "/").Code; code != http.StatusOK {
				t.Fatalf("expected 200, got %d", code)
			}
		}
	})

	t.Run("Recover", func(t *testing.T) {
		var buf bytes.Buffer
		h := Recover(shared.NewLogger(&buf))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			panic("boom")
		}))
		if code := serve(h, http.MethodGet, "/").Code; code != http.StatusInternalServerError {
			t.Errorf("expected 500, got %d", code)
		}
		if !strings.Contains(buf.String(), "boom") {
			t.Error("expected panic to be logged")
		}
	})
}
