package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/termplot/pkg/buildinfo"
	"github.com/matzehuels/termplot/pkg/cache"
	"github.com/matzehuels/termplot/pkg/errors"
	"github.com/matzehuels/termplot/pkg/observability"
	"github.com/matzehuels/termplot/pkg/pipeline"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	logger := log.NewWithOptions(io.Discard, log.Options{Level: log.DebugLevel})
	runner := pipeline.NewRunner(cache.NewMemoryCache(8), nil, logger)
	srv := httptest.NewServer(newServeHandler(runner, logger))
	t.Cleanup(srv.Close)
	return srv
}

func post(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/toml", strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestServeRender(t *testing.T) {
	srv := newTestServer(t)

	resp := post(t, srv.URL+"/render?plain=true", boxScene)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d: %s", resp.StatusCode, readBody(t, resp))
	}
	if got := readBody(t, resp); got != plainBox {
		t.Errorf("body = %q, want %q", got, plainBox)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Errorf("Content-Type = %q", ct)
	}
	if resp.Header.Get("X-Termplot-Size") != "8x12" {
		t.Errorf("X-Termplot-Size = %q", resp.Header.Get("X-Termplot-Size"))
	}
	if got := resp.Header.Get("Server"); got != buildinfo.Product(appName) {
		t.Errorf("Server = %q", got)
	}
	id := resp.Header.Get(requestIDHeader)
	if id == "" {
		t.Error("response is missing a request id")
	}

	again := post(t, srv.URL+"/render?plain=true", boxScene)
	if again.Header.Get("X-Termplot-Cache") != "hit" {
		t.Error("second identical request should be served from the cache")
	}
	if again.Header.Get(requestIDHeader) == id {
		t.Error("request ids should be unique")
	}
}

func TestServeRenderOptions(t *testing.T) {
	srv := newTestServer(t)

	resp := post(t, srv.URL+"/render?plain=1&width=12&height=20", boxScene)
	if got := readBody(t, resp); got != stretchedBox {
		t.Errorf("body = %q, want %q", got, stretchedBox)
	}

	resp = post(t, srv.URL+"/render?format=json&plain=true", `{"root": {"type": "textbox", "text": "HI"}}`)
	if got := readBody(t, resp); got != plainBox {
		t.Errorf("json body = %q, want %q", got, plainBox)
	}

	resp = post(t, srv.URL+"/render", boxScene)
	if got := readBody(t, resp); !strings.Contains(got, "\x1b[31m") {
		t.Errorf("body %q should keep colors unless plain is set", got)
	}
}

func TestServeRenderErrors(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name   string
		query  string
		body   string
		status int
		code   errors.Code
	}{
		{"bad format", "?format=yaml", boxScene, http.StatusBadRequest, errors.ErrCodeInvalidFormat},
		{"bad width", "?width=wide", boxScene, http.StatusBadRequest, errors.ErrCodeInvalidInput},
		{"bad plain", "?plain=maybe", boxScene, http.StatusBadRequest, errors.ErrCodeInvalidInput},
		{"bad scene", "", "[root]\ntype = \"blob\"", http.StatusBadRequest, errors.ErrCodeInvalidScene},
		{"target too small", "?width=2&height=2", boxScene, http.StatusBadRequest, errors.ErrCodeInvalidTarget},
		{"too large", "?width=100000", boxScene, http.StatusBadRequest, errors.ErrCodeInvalidInput},
		{"oversized raster", "?format=json", `{"root": {"type": "raster", "width": 4294967296, "height": 4294967296, "points": [[0, 0]]}}`, http.StatusBadRequest, errors.ErrCodeInvalidScene},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := post(t, srv.URL+"/render"+tt.query, tt.body)
			if resp.StatusCode != tt.status {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.status)
			}
			var body errorBody
			if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
				t.Fatalf("decode error body: %v", err)
			}
			if body.Code != tt.code || body.Error == "" {
				t.Errorf("error body = %+v, want code %s", body, tt.code)
			}
		})
	}
}

func TestServeRoutes(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if got := readBody(t, resp); resp.StatusCode != http.StatusOK || got != "ok\n" {
		t.Errorf("healthz = %d %q", resp.StatusCode, got)
	}

	resp2, err := http.Get(srv.URL + "/render")
	if err != nil {
		t.Fatal(err)
	}
	defer resp2.Body.Close()
	if resp2.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("GET /render status = %d, want 405", resp2.StatusCode)
	}
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		code errors.Code
		want int
	}{
		{"", http.StatusInternalServerError},
		{errors.ErrCodeInternal, http.StatusInternalServerError},
		{errors.ErrCodeFileNotFound, http.StatusNotFound},
		{errors.ErrCodeInvalidScene, http.StatusBadRequest},
		{errors.ErrCodeInvalidColor, http.StatusBadRequest},
	}
	for _, tt := range tests {
		if got := statusFor(tt.code); got != tt.want {
			t.Errorf("statusFor(%q) = %d, want %d", tt.code, got, tt.want)
		}
	}
}

func TestListenAndServeShutdown(t *testing.T) {
	var logs bytes.Buffer
	logger := log.NewWithOptions(&logs, log.Options{Level: log.InfoLevel})
	srv := &http.Server{Addr: "127.0.0.1:0", Handler: http.NotFoundHandler()}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- listenAndServe(ctx, srv, logger) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("listenAndServe() error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("listenAndServe did not stop after cancel")
	}
}

type statusHooks struct {
	observability.NoopHTTPHooks
	mu       sync.Mutex
	statuses []int
}

func (h *statusHooks) OnResponse(_ context.Context, _, _ string, status int, _ time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.statuses = append(h.statuses, status)
}

func TestServeHTTPHooks(t *testing.T) {
	hooks := &statusHooks{}
	observability.SetHTTPHooks(hooks)
	t.Cleanup(observability.Reset)

	srv := newTestServer(t)
	post(t, srv.URL+"/render", boxScene)
	post(t, srv.URL+"/render?format=yaml", boxScene)
	srv.Close()

	hooks.mu.Lock()
	defer hooks.mu.Unlock()
	if len(hooks.statuses) != 2 || hooks.statuses[0] != http.StatusOK || hooks.statuses[1] != http.StatusBadRequest {
		t.Errorf("statuses = %v, want [200 400]", hooks.statuses)
	}
}

func TestServeCommandBadRedisURL(t *testing.T) {
	isolate(t)
	_, _, err := runCLI(t, "", "serve", "--redis-url", "not a url")
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("serve error = %v, want %s", err, errors.ErrCodeInvalidInput)
	}
}
