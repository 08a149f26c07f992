package server

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/sofmeright/goaround-icons/src/config"
	"github.com/sofmeright/goaround-icons/src/icons"
)

func newTestServer(t *testing.T, mutate func(*config.Config)) *httptest.Server {
	t.Helper()

	cfg := config.Defaults()
	if mutate != nil {
		mutate(cfg)
	}
	srv := httptest.NewServer(New(cfg, zaptest.NewLogger(t).Sugar()).Handler())
	t.Cleanup(srv.Close)
	return srv
}

func get(t *testing.T, url string) (*http.Response, string) {
	t.Helper()

	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func TestIconEndpoint(t *testing.T) {
	srv := newTestServer(t, nil)

	resp, body := get(t, srv.URL+"/icons/svg?type=B738&color=%23ff0000&rotation=45")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/svg+xml", resp.Header.Get("Content-Type"))
	assert.Equal(t, "public, max-age=3600", resp.Header.Get("Cache-Control"))
	assert.Equal(t, icons.Render("B738", "", "#ff0000", 45), body)
}

func TestIconEndpoint_Defaults(t *testing.T) {
	srv := newTestServer(t, nil)

	_, body := get(t, srv.URL+"/icons/svg")
	assert.Equal(t, icons.RenderDefault("", ""), body)

	_, body = get(t, srv.URL+"/icons/svg?category=C1")
	assert.Equal(t, icons.RenderDefault("", "C1"), body)
}

func TestIconByTypeEndpoint(t *testing.T) {
	srv := newTestServer(t, nil)

	_, body := get(t, srv.URL+"/icons/A380.svg?rotation=10")
	assert.Equal(t, icons.Render("A380", "", icons.DefaultColor, 10), body)

	_, body = get(t, srv.URL+"/icons/ZZZZ?category=B1")
	assert.Equal(t, icons.RenderDefault("", "B1"), body)
}

func TestIconEndpoint_BadRotation(t *testing.T) {
	srv := newTestServer(t, nil)

	resp, body := get(t, srv.URL+"/icons/svg?type=B738&rotation=north")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body, "invalid rotation")
}

func TestIconEndpoint_StrictColor(t *testing.T) {
	srv := newTestServer(t, func(cfg *config.Config) {
		cfg.Render.StrictColor = true
		cfg.Server.CacheMaxAge = 0
	})

	resp, body := get(t, srv.URL+"/icons/svg?type=B738&color=%22%3E%3Cscript%3E")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body, "invalid fill color")

	resp, _ = get(t, srv.URL+"/icons/svg?type=B738&color=teal")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, resp.Header.Get("Cache-Control"))
}

func TestLegendEndpoint(t *testing.T) {
	srv := newTestServer(t, nil)

	resp, body := get(t, srv.URL+"/api/icons")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var legend icons.Legend
	require.NoError(t, json.Unmarshal([]byte(body), &legend))
	assert.Equal(t, icons.NewLegend(), legend)
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t, nil)

	health, err := CheckHealth(context.Background(), srv.URL+"/api/health")
	require.NoError(t, err)
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, len(icons.IDs()), health.Icons)
}

func TestCheckHealth_Failures(t *testing.T) {
	unhealthy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, HealthResponse{Status: "degraded", Message: "catalog missing"})
	}))
	defer unhealthy.Close()

	_, err := CheckHealth(context.Background(), unhealthy.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "catalog missing")

	broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer broken.Close()

	_, err = CheckHealth(context.Background(), broken.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status code: 503")

	garbage := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer garbage.Close()

	_, err = CheckHealth(context.Background(), garbage.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid JSON response")
}

func TestServe_Shutdown(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	s := New(config.Defaults(), zaptest.NewLogger(t).Sugar())
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	require.Eventually(t, func() bool {
		_, err := CheckHealth(context.Background(), "http://"+ln.Addr().String()+"/api/health")
		return err == nil
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(shutdownTimeout + time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestIconEndpoint_EscapesColor(t *testing.T) {
	srv := newTestServer(t, nil)

	resp, body := get(t, srv.URL+"/icons/svg?type=B738&color=%22%3E%3Cscript%3Ealert(1)%3C/script%3E")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/svg+xml", resp.Header.Get("Content-Type"))
	assert.Contains(t, body, `fill="&quot;&gt;&lt;script&gt;alert(1)&lt;/script&gt;"`)
	assert.NotContains(t, body, "<script>")

	_, body = get(t, srv.URL+"/icons/A320.svg?color=red%22%20onload=%22x")
	assert.Contains(t, body, `fill="red&quot; onload=&quot;x"`)
}

func TestNew_AlwaysEscapes(t *testing.T) {
	cfg := config.Defaults()
	cfg.Render.Escape = false
	cfg.Render.Color = "navy"

	opts := New(cfg, nil).renderer.Options()
	assert.True(t, opts.Escape)
	assert.Equal(t, "navy", opts.DefaultColor)
	assert.False(t, opts.StrictColor)
}

func TestTrimSVGExt(t *testing.T) {
	assert.Equal(t, "B738", trimSVGExt("B738.svg"))
	assert.Equal(t, "B738", trimSVGExt("B738"))
	assert.Equal(t, "B738.png", trimSVGExt("B738.png"))
}
