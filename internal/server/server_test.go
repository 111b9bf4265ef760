package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mjbconsultora/website/internal/config"
	"github.com/mjbconsultora/website/internal/service"
)

const origin = "https://v2.mjbconsultora.com.ar"

type recordingSubmitter struct {
	subs []*service.Submission
}

func (r *recordingSubmitter) Submit(_ context.Context, sub *service.Submission) error {
	r.subs = append(r.subs, sub)
	return nil
}

type emptyReviews struct{}

func (emptyReviews) List() ([]service.Review, error) { return nil, nil }

func testConfig() *config.Config {
	return &config.Config{
		Environment:    "test",
		Port:           "0",
		AllowedOrigin:  origin,
		TrustedProxies: []string{"10.0.0.0/8"},
		RateLimitRPS:   100,
		RateLimitBurst: 100,
		MaxBodyBytes:   1024,
		ServiceName:    "mjb-website-test",
	}
}

func newTestServer(t *testing.T, cfg *config.Config) (*Server, *recordingSubmitter) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	contact := &recordingSubmitter{}
	srv, err := NewServer(cfg, Services{Contact: contact, Reviews: emptyReviews{}})
	require.NoError(t, err)
	require.NoError(t, srv.Init())
	return srv, contact
}

func TestNewServer_RequiresServices(t *testing.T) {
	_, err := NewServer(testConfig(), Services{})
	assert.Error(t, err)

	_, err = NewServer(nil, Services{Contact: &recordingSubmitter{}, Reviews: emptyReviews{}})
	assert.Error(t, err)
}

func TestInit_RejectsBadProxies(t *testing.T) {
	cfg := testConfig()
	cfg.TrustedProxies = []string{"not-an-ip"}

	srv, err := NewServer(cfg, Services{Contact: &recordingSubmitter{}, Reviews: emptyReviews{}})
	require.NoError(t, err)
	assert.Error(t, srv.Init())
}

func TestContactRoute(t *testing.T) {
	srv, contact := newTestServer(t, testConfig())

	t.Run("post", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/contact",
			strings.NewReader(`{"name":"Ana","email":"ana@x.com","message":"Hola"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Origin", origin)
		req.RemoteAddr = "10.1.2.3:5555"
		req.Header.Set("X-Forwarded-For", "203.0.113.7")
		srv.Handler().ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"success":true}`, w.Body.String())
		assert.Equal(t, origin, w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "POST, OPTIONS", w.Header().Get("Access-Control-Allow-Methods"))
		assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

		require.Len(t, contact.subs, 1)
		assert.Equal(t, "203.0.113.7", contact.subs[0].RemoteIP)
	})

	t.Run("preflight", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodOptions, "/api/contact", nil)
		req.Header.Set("Origin", origin)
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		srv.Handler().ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Body.String())
		assert.Equal(t, "Content-Type", w.Header().Get("Access-Control-Allow-Headers"))
	})

	t.Run("wrong method keeps cors headers", func(t *testing.T) {
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/api/contact", nil))

		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
		assert.JSONEq(t, `{"error":"Método no permitido"}`, w.Body.String())
		assert.Equal(t, origin, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("body too large", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(strings.Repeat("a", 2048)))
		req.Header.Set("Content-Type", "application/json")
		srv.Handler().ServeHTTP(w, req)

		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	})
}

func TestContactRoute_OtherMethodsDoNotSpendRateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimitRPS = 0.001
	cfg.RateLimitBurst = 2
	srv, contact := newTestServer(t, cfg)

	for _, method := range []string{http.MethodGet, http.MethodGet, http.MethodGet, http.MethodPut, http.MethodDelete} {
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, httptest.NewRequest(method, "/api/contact", nil))
		assert.Equal(t, http.StatusMethodNotAllowed, w.Code, method)
	}

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/contact",
			strings.NewReader(`{"name":"Ana","email":"ana@x.com","message":"Hola"}`))
		req.Header.Set("Content-Type", "application/json")
		srv.Handler().ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}
	assert.Len(t, contact.subs, 2)
}

func TestHealthAndReviewRoutes(t *testing.T) {
	srv, _ := newTestServer(t, testConfig())

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)

	w = httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/reviews", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
	assert.Equal(t, "GET, OPTIONS", w.Header().Get("Access-Control-Allow-Methods"))
}

func TestStaticRoutes(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>MJB</h1>"), 0644))

	cfg := testConfig()
	cfg.StaticDir = dir
	srv, _ := newTestServer(t, cfg)

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "<h1>MJB</h1>")

	w = httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/unknown", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStart_StopsOnCancel(t *testing.T) {
	srv, _ := newTestServer(t, testConfig())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Start(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after cancel")
	}
}
