//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/heartmarshall/alfred-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/alfred-backend/internal/app"
	"github.com/heartmarshall/alfred-backend/internal/config"
)

// testServer wraps the full application stack for E2E tests.
type testServer struct {
	URL    string
	Client *http.Client
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

var (
	redisOnce sync.Once
	redisAddr string
	redisErr  error
)

func setupRedis(t *testing.T) string {
	t.Helper()

	redisOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				Image:        "redis:7-alpine",
				ExposedPorts: []string{"6379/tcp"},
				WaitingFor:   wait.ForLog("Ready to accept connections"),
			},
			Started: true,
		})
		if err != nil {
			redisErr = err
			return
		}
		host, err := c.Host(ctx)
		if err != nil {
			redisErr = err
			return
		}
		port, err := c.MappedPort(ctx, "6379")
		if err != nil {
			redisErr = err
			return
		}
		redisAddr = fmt.Sprintf("%s:%s", host, port.Port())
	})
	require.NoError(t, redisErr)
	return redisAddr
}

// setupTestServer boots the application on PostgreSQL storage and Redis
// sessions with the strict auth policy, bcrypt passwords and demo data.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	cfg := &config.Config{
		Log: config.LogConfig{Level: "debug", Format: "text"},
		Session: config.SessionConfig{
			Secret:      "e2e-secret-that-is-long-enough-for-hs256-signing",
			CookieName:  "alfred.sid",
			MaxAge:      time.Hour,
			CheckPeriod: time.Hour,
			Store:       config.SessionStoreRedis,
			Redis: config.RedisConfig{
				Addr:      setupRedis(t),
				KeyPrefix: "e2e:" + t.Name() + ":",
			},
		},
		Auth: config.AuthConfig{
			PasswordMode: "bcrypt",
			BcryptCost:   4,
			Policy:       "strict",
			DemoUsername: "demo",
			Issuer:       "alfred",
		},
		API: config.APIConfig{StrictPatch: true, EnforceOwnership: true},
		Storage: config.StorageConfig{
			Driver: config.StoragePostgres,
			Database: config.DatabaseConfig{
				DSN:      testhelper.SetupTestDSN(t),
				MaxConns: 4,
				MinConns: 1,
			},
		},
		RateLimit: config.RateLimitConfig{CleanupPeriod: time.Minute},
		Demo:      config.DemoConfig{Seed: true},
	}

	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, &slog.HandlerOptions{Level: slog.LevelDebug}))

	a, err := app.New(context.Background(), cfg, logger)
	require.NoError(t, err)
	t.Cleanup(a.Close)

	srv := httptest.NewServer(a.Handler())
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	return &testServer{
		URL:    srv.URL,
		Client: &http.Client{Jar: jar, Timeout: 10 * time.Second},
	}
}

// do sends a JSON request and decodes the JSON response into a generic value.
func (ts *testServer) do(t *testing.T, method, path string, body any) (int, any) {
	t.Helper()

	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, ts.URL+path, r)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out any
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	}
	return resp.StatusCode, out
}

func (ts *testServer) login(t *testing.T, username, password string) {
	t.Helper()
	status, body := ts.do(t, http.MethodPost, "/api/login", map[string]string{
		"username": username, "password": password,
	})
	require.Equal(t, http.StatusOK, status, "login failed: %v", body)
}
