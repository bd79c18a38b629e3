package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type observation struct {
	method, route string
	status        int
}

type fakeRecorder struct {
	mu   sync.Mutex
	seen []observation
}

func (r *fakeRecorder) RecordRequest(method, route string, status int, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seen = append(r.seen, observation{method: method, route: route, status: status})
}

func (r *fakeRecorder) RecordUserCreated() {}
func (r *fakeRecorder) RecordUserDeleted() {}

func TestLoggingMiddleware(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, nil))
	recorder := &fakeRecorder{}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusTeapot).SendString(err.Error())
		},
	})
	app.Use(NewLoggingMiddleware(logger, recorder))
	app.Get("/ok/:id", func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderXRequestID, "req-1")
		return c.SendString("ok")
	})
	app.Get("/fail", func(*fiber.Ctx) error {
		return errors.New("broken")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ok/7", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/fail", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusTeapot, resp.StatusCode, "error resolved by the app error handler")

	lines := bytes.Split(bytes.TrimSpace(logs.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)

	var first map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &first))
	assert.Equal(t, "http_request", first["msg"])
	assert.Equal(t, "INFO", first["level"])
	assert.Equal(t, "GET", first["method"])
	assert.Equal(t, "/ok/7", first["path"])
	assert.Equal(t, "/ok/:id", first["route"])
	assert.Equal(t, float64(200), first["status"])
	assert.Equal(t, "req-1", first["request_id"])
	assert.Contains(t, first, "duration_ms")

	var second map[string]any
	require.NoError(t, json.Unmarshal(lines[1], &second))
	assert.Equal(t, "WARN", second["level"])
	assert.Equal(t, float64(http.StatusTeapot), second["status"])

	recorder.mu.Lock()
	defer recorder.mu.Unlock()
	assert.Equal(t, []observation{
		{method: "GET", route: "/ok/:id", status: 200},
		{method: "GET", route: "/fail", status: http.StatusTeapot},
	}, recorder.seen)
}

func TestLoggingMiddleware_ServerErrorLevel(t *testing.T) {
	var logs bytes.Buffer
	app := fiber.New()
	app.Use(NewLoggingMiddleware(slog.New(slog.NewJSONHandler(&logs, nil)), &fakeRecorder{}))
	app.Get("/", func(*fiber.Ctx) error { return errors.New("boom") })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Contains(t, logs.String(), `"level":"ERROR"`)
}
