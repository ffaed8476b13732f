package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/phrazzld/todo-api/internal/config"
	"github.com/phrazzld/todo-api/internal/platform/logger"
	"github.com/stretchr/testify/require"
)

// testingT is satisfied by *testing.T and *rapid.T.
type testingT interface {
	require.TestingT
	Helper()
}

// testConfig returns the default configuration without touching the environment.
func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:                   "127.0.0.1",
			Port:                   5000,
			Debug:                  false,
			LogLevel:               "debug",
			ShutdownTimeoutSeconds: 1,
		},
		App: config.AppConfig{
			Name:    "Welcome to Todo API",
			Version: "1.0.0",
		},
		CORS: config.CORSConfig{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Content-Type"},
			MaxAgeSeconds:  86400,
		},
	}
}

// newTestApp builds a fully wired application logging into a buffer.
func newTestApp(t *testing.T) (*application, *logger.TestLogBuffer) {
	t.Helper()

	l, buf := logger.GetTestLogger(t)
	app, err := newApplication(testConfig(), l)
	require.NoError(t, err)
	return app, buf
}

// doRequest sends a request through handler and returns the recorder.
func doRequest(t testingT, handler http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

// decodeBody unmarshals the recorder body into a generic map.
func decodeBody(t testingT, rr *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body), "body: %s", rr.Body.String())
	return body
}

// todoResponse mirrors the JSON shape of a todo record.
type todoResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// listResponse mirrors the JSON shape of GET /todos.
type listResponse struct {
	Todos []todoResponse `json:"todos"`
	Count int            `json:"count"`
}

func decodeTodo(t testingT, rr *httptest.ResponseRecorder) todoResponse {
	t.Helper()

	var todo todoResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &todo), "body: %s", rr.Body.String())
	return todo
}

func decodeList(t testingT, rr *httptest.ResponseRecorder) listResponse {
	t.Helper()

	var list listResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list), "body: %s", rr.Body.String())
	return list
}
