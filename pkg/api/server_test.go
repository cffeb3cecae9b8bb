package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dd0wney/cluso-pathrace/pkg/config"
	"github.com/dd0wney/cluso-pathrace/pkg/logging"
	"github.com/dd0wney/cluso-pathrace/pkg/metrics"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cfg := config.Default()
	return NewServer(cfg, logging.NewNopLogger(), metrics.NewRegistry())
}

// triangleBody builds the request body for the canonical triangle graph
func triangleBody(extra map[string]any) []byte {
	body := map[string]any{
		"graph": map[string]any{
			"nodes": []map[string]any{
				{"id": "a", "x": 0, "y": 0},
				{"id": "b", "x": 20, "y": 0},
				{"id": "c", "x": 40, "y": 0},
			},
			"edges": []map[string]any{
				{"from": "a", "to": "b", "weight": 1},
				{"from": "b", "to": "c", "weight": 1},
				{"from": "a", "to": "c", "weight": 5},
			},
		},
		"start": "a",
		"end":   "c",
	}
	for k, v := range extra {
		body[k] = v
	}
	data, _ := json.Marshal(body)
	return data
}

func doRequest(t *testing.T, s *Server, method, path string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHandleTraverse_Dijkstra(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodPost, "/api/v1/traverse",
		triangleBody(map[string]any{"strategy": "dijkstra"}))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp TraverseResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "dijkstra", resp.Strategy)
	assert.Equal(t, []string{"a", "b", "c"}, resp.Result.Path)
	assert.Equal(t, 2, resp.Result.Weight)
	assert.Len(t, resp.Result.Steps, 3)
}

func TestHandleTraverse_Unreachable(t *testing.T) {
	s := newTestServer(t)
	body := []byte(`{
		"graph": {
			"nodes": [{"id": "a"}, {"id": "b"}],
			"edges": []
		},
		"strategy": "bfs",
		"start": "a",
		"end": "b"
	}`)

	rec := doRequest(t, s, http.MethodPost, "/api/v1/traverse", body)

	// Unreachable is a normal outcome, not an error
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp TraverseResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.Result.Path)
	assert.Equal(t, -1, resp.Result.CompletedStep)
}

func TestHandleTraverse_ValidationErrors(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name string
		body []byte
	}{
		{"unknown strategy", triangleBody(map[string]any{"strategy": "warp"})},
		{"missing strategy", triangleBody(nil)},
		{"malformed json", []byte(`{"graph": `)},
		{"empty body", []byte(``)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, s, http.MethodPost, "/api/v1/traverse", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp.Error)
		})
	}
}

func TestHandleTraverse_MethodNotAllowed(t *testing.T) {
	s := newTestServer(t)
	rec := doRequest(t, s, http.MethodGet, "/api/v1/traverse", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHandleTraverse_NodeCap(t *testing.T) {
	cfg := config.Default()
	cfg.MaxNodes = 2
	s := NewServer(cfg, logging.NewNopLogger(), metrics.NewRegistry())

	rec := doRequest(t, s, http.MethodPost, "/api/v1/traverse",
		triangleBody(map[string]any{"strategy": "bfs"}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "maximum 2 nodes")
}

func TestHandleRace_LeftWins(t *testing.T) {
	s := newTestServer(t)

	// Dijkstra finds the weight-2 detour; both find paths, but the race
	// exercises the full precedence chain end to end.
	rec := doRequest(t, s, http.MethodPost, "/api/v1/race",
		triangleBody(map[string]any{"left": "dijkstra", "right": "bfs"}))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp RaceResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, []string{"left", "right", "tie"}, resp.Verdict)
	assert.NotNil(t, resp.Left)
	assert.NotNil(t, resp.Right)
	assert.Greater(t, resp.Rounds, 0)
}

func TestHandleRace_IdenticalStrategiesTie(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodPost, "/api/v1/race",
		triangleBody(map[string]any{"left": "astar", "right": "astar"}))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp RaceResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "tie", resp.Verdict)
}

func TestHandleRace_BadStrategy(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodPost, "/api/v1/race",
		triangleBody(map[string]any{"left": "dijkstra", "right": "teleport"}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodGet, "/health", nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t)

	// Generate some traffic first
	doRequest(t, s, http.MethodPost, "/api/v1/traverse",
		triangleBody(map[string]any{"strategy": "bfs"}))

	rec := doRequest(t, s, http.MethodGet, "/metrics", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "pathrace_traversals_total"),
		"expected traversal metrics in exposition")
}

func TestRequestIDHeader(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodGet, "/health", nil)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	// A caller-supplied id is echoed back
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	echo := httptest.NewRecorder()
	s.Handler().ServeHTTP(echo, req)
	assert.Equal(t, "abc-123", echo.Header().Get("X-Request-ID"))
}

func TestBodySizeLimit(t *testing.T) {
	cfg := config.Default()
	cfg.MaxBodyBytes = 64
	s := NewServer(cfg, logging.NewNopLogger(), metrics.NewRegistry())

	rec := doRequest(t, s, http.MethodPost, "/api/v1/traverse",
		triangleBody(map[string]any{"strategy": "bfs"}))

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}
