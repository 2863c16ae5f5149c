package web

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleSolve(t *testing.T) {
	s := NewServer()

	body, err := json.Marshal(SolveRequest{Scramble: "R U R' U'", Method: "cfop", Dimension: 3})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/solve", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	s.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp SolveResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "SOLVED", resp.FinalState)
}

func TestHandleSolveBadScramble(t *testing.T) {
	s := NewServer()

	body, err := json.Marshal(SolveRequest{Scramble: "not a move", Dimension: 3})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/solve", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	s.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleHealth(t *testing.T) {
	s := NewServer()

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()

	s.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}

func TestParseCommand(t *testing.T) {
	parts, err := parseCommand(`twist "R U R' U'" --color`)
	require.NoError(t, err)
	assert.Equal(t, []string{"twist", "R U R' U'", "--color"}, parts)
}

func TestParseCommandEmpty(t *testing.T) {
	parts, err := parseCommand("")
	require.NoError(t, err)
	assert.Empty(t, parts)
}
